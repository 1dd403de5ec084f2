package types

import (
	"github.com/cockroachdb/errors"
)

// errors
var (
	ErrEmptyAppName  = errors.New("app name is required")
	ErrBadAppName    = errors.New("bad app name")
	ErrEmptyResource = errors.New("resource URI is required")

	ErrBadCount  = errors.New("bad `Count` value")
	ErrBadMemory = errors.New("bad `MemoryLimit` value")
	ErrBadDisk   = errors.New("bad `DiskLimit` value")

	ErrBadResourceURI   = errors.New("bad resource URI")
	ErrBadCoordinates   = errors.New("bad maven coordinates")
	ErrResourceNotFound = errors.New("resource not found")
	ErrNoRemoteRepos    = errors.New("no remote repositories configured")

	ErrBadManifest     = errors.New("bad app manifest")
	ErrBadConfig       = errors.New("bad config")
	ErrInvaildLogLevel = errors.New("invaild log level")
	ErrNegativeConc    = errors.New("max_concurrency must be positive")
	ErrEmptyLocalRepo  = errors.New("maven local_repository must be set")
)

type tracingKey string

// TracingID is the context key carrying a caller supplied trace ident
const TracingID tracingKey = "tracingID"
