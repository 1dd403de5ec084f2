package resource

import (
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/spring-cloud/spring-cloud-deployer-sub001/resource/image"
	"github.com/spring-cloud/spring-cloud-deployer-sub001/resource/maven"
	"github.com/spring-cloud/spring-cloud-deployer-sub001/types"
)

// kinds
const (
	KindMaven  = "maven"
	KindDocker = "docker"
	KindFile   = "file"
)

// Resource locates one deployable thing, a maven artifact, a docker
// image or a plain file
type Resource interface {
	URI() string
	Kind() string
}

// Parse dispatches a resource URI to the adapter for its scheme, a
// bare path counts as a file
func Parse(uri string, config types.Config) (Resource, error) {
	switch {
	case strings.HasPrefix(uri, "maven://"):
		return maven.New(strings.TrimPrefix(uri, "maven://"), config.Maven)
	case strings.HasPrefix(uri, "docker:"):
		return image.New(strings.TrimPrefix(uri, "docker:"), config.Docker)
	case strings.HasPrefix(uri, "file://"):
		return NewFile(strings.TrimPrefix(uri, "file://"))
	case strings.Contains(uri, "://"):
		return nil, errors.Wrapf(types.ErrBadResourceURI, "unknown scheme in %q", uri)
	case uri == "":
		return nil, errors.WithStack(types.ErrBadResourceURI)
	default:
		return NewFile(uri)
	}
}
