package types

import (
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
)

// Config holds deployer config
type Config struct {
	LogLevel       string `yaml:"log_level" required:"true" default:"INFO"`
	SentryDSN      string `yaml:"sentry_dsn"`
	MaxConcurrency int    `yaml:"max_concurrency" default:"20"` // concurrent manifest validations

	Deploy DeployDefaults `yaml:"deploy"`
	Maven  MavenConfig    `yaml:"maven"`
	Docker DockerConfig   `yaml:"docker"`
}

// Validate return error if invalid
func (c Config) Validate() error {
	if _, err := zerolog.ParseLevel(strings.ToLower(c.LogLevel)); err != nil {
		return errors.Wrapf(ErrInvaildLogLevel, "%s", c.LogLevel)
	}
	if c.MaxConcurrency <= 0 {
		return errors.WithStack(ErrNegativeConc)
	}
	if c.Maven.LocalRepository == "" {
		return errors.WithStack(ErrEmptyLocalRepo)
	}
	return nil
}

// DeployDefaults are merged into every deploy option set before
// validation, sizes are human strings interpreted at normalize time
type DeployDefaults struct {
	Count       int               `yaml:"count" default:"1"`
	MemoryLimit string            `yaml:"memory_limit" default:"1GiB"`
	DiskLimit   string            `yaml:"disk_limit"`
	Env         []string          `yaml:"env"`
	Labels      map[string]string `yaml:"labels"`
}

// MavenConfig holds artifact repository config
type MavenConfig struct {
	LocalRepository string        `yaml:"local_repository" required:"true" default:".m2/repository"` // repository-layout dir for resolved artifacts
	Remotes         []string      `yaml:"remotes"`                                                   // remote repository base URLs, tried in order
	Auth            AuthConfig    `yaml:"auth"`                                                      // basic auth for remotes
	Offline         bool          `yaml:"offline"`                                                   // never touch remotes
	FetchTimeout    time.Duration `yaml:"fetch_timeout" default:"300s"`                              // timeout per artifact download
	FetchRetries    int           `yaml:"fetch_retries" default:"3"`                                 // retries per remote
	CacheTTL        time.Duration `yaml:"cache_ttl" default:"5m"`                                    // resolution cache entry lifetime
}

// DockerConfig holds image registry config
type DockerConfig struct {
	Hub         string                `yaml:"hub"`       // registry address prepended to bare image names
	Namespace   string                `yaml:"namespace"` // registry prefix, image will be $Hub/$Namespace/$name
	AuthConfigs map[string]AuthConfig `yaml:"auths"`     // registry credentials keyed by domain
}

// AuthConfig is basic auth
type AuthConfig struct {
	Username string `yaml:"username"`
	Password string `yaml:"password"`
}
