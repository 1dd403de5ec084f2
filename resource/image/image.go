package image

import (
	"strings"

	"github.com/docker/distribution/reference"

	"github.com/cockroachdb/errors"

	"github.com/spring-cloud/spring-cloud-deployer-sub001/types"
)

const defaultTag = "latest"

// Image is a docker image located resource
type Image struct {
	named  reference.NamedTagged
	config types.DockerConfig
}

// New normalizes an image name against the configured hub and
// namespace and parses it into a tagged reference, untagged names get
// :latest
func New(name string, config types.DockerConfig) (*Image, error) {
	name = normalize(name, config)
	named, err := reference.ParseNormalizedNamed(name)
	if err != nil {
		return nil, errors.Wrapf(types.ErrBadResourceURI, "image %s: %+v", name, err)
	}
	tagged, ok := reference.TagNameOnly(named).(reference.NamedTagged)
	if !ok {
		return nil, errors.Wrapf(types.ErrBadResourceURI, "image %s has no tag", name)
	}
	return &Image{named: tagged, config: config}, nil
}

// normalize prepends hub and namespace to bare image names, names
// already carrying a registry or a path stay untouched
func normalize(name string, config types.DockerConfig) string {
	if config.Hub == "" || strings.Contains(name, "/") {
		return name
	}
	if config.Namespace == "" {
		return config.Hub + "/" + name
	}
	return strings.Join([]string{config.Hub, config.Namespace, name}, "/")
}

// URI .
func (i *Image) URI() string {
	return "docker:" + i.named.String()
}

// Kind .
func (i *Image) Kind() string {
	return "docker"
}

// Name returns the full reference without the tag
func (i *Image) Name() string {
	return i.named.Name()
}

// Tag .
func (i *Image) Tag() string {
	return i.named.Tag()
}

// Auth returns the registry credentials configured for the image's
// domain, the zero value when none
func (i *Image) Auth() types.AuthConfig {
	return i.config.AuthConfigs[reference.Domain(i.named)]
}
