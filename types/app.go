package types

import (
	"github.com/cockroachdb/errors"
	"github.com/jinzhu/configor"
)

// AppManifest is one deployable app as written by a human, properties
// stay raw until decoded into DeployOptions
type AppManifest struct {
	Name       string    `yaml:"name" required:"true"`
	Resource   string    `yaml:"resource" required:"true"`
	Count      int       `yaml:"count"`
	Properties RawParams `yaml:"properties"`
}

// LoadAppManifest reads one manifest file, yaml
func LoadAppManifest(path string) (*AppManifest, error) {
	m := &AppManifest{}
	if err := configor.New(&configor.Config{ErrorOnUnmatchedKeys: true}).Load(m, path); err != nil {
		return nil, errors.Wrapf(ErrBadManifest, "%s: %+v", path, err)
	}
	return m, nil
}

// DeployOptions decodes the manifest into deploy options, manifest
// level fields win over same named properties
func (m *AppManifest) DeployOptions() (*DeployOptions, error) {
	opts, err := NewDeployOptions(m.Properties)
	if err != nil {
		return nil, err
	}
	if m.Name != "" {
		opts.Name = m.Name
	}
	if m.Resource != "" {
		opts.Resource = m.Resource
	}
	if m.Count > 0 {
		opts.Count = m.Count
	}
	return opts, nil
}
