package types

import (
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/imdario/mergo"
	"github.com/mitchellh/mapstructure"
)

// DeployOptions is options for deploying one app
type DeployOptions struct {
	Name         string            `mapstructure:"name"`         // Name of application
	Resource     string            `mapstructure:"resource"`     // Resource URI to deploy
	Count        int               `mapstructure:"count"`        // How many instances needed, e.g. 4
	Env          []string          `mapstructure:"env"`          // Env for instances
	Labels       map[string]string `mapstructure:"labels"`       // Labels for instances
	MemoryLimit  string            `mapstructure:"memory_limit"` // Memory limit, human string
	DiskLimit    string            `mapstructure:"disk_limit"`   // Disk limit, human string
	ProcessIdent string            `mapstructure:"-"`            // ProcessIdent ident this deploy

	// resolved by Normalize
	MemoryLimitInBytes int64 `mapstructure:"-"`
	DiskLimitInBytes   int64 `mapstructure:"-"`
}

// NewDeployOptions decodes manifest properties into options
func NewDeployOptions(params RawParams) (*DeployOptions, error) {
	opts := &DeployOptions{}
	if err := mapstructure.Decode(map[string]any(params), opts); err != nil {
		return nil, errors.WithStack(err)
	}
	return opts, nil
}

// Normalize merges unset fields from the deploy defaults and resolves
// the human size strings to byte counts
func (o *DeployOptions) Normalize(defaults DeployDefaults) error {
	if err := mergo.Merge(o, DeployOptions{
		Count:       defaults.Count,
		MemoryLimit: defaults.MemoryLimit,
		DiskLimit:   defaults.DiskLimit,
		Env:         defaults.Env,
		Labels:      defaults.Labels,
	}); err != nil {
		return errors.WithStack(err)
	}

	var err error
	if o.MemoryLimitInBytes, err = sizeInBytes(o.MemoryLimit); err != nil {
		return errors.Wrapf(ErrBadMemory, "%s: %+v", o.MemoryLimit, err)
	}
	if o.DiskLimitInBytes, err = sizeInBytes(o.DiskLimit); err != nil {
		return errors.Wrapf(ErrBadDisk, "%s: %+v", o.DiskLimit, err)
	}
	return nil
}

// Validate return error if invalid
func (o *DeployOptions) Validate() error {
	if o.Name == "" {
		return errors.WithStack(ErrEmptyAppName)
	}
	if strings.Contains(o.Name, "_") {
		return errors.Wrapf(ErrBadAppName, "underline in app name %s", o.Name)
	}
	if o.Resource == "" {
		return errors.WithStack(ErrEmptyResource)
	}
	if o.Count <= 0 {
		return errors.WithStack(ErrBadCount)
	}
	if o.MemoryLimitInBytes < 0 {
		return errors.WithStack(ErrBadMemory)
	}
	if o.DiskLimitInBytes < 0 {
		return errors.WithStack(ErrBadDisk)
	}
	return nil
}
