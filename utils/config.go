package utils

import (
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"github.com/jinzhu/configor"

	"github.com/spring-cloud/spring-cloud-deployer-sub001/types"
)

// LoadConfig reads deployer config from the given yaml file, an empty
// path means struct tag defaults only
func LoadConfig(configPath string) (types.Config, error) {
	config := types.Config{}

	paths := []string{}
	if configPath != "" {
		paths = append(paths, configPath)
	}
	if err := configor.Load(&config, paths...); err != nil {
		return config, errors.Wrapf(types.ErrBadConfig, "%s: %+v", configPath, err)
	}

	// relative local repository anchors at $HOME like the maven CLI
	if !filepath.IsAbs(config.Maven.LocalRepository) {
		if home, err := os.UserHomeDir(); err == nil {
			config.Maven.LocalRepository = filepath.Join(home, config.Maven.LocalRepository)
		}
	}

	// deploy default sizes must be interpretable before any deploy uses them
	if _, err := ParseSizeInHuman(config.Deploy.MemoryLimit); err != nil {
		return config, errors.Wrapf(types.ErrBadConfig, "memory_limit %s: %+v", config.Deploy.MemoryLimit, err)
	}
	if _, err := ParseSizeInHuman(config.Deploy.DiskLimit); err != nil {
		return config, errors.Wrapf(types.ErrBadConfig, "disk_limit %s: %+v", config.Deploy.DiskLimit, err)
	}

	return config, config.Validate()
}
