package version

import (
	"fmt"
	"runtime"
)

// Environment describes the platform a deployer build runs against,
// shown next to the build info
type Environment struct {
	DeployerName        string
	DeployerVersion     string
	PlatformType        string
	PlatformAPIVersion  string
	PlatformHostVersion string
	GoVersion           string
	OS                  string
	Arch                string
}

// NewEnvironment fills the runtime facts, platform facts come from the
// caller
func NewEnvironment(platformType, apiVersion, hostVersion string) Environment {
	return Environment{
		DeployerName:        NAME,
		DeployerVersion:     VERSION,
		PlatformType:        platformType,
		PlatformAPIVersion:  apiVersion,
		PlatformHostVersion: hostVersion,
		GoVersion:           runtime.Version(),
		OS:                  runtime.GOOS,
		Arch:                runtime.GOARCH,
	}
}

// String show environment thing
func (e Environment) String() string {
	env := ""
	env += fmt.Sprintf("Deployer:       %s %s\n", e.DeployerName, e.DeployerVersion)
	env += fmt.Sprintf("Platform:       %s (API %s, host %s)\n", e.PlatformType, e.PlatformAPIVersion, e.PlatformHostVersion)
	env += fmt.Sprintf("Golang version: %s\n", e.GoVersion)
	env += fmt.Sprintf("OS/Arch:        %s/%s\n", e.OS, e.Arch)
	return env
}
