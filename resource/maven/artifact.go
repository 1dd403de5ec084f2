package maven

import (
	"context"

	"github.com/spring-cloud/spring-cloud-deployer-sub001/types"
)

// Artifact is a maven located resource
type Artifact struct {
	Coordinates *Coordinates
	resolver    *Resolver
}

// New parses the coordinate part of a maven URI into an Artifact
func New(coords string, config types.MavenConfig) (*Artifact, error) {
	c, err := ParseCoordinates(coords)
	if err != nil {
		return nil, err
	}
	return &Artifact{Coordinates: c, resolver: NewResolver(config)}, nil
}

// URI returns the canonical maven URI
func (a *Artifact) URI() string {
	return "maven://" + a.Coordinates.String()
}

// Kind .
func (a *Artifact) Kind() string {
	return "maven"
}

// Resolve returns the artifact's local repository path, downloading it
// first when needed
func (a *Artifact) Resolve(ctx context.Context) (string, error) {
	return a.resolver.Resolve(ctx, a.Coordinates)
}
