package maven

import (
	"fmt"
	"path"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/spring-cloud/spring-cloud-deployer-sub001/types"
)

const defaultExtension = "jar"

// Coordinates is one maven artifact ident,
// group:artifact[:extension[:classifier]]:version
type Coordinates struct {
	GroupID    string
	ArtifactID string
	Extension  string
	Classifier string
	Version    string
}

// ParseCoordinates returns pointer of Coordinates
func ParseCoordinates(coords string) (*Coordinates, error) {
	var group, artifact, extension, classifier, version string

	parts := strings.Split(coords, ":")
	switch len(parts) {
	case 3:
		group, artifact, version = parts[0], parts[1], parts[2]
	case 4:
		group, artifact, extension, version = parts[0], parts[1], parts[2], parts[3]
	case 5:
		group, artifact, extension, classifier, version = parts[0], parts[1], parts[2], parts[3], parts[4]
	default:
		return nil, errors.Wrapf(types.ErrBadCoordinates, "%s", coords)
	}

	if extension == "" {
		extension = defaultExtension
	}

	c := &Coordinates{
		GroupID:    group,
		ArtifactID: artifact,
		Extension:  extension,
		Classifier: classifier,
		Version:    version,
	}
	return c, c.Validate()
}

// Validate return error if invalid
func (c Coordinates) Validate() error {
	for _, part := range []string{c.GroupID, c.ArtifactID, c.Version} {
		if part == "" || strings.ContainsAny(part, "/\\") {
			return errors.Wrapf(types.ErrBadCoordinates, "%s", c)
		}
	}
	return nil
}

// String returns the canonical colon form, the classifier segment only
// when present
func (c Coordinates) String() string {
	if c.Classifier != "" {
		return fmt.Sprintf("%s:%s:%s:%s:%s", c.GroupID, c.ArtifactID, c.Extension, c.Classifier, c.Version)
	}
	return fmt.Sprintf("%s:%s:%s:%s", c.GroupID, c.ArtifactID, c.Extension, c.Version)
}

// Path returns the repository-layout relative path of the artifact
func (c Coordinates) Path() string {
	filename := fmt.Sprintf("%s-%s", c.ArtifactID, c.Version)
	if c.Classifier != "" {
		filename += "-" + c.Classifier
	}
	filename += "." + c.Extension
	return path.Join(
		strings.ReplaceAll(c.GroupID, ".", "/"),
		c.ArtifactID,
		c.Version,
		filename,
	)
}
