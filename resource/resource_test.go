package resource

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"

	"github.com/spring-cloud/spring-cloud-deployer-sub001/resource/image"
	"github.com/spring-cloud/spring-cloud-deployer-sub001/resource/maven"
	"github.com/spring-cloud/spring-cloud-deployer-sub001/types"
)

func TestParseDispatch(t *testing.T) {
	assert := assert.New(t)
	config := types.Config{}

	res, err := Parse("maven://io.spring:ticker:1.0.0", config)
	assert.NoError(err)
	assert.Equal(KindMaven, res.Kind())
	assert.IsType(&maven.Artifact{}, res)
	assert.Equal("maven://io.spring:ticker:jar:1.0.0", res.URI())

	res, err = Parse("docker:nginx:1.25", config)
	assert.NoError(err)
	assert.Equal(KindDocker, res.Kind())
	assert.IsType(&image.Image{}, res)

	path := filepath.Join(t.TempDir(), "app.jar")
	assert.NoError(os.WriteFile(path, []byte("jar"), 0600))

	res, err = Parse("file://"+path, config)
	assert.NoError(err)
	assert.Equal(KindFile, res.Kind())
	assert.Equal("file://"+path, res.URI())

	// bare path counts as a file
	res, err = Parse(path, config)
	assert.NoError(err)
	assert.Equal(KindFile, res.Kind())
}

func TestParseBadURI(t *testing.T) {
	assert := assert.New(t)
	config := types.Config{}

	_, err := Parse("ftp://example.com/app.jar", config)
	assert.True(errors.Is(err, types.ErrBadResourceURI))

	_, err = Parse("", config)
	assert.True(errors.Is(err, types.ErrBadResourceURI))

	_, err = Parse("maven://nope", config)
	assert.True(errors.Is(err, types.ErrBadCoordinates))

	_, err = Parse(filepath.Join(t.TempDir(), "missing.jar"), config)
	assert.True(errors.Is(err, types.ErrResourceNotFound))

	_, err = Parse("file://"+t.TempDir(), config)
	assert.True(errors.Is(err, types.ErrBadResourceURI))
}
