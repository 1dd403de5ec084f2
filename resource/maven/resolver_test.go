package maven

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"

	"github.com/spring-cloud/spring-cloud-deployer-sub001/types"
)

func testConfig(t *testing.T, remotes ...string) types.MavenConfig {
	return types.MavenConfig{
		LocalRepository: t.TempDir(),
		Remotes:         remotes,
		FetchTimeout:    5 * time.Second,
		FetchRetries:    1,
		CacheTTL:        time.Minute,
	}
}

func TestResolveLocalRepositoryHit(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()

	config := testConfig(t)
	coords, err := ParseCoordinates("io.spring:ticker:1.0.0")
	assert.NoError(err)

	local := filepath.Join(config.LocalRepository, coords.Path())
	assert.NoError(os.MkdirAll(filepath.Dir(local), 0755))
	assert.NoError(os.WriteFile(local, []byte("jar bytes"), 0600))

	r := NewResolver(config)
	path, err := r.Resolve(ctx, coords)
	assert.NoError(err)
	assert.Equal(local, path)

	// second resolution comes from the cache
	path, err = r.Resolve(ctx, coords)
	assert.NoError(err)
	assert.Equal(local, path)
}

func TestResolveRemoteFetch(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()

	hits := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		hits++
		assert.Equal("/io/spring/ticker/1.0.0/ticker-1.0.0.jar", req.URL.Path)
		assert.Equal("Basic dXNlcjpwYXNz", req.Header.Get("Authorization"))
		_, _ = w.Write([]byte("jar bytes"))
	}))
	defer server.Close()

	config := testConfig(t, server.URL)
	config.Auth = types.AuthConfig{Username: "user", Password: "pass"}
	coords, err := ParseCoordinates("io.spring:ticker:1.0.0")
	assert.NoError(err)

	r := NewResolver(config)
	path, err := r.Resolve(ctx, coords)
	assert.NoError(err)
	assert.Equal(1, hits)

	content, err := os.ReadFile(path)
	assert.NoError(err)
	assert.Equal("jar bytes", string(content))

	// now present locally, no second download even past the cache
	r.cache.Flush()
	_, err = r.Resolve(ctx, coords)
	assert.NoError(err)
	assert.Equal(1, hits)
}

func TestResolveRemoteFallback(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()

	missing := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer missing.Close()
	serving := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("jar bytes"))
	}))
	defer serving.Close()

	config := testConfig(t, missing.URL, serving.URL)
	coords, err := ParseCoordinates("io.spring:ticker:1.0.0")
	assert.NoError(err)

	path, err := NewResolver(config).Resolve(ctx, coords)
	assert.NoError(err)
	assert.FileExists(path)
}

func TestResolveMisses(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()

	coords, err := ParseCoordinates("io.spring:ticker:1.0.0")
	assert.NoError(err)

	config := testConfig(t)
	_, err = NewResolver(config).Resolve(ctx, coords)
	assert.True(errors.Is(err, types.ErrNoRemoteRepos))

	config = testConfig(t)
	config.Offline = true
	_, err = NewResolver(config).Resolve(ctx, coords)
	assert.True(errors.Is(err, types.ErrResourceNotFound))

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()
	config = testConfig(t, server.URL)
	_, err = NewResolver(config).Resolve(ctx, coords)
	assert.True(errors.Is(err, types.ErrResourceNotFound))
}
