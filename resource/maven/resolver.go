package maven

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/cenkalti/backoff/v4"
	"github.com/cockroachdb/errors"
	"github.com/dustin/go-humanize"
	"github.com/patrickmn/go-cache"

	"github.com/spring-cloud/spring-cloud-deployer-sub001/log"
	"github.com/spring-cloud/spring-cloud-deployer-sub001/types"
)

// Resolver turns coordinates into a local repository path, fetching
// from the configured remotes on a miss
type Resolver struct {
	http.Client
	config      types.MavenConfig
	authHeaders map[string]string
	cache       *cache.Cache
}

// NewResolver returns pointer of Resolver
func NewResolver(config types.MavenConfig) *Resolver {
	authHeaders := map[string]string{}
	if config.Auth.Username != "" {
		token := base64.StdEncoding.EncodeToString([]byte(config.Auth.Username + ":" + config.Auth.Password))
		authHeaders["Authorization"] = "Basic " + token
	}
	return &Resolver{
		Client:      http.Client{Timeout: config.FetchTimeout},
		config:      config,
		authHeaders: authHeaders,
		cache:       cache.New(config.CacheTTL, 2*config.CacheTTL),
	}
}

// Resolve returns the local path of the artifact, the local repository
// wins, then the remotes in order, resolutions are cached
func (r *Resolver) Resolve(ctx context.Context, coords *Coordinates) (string, error) {
	logger := log.WithFunc("maven.Resolve").WithField("coords", coords.String())

	if hit, found := r.cache.Get(coords.String()); found {
		return hit.(string), nil
	}

	local := filepath.Join(r.config.LocalRepository, coords.Path())
	if _, err := os.Stat(local); err == nil {
		r.cache.Set(coords.String(), local, cache.DefaultExpiration)
		return local, nil
	}

	if r.config.Offline {
		return "", errors.Wrapf(types.ErrResourceNotFound, "%s not in local repository and offline is set", coords)
	}
	if len(r.config.Remotes) == 0 {
		return "", errors.WithStack(types.ErrNoRemoteRepos)
	}

	for _, remote := range r.config.Remotes {
		url := fmt.Sprintf("%s/%s", remote, coords.Path())
		if err := r.fetch(ctx, url, local); err != nil {
			logger.Warnf(ctx, "fetch from %s failed: %+v", remote, err)
			continue
		}
		r.cache.Set(coords.String(), local, cache.DefaultExpiration)
		return local, nil
	}
	return "", errors.Wrapf(types.ErrResourceNotFound, "%s not found in any remote", coords)
}

func (r *Resolver) fetch(ctx context.Context, url, dest string) error {
	logger := log.WithFunc("maven.fetch").WithField("url", url)

	if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
		return errors.WithStack(err)
	}

	return backoff.Retry(func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return backoff.Permanent(err)
		}
		for k, v := range r.authHeaders {
			req.Header.Add(k, v)
		}

		resp, err := r.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		switch {
		case resp.StatusCode == http.StatusNotFound:
			// retrying cannot make the artifact appear
			return backoff.Permanent(errors.Wrapf(types.ErrResourceNotFound, "%s", url))
		case resp.StatusCode != http.StatusOK:
			return errors.Errorf("fetch %s: %s", url, resp.Status)
		}

		written, err := writeFile(dest, resp.Body)
		if err != nil {
			return err
		}
		logger.Infof(ctx, "fetched %s", humanize.IBytes(uint64(written)))
		return nil
	}, backoff.WithMaxRetries(backoff.WithContext(backoff.NewExponentialBackOff(), ctx), uint64(r.config.FetchRetries)))
}

// writeFile lands the body next to dest first so a failed download
// never shows up as a resolvable artifact
func writeFile(dest string, body io.Reader) (int64, error) {
	tmp, err := os.CreateTemp(filepath.Dir(dest), ".fetch-*")
	if err != nil {
		return 0, errors.WithStack(err)
	}
	defer os.Remove(tmp.Name())

	written, err := io.Copy(tmp, body)
	if err != nil {
		tmp.Close()
		return 0, errors.WithStack(err)
	}
	if err := tmp.Close(); err != nil {
		return 0, errors.WithStack(err)
	}
	return written, errors.WithStack(os.Rename(tmp.Name(), dest))
}
