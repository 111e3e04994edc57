package asset

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"wheel-viewer/internal/archive"
	"wheel-viewer/internal/download"
)

// ErrNoModelInBundle is returned when a zip bundle holds no .glb or .gltf file.
var ErrNoModelInBundle = errors.New("asset: no glTF model in bundle")

// Resolver turns a model reference (local path, http(s) URL, or .zip bundle) into a local model file.
type Resolver struct {
	CacheDir string
	Timeout  time.Duration
	// Download defaults to download.Download.
	Download func(ctx context.Context, url, destDir string, timeout time.Duration) (string, error)
}

// Resolve returns the path of a local .glb/.gltf file for ref.
func (r Resolver) Resolve(ctx context.Context, ref string) (string, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return "", errors.New("asset: empty model reference")
	}
	path := ref
	if download.IsURL(ref) {
		fetch := r.Download
		if fetch == nil {
			fetch = download.Download
		}
		p, err := fetch(ctx, ref, r.cacheDir(), r.Timeout)
		if err != nil {
			return "", fmt.Errorf("asset: %w", err)
		}
		path = p
	}
	if _, err := os.Stat(path); err != nil {
		return "", fmt.Errorf("asset: %w", err)
	}
	if strings.EqualFold(filepath.Ext(path), ".zip") {
		return r.unbundle(path)
	}
	return path, nil
}

func (r Resolver) cacheDir() string {
	if r.CacheDir == "" {
		return filepath.Join(os.TempDir(), "wheel-viewer")
	}
	return r.CacheDir
}

// unbundle extracts a zip next to the cache and picks the shallowest model inside.
func (r Resolver) unbundle(zipPath string) (string, error) {
	name := strings.TrimSuffix(filepath.Base(zipPath), filepath.Ext(zipPath))
	dest := filepath.Join(r.cacheDir(), name)
	if _, err := archive.Unzip(zipPath, dest); err != nil {
		return "", fmt.Errorf("asset: %w", err)
	}
	models, err := archive.FindFiles(dest, ".glb", ".gltf")
	if err != nil {
		return "", fmt.Errorf("asset: %w", err)
	}
	if len(models) == 0 {
		return "", fmt.Errorf("%w: %s", ErrNoModelInBundle, zipPath)
	}
	return models[0], nil
}
