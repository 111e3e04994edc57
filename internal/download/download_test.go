package download

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDownload_SavesWithURLName(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "model/gltf-binary")
		_, _ = w.Write([]byte("payload"))
	}))
	defer srv.Close()

	dir := t.TempDir()
	path, err := Download(context.Background(), srv.URL+"/models/wheel.glb?v=2", dir, time.Second)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "wheel.glb"), path)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "payload", string(data))
}

func TestDownload_ExtensionFromContentTypeAndDisposition(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/zip")
		w.Header().Set("Content-Disposition", `attachment; filename="wheel bundle.zip"`)
		_, _ = w.Write([]byte("PK"))
	}))
	defer srv.Close()

	dir := t.TempDir()
	path, err := Download(context.Background(), srv.URL+"/get", dir, time.Second)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "wheel_bundle.zip"), path)
}

func TestDownload_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	_, err := Download(context.Background(), srv.URL+"/missing.glb", t.TempDir(), time.Second)
	assert.ErrorContains(t, err, "HTTP 404")
}

func TestDownload_CancelledContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Download(ctx, srv.URL+"/wheel.glb", t.TempDir(), time.Second)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestIsURL(t *testing.T) {
	assert.True(t, IsURL("https://example.com/wheel.glb"))
	assert.True(t, IsURL(" HTTP://example.com/wheel.glb"))
	assert.False(t, IsURL("assets/models/wheel.glb"))
	assert.False(t, IsURL("file:///tmp/wheel.glb"))
}

func TestSanitizeFilename(t *testing.T) {
	assert.Equal(t, "my_wheel", sanitizeFilename("my wheel"))
	assert.Equal(t, "model", sanitizeFilename(""))
	assert.Equal(t, "model", sanitizeFilename("..."))
}
