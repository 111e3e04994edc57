package archive

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeZip(t *testing.T, entries map[string]string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bundle.zip")
	f, err := os.Create(path)
	require.NoError(t, err)
	zw := zip.NewWriter(f)
	for name, body := range entries {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte(body))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())
	return path
}

func TestUnzipAndFindFiles(t *testing.T) {
	zipPath := writeZip(t, map[string]string{
		"wheel/scene.gltf":        "{}",
		"wheel/textures/tire.png": "png",
		"extra/nested/copy.glb":   "glb",
	})
	dest := t.TempDir()

	files, err := Unzip(zipPath, dest)
	require.NoError(t, err)
	assert.Len(t, files, 3)

	models, err := FindFiles(dest, ".GLB", ".gltf")
	require.NoError(t, err)
	require.Len(t, models, 2)
	assert.Equal(t, filepath.Join(dest, "wheel", "scene.gltf"), models[0])
	assert.Equal(t, filepath.Join(dest, "extra", "nested", "copy.glb"), models[1])
}

func TestUnzip_RejectsPathEscape(t *testing.T) {
	zipPath := writeZip(t, map[string]string{"../evil.glb": "x"})
	_, err := Unzip(zipPath, t.TempDir())
	assert.ErrorIs(t, err, ErrUnsafePath)
}

func TestUnzip_NotAZip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.zip")
	require.NoError(t, os.WriteFile(path, []byte("nope"), 0644))
	_, err := Unzip(path, t.TempDir())
	assert.Error(t, err)
}
