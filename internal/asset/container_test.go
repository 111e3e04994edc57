package asset

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// glb builds a minimal binary glTF with a JSON chunk. lengthDelta corrupts the declared length.
func glb(t *testing.T, magic, version uint32, lengthDelta int) []byte {
	t.Helper()
	doc := []byte(`{"asset":{"version":"2.0"}}`)
	for len(doc)%4 != 0 {
		doc = append(doc, ' ')
	}
	total := glbHeaderSize + 8 + len(doc)
	var buf bytes.Buffer
	for _, v := range []uint32{magic, version, uint32(total + lengthDelta), uint32(len(doc)), chunkJSON} {
		require.NoError(t, binary.Write(&buf, binary.LittleEndian, v))
	}
	buf.Write(doc)
	return buf.Bytes()
}

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0644))
	return path
}

func TestValidate_GLB(t *testing.T) {
	data := glb(t, glbMagic, 2, 0)
	path := writeFile(t, "wheel.glb", data)

	format, size, err := Validate(path)
	require.NoError(t, err)
	assert.Equal(t, FormatGLB, format)
	assert.Equal(t, int64(len(data)), size)
}

func TestValidate_GLBErrors(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want error
	}{
		{"bad magic", glb(t, 0xDEADBEEF, 2, 0), ErrBadMagic},
		{"version 1", glb(t, glbMagic, 1, 0), ErrUnsupportedVersion},
		{"length mismatch", glb(t, glbMagic, 2, 16), ErrLengthMismatch},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := Validate(writeFile(t, "wheel.glb", tt.data))
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestValidate_GLBTruncated(t *testing.T) {
	_, _, err := Validate(writeFile(t, "wheel.glb", []byte("glTF")))
	assert.Error(t, err)
}

func TestValidate_GLBWithoutJSONChunk(t *testing.T) {
	data := glb(t, glbMagic, 2, 0)
	binary.LittleEndian.PutUint32(data[16:20], 0x004E4942) // "BIN\0"
	_, _, err := Validate(writeFile(t, "wheel.glb", data))
	assert.ErrorIs(t, err, ErrMissingJSONChunk)
}

func TestValidate_GLTF(t *testing.T) {
	path := writeFile(t, "wheel.gltf", []byte(`{"asset":{"version":"2.0"},"scenes":[]}`))
	format, _, err := Validate(path)
	require.NoError(t, err)
	assert.Equal(t, FormatGLTF, format)

	old := writeFile(t, "old.gltf", []byte(`{"asset":{"version":"1.0"}}`))
	_, _, err = Validate(old)
	assert.ErrorIs(t, err, ErrUnsupportedVersion)
}

func TestValidate_UnsupportedAndMissing(t *testing.T) {
	_, _, err := Validate(writeFile(t, "wheel.obj", []byte("v 0 0 0")))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	_, _, err = Validate(filepath.Join(t.TempDir(), "missing.glb"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestFormatOf(t *testing.T) {
	assert.Equal(t, FormatGLB, FormatOf("a/WHEEL.GLB"))
	assert.Equal(t, FormatGLTF, FormatOf("scene.gltf"))
	assert.Equal(t, FormatUnknown, FormatOf("wheel.fbx"))
	assert.Equal(t, "glb", FormatGLB.String())
}
