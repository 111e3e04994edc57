package asset

import (
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

const (
	glbMagic      = 0x46546C67 // "glTF"
	glbVersion    = 2
	glbHeaderSize = 12
	chunkJSON     = 0x4E4F534A // "JSON"
)

var (
	ErrBadMagic           = errors.New("asset: not a glTF binary")
	ErrUnsupportedVersion = errors.New("asset: unsupported glTF version")
	ErrLengthMismatch     = errors.New("asset: glTF length does not match file size")
	ErrMissingJSONChunk   = errors.New("asset: first glTF chunk is not JSON")
	ErrUnsupportedFormat  = errors.New("asset: unsupported model format")
)

// Format is the container of a model file.
type Format int

const (
	FormatUnknown Format = iota
	FormatGLB
	FormatGLTF
)

func (f Format) String() string {
	switch f {
	case FormatGLB:
		return "glb"
	case FormatGLTF:
		return "gltf"
	}
	return "unknown"
}

// FormatOf picks the format from the file extension.
func FormatOf(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".glb":
		return FormatGLB
	case ".gltf":
		return FormatGLTF
	}
	return FormatUnknown
}

// GLBHeader is the fixed 12-byte header of a binary glTF file.
type GLBHeader struct {
	Magic   uint32
	Version uint32
	Length  uint32
}

// ReadGLBHeader reads and checks the header and the first chunk header from r.
func ReadGLBHeader(r io.Reader) (GLBHeader, error) {
	var h GLBHeader
	if err := binary.Read(r, binary.LittleEndian, &h); err != nil {
		return h, fmt.Errorf("asset: read glb header: %w", err)
	}
	if h.Magic != glbMagic {
		return h, ErrBadMagic
	}
	if h.Version != glbVersion {
		return h, fmt.Errorf("%w: %d", ErrUnsupportedVersion, h.Version)
	}
	var chunk struct {
		Length uint32
		Type   uint32
	}
	if err := binary.Read(r, binary.LittleEndian, &chunk); err != nil {
		return h, fmt.Errorf("asset: read glb chunk: %w", err)
	}
	if chunk.Type != chunkJSON {
		return h, ErrMissingJSONChunk
	}
	return h, nil
}

// Validate checks that path holds a loadable glTF 2.0 model and returns its format and size.
func Validate(path string) (Format, int64, error) {
	format := FormatOf(path)
	f, err := os.Open(path)
	if err != nil {
		return format, 0, fmt.Errorf("asset: %w", err)
	}
	defer f.Close()
	info, err := f.Stat()
	if err != nil {
		return format, 0, fmt.Errorf("asset: %w", err)
	}

	switch format {
	case FormatGLB:
		h, err := ReadGLBHeader(f)
		if err != nil {
			return format, info.Size(), err
		}
		if int64(h.Length) != info.Size() {
			return format, info.Size(), fmt.Errorf("%w: header says %d, file is %d", ErrLengthMismatch, h.Length, info.Size())
		}
	case FormatGLTF:
		var doc struct {
			Asset struct {
				Version string `json:"version"`
			} `json:"asset"`
		}
		if err := json.NewDecoder(f).Decode(&doc); err != nil {
			return format, info.Size(), fmt.Errorf("asset: parse gltf: %w", err)
		}
		if !strings.HasPrefix(doc.Asset.Version, "2") {
			return format, info.Size(), fmt.Errorf("%w: %q", ErrUnsupportedVersion, doc.Asset.Version)
		}
	default:
		return format, info.Size(), fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(path))
	}
	return format, info.Size(), nil
}
