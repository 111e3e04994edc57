package asset

import (
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"

	"wheel-viewer/internal/envpreset"

	"github.com/anthonynsimon/bild/blur"
	"github.com/anthonynsimon/bild/transform"
	_ "golang.org/x/image/webp"
)

// BackdropOptions selects and post-processes the environment panorama.
type BackdropOptions struct {
	Dir      string
	Preset   envpreset.Preset
	Blur     float64
	MaxWidth int
}

var backdropExts = []string{".jpg", ".jpeg", ".png", ".webp"}

// findBackdrop returns the first existing file for the preset: its configured file name,
// then the preset name with each known extension.
func findBackdrop(dir string, p envpreset.Preset) string {
	candidates := []string{p.File}
	for _, ext := range backdropExts {
		candidates = append(candidates, p.Name+ext)
	}
	for _, c := range candidates {
		if c == "" {
			continue
		}
		path := filepath.Join(dir, c)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// LoadBackdrop decodes the preset panorama, downsizes it to MaxWidth and blurs it.
// It returns a nil image and no error when the preset has no file; the scene then draws
// the preset gradient.
func LoadBackdrop(opts BackdropOptions) (image.Image, string, error) {
	path := findBackdrop(opts.Dir, opts.Preset)
	if path == "" {
		return nil, "", nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, path, fmt.Errorf("asset: backdrop: %w", err)
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		if errors.Is(err, image.ErrFormat) {
			return nil, path, fmt.Errorf("asset: backdrop %s: unsupported image format", filepath.Base(path))
		}
		return nil, path, fmt.Errorf("asset: backdrop %s: %w", filepath.Base(path), err)
	}
	return Process(img, opts.MaxWidth, opts.Blur), path, nil
}

// Process downsizes img to maxWidth (keeping aspect ratio) and applies a Gaussian blur of radius.
// Zero values skip the corresponding step.
func Process(img image.Image, maxWidth int, radius float64) image.Image {
	b := img.Bounds()
	if maxWidth > 0 && b.Dx() > maxWidth {
		h := b.Dy() * maxWidth / b.Dx()
		if h < 1 {
			h = 1
		}
		img = transform.Resize(img, maxWidth, h, transform.Linear)
	}
	if radius > 0 {
		img = blur.Gaussian(img, radius)
	}
	return img
}

// IsEquirect reports whether an image looks like a 2:1 equirectangular panorama.
func IsEquirect(img image.Image) bool {
	b := img.Bounds()
	if b.Dy() == 0 {
		return false
	}
	aspect := float64(b.Dx()) / float64(b.Dy())
	return aspect >= 1.8 && aspect <= 2.2
}

// Projection is how a backdrop image is mapped around the scene.
type Projection int

const (
	// Flat images have no sky layout; the scene draws the preset gradient instead.
	Flat Projection = iota
	Equirect
	Cubemap
)

func (p Projection) String() string {
	switch p {
	case Equirect:
		return "equirect"
	case Cubemap:
		return "cubemap"
	}
	return "flat"
}

// ProjectionOf picks the projection for img. Cubemap layouts are the ones the renderer
// detects on its own: 6:1 and 1:6 strips, 4:3 and 3:4 crosses, compared in whole face sizes.
func ProjectionOf(img image.Image) Projection {
	if img == nil {
		return Flat
	}
	if IsEquirect(img) {
		return Equirect
	}
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	if w == 0 || h == 0 {
		return Flat
	}
	switch {
	case w/6 == h, h/6 == w:
		return Cubemap
	case w/4 > 0 && w/4 == h/3, h/4 > 0 && w/3 == h/4:
		return Cubemap
	}
	return Flat
}
