package asset

import (
	"context"
	"image"

	"wheel-viewer/internal/envpreset"
)

// Bundle is everything the scene needs to show the model, resolved off the main thread.
// GPU upload of the model and backdrop happens later in scene.Attach.
type Bundle struct {
	ModelPath string
	Format    Format
	Size      int64

	Preset       envpreset.Preset
	Backdrop     image.Image // nil: draw the preset gradient
	BackdropPath string
}

// Request describes one fetch.
type Request struct {
	Model    string
	Resolver Resolver
	Backdrop BackdropOptions
}

// Fetch resolves and validates the model, then loads the backdrop. It checks ctx between steps.
func Fetch(ctx context.Context, req Request) (*Bundle, error) {
	path, err := req.Resolver.Resolve(ctx, req.Model)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	format, size, err := Validate(path)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	img, imgPath, err := LoadBackdrop(req.Backdrop)
	if err != nil {
		return nil, err
	}
	return &Bundle{
		ModelPath:    path,
		Format:       format,
		Size:         size,
		Preset:       req.Backdrop.Preset,
		Backdrop:     img,
		BackdropPath: imgPath,
	}, nil
}

// FetchAsync starts Fetch in the background and returns its task.
func FetchAsync(ctx context.Context, req Request) *Task[*Bundle] {
	return Start(ctx, func(ctx context.Context) (*Bundle, error) {
		return Fetch(ctx, req)
	})
}
