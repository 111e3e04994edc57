// Package gfxctx describes the small slice of the graphics context the viewer configures,
// plus a decorator that filters calls the host context does not support.
package gfxctx

const (
	// UnpackFlipY is the WebGL-only vertical flip flag for texture uploads.
	// Desktop GL rejects it with GL_INVALID_ENUM.
	UnpackFlipY uint32 = 0x9240
	// UnpackAlignment is GL_UNPACK_ALIGNMENT.
	UnpackAlignment uint32 = 0x0CF5
	// Multisample is GL_MULTISAMPLE.
	Multisample uint32 = 0x809D
)

// Context is the configuration surface of a graphics context.
type Context interface {
	PixelStorei(pname uint32, param int32) error
	Enable(capability uint32)
	Disable(capability uint32)
}

// FlipYFilter wraps a Context and swallows PixelStorei(UnpackFlipY, ...).
// All other calls reach the wrapped context unchanged and return its result.
type FlipYFilter struct {
	next Context
}

// NewFlipYFilter returns a filter forwarding to next. next is not modified.
func NewFlipYFilter(next Context) *FlipYFilter {
	return &FlipYFilter{next: next}
}

func (f *FlipYFilter) PixelStorei(pname uint32, param int32) error {
	if pname == UnpackFlipY {
		return nil
	}
	return f.next.PixelStorei(pname, param)
}

func (f *FlipYFilter) Enable(capability uint32) {
	f.next.Enable(capability)
}

func (f *FlipYFilter) Disable(capability uint32) {
	f.next.Disable(capability)
}

// Unwrap returns the wrapped context.
func (f *FlipYFilter) Unwrap() Context {
	return f.next
}

// Unpack configures ctx for a tightly packed texture upload, runs upload, then restores the
// default alignment of 4. The restore runs on every path once alignment was changed.
// The first error is returned.
func Unpack(ctx Context, flipY bool, upload func() error) (err error) {
	if err := ctx.PixelStorei(UnpackAlignment, 1); err != nil {
		return err
	}
	defer func() {
		if rerr := ctx.PixelStorei(UnpackAlignment, 4); err == nil {
			err = rerr
		}
	}()
	var flip int32
	if flipY {
		flip = 1
	}
	if err := ctx.PixelStorei(UnpackFlipY, flip); err != nil {
		return err
	}
	return upload()
}
