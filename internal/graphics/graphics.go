package graphics

import (
	"fmt"

	"wheel-viewer/internal/gfxctx"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/gl/v3.3-core/gl"
)

// Window configures the main window.
type Window struct {
	Width, Height int32
	Title         string
	TargetFPS     int32
	MSAA          bool
	Background    rl.Color
}

// Run opens the window and runs the main loop. setup runs once after the GL context exists and
// receives it; each frame update runs first (input, polling), then the screen is cleared and draw runs.
// teardown runs before the window closes. Close via the window button or ESC.
func Run(w Window, setup func(gfxctx.Context) error, update, draw, teardown func()) error {
	flags := uint32(rl.FlagWindowResizable)
	if w.MSAA {
		flags |= rl.FlagMsaa4xHint
	}
	rl.SetConfigFlags(flags)
	rl.InitWindow(w.Width, w.Height, w.Title)
	defer rl.CloseWindow()
	rl.SetTargetFPS(w.TargetFPS)

	ctx, err := NewGLContext()
	if err != nil {
		return err
	}
	if err := setup(ctx); err != nil {
		return err
	}
	defer teardown()

	for !rl.WindowShouldClose() {
		update()

		rl.BeginDrawing()
		rl.ClearBackground(w.Background)
		draw()
		rl.EndDrawing()
	}
	return nil
}

// GLContext is the live OpenGL context created by raylib, reached through go-gl.
type GLContext struct{}

// NewGLContext loads GL function pointers for the context raylib made current. Call after InitWindow.
func NewGLContext() (*GLContext, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("graphics: gl init: %w", err)
	}
	return &GLContext{}, nil
}

func (c *GLContext) PixelStorei(pname uint32, param int32) error {
	gl.PixelStorei(pname, param)
	if code := gl.GetError(); code != gl.NO_ERROR {
		return fmt.Errorf("graphics: glPixelStorei(0x%04X, %d): GL error 0x%04X", pname, param, code)
	}
	return nil
}

func (c *GLContext) Enable(capability uint32) {
	gl.Enable(capability)
}

func (c *GLContext) Disable(capability uint32) {
	gl.Disable(capability)
}
