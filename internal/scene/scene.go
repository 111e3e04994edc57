package scene

import (
	"fmt"

	"wheel-viewer/internal/asset"
	"wheel-viewer/internal/gfxctx"
	"wheel-viewer/internal/logger"
	"wheel-viewer/internal/orbit"
	"wheel-viewer/internal/primitives"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"
)

// Scene composes the 3D viewport: orbit camera, ambient light, and the model and environment,
// both deferred until Attach. Until then Draw renders nothing at the 3D layer.
// All methods run on the main thread (raylib owns the GL context there).
type Scene struct {
	Camera   rl.Camera3D
	Controls *orbit.Controls
	Ambient  AmbientLight
	// FlipY asks for vertically flipped texture uploads.
	FlipY bool

	scale    float32
	gfx      gfxctx.Context
	log      *logger.Logger
	light    lighting
	model    rl.Model
	backdrop backdrop
	attached bool
}

// New returns a scene with a perspective camera orbiting the origin. scale is applied to the model
// when it is attached; gfx receives texture unpack configuration.
func New(scale float32, gfx gfxctx.Context, log *logger.Logger) *Scene {
	s := &Scene{
		Controls: orbit.New(mgl32.Vec3{0, 2, 5}, mgl32.Vec3{}),
		Ambient:  DefaultAmbient(),
		scale:    scale,
		gfx:      gfx,
		log:      log,
	}
	s.Camera.Up = rl.NewVector3(0, 1, 0)
	s.Camera.Fovy = 75
	s.Camera.Projection = rl.CameraPerspective
	s.syncCamera()
	return s
}

// Attached reports whether the model and environment have been uploaded.
func (s *Scene) Attached() bool {
	return s.attached
}

// Attach uploads the resolved bundle: the model with the ambient shader on every material, and
// the environment backdrop. It must only be called once; later calls return an error.
func (s *Scene) Attach(b *asset.Bundle) error {
	if s.attached {
		return fmt.Errorf("scene: already attached")
	}
	if b == nil {
		return fmt.Errorf("scene: nil bundle")
	}
	model := rl.LoadModel(b.ModelPath)
	if !rl.IsModelValid(model) {
		return fmt.Errorf("scene: renderer could not load %s", b.ModelPath)
	}
	light, ok := loadLighting()
	if ok {
		mats := model.GetMaterials()
		for i := range mats {
			mats[i].Shader = light.shader
		}
	} else {
		s.log.Warnf("ambient shader failed to compile; drawing with default material")
	}
	bd, err := uploadBackdrop(s.gfx, b, s.FlipY)
	if err != nil {
		rl.UnloadModel(model)
		light.unload()
		return fmt.Errorf("scene: backdrop: %w", err)
	}

	s.model = model
	s.light = light
	s.backdrop = bd
	s.Ambient.Sky = rgb(b.Preset.Top)
	s.Ambient.Ground = rgb(b.Preset.Bottom)
	s.attached = true

	w, h := bounds(b.Backdrop)
	s.log.Debugf("attached %s (%s, %d bytes), %d meshes", b.ModelPath, b.Format, b.Size, model.MeshCount)
	if b.BackdropPath == "" {
		s.log.Debugf("environment %q: no backdrop file, drawing gradient", b.Preset.Name)
	} else {
		s.log.Debugf("environment %q: %s %dx%d as %s", b.Preset.Name, b.BackdropPath, w, h, bd.projection)
	}
	return nil
}

// Primitive is the display primitive for this frame: the loaded model at the configured scale.
func (s *Scene) Primitive() primitives.Primitive[rl.Model] {
	return primitives.New(s.model, s.scale)
}

// Update runs once per frame: left-drag orbits, the wheel zooms.
func (s *Scene) Update() {
	if rl.IsMouseButtonDown(rl.MouseButtonLeft) {
		d := rl.GetMouseDelta()
		s.Controls.Rotate(d.X, d.Y)
	}
	s.Controls.Zoom(rl.GetMouseWheelMove())
	s.syncCamera()
}

func (s *Scene) syncCamera() {
	p := s.Controls.Position()
	t := s.Controls.Target
	s.Camera.Position = rl.NewVector3(p.X(), p.Y(), p.Z())
	s.Camera.Target = rl.NewVector3(t.X(), t.Y(), t.Z())
}

// Draw renders the scene. Call after ClearBackground and before the 2D overlay.
// Before Attach nothing is drawn in place of the model and environment.
func (s *Scene) Draw() {
	if !s.attached {
		return
	}
	s.backdrop.drawGradient()
	rl.BeginMode3D(s.Camera)
	s.backdrop.drawSkybox(s.Camera)
	s.light.apply(s.Ambient)

	prim := s.Primitive()
	prim.Object.Transform = toMatrix(prim.Transform())
	rl.DrawModel(prim.Object, rl.NewVector3(0, 0, 0), 1, rl.White)
	rl.EndMode3D()
}

// Unload frees GPU resources. Safe to call when nothing was attached.
func (s *Scene) Unload() {
	if !s.attached {
		return
	}
	s.backdrop.unload()
	s.light.unload()
	rl.UnloadModel(s.model)
	s.attached = false
}

// toMatrix converts a column-major mgl32 matrix to raylib's layout (same element order).
func toMatrix(m mgl32.Mat4) rl.Matrix {
	return rl.Matrix{
		M0: m[0], M1: m[1], M2: m[2], M3: m[3],
		M4: m[4], M5: m[5], M6: m[6], M7: m[7],
		M8: m[8], M9: m[9], M10: m[10], M11: m[11],
		M12: m[12], M13: m[13], M14: m[14], M15: m[15],
	}
}
