package primitives

import "github.com/go-gl/mathgl/mgl32"

// Primitive places one loaded object in the scene. It is rebuilt every frame from the
// current asset handle and scale; it carries no identity of its own.
type Primitive[T any] struct {
	Object   T
	Scale    float32
	Position mgl32.Vec3
}

// New returns a primitive for obj at the origin. A zero scale means 1.
func New[T any](obj T, scale float32) Primitive[T] {
	if scale == 0 {
		scale = 1
	}
	return Primitive[T]{Object: obj, Scale: scale}
}

// Transform is the model matrix handed to the renderer: uniform scale, then translation.
// Nothing else in the draw path scales the object.
func (p Primitive[T]) Transform() mgl32.Mat4 {
	s := p.Scale
	return mgl32.Translate3D(p.Position.X(), p.Position.Y(), p.Position.Z()).Mul4(mgl32.Scale3D(s, s, s))
}
