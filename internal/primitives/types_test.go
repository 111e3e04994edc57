package primitives

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

type handle struct{ name string }

func TestTransform_ScaleReachesMatrixUnchanged(t *testing.T) {
	p := New(&handle{name: "wheel"}, 1.6)
	m := p.Transform()

	assert.Equal(t, float32(1.6), m.At(0, 0))
	assert.Equal(t, float32(1.6), m.At(1, 1))
	assert.Equal(t, float32(1.6), m.At(2, 2))
	assert.Equal(t, float32(1), m.At(3, 3))
	assert.Equal(t, mgl32.Scale3D(1.6, 1.6, 1.6), m)
	assert.Equal(t, "wheel", p.Object.name)
}

func TestTransform_TranslationNotScaled(t *testing.T) {
	p := New("wheel", 2)
	p.Position = mgl32.Vec3{1, 2, 3}
	m := p.Transform()

	assert.Equal(t, mgl32.Vec3{1, 2, 3}, m.Col(3).Vec3())
	assert.Equal(t, float32(2), m.At(0, 0))
	assert.Equal(t, mgl32.Vec3{3, 4, 5}, m.Mul4x1(mgl32.Vec4{1, 1, 1, 1}).Vec3())
}

func TestNew_ZeroScaleDefaultsToOne(t *testing.T) {
	p := New(0, 0)
	assert.Equal(t, float32(1), p.Scale)
	assert.Equal(t, mgl32.Ident4(), p.Transform())
}
