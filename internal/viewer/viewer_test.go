package viewer

import (
	"errors"
	"strings"
	"testing"

	"wheel-viewer/internal/asset"
	"wheel-viewer/internal/loadstate"
	"wheel-viewer/internal/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const wheelCaption = "This is a 3D model of a wheel"

type fakeScene struct {
	attached []*asset.Bundle
	err      error
}

func (f *fakeScene) Attach(b *asset.Bundle) error {
	f.attached = append(f.attached, b)
	return f.err
}

func newViewer(t *testing.T) (*Viewer, *asset.Task[*asset.Bundle], *fakeScene, *logger.Logger) {
	t.Helper()
	task := asset.NewTask[*asset.Bundle]()
	scene := &fakeScene{}
	log := logger.New("", "test")
	return New(task, scene, log, wheelCaption), task, scene, log
}

func TestViewer_MountShowsIndicator(t *testing.T) {
	v, _, scene, _ := newViewer(t)
	v.Step()

	assert.True(t, v.IsLoading())
	assert.Equal(t, loadstate.Initial, v.State())
	assert.Equal(t, Indicator, v.Region())
	assert.Empty(t, scene.attached)
	assert.NotEqual(t, [16]byte{}, [16]byte(v.ID))
}

func TestViewer_ResolveShowsCaption(t *testing.T) {
	v, task, scene, log := newViewer(t)
	bundle := &asset.Bundle{ModelPath: "assets/models/wheel.glb"}

	v.Step()
	require.True(t, task.Resolve(bundle))
	v.Step()
	v.Step()
	v.Step()

	assert.False(t, v.IsLoading())
	assert.Equal(t, Caption, v.Region())
	assert.Equal(t, wheelCaption, v.Caption())
	require.Len(t, scene.attached, 1, "bundle must be attached exactly once")
	assert.Same(t, bundle, scene.attached[0])

	var loadedLines int
	for _, l := range log.Lines() {
		assert.NotContains(t, l, "ERROR")
		if strings.Contains(l, "loaded") {
			loadedLines++
		}
	}
	assert.Equal(t, 1, loadedLines)
}

func TestViewer_NeverResolvesKeepsIndicator(t *testing.T) {
	v, _, scene, _ := newViewer(t)
	for i := 0; i < 1000; i++ {
		assert.NotPanics(t, v.Step)
	}
	assert.Equal(t, Indicator, v.Region())
	assert.True(t, v.IsLoading())
	assert.NoError(t, v.Err())
	assert.Empty(t, scene.attached)
}

func TestViewer_FetchFailureShowsError(t *testing.T) {
	v, task, scene, log := newViewer(t)
	want := errors.New("asset: not a glTF binary")
	task.Reject(want)

	v.Step()
	v.Step()

	assert.Equal(t, Error, v.Region())
	assert.ErrorIs(t, v.Err(), want)
	assert.True(t, v.IsLoading())
	assert.Empty(t, scene.attached)

	var errLines int
	for _, l := range log.Lines() {
		if strings.Contains(l, "ERROR") {
			errLines++
		}
	}
	assert.Equal(t, 1, errLines, "failure is reported once")
}

func TestViewer_AttachFailureShowsError(t *testing.T) {
	v, task, scene, _ := newViewer(t)
	scene.err = errors.New("renderer could not load")
	task.Resolve(&asset.Bundle{})

	v.Step()
	v.Step()

	assert.Equal(t, Error, v.Region())
	assert.Len(t, scene.attached, 1)
	assert.EqualError(t, v.Err(), "renderer could not load")
}

func TestViewer_RegionsAreExclusive(t *testing.T) {
	v, task, _, _ := newViewer(t)
	seen := map[Region]bool{}
	for i := 0; i < 10; i++ {
		if i == 5 {
			task.Resolve(&asset.Bundle{})
		}
		v.Step()
		r := v.Region()
		seen[r] = true
		assert.Equal(t, r == Caption, !v.IsLoading())
	}
	assert.Equal(t, map[Region]bool{Indicator: true, Caption: true}, seen)
}

func TestRegion_String(t *testing.T) {
	assert.Equal(t, "indicator", Indicator.String())
	assert.Equal(t, "caption", Caption.String())
	assert.Equal(t, "error", Error.String())
}
