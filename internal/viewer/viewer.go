// Package viewer is the top-level view: it watches the asset fetch, hands the result to the scene,
// flips the loading state once, and decides which overlay region is visible.
package viewer

import (
	"wheel-viewer/internal/asset"
	"wheel-viewer/internal/loadstate"
	"wheel-viewer/internal/logger"

	"github.com/google/uuid"
)

// Region is the overlay region shown over the canvas. Exactly one is visible at a time.
type Region int

const (
	Indicator Region = iota
	Caption
	Error
)

func (r Region) String() string {
	switch r {
	case Indicator:
		return "indicator"
	case Caption:
		return "caption"
	case Error:
		return "error"
	}
	return "unknown"
}

// Attacher receives the resolved bundle on the main thread (the scene).
type Attacher interface {
	Attach(b *asset.Bundle) error
}

// Viewer owns the loading state of one view instance.
type Viewer struct {
	ID uuid.UUID

	state    *loadstate.Controller
	task     *asset.Task[*asset.Bundle]
	attacher Attacher
	log      *logger.Logger
	caption  string
	err      error
}

// New returns a viewer in the Initial state waiting on task.
func New(task *asset.Task[*asset.Bundle], attacher Attacher, log *logger.Logger, caption string) *Viewer {
	v := &Viewer{
		ID:       uuid.New(),
		state:    loadstate.New(),
		task:     task,
		attacher: attacher,
		log:      log,
		caption:  caption,
	}
	v.state.OnChange = func(s loadstate.State) {
		v.log.Infof("view %s: %s", v.ID, s)
	}
	v.log.Debugf("view %s: mounted, waiting for asset", v.ID)
	return v
}

// Step polls the fetch once. Call every frame on the main thread.
// On success the bundle is attached and the view is marked loaded; on failure the error is kept
// and the view stays in Initial for good.
func (v *Viewer) Step() {
	if !v.state.IsLoading() || v.err != nil {
		return
	}
	status, bundle, err := v.task.Poll()
	switch status {
	case asset.Pending:
		return
	case asset.Failed:
		v.fail(err)
	case asset.Succeeded:
		if err := v.attacher.Attach(bundle); err != nil {
			v.fail(err)
			return
		}
		v.state.MarkLoaded()
	}
}

func (v *Viewer) fail(err error) {
	v.err = err
	v.log.Errorf("view %s: asset failed: %v", v.ID, err)
}

// Region returns the overlay region to show this frame.
func (v *Viewer) Region() Region {
	switch {
	case !v.state.IsLoading():
		return Caption
	case v.err != nil:
		return Error
	}
	return Indicator
}

// IsLoading reports whether the view is still in the Initial state.
func (v *Viewer) IsLoading() bool {
	return v.state.IsLoading()
}

func (v *Viewer) State() loadstate.State {
	return v.state.State()
}

// Caption is the text shown once loaded.
func (v *Viewer) Caption() string {
	return v.caption
}

// Err is the fetch or attach error, if any.
func (v *Viewer) Err() error {
	return v.err
}
