package loadstate

import "sync"

// State is the one-way loading state of a view. The zero value is Initial.
type State int

const (
	Initial State = iota
	Loaded
)

func (s State) String() string {
	switch s {
	case Initial:
		return "initial"
	case Loaded:
		return "loaded"
	}
	return "unknown"
}

// Controller owns the loading state of one view. It moves from Initial to Loaded
// exactly once; there is no way back.
type Controller struct {
	mu    sync.Mutex
	state State
	// OnChange, if set, is called once with the new state right after the transition.
	OnChange func(State)
}

// New returns a controller in the Initial state.
func New() *Controller {
	return &Controller{}
}

// MarkLoaded moves the controller to Loaded. It returns true only for the call that
// performed the transition; later calls are no-ops.
func (c *Controller) MarkLoaded() bool {
	c.mu.Lock()
	if c.state == Loaded {
		c.mu.Unlock()
		return false
	}
	c.state = Loaded
	hook := c.OnChange
	c.mu.Unlock()

	if hook != nil {
		hook(Loaded)
	}
	return true
}

// IsLoading reports whether the asset is still outstanding.
func (c *Controller) IsLoading() bool {
	return c.State() == Initial
}

func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}
