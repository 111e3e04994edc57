package gfxctx

import (
	"fmt"
	"sync"
)

// Call is one recorded context call.
type Call struct {
	Op    string // "PixelStorei", "Enable" or "Disable"
	Name  uint32
	Param int32
}

func (c Call) String() string {
	if c.Op == "PixelStorei" {
		return fmt.Sprintf("%s(0x%04X, %d)", c.Op, c.Name, c.Param)
	}
	return fmt.Sprintf("%s(0x%04X)", c.Op, c.Name)
}

// Recorder is an in-memory Context. It records every call and returns Err from PixelStorei.
// Tests use it in place of a live GL context.
type Recorder struct {
	mu    sync.Mutex
	calls []Call
	Err   error
}

func (r *Recorder) PixelStorei(pname uint32, param int32) error {
	r.record(Call{Op: "PixelStorei", Name: pname, Param: param})
	return r.Err
}

func (r *Recorder) Enable(capability uint32) {
	r.record(Call{Op: "Enable", Name: capability})
}

func (r *Recorder) Disable(capability uint32) {
	r.record(Call{Op: "Disable", Name: capability})
}

func (r *Recorder) record(c Call) {
	r.mu.Lock()
	r.calls = append(r.calls, c)
	r.mu.Unlock()
}

// Calls returns a copy of the recorded calls in order.
func (r *Recorder) Calls() []Call {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Call, len(r.calls))
	copy(out, r.calls)
	return out
}
