package debug

import (
	"fmt"
	"runtime"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	fontSize   = 18
	padding    = 10
	lineHeight = fontSize + 4
	// refreshEvery: only rebuild the text every N frames to limit allocations.
	refreshEvery = 30
)

// Overlay draws optional FPS and heap counters in the top-left corner. Both are off by default.
type Overlay struct {
	ShowFPS      bool
	ShowMemAlloc bool
	frame        uint32
	lines        []string
	mem          runtime.MemStats
}

// New returns an overlay with the given counters enabled.
func New(showFPS, showMem bool) *Overlay {
	return &Overlay{ShowFPS: showFPS, ShowMemAlloc: showMem}
}

// Enabled reports whether anything will be drawn.
func (o *Overlay) Enabled() bool {
	return o.ShowFPS || o.ShowMemAlloc
}

func formatLines(showFPS bool, fps int32, showMem bool, allocBytes uint64) []string {
	var out []string
	if showFPS {
		out = append(out, fmt.Sprintf("FPS: %d", fps))
	}
	if showMem {
		out = append(out, fmt.Sprintf("Mem: %.2f MiB", float64(allocBytes)/(1024*1024)))
	}
	return out
}

// Draw renders the enabled counters. Call last in the draw loop so it sits on top.
func (o *Overlay) Draw() {
	if !o.Enabled() {
		return
	}
	if o.frame%refreshEvery == 0 || o.lines == nil {
		if o.ShowMemAlloc {
			runtime.ReadMemStats(&o.mem)
		}
		o.lines = formatLines(o.ShowFPS, rl.GetFPS(), o.ShowMemAlloc, o.mem.Alloc)
	}
	o.frame++
	for i, line := range o.lines {
		rl.DrawText(line, padding, int32(padding+i*lineHeight), fontSize, rl.Lime)
	}
}
