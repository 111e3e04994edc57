package ui

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	spinnerDegPerSec = 360
	spinnerArc       = 270
	spinnerThickness = 4
)

// drawSpinner draws an activity indicator: a ring arc rotating once per second inside the box.
func drawSpinner(x, y, w, h int32, color rl.Color, now float64) {
	size := min(w, h)
	if size <= 0 {
		return
	}
	outer := float32(size) / 2
	center := rl.NewVector2(float32(x)+float32(w)/2, float32(y)+float32(h)/2)
	start := math32.Mod(float32(now)*spinnerDegPerSec, 360)
	rl.DrawRing(center, outer-spinnerThickness, outer, start, start+spinnerArc, 32, color)
}
