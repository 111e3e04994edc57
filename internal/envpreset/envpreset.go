package envpreset

import (
	"sort"
	"strings"
)

// Preset is a named environment backdrop: an equirectangular panorama under assets/environment/,
// with a vertical gradient used when the file is missing.
type Preset struct {
	Name   string
	File   string
	Top    [4]uint8
	Bottom [4]uint8
}

var presets = map[string]Preset{
	"sunset":    {Name: "sunset", File: "sunset.jpg", Top: [4]uint8{54, 58, 112, 255}, Bottom: [4]uint8{250, 160, 90, 255}},
	"dawn":      {Name: "dawn", File: "dawn.jpg", Top: [4]uint8{120, 150, 200, 255}, Bottom: [4]uint8{240, 200, 170, 255}},
	"night":     {Name: "night", File: "night.jpg", Top: [4]uint8{6, 8, 24, 255}, Bottom: [4]uint8{30, 34, 60, 255}},
	"warehouse": {Name: "warehouse", File: "warehouse.jpg", Top: [4]uint8{70, 70, 72, 255}, Bottom: [4]uint8{150, 140, 125, 255}},
	"forest":    {Name: "forest", File: "forest.jpg", Top: [4]uint8{120, 160, 130, 255}, Bottom: [4]uint8{40, 70, 40, 255}},
	"apartment": {Name: "apartment", File: "apartment.jpg", Top: [4]uint8{200, 190, 175, 255}, Bottom: [4]uint8{110, 90, 75, 255}},
	"studio":    {Name: "studio", File: "studio.jpg", Top: [4]uint8{235, 235, 235, 255}, Bottom: [4]uint8{160, 160, 160, 255}},
	"city":      {Name: "city", File: "city.jpg", Top: [4]uint8{140, 170, 210, 255}, Bottom: [4]uint8{90, 90, 100, 255}},
	"park":      {Name: "park", File: "park.jpg", Top: [4]uint8{110, 170, 230, 255}, Bottom: [4]uint8{90, 130, 70, 255}},
	"lobby":     {Name: "lobby", File: "lobby.jpg", Top: [4]uint8{210, 200, 180, 255}, Bottom: [4]uint8{120, 100, 80, 255}},
}

// Lookup returns the preset with the given name (case-insensitive).
func Lookup(name string) (Preset, bool) {
	p, ok := presets[strings.ToLower(strings.TrimSpace(name))]
	return p, ok
}

// Names returns all preset names, sorted.
func Names() []string {
	out := make([]string, 0, len(presets))
	for n := range presets {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}
