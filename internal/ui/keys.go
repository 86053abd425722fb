package ui

import "github.com/ulysse71/milky-way/internal/render"

// cameraKeys maps vi-style keys to camera moves.
var cameraKeys = map[string]render.Action{
	"s": render.PanIn,
	"d": render.PanOut,
	"h": render.OrbitLeft,
	"l": render.OrbitRight,
	"k": render.OrbitUp,
	"j": render.OrbitDown,
	"i": render.ZoomIn,
	"n": render.ZoomOut,
}

// KeyAction returns the camera action bound to key.
func KeyAction(key string) (render.Action, bool) {
	a, ok := cameraKeys[key]
	return a, ok
}

const helpText = "h/l j/k: orbit | i/n: zoom | s/d: pan | +/-: cutoff | r: reset | q: quit"
