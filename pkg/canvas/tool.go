package canvas

import (
	"image/color"
	"sync"
)

// Tool holds the global drawing tool state shared by all surfaces.
//
// A tool is either in color mode or in eraser mode, never both.
// Selecting a color leaves eraser mode, activating the eraser
// deactivates the color.
type Tool struct {
	mx     sync.Mutex
	color  color.Color
	eraser bool
}

// NewTool creates a tool in color mode with a black stroke color.
func NewTool() *Tool {
	return &Tool{color: color.Black}
}

// SetColor selects the given stroke color and leaves eraser mode.
func (t *Tool) SetColor(c color.Color) {
	t.mx.Lock()
	defer t.mx.Unlock()
	t.color = c
	t.eraser = false
}

// SetEraser switches eraser mode on or off.
// Leaving eraser mode falls back to a black stroke color.
func (t *Tool) SetEraser(on bool) {
	t.mx.Lock()
	defer t.mx.Unlock()
	t.eraser = on
	if !on {
		t.color = color.Black
	}
}

// ToggleEraser flips eraser mode and reports the new state.
func (t *Tool) ToggleEraser() bool {
	t.mx.Lock()
	on := !t.eraser
	t.mx.Unlock()

	t.SetEraser(on)
	return on
}

// Eraser reports whether eraser mode is active.
func (t *Tool) Eraser() bool {
	t.mx.Lock()
	defer t.mx.Unlock()
	return t.eraser
}

// Color returns the current stroke color.
// The color is not used while eraser mode is active.
func (t *Tool) Color() color.Color {
	t.mx.Lock()
	defer t.mx.Unlock()
	return t.color
}
