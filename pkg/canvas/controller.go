package canvas

import (
	"sync"
	"time"

	papertrail "github.com/Tolverne/papertrail2"
	"github.com/Tolverne/papertrail2/internal/logging"
)

// SaveDelay is the quiet period after the last stroke segment before an
// automatic save fires.
const SaveDelay = 1 * time.Second

// PointerKind is the phase of a pointer interaction.
// Touch input is normalized into the same kinds.
type PointerKind int

const (
	PointerDown PointerKind = iota
	PointerMove
	PointerUp
	PointerLeave
)

// Pointer is a single normalized input event on a drawing surface.
type Pointer struct {
	Kind PointerKind
	X    float64
	Y    float64
}

// TouchPhase is the phase of a touch interaction before normalization.
type TouchPhase int

const (
	TouchStart TouchPhase = iota
	TouchMove
	TouchEnd
)

// Persister stores and retrieves serialized drawing snapshots.
// Implementations never fail the caller, persistence errors are logged
// and the in-memory state remains the source of truth.
type Persister interface {
	Save(key papertrail.Key, svg string, width, height int)
	Load(key papertrail.Key) (string, bool)
}

// Controller owns the live interaction state for one drawing surface.
//
// It runs a small state machine (idle or drawing), applies stroke
// segments to the canvas with the shared tool state and delegates
// persistence to the store: debounced after stroke activity, immediate
// on clear and on resize completion.
type Controller struct {
	mx      sync.Mutex
	key     papertrail.Key
	canvas  *Canvas
	tool    *Tool
	persist Persister

	drawing bool
	lastX   float64
	lastY   float64

	resizing bool
	resizeX  float64
	resizeY  float64
	resizeW  int
	resizeH  int

	saver *Debouncer
}

// NewController creates a controller for the given surface.
// The tool is shared across controllers, it is not owned.
func NewController(key papertrail.Key, c *Canvas, tool *Tool, persist Persister) *Controller {
	ctl := &Controller{
		key:     key,
		canvas:  c,
		tool:    tool,
		persist: persist,
	}
	ctl.saver = NewDebouncer(SaveDelay, ctl.saveNow)
	return ctl
}

func (ctl *Controller) Key() papertrail.Key {
	return ctl.key
}

func (ctl *Controller) Canvas() *Canvas {
	return ctl.canvas
}

// Drawing reports whether a stroke is in progress.
func (ctl *Controller) Drawing() bool {
	ctl.mx.Lock()
	defer ctl.mx.Unlock()
	return ctl.drawing
}

// Handle feeds one pointer event into the state machine.
func (ctl *Controller) Handle(p Pointer) {
	ctl.mx.Lock()
	defer ctl.mx.Unlock()

	switch p.Kind {
	case PointerDown:
		ctl.drawing = true
		ctl.lastX = p.X
		ctl.lastY = p.Y
	case PointerMove:
		if !ctl.drawing {
			return
		}
		if ctl.tool.Eraser() {
			ctl.canvas.Erase(ctl.lastX, ctl.lastY, p.X, p.Y)
		} else {
			ctl.canvas.Paint(ctl.lastX, ctl.lastY, p.X, p.Y, ctl.tool.Color())
		}
		ctl.lastX = p.X
		ctl.lastY = p.Y
		ctl.saver.Trigger()
	case PointerUp, PointerLeave:
		ctl.drawing = false
	}
}

// Touch normalizes a touch event into a pointer event and handles it.
func (ctl *Controller) Touch(phase TouchPhase, x, y float64) {
	var kind PointerKind
	switch phase {
	case TouchStart:
		kind = PointerDown
	case TouchMove:
		kind = PointerMove
	default:
		kind = PointerUp
	}
	ctl.Handle(Pointer{Kind: kind, X: x, Y: y})
}

// StartResize begins a resize drag at the given pointer position.
func (ctl *Controller) StartResize(x, y float64) {
	ctl.mx.Lock()
	defer ctl.mx.Unlock()

	ctl.resizing = true
	ctl.resizeX = x
	ctl.resizeY = y
	ctl.resizeW = ctl.canvas.Width()
	ctl.resizeH = ctl.canvas.Height()
}

// ResizeMove resizes the surface according to the drag distance.
// Dimensions are clamped, existing raster content is preserved.
func (ctl *Controller) ResizeMove(x, y float64) {
	ctl.mx.Lock()
	defer ctl.mx.Unlock()

	if !ctl.resizing {
		return
	}

	w := ctl.resizeW + int(x-ctl.resizeX)
	h := ctl.resizeH + int(y-ctl.resizeY)
	ctl.canvas.Resize(w, h)
}

// EndResize finishes a resize drag and saves immediately.
func (ctl *Controller) EndResize() {
	ctl.mx.Lock()
	if !ctl.resizing {
		ctl.mx.Unlock()
		return
	}
	ctl.resizing = false
	ctl.mx.Unlock()

	ctl.saveNow()
}

// Clear erases the surface and saves immediately,
// bypassing the debounce delay.
func (ctl *Controller) Clear() {
	ctl.mx.Lock()
	ctl.canvas.Clear()
	ctl.mx.Unlock()

	ctl.saver.Cancel()
	ctl.saveNow()
}

// Load restores the persisted snapshot for this surface, if any.
// A snapshot with mismatching dimensions is drawn at its native size.
func (ctl *Controller) Load() {
	data, ok := ctl.persist.Load(ctl.key)
	if !ok {
		return
	}

	img, err := DecodeSVG(data)
	if err != nil {
		logging.Warning("Failed to restore drawing %v: %v", ctl.key, err)
		return
	}

	ctl.mx.Lock()
	ctl.canvas.Replace(img)
	ctl.mx.Unlock()
}

// Flush saves immediately and discards a pending debounced save.
func (ctl *Controller) Flush() {
	ctl.saver.Cancel()
	ctl.saveNow()
}

// Close cancels a pending save so that no stale write fires after
// teardown. The canvas content is not saved.
func (ctl *Controller) Close() {
	ctl.saver.Close()
}

func (ctl *Controller) saveNow() {
	ctl.mx.Lock()
	svg, err := EncodeSVG(ctl.canvas)
	w := ctl.canvas.Width()
	h := ctl.canvas.Height()
	ctl.mx.Unlock()

	if err != nil {
		logging.Error("Failed to serialize drawing %v: %v", ctl.key, err)
		return
	}

	ctl.persist.Save(ctl.key, svg, w, h)
}
