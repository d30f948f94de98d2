package canvas

import (
	"image/color"
	"sync"
	"testing"
	"time"

	papertrail "github.com/Tolverne/papertrail2"
)

type fakeStore struct {
	mx    sync.Mutex
	saves int
	data  map[string]string
}

func newFakeStore() *fakeStore {
	return &fakeStore{data: make(map[string]string)}
}

func (f *fakeStore) Save(key papertrail.Key, svg string, width, height int) {
	f.mx.Lock()
	defer f.mx.Unlock()
	f.saves++
	f.data[key.String()] = svg
}

func (f *fakeStore) Load(key papertrail.Key) (string, bool) {
	f.mx.Lock()
	defer f.mx.Unlock()
	svg, ok := f.data[key.String()]
	return svg, ok
}

func (f *fakeStore) numSaves() int {
	f.mx.Lock()
	defer f.mx.Unlock()
	return f.saves
}

func newTestController(persist Persister) *Controller {
	return NewController(papertrail.NewKey(1, 1), New(400, 300), NewTool(), persist)
}

func TestControllerStateMachine(t *testing.T) {
	ctl := newTestController(newFakeStore())
	defer ctl.Close()

	if ctl.Drawing() {
		t.Fatalf("controller must start idle")
	}

	// moves while idle do not paint
	ctl.Handle(Pointer{Kind: PointerMove, X: 50, Y: 50})
	_, _, _, a := ctl.Canvas().Image().At(40, 50).RGBA()
	if a != 0 {
		t.Errorf("idle move must not paint")
	}

	ctl.Handle(Pointer{Kind: PointerDown, X: 10, Y: 50})
	if !ctl.Drawing() {
		t.Errorf("pointer down must start drawing")
	}

	ctl.Handle(Pointer{Kind: PointerMove, X: 100, Y: 50})
	_, _, _, a = ctl.Canvas().Image().At(50, 50).RGBA()
	if a == 0 {
		t.Errorf("expected painted segment")
	}

	ctl.Handle(Pointer{Kind: PointerUp})
	if ctl.Drawing() {
		t.Errorf("pointer up must stop drawing")
	}
}

func TestControllerEraserMode(t *testing.T) {
	store := newFakeStore()
	tool := NewTool()
	ctl := NewController(papertrail.NewKey(1, 1), New(400, 300), tool, store)
	defer ctl.Close()

	ctl.Handle(Pointer{Kind: PointerDown, X: 10, Y: 50})
	ctl.Handle(Pointer{Kind: PointerMove, X: 100, Y: 50})
	ctl.Handle(Pointer{Kind: PointerUp})

	tool.SetEraser(true)
	ctl.Handle(Pointer{Kind: PointerDown, X: 10, Y: 50})
	ctl.Handle(Pointer{Kind: PointerMove, X: 100, Y: 50})
	ctl.Handle(Pointer{Kind: PointerUp})

	_, _, _, a := ctl.Canvas().Image().At(50, 50).RGBA()
	if a != 0 {
		t.Errorf("eraser stroke must remove pixel content")
	}
}

func TestControllerTouchNormalization(t *testing.T) {
	ctl := newTestController(newFakeStore())
	defer ctl.Close()

	ctl.Touch(TouchStart, 10, 50)
	if !ctl.Drawing() {
		t.Errorf("touch start must start drawing")
	}

	ctl.Touch(TouchMove, 100, 50)
	_, _, _, a := ctl.Canvas().Image().At(50, 50).RGBA()
	if a == 0 {
		t.Errorf("expected painted segment from touch input")
	}

	ctl.Touch(TouchEnd, 100, 50)
	if ctl.Drawing() {
		t.Errorf("touch end must stop drawing")
	}
}

func TestControllerClearSavesImmediately(t *testing.T) {
	store := newFakeStore()
	ctl := newTestController(store)
	defer ctl.Close()

	ctl.Handle(Pointer{Kind: PointerDown, X: 10, Y: 50})
	ctl.Handle(Pointer{Kind: PointerMove, X: 100, Y: 50})
	ctl.Clear()

	if store.numSaves() != 1 {
		t.Errorf("clear must save exactly once, got %v", store.numSaves())
	}

	_, _, _, a := ctl.Canvas().Image().At(50, 50).RGBA()
	if a != 0 {
		t.Errorf("expected empty canvas after clear")
	}
}

func TestControllerResize(t *testing.T) {
	store := newFakeStore()
	ctl := newTestController(store)
	defer ctl.Close()

	ctl.StartResize(400, 300)
	ctl.ResizeMove(500, 400)
	ctl.EndResize()

	if ctl.Canvas().Width() != 500 || ctl.Canvas().Height() != 400 {
		t.Errorf("unexpected size %vx%v", ctl.Canvas().Width(), ctl.Canvas().Height())
	}
	if store.numSaves() != 1 {
		t.Errorf("resize completion must save, got %v saves", store.numSaves())
	}

	// dragging far below the minimum pins at the bound
	ctl.StartResize(0, 0)
	ctl.ResizeMove(-1000, -1000)
	ctl.EndResize()

	if ctl.Canvas().Width() != MinWidth || ctl.Canvas().Height() != MinHeight {
		t.Errorf("resize must clamp, got %vx%v", ctl.Canvas().Width(), ctl.Canvas().Height())
	}
}

func TestControllerLoad(t *testing.T) {
	store := newFakeStore()
	key := papertrail.NewKey(1, 1)

	first := NewController(key, New(400, 300), NewTool(), store)
	first.Handle(Pointer{Kind: PointerDown, X: 10, Y: 50})
	first.Handle(Pointer{Kind: PointerMove, X: 100, Y: 50})
	first.Flush()
	first.Close()

	second := NewController(key, New(400, 300), NewTool(), store)
	defer second.Close()
	second.Load()

	_, _, _, a := second.Canvas().Image().At(50, 50).RGBA()
	if a == 0 {
		t.Errorf("expected restored drawing")
	}
}

func TestDebounce(t *testing.T) {
	var mx sync.Mutex
	calls := 0
	d := NewDebouncer(20*time.Millisecond, func() {
		mx.Lock()
		calls++
		mx.Unlock()
	})
	defer d.Close()

	for i := 0; i < 5; i++ {
		d.Trigger()
		time.Sleep(2 * time.Millisecond)
	}

	time.Sleep(100 * time.Millisecond)

	mx.Lock()
	defer mx.Unlock()
	if calls != 1 {
		t.Errorf("expected exactly one call, got %v", calls)
	}
}

func TestDebounceClose(t *testing.T) {
	var mx sync.Mutex
	calls := 0
	d := NewDebouncer(10*time.Millisecond, func() {
		mx.Lock()
		calls++
		mx.Unlock()
	})

	d.Trigger()
	d.Close()
	d.Trigger()

	time.Sleep(50 * time.Millisecond)

	mx.Lock()
	defer mx.Unlock()
	if calls != 0 {
		t.Errorf("no call must fire after close, got %v", calls)
	}
}

func TestToolExclusive(t *testing.T) {
	tool := NewTool()

	red := color.RGBA{255, 0, 0, 255}
	tool.SetColor(red)
	if tool.Eraser() {
		t.Fatalf("fresh color selection must not be in eraser mode")
	}

	tool.SetEraser(true)
	if !tool.Eraser() {
		t.Fatalf("eraser not activated")
	}

	// selecting a color deactivates the eraser
	tool.SetColor(red)
	if tool.Eraser() {
		t.Errorf("color selection must leave eraser mode")
	}

	// leaving eraser mode falls back to black
	tool.SetEraser(true)
	tool.SetEraser(false)
	if tool.Color() != color.Color(color.Black) {
		t.Errorf("expected black after leaving eraser mode")
	}
}
