package app

import (
	"sync"

	"gocv.io/x/gocv"
)

// Key codes delivered by the display's event poll.
const (
	keyNone  = -1
	keyEsc   = 27
	keySpace = 32
	keyC     = 'c'
	keyL     = 'l'
	keyQ     = 'q'
	keyS     = 's'
)

// Display is the presentation surface for annotated frames. WaitKey doubles
// as the input poll, returning the pending key code or keyNone.
type Display interface {
	Show(frame *gocv.Mat)
	WaitKey(delayMs int) int
	Close() error
}

// Window implements Display using a gocv (OpenCV HighGUI) window.
// It must be used from the main goroutine.
type Window struct {
	win *gocv.Window
}

// NewWindow creates a titled display window.
func NewWindow(title string) *Window {
	return &Window{win: gocv.NewWindow(title)}
}

func (w *Window) Show(frame *gocv.Mat) {
	w.win.IMShow(*frame)
}

func (w *Window) WaitKey(delayMs int) int {
	return w.win.WaitKey(delayMs)
}

func (w *Window) Close() error {
	return w.win.Close()
}

// MockDisplay is a test implementation of Display that replays a scripted
// key sequence and counts presented frames.
type MockDisplay struct {
	mu     sync.Mutex
	keys   []int
	shown  int
	closed bool
}

// NewMockDisplay creates a display that returns the given keys from
// successive WaitKey calls, then keyNone forever.
func NewMockDisplay(keys ...int) *MockDisplay {
	return &MockDisplay{keys: keys}
}

func (d *MockDisplay) Show(frame *gocv.Mat) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.shown++
}

func (d *MockDisplay) WaitKey(delayMs int) int {
	d.mu.Lock()
	defer d.mu.Unlock()
	if len(d.keys) == 0 {
		return keyNone
	}
	key := d.keys[0]
	d.keys = d.keys[1:]
	return key
}

func (d *MockDisplay) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.closed = true
	return nil
}

// Shown reports how many frames were presented.
func (d *MockDisplay) Shown() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.shown
}

// Closed reports whether Close was called.
func (d *MockDisplay) Closed() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.closed
}
