package window

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/cogentcore/webgpu/wgpu"
)

// ErrNotOpen is returned when an operation needs the platform window after it was closed.
var ErrNotOpen = errors.New("window is not open")

// Input holds the handlers the window dispatches to. Nil handlers are skipped.
// Pointer positions are in window (screen) coordinates, which is also the space Drop's width is reported in.
type Input struct {
	// Resize receives the framebuffer size in pixels.
	Resize func(width, height int)

	// Scroll receives vertical wheel steps, positive away from the user.
	Scroll func(delta float64)

	// Key receives key presses. Repeats and releases are not reported.
	Key func(keyCode int)

	// PointerDown and PointerUp report the primary button.
	PointerDown func(x, y float64)
	PointerUp   func(x, y float64)

	// PointerMove reports every cursor move, pressed or not.
	PointerMove func(x, y float64)

	// Drop receives dropped file paths with the cursor x and the window width.
	Drop func(x, width float64, paths []string)

	// CursorEnter reports the cursor entering (true) or leaving (false) the window. GLFW has no drag-enter event,
	// so this is the closest signal for a file drag arriving over the window.
	CursorEnter func(entered bool)
}

// Window is the viewer's platform window: a WebGPU surface source plus mouse, keyboard and file-drop input.
type Window interface {
	// SetInput replaces the input handlers.
	SetInput(input Input)

	// SetUpdateCallback sets the function called once per message loop iteration, after events are dispatched.
	SetUpdateCallback(callback func())

	// SetShouldClose asks the message loop to stop after the current iteration.
	SetShouldClose()

	// SurfaceDescriptor returns the platform surface descriptor for WebGPU, or nil once closed.
	SurfaceDescriptor() *wgpu.SurfaceDescriptor

	// IsRunning reports whether the message loop should keep going.
	IsRunning() bool

	// ProcessMessages runs the message loop until the window is asked to close.
	ProcessMessages()

	// Close destroys the window and releases the platform library.
	//
	// Returns:
	//   - error: ErrNotOpen if the window was already closed
	Close() error

	// Width returns the framebuffer width in pixels.
	Width() int

	// Height returns the framebuffer height in pixels.
	Height() int
}

type engineWindow struct {
	title string

	minWidth, minHeight int
	maxWidth, maxHeight int

	// width and height track the framebuffer, which differs from the window size on high-DPI displays.
	width, height int

	input    Input
	onUpdate func()

	platform *glfwWindow
}

var _ Window = &engineWindow{}

// NewWindow opens the viewer window.
//
// Parameters:
//   - options: functional options to configure the window
//
// Returns:
//   - Window: the open window
//   - error: error if the platform window could not be created
func NewWindow(options ...WindowBuilderOption) (Window, error) {
	w := &engineWindow{
		title:     "oxy-sleeve",
		minWidth:  480,
		minHeight: 320,
		maxWidth:  3840,
		maxHeight: 2160,
		width:     1280,
		height:    720,
	}
	for _, opt := range options {
		opt(w)
	}
	if err := w.open(); err != nil {
		return nil, fmt.Errorf("open window: %w", err)
	}
	return w, nil
}

func (w *engineWindow) SetInput(input Input) {
	w.input = input
}

func (w *engineWindow) SetUpdateCallback(callback func()) {
	w.onUpdate = callback
}

func (w *engineWindow) ProcessMessages() {
	for w.IsRunning() {
		w.poll()
		if !w.IsRunning() {
			return
		}
		if w.onUpdate != nil {
			w.onUpdate()
		}
		runtime.Gosched()
	}
}

func (w *engineWindow) Width() int {
	return w.width
}

func (w *engineWindow) Height() int {
	return w.height
}
