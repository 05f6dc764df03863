package window

import (
	"fmt"
	"runtime"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/cogentcore/webgpu/wgpuglfw"
	"github.com/go-gl/glfw/v3.3/glfw"
)

type glfwWindow struct {
	window  *glfw.Window
	running bool
}

// open creates the GLFW window without a client API (WebGPU draws through its own surface) and registers the
// input callbacks.
//
// go-gl/glfw: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw
func (w *engineWindow) open() error {
	runtime.LockOSThread()

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("initialize GLFW: %w", err)
	}
	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)

	win, err := glfw.CreateWindow(w.width, w.height, w.title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return fmt.Errorf("create GLFW window: %w", err)
	}
	win.SetSizeLimits(w.minWidth, w.minHeight, w.maxWidth, w.maxHeight)
	w.platform = &glfwWindow{window: win, running: true}

	win.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		if action == glfw.Press && w.input.Key != nil {
			w.input.Key(int(key))
		}
	})

	win.SetScrollCallback(func(_ *glfw.Window, _, yoff float64) {
		if w.input.Scroll != nil {
			w.input.Scroll(yoff)
		}
	})

	win.SetMouseButtonCallback(func(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
		if button != glfw.MouseButtonLeft {
			return
		}
		x, y := win.GetCursorPos()
		switch {
		case action == glfw.Press && w.input.PointerDown != nil:
			w.input.PointerDown(x, y)
		case action == glfw.Release && w.input.PointerUp != nil:
			w.input.PointerUp(x, y)
		}
	})

	win.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		if w.input.PointerMove != nil {
			w.input.PointerMove(x, y)
		}
	})

	win.SetCursorEnterCallback(func(_ *glfw.Window, entered bool) {
		if w.input.CursorEnter != nil {
			w.input.CursorEnter(entered)
		}
	})

	// Cursor positions are in screen coordinates, so the side is decided against the window size, not the
	// framebuffer size.
	win.SetDropCallback(func(_ *glfw.Window, names []string) {
		if w.input.Drop == nil {
			return
		}
		x, _ := win.GetCursorPos()
		width, _ := win.GetSize()
		w.input.Drop(x, float64(width), names)
	})

	win.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		w.width, w.height = width, height
		if w.input.Resize != nil {
			w.input.Resize(width, height)
		}
	})

	w.width, w.height = win.GetFramebufferSize()
	return nil
}

// SurfaceDescriptor uses the wgpuglfw bridge, which picks the HWND, Xlib, Wayland or Metal descriptor.
func (w *engineWindow) SurfaceDescriptor() *wgpu.SurfaceDescriptor {
	if w.platform == nil {
		return nil
	}
	return wgpuglfw.GetSurfaceDescriptor(w.platform.window)
}

func (w *engineWindow) SetShouldClose() {
	if w.platform == nil {
		return
	}
	w.platform.running = false
	w.platform.window.SetShouldClose(true)
}

func (w *engineWindow) IsRunning() bool {
	return w.platform != nil && w.platform.running && !w.platform.window.ShouldClose()
}

func (w *engineWindow) Close() error {
	if w.platform == nil {
		return ErrNotOpen
	}
	w.platform.window.Destroy()
	w.platform = nil
	glfw.Terminate()
	return nil
}

func (w *engineWindow) poll() {
	glfw.PollEvents()
}
