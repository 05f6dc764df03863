package engine

import (
	"log/slog"
	"time"

	"github.com/Carmen-Shannon/oxy-sleeve/engine/backdrop"
	"github.com/Carmen-Shannon/oxy-sleeve/engine/camera"
	"github.com/Carmen-Shannon/oxy-sleeve/engine/interaction"
	"github.com/Carmen-Shannon/oxy-sleeve/engine/mailbox"
	"github.com/Carmen-Shannon/oxy-sleeve/engine/renderer"
	"github.com/Carmen-Shannon/oxy-sleeve/engine/window"
)

// EngineBuilderOption is a functional option for configuring an Engine.
// Use the With* functions to create options that are applied directly to the engine instance.
type EngineBuilderOption func(*engine)

// WithProfiling enables or disables performance profiling output.
//
// Parameters:
//   - enabled: if true, enables performance profiling
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithProfiling(enabled bool) EngineBuilderOption {
	return func(e *engine) {
		e.profilingEnabled = enabled
	}
}

// WithWindow sets the window the engine pumps and takes input from. Without a window Run drives frames from a
// ticker instead.
//
// Parameters:
//   - w: a pre-configured Window instance
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithWindow(w window.Window) EngineBuilderOption {
	return func(e *engine) {
		e.window = w
	}
}

// WithRenderer sets the renderer frames are drawn with. Without one frames are simulated but not drawn.
//
// Parameters:
//   - r: the renderer
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithRenderer(r renderer.Renderer) EngineBuilderOption {
	return func(e *engine) {
		e.renderer = r
	}
}

// WithRenderFrameLimit sets a render frame rate cap in frames per second.
// Pass 0 to uncap the windowed loop. Headless runs fall back to DefaultHeadlessFrameRate.
//
// Parameters:
//   - fps: maximum render frames per second (0 = uncapped)
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithRenderFrameLimit(fps float64) EngineBuilderOption {
	return func(e *engine) {
		if fps <= 0 {
			e.renderFrameLimit = 0
			return
		}
		e.renderFrameLimit = time.Duration(float64(time.Second) / fps)
	}
}

// WithExecutor sets the executor used for image decoding and upload reads.
// Defaults to a worker pool of DefaultWorkers.
func WithExecutor(executor mailbox.Executor) EngineBuilderOption {
	return func(e *engine) {
		e.executor = executor
	}
}

// WithFilePicker sets the picker used by the upload shortcuts.
func WithFilePicker(picker interaction.FilePicker) EngineBuilderOption {
	return func(e *engine) {
		e.picker = picker
	}
}

// WithBackdropOptions forwards options to the backdrop generator.
func WithBackdropOptions(options ...backdrop.BackdropBuilderOption) EngineBuilderOption {
	return func(e *engine) {
		e.backdropOptions = append(e.backdropOptions, options...)
	}
}

// WithCamera replaces the default camera. The camera must have a controller attached.
func WithCamera(cam camera.Camera) EngineBuilderOption {
	return func(e *engine) {
		e.camera = cam
	}
}

// WithOrbitHeight sets the camera height above the sleeve while auto-orbiting.
func WithOrbitHeight(height float32) EngineBuilderOption {
	return func(e *engine) {
		e.orbitHeight = height
	}
}

// WithDragSensitivity sets the sleeve drag rotation in radians per pixel.
func WithDragSensitivity(sensitivity float32) EngineBuilderOption {
	return func(e *engine) {
		e.dragSensitivity = sensitivity
	}
}

// WithSnapshotDir sets the directory the snapshot key writes to. Defaults to the working directory.
func WithSnapshotDir(dir string) EngineBuilderOption {
	return func(e *engine) {
		e.snapshotDir = dir
	}
}

// WithSnapshotSize sets the pixel size of snapshots taken with the snapshot key.
func WithSnapshotSize(width, height int) EngineBuilderOption {
	return func(e *engine) {
		e.snapshotWidth, e.snapshotHeight = width, height
	}
}

// WithLogger sets the logger. Every component created by the engine logs through it, tagged with the session id.
func WithLogger(logger *slog.Logger) EngineBuilderOption {
	return func(e *engine) {
		e.logger = logger
	}
}
