package interaction

import (
	"log/slog"

	"github.com/Carmen-Shannon/oxy-sleeve/engine/backdrop"
	"github.com/Carmen-Shannon/oxy-sleeve/engine/camera"
	"github.com/Carmen-Shannon/oxy-sleeve/engine/mailbox"
	"github.com/Carmen-Shannon/oxy-sleeve/engine/settings"
)

// RouterBuilderOption is a functional option for configuring a Router.
// Use the With* functions to create options.
type RouterBuilderOption func(r *router)

// WithStore sets the store every configuration change is persisted to. Without a store changes are not persisted.
//
// Parameters:
//   - store: the configuration store
//
// Returns:
//   - RouterBuilderOption: option function to apply
func WithStore(store settings.Store) RouterBuilderOption {
	return func(r *router) {
		r.store = store
	}
}

// WithBackdrop sets the backdrop regenerated when the front artwork changes.
func WithBackdrop(b backdrop.Backdrop) RouterBuilderOption {
	return func(r *router) {
		r.backdrop = b
	}
}

// WithExecutor sets the executor used for file reads, decodes and the file picker.
// The default runs jobs inline on the calling goroutine.
//
// Parameters:
//   - executor: the executor
//
// Returns:
//   - RouterBuilderOption: option function to apply
func WithExecutor(executor mailbox.Executor) RouterBuilderOption {
	return func(r *router) {
		if executor != nil {
			r.executor = executor
		}
	}
}

// WithFilePicker replaces the native file dialog.
func WithFilePicker(picker FilePicker) RouterBuilderOption {
	return func(r *router) {
		if picker != nil {
			r.picker = picker
		}
	}
}

// WithDragRotation sets the drag rotation state driven by pointer input.
func WithDragRotation(drag *camera.DragRotation) RouterBuilderOption {
	return func(r *router) {
		if drag != nil {
			r.drag = drag
		}
	}
}

// WithDropIndicator registers a callback invoked when the drop indicator is shown or hidden.
func WithDropIndicator(fn func(visible bool)) RouterBuilderOption {
	return func(r *router) {
		r.onDrop = fn
	}
}

// WithLogger sets the router logger.
func WithLogger(logger *slog.Logger) RouterBuilderOption {
	return func(r *router) {
		if logger != nil {
			r.logger = logger
		}
	}
}
