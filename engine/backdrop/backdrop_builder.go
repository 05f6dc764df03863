package backdrop

import (
	"log/slog"

	"github.com/Carmen-Shannon/oxy-sleeve/engine/mailbox"
)

type BackdropBuilderOption func(*backdropImpl)

// WithExecutor sets where generation runs. Defaults to running inline on the caller.
//
// Parameters:
//   - executor: the executor used for generation jobs
//
// Returns:
//   - BackdropBuilderOption: a function that sets the executor
func WithExecutor(executor mailbox.Executor) BackdropBuilderOption {
	return func(b *backdropImpl) {
		if executor != nil {
			b.executor = executor
		}
	}
}

// WithBlurRadius sets the blur radius in pixels of the downscaled image.
func WithBlurRadius(radius float64) BackdropBuilderOption {
	return func(b *backdropImpl) {
		b.blurRadius = radius
	}
}

// WithBrightness sets the factor applied to the backdrop color channels.
func WithBrightness(brightness float64) BackdropBuilderOption {
	return func(b *backdropImpl) {
		b.brightness = brightness
	}
}

// WithScale sets the downscale factor applied before blurring.
func WithScale(scale float64) BackdropBuilderOption {
	return func(b *backdropImpl) {
		b.scale = scale
	}
}

// WithFloorRepeat sets how many times the floor copy tiles on each axis.
func WithFloorRepeat(repeat float32) BackdropBuilderOption {
	return func(b *backdropImpl) {
		b.floorRepeat = repeat
	}
}

// WithLogger sets the backdrop logger.
func WithLogger(logger *slog.Logger) BackdropBuilderOption {
	return func(b *backdropImpl) {
		if logger != nil {
			b.logger = logger
		}
	}
}
