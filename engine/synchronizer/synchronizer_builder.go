package synchronizer

import "log/slog"

// SynchronizerBuilderOption is a functional option for configuring a Synchronizer.
type SynchronizerBuilderOption func(s *synchronizer)

// WithLogger sets the logger used to report invalid configuration values.
func WithLogger(logger *slog.Logger) SynchronizerBuilderOption {
	return func(s *synchronizer) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithFogLinked sets whether the fog color starts out following the background color.
//
// Parameters:
//   - linked: the initial linkage
//
// Returns:
//   - SynchronizerBuilderOption: option function to apply
func WithFogLinked(linked bool) SynchronizerBuilderOption {
	return func(s *synchronizer) {
		s.fogLinked = linked
	}
}
