package settings

import "log/slog"

type StoreBuilderOption func(*store)

// WithKey overrides the slot key. Defaults to StorageKey.
//
// Parameters:
//   - key: the slot key
//
// Returns:
//   - StoreBuilderOption: a function that sets the slot key
func WithKey(key string) StoreBuilderOption {
	return func(s *store) {
		s.key = key
	}
}

// WithPresetCheck sets the predicate used to validate artwork references on load.
// Without it every string is accepted.
//
// Parameters:
//   - isPreset: reports whether a reference names a known preset
//
// Returns:
//   - StoreBuilderOption: a function that sets the preset predicate
func WithPresetCheck(isPreset func(string) bool) StoreBuilderOption {
	return func(s *store) {
		s.isPreset = isPreset
	}
}

// WithLogger sets the logger used for recoverable failures.
func WithLogger(logger *slog.Logger) StoreBuilderOption {
	return func(s *store) {
		if logger != nil {
			s.logger = logger
		}
	}
}
