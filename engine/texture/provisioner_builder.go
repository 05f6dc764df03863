package texture

import "log/slog"

type ProvisionerBuilderOption func(*provisioner)

// WithPresets replaces the preset table.
//
// Parameters:
//   - presets: preset name to file name mapping
//
// Returns:
//   - ProvisionerBuilderOption: a function that sets the preset table
func WithPresets(presets Presets) ProvisionerBuilderOption {
	return func(p *provisioner) {
		p.presets = presets
	}
}

// WithStrict makes Resolve panic on references outside the preset table.
// Development builds enable it so caller bugs surface immediately.
//
// Parameters:
//   - strict: whether unknown presets panic
//
// Returns:
//   - ProvisionerBuilderOption: a function that sets strict mode
func WithStrict(strict bool) ProvisionerBuilderOption {
	return func(p *provisioner) {
		p.strict = strict
	}
}

// WithPlaceholders substitutes generated images for asset files that do not exist.
func WithPlaceholders(enabled bool) ProvisionerBuilderOption {
	return func(p *provisioner) {
		p.placeholders = enabled
	}
}

// WithLogger sets the provisioner logger.
func WithLogger(logger *slog.Logger) ProvisionerBuilderOption {
	return func(p *provisioner) {
		if logger != nil {
			p.logger = logger
		}
	}
}
