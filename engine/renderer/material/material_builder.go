package material

import (
	"github.com/Carmen-Shannon/oxy-sleeve/common"
	"github.com/Carmen-Shannon/oxy-sleeve/engine/texture"
)

// MaterialBuilderOption is a function that configures a material instance during construction.
type MaterialBuilderOption func(*material)

// WithName is an option builder that sets the name of the material.
//
// Parameters:
//   - name: the identifier for the material
//
// Returns:
//   - MaterialBuilderOption: a function that applies the name option to a material
func WithName(name string) MaterialBuilderOption {
	return func(m *material) {
		m.name = name
	}
}

// WithColor is an option builder that sets the tint color of the material.
//
// Parameters:
//   - c: the tint color
//
// Returns:
//   - MaterialBuilderOption: a function that applies the color option to a material
func WithColor(c common.Color) MaterialBuilderOption {
	return func(m *material) {
		m.color = c
	}
}

// WithOpacity is an option builder that sets the opacity of the material.
func WithOpacity(opacity float32) MaterialBuilderOption {
	return func(m *material) {
		m.opacity = common.Clamp(opacity, 0, 1)
	}
}

// WithMetallic is an option builder that sets the metallic factor of the material.
//
// Parameters:
//   - metallic: the metallic factor (0.0 = dielectric, 1.0 = metal)
//
// Returns:
//   - MaterialBuilderOption: a function that applies the metallic option to a material
func WithMetallic(metallic float32) MaterialBuilderOption {
	return func(m *material) {
		m.metallic = metallic
	}
}

// WithRoughness is an option builder that sets the roughness factor of the material.
//
// Parameters:
//   - roughness: the roughness factor (0.0 = smooth, 1.0 = rough)
//
// Returns:
//   - MaterialBuilderOption: a function that applies the roughness option to a material
func WithRoughness(roughness float32) MaterialBuilderOption {
	return func(m *material) {
		m.roughness = roughness
	}
}

// WithBlending sets the blending mode. Additive materials are transparent and do not write depth.
func WithBlending(blending Blending) MaterialBuilderOption {
	return func(m *material) {
		m.blending = blending
		if blending == BlendingAdditive {
			m.transparent = true
			m.depthWrite = false
		}
	}
}

// WithTransparent marks the material as transparent.
func WithTransparent(transparent bool) MaterialBuilderOption {
	return func(m *material) {
		m.transparent = transparent
	}
}

// WithUnlit makes the material ignore scene lights.
func WithUnlit(unlit bool) MaterialBuilderOption {
	return func(m *material) {
		m.unlit = unlit
	}
}

// WithMap binds res as the texture map. The material takes over the caller's reference.
//
// Parameters:
//   - res: the texture resource
//
// Returns:
//   - MaterialBuilderOption: a function that binds the texture map
func WithMap(res *texture.Resource) MaterialBuilderOption {
	return func(m *material) {
		m.mapBinding.Replace(res)
	}
}
