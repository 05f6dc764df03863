package material

import (
	"github.com/Carmen-Shannon/oxy-sleeve/common"
	"github.com/Carmen-Shannon/oxy-sleeve/engine/texture"
)

// Blending selects how a material's fragments combine with what is already drawn.
type Blending int

const (
	// BlendingNormal composites with straight alpha ("over").
	BlendingNormal Blending = iota
	// BlendingAdditive adds the fragment color scaled by alpha.
	BlendingAdditive
)

// material is the implementation of the Material interface.
type material struct {
	name        string
	color       common.Color
	opacity     float32
	metallic    float32
	roughness   float32
	blending    Blending
	transparent bool
	depthWrite  bool
	unlit       bool
	mapBinding  texture.Binding
}

// Material defines the interface for a surface material: a tint color, an optional texture map, and the
// blending state used when its mesh is drawn.
//
// The texture map is a texture.Binding owned by the material; replacing it releases the previously bound resource.
type Material interface {
	// Name retrieves the material identifier.
	//
	// Returns:
	//   - string: the name of the material
	Name() string

	// Color retrieves the tint color multiplied into the texture map.
	//
	// Returns:
	//   - common.Color: the tint color
	Color() common.Color

	// Opacity retrieves the material opacity in [0, 1].
	//
	// Returns:
	//   - float32: the opacity
	Opacity() float32

	// Metallic retrieves the metallic factor of the material.
	//
	// Returns:
	//   - float32: the metallic factor
	Metallic() float32

	// Roughness retrieves the roughness factor of the material.
	// Rough surfaces receive less of the directional highlight.
	//
	// Returns:
	//   - float32: the roughness factor
	Roughness() float32

	// Blending retrieves the blending mode.
	//
	// Returns:
	//   - Blending: the blending mode
	Blending() Blending

	// Transparent reports whether the material is drawn after opaque geometry.
	//
	// Returns:
	//   - bool: true if transparent
	Transparent() bool

	// DepthWrite reports whether the material writes depth.
	//
	// Returns:
	//   - bool: true if depth is written
	DepthWrite() bool

	// Unlit reports whether the material ignores scene lights.
	//
	// Returns:
	//   - bool: true if unlit
	Unlit() bool

	// Map retrieves the texture map binding.
	//
	// Returns:
	//   - *texture.Binding: the binding, never nil
	Map() *texture.Binding

	// SetColor sets the tint color.
	//
	// Parameters:
	//   - c: the tint color
	SetColor(c common.Color)

	// SetOpacity sets the material opacity, clamped to [0, 1].
	//
	// Parameters:
	//   - opacity: the opacity
	SetOpacity(opacity float32)

	// SetRoughness sets the roughness factor, clamped to [0, 1].
	//
	// Parameters:
	//   - roughness: the roughness factor
	SetRoughness(roughness float32)

	// Release releases the bound texture map.
	Release()
}

var _ Material = &material{}

// NewMaterial creates a new Material instance configured with the provided options.
//
// Parameters:
//   - options: variadic list of MaterialBuilderOption functions to configure the material
//
// Returns:
//   - Material: a new Material instance
func NewMaterial(options ...MaterialBuilderOption) Material {
	m := &material{
		color:      common.Color{1, 1, 1},
		opacity:    1.0,
		metallic:   0.0,
		roughness:  1.0,
		depthWrite: true,
	}
	for _, opt := range options {
		opt(m)
	}
	return m
}

func (m *material) Name() string {
	return m.name
}

func (m *material) Color() common.Color {
	return m.color
}

func (m *material) Opacity() float32 {
	return m.opacity
}

func (m *material) Metallic() float32 {
	return m.metallic
}

func (m *material) Roughness() float32 {
	return m.roughness
}

func (m *material) Blending() Blending {
	return m.blending
}

func (m *material) Transparent() bool {
	return m.transparent
}

func (m *material) DepthWrite() bool {
	return m.depthWrite
}

func (m *material) Unlit() bool {
	return m.unlit
}

func (m *material) Map() *texture.Binding {
	return &m.mapBinding
}

func (m *material) SetColor(c common.Color) {
	m.color = c
}

func (m *material) SetOpacity(opacity float32) {
	m.opacity = common.Clamp(opacity, 0, 1)
}

func (m *material) SetRoughness(roughness float32) {
	m.roughness = common.Clamp(roughness, 0, 1)
}

func (m *material) Release() {
	m.mapBinding.Clear()
}
