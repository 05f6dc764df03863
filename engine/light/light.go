package light

import "github.com/Carmen-Shannon/oxy-sleeve/common"

// LightType identifies the kind of light source.
type LightType int

const (
	// LightTypeDirectional represents a light with no position, only direction.
	// Affects all fragments uniformly with no distance attenuation.
	LightTypeDirectional LightType = iota

	// LightTypeHemisphere represents an ambient sky/ground light. Fragments facing up receive the sky color,
	// fragments facing down the ground color, with a smooth blend in between.
	LightTypeHemisphere
)

// lightImpl is the implementation of the Light interface.
type lightImpl struct {
	lightType   LightType
	direction   [3]float32
	color       common.Color
	groundColor common.Color
	intensity   float32
	enabled     bool
}

// Light defines the interface for a light source in the scene.
//
// Both light types share this interface; GroundColor only affects hemisphere lights
// and Direction only affects directional lights.
type Light interface {
	// Type returns the kind of light source.
	//
	// Returns:
	//   - LightType: the light type
	Type() LightType

	// Direction returns the normalized direction the light travels in.
	//
	// Returns:
	//   - [3]float32: normalized direction as (x, y, z)
	Direction() [3]float32

	// Color returns the light color. For hemisphere lights this is the sky color.
	//
	// Returns:
	//   - common.Color: color as (r, g, b)
	Color() common.Color

	// GroundColor returns the color received by downward-facing surfaces from a hemisphere light.
	//
	// Returns:
	//   - common.Color: color as (r, g, b)
	GroundColor() common.Color

	// Intensity returns the scalar intensity multiplier for the light.
	//
	// Returns:
	//   - float32: the intensity value
	Intensity() float32

	// Enabled returns whether this light contributes to shading.
	//
	// Returns:
	//   - bool: true if the light is enabled
	Enabled() bool

	// Irradiance returns the light arriving at a surface with the given world-space normal.
	//
	// Parameters:
	//   - normal: normalized surface normal
	//
	// Returns:
	//   - common.Color: the incoming light, already scaled by intensity
	Irradiance(normal [3]float32) common.Color

	// SetDirection sets the direction of the light and normalizes it.
	//
	// Parameters:
	//   - x, y, z: direction components (will be normalized)
	SetDirection(x, y, z float32)

	// SetColor sets the light color (sky color for hemisphere lights).
	//
	// Parameters:
	//   - c: the color
	SetColor(c common.Color)

	// SetGroundColor sets the ground color of a hemisphere light.
	//
	// Parameters:
	//   - c: the color
	SetGroundColor(c common.Color)

	// SetIntensity sets the scalar intensity multiplier.
	//
	// Parameters:
	//   - intensity: the intensity value
	SetIntensity(intensity float32)

	// SetEnabled enables or disables the light.
	//
	// Parameters:
	//   - enabled: true to enable
	SetEnabled(enabled bool)
}

var _ Light = &lightImpl{}

// NewLight creates a new Light of the specified type with sensible defaults and
// any provided options applied.
//
// Parameters:
//   - lightType: the kind of light to create
//   - opts: variadic list of LightBuilderOption functions to configure the light
//
// Returns:
//   - Light: a new Light instance
func NewLight(lightType LightType, opts ...LightBuilderOption) Light {
	l := &lightImpl{
		lightType:   lightType,
		direction:   [3]float32{0, -1, 0},
		color:       common.Color{1, 1, 1},
		groundColor: common.Color{0, 0, 0},
		intensity:   1.0,
		enabled:     true,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func (l *lightImpl) Type() LightType {
	return l.lightType
}

func (l *lightImpl) Direction() [3]float32 {
	return l.direction
}

func (l *lightImpl) Color() common.Color {
	return l.color
}

func (l *lightImpl) GroundColor() common.Color {
	return l.groundColor
}

func (l *lightImpl) Intensity() float32 {
	return l.intensity
}

func (l *lightImpl) Enabled() bool {
	return l.enabled
}

func (l *lightImpl) Irradiance(normal [3]float32) common.Color {
	if !l.enabled {
		return common.Color{}
	}
	switch l.lightType {
	case LightTypeHemisphere:
		// blend weight 1 facing straight up, 0 facing straight down
		w := 0.5*normal[1] + 0.5
		var c common.Color
		for i := range c {
			c[i] = common.Lerp(l.groundColor[i], l.color[i], w) * l.intensity
		}
		return c
	default:
		ndotl := -(normal[0]*l.direction[0] + normal[1]*l.direction[1] + normal[2]*l.direction[2])
		if ndotl <= 0 {
			return common.Color{}
		}
		return l.color.Scale(ndotl * l.intensity)
	}
}

func (l *lightImpl) SetDirection(x, y, z float32) {
	l.direction = common.Normalize3([3]float32{x, y, z})
}

func (l *lightImpl) SetColor(c common.Color) {
	l.color = c
}

func (l *lightImpl) SetGroundColor(c common.Color) {
	l.groundColor = c
}

func (l *lightImpl) SetIntensity(intensity float32) {
	l.intensity = intensity
}

func (l *lightImpl) SetEnabled(enabled bool) {
	l.enabled = enabled
}
