// package common contains common types that are used throughout this engine. They are not interface-wrapped structs, just plain structs that express
// commonly used data-types.
package common

import (
	"github.com/cogentcore/webgpu/wgpu"
)

// TextureStagingData holds RGBA pixel data for a texture pending GPU upload.
// The presenter stages the composited frame through this type before writing it to the GPU texture.
type TextureStagingData struct {
	// Pixels is the byte slice representing the actual pixel data for the texture. It should be in RGBA format, with 4 bytes per pixel.
	Pixels []byte
	// Width is the width of the texture in pixels.
	Width uint32
	// Height is the height of the texture in pixels.
	Height uint32
}

// SamplerStagingData holds the addressing and filtering configuration for a texture sampler.
// Texture resources carry one of these so both the GPU presenter and the software rasterizer
// agree on how coordinates outside [0, 1] are resolved.
type SamplerStagingData struct {
	// AddressModeU, AddressModeV, AddressModeW specify the addressing mode for texture coordinates outside the [0, 1] range in each dimension (U, V, W).
	AddressModeU, AddressModeV, AddressModeW wgpu.AddressMode
	// MagFilter and MinFilter specify the filtering mode for magnification and minification.
	MagFilter, MinFilter wgpu.FilterMode
	// MipmapFilter specifies the filtering mode for mipmap level selection.
	MipmapFilter wgpu.MipmapFilterMode
	// RepeatU and RepeatV scale texture coordinates before addressing is applied. Zero means 1.
	RepeatU, RepeatV float32
	// MaxAnisotropy specifies the maximum anisotropy level for anisotropic filtering.
	MaxAnisotropy uint16
}

// ClampSampler returns sampler data that clamps coordinates to the texture edge in both axes.
//
// Returns:
//   - SamplerStagingData: clamp-to-edge sampler with linear filtering
func ClampSampler() SamplerStagingData {
	return SamplerStagingData{
		AddressModeU: wgpu.AddressModeClampToEdge,
		AddressModeV: wgpu.AddressModeClampToEdge,
		AddressModeW: wgpu.AddressModeClampToEdge,
		MagFilter:    wgpu.FilterModeLinear,
		MinFilter:    wgpu.FilterModeLinear,
		MipmapFilter: wgpu.MipmapFilterModeLinear,
		RepeatU:      1,
		RepeatV:      1,
	}
}

// RepeatSampler returns sampler data that tiles the texture in both axes.
//
// Parameters:
//   - repeatU: number of tiles across U
//   - repeatV: number of tiles across V
//
// Returns:
//   - SamplerStagingData: repeating sampler with linear filtering
func RepeatSampler(repeatU, repeatV float32) SamplerStagingData {
	return SamplerStagingData{
		AddressModeU: wgpu.AddressModeRepeat,
		AddressModeV: wgpu.AddressModeRepeat,
		AddressModeW: wgpu.AddressModeRepeat,
		MagFilter:    wgpu.FilterModeLinear,
		MinFilter:    wgpu.FilterModeLinear,
		MipmapFilter: wgpu.MipmapFilterModeLinear,
		RepeatU:      repeatU,
		RepeatV:      repeatV,
	}
}

// Repeats reports whether the sampler wraps coordinates on both axes.
//
// Returns:
//   - bool: true if U and V use repeat addressing
func (s SamplerStagingData) Repeats() bool {
	return s.AddressModeU == wgpu.AddressModeRepeat && s.AddressModeV == wgpu.AddressModeRepeat
}
