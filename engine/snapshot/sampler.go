package snapshot

import (
	"image"
	"math"

	"github.com/Carmen-Shannon/oxy-sleeve/common"
	"github.com/cogentcore/webgpu/wgpu"
)

// Sample performs bilinear filtering of tex at (u, v) following the sampler's repeat and address modes.
// Returns straight (non-premultiplied) RGBA in [0, 1].
func Sample(tex *image.NRGBA, sampler common.SamplerStagingData, u, v float32) [4]float32 {
	w, h := tex.Rect.Dx(), tex.Rect.Dy()
	if w == 0 || h == 0 {
		return [4]float32{1, 1, 1, 1}
	}
	if sampler.RepeatU != 0 {
		u *= sampler.RepeatU
	}
	if sampler.RepeatV != 0 {
		v *= sampler.RepeatV
	}

	fx := u*float32(w) - 0.5
	fy := v*float32(h) - 0.5
	x0f := float32(math.Floor(float64(fx)))
	y0f := float32(math.Floor(float64(fy)))
	dx, dy := fx-x0f, fy-y0f
	x0, y0 := int(x0f), int(y0f)

	x1 := address(x0+1, w, sampler.AddressModeU)
	y1 := address(y0+1, h, sampler.AddressModeV)
	x0 = address(x0, w, sampler.AddressModeU)
	y0 = address(y0, h, sampler.AddressModeV)

	pix, stride := tex.Pix, tex.Stride
	i00 := y0*stride + x0*4
	i10 := y0*stride + x1*4
	i01 := y1*stride + x0*4
	i11 := y1*stride + x1*4

	w00 := (1 - dx) * (1 - dy)
	w10 := dx * (1 - dy)
	w01 := (1 - dx) * dy
	w11 := dx * dy

	var out [4]float32
	for c := 0; c < 4; c++ {
		out[c] = (float32(pix[i00+c])*w00 + float32(pix[i10+c])*w10 + float32(pix[i01+c])*w01 + float32(pix[i11+c])*w11) / 255
	}
	return out
}

// address maps a texel index into [0, n). Anything other than repeat clamps to the edge.
func address(i, n int, mode wgpu.AddressMode) int {
	switch mode {
	case wgpu.AddressModeRepeat:
		i %= n
		if i < 0 {
			i += n
		}
		return i
	default:
		return common.Clamp(i, 0, n-1)
	}
}
