package snapshot

import (
	"image"
	"math"

	"github.com/Carmen-Shannon/oxy-sleeve/common"
)

// FrameBuffer holds the render target as flat slices for cache locality.
type FrameBuffer struct {
	Width  int
	Height int
	Color  []float32 // linear RGB, len = W*H*3
	Depth  []float32 // clip-space depth per pixel, len = W*H, cleared to +inf
}

// NewFrameBuffer allocates a frame buffer of the given size.
func NewFrameBuffer(w, h int) *FrameBuffer {
	fb := &FrameBuffer{}
	fb.Resize(w, h)
	return fb
}

// Resize reallocates the buffers when the size changes.
func (fb *FrameBuffer) Resize(w, h int) {
	if fb.Width == w && fb.Height == h && fb.Color != nil {
		return
	}
	fb.Width, fb.Height = w, h
	fb.Color = make([]float32, w*h*3)
	fb.Depth = make([]float32, w*h)
}

// Clear fills the color buffer with c and resets depth.
func (fb *FrameBuffer) Clear(c common.Color) {
	for i := 0; i < len(fb.Color); i += 3 {
		fb.Color[i], fb.Color[i+1], fb.Color[i+2] = c[0], c[1], c[2]
	}
	inf := float32(math.Inf(1))
	for i := range fb.Depth {
		fb.Depth[i] = inf
	}
}

// Image converts the color buffer to an opaque 8-bit image.
//
// Parameters:
//   - dst: image to reuse when it has the right size, may be nil
//
// Returns:
//   - *image.NRGBA: the converted image
func (fb *FrameBuffer) Image(dst *image.NRGBA) *image.NRGBA {
	if dst == nil || dst.Rect.Dx() != fb.Width || dst.Rect.Dy() != fb.Height {
		dst = image.NewNRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	}
	for y := 0; y < fb.Height; y++ {
		row := dst.Pix[y*dst.Stride:]
		src := fb.Color[y*fb.Width*3:]
		for x := 0; x < fb.Width; x++ {
			row[x*4] = to8(src[x*3])
			row[x*4+1] = to8(src[x*3+1])
			row[x*4+2] = to8(src[x*3+2])
			row[x*4+3] = 255
		}
	}
	return dst
}

func to8(v float32) uint8 {
	return uint8(common.Clamp(v, 0, 1)*255 + 0.5)
}
