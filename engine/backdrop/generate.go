// Package backdrop derives the blurred wall and floor textures from the front artwork.
package backdrop

import (
	"errors"
	"image"
	"image/color"
	"math"

	"github.com/Carmen-Shannon/oxy-sleeve/common"
	"github.com/Carmen-Shannon/oxy-sleeve/engine/texture"
	"github.com/disintegration/imaging"
	"golang.org/x/image/draw"
)

// Defaults for backdrop generation.
const (
	DefaultScale       = 0.4
	DefaultBlurRadius  = 12.0
	DefaultBrightness  = 0.55
	DefaultFloorRepeat = 4.0
)

// ErrEmptySource is returned when the artwork has no pixels to derive a backdrop from.
var ErrEmptySource = errors.New("backdrop source is empty")

// Generate derives a backdrop texture from src at the default scale.
//
// Parameters:
//   - src: the source image; any image.Image element type is accepted
//   - blurRadius: the Gaussian blur sigma in pixels of the downscaled image
//   - brightness: factor applied to the color channels
//
// Returns:
//   - *texture.Resource: a repeat-addressed resource holding one reference
//   - error: ErrEmptySource if src is nil or has no pixels
func Generate(src image.Image, blurRadius, brightness float64) (*texture.Resource, error) {
	return GenerateScaled(src, DefaultScale, blurRadius, brightness)
}

// GenerateScaled is Generate with an explicit downscale factor in (0, 1].
func GenerateScaled(src image.Image, scale, blurRadius, brightness float64) (*texture.Resource, error) {
	if src == nil || src.Bounds().Empty() {
		return nil, ErrEmptySource
	}

	small := downscale(src, scale)
	blurred := small
	if blurRadius > 0 {
		// imaging weights color by alpha, so transparent pixels do not bleed their hidden color.
		blurred = imaging.Blur(small, blurRadius)
	}
	return texture.NewResource("backdrop", dim(blurred, brightness), common.RepeatSampler(1, 1)), nil
}

func downscale(src image.Image, scale float64) *image.NRGBA {
	if scale <= 0 || scale > 1 {
		scale = 1
	}
	b := src.Bounds()
	w := max(1, int(math.Round(float64(b.Dx())*scale)))
	h := max(1, int(math.Round(float64(b.Dy())*scale)))
	if w == b.Dx() && h == b.Dy() {
		return imaging.Clone(src)
	}
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)
	return dst
}

// dim scales the color channels by brightness and leaves alpha alone.
func dim(img *image.NRGBA, brightness float64) *image.NRGBA {
	k := float32(brightness)
	return imaging.AdjustFunc(img, func(c color.NRGBA) color.NRGBA {
		return color.NRGBA{R: scale8(c.R, k), G: scale8(c.G, k), B: scale8(c.B, k), A: c.A}
	})
}

func scale8(v uint8, k float32) uint8 {
	return uint8(common.Clamp(float32(v)*k, 0, 255) + 0.5)
}
