package texture

import (
	"hash/fnv"
	"image"
	"image/color"
	"math"
)

const placeholderSize = 256

// Placeholder generates a stand-in image for a missing asset file. The vinyl disc gets grooves with a transparent
// surround, the overlay a faint speckle, and everything else a two-tone checker tinted from the file name.
func Placeholder(file string) *image.NRGBA {
	switch file {
	case AssetVinyl:
		return vinylPlaceholder()
	case AssetOverlay:
		return overlayPlaceholder()
	}
	return checkerPlaceholder(file)
}

func checkerPlaceholder(file string) *image.NRGBA {
	h := fnv.New32a()
	h.Write([]byte(file))
	seed := h.Sum32()
	a := color.NRGBA{R: uint8(seed), G: uint8(seed >> 8), B: uint8(seed >> 16), A: 255}
	b := color.NRGBA{R: a.R / 3, G: a.G / 3, B: a.B / 3, A: 255}

	img := image.NewNRGBA(image.Rect(0, 0, placeholderSize, placeholderSize))
	const cell = placeholderSize / 8
	for y := 0; y < placeholderSize; y++ {
		for x := 0; x < placeholderSize; x++ {
			if (x/cell+y/cell)%2 == 0 {
				img.SetNRGBA(x, y, a)
			} else {
				img.SetNRGBA(x, y, b)
			}
		}
	}
	return img
}

func vinylPlaceholder() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, placeholderSize, placeholderSize))
	c := float64(placeholderSize) / 2
	for y := 0; y < placeholderSize; y++ {
		for x := 0; x < placeholderSize; x++ {
			dx, dy := float64(x)+0.5-c, float64(y)+0.5-c
			r := math.Hypot(dx, dy) / c
			switch {
			case r > 1:
				continue
			case r < 0.33:
				img.SetNRGBA(x, y, color.NRGBA{R: 180, G: 40, B: 40, A: 255})
			default:
				v := uint8(18 + 10*math.Abs(math.Sin(r*140)))
				img.SetNRGBA(x, y, color.NRGBA{R: v, G: v, B: v, A: 255})
			}
		}
	}
	return img
}

func overlayPlaceholder() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, placeholderSize, placeholderSize))
	state := uint32(2463534242)
	for i := 0; i < len(img.Pix); i += 4 {
		state ^= state << 13
		state ^= state >> 17
		state ^= state << 5
		v := uint8(state % 24)
		img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = v, v, v, 255
	}
	return img
}
