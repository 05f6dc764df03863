package snapshot

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/Carmen-Shannon/oxy-sleeve/engine/scene"
	"github.com/HugoSmits86/nativewebp"
)

// Format is an output image encoding.
type Format string

const (
	FormatWebP Format = "webp"
	FormatPNG  Format = "png"
)

// FormatFromPath picks the encoding from a file extension.
//
// Parameters:
//   - path: the output path
//
// Returns:
//   - Format: the encoding
//   - error: error if the extension is neither .webp nor .png
func FormatFromPath(path string) (Format, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".webp":
		return FormatWebP, nil
	case ".png":
		return FormatPNG, nil
	default:
		return "", fmt.Errorf("unsupported snapshot extension %q", ext)
	}
}

// Encode writes img to w in the given format. WebP output is lossless.
func Encode(w io.Writer, img image.Image, format Format) error {
	switch format {
	case FormatWebP:
		if err := nativewebp.Encode(w, img, nil); err != nil {
			return fmt.Errorf("webp encode: %w", err)
		}
	case FormatPNG:
		if err := png.Encode(w, img); err != nil {
			return fmt.Errorf("png encode: %w", err)
		}
	default:
		return fmt.Errorf("unsupported snapshot format %q", format)
	}
	return nil
}

// Capture renders sc once at the given size.
func Capture(sc scene.Scene, width, height int) *image.NRGBA {
	return NewRasterizer().Render(sc, width, height)
}

// WriteFile renders sc and writes it to path. The format follows the extension.
//
// Parameters:
//   - path: the output file, ending in .webp or .png
//   - sc: the scene
//   - width, height: output size in pixels
//
// Returns:
//   - error: error if the format is unsupported or the file could not be written
func WriteFile(path string, sc scene.Scene, width, height int) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create snapshot dir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create snapshot: %w", err)
	}
	if err := Encode(f, Capture(sc, width, height), format); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
