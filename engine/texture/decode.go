package texture

import (
	"bytes"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"mime"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/ftrvxmtrx/tga"
	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	"golang.org/x/image/tiff"
	"golang.org/x/image/webp"
)

// extensions the platform mime table does not always know about
var imageExtensions = map[string]string{
	".bmp":  "image/bmp",
	".tga":  "image/x-tga",
	".tif":  "image/tiff",
	".tiff": "image/tiff",
	".webp": "image/webp",
}

// SniffImageType resolves the media type of an uploaded file, first by extension and then by content.
//
// Parameters:
//   - name: the file name (only the extension is used)
//   - data: the leading bytes of the file
//
// Returns:
//   - string: the resolved media type
//   - bool: true if the media type is image/*
func SniffImageType(name string, data []byte) (string, bool) {
	ext := strings.ToLower(filepath.Ext(name))
	mediaType := imageExtensions[ext]
	if mediaType == "" && ext != "" {
		mediaType = mime.TypeByExtension(ext)
	}
	if mediaType == "" {
		mediaType = http.DetectContentType(data)
	}
	if i := strings.IndexByte(mediaType, ';'); i >= 0 {
		mediaType = mediaType[:i]
	}
	return mediaType, strings.HasPrefix(mediaType, "image/")
}

var decoders = map[string]func(io.Reader) (image.Image, error){
	"image/jpeg":  jpeg.Decode,
	"image/png":   png.Decode,
	"image/gif":   gif.Decode,
	"image/bmp":   bmp.Decode,
	"image/tiff":  tiff.Decode,
	"image/webp":  webp.Decode,
	"image/x-tga": tga.Decode,
}

// DecodeImage decodes an image file into an NRGBA image. The decoder is chosen from the sniffed media type.
//
// Parameters:
//   - name: the file name, used to sniff the media type
//   - data: the encoded image bytes
//
// Returns:
//   - *image.NRGBA: the decoded image
//   - string: the media type used to decode
//   - error: error if the type is unsupported, the bytes could not be decoded or the image is empty
func DecodeImage(name string, data []byte) (*image.NRGBA, string, error) {
	mediaType, ok := SniffImageType(name, data)
	if !ok {
		return nil, mediaType, fmt.Errorf("decode %s: %s is not an image", name, mediaType)
	}
	decode, ok := decoders[mediaType]
	if !ok {
		return nil, mediaType, fmt.Errorf("decode %s: unsupported image type %s", name, mediaType)
	}
	img, err := decode(bytes.NewReader(data))
	if err != nil {
		return nil, mediaType, fmt.Errorf("decode %s: %w", name, err)
	}
	if img.Bounds().Empty() {
		return nil, mediaType, fmt.Errorf("decode %s: empty image", name)
	}
	return ToNRGBA(img), mediaType, nil
}

// ToNRGBA converts img to an NRGBA image anchored at the origin. NRGBA inputs already at the origin are returned as-is.
func ToNRGBA(img image.Image) *image.NRGBA {
	if n, ok := img.(*image.NRGBA); ok && n.Rect.Min == (image.Point{}) {
		return n
	}
	b := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return dst
}
