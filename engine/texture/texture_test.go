package texture

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"
	"testing/fstest"

	"github.com/Carmen-Shannon/oxy-sleeve/common"
)

func encodePNG(t *testing.T, w, h int, c color.NRGBA) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = c.R, c.G, c.B, c.A
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("png.Encode() error = %v", err)
	}
	return buf.Bytes()
}

func TestResourceDisposedOnLastRelease(t *testing.T) {
	r := NewResource("overlay", image.NewNRGBA(image.Rect(0, 0, 2, 2)), common.ClampSampler())
	r.Retain()
	if r.Refs() != 2 {
		t.Fatalf("Refs() got %d want 2", r.Refs())
	}
	if r.Release() {
		t.Fatal("first Release() disposed a shared resource")
	}
	if r.Disposed() || r.Image() == nil {
		t.Fatal("resource disposed while still referenced")
	}
	if !r.Release() {
		t.Fatal("last Release() did not dispose")
	}
	if !r.Disposed() || r.Image() != nil {
		t.Fatal("resource not disposed after last release")
	}
	if r.Release() {
		t.Fatal("Release() after disposal reported a second disposal")
	}
}

func TestBindingReplaceReleasesPrevious(t *testing.T) {
	var b Binding
	a := NewResource("a", image.NewNRGBA(image.Rect(0, 0, 1, 1)), common.ClampSampler())
	c := NewResource("c", image.NewNRGBA(image.Rect(0, 0, 1, 1)), common.ClampSampler())

	b.Replace(a)
	if b.Resource() != a {
		t.Fatal("binding does not point at a")
	}
	b.Replace(c)
	if !a.Disposed() {
		t.Fatal("previous resource not disposed on replace")
	}
	if b.Resource() != c || c.Disposed() {
		t.Fatal("binding does not point at live c")
	}

	b.Replace(c.Retain())
	if c.Refs() != 1 || c.Disposed() {
		t.Fatalf("rebinding same resource: refs got %d want 1", c.Refs())
	}

	b.Clear()
	if !c.Disposed() || b.Resource() != nil {
		t.Fatal("Clear() did not release the bound resource")
	}
}

func TestSharedResourceAcrossBindings(t *testing.T) {
	var front, back Binding
	overlay := NewResource("overlay", image.NewNRGBA(image.Rect(0, 0, 1, 1)), common.ClampSampler())
	front.Replace(overlay)
	back.Replace(overlay.Retain())

	front.Clear()
	if overlay.Disposed() {
		t.Fatal("shared overlay disposed while back still holds it")
	}
	back.Clear()
	if !overlay.Disposed() {
		t.Fatal("shared overlay not disposed after both owners released")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	src := NewResource("src", image.NewNRGBA(image.Rect(0, 0, 2, 2)), common.ClampSampler())
	clone := src.Clone("floor", common.RepeatSampler(4, 4))
	clone.Image().Pix[0] = 200
	if src.Image().Pix[0] != 0 {
		t.Fatal("clone shares pixels with source")
	}
	if !clone.Sampler().Repeats() || clone.Sampler().RepeatU != 4 {
		t.Fatalf("clone sampler got %+v", clone.Sampler())
	}
	src.Release()
	if clone.Disposed() {
		t.Fatal("releasing the source disposed the clone")
	}
}

func TestProvisionerResolve(t *testing.T) {
	assets := fstest.MapFS{
		"front.jpg": {Data: encodePNG(t, 4, 3, color.NRGBA{R: 255, A: 255})},
		"back.jpg":  {Data: encodePNG(t, 2, 2, color.NRGBA{B: 255, A: 255})},
	}
	p := NewProvisioner(assets)

	res, err := p.Resolve("Front")
	if err != nil {
		t.Fatalf("Resolve(Front) error = %v", err)
	}
	if got := res.Image().Rect.Dx(); got != 4 {
		t.Fatalf("width got %d want 4", got)
	}
	if got := res.Image().Pix[0]; got != 255 {
		t.Fatalf("red channel got %d want 255", got)
	}

	_, err = p.Resolve("Sideways")
	var unknown *UnknownPresetError
	if !errors.As(err, &unknown) || unknown.Ref != "Sideways" {
		t.Fatalf("Resolve(unknown) error = %v, want *UnknownPresetError", err)
	}

	if _, err := p.Resolve(RefCustom); !errors.Is(err, ErrCustomArt) {
		t.Fatalf("Resolve(custom) error = %v, want ErrCustomArt", err)
	}
}

func TestProvisionerStrictPanics(t *testing.T) {
	p := NewProvisioner(fstest.MapFS{}, WithStrict(true))
	defer func() {
		if recover() == nil {
			t.Fatal("strict Resolve(unknown) did not panic")
		}
	}()
	p.Resolve("Sideways")
}

func TestProvisionerPlaceholders(t *testing.T) {
	p := NewProvisioner(fstest.MapFS{}, WithPlaceholders(true))
	res, err := p.LoadAsset(AssetVinyl)
	if err != nil {
		t.Fatalf("LoadAsset(vinyl) error = %v", err)
	}
	if res.Image().Rect.Dx() != placeholderSize {
		t.Fatalf("placeholder width got %d", res.Image().Rect.Dx())
	}
	if a := res.Image().NRGBAAt(0, 0).A; a != 0 {
		t.Fatalf("vinyl placeholder corner alpha got %d want 0", a)
	}

	if _, err := NewProvisioner(fstest.MapFS{}).LoadAsset(AssetVinyl); err == nil {
		t.Fatal("LoadAsset without placeholders expected error")
	}
}

func TestResolveBytesRejectsNonImages(t *testing.T) {
	p := NewProvisioner(nil)
	if _, err := p.ResolveBytes("notes.txt", []byte("hello world")); err == nil {
		t.Fatal("ResolveBytes(text) expected error")
	}
	res, err := p.ResolveBytes("upload.png", encodePNG(t, 3, 3, color.NRGBA{G: 255, A: 255}))
	if err != nil {
		t.Fatalf("ResolveBytes(png) error = %v", err)
	}
	if res.Refs() != 1 {
		t.Fatalf("Refs() got %d want 1", res.Refs())
	}
}

func TestSniffImageType(t *testing.T) {
	pngData := encodePNG(t, 1, 1, color.NRGBA{A: 255})
	tests := []struct {
		name string
		data []byte
		want string
		ok   bool
	}{
		{"cover.png", pngData, "image/png", true},
		{"cover", pngData, "image/png", true},
		{"cover.TGA", nil, "image/x-tga", true},
		{"readme.txt", []byte("plain"), "text/plain", false},
	}
	for _, tt := range tests {
		got, ok := SniffImageType(tt.name, tt.data)
		if got != tt.want || ok != tt.ok {
			t.Fatalf("SniffImageType(%q) got %q,%v want %q,%v", tt.name, got, ok, tt.want, tt.ok)
		}
	}
}
