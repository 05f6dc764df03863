package snapshot

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/Carmen-Shannon/oxy-sleeve/common"
	"github.com/Carmen-Shannon/oxy-sleeve/engine/light"
	"github.com/Carmen-Shannon/oxy-sleeve/engine/scene"
	"github.com/Carmen-Shannon/oxy-sleeve/engine/texture"
)

func solidResource(label string, c color.NRGBA) *texture.Resource {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = c.R, c.G, c.B, c.A
	}
	return texture.NewResource(label, img, common.ClampSampler())
}

// sleeveScene returns a scene with a red front pane and the overlays hidden.
func sleeveScene() scene.Scene {
	sc := scene.NewScene()
	sc.Material(scene.SlotFront).Map().Replace(solidResource("front", color.NRGBA{R: 255, A: 255}))
	sc.Material(scene.SlotFrontOverlay).SetOpacity(0)
	sc.Material(scene.SlotBackOverlay).SetOpacity(0)
	return sc
}

func TestRenderShowsFrontArtworkAtCenter(t *testing.T) {
	img := NewRasterizer().Render(sleeveScene(), 64, 48)
	if img.Rect.Dx() != 64 || img.Rect.Dy() != 48 {
		t.Fatalf("size got %v want 64x48", img.Rect.Size())
	}
	px := img.NRGBAAt(32, 24)
	if px.R < 80 || px.G > 10 || px.B > 10 || px.A != 255 {
		t.Fatalf("center pixel got %+v want lit red", px)
	}
}

func TestRenderClearsToBackground(t *testing.T) {
	sc := sleeveScene()
	sc.Object(scene.SlotWall).SetEnabled(false)
	sc.Object(scene.SlotFloor).SetEnabled(false)
	sc.SetBackground(common.MustParseHexColor("#204060"))

	px := NewRasterizer().Render(sc, 32, 32).NRGBAAt(0, 0)
	if px.R != 0x20 || px.G != 0x40 || px.B != 0x60 {
		t.Fatalf("corner pixel got %+v want #204060", px)
	}
}

func TestRenderAppliesFog(t *testing.T) {
	sc := sleeveScene()
	sc.SetFog(&scene.Fog{Color: common.Color{0, 1, 0}, Near: 0, Far: 0.1})

	px := NewRasterizer().Render(sc, 32, 32).NRGBAAt(16, 16)
	if px.R != 0 || px.G != 255 || px.B != 0 {
		t.Fatalf("center pixel got %+v want fog green", px)
	}
}

func TestAdditiveOverlayBrightens(t *testing.T) {
	base := NewRasterizer().Render(sleeveScene(), 32, 32).NRGBAAt(16, 16)

	sc := sleeveScene()
	overlay := solidResource("overlay", color.NRGBA{R: 40, G: 40, B: 40, A: 255})
	sc.Material(scene.SlotFrontOverlay).Map().Replace(overlay)
	sc.Material(scene.SlotFrontOverlay).SetOpacity(1)
	lit := NewRasterizer().Render(sc, 32, 32).NRGBAAt(16, 16)

	if lit.G <= base.G || lit.B <= base.B {
		t.Fatalf("overlay did not add light: base %+v overlay %+v", base, lit)
	}
}

func TestSpecularFollowsRoughness(t *testing.T) {
	sun := light.NewLight(light.LightTypeDirectional, light.WithDirection(0, 0, -1), light.WithIntensity(1))
	sky := light.NewLight(light.LightTypeHemisphere, light.WithIntensity(1))
	lights := []light.Light{sun, sky}
	n := [3]float32{0, 0, 1}
	toEye := [3]float32{0, 0, 1}

	smooth := Specular(n, toEye, lights, 0.1)
	rough := Specular(n, toEye, lights, 0.8)
	if smooth[0] <= rough[0] || rough[0] <= 0 {
		t.Fatalf("highlight got smooth %v rough %v want smooth > rough > 0", smooth[0], rough[0])
	}
	if c := Specular(n, toEye, lights, 1); c != (common.Color{}) {
		t.Fatalf("roughness 1 highlight got %v want none", c)
	}
	if c := Specular([3]float32{0, 0, -1}, toEye, lights, 0.1); c != (common.Color{}) {
		t.Fatalf("unlit side highlight got %v want none", c)
	}
}

func TestRenderUsesMaterialRoughness(t *testing.T) {
	render := func(roughness float32) color.NRGBA {
		sc := sleeveScene()
		sc.Material(scene.SlotFront).Map().Replace(solidResource("front", color.NRGBA{R: 40, G: 40, B: 40, A: 255}))
		sc.Material(scene.SlotFront).SetRoughness(roughness)
		ctrl := sc.Camera().Controller()
		ctrl.SetTarget(0, 0, 0)
		ctrl.SetPosition(0, 0, 2)
		sc.Camera().Update()
		sc.Lights()[1].SetDirection(0, 0, -1)
		return NewRasterizer().Render(sc, 64, 48).NRGBAAt(32, 24)
	}
	glossy, matte := render(0), render(1)
	if glossy.R <= matte.R {
		t.Fatalf("center pixel glossy %+v not brighter than matte %+v", glossy, matte)
	}
}

func TestSampleAddressModes(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	img.SetNRGBA(0, 0, color.NRGBA{R: 255, A: 255})
	img.SetNRGBA(1, 0, color.NRGBA{B: 255, A: 255})

	clamped := Sample(img, common.ClampSampler(), 1.5, 0.5)
	if clamped[2] != 1 || clamped[0] != 0 {
		t.Fatalf("clamped sample got %v want blue", clamped)
	}
	wrapped := Sample(img, common.RepeatSampler(1, 1), 1.25, 0.5)
	if wrapped[0] != 1 || wrapped[2] != 0 {
		t.Fatalf("wrapped sample got %v want red", wrapped)
	}
	tiled := Sample(img, common.RepeatSampler(2, 1), 0.375, 0.5)
	if tiled[2] != 1 {
		t.Fatalf("tiled sample got %v want blue", tiled)
	}
}

func TestEncodeFormats(t *testing.T) {
	img := NewRasterizer().Render(sleeveScene(), 16, 16)

	var webp bytes.Buffer
	if err := Encode(&webp, img, FormatWebP); err != nil {
		t.Fatalf("Encode(webp) error = %v", err)
	}
	if b := webp.Bytes(); len(b) < 12 || string(b[:4]) != "RIFF" || string(b[8:12]) != "WEBP" {
		t.Fatal("webp output has no RIFF/WEBP header")
	}

	if _, err := FormatFromPath("cover.gif"); err == nil {
		t.Fatal("FormatFromPath() accepted .gif")
	}
}

func TestWriteFilePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "cover.png")
	if err := WriteFile(path, sleeveScene(), 20, 10); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("png.Decode() error = %v", err)
	}
	if img.Bounds().Dx() != 20 || img.Bounds().Dy() != 10 {
		t.Fatalf("size got %v want 20x10", img.Bounds().Size())
	}
}
