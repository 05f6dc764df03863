package backdrop

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/Carmen-Shannon/oxy-sleeve/common"
	"github.com/Carmen-Shannon/oxy-sleeve/engine/mailbox"
	"github.com/Carmen-Shannon/oxy-sleeve/engine/texture"
)

type manualExecutor struct {
	jobs []func()
}

func (m *manualExecutor) Go(job func()) {
	m.jobs = append(m.jobs, job)
}

func solid(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = c.R, c.G, c.B, c.A
	}
	return img
}

func TestGenerateBlurSoftensEdges(t *testing.T) {
	src := solid(20, 20, color.NRGBA{A: 255})
	for y := 0; y < 20; y++ {
		for x := 10; x < 20; x++ {
			src.SetNRGBA(x, y, color.NRGBA{R: 255, G: 255, B: 255, A: 255})
		}
	}
	res, err := GenerateScaled(src, 1, 2, 1)
	if err != nil {
		t.Fatalf("GenerateScaled() error = %v", err)
	}
	img := res.Image()
	left, right := img.NRGBAAt(9, 10).R, img.NRGBAAt(10, 10).R
	if left == 0 || right == 255 || left >= right {
		t.Fatalf("edge not blurred: left %d right %d", left, right)
	}
	if img.NRGBAAt(0, 10).R != 0 || img.NRGBAAt(19, 10).R != 255 {
		t.Fatalf("far pixels changed: %+v %+v", img.NRGBAAt(0, 10), img.NRGBAAt(19, 10))
	}
}

func TestGenerateBlurIgnoresTransparentColor(t *testing.T) {
	src := solid(12, 12, color.NRGBA{R: 255})
	for y := 0; y < 12; y++ {
		for x := 0; x < 6; x++ {
			src.SetNRGBA(x, y, color.NRGBA{G: 255, A: 255})
		}
	}
	res, err := GenerateScaled(src, 1, 2, 1)
	if err != nil {
		t.Fatalf("GenerateScaled() error = %v", err)
	}
	if px := res.Image().NRGBAAt(6, 6); px.R > 1 || px.G < 250 {
		t.Fatalf("transparent red bled into blur: %+v", px)
	}
}

func TestGenerateDownscalesBlursAndScalesBrightness(t *testing.T) {
	src := solid(100, 50, color.NRGBA{R: 200, G: 100, B: 50, A: 255})
	res, err := Generate(src, 3, 0.5)
	if err != nil || res == nil {
		t.Fatalf("Generate() = %v, %v", res, err)
	}
	img := res.Image()
	if img.Rect.Dx() != 40 || img.Rect.Dy() != 20 {
		t.Fatalf("size got %v want 40x20", img.Rect.Size())
	}
	px := img.NRGBAAt(20, 10)
	if px.R != 100 || px.G != 50 || px.B != 25 || px.A != 255 {
		t.Fatalf("pixel got %+v want {100 50 25 255}", px)
	}
	if !res.Sampler().Repeats() {
		t.Fatal("backdrop sampler does not repeat")
	}
}

func TestGenerateClampsBrightness(t *testing.T) {
	res, _ := GenerateScaled(solid(10, 10, color.NRGBA{R: 200, G: 10, B: 0, A: 128}), 1, 0, 3)
	px := res.Image().NRGBAAt(5, 5)
	if px.R != 255 || px.G != 30 || px.A != 128 {
		t.Fatalf("pixel got %+v want R=255 G=30 A=128", px)
	}
}

func TestGenerateAcceptsAnyElementType(t *testing.T) {
	gray := image.NewGray(image.Rect(0, 0, 20, 20))
	for i := range gray.Pix {
		gray.Pix[i] = 80
	}
	pal := image.NewPaletted(image.Rect(0, 0, 20, 20), color.Palette{color.RGBA{R: 255, A: 255}})
	ycc := image.NewYCbCr(image.Rect(0, 0, 20, 20), image.YCbCrSubsampleRatio420)

	for name, src := range map[string]image.Image{"gray": gray, "paletted": pal, "ycbcr": ycc} {
		res, err := Generate(src, 2, 1)
		if err != nil || res == nil {
			t.Fatalf("%s: Generate() = %v, %v", name, res, err)
		}
		if res.Image().Rect.Dx() != 8 {
			t.Fatalf("%s: width got %d want 8", name, res.Image().Rect.Dx())
		}
	}
	res, _ := Generate(gray, 2, 1)
	if px := res.Image().NRGBAAt(4, 4); px.R != 80 || px.G != 80 {
		t.Fatalf("gray pixel got %+v want 80", px)
	}
}

func TestGenerateEmptySource(t *testing.T) {
	res, err := Generate(nil, 4, 1)
	if res != nil || !errors.Is(err, ErrEmptySource) {
		t.Fatalf("Generate(nil) = %v, %v want nil, ErrEmptySource", res, err)
	}
	res, err = Generate(image.NewNRGBA(image.Rect(0, 0, 0, 0)), 4, 1)
	if res != nil || !errors.Is(err, ErrEmptySource) {
		t.Fatalf("Generate(empty) = %v, %v want nil, ErrEmptySource", res, err)
	}
}

func TestLatestRequestWinsWhenResolvedOutOfOrder(t *testing.T) {
	var wall, floor texture.Binding
	mail := mailbox.New()
	exec := &manualExecutor{}
	b := NewBackdrop(&wall, &floor, mail, WithExecutor(exec), WithBrightness(1), WithBlurRadius(0), WithScale(1))

	r1 := texture.NewResource("r1", solid(4, 4, color.NRGBA{R: 255, A: 255}), common.ClampSampler())
	r2 := texture.NewResource("r2", solid(4, 4, color.NRGBA{B: 255, A: 255}), common.ClampSampler())
	id1 := b.Request(r1)
	id2 := b.Request(r2)
	if id2 <= id1 {
		t.Fatalf("request ids not increasing: %d then %d", id1, id2)
	}

	// R2 resolves first, then R1.
	exec.jobs[1]()
	mail.Drain()
	exec.jobs[0]()
	mail.Drain()

	if b.Applied() != id2 {
		t.Fatalf("Applied() got %d want %d", b.Applied(), id2)
	}
	if px := wall.Resource().Image().NRGBAAt(1, 1); px.B != 255 || px.R != 0 {
		t.Fatalf("wall pixel got %+v, want R2's blue", px)
	}
	if px := floor.Resource().Image().NRGBAAt(1, 1); px.B != 255 {
		t.Fatalf("floor pixel got %+v, want R2's blue", px)
	}

	if r1.Refs() != 1 || r2.Refs() != 1 {
		t.Fatalf("source refs got %d/%d want 1/1", r1.Refs(), r2.Refs())
	}
}

func TestFloorIsIndependentCopyWithScaledRepeat(t *testing.T) {
	var wall, floor texture.Binding
	mail := mailbox.New()
	b := NewBackdrop(&wall, &floor, mail, WithFloorRepeat(4))
	src := texture.NewResource("src", solid(30, 30, color.NRGBA{G: 255, A: 255}), common.ClampSampler())

	b.Request(src)
	mail.Drain()

	if wall.Resource() == floor.Resource() {
		t.Fatal("floor shares the wall resource")
	}
	if s := floor.Resource().Sampler(); s.RepeatU != 4 || s.RepeatV != 4 {
		t.Fatalf("floor repeat got %v/%v want 4/4", s.RepeatU, s.RepeatV)
	}
	if s := wall.Resource().Sampler(); s.RepeatU != 1 || s.RepeatV != 1 {
		t.Fatalf("wall repeat got %v/%v want 1/1", s.RepeatU, s.RepeatV)
	}
}

func TestReplacingBackdropReleasesPrevious(t *testing.T) {
	var wall, floor texture.Binding
	mail := mailbox.New()
	b := NewBackdrop(&wall, &floor, mail, WithBlurRadius(1))
	src := texture.NewResource("src", solid(10, 10, color.NRGBA{R: 9, A: 255}), common.ClampSampler())

	b.Request(src)
	mail.Drain()
	firstWall, firstFloor := wall.Resource(), floor.Resource()

	b.Request(src)
	mail.Drain()
	if !firstWall.Disposed() || !firstFloor.Disposed() {
		t.Fatal("previous backdrop textures not released")
	}
}

func TestUnreadableSourceKeepsCurrentBackdrop(t *testing.T) {
	var wall, floor texture.Binding
	mail := mailbox.New()
	b := NewBackdrop(&wall, &floor, mail)
	src := texture.NewResource("src", solid(10, 10, color.NRGBA{R: 9, A: 255}), common.ClampSampler())

	first := b.Request(src)
	mail.Drain()
	current := wall.Resource()

	b.Request(nil)
	mail.Drain()
	if wall.Resource() != current || current.Disposed() {
		t.Fatal("nil result changed the bound backdrop")
	}
	if b.Applied() != first {
		t.Fatalf("Applied() got %d want %d", b.Applied(), first)
	}
}
