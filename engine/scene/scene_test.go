package scene

import (
	"image"
	"testing"

	"github.com/Carmen-Shannon/oxy-sleeve/common"
	"github.com/Carmen-Shannon/oxy-sleeve/engine/renderer/material"
	"github.com/Carmen-Shannon/oxy-sleeve/engine/texture"
)

func TestSceneLayout(t *testing.T) {
	s := NewScene()
	for _, slot := range Slots {
		if s.Object(slot) == nil || s.Material(slot) == nil {
			t.Fatalf("slot %q missing", slot)
		}
	}
	if got := len(s.Sleeve().Children()); got != 6 {
		t.Fatalf("sleeve children got %d want 6", got)
	}
	if s.Material(SlotFrontOverlay).Blending() != material.BlendingAdditive || s.Material(SlotFrontOverlay).DepthWrite() {
		t.Fatal("overlay is not additive without depth write")
	}
	if _, _, z := s.Object(SlotVinyl).Position(); z != VinylZ {
		t.Fatalf("vinyl z got %v want %v", z, VinylZ)
	}
	if s.Fog() != nil {
		t.Fatal("fog enabled by default")
	}
	if s.Camera() == nil {
		t.Fatal("no default camera")
	}
}

func TestFogCopyAndFactor(t *testing.T) {
	s := NewScene()
	s.SetFog(&Fog{Color: common.Color{1, 0, 0}, Near: 2, Far: 6})
	f := s.Fog()
	f.Near = 100
	if s.Fog().Near != 2 {
		t.Fatal("Fog() returned a shared pointer")
	}
	g := s.Fog()
	if got := g.Factor(4); got != 0.5 {
		t.Fatalf("Factor(4) got %v want 0.5", got)
	}
	if got := g.Factor(10); got != 1 {
		t.Fatalf("Factor(10) got %v want 1", got)
	}
	var off *Fog
	if off.Factor(10) != 0 {
		t.Fatal("nil fog factor not zero")
	}
}

func TestReleaseDisposesBoundTextures(t *testing.T) {
	s := NewScene()
	res := texture.NewResource("overlay", image.NewNRGBA(image.Rect(0, 0, 1, 1)), common.ClampSampler())
	s.Material(SlotFrontOverlay).Map().Replace(res)
	s.Material(SlotBackOverlay).Map().Replace(res.Retain())
	s.Release()
	if !res.Disposed() {
		t.Fatal("shared overlay not disposed after scene release")
	}
}
