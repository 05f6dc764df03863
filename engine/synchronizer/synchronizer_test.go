package synchronizer

import (
	"math"
	"testing"

	"github.com/Carmen-Shannon/oxy-sleeve/common"
	"github.com/Carmen-Shannon/oxy-sleeve/engine/scene"
	"github.com/Carmen-Shannon/oxy-sleeve/engine/settings"
)

func newFixture() (*settings.Configuration, scene.Scene, Synchronizer) {
	cfg := settings.Default()
	sc := scene.NewScene()
	return &cfg, sc, NewSynchronizer(&cfg, sc)
}

func TestVinylOffsetEndpointsAndMonotonic(t *testing.T) {
	if got := VinylOffset(0); got != scene.VinylBaseX {
		t.Fatalf("offset(0) got %v want %v", got, scene.VinylBaseX)
	}
	if got := VinylOffset(1); got != scene.VinylExitX {
		t.Fatalf("offset(1) got %v want %v", got, scene.VinylExitX)
	}
	prev := VinylOffset(0)
	for i := 1; i <= 100; i++ {
		cur := VinylOffset(float64(i) / 100)
		if cur < prev {
			t.Fatalf("offset decreased at %d: %v < %v", i, cur, prev)
		}
		prev = cur
	}
}

func TestApplyVinyl(t *testing.T) {
	cfg, sc, s := newFixture()
	cfg.VinylReveal = 1
	s.ApplyVinyl()

	x, _, z := sc.Object(scene.SlotVinyl).Position()
	if x != scene.VinylExitX || z != scene.VinylZ {
		t.Fatalf("vinyl position got (%v, %v) want (%v, %v)", x, z, scene.VinylExitX, scene.VinylZ)
	}
	_, _, rz := sc.Object(scene.SlotVinyl).Rotation()
	if math.Abs(float64(rz)-5*math.Pi/180) > 1e-6 {
		t.Fatalf("vinyl roll got %v want 5 degrees", rz)
	}
}

func TestApplyLightingRecomputesFromScratch(t *testing.T) {
	cfg, sc, s := newFixture()
	cfg.Brightness = 2
	s.ApplyLighting()
	s.ApplyLighting()

	if got, want := sc.Hemisphere().Intensity(), float32(cfg.HemiIntensity)*2; got != want {
		t.Fatalf("hemisphere intensity got %v want %v", got, want)
	}
	if got, want := sc.Directional().Intensity(), DirectionalScale*2; got != want {
		t.Fatalf("directional intensity got %v want %v", got, want)
	}

	cfg.Brightness = 0.5
	cfg.HemiSkyColor = "#ff0000"
	s.ApplyLighting()
	if got, want := sc.Directional().Intensity(), DirectionalScale*0.5; got != want {
		t.Fatalf("directional intensity got %v want %v", got, want)
	}
	if got := sc.Hemisphere().Color().Hex(); got != "#ff0000" {
		t.Fatalf("sky color got %s want #ff0000", got)
	}
}

func TestFogToggleRestoresDistances(t *testing.T) {
	cfg, sc, s := newFixture()

	cfg.FogEnabled = true
	s.ApplyFog()
	cfg.FogNear, cfg.FogFar = 3, 9
	s.ApplyFog()

	cfg.FogEnabled = false
	s.ApplyFog()
	if sc.Fog() != nil {
		t.Fatal("fog still set after disabling")
	}

	cfg.FogEnabled = true
	s.ApplyFog()
	fog := sc.Fog()
	if fog == nil {
		t.Fatal("fog not rebuilt after enabling")
	}
	if fog.Near != 3 || fog.Far != 9 {
		t.Fatalf("fog distances got (%v, %v) want (3, 9)", fog.Near, fog.Far)
	}
}

func TestBackgroundFogCoupling(t *testing.T) {
	cfg, sc, s := newFixture()
	cfg.FogEnabled = true
	s.ApplyAll()

	steps := []struct {
		name       string
		apply      func() error
		wantFog    string
		wantBG     string
		wantLinked bool
	}{
		{"background", func() error { return s.SetBackgroundColor("#202020") }, "#202020", "#202020", true},
		{"fog override", func() error { return s.SetFogColor("#FF0000") }, "#ff0000", "#202020", false},
		{"background wins", func() error { return s.SetBackgroundColor("#111111") }, "#111111", "#111111", true},
	}
	for _, step := range steps {
		if err := step.apply(); err != nil {
			t.Fatalf("%s: %v", step.name, err)
		}
		if cfg.FogColor != step.wantFog {
			t.Fatalf("%s: config fog got %s want %s", step.name, cfg.FogColor, step.wantFog)
		}
		if got := sc.Fog().Color.Hex(); got != step.wantFog {
			t.Fatalf("%s: scene fog got %s want %s", step.name, got, step.wantFog)
		}
		if got := sc.Background().Hex(); got != step.wantBG {
			t.Fatalf("%s: background got %s want %s", step.name, got, step.wantBG)
		}
		if got := sc.Material(scene.SlotFloor).Color().Hex(); got != step.wantBG {
			t.Fatalf("%s: floor tint got %s want %s", step.name, got, step.wantBG)
		}
		if s.FogLinked() != step.wantLinked {
			t.Fatalf("%s: linked got %v want %v", step.name, s.FogLinked(), step.wantLinked)
		}
	}
}

func TestSetColorRejectsInvalid(t *testing.T) {
	cfg, _, s := newFixture()
	if err := s.SetBackgroundColor("nope"); err == nil {
		t.Fatal("expected error for invalid background color")
	}
	if err := s.SetFogColor("#12"); err == nil {
		t.Fatal("expected error for invalid fog color")
	}
	if cfg.BackgroundColor != settings.Default().BackgroundColor {
		t.Fatalf("background changed to %s", cfg.BackgroundColor)
	}
}

func TestOverlayOpacityAppliedToBothSides(t *testing.T) {
	cfg, sc, s := newFixture()
	cfg.OverlayOpacity = 0.3
	s.ApplyOverlayOpacity()
	for _, slot := range []scene.Slot{scene.SlotFrontOverlay, scene.SlotBackOverlay} {
		if got := sc.Material(slot).Opacity(); got != float32(0.3) {
			t.Fatalf("%s opacity got %v want 0.3", slot, got)
		}
	}
}

func TestApplyAllIsIdempotent(t *testing.T) {
	cfg, sc, s := newFixture()
	cfg.FogEnabled = true
	cfg.VinylReveal = 0.6
	cfg.BackgroundColor = "#334455"

	s.ApplyAll()
	first := snapshotState(sc)
	s.ApplyAll()
	if second := snapshotState(sc); second != first {
		t.Fatalf("state changed on reapply:\n got %+v\nwant %+v", second, first)
	}
}

type sceneState struct {
	background common.Color
	fog        scene.Fog
	hemi, dir  float32
	vinylX     float32
	vinylRoll  float32
	overlay    float32
	floorTint  common.Color
}

func snapshotState(sc scene.Scene) sceneState {
	x, _, _ := sc.Object(scene.SlotVinyl).Position()
	_, _, rz := sc.Object(scene.SlotVinyl).Rotation()
	st := sceneState{
		background: sc.Background(),
		hemi:       sc.Hemisphere().Intensity(),
		dir:        sc.Directional().Intensity(),
		vinylX:     x,
		vinylRoll:  rz,
		overlay:    sc.Material(scene.SlotFrontOverlay).Opacity(),
		floorTint:  sc.Material(scene.SlotFloor).Color(),
	}
	if f := sc.Fog(); f != nil {
		st.fog = *f
	}
	return st
}
