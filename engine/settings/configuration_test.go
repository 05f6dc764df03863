package settings

import "testing"

func TestSetValidatesAndClamps(t *testing.T) {
	cfg := Default()

	if err := cfg.Set(KeyBrightness, 9.0, isPreset); err != nil {
		t.Fatalf("Set(brightness) error = %v", err)
	}
	if cfg.Brightness != 3 {
		t.Fatalf("Brightness got %v want 3", cfg.Brightness)
	}
	if err := cfg.Set(KeyFogColor, "#ABCDEF", isPreset); err != nil {
		t.Fatalf("Set(fogColor) error = %v", err)
	}
	if cfg.FogColor != "#abcdef" {
		t.Fatalf("FogColor got %q want #abcdef", cfg.FogColor)
	}
	if err := cfg.Set(KeyFrontArt, "Nope", isPreset); err == nil {
		t.Fatal("Set(frontArt, unknown) expected error")
	}
	if err := cfg.Set(KeyAutoOrbit, 1.0, isPreset); err == nil {
		t.Fatal("Set(autoOrbit, number) expected error")
	}
	if err := cfg.Set("missing", 1.0, isPreset); err == nil {
		t.Fatal("Set(unknown key) expected error")
	}
}

func TestSetBackgroundColorCarriesFog(t *testing.T) {
	cfg := Default()
	if err := cfg.Set(KeyFogColor, "#FF0000", isPreset); err != nil {
		t.Fatalf("Set(fogColor) error = %v", err)
	}
	if err := cfg.Set(KeyBackgroundColor, "#202020", isPreset); err != nil {
		t.Fatalf("Set(backgroundColor) error = %v", err)
	}
	if cfg.BackgroundColor != "#202020" || cfg.FogColor != "#202020" {
		t.Fatalf("colors got background %q fog %q want #202020 for both", cfg.BackgroundColor, cfg.FogColor)
	}

	if err := cfg.Set(KeyBackgroundColor, "bogus", isPreset); err == nil {
		t.Fatal("Set(backgroundColor, bogus) expected error")
	}
	if cfg.FogColor != "#202020" {
		t.Fatalf("FogColor changed on rejected write: %q", cfg.FogColor)
	}
}

func TestValueReadsEveryField(t *testing.T) {
	cfg := Default()
	for _, f := range Fields {
		if _, ok := cfg.Value(f.Key); !ok {
			t.Fatalf("Value(%q) not found", f.Key)
		}
	}
	v, _ := cfg.Value(KeyFogFar)
	if v.(float64) != 8 {
		t.Fatalf("Value(fogFar) got %v want 8", v)
	}
}
