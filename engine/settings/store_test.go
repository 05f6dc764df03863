package settings

import (
	"encoding/json"
	"errors"
	"path/filepath"
	"sort"
	"testing"
)

func isPreset(ref string) bool {
	return ref == "Front" || ref == "Back"
}

func TestLoadEmptySlotReturnsDefaults(t *testing.T) {
	s := NewStore(NewMemorySlot(), WithPresetCheck(isPreset))
	if got := s.Load(); got != Default() {
		t.Fatalf("Load() on empty slot = %+v, want defaults", got)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	slot := NewMemorySlot()
	s := NewStore(slot, WithPresetCheck(isPreset))

	cfg := Default()
	cfg.FrontArt = "Back"
	cfg.BackArt = "Front"
	cfg.VinylReveal = 0.73
	cfg.BackgroundColor = "#202020"
	cfg.FogColor = "#ff0000"
	cfg.AutoOrbit = true
	cfg.AutoOrbitSpeed = 1.37
	cfg.OverlayOpacity = 0.4
	cfg.HemiIntensity = 5.5
	cfg.HemiSkyColor = "#abcdef"
	cfg.HemiGroundColor = "#010203"
	cfg.Brightness = 2.25
	cfg.FogEnabled = true
	cfg.FogNear = 3
	cfg.FogFar = 9

	s.Save(cfg)
	if got := s.Load(); got != cfg {
		t.Fatalf("round trip mismatch:\n got %+v\nwant %+v", got, cfg)
	}
}

func TestSaveWritesOnlyDocumentedFields(t *testing.T) {
	slot := NewMemorySlot()
	s := NewStore(slot)
	s.Save(Default())

	raw, err := slot.Read(StorageKey)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	var record map[string]any
	if err := json.Unmarshal(raw, &record); err != nil {
		t.Fatalf("saved record is not JSON: %v", err)
	}

	var got, want []string
	for k := range record {
		got = append(got, k)
	}
	for _, f := range Fields {
		want = append(want, f.Key)
	}
	sort.Strings(got)
	sort.Strings(want)
	if len(got) != len(want) {
		t.Fatalf("saved keys = %v, want %v", got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("saved keys = %v, want %v", got, want)
		}
	}
}

func TestLoadSubstitutesDefaultsPerField(t *testing.T) {
	tests := []struct {
		name  string
		raw   string
		check func(t *testing.T, cfg Configuration)
	}{
		{
			name: "not json",
			raw:  "{oops",
			check: func(t *testing.T, cfg Configuration) {
				if cfg != Default() {
					t.Fatalf("got %+v, want defaults", cfg)
				}
			},
		},
		{
			name: "wrong typed field keeps default, others apply",
			raw:  `{"vinylReveal":"0.5","brightness":2}`,
			check: func(t *testing.T, cfg Configuration) {
				if cfg.VinylReveal != 0.25 {
					t.Fatalf("VinylReveal got %v want 0.25", cfg.VinylReveal)
				}
				if cfg.Brightness != 2 {
					t.Fatalf("Brightness got %v want 2", cfg.Brightness)
				}
			},
		},
		{
			name: "numeric fields clamped",
			raw:  `{"vinylReveal":7,"autoOrbitSpeed":-1,"hemiIntensity":60,"brightness":-3,"fogNear":-5,"fogFar":500,"overlayOpacity":1.5}`,
			check: func(t *testing.T, cfg Configuration) {
				if cfg.VinylReveal != 1 || cfg.AutoOrbitSpeed != 0 || cfg.HemiIntensity != 6 ||
					cfg.Brightness != 0 || cfg.FogNear != 0 || cfg.FogFar != 100 || cfg.OverlayOpacity != 1 {
					t.Fatalf("clamp failed: %+v", cfg)
				}
			},
		},
		{
			name: "unknown preset and custom fall back",
			raw:  `{"frontArt":"custom","backArt":"Nope"}`,
			check: func(t *testing.T, cfg Configuration) {
				if cfg.FrontArt != "Front" || cfg.BackArt != "Back" {
					t.Fatalf("art refs got %q/%q want Front/Back", cfg.FrontArt, cfg.BackArt)
				}
			},
		},
		{
			name: "colors normalized or rejected",
			raw:  `{"backgroundColor":"#ABC","fogColor":"red","hemiSkyColor":"#FFEEDD"}`,
			check: func(t *testing.T, cfg Configuration) {
				if cfg.BackgroundColor != "#aabbcc" {
					t.Fatalf("BackgroundColor got %q want #aabbcc", cfg.BackgroundColor)
				}
				if cfg.FogColor != "#100f0f" {
					t.Fatalf("FogColor got %q want default", cfg.FogColor)
				}
				if cfg.HemiSkyColor != "#ffeedd" {
					t.Fatalf("HemiSkyColor got %q want #ffeedd", cfg.HemiSkyColor)
				}
			},
		},
		{
			name: "unknown keys ignored",
			raw:  `{"somethingElse":true,"fogEnabled":true}`,
			check: func(t *testing.T, cfg Configuration) {
				if !cfg.FogEnabled {
					t.Fatalf("FogEnabled got false want true")
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slot := NewMemorySlot()
			if err := slot.Write(StorageKey, []byte(tt.raw)); err != nil {
				t.Fatal(err)
			}
			tt.check(t, NewStore(slot, WithPresetCheck(isPreset)).Load())
		})
	}
}

func TestSaveFailureIsSwallowed(t *testing.T) {
	slot := NewMemorySlot()
	slot.WriteErr = errors.New("quota exceeded")
	s := NewStore(slot)

	s.Save(Default())
	if _, err := slot.Read(StorageKey); !errors.Is(err, ErrSlotEmpty) {
		t.Fatalf("Read() error = %v, want ErrSlotEmpty", err)
	}
}

func TestResetRemovesRecord(t *testing.T) {
	slot := NewMemorySlot()
	s := NewStore(slot)
	cfg := Default()
	cfg.Brightness = 3
	s.Save(cfg)

	if err := s.Reset(); err != nil {
		t.Fatalf("Reset() error = %v", err)
	}
	if got := s.Load(); got != Default() {
		t.Fatalf("Load() after reset = %+v, want defaults", got)
	}
}

func TestFileSlotRoundTrip(t *testing.T) {
	slot, err := NewFileSlot(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileSlot() error = %v", err)
	}
	if _, err := slot.Read(StorageKey); !errors.Is(err, ErrSlotEmpty) {
		t.Fatalf("Read() on empty dir error = %v, want ErrSlotEmpty", err)
	}

	s := NewStore(slot, WithPresetCheck(isPreset))
	cfg := Default()
	cfg.FogNear = 3.5
	s.Save(cfg)
	if got := s.Load(); got != cfg {
		t.Fatalf("got %+v want %+v", got, cfg)
	}

	matches, _ := filepath.Glob(filepath.Join(filepath.Dir(slot.Path(StorageKey)), "*.tmp"))
	if len(matches) != 0 {
		t.Fatalf("temp files left behind: %v", matches)
	}
}

func TestSQLiteSlotRoundTrip(t *testing.T) {
	slot, err := OpenSQLiteSlot(filepath.Join(t.TempDir(), "settings.db"))
	if err != nil {
		t.Fatalf("OpenSQLiteSlot() error = %v", err)
	}
	defer slot.Close()

	s := NewStore(slot, WithPresetCheck(isPreset))
	cfg := Default()
	cfg.HemiIntensity = 4.2
	s.Save(cfg)
	cfg.HemiIntensity = 4.3
	s.Save(cfg)

	if got := s.Load(); got != cfg {
		t.Fatalf("got %+v want %+v", got, cfg)
	}
	if err := s.Reset(); err != nil {
		t.Fatalf("Reset() error = %v", err)
	}
	if _, err := s.Raw(); !errors.Is(err, ErrSlotEmpty) {
		t.Fatalf("Raw() after reset error = %v, want ErrSlotEmpty", err)
	}
}
