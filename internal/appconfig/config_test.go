package appconfig_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"github.com/Carmen-Shannon/oxy-sleeve/internal/appconfig"
)

func TestLoadMissingConfigUsesDefaultsAndExpandsPaths(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	cfg, resolved, exists, err := appconfig.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}
	if want := filepath.Join(tempHome, ".config", "oxy-sleeve", "config.toml"); resolved != want {
		t.Fatalf("resolved got %q want %q", resolved, want)
	}
	if want := filepath.Join(tempHome, ".local", "share", "oxy-sleeve", "assets"); cfg.Assets.Dir != want {
		t.Fatalf("assets dir got %q want %q", cfg.Assets.Dir, want)
	}
	if cfg.Storage.Backend != appconfig.StorageFile {
		t.Fatalf("storage backend got %q want file", cfg.Storage.Backend)
	}
	if cfg.Storage.Key != "vinyl-demo-settings-v1" {
		t.Fatalf("storage key got %q", cfg.Storage.Key)
	}
}

func TestSampleConfigParsesAndValidates(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := appconfig.WriteSample(path, false); err != nil {
		t.Fatalf("WriteSample returned error: %v", err)
	}

	cfg, _, exists, err := appconfig.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists {
		t.Fatal("expected the sample file to exist")
	}

	def := appconfig.Default()
	if cfg.Window.Width != def.Window.Width || cfg.Backdrop.BlurRadius != def.Backdrop.BlurRadius {
		t.Fatalf("sample diverges from defaults: %+v", cfg)
	}

	if err := appconfig.WriteSample(path, false); err == nil {
		t.Fatal("expected WriteSample to refuse overwriting")
	}
	if err := appconfig.WriteSample(path, true); err != nil {
		t.Fatalf("forced WriteSample returned error: %v", err)
	}
}

func TestLoadOverridesAndNormalizes(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	var overrides struct {
		Storage appconfig.Storage `toml:"storage"`
		Logging appconfig.Logging `toml:"logging"`
	}
	overrides.Storage = appconfig.Storage{Backend: " SQLite ", Path: filepath.Join(dir, "sleeve.db"), Key: "k"}
	overrides.Logging = appconfig.Logging{Level: "DEBUG", Format: "Json"}
	data, err := toml.Marshal(overrides)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, _, _, err := appconfig.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Storage.Backend != appconfig.StorageSQLite {
		t.Fatalf("backend got %q want sqlite", cfg.Storage.Backend)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.Format != "json" {
		t.Fatalf("logging got %+v", cfg.Logging)
	}
	if cfg.Window.Title != "oxy-sleeve" {
		t.Fatalf("untouched sections should keep defaults, got title %q", cfg.Window.Title)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	cases := map[string]string{
		"backend":     "[storage]\nbackend = \"redis\"\n",
		"present":     "[window]\npresent_mode = \"mailbox\"\n",
		"scale":       "[window]\nrender_scale = 2.0\n",
		"camera":      "[camera]\nmin_distance = 5.0\nmax_distance = 1.0\n",
		"level":       "[logging]\nlevel = \"trace\"\n",
		"unknown key": "[window]\nfullscreen = true\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
				t.Fatalf("write: %v", err)
			}
			if _, _, _, err := appconfig.Load(path); err == nil {
				t.Fatalf("expected an error for %q", strings.TrimSpace(body))
			}
		})
	}
}
