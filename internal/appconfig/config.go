package appconfig

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Storage backends for the persisted sleeve configuration.
const (
	StorageFile   = "file"
	StorageSQLite = "sqlite"
	StorageMemory = "memory"
)

// Present modes accepted by window.present_mode.
const (
	PresentVSync    = "vsync"
	PresentUncapped = "uncapped"
)

// Window contains the window and presentation settings.
type Window struct {
	Title       string  `toml:"title"`
	Width       int     `toml:"width"`
	Height      int     `toml:"height"`
	PresentMode string  `toml:"present_mode"`
	RenderScale float64 `toml:"render_scale"`
	Software    bool    `toml:"software"`
}

// Render contains frame loop settings.
type Render struct {
	FrameLimit float64 `toml:"frame_limit"`
	Profiling  bool    `toml:"profiling"`
}

// Assets contains the artwork location and loading policy.
type Assets struct {
	Dir          string `toml:"dir"`
	Placeholders bool   `toml:"placeholders"`
	Strict       bool   `toml:"strict"`
}

// Storage selects where the sleeve configuration is persisted.
type Storage struct {
	Backend string `toml:"backend"`
	Path    string `toml:"path"`
	Key     string `toml:"key"`
}

// Backdrop contains the wall and floor generation parameters.
type Backdrop struct {
	Scale       float64 `toml:"scale"`
	BlurRadius  float64 `toml:"blur_radius"`
	Brightness  float64 `toml:"brightness"`
	FloorRepeat float64 `toml:"floor_repeat"`
	Workers     int     `toml:"workers"`
}

// Camera contains the interactive camera parameters.
type Camera struct {
	DragSensitivity float64 `toml:"drag_sensitivity"`
	OrbitHeight     float64 `toml:"orbit_height"`
	ZoomSpeed       float64 `toml:"zoom_speed"`
	MinDistance     float64 `toml:"min_distance"`
	MaxDistance     float64 `toml:"max_distance"`
}

// Snapshot contains the defaults for exported images.
type Snapshot struct {
	Dir    string `toml:"dir"`
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
}

// Logging contains configuration for log output.
type Logging struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// Config encapsulates the application configuration for oxy-sleeve.
//
// This is separate from the persisted sleeve configuration: it describes how the application runs (window,
// storage, assets), while the sleeve configuration describes what the user sees.
type Config struct {
	Window   Window   `toml:"window"`
	Render   Render   `toml:"render"`
	Assets   Assets   `toml:"assets"`
	Storage  Storage  `toml:"storage"`
	Backdrop Backdrop `toml:"backdrop"`
	Camera   Camera   `toml:"camera"`
	Snapshot Snapshot `toml:"snapshot"`
	Logging  Logging  `toml:"logging"`
}

// DefaultConfigPath returns the absolute path to the default configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/oxy-sleeve/config.toml")
}

// Load locates, parses, and validates a configuration file. A missing file is not an error; the defaults are
// used and exists is false.
//
// Parameters:
//   - path: explicit config path, or empty for the default location
//
// Returns:
//   - *Config: the normalized configuration
//   - string: the resolved path
//   - bool: whether the file existed
//   - error: error if the file could not be parsed or failed validation
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

// SampleConfig returns the commented sample configuration.
func SampleConfig() string {
	return sampleConfig
}

// WriteSample writes the sample configuration to path, refusing to overwrite an existing file unless force is set.
//
// Parameters:
//   - path: destination file
//   - force: overwrite an existing file
//
// Returns:
//   - error: error if the file exists or could not be written
func WriteSample(path string, force bool) error {
	expanded, err := expandPath(path)
	if err != nil {
		return err
	}
	if !force {
		if _, err := os.Stat(expanded); err == nil {
			return fmt.Errorf("config already exists at %s (use --overwrite to replace it)", expanded)
		}
	}
	if err := os.MkdirAll(filepath.Dir(expanded), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(expanded, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path == "" {
		var err error
		if path, err = DefaultConfigPath(); err != nil {
			return "", false, err
		}
	}
	expanded, err := expandPath(path)
	if err != nil {
		return "", false, err
	}
	info, err := os.Stat(expanded)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return expanded, false, nil
		}
		return "", false, fmt.Errorf("stat config: %w", err)
	}
	if info.IsDir() {
		return "", false, fmt.Errorf("config path %s is a directory", expanded)
	}
	return expanded, true, nil
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath exposes the path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}
