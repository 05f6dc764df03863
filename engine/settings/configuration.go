// Package settings holds the persisted sleeve configuration and the store that
// loads and saves it to a durable key-value slot.
package settings

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/Carmen-Shannon/oxy-sleeve/common"
)

// StorageKey is the durable slot key holding the serialized configuration.
const StorageKey = "vinyl-demo-settings-v1"

// Persisted field keys. These are the JSON names of the record and the keys used by the settings panel.
const (
	KeyFrontArt        = "frontArt"
	KeyBackArt         = "backArt"
	KeyVinylReveal     = "vinylReveal"
	KeyBackgroundColor = "backgroundColor"
	KeyFogColor        = "fogColor"
	KeyAutoOrbit       = "autoOrbit"
	KeyAutoOrbitSpeed  = "autoOrbitSpeed"
	KeyOverlayOpacity  = "overlayOpacity"
	KeyHemiIntensity   = "hemiIntensity"
	KeyHemiSkyColor    = "hemiSkyColor"
	KeyHemiGroundColor = "hemiGroundColor"
	KeyBrightness      = "brightness"
	KeyFogEnabled      = "fogEnabled"
	KeyFogNear         = "fogNear"
	KeyFogFar          = "fogFar"
)

// Configuration is the single source of truth for every user-visible scene parameter.
// Only documented fields live here; runtime state belongs to the components that own it.
type Configuration struct {
	FrontArt        string  `json:"frontArt"`
	BackArt         string  `json:"backArt"`
	VinylReveal     float64 `json:"vinylReveal"`
	BackgroundColor string  `json:"backgroundColor"`
	FogColor        string  `json:"fogColor"`
	AutoOrbit       bool    `json:"autoOrbit"`
	AutoOrbitSpeed  float64 `json:"autoOrbitSpeed"`
	OverlayOpacity  float64 `json:"overlayOpacity"`
	HemiIntensity   float64 `json:"hemiIntensity"`
	HemiSkyColor    string  `json:"hemiSkyColor"`
	HemiGroundColor string  `json:"hemiGroundColor"`
	Brightness      float64 `json:"brightness"`
	FogEnabled      bool    `json:"fogEnabled"`
	FogNear         float64 `json:"fogNear"`
	FogFar          float64 `json:"fogFar"`
}

// Default returns the configuration used when nothing valid has been persisted.
func Default() Configuration {
	return Configuration{
		FrontArt:        "Front",
		BackArt:         "Back",
		VinylReveal:     0.25,
		BackgroundColor: "#100f0f",
		FogColor:        "#100f0f",
		AutoOrbit:       false,
		AutoOrbitSpeed:  0.25,
		OverlayOpacity:  1,
		HemiIntensity:   1.1,
		HemiSkyColor:    "#ffffff",
		HemiGroundColor: "#111122",
		Brightness:      1,
		FogEnabled:      false,
		FogNear:         2,
		FogFar:          8,
	}
}

// FieldKind describes how a configuration field is edited and validated.
type FieldKind int

const (
	// FieldArt is an artwork reference: a preset name or the custom marker.
	FieldArt FieldKind = iota
	// FieldRange is a real clamped to [Min, Max].
	FieldRange
	// FieldColor is a "#rrggbb" color.
	FieldColor
	// FieldToggle is a boolean.
	FieldToggle
)

// Field documents a persisted configuration field.
type Field struct {
	Key    string
	Label  string
	Folder string
	Kind   FieldKind
	Min    float64
	Max    float64
	Step   float64
}

// Fields lists every persisted field in panel order.
var Fields = []Field{
	{Key: KeyFrontArt, Label: "Front", Folder: "Sleeve Artwork", Kind: FieldArt},
	{Key: KeyBackArt, Label: "Back", Folder: "Sleeve Artwork", Kind: FieldArt},
	{Key: KeyBackgroundColor, Label: "Scene Background", Folder: "Sleeve Artwork", Kind: FieldColor},
	{Key: KeyAutoOrbit, Label: "Auto Orbit", Folder: "Sleeve Artwork", Kind: FieldToggle},
	{Key: KeyAutoOrbitSpeed, Label: "Orbit Speed", Folder: "Sleeve Artwork", Kind: FieldRange, Min: 0, Max: 2, Step: 0.01},
	{Key: KeyVinylReveal, Label: "Vinyl Reveal", Kind: FieldRange, Min: 0, Max: 1, Step: 0.01},
	{Key: KeyOverlayOpacity, Label: "Overlay Opacity", Folder: "Surface FX", Kind: FieldRange, Min: 0, Max: 1, Step: 0.01},
	{Key: KeyHemiIntensity, Label: "Hemisphere Intensity", Folder: "Lighting", Kind: FieldRange, Min: 0, Max: 6, Step: 0.01},
	{Key: KeyHemiSkyColor, Label: "Hemisphere Sky", Folder: "Lighting", Kind: FieldColor},
	{Key: KeyHemiGroundColor, Label: "Hemisphere Ground", Folder: "Lighting", Kind: FieldColor},
	{Key: KeyBrightness, Label: "Brightness", Folder: "Lighting", Kind: FieldRange, Min: 0, Max: 3, Step: 0.01},
	{Key: KeyFogEnabled, Label: "Fog", Folder: "Atmosphere", Kind: FieldToggle},
	{Key: KeyFogColor, Label: "Fog Color", Folder: "Atmosphere", Kind: FieldColor},
	{Key: KeyFogNear, Label: "Fog Near", Folder: "Atmosphere", Kind: FieldRange, Min: 0, Max: 100, Step: 0.1},
	{Key: KeyFogFar, Label: "Fog Far", Folder: "Atmosphere", Kind: FieldRange, Min: 0, Max: 100, Step: 0.1},
}

// LookupField returns the documented field for key.
func LookupField(key string) (Field, bool) {
	for _, f := range Fields {
		if f.Key == key {
			return f, true
		}
	}
	return Field{}, false
}

// Decode merges a raw persisted record over the defaults. Each field is decoded on its own; a field that is
// missing, wrong-typed or invalid keeps its default. Unknown keys are ignored. The returned slice names the
// fields that were present but rejected.
//
// Parameters:
//   - raw: the persisted JSON record (may be nil)
//   - isPreset: reports whether an artwork reference names a known preset
//
// Returns:
//   - Configuration: the merged and clamped configuration
//   - []string: keys of rejected fields
//   - error: non-nil when the record as a whole could not be parsed (defaults are still returned)
func Decode(raw []byte, isPreset func(string) bool) (Configuration, []string, error) {
	cfg := Default()
	if len(raw) == 0 {
		return cfg, nil, nil
	}

	var record map[string]json.RawMessage
	if err := json.Unmarshal(raw, &record); err != nil {
		return cfg, nil, fmt.Errorf("parse settings record: %w", err)
	}

	var rejected []string
	for _, f := range Fields {
		value, ok := record[f.Key]
		if !ok {
			continue
		}
		if err := cfg.decodeField(f, value, isPreset); err != nil {
			rejected = append(rejected, f.Key)
		}
	}
	cfg.Clamp()
	return cfg, rejected, nil
}

// Clamp limits every numeric field to its documented range. Non-finite values fall back to the default.
func (c *Configuration) Clamp() {
	defaults := Default()
	for _, f := range Fields {
		if f.Kind != FieldRange {
			continue
		}
		p := c.float(f.Key)
		if math.IsNaN(*p) || math.IsInf(*p, 0) {
			*p = *defaults.float(f.Key)
		}
		*p = common.Clamp(*p, f.Min, f.Max)
	}
}

// Set assigns a single field from a panel value. Numeric values are clamped, colors normalized.
// Writing the background color also writes the fog color so the fog keeps blending into the backdrop.
//
// Parameters:
//   - key: the field key
//   - value: float64, bool or string depending on the field kind
//   - isPreset: reports whether an artwork reference names a known preset
//
// Returns:
//   - error: error if the key is unknown or the value has the wrong type or is invalid
func (c *Configuration) Set(key string, value any, isPreset func(string) bool) error {
	f, ok := LookupField(key)
	if !ok {
		return fmt.Errorf("unknown setting %q", key)
	}
	switch f.Kind {
	case FieldRange:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("setting %q: want number, got %T", key, value)
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("setting %q: value is not finite", key)
		}
		*c.float(key) = common.Clamp(v, f.Min, f.Max)
	case FieldToggle:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("setting %q: want bool, got %T", key, value)
		}
		*c.bool(key) = v
	case FieldColor:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("setting %q: want color string, got %T", key, value)
		}
		hex, ok := common.NormalizeHexColor(v)
		if !ok {
			return fmt.Errorf("setting %q: invalid color %q", key, v)
		}
		*c.string(key) = hex
		if key == KeyBackgroundColor {
			c.FogColor = hex
		}
	case FieldArt:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("setting %q: want preset name, got %T", key, value)
		}
		if isPreset != nil && !isPreset(v) {
			return fmt.Errorf("setting %q: unknown preset %q", key, v)
		}
		*c.string(key) = v
	}
	return nil
}

// Value returns the current value of a field as float64, bool or string.
func (c *Configuration) Value(key string) (any, bool) {
	f, ok := LookupField(key)
	if !ok {
		return nil, false
	}
	switch f.Kind {
	case FieldRange:
		return *c.float(key), true
	case FieldToggle:
		return *c.bool(key), true
	default:
		return *c.string(key), true
	}
}

func (c *Configuration) decodeField(f Field, raw json.RawMessage, isPreset func(string) bool) error {
	switch f.Kind {
	case FieldRange:
		var v float64
		if err := json.Unmarshal(raw, &v); err != nil {
			return err
		}
		*c.float(f.Key) = v
	case FieldToggle:
		var v bool
		if err := json.Unmarshal(raw, &v); err != nil {
			return err
		}
		*c.bool(f.Key) = v
	case FieldColor:
		var v string
		if err := json.Unmarshal(raw, &v); err != nil {
			return err
		}
		hex, ok := common.NormalizeHexColor(v)
		if !ok {
			return fmt.Errorf("invalid color %q", v)
		}
		*c.string(f.Key) = hex
	case FieldArt:
		var v string
		if err := json.Unmarshal(raw, &v); err != nil {
			return err
		}
		if isPreset != nil && !isPreset(v) {
			return fmt.Errorf("unknown preset %q", v)
		}
		*c.string(f.Key) = v
	}
	return nil
}

func (c *Configuration) float(key string) *float64 {
	switch key {
	case KeyVinylReveal:
		return &c.VinylReveal
	case KeyAutoOrbitSpeed:
		return &c.AutoOrbitSpeed
	case KeyOverlayOpacity:
		return &c.OverlayOpacity
	case KeyHemiIntensity:
		return &c.HemiIntensity
	case KeyBrightness:
		return &c.Brightness
	case KeyFogNear:
		return &c.FogNear
	case KeyFogFar:
		return &c.FogFar
	}
	panic("settings: not a numeric field: " + key)
}

func (c *Configuration) bool(key string) *bool {
	switch key {
	case KeyAutoOrbit:
		return &c.AutoOrbit
	case KeyFogEnabled:
		return &c.FogEnabled
	}
	panic("settings: not a toggle field: " + key)
}

func (c *Configuration) string(key string) *string {
	switch key {
	case KeyFrontArt:
		return &c.FrontArt
	case KeyBackArt:
		return &c.BackArt
	case KeyBackgroundColor:
		return &c.BackgroundColor
	case KeyFogColor:
		return &c.FogColor
	case KeyHemiSkyColor:
		return &c.HemiSkyColor
	case KeyHemiGroundColor:
		return &c.HemiGroundColor
	}
	panic("settings: not a string field: " + key)
}
