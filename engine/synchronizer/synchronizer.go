// Package synchronizer projects the sleeve configuration onto the scene graph.
//
// Every projection reads the whole configuration and writes the scene properties it owns from scratch, so applying
// a projection twice leaves the scene unchanged.
package synchronizer

import (
	"log/slog"

	"github.com/Carmen-Shannon/oxy-sleeve/common"
	"github.com/Carmen-Shannon/oxy-sleeve/engine/scene"
	"github.com/Carmen-Shannon/oxy-sleeve/engine/settings"
)

// DirectionalScale is the directional light intensity at brightness 1.
const DirectionalScale float32 = 0.8

// VinylTilt is the roll of the vinyl disc in degrees at full reveal.
const VinylTilt float32 = 5

// Synchronizer applies configuration fields to scene objects. It must only be used from the frame goroutine.
type Synchronizer interface {
	// ApplyVinyl slides and tilts the vinyl disc from the reveal amount.
	ApplyVinyl()

	// ApplyLighting sets both lights from intensity, brightness and hemisphere colors.
	ApplyLighting()

	// ApplyFog builds fresh fog from the current color and distances, or removes it when disabled.
	ApplyFog()

	// ApplyBackground sets the clear color and the floor tint from the background color.
	ApplyBackground()

	// ApplyOverlayOpacity sets the same opacity on the front and back overlay.
	ApplyOverlayOpacity()

	// SetBackgroundColor writes a new background color. The fog color follows it and the fog is relinked.
	//
	// Parameters:
	//   - hex: the color as "#rgb" or "#rrggbb"
	//
	// Returns:
	//   - error: error if hex is not a color
	SetBackgroundColor(hex string) error

	// SetFogColor writes a fog color chosen by the user. The fog stops following the background until the next
	// background write.
	//
	// Parameters:
	//   - hex: the color as "#rgb" or "#rrggbb"
	//
	// Returns:
	//   - error: error if hex is not a color
	SetFogColor(hex string) error

	// FogLinked reports whether the fog color currently follows the background color.
	FogLinked() bool

	// ApplyAll runs every projection.
	ApplyAll()

	// ApplyFrame runs the projections polled once per frame.
	ApplyFrame()
}

type synchronizer struct {
	cfg       *settings.Configuration
	scene     scene.Scene
	fogLinked bool
	logger    *slog.Logger
}

var _ Synchronizer = &synchronizer{}

// NewSynchronizer creates a Synchronizer over cfg and sc. The fog starts linked to the background.
//
// Parameters:
//   - cfg: the live configuration, shared with the interaction router
//   - sc: the scene to write
//   - options: variadic list of SynchronizerBuilderOption functions
//
// Returns:
//   - Synchronizer: the synchronizer
func NewSynchronizer(cfg *settings.Configuration, sc scene.Scene, options ...SynchronizerBuilderOption) Synchronizer {
	s := &synchronizer{
		cfg:       cfg,
		scene:     sc,
		fogLinked: true,
		logger:    slog.Default(),
	}
	for _, opt := range options {
		opt(s)
	}
	return s
}

// VinylOffset returns the vinyl slide along X for a reveal amount in [0, 1].
//
// Parameters:
//   - reveal: the reveal amount
//
// Returns:
//   - float32: the X position of the disc
func VinylOffset(reveal float64) float32 {
	return common.Lerp(scene.VinylBaseX, scene.VinylExitX, float32(reveal))
}

func (s *synchronizer) ApplyVinyl() {
	vinyl := s.scene.Object(scene.SlotVinyl)
	_, y, z := vinyl.Position()
	vinyl.SetPosition(VinylOffset(s.cfg.VinylReveal), y, z)
	vinyl.SetRotation(0, 0, common.DegToRad(VinylTilt*float32(s.cfg.VinylReveal)))
}

func (s *synchronizer) ApplyLighting() {
	brightness := float32(s.cfg.Brightness)

	hemi := s.scene.Hemisphere()
	hemi.SetIntensity(float32(s.cfg.HemiIntensity) * brightness)
	hemi.SetColor(s.color(s.cfg.HemiSkyColor, settings.KeyHemiSkyColor))
	hemi.SetGroundColor(s.color(s.cfg.HemiGroundColor, settings.KeyHemiGroundColor))

	s.scene.Directional().SetIntensity(DirectionalScale * brightness)
}

func (s *synchronizer) ApplyFog() {
	if !s.cfg.FogEnabled {
		s.scene.SetFog(nil)
		return
	}
	s.scene.SetFog(&scene.Fog{
		Color: s.color(s.cfg.FogColor, settings.KeyFogColor),
		Near:  float32(s.cfg.FogNear),
		Far:   float32(s.cfg.FogFar),
	})
}

func (s *synchronizer) ApplyBackground() {
	c := s.color(s.cfg.BackgroundColor, settings.KeyBackgroundColor)
	s.scene.SetBackground(c)
	s.scene.Material(scene.SlotFloor).SetColor(c)
}

func (s *synchronizer) ApplyOverlayOpacity() {
	opacity := float32(s.cfg.OverlayOpacity)
	s.scene.Material(scene.SlotFrontOverlay).SetOpacity(opacity)
	s.scene.Material(scene.SlotBackOverlay).SetOpacity(opacity)
}

func (s *synchronizer) SetBackgroundColor(hex string) error {
	if err := s.cfg.Set(settings.KeyBackgroundColor, hex, nil); err != nil {
		return err
	}
	s.fogLinked = true
	s.ApplyBackground()
	s.ApplyFog()
	return nil
}

func (s *synchronizer) SetFogColor(hex string) error {
	if err := s.cfg.Set(settings.KeyFogColor, hex, nil); err != nil {
		return err
	}
	s.fogLinked = false
	s.ApplyFog()
	return nil
}

func (s *synchronizer) FogLinked() bool {
	return s.fogLinked
}

func (s *synchronizer) ApplyAll() {
	s.ApplyBackground()
	s.ApplyFog()
	s.ApplyLighting()
	s.ApplyOverlayOpacity()
	s.ApplyVinyl()
}

func (s *synchronizer) ApplyFrame() {
	s.ApplyLighting()
	s.ApplyVinyl()
}

// color parses a configuration color, falling back to the field default. Loaded configurations are already
// normalized, so the fallback only fires for values written around the store.
func (s *synchronizer) color(hex, key string) common.Color {
	c, err := common.ParseHexColor(hex)
	if err == nil {
		return c
	}
	def := settings.Default()
	fallback, _ := def.Value(key)
	s.logger.Warn("invalid color in configuration", "field", key, "value", hex)
	return common.MustParseHexColor(fallback.(string))
}
