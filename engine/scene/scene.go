package scene

import (
	"math"
	"sync"

	"github.com/Carmen-Shannon/oxy-sleeve/common"
	"github.com/Carmen-Shannon/oxy-sleeve/engine/camera"
	"github.com/Carmen-Shannon/oxy-sleeve/engine/game_object"
	"github.com/Carmen-Shannon/oxy-sleeve/engine/light"
	"github.com/Carmen-Shannon/oxy-sleeve/engine/model"
	"github.com/Carmen-Shannon/oxy-sleeve/engine/renderer/material"
)

// Slot names a drawable part of the sleeve scene. Each slot has one object and one material.
type Slot string

const (
	SlotBody         Slot = "body"
	SlotFront        Slot = "front"
	SlotBack         Slot = "back"
	SlotFrontOverlay Slot = "front_overlay"
	SlotBackOverlay  Slot = "back_overlay"
	SlotVinyl        Slot = "vinyl"
	SlotWall         Slot = "wall"
	SlotFloor        Slot = "floor"
)

// Slots lists every drawable slot.
var Slots = []Slot{SlotBody, SlotFront, SlotBack, SlotFrontOverlay, SlotBackOverlay, SlotVinyl, SlotWall, SlotFloor}

// Sleeve geometry in world units.
const (
	SleeveWidth     float32 = 1
	SleeveHeight    float32 = 1
	SleeveThickness float32 = 0.006

	// PlaneOffset keeps the artwork panes just outside the sleeve body.
	PlaneOffset float32 = SleeveThickness/2 + 0.0004
	// OverlayOffset keeps the overlay just outside the artwork panes.
	OverlayOffset float32 = PlaneOffset + 0.0008

	VinylRadius float32 = SleeveWidth * 0.48
	VinylBaseX  float32 = 0
	VinylExitX  float32 = 0.5
	VinylZ      float32 = -PlaneOffset + 0.0002

	WallDistance float32 = 4
	FloorY       float32 = -0.75
)

// Fog is linear distance fog. Fragments closer than Near are unaffected, fragments beyond Far take the fog color.
type Fog struct {
	Color common.Color
	Near  float32
	Far   float32
}

// Factor returns how much of the fog color a fragment at viewing distance depth receives, in [0, 1].
func (f *Fog) Factor(depth float32) float32 {
	if f == nil {
		return 0
	}
	if f.Far <= f.Near {
		if depth >= f.Far {
			return 1
		}
		return 0
	}
	return common.Clamp((depth-f.Near)/(f.Far-f.Near), 0, 1)
}

// Scene holds the sleeve scene graph: the rotatable sleeve group with its panes, overlays, vinyl and body, the
// backdrop wall and floor, two lights, the background color, optional fog, and the camera.
// Accessors are safe for concurrent use; scene graph nodes are mutated on the frame goroutine only.
type Scene interface {
	// Root returns the root node.
	Root() game_object.GameObject

	// Sleeve returns the group node rotated by pointer drags.
	Sleeve() game_object.GameObject

	// Object returns the node drawn for slot.
	//
	// Parameters:
	//   - slot: the slot
	//
	// Returns:
	//   - game_object.GameObject: the node, or nil for an unknown slot
	Object(slot Slot) game_object.GameObject

	// Material returns the material of the node drawn for slot.
	//
	// Parameters:
	//   - slot: the slot
	//
	// Returns:
	//   - material.Material: the material, or nil for an unknown slot
	Material(slot Slot) material.Material

	// Hemisphere returns the sky/ground ambient light.
	Hemisphere() light.Light

	// Directional returns the key light.
	Directional() light.Light

	// Lights returns every light in the scene.
	Lights() []light.Light

	// Camera returns the scene camera.
	Camera() camera.Camera

	// Background returns the clear color.
	Background() common.Color

	// SetBackground sets the clear color.
	SetBackground(c common.Color)

	// Fog returns a copy of the current fog, or nil when fog is off.
	Fog() *Fog

	// SetFog replaces the fog. Nil turns fog off.
	SetFog(f *Fog)

	// Release releases every texture bound to the scene materials.
	Release()
}

type scene struct {
	mu *sync.RWMutex

	root    game_object.GameObject
	sleeve  game_object.GameObject
	objects map[Slot]game_object.GameObject

	hemi light.Light
	dir  light.Light
	cam  camera.Camera

	background common.Color
	fog        *Fog
}

var _ Scene = &scene{}

// NewScene builds the sleeve scene with untextured materials. Textures are bound afterwards through
// Material(slot).Map().
//
// Parameters:
//   - options: variadic list of SceneBuilderOption functions
//
// Returns:
//   - Scene: the scene
func NewScene(options ...SceneBuilderOption) Scene {
	s := &scene{
		mu:         &sync.RWMutex{},
		objects:    make(map[Slot]game_object.GameObject),
		background: common.MustParseHexColor("#100f0f"),
	}

	plane := model.NewPlane("pane", SleeveWidth, SleeveHeight)
	paneMaterial := func(name string) material.Material {
		return material.NewMaterial(material.WithName(name), material.WithRoughness(0.8), material.WithMetallic(0.1))
	}
	overlayMaterial := func(name string) material.Material {
		return material.NewMaterial(material.WithName(name), material.WithBlending(material.BlendingAdditive))
	}

	s.add(SlotBody, game_object.WithModel(model.NewBox("body", SleeveWidth, SleeveHeight, SleeveThickness)),
		game_object.WithMaterial(material.NewMaterial(
			material.WithName("body"),
			material.WithColor(common.MustParseHexColor("#1c1c22")),
			material.WithRoughness(0.95),
		)))
	s.add(SlotFront, game_object.WithModel(plane), game_object.WithMaterial(paneMaterial("front")),
		game_object.WithPosition(0, 0, PlaneOffset))
	s.add(SlotBack, game_object.WithModel(plane), game_object.WithMaterial(paneMaterial("back")),
		game_object.WithPosition(0, 0, -PlaneOffset), game_object.WithRotation(0, math.Pi, 0))
	s.add(SlotFrontOverlay, game_object.WithModel(plane), game_object.WithMaterial(overlayMaterial("front_overlay")),
		game_object.WithPosition(0, 0, OverlayOffset), game_object.WithRenderOrder(1))
	s.add(SlotBackOverlay, game_object.WithModel(plane), game_object.WithMaterial(overlayMaterial("back_overlay")),
		game_object.WithPosition(0, 0, -OverlayOffset), game_object.WithRotation(0, math.Pi, 0), game_object.WithRenderOrder(1))
	s.add(SlotVinyl, game_object.WithModel(model.NewDisc("vinyl", VinylRadius, 96)),
		game_object.WithMaterial(material.NewMaterial(
			material.WithName("vinyl"),
			material.WithRoughness(0.4),
			material.WithTransparent(true),
		)),
		game_object.WithPosition(VinylBaseX, 0, VinylZ))

	s.sleeve = game_object.NewGameObject(game_object.WithName("sleeve"))
	for _, slot := range []Slot{SlotVinyl, SlotBody, SlotFront, SlotBack, SlotFrontOverlay, SlotBackOverlay} {
		s.sleeve.Add(s.objects[slot])
	}

	s.add(SlotWall, game_object.WithModel(model.NewPlane("wall", 16, 9)),
		game_object.WithMaterial(material.NewMaterial(material.WithName("wall"), material.WithUnlit(true))),
		game_object.WithPosition(0, 1.5, -WallDistance))
	s.add(SlotFloor, game_object.WithModel(model.NewPlane("floor", 16, 16)),
		game_object.WithMaterial(material.NewMaterial(material.WithName("floor"), material.WithColor(s.background))),
		game_object.WithPosition(0, FloorY, 0), game_object.WithRotation(-math.Pi/2, 0, 0))

	s.root = game_object.NewGameObject(game_object.WithName("root"),
		game_object.WithChildren(s.objects[SlotWall], s.objects[SlotFloor], s.sleeve))

	s.hemi = light.NewLight(light.LightTypeHemisphere,
		light.WithColor(common.MustParseHexColor("#ffffff")),
		light.WithGroundColor(common.MustParseHexColor("#111122")),
		light.WithIntensity(1.1),
	)
	s.dir = light.NewLight(light.LightTypeDirectional,
		light.WithDirection(-1.5, -2, -1),
		light.WithIntensity(0.8),
	)

	for _, opt := range options {
		opt(s)
	}
	if s.cam == nil {
		s.cam = camera.NewCamera(camera.WithController(camera.NewCameraController()))
	}
	return s
}

func (s *scene) add(slot Slot, options ...game_object.GameObjectBuilderOption) {
	options = append([]game_object.GameObjectBuilderOption{game_object.WithName(string(slot))}, options...)
	s.objects[slot] = game_object.NewGameObject(options...)
}

func (s *scene) Root() game_object.GameObject {
	return s.root
}

func (s *scene) Sleeve() game_object.GameObject {
	return s.sleeve
}

func (s *scene) Object(slot Slot) game_object.GameObject {
	return s.objects[slot]
}

func (s *scene) Material(slot Slot) material.Material {
	obj, ok := s.objects[slot]
	if !ok {
		return nil
	}
	return obj.Material()
}

func (s *scene) Hemisphere() light.Light {
	return s.hemi
}

func (s *scene) Directional() light.Light {
	return s.dir
}

func (s *scene) Lights() []light.Light {
	return []light.Light{s.hemi, s.dir}
}

func (s *scene) Camera() camera.Camera {
	return s.cam
}

func (s *scene) Background() common.Color {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.background
}

func (s *scene) SetBackground(c common.Color) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.background = c
}

func (s *scene) Fog() *Fog {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.fog == nil {
		return nil
	}
	f := *s.fog
	return &f
}

func (s *scene) SetFog(f *Fog) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fog = f
}

func (s *scene) Release() {
	for _, slot := range Slots {
		s.objects[slot].Material().Release()
	}
}
