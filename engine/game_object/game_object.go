package game_object

import (
	"sync/atomic"

	"github.com/Carmen-Shannon/oxy-sleeve/common"
	"github.com/Carmen-Shannon/oxy-sleeve/engine/model"
	"github.com/Carmen-Shannon/oxy-sleeve/engine/renderer/material"
)

var nextID atomic.Uint64

type gameObject struct {
	id          uint64
	name        string
	enabled     bool
	mdl         model.Model
	mat         material.Material
	renderOrder int

	position [3]float32
	rotation [3]float32
	scale    [3]float32

	parent   *gameObject
	children []*gameObject
}

// GameObject defines the interface for a node in the scene graph. A node carries a local transform and optionally a
// model and material; its world transform is the product of its ancestors' local transforms and its own.
// Group nodes carry no model.
type GameObject interface {
	// ID returns the object's unique identifier.
	//
	// Returns:
	//   - uint64: the object ID
	ID() uint64

	// Name returns the object's name.
	//
	// Returns:
	//   - string: the object name
	Name() string

	// Enabled returns whether this object and its children are drawn.
	//
	// Returns:
	//   - bool: true if enabled
	Enabled() bool

	// Model returns the geometry drawn for this object, or nil for group nodes.
	//
	// Returns:
	//   - model.Model: the model or nil
	Model() model.Model

	// Material returns the material used to draw the model, or nil for group nodes.
	//
	// Returns:
	//   - material.Material: the material or nil
	Material() material.Material

	// RenderOrder returns the draw order among transparent objects. Lower values draw first.
	//
	// Returns:
	//   - int: the render order
	RenderOrder() int

	// Position returns the local position.
	//
	// Returns:
	//   - x, y, z: position components
	Position() (x, y, z float32)

	// Rotation returns the local Euler rotation in radians.
	//
	// Returns:
	//   - rx, ry, rz: rotation about each axis
	Rotation() (rx, ry, rz float32)

	// Scale returns the local scale.
	//
	// Returns:
	//   - sx, sy, sz: scale components
	Scale() (sx, sy, sz float32)

	// LocalMatrix returns the column-major local transform.
	//
	// Returns:
	//   - [16]float32: the local transform
	LocalMatrix() [16]float32

	// WorldMatrix returns the column-major world transform including all ancestors.
	//
	// Returns:
	//   - [16]float32: the world transform
	WorldMatrix() [16]float32

	// Parent returns the parent node, or nil for roots.
	Parent() GameObject

	// Children returns the child nodes in insertion order.
	Children() []GameObject

	// Add attaches child under this node, detaching it from any previous parent.
	//
	// Parameters:
	//   - child: the node to attach
	Add(child GameObject)

	// Walk visits this node and its enabled descendants depth-first. Disabled subtrees are skipped.
	//
	// Parameters:
	//   - visit: called for each visited node
	Walk(visit func(GameObject))

	// SetEnabled enables or disables the object.
	SetEnabled(enabled bool)

	// SetPosition sets the local position.
	SetPosition(x, y, z float32)

	// SetRotation sets the local Euler rotation in radians.
	SetRotation(rx, ry, rz float32)

	// SetScale sets the local scale.
	SetScale(sx, sy, sz float32)
}

var _ GameObject = &gameObject{}

// NewGameObject creates a new GameObject configured with the provided options.
//
// Parameters:
//   - options: variadic list of GameObjectBuilderOption functions
//
// Returns:
//   - GameObject: a new GameObject instance
func NewGameObject(options ...GameObjectBuilderOption) GameObject {
	g := &gameObject{
		id:      nextID.Add(1),
		enabled: true,
		scale:   [3]float32{1, 1, 1},
	}
	for _, opt := range options {
		opt(g)
	}
	return g
}

func (g *gameObject) ID() uint64 {
	return g.id
}

func (g *gameObject) Name() string {
	return g.name
}

func (g *gameObject) Enabled() bool {
	return g.enabled
}

func (g *gameObject) Model() model.Model {
	return g.mdl
}

func (g *gameObject) Material() material.Material {
	return g.mat
}

func (g *gameObject) RenderOrder() int {
	return g.renderOrder
}

func (g *gameObject) Position() (x, y, z float32) {
	return g.position[0], g.position[1], g.position[2]
}

func (g *gameObject) Rotation() (rx, ry, rz float32) {
	return g.rotation[0], g.rotation[1], g.rotation[2]
}

func (g *gameObject) Scale() (sx, sy, sz float32) {
	return g.scale[0], g.scale[1], g.scale[2]
}

func (g *gameObject) LocalMatrix() [16]float32 {
	var m [16]float32
	common.BuildModelMatrix(m[:],
		g.position[0], g.position[1], g.position[2],
		g.rotation[0], g.rotation[1], g.rotation[2],
		g.scale[0], g.scale[1], g.scale[2],
	)
	return m
}

func (g *gameObject) WorldMatrix() [16]float32 {
	m := g.LocalMatrix()
	for p := g.parent; p != nil; p = p.parent {
		pm := p.LocalMatrix()
		common.Mul4(m[:], pm[:], m[:])
	}
	return m
}

func (g *gameObject) Parent() GameObject {
	if g.parent == nil {
		return nil
	}
	return g.parent
}

func (g *gameObject) Children() []GameObject {
	out := make([]GameObject, len(g.children))
	for i, c := range g.children {
		out[i] = c
	}
	return out
}

func (g *gameObject) Add(child GameObject) {
	c, ok := child.(*gameObject)
	if !ok || c == g {
		return
	}
	if c.parent != nil {
		siblings := c.parent.children
		for i, s := range siblings {
			if s == c {
				c.parent.children = append(siblings[:i], siblings[i+1:]...)
				break
			}
		}
	}
	c.parent = g
	g.children = append(g.children, c)
}

func (g *gameObject) Walk(visit func(GameObject)) {
	if !g.enabled {
		return
	}
	visit(g)
	for _, c := range g.children {
		c.Walk(visit)
	}
}

func (g *gameObject) SetEnabled(enabled bool) {
	g.enabled = enabled
}

func (g *gameObject) SetPosition(x, y, z float32) {
	g.position = [3]float32{x, y, z}
}

func (g *gameObject) SetRotation(rx, ry, rz float32) {
	g.rotation = [3]float32{rx, ry, rz}
}

func (g *gameObject) SetScale(sx, sy, sz float32) {
	g.scale = [3]float32{sx, sy, sz}
}
