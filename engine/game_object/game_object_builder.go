package game_object

import (
	"github.com/Carmen-Shannon/oxy-sleeve/engine/model"
	"github.com/Carmen-Shannon/oxy-sleeve/engine/renderer/material"
)

// GameObjectBuilderOption is a function that configures a GameObject during construction.
type GameObjectBuilderOption func(*gameObject)

// WithName sets the object's name.
//
// Parameters:
//   - name: the object name
//
// Returns:
//   - GameObjectBuilderOption: a function that sets the name
func WithName(name string) GameObjectBuilderOption {
	return func(g *gameObject) {
		g.name = name
	}
}

// WithEnabled sets whether the object is drawn.
//
// Parameters:
//   - enabled: true to draw the object
//
// Returns:
//   - GameObjectBuilderOption: a function that sets the enabled flag
func WithEnabled(enabled bool) GameObjectBuilderOption {
	return func(g *gameObject) {
		g.enabled = enabled
	}
}

// WithModel sets the geometry drawn for the object.
//
// Parameters:
//   - m: the model
//
// Returns:
//   - GameObjectBuilderOption: a function that sets the model
func WithModel(m model.Model) GameObjectBuilderOption {
	return func(g *gameObject) {
		g.mdl = m
	}
}

// WithMaterial sets the material used to draw the model.
//
// Parameters:
//   - mat: the material
//
// Returns:
//   - GameObjectBuilderOption: a function that sets the material
func WithMaterial(mat material.Material) GameObjectBuilderOption {
	return func(g *gameObject) {
		g.mat = mat
	}
}

// WithRenderOrder sets the draw order among transparent objects.
func WithRenderOrder(order int) GameObjectBuilderOption {
	return func(g *gameObject) {
		g.renderOrder = order
	}
}

// WithPosition sets the initial local position.
//
// Parameters:
//   - x, y, z: position components
//
// Returns:
//   - GameObjectBuilderOption: a function that sets the position
func WithPosition(x, y, z float32) GameObjectBuilderOption {
	return func(g *gameObject) {
		g.position = [3]float32{x, y, z}
	}
}

// WithRotation sets the initial local Euler rotation in radians.
//
// Parameters:
//   - rx, ry, rz: rotation about each axis
//
// Returns:
//   - GameObjectBuilderOption: a function that sets the rotation
func WithRotation(rx, ry, rz float32) GameObjectBuilderOption {
	return func(g *gameObject) {
		g.rotation = [3]float32{rx, ry, rz}
	}
}

// WithScale sets the initial local scale.
//
// Parameters:
//   - sx, sy, sz: scale components
//
// Returns:
//   - GameObjectBuilderOption: a function that sets the scale
func WithScale(sx, sy, sz float32) GameObjectBuilderOption {
	return func(g *gameObject) {
		g.scale = [3]float32{sx, sy, sz}
	}
}

// WithChildren attaches child nodes.
func WithChildren(children ...GameObject) GameObjectBuilderOption {
	return func(g *gameObject) {
		for _, c := range children {
			g.Add(c)
		}
	}
}
