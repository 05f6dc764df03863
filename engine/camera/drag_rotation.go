package camera

import "math"

// DefaultDragSensitivity is the rotation in radians per pixel of pointer movement.
const DefaultDragSensitivity float32 = 0.005

// Rotatable is anything whose Euler rotation can be set, such as the sleeve group node.
type Rotatable interface {
	SetRotation(rx, ry, rz float32)
}

// DragRotation accumulates pointer drags into an object orientation. Horizontal movement turns the object about Y,
// vertical movement tilts it about X, clamped to ±90 degrees.
type DragRotation struct {
	sensitivity float32
	pitch       float32
	yaw         float32

	dragging     bool
	lastX, lastY float64
}

// NewDragRotation creates a drag rotation with the given sensitivity in radians per pixel.
func NewDragRotation(sensitivity float32) *DragRotation {
	return &DragRotation{sensitivity: sensitivity}
}

// Begin starts a drag at the given pointer position.
func (d *DragRotation) Begin(x, y float64) {
	d.dragging = true
	d.lastX, d.lastY = x, y
}

// Move feeds a pointer position. It only rotates while a drag is active.
func (d *DragRotation) Move(x, y float64) {
	if !d.dragging {
		return
	}
	d.AddDelta(float32(x-d.lastX), float32(y-d.lastY))
	d.lastX, d.lastY = x, y
}

// End stops the current drag.
func (d *DragRotation) End() {
	d.dragging = false
}

// Dragging reports whether a drag is in progress.
func (d *DragRotation) Dragging() bool {
	return d.dragging
}

// AddDelta adds a screen-space delta in pixels.
//
// Parameters:
//   - dx: horizontal movement, positive to the right
//   - dy: vertical movement, positive downward
func (d *DragRotation) AddDelta(dx, dy float32) {
	const limit = math.Pi / 2
	d.yaw += dx * d.sensitivity
	d.pitch += dy * d.sensitivity
	if d.pitch > limit {
		d.pitch = limit
	}
	if d.pitch < -limit {
		d.pitch = -limit
	}
}

// Rotation returns the accumulated pitch and yaw in radians.
func (d *DragRotation) Rotation() (pitch, yaw float32) {
	return d.pitch, d.yaw
}

// Reset clears the accumulated rotation.
func (d *DragRotation) Reset() {
	d.pitch, d.yaw = 0, 0
}

// Apply writes the accumulated orientation to target.
func (d *DragRotation) Apply(target Rotatable) {
	if target == nil {
		return
	}
	target.SetRotation(d.pitch, d.yaw, 0)
}
