package camera

// CameraController owns the camera's positional state (position and look-at target).
// The camera reads from the controller and computes view/projection matrices.
//
// Zoom input is queued by Zoom and applied by Update as a dolly along the current offset from the target, so a
// position written between the two calls (for example by the auto orbit) keeps its direction and only has its
// distance scaled.
type CameraController interface {
	// Position returns the camera's world-space position.
	//
	// Returns:
	//   - x, y, z: world-space camera position
	Position() (x, y, z float32)

	// Target returns the look-at point.
	//
	// Returns:
	//   - x, y, z: world-space target position
	Target() (x, y, z float32)

	// SetPosition sets the camera's world-space position directly. The distance is not clamped until the next Update.
	//
	// Parameters:
	//   - x, y, z: world-space coordinates
	SetPosition(x, y, z float32)

	// SetTarget sets the look-at point, keeping the camera position.
	//
	// Parameters:
	//   - x, y, z: world-space coordinates
	SetTarget(x, y, z float32)

	// Zoom queues a dolly. Positive delta moves toward the target.
	//
	// Parameters:
	//   - delta: wheel steps, scaled by ZoomSpeed
	Zoom(delta float32)

	// Update applies the queued dolly and clamps the distance to [MinRadius, MaxRadius].
	Update()

	// Radius returns the current distance from the camera to the target.
	//
	// Returns:
	//   - float32: distance to target
	Radius() float32

	// HorizontalDistance returns the distance from the camera to the target projected on the XZ plane.
	//
	// Returns:
	//   - float32: horizontal distance to target
	HorizontalDistance() float32

	// MinRadius returns the minimum allowed distance.
	//
	// Returns:
	//   - float32: minimum zoom distance
	MinRadius() float32

	// MaxRadius returns the maximum allowed distance.
	//
	// Returns:
	//   - float32: maximum zoom distance
	MaxRadius() float32

	// ZoomSpeed returns the zoom speed multiplier.
	//
	// Returns:
	//   - float32: multiplier for zoom input
	ZoomSpeed() float32
}
