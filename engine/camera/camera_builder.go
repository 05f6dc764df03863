package camera

import "github.com/Carmen-Shannon/oxy-sleeve/common"

// CameraBuilderOption configures a camera at construction.
type CameraBuilderOption func(*cameraImpl)

// WithFovDegrees sets the vertical field of view.
func WithFovDegrees(degrees float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.fov = common.DegToRad(degrees)
	}
}

// WithClipPlanes sets the near and far clipping distances. Invalid ranges are ignored.
//
// Parameters:
//   - near: near plane distance, must be positive
//   - far: far plane distance, must exceed near
//
// Returns:
//   - CameraBuilderOption: option function to apply
func WithClipPlanes(near, far float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		if near <= 0 || far <= near {
			return
		}
		c.near, c.far = near, far
	}
}

// WithAspect sets the initial aspect ratio. The engine overwrites it on the first resize.
func WithAspect(aspect float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		if aspect > 0 {
			c.aspect = aspect
		}
	}
}

// WithController attaches the controller that owns the camera pose.
func WithController(ctrl CameraController) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.controller = ctrl
	}
}
