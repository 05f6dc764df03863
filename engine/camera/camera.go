package camera

import (
	"sync"

	"github.com/Carmen-Shannon/oxy-sleeve/common"
)

// Default lens of the sleeve viewer. The clip range covers the backdrop wall behind the sleeve.
const (
	DefaultFovDegrees = 45
	DefaultNear       = 0.05
	DefaultFar        = 50
)

var worldUp = [3]float32{0, 1, 0}

// Camera is the perspective camera the sleeve is viewed through.
// Pose comes from an attached CameraController; the camera only owns the lens (field of view, aspect and clip
// planes) and caches the matrices derived from both. Update must be called after the controller moves.
type Camera interface {
	// Fov returns the vertical field of view in radians.
	Fov() float32

	// Aspect returns the aspect ratio (width / height) of the window the camera is presented in.
	Aspect() float32

	// Near returns the near clipping plane distance.
	Near() float32

	// Far returns the far clipping plane distance.
	Far() float32

	// ViewMatrix returns the cached 4x4 view matrix (column-major).
	ViewMatrix() [16]float32

	// ViewProjectionMatrix returns the cached view-projection matrix for the current aspect (column-major).
	ViewProjectionMatrix() [16]float32

	// ViewProjectionFor returns the view-projection matrix for an arbitrary output aspect, leaving the cached
	// matrices untouched. Snapshots use it to render at sizes other than the window's.
	//
	// Parameters:
	//   - aspect: output width / height
	//
	// Returns:
	//   - [16]float32: the combined matrix (column-major)
	ViewProjectionFor(aspect float32) [16]float32

	// Eye returns the world-space camera position, or the origin when no controller is attached.
	Eye() [3]float32

	// Controller returns the attached CameraController, or nil.
	Controller() CameraController

	// Update re-reads the controller pose and recomputes the cached matrices. No-op without a controller.
	Update()

	// SetAspect sets the aspect ratio and recomputes the cached matrices.
	//
	// Parameters:
	//   - aspect: width / height
	SetAspect(aspect float32)
}

type cameraImpl struct {
	mu *sync.Mutex

	fov    float32
	aspect float32
	near   float32
	far    float32

	view     [16]float32
	viewProj [16]float32

	controller CameraController
}

var _ Camera = &cameraImpl{}

// NewCamera creates a camera with the default sleeve lens.
//
// Parameters:
//   - options: functional options to configure the camera
//
// Returns:
//   - Camera: the newly created camera
func NewCamera(options ...CameraBuilderOption) Camera {
	c := &cameraImpl{
		mu:     &sync.Mutex{},
		fov:    common.DegToRad(DefaultFovDegrees),
		aspect: 1,
		near:   DefaultNear,
		far:    DefaultFar,
	}
	common.Identity(c.view[:])
	common.Identity(c.viewProj[:])
	for _, option := range options {
		option(c)
	}
	c.recompute()
	return c
}

func (c *cameraImpl) Fov() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fov
}

func (c *cameraImpl) Aspect() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.aspect
}

func (c *cameraImpl) Near() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.near
}

func (c *cameraImpl) Far() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.far
}

func (c *cameraImpl) ViewMatrix() [16]float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.view
}

func (c *cameraImpl) ViewProjectionMatrix() [16]float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewProj
}

func (c *cameraImpl) ViewProjectionFor(aspect float32) [16]float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	var proj, out [16]float32
	common.Perspective(proj[:], c.fov, aspect, c.near, c.far)
	common.Mul4(out[:], proj[:], c.view[:])
	return out
}

func (c *cameraImpl) Eye() [3]float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.controller == nil {
		return [3]float32{}
	}
	x, y, z := c.controller.Position()
	return [3]float32{x, y, z}
}

func (c *cameraImpl) Controller() CameraController {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.controller
}

func (c *cameraImpl) Update() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.recompute()
}

func (c *cameraImpl) SetAspect(aspect float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.aspect = aspect
	c.recompute()
}

// recompute refreshes the view and view-projection matrices from the controller pose.
// Caller must hold the mutex.
func (c *cameraImpl) recompute() {
	if c.controller == nil {
		return
	}
	px, py, pz := c.controller.Position()
	tx, ty, tz := c.controller.Target()
	common.LookAt(c.view[:], px, py, pz, tx, ty, tz, worldUp[0], worldUp[1], worldUp[2])

	var proj [16]float32
	common.Perspective(proj[:], c.fov, c.aspect, c.near, c.far)
	common.Mul4(c.viewProj[:], proj[:], c.view[:])
}
