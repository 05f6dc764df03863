package camera

import (
	"math"
	"sync"
)

// zoomBase is the per-step dolly factor before ZoomSpeed is applied.
const zoomBase = 0.95

// cameraControllerImpl is the single implementation of CameraController.
type cameraControllerImpl struct {
	mu *sync.Mutex

	position [3]float32
	target   [3]float32

	// pendingScale accumulates queued zoom until Update
	pendingScale float32

	minRadius float32
	maxRadius float32
	zoomSpeed float32
}

// Compile-time interface compliance check
var _ CameraController = &cameraControllerImpl{}

// NewCameraController creates a new camera controller with the default sleeve viewing pose.
//
// Parameters:
//   - options: functional options to configure the controller
//
// Returns:
//   - CameraController: the newly created controller
func NewCameraController(options ...CameraControllerOption) CameraController {
	cc := &cameraControllerImpl{
		mu:           &sync.Mutex{},
		position:     [3]float32{1.5, 0.85, 1.5},
		target:       [3]float32{0, 0, 0},
		pendingScale: 1,
		minRadius:    0.6,
		maxRadius:    8.0,
		zoomSpeed:    1.0,
	}

	for _, option := range options {
		option(cc)
	}

	cc.applyDistance(1)
	return cc
}

// --- internal helpers ---

// applyDistance scales the offset from the target by scale and clamps the result.
// Caller must hold the mutex.
func (cc *cameraControllerImpl) applyDistance(scale float32) {
	ox := cc.position[0] - cc.target[0]
	oy := cc.position[1] - cc.target[1]
	oz := cc.position[2] - cc.target[2]
	dist := float32(math.Sqrt(float64(ox*ox + oy*oy + oz*oz)))
	if dist < 1e-8 {
		return
	}
	next := dist * scale
	if next < cc.minRadius {
		next = cc.minRadius
	}
	if next > cc.maxRadius {
		next = cc.maxRadius
	}
	k := next / dist
	cc.position[0] = cc.target[0] + ox*k
	cc.position[1] = cc.target[1] + oy*k
	cc.position[2] = cc.target[2] + oz*k
}

func (cc *cameraControllerImpl) Position() (x, y, z float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.position[0], cc.position[1], cc.position[2]
}

func (cc *cameraControllerImpl) SetPosition(x, y, z float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.position[0] = x
	cc.position[1] = y
	cc.position[2] = z
}

func (cc *cameraControllerImpl) Target() (x, y, z float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.target[0], cc.target[1], cc.target[2]
}

func (cc *cameraControllerImpl) SetTarget(x, y, z float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.target[0] = x
	cc.target[1] = y
	cc.target[2] = z
}

func (cc *cameraControllerImpl) Zoom(delta float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.pendingScale *= float32(math.Pow(zoomBase, float64(delta*cc.zoomSpeed)))
}

func (cc *cameraControllerImpl) Update() {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.applyDistance(cc.pendingScale)
	cc.pendingScale = 1
}

func (cc *cameraControllerImpl) Radius() float32 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	ox := cc.position[0] - cc.target[0]
	oy := cc.position[1] - cc.target[1]
	oz := cc.position[2] - cc.target[2]
	return float32(math.Sqrt(float64(ox*ox + oy*oy + oz*oz)))
}

func (cc *cameraControllerImpl) HorizontalDistance() float32 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	ox := cc.position[0] - cc.target[0]
	oz := cc.position[2] - cc.target[2]
	return float32(math.Sqrt(float64(ox*ox + oz*oz)))
}

func (cc *cameraControllerImpl) MinRadius() float32 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.minRadius
}

func (cc *cameraControllerImpl) MaxRadius() float32 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.maxRadius
}

func (cc *cameraControllerImpl) ZoomSpeed() float32 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.zoomSpeed
}
