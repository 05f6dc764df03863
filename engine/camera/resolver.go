package camera

import "github.com/Carmen-Shannon/oxy-sleeve/engine/settings"

// Resolver composes the per-frame camera pose: auto orbit first, then the controller's queued zoom, then the
// camera matrices.
type Resolver struct {
	cam   Camera
	orbit *OrbitResolver
}

// NewResolver creates a resolver driving cam. The camera must have a controller attached.
//
// Parameters:
//   - cam: the camera to update
//   - orbit: the orbit resolver; nil creates one at DefaultOrbitHeight
//
// Returns:
//   - *Resolver: the resolver
func NewResolver(cam Camera, orbit *OrbitResolver) *Resolver {
	if orbit == nil {
		orbit = NewOrbitResolver(DefaultOrbitHeight)
	}
	return &Resolver{cam: cam, orbit: orbit}
}

// Resolve advances the camera for one frame.
//
// Parameters:
//   - dt: elapsed seconds since the previous frame
//   - cfg: the configuration, polled for auto orbit state
func (r *Resolver) Resolve(dt float64, cfg *settings.Configuration) {
	ctrl := r.cam.Controller()
	if ctrl == nil {
		return
	}
	r.orbit.Advance(ctrl, dt, cfg.AutoOrbit, cfg.AutoOrbitSpeed)
	ctrl.Update()
	r.cam.Update()
}

// Orbit returns the orbit resolver.
func (r *Resolver) Orbit() *OrbitResolver {
	return r.orbit
}

// Camera returns the driven camera.
func (r *Resolver) Camera() Camera {
	return r.cam
}
