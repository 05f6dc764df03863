package camera

import "math"

// DefaultOrbitHeight is the camera height above the target while auto-orbiting.
const DefaultOrbitHeight float32 = 0.85

// OrbitResolver advances the automatic camera orbit. It owns only the orbit angle; the distance is read from the
// controller every frame so zoom applied by the user survives the orbit.
type OrbitResolver struct {
	angle  float64
	active bool
	height float32
}

// NewOrbitResolver creates an orbit resolver that keeps the camera at height above the target.
//
// Parameters:
//   - height: vertical offset from the target while orbiting
//
// Returns:
//   - *OrbitResolver: the resolver
func NewOrbitResolver(height float32) *OrbitResolver {
	return &OrbitResolver{height: height}
}

// Advance moves the orbit angle by rate*dt and writes the resulting camera position to ctrl.
// When the orbit (re)starts, the angle is picked up from the camera's current bearing so it does not jump.
// The horizontal distance never drops below the controller's MinRadius and the full offset never exceeds MaxRadius,
// so zooming in while orbiting cannot tip the camera into a top-down view.
//
// Parameters:
//   - ctrl: the controller to move
//   - dt: elapsed seconds since the previous frame
//   - enabled: whether auto orbit is on
//   - rate: angular rate in radians per second
func (o *OrbitResolver) Advance(ctrl CameraController, dt float64, enabled bool, rate float64) {
	if !enabled || ctrl == nil {
		o.active = false
		return
	}
	px, _, pz := ctrl.Position()
	tx, ty, tz := ctrl.Target()
	if !o.active {
		o.angle = math.Atan2(float64(px-tx), float64(pz-tz))
		o.active = true
	}
	o.angle += rate * dt

	dist := orbitDistance(float64(ctrl.HorizontalDistance()), float64(o.height),
		float64(ctrl.MinRadius()), float64(ctrl.MaxRadius()))
	ctrl.SetPosition(
		tx+float32(math.Sin(o.angle)*dist),
		ty+o.height,
		tz+float32(math.Cos(o.angle)*dist),
	)
}

// orbitDistance clamps the horizontal orbit distance at height h so that it is at least minR and the full offset
// stays within maxR.
func orbitDistance(dist, h, minR, maxR float64) float64 {
	if maxR > 0 {
		if limit := math.Sqrt(math.Max(maxR*maxR-h*h, 0)); dist > limit {
			dist = limit
		}
	}
	return math.Max(dist, minR)
}

// Angle returns the current orbit angle in radians, measured from +Z toward +X.
func (o *OrbitResolver) Angle() float64 {
	return o.angle
}

// Active reports whether the orbit advanced on the last frame.
func (o *OrbitResolver) Active() bool {
	return o.active
}
