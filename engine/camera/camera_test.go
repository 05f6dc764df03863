package camera

import (
	"math"
	"testing"

	"github.com/Carmen-Shannon/oxy-sleeve/engine/settings"
)

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-4
}

func newTestCamera() Camera {
	return NewCamera(WithController(NewCameraController()), WithAspect(16.0/9.0))
}

func TestZoomIsAppliedOnUpdateAndClamped(t *testing.T) {
	ctrl := NewCameraController(WithRadiusBounds(1, 3))
	start := float64(ctrl.Radius())

	ctrl.Zoom(2)
	if !approx(float64(ctrl.Radius()), start) {
		t.Fatal("Zoom() moved the camera before Update()")
	}
	ctrl.Update()
	want := start * math.Pow(zoomBase, 2)
	if !approx(float64(ctrl.Radius()), want) {
		t.Fatalf("Radius() got %v want %v", ctrl.Radius(), want)
	}

	ctrl.Zoom(200)
	ctrl.Update()
	if !approx(float64(ctrl.Radius()), 1) {
		t.Fatalf("Radius() got %v want clamped 1", ctrl.Radius())
	}
	ctrl.Zoom(-500)
	ctrl.Update()
	if !approx(float64(ctrl.Radius()), 3) {
		t.Fatalf("Radius() got %v want clamped 3", ctrl.Radius())
	}
}

func TestOrbitPreservesZoomedHorizontalDistance(t *testing.T) {
	cam := newTestCamera()
	r := NewResolver(cam, nil)
	cfg := settings.Default()
	cfg.AutoOrbit = true
	cfg.AutoOrbitSpeed = 0.5

	ctrl := cam.Controller()
	before := float64(ctrl.HorizontalDistance())
	r.Resolve(0.1, &cfg)
	if !approx(float64(ctrl.HorizontalDistance()), before) {
		t.Fatalf("orbit changed horizontal distance: got %v want %v", ctrl.HorizontalDistance(), before)
	}

	ctrl.Zoom(5)
	r.Resolve(0.1, &cfg)
	zoomed := before * math.Pow(zoomBase, 5)
	if !approx(float64(ctrl.HorizontalDistance()), zoomed) {
		t.Fatalf("zoom in orbit frame lost: got %v want %v", ctrl.HorizontalDistance(), zoomed)
	}

	for i := 0; i < 10; i++ {
		r.Resolve(0.1, &cfg)
	}
	if !approx(float64(ctrl.HorizontalDistance()), zoomed) {
		t.Fatalf("orbit snapped distance back: got %v want %v", ctrl.HorizontalDistance(), zoomed)
	}
	if _, y, _ := ctrl.Position(); !approx(float64(y), float64(DefaultOrbitHeight)) {
		t.Fatalf("orbit height got %v want %v", y, DefaultOrbitHeight)
	}
}

func TestOrbitZoomInKeepsSideView(t *testing.T) {
	cam := newTestCamera()
	r := NewResolver(cam, nil)
	cfg := settings.Default()
	cfg.AutoOrbit = true
	cfg.AutoOrbitSpeed = 0.5

	ctrl := cam.Controller()
	for i := 0; i < 400; i++ {
		ctrl.Zoom(3)
		r.Resolve(1.0/60, &cfg)
	}

	if got := ctrl.Radius(); float64(got) < float64(ctrl.MinRadius())-1e-4 {
		t.Fatalf("Radius() got %v want >= %v", got, ctrl.MinRadius())
	}
	horizontal := float64(ctrl.HorizontalDistance())
	if horizontal <= 0 {
		t.Fatalf("HorizontalDistance() got %v want > 0", horizontal)
	}
	_, y, _ := ctrl.Position()
	_, ty, _ := ctrl.Target()
	if elevation := math.Atan2(float64(y-ty), horizontal); elevation > 60*math.Pi/180 {
		t.Fatalf("camera tipped over: elevation %v deg", elevation*180/math.Pi)
	}
}

func TestOrbitDistanceRespectsMaxRadius(t *testing.T) {
	got := orbitDistance(20, 0.85, 0.6, 8)
	want := math.Sqrt(64 - 0.85*0.85)
	if !approx(got, want) {
		t.Fatalf("orbitDistance() got %v want %v", got, want)
	}
	if got := orbitDistance(0.1, 0.85, 0.6, 8); !approx(got, 0.6) {
		t.Fatalf("orbitDistance() got %v want 0.6", got)
	}
}

func TestOrbitStartsFromCurrentBearing(t *testing.T) {
	ctrl := NewCameraController()
	o := NewOrbitResolver(DefaultOrbitHeight)
	x0, _, z0 := ctrl.Position()

	o.Advance(ctrl, 0, true, 1)
	x1, _, z1 := ctrl.Position()
	if !approx(float64(x0), float64(x1)) || !approx(float64(z0), float64(z1)) {
		t.Fatalf("orbit jumped on start: (%v,%v) -> (%v,%v)", x0, z0, x1, z1)
	}
	if !approx(o.Angle(), math.Pi/4) {
		t.Fatalf("Angle() got %v want pi/4", o.Angle())
	}

	o.Advance(ctrl, 2, true, 0.25)
	if !approx(o.Angle(), math.Pi/4+0.5) {
		t.Fatalf("Angle() got %v want pi/4+0.5", o.Angle())
	}

	o.Advance(ctrl, 1, false, 0.25)
	if o.Active() {
		t.Fatal("orbit still active after disable")
	}
}

func TestDisabledOrbitLeavesCameraAlone(t *testing.T) {
	cam := newTestCamera()
	r := NewResolver(cam, nil)
	cfg := settings.Default()
	x0, y0, z0 := cam.Controller().Position()
	r.Resolve(1, &cfg)
	x1, y1, z1 := cam.Controller().Position()
	if x0 != x1 || y0 != y1 || z0 != z1 {
		t.Fatal("camera moved with auto orbit disabled")
	}
}

type rotationSink struct {
	rx, ry, rz float32
}

func (s *rotationSink) SetRotation(rx, ry, rz float32) {
	s.rx, s.ry, s.rz = rx, ry, rz
}

func TestDragRotationClampsPitch(t *testing.T) {
	d := NewDragRotation(0.01)
	d.Move(10, 10)
	if p, y := d.Rotation(); p != 0 || y != 0 {
		t.Fatal("Move() without Begin() rotated")
	}

	d.Begin(0, 0)
	d.Move(100, 0)
	d.Move(100, 1000)
	d.End()

	pitch, yaw := d.Rotation()
	if !approx(float64(yaw), 1) {
		t.Fatalf("yaw got %v want 1", yaw)
	}
	if !approx(float64(pitch), math.Pi/2) {
		t.Fatalf("pitch got %v want clamped pi/2", pitch)
	}

	var sink rotationSink
	d.Apply(&sink)
	if sink.rx != pitch || sink.ry != yaw || sink.rz != 0 {
		t.Fatalf("Apply() wrote %+v", sink)
	}

	d.Reset()
	if p, y := d.Rotation(); p != 0 || y != 0 {
		t.Fatal("Reset() did not clear rotation")
	}
}

func TestCameraMatricesFollowController(t *testing.T) {
	cam := newTestCamera()
	eye := cam.Eye()
	if !approx(float64(eye[0]), 1.5) || !approx(float64(eye[1]), 0.85) {
		t.Fatalf("Eye() got %v want (1.5, 0.85, 1.5)", eye)
	}
	vp := cam.ViewProjectionMatrix()
	// the target projects to the center of the screen
	cx := vp[12] / vp[15]
	cy := vp[13] / vp[15]
	if !approx(float64(cx), 0) || !approx(float64(cy), 0) {
		t.Fatalf("target projects to (%v, %v), want center", cx, cy)
	}
}

func TestViewProjectionForLeavesCachedMatrices(t *testing.T) {
	cam := NewCamera(
		WithController(NewCameraController()),
		WithAspect(2),
		WithClipPlanes(0.1, 20),
	)
	cached := cam.ViewProjectionMatrix()
	wide := cam.ViewProjectionFor(4)
	if wide == cached {
		t.Fatal("a different aspect should change the projection")
	}
	if got := cam.ViewProjectionFor(2); got != cached {
		t.Fatalf("ViewProjectionFor(2) got %v want cached %v", got, cached)
	}
	if cam.ViewProjectionMatrix() != cached {
		t.Fatal("ViewProjectionFor must not touch the cached matrix")
	}
	if cam.Near() != 0.1 || cam.Far() != 20 {
		t.Fatalf("clip planes got (%v, %v)", cam.Near(), cam.Far())
	}
}

func TestInvalidLensOptionsAreIgnored(t *testing.T) {
	cam := NewCamera(WithClipPlanes(5, 1), WithAspect(-1))
	if cam.Near() != DefaultNear || cam.Far() != DefaultFar {
		t.Fatalf("clip planes got (%v, %v)", cam.Near(), cam.Far())
	}
	if cam.Aspect() != 1 {
		t.Fatalf("Aspect() got %v want 1", cam.Aspect())
	}
	if eye := cam.Eye(); eye != [3]float32{} {
		t.Fatalf("Eye() without a controller got %v", eye)
	}
}
