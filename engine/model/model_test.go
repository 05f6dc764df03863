package model

import (
	"math"
	"testing"
)

func TestPlaneGeometry(t *testing.T) {
	p := NewPlane("front", 1, 1)
	if p.TriangleCount() != 2 {
		t.Fatalf("TriangleCount() got %d want 2", p.TriangleCount())
	}
	if r := p.BoundingRadius(); math.Abs(float64(r)-math.Sqrt(0.5)) > 1e-6 {
		t.Fatalf("BoundingRadius() got %v", r)
	}
	if uv := p.Vertices()[0].UV; uv != [2]float32{0, 0} || p.Vertices()[0].Position[1] <= 0 {
		t.Fatalf("top-left vertex got %+v", p.Vertices()[0])
	}
}

func TestBoxAndDiscCounts(t *testing.T) {
	if got := NewBox("body", 1, 1, 0.006).TriangleCount(); got != 12 {
		t.Fatalf("box triangles got %d want 12", got)
	}
	d := NewDisc("vinyl", 0.48, 64)
	if got := d.TriangleCount(); got != 64 {
		t.Fatalf("disc triangles got %d want 64", got)
	}
	if r := d.BoundingRadius(); math.Abs(float64(r)-0.48) > 1e-5 {
		t.Fatalf("disc radius got %v want 0.48", r)
	}
	for _, i := range d.Indices() {
		if int(i) >= len(d.Vertices()) {
			t.Fatalf("index %d out of range", i)
		}
	}
}
