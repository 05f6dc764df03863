package model

import "math"

// NewPlane creates a width x height quad centered on the origin in the XY plane, facing +Z.
func NewPlane(name string, width, height float32) Model {
	hw, hh := width/2, height/2
	n := [3]float32{0, 0, 1}
	vertices := []Vertex{
		{Position: [3]float32{-hw, hh, 0}, Normal: n, UV: [2]float32{0, 0}},
		{Position: [3]float32{hw, hh, 0}, Normal: n, UV: [2]float32{1, 0}},
		{Position: [3]float32{hw, -hh, 0}, Normal: n, UV: [2]float32{1, 1}},
		{Position: [3]float32{-hw, -hh, 0}, Normal: n, UV: [2]float32{0, 1}},
	}
	return NewModel(WithName(name), WithGeometry(vertices, []uint32{0, 3, 2, 0, 2, 1}))
}

// NewBox creates an axis-aligned box centered on the origin.
func NewBox(name string, width, height, depth float32) Model {
	hw, hh, hd := width/2, height/2, depth/2
	// each face: normal, then corners top-left, top-right, bottom-right, bottom-left as seen from outside
	faces := []struct {
		n       [3]float32
		corners [4][3]float32
	}{
		{[3]float32{0, 0, 1}, [4][3]float32{{-hw, hh, hd}, {hw, hh, hd}, {hw, -hh, hd}, {-hw, -hh, hd}}},
		{[3]float32{0, 0, -1}, [4][3]float32{{hw, hh, -hd}, {-hw, hh, -hd}, {-hw, -hh, -hd}, {hw, -hh, -hd}}},
		{[3]float32{1, 0, 0}, [4][3]float32{{hw, hh, hd}, {hw, hh, -hd}, {hw, -hh, -hd}, {hw, -hh, hd}}},
		{[3]float32{-1, 0, 0}, [4][3]float32{{-hw, hh, -hd}, {-hw, hh, hd}, {-hw, -hh, hd}, {-hw, -hh, -hd}}},
		{[3]float32{0, 1, 0}, [4][3]float32{{-hw, hh, -hd}, {hw, hh, -hd}, {hw, hh, hd}, {-hw, hh, hd}}},
		{[3]float32{0, -1, 0}, [4][3]float32{{-hw, -hh, hd}, {hw, -hh, hd}, {hw, -hh, -hd}, {-hw, -hh, -hd}}},
	}
	uvs := [4][2]float32{{0, 0}, {1, 0}, {1, 1}, {0, 1}}

	vertices := make([]Vertex, 0, 24)
	indices := make([]uint32, 0, 36)
	for _, f := range faces {
		base := uint32(len(vertices))
		for i, c := range f.corners {
			vertices = append(vertices, Vertex{Position: c, Normal: f.n, UV: uvs[i]})
		}
		indices = append(indices, base, base+3, base+2, base, base+2, base+1)
	}
	return NewModel(WithName(name), WithGeometry(vertices, indices))
}

// NewDisc creates a flat disc of the given radius in the XY plane, facing +Z, as a triangle fan.
// The texture maps onto the disc's bounding square.
func NewDisc(name string, radius float32, segments int) Model {
	segments = max(segments, 3)
	n := [3]float32{0, 0, 1}
	vertices := make([]Vertex, 0, segments+2)
	vertices = append(vertices, Vertex{Normal: n, UV: [2]float32{0.5, 0.5}})
	for i := 0; i <= segments; i++ {
		a := 2 * math.Pi * float64(i) / float64(segments)
		x, y := float32(math.Cos(a)), float32(math.Sin(a))
		vertices = append(vertices, Vertex{
			Position: [3]float32{x * radius, y * radius, 0},
			Normal:   n,
			UV:       [2]float32{0.5 + 0.5*x, 0.5 - 0.5*y},
		})
	}
	indices := make([]uint32, 0, segments*3)
	for i := 1; i <= segments; i++ {
		indices = append(indices, 0, uint32(i), uint32(i+1))
	}
	return NewModel(WithName(name), WithGeometry(vertices, indices))
}
