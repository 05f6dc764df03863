package model

import "math"

// Vertex is a single mesh vertex.
type Vertex struct {
	Position [3]float32
	Normal   [3]float32
	UV       [2]float32
}

type model struct {
	name     string
	vertices []Vertex
	indices  []uint32
	radius   float32
}

// Model defines the interface for immutable triangle-list geometry.
//
// Texture coordinates put v = 0 at the top edge of the image so the software rasterizer can index image rows
// directly.
type Model interface {
	// Name returns the model identifier.
	//
	// Returns:
	//   - string: the model name
	Name() string

	// Vertices returns the vertex list.
	//
	// Returns:
	//   - []Vertex: vertices, shared and must not be modified
	Vertices() []Vertex

	// Indices returns the triangle list, three indices per triangle.
	//
	// Returns:
	//   - []uint32: indices, shared and must not be modified
	Indices() []uint32

	// TriangleCount returns the number of triangles.
	//
	// Returns:
	//   - int: len(Indices()) / 3
	TriangleCount() int

	// BoundingRadius returns the distance from the origin to the farthest vertex.
	//
	// Returns:
	//   - float32: the bounding radius
	BoundingRadius() float32
}

var _ Model = &model{}

// NewModel creates a new Model from the given options.
//
// Parameters:
//   - options: variadic list of ModelBuilderOption functions
//
// Returns:
//   - Model: a new instance of Model configured with the provided options
func NewModel(options ...ModelBuilderOption) Model {
	m := &model{}
	for _, opt := range options {
		opt(m)
	}
	for _, v := range m.vertices {
		p := v.Position
		r := float32(math.Sqrt(float64(p[0]*p[0] + p[1]*p[1] + p[2]*p[2])))
		m.radius = max(m.radius, r)
	}
	return m
}

func (m *model) Name() string {
	return m.name
}

func (m *model) Vertices() []Vertex {
	return m.vertices
}

func (m *model) Indices() []uint32 {
	return m.indices
}

func (m *model) TriangleCount() int {
	return len(m.indices) / 3
}

func (m *model) BoundingRadius() float32 {
	return m.radius
}
