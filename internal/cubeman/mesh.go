// Package cubeman builds, animates and poses the color cube figure.
//
// Everything here is pure: the mesh is built once, the keyframe and part
// tables are fixed, and a pose is a function of time alone. Platform shells
// turn the resulting draw commands into pixels.
package cubeman

import (
	"github.com/Faultbox/cubeman/pkg/math"
)

// NumVertices is the vertex count of the cube: 6 faces x 2 triangles x 3 vertices.
const NumVertices = 36

// Vertex is one corner of a triangle.
type Vertex struct {
	Position math.Vec4
	Color    math.Vec4 // RGBA
}

// Corners of a unit cube centered at the origin, sides aligned with the axes.
var Corners = [8]math.Vec4{
	math.Point(-0.5, -0.5, 0.5),
	math.Point(-0.5, 0.5, 0.5),
	math.Point(0.5, 0.5, 0.5),
	math.Point(0.5, -0.5, 0.5),
	math.Point(-0.5, -0.5, -0.5),
	math.Point(-0.5, 0.5, -0.5),
	math.Point(0.5, 0.5, -0.5),
	math.Point(0.5, -0.5, -0.5),
}

// CornerColors are index-aligned with Corners.
var CornerColors = [8]math.Vec4{
	{0, 0, 0, 1}, // black
	{0, 1, 1, 1}, // cyan
	{1, 0, 1, 1}, // magenta
	{1, 1, 0, 1}, // yellow
	{1, 0, 0, 1}, // red
	{0, 1, 0, 1}, // green
	{0, 0, 1, 1}, // blue
	{1, 1, 1, 1}, // white
}

// Faces lists the corner indices of each quad in winding order.
// Reordering indices within a face flips its facing.
var Faces = [6][4]int{
	{1, 0, 3, 2},
	{2, 3, 7, 6},
	{3, 0, 4, 7},
	{6, 5, 1, 2},
	{4, 5, 6, 7},
	{5, 4, 0, 1},
}

// Mesh is the shared, read-only triangle list every body part is drawn with.
type Mesh struct {
	Vertices [NumVertices]Vertex
	sources  [NumVertices]int
}

// BuildColorCube expands Faces into 12 triangles. Each quad (a,b,c,d)
// becomes (a,b,c) and (a,c,d).
func BuildColorCube() Mesh {
	var m Mesh
	n := 0
	emit := func(corner int) {
		m.Vertices[n] = Vertex{Position: Corners[corner], Color: CornerColors[corner]}
		m.sources[n] = corner
		n++
	}
	for _, f := range Faces {
		a, b, c, d := f[0], f[1], f[2], f[3]
		emit(a)
		emit(b)
		emit(c)
		emit(a)
		emit(c)
		emit(d)
	}
	return m
}

// Source returns the corner index vertex i was copied from.
func (m *Mesh) Source(i int) int {
	return m.sources[i]
}

// Positions returns the vertex positions as a flat xyzw slice for GPU upload.
func (m *Mesh) Positions() []float32 {
	out := make([]float32, 0, NumVertices*4)
	for _, v := range m.Vertices {
		out = append(out, v.Position[:]...)
	}
	return out
}

// Colors returns the vertex colors as a flat rgba slice for GPU upload.
func (m *Mesh) Colors() []float32 {
	out := make([]float32, 0, NumVertices*4)
	for _, v := range m.Vertices {
		out = append(out, v.Color[:]...)
	}
	return out
}

// Triangle returns the three vertices of triangle i (0..11).
func (m *Mesh) Triangle(i int) [3]Vertex {
	return [3]Vertex{m.Vertices[i*3], m.Vertices[i*3+1], m.Vertices[i*3+2]}
}
