// Package solids provides the mesh model and parametric solid builders for
// the prisma sandbox.
package solids

import (
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/DelgadoPedro/prisma/pkg/math3d"
)

// Color is a render attribute: RGB in [0,1] plus alpha. It has no geometric
// effect.
type Color struct {
	colorful.Color
	A float64
}

// RGBA creates a Color from components in [0,1].
func RGBA(r, g, b, a float64) Color {
	return Color{Color: colorful.Color{R: r, G: g, B: b}, A: a}
}

// DefaultColor is the light blue assigned to newly built meshes.
func DefaultColor() Color {
	return RGBA(0.5, 0.6, 0.8, 1.0)
}

// Mesh is a 3D solid: a rest-pose vertex list, wireframe edges, polygonal
// faces and a cumulative transform.
//
// Base is immutable after construction. Faces hold >=3 vertex indices wound
// counter-clockwise as seen from outside, so the cross product of the first
// two edge vectors points outward. The transformed vertex cache is
// recomputed on every transform change, keeping
// TransformedVertices()[i] == Transform().MulVec3(Base[i]) at all times.
type Mesh struct {
	Name  string
	Base  []math3d.Vec3
	Edges [][2]int
	Faces [][]int
	Color Color

	transform math3d.Mat4
	current   []math3d.Vec3
}

// NewMesh creates a mesh with an identity transform and the default color.
func NewMesh(name string, vertices []math3d.Vec3, edges [][2]int, faces [][]int) *Mesh {
	m := &Mesh{
		Name:      name,
		Base:      vertices,
		Edges:     edges,
		Faces:     faces,
		Color:     DefaultColor(),
		transform: math3d.Identity(),
	}
	m.refresh()
	return m
}

// ApplyTransform composes t onto the mesh: the new cumulative transform is
// t * existing, so t's effect happens after everything applied before it.
func (m *Mesh) ApplyTransform(t math3d.Mat4) {
	m.transform = t.Mul(m.transform)
	m.refresh()
}

// ResetTransform restores the identity transform.
func (m *Mesh) ResetTransform() {
	m.transform = math3d.Identity()
	m.refresh()
}

// Transform returns the current cumulative transform.
func (m *Mesh) Transform() math3d.Mat4 {
	return m.transform
}

// TransformedVertices returns the vertices with the cumulative transform
// applied. The returned slice is the mesh's cache; callers must not modify
// it.
func (m *Mesh) TransformedVertices() []math3d.Vec3 {
	return m.current
}

func (m *Mesh) refresh() {
	if cap(m.current) < len(m.Base) {
		m.current = make([]math3d.Vec3, len(m.Base))
	}
	m.current = m.current[:len(m.Base)]
	for i, v := range m.Base {
		m.current[i] = m.transform.MulVec3(v)
	}
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Base)
}

// EdgeCount returns the number of wireframe edges.
func (m *Mesh) EdgeCount() int {
	return len(m.Edges)
}

// FaceCount returns the number of faces.
func (m *Mesh) FaceCount() int {
	return len(m.Faces)
}

// Bounds returns the axis-aligned bounding box of the transformed vertices.
func (m *Mesh) Bounds() (min, max math3d.Vec3) {
	if len(m.current) == 0 {
		return math3d.Zero3(), math3d.Zero3()
	}
	min, max = m.current[0], m.current[0]
	for _, v := range m.current[1:] {
		min = min.Min(v)
		max = max.Max(v)
	}
	return min, max
}
