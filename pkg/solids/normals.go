package solids

import "github.com/DelgadoPedro/prisma/pkg/math3d"

// defaultNormal stands in when a face or vertex has no usable direction.
var defaultNormal = math3d.V3(0, 0, 1)

// FaceNormals computes one unit normal per face from the first three
// vertices of each face, assuming counter-clockwise winding as seen from
// outside. Degenerate faces and faces with out-of-range indices get the +z
// default.
func FaceNormals(vertices []math3d.Vec3, faces [][]int) []math3d.Vec3 {
	normals := make([]math3d.Vec3, len(faces))
	for f, face := range faces {
		normals[f] = faceNormal(vertices, face)
	}
	return normals
}

func faceNormal(vertices []math3d.Vec3, face []int) math3d.Vec3 {
	if len(face) < 3 {
		return defaultNormal
	}
	for _, idx := range face[:3] {
		if idx < 0 || idx >= len(vertices) {
			return defaultNormal
		}
	}
	v0 := vertices[face[0]]
	e1 := vertices[face[1]].Sub(v0)
	e2 := vertices[face[2]].Sub(v0)
	n := e1.Cross(e2)
	if n.LenSq() == 0 {
		return defaultNormal
	}
	return n.Normalize()
}

// VertexNormals computes per-vertex normals by averaging the normals of
// every face that references the vertex. Vertices used by no face get the +z
// default.
func VertexNormals(vertices []math3d.Vec3, faces [][]int) []math3d.Vec3 {
	sums := make([]math3d.Vec3, len(vertices))
	counts := make([]int, len(vertices))

	for _, face := range faces {
		n := faceNormal(vertices, face)
		for _, idx := range face {
			if idx < 0 || idx >= len(vertices) {
				continue
			}
			sums[idx] = sums[idx].Add(n)
			counts[idx]++
		}
	}

	normals := make([]math3d.Vec3, len(vertices))
	for i := range normals {
		if counts[i] == 0 || sums[i].LenSq() == 0 {
			normals[i] = defaultNormal
			continue
		}
		normals[i] = sums[i].Normalize()
	}
	return normals
}
