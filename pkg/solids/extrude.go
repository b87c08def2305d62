package solids

import (
	"errors"
	"image"

	"github.com/DelgadoPedro/prisma/pkg/math3d"
)

// ErrTooFewPoints is returned when an extrusion outline has fewer than three
// points.
var ErrTooFewPoints = errors.New("solids: polygon needs at least 3 points")

// Extrude turns a 2D screen-space outline into a prism of the given depth.
//
// The outline is centered on its bounding box midpoint and its y axis is
// flipped, since screen y grows downward while world y grows upward. The
// bottom ring sits at z=-depth/2 and the top ring at z=depth/2. The top cap
// is wound in reverse so both caps face outward.
func Extrude(points []image.Point, depth float64) (*Mesh, error) {
	if len(points) < 3 {
		return nil, ErrTooFewPoints
	}

	minX, maxX := points[0].X, points[0].X
	minY, maxY := points[0].Y, points[0].Y
	for _, p := range points[1:] {
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}
	centerX := float64(minX+maxX) / 2.0
	centerY := float64(minY+maxY) / 2.0

	n := len(points)
	vertices := make([]math3d.Vec3, 0, 2*n)
	for _, z := range []float64{-depth / 2.0, depth / 2.0} {
		for _, p := range points {
			vertices = append(vertices, math3d.V3(
				float64(p.X)-centerX,
				centerY-float64(p.Y),
				z,
			))
		}
	}

	edges := make([][2]int, 0, 3*n)
	for i := 0; i < n; i++ {
		next := (i + 1) % n
		edges = append(edges,
			[2]int{i, next},
			[2]int{n + i, n + next},
			[2]int{i, n + i},
		)
	}

	faces := make([][]int, 0, n+2)
	bottom := make([]int, n)
	top := make([]int, n)
	for i := 0; i < n; i++ {
		bottom[i] = i
		top[i] = n + (n - 1 - i)
	}
	faces = append(faces, bottom, top)
	for i := 0; i < n; i++ {
		next := (i + 1) % n
		faces = append(faces, []int{i, next, n + next, n + i})
	}

	return NewMesh("extrusion", vertices, edges, faces), nil
}
