package solids

import (
	"math"

	"github.com/DelgadoPedro/prisma/pkg/math3d"
)

// minSegments is the smallest circle subdivision that still produces
// non-degenerate faces.
const minSegments = 3

func clampSegments(n int) int {
	if n < minSegments {
		return minSegments
	}
	return n
}

// NewCube builds an axis-aligned cube of the given edge length centered at
// the origin.
func NewCube(size float64) *Mesh {
	s := size / 2.0
	vertices := []math3d.Vec3{
		math3d.V3(-s, -s, -s), math3d.V3(s, -s, -s), math3d.V3(s, s, -s), math3d.V3(-s, s, -s),
		math3d.V3(-s, -s, s), math3d.V3(s, -s, s), math3d.V3(s, s, s), math3d.V3(-s, s, s),
	}
	edges := [][2]int{
		{0, 1}, {1, 2}, {2, 3}, {3, 0},
		{4, 5}, {5, 6}, {6, 7}, {7, 4},
		{0, 4}, {1, 5}, {2, 6}, {3, 7},
	}
	faces := [][]int{
		{0, 1, 2, 3},
		{4, 5, 6, 7},
		{0, 1, 5, 4},
		{2, 3, 7, 6},
		{0, 3, 7, 4},
		{1, 2, 6, 5},
	}
	return NewMesh("cube", vertices, edges, faces)
}

// NewPyramid builds a square pyramid with its base on the z=0 plane and the
// apex at z=height.
func NewPyramid(size, height float64) *Mesh {
	s := size / 2.0
	vertices := []math3d.Vec3{
		math3d.V3(-s, -s, 0), math3d.V3(s, -s, 0), math3d.V3(s, s, 0), math3d.V3(-s, s, 0),
		math3d.V3(0, 0, height),
	}
	edges := [][2]int{
		{0, 1}, {1, 2}, {2, 3}, {3, 0},
		{0, 4}, {1, 4}, {2, 4}, {3, 4},
	}
	faces := [][]int{
		{0, 1, 2, 3},
		{0, 1, 4},
		{1, 2, 4},
		{2, 3, 4},
		{3, 0, 4},
	}
	return NewMesh("pyramid", vertices, edges, faces)
}

// NewCylinder builds a cylinder along the z axis, centered at the origin,
// with the given number of segments around the circumference.
func NewCylinder(radius, height float64, segments int) *Mesh {
	segments = clampSegments(segments)

	var vertices []math3d.Vec3
	var edges [][2]int
	var faces [][]int

	for _, z := range []float64{-height / 2.0, height / 2.0} {
		for i := 0; i < segments; i++ {
			angle := 2.0 * math.Pi * float64(i) / float64(segments)
			vertices = append(vertices, math3d.V3(radius*math.Cos(angle), radius*math.Sin(angle), z))
		}
	}

	for i := 0; i < segments; i++ {
		next := (i + 1) % segments
		edges = append(edges,
			[2]int{i, next},
			[2]int{segments + i, segments + next},
			[2]int{i, segments + i},
		)
	}

	bottom := make([]int, segments)
	top := make([]int, segments)
	for i := 0; i < segments; i++ {
		bottom[i] = i
		top[i] = segments + (segments - 1 - i)
	}
	faces = append(faces, bottom, top)

	for i := 0; i < segments; i++ {
		next := (i + 1) % segments
		faces = append(faces, []int{i, next, segments + next, segments + i})
	}

	return NewMesh("cylinder", vertices, edges, faces)
}

// NewHemisphere builds a half sphere with its pole at z=radius and its flat
// base on the z=0 plane. The same segment count subdivides both the
// circumference and the height.
func NewHemisphere(radius float64, segments int) *Mesh {
	segments = clampSegments(segments)

	var vertices []math3d.Vec3
	var edges [][2]int
	var faces [][]int

	topIdx := 0
	vertices = append(vertices, math3d.V3(0, 0, radius))

	perLayer := segments
	for layer := 1; layer <= segments; layer++ {
		theta := math.Pi / 2.0 * float64(layer) / float64(segments)
		z := radius * math.Cos(theta)
		layerRadius := radius * math.Sin(theta)
		for i := 0; i < perLayer; i++ {
			phi := 2.0 * math.Pi * float64(i) / float64(perLayer)
			vertices = append(vertices, math3d.V3(layerRadius*math.Cos(phi), layerRadius*math.Sin(phi), z))
		}
	}

	firstLayer := 1
	for i := 0; i < perLayer; i++ {
		next := (i + 1) % perLayer
		edges = append(edges,
			[2]int{topIdx, firstLayer + i},
			[2]int{firstLayer + i, firstLayer + next},
		)
	}
	for layer := 1; layer < segments; layer++ {
		layerStart := 1 + (layer-1)*perLayer
		nextStart := 1 + layer*perLayer
		for i := 0; i < perLayer; i++ {
			next := (i + 1) % perLayer
			edges = append(edges,
				[2]int{layerStart + i, nextStart + i},
				[2]int{nextStart + i, nextStart + next},
			)
		}
	}

	for i := 0; i < perLayer; i++ {
		next := (i + 1) % perLayer
		faces = append(faces, []int{topIdx, firstLayer + i, firstLayer + next})
	}
	for layer := 1; layer < segments; layer++ {
		layerStart := 1 + (layer-1)*perLayer
		nextStart := 1 + layer*perLayer
		for i := 0; i < perLayer; i++ {
			next := (i + 1) % perLayer
			faces = append(faces, []int{layerStart + i, layerStart + next, nextStart + next, nextStart + i})
		}
	}

	baseStart := 1 + (segments-1)*perLayer
	base := make([]int, perLayer)
	for i := range base {
		base[i] = baseStart + i
	}
	faces = append(faces, base)

	return NewMesh("hemisphere", vertices, edges, faces)
}

// NewSphere builds a full sphere around the y axis with the given number of
// horizontal segments and vertical stacks. The pole rows duplicate their
// vertex once per segment, which keeps the index arithmetic uniform.
func NewSphere(radius float64, segments, stacks int) *Mesh {
	segments = clampSegments(segments)
	if stacks < 2 {
		stacks = 2
	}

	var vertices []math3d.Vec3
	var edges [][2]int
	var faces [][]int

	for i := 0; i <= stacks; i++ {
		theta := math.Pi * float64(i) / float64(stacks)
		sinTheta := math.Sin(theta)
		y := radius * math.Cos(theta)
		for j := 0; j < segments; j++ {
			phi := 2.0 * math.Pi * float64(j) / float64(segments)
			vertices = append(vertices, math3d.V3(radius*sinTheta*math.Cos(phi), y, radius*sinTheta*math.Sin(phi)))
		}
	}

	for i := 0; i < stacks; i++ {
		for j := 0; j < segments; j++ {
			idx := i*segments + j
			nextIdx := i*segments + (j+1)%segments
			belowIdx := (i+1)*segments + j
			belowNextIdx := (i+1)*segments + (j+1)%segments

			edges = append(edges, [2]int{idx, nextIdx})
			if i < stacks-1 {
				edges = append(edges, [2]int{belowIdx, belowNextIdx})
			}
			edges = append(edges, [2]int{idx, belowIdx})

			switch {
			case i == 0:
				faces = append(faces, []int{idx, belowNextIdx, belowIdx})
			case i == stacks-1:
				faces = append(faces, []int{idx, nextIdx, belowIdx})
			default:
				faces = append(faces, []int{idx, nextIdx, belowNextIdx, belowIdx})
			}
		}
	}

	return NewMesh("sphere", vertices, edges, faces)
}

// NewTorus builds a torus lying in the xz plane. majorRadius is the distance
// from the origin to the tube center, minorRadius the tube radius.
func NewTorus(majorRadius, minorRadius float64, majorSegments, minorSegments int) *Mesh {
	majorSegments = clampSegments(majorSegments)
	minorSegments = clampSegments(minorSegments)

	var vertices []math3d.Vec3
	var edges [][2]int
	var faces [][]int

	for i := 0; i < majorSegments; i++ {
		majorAngle := 2.0 * math.Pi * float64(i) / float64(majorSegments)
		cosMajor := math.Cos(majorAngle)
		sinMajor := math.Sin(majorAngle)
		for j := 0; j < minorSegments; j++ {
			minorAngle := 2.0 * math.Pi * float64(j) / float64(minorSegments)
			ring := majorRadius + minorRadius*math.Cos(minorAngle)
			vertices = append(vertices, math3d.V3(
				ring*cosMajor,
				minorRadius*math.Sin(minorAngle),
				ring*sinMajor,
			))
		}
	}

	for i := 0; i < majorSegments; i++ {
		nextI := (i + 1) % majorSegments
		for j := 0; j < minorSegments; j++ {
			nextJ := (j + 1) % minorSegments
			idx := i*minorSegments + j
			nextJIdx := i*minorSegments + nextJ
			nextIIdx := nextI*minorSegments + j
			nextBothIdx := nextI*minorSegments + nextJ

			edges = append(edges, [2]int{idx, nextJIdx}, [2]int{idx, nextIIdx})
			faces = append(faces, []int{idx, nextJIdx, nextBothIdx, nextIIdx})
		}
	}

	return NewMesh("torus", vertices, edges, faces)
}

// NewCone builds a cone along the y axis, apex up, centered at the origin.
func NewCone(baseRadius, height float64, segments int) *Mesh {
	segments = clampSegments(segments)

	var vertices []math3d.Vec3
	var edges [][2]int
	var faces [][]int

	topIdx := 0
	vertices = append(vertices, math3d.V3(0, height/2.0, 0))

	baseStart := 1
	for i := 0; i < segments; i++ {
		angle := 2.0 * math.Pi * float64(i) / float64(segments)
		vertices = append(vertices, math3d.V3(baseRadius*math.Cos(angle), -height/2.0, baseRadius*math.Sin(angle)))
	}

	for i := 0; i < segments; i++ {
		edges = append(edges,
			[2]int{baseStart + i, baseStart + (i+1)%segments},
			[2]int{topIdx, baseStart + i},
		)
	}

	base := make([]int, segments)
	for i := range base {
		base[i] = baseStart + i
	}
	faces = append(faces, base)

	for i := 0; i < segments; i++ {
		next := (i + 1) % segments
		faces = append(faces, []int{topIdx, baseStart + i, baseStart + next})
	}

	return NewMesh("cone", vertices, edges, faces)
}

// NewTeapot builds a simplified Utah teapot from parametric parts: a
// flattened ellipsoid body, a short conical spout, a half-torus handle and a
// flat lid disc. size 50 gives the canonical proportions.
func NewTeapot(size float64) *Mesh {
	var vertices []math3d.Vec3
	var edges [][2]int
	var faces [][]int

	scale := size / 50.0

	const (
		bodySegments = 16
		bodyStacks   = 12
	)
	bodyRadiusX := 30.0 * scale
	bodyRadiusY := 25.0 * scale
	bodyRadiusZ := 30.0 * scale

	for i := 0; i <= bodyStacks; i++ {
		theta := math.Pi * float64(i) / float64(bodyStacks)
		sinTheta := math.Sin(theta)
		y := bodyRadiusY * math.Cos(theta)
		for j := 0; j < bodySegments; j++ {
			phi := 2.0 * math.Pi * float64(j) / float64(bodySegments)
			vertices = append(vertices, math3d.V3(
				bodyRadiusX*sinTheta*math.Cos(phi),
				y,
				bodyRadiusZ*sinTheta*math.Sin(phi),
			))
		}
	}
	numBody := len(vertices)

	const spoutSegments = 12
	spoutLength := 25.0 * scale
	for i := 0; i < spoutSegments; i++ {
		angle := 2.0 * math.Pi * float64(i) / float64(spoutSegments)
		xStart := (bodyRadiusX + 5.0*scale) * math.Cos(angle)
		zStart := (bodyRadiusZ + 5.0*scale) * math.Sin(angle)
		vertices = append(vertices, math3d.V3(xStart, 0, zStart))
		vertices = append(vertices, math3d.V3(
			xStart+spoutLength*math.Cos(angle)*0.3,
			5.0*scale,
			zStart+spoutLength*math.Sin(angle)*0.3,
		))
	}
	numSpout := len(vertices) - numBody

	const (
		handleSegments = 16
		handleMinor    = 8
	)
	handleRadius := 8.0 * scale
	handleMajor := 15.0 * scale
	for i := 0; i < handleSegments; i++ {
		majorAngle := math.Pi * float64(i) / float64(handleSegments)
		for j := 0; j < handleMinor; j++ {
			minorAngle := 2.0 * math.Pi * float64(j) / float64(handleMinor)
			ring := handleMajor + handleRadius*math.Cos(minorAngle)
			vertices = append(vertices, math3d.V3(
				ring*math.Cos(majorAngle),
				handleRadius*math.Sin(minorAngle)+10.0*scale,
				-(bodyRadiusZ+handleMajor)+ring*math.Sin(majorAngle),
			))
		}
	}

	const lidSegments = 16
	lidRadius := 20.0 * scale
	lidY := bodyRadiusY + 5.0*scale
	vertices = append(vertices, math3d.V3(0, lidY, 0))
	lidCenterIdx := len(vertices) - 1
	lidStart := len(vertices)
	for i := 0; i < lidSegments; i++ {
		angle := 2.0 * math.Pi * float64(i) / float64(lidSegments)
		vertices = append(vertices, math3d.V3(lidRadius*math.Cos(angle), lidY, lidRadius*math.Sin(angle)))
	}

	for i := 0; i < bodyStacks; i++ {
		for j := 0; j < bodySegments; j++ {
			idx := i*bodySegments + j
			nextJ := (j + 1) % bodySegments
			nextIIdx := (i+1)*bodySegments + j
			nextJIdx := i*bodySegments + nextJ
			nextBothIdx := (i+1)*bodySegments + nextJ

			edges = append(edges, [2]int{idx, nextJIdx}, [2]int{idx, nextIIdx})
			faces = append(faces, []int{idx, nextJIdx, nextBothIdx, nextIIdx})
		}
	}

	spoutStart := numBody
	for i := 0; i < spoutSegments; i++ {
		baseIdx := spoutStart + i*2
		tipIdx := spoutStart + i*2 + 1
		nextBaseIdx := spoutStart + ((i+1)%spoutSegments)*2
		nextTipIdx := spoutStart + ((i+1)%spoutSegments)*2 + 1

		edges = append(edges,
			[2]int{baseIdx, tipIdx},
			[2]int{baseIdx, nextBaseIdx},
			[2]int{tipIdx, nextTipIdx},
		)
		faces = append(faces, []int{baseIdx, nextBaseIdx, nextTipIdx, tipIdx})
	}

	handleStart := numBody + numSpout
	for i := 0; i < handleSegments-1; i++ {
		for j := 0; j < handleMinor; j++ {
			idx := handleStart + i*handleMinor + j
			nextJ := (j + 1) % handleMinor
			nextIIdx := handleStart + (i+1)*handleMinor + j
			nextJIdx := handleStart + i*handleMinor + nextJ
			nextBothIdx := handleStart + (i+1)*handleMinor + nextJ

			edges = append(edges, [2]int{idx, nextJIdx}, [2]int{idx, nextIIdx})
			faces = append(faces, []int{idx, nextJIdx, nextBothIdx, nextIIdx})
		}
	}

	for i := 0; i < lidSegments; i++ {
		next := (i + 1) % lidSegments
		vertexIdx := lidStart + i
		nextVertexIdx := lidStart + next

		edges = append(edges, [2]int{lidCenterIdx, vertexIdx}, [2]int{vertexIdx, nextVertexIdx})
		faces = append(faces, []int{lidCenterIdx, vertexIdx, nextVertexIdx})
	}

	return NewMesh("teapot", vertices, edges, faces)
}
