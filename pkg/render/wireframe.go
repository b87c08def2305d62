package render

import (
	"image"
	"image/color"
	"math"

	"github.com/DelgadoPedro/prisma/pkg/math3d"
	"github.com/DelgadoPedro/prisma/pkg/solids"
)

// projectMesh maps the mesh's transformed vertices through the camera and
// projection into screen space.
func projectMesh(m *solids.Mesh, camera math3d.Mat4, proj Projection) []math3d.Vec2 {
	verts := m.TransformedVertices()
	projected := make([]math3d.Vec2, len(verts))
	for i, v := range verts {
		projected[i] = proj.Project(camera.MulVec3(v))
	}
	return projected
}

// DrawWireframe draws the mesh's edges into the framebuffer through the
// given camera transform and projection.
func DrawWireframe(fb *Framebuffer, m *solids.Mesh, camera math3d.Mat4, proj Projection, c color.RGBA) {
	projected := projectMesh(m, camera, proj)
	for _, e := range m.Edges {
		if e[0] < 0 || e[1] < 0 || e[0] >= len(projected) || e[1] >= len(projected) {
			continue
		}
		a, b := projected[e[0]], projected[e[1]]
		fb.DrawLine(
			int(math.Round(a.X)), int(math.Round(a.Y)),
			int(math.Round(b.X)), int(math.Round(b.Y)),
			c,
		)
	}
}

// DrawFilledFaces flat-fills each face as a 2D polygon using the scanline
// fill, in face order without depth testing. Faces with out-of-range
// indices are skipped.
func DrawFilledFaces(fb *Framebuffer, m *solids.Mesh, camera math3d.Mat4, proj Projection) {
	projected := projectMesh(m, camera, proj)

	r, g, b := m.Color.Clamped().RGB255()
	fill := color.RGBA{R: r, G: g, B: b, A: 255}

	outline := make([]image.Point, 0, 8)
	for _, face := range m.Faces {
		if len(face) < 3 {
			continue
		}
		outline = outline[:0]
		ok := true
		for _, idx := range face {
			if idx < 0 || idx >= len(projected) {
				ok = false
				break
			}
			pt := projected[idx]
			outline = append(outline, image.Point{
				X: int(math.Round(pt.X)),
				Y: int(math.Round(pt.Y)),
			})
		}
		if !ok {
			continue
		}
		for _, span := range FillPolygon(outline) {
			for x := span.XStart; x <= span.XEnd; x++ {
				fb.SetPixel(x, span.Y, fill)
			}
		}
	}
}
