package render

import (
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/DelgadoPedro/prisma/pkg/math3d"
	"github.com/DelgadoPedro/prisma/pkg/solids"
)

// Context carries the per-frame camera state used to push meshes through
// the shaded pipeline. Build one per frame, render every mesh, then draw
// the result.
type Context struct {
	Camera     math3d.Mat4
	Projection Projection
}

// MaterialFromColor derives Phong material reflectances from a mesh color:
// half-strength ambient, the color itself as diffuse and a white specular
// with a tight highlight.
func MaterialFromColor(c colorful.Color) (ambient, diffuse, specular math3d.Vec3, shininess float64) {
	ambient = math3d.V3(c.R*0.5, c.G*0.5, c.B*0.5)
	diffuse = math3d.V3(c.R, c.G, c.B)
	specular = math3d.V3(1, 1, 1)
	return ambient, diffuse, specular, 128
}

// RenderMesh shades every face of the mesh into p. Vertex normals are
// computed from the mesh's transformed vertices, so lighting follows the
// mesh as it moves. Quads split along the 0-2 diagonal; larger faces fan
// out from their first vertex.
func (c Context) RenderMesh(p *Phong, m *solids.Mesh) {
	verts := m.TransformedVertices()
	normals := solids.VertexNormals(verts, m.Faces)

	camVerts := make([]math3d.Vec3, len(verts))
	projected := make([]math3d.Vec2, len(verts))
	for i, v := range verts {
		camVerts[i] = c.Camera.MulVec3(v)
		projected[i] = c.Projection.Project(camVerts[i])
	}

	p.SetMaterial(MaterialFromColor(m.Color.Color))

	for _, face := range m.Faces {
		if len(face) < 3 {
			continue
		}
		if len(face) == 4 {
			renderTri(p, projected, camVerts, normals, face[0], face[1], face[2])
			renderTri(p, projected, camVerts, normals, face[0], face[2], face[3])
			continue
		}
		for i := 1; i < len(face)-1; i++ {
			renderTri(p, projected, camVerts, normals, face[0], face[i], face[i+1])
		}
	}
}

func renderTri(p *Phong, projected []math3d.Vec2, camVerts, normals []math3d.Vec3, i0, i1, i2 int) {
	n := len(camVerts)
	if i0 < 0 || i1 < 0 || i2 < 0 || i0 >= n || i1 >= n || i2 >= n {
		return
	}
	p.RenderTriangle(
		projected[i0], projected[i1], projected[i2],
		camVerts[i0], camVerts[i1], camVerts[i2],
		normals[i0], normals[i1], normals[i2],
	)
}
