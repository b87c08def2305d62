package render

import (
	"testing"

	"github.com/DelgadoPedro/prisma/pkg/math3d"
	"github.com/DelgadoPedro/prisma/pkg/solids"
)

func testContext(w, h float64) Context {
	return Context{
		Camera:     CameraTransform(w, h, 0.5, 0.8),
		Projection: NewPerspective(w/2, h/2, 300, 1),
	}
}

func TestRenderMeshDrawsCube(t *testing.T) {
	p := NewPhong(100, 100)
	ctx := testContext(100, 100)

	ctx.RenderMesh(p, solids.NewCube(50))

	if countNonBackground(p) == 0 {
		t.Fatal("cube rendered no pixels")
	}
}

func TestRenderMeshAllBuilders(t *testing.T) {
	meshes := []*solids.Mesh{
		solids.NewCube(50),
		solids.NewPyramid(50, 70),
		solids.NewCylinder(25, 50, 16),
		solids.NewCone(25, 50, 16),
		solids.NewSphere(30, 12, 12),
		solids.NewHemisphere(30, 8),
		solids.NewTorus(30, 10, 16, 8),
		solids.NewTeapot(40),
	}
	for _, m := range meshes {
		t.Run(m.Name, func(t *testing.T) {
			p := NewPhong(100, 100)
			testContext(100, 100).RenderMesh(p, m)
			if countNonBackground(p) == 0 {
				t.Errorf("%s rendered no pixels", m.Name)
			}
		})
	}
}

func TestRenderMeshUsesMeshColor(t *testing.T) {
	p := NewPhong(100, 100)
	ctx := testContext(100, 100)

	cube := solids.NewCube(50)
	cube.Color = solids.RGBA(1, 0, 0, 1)
	ctx.RenderMesh(p, cube)

	fb := p.Framebuffer()
	reddish := 0
	for _, px := range fb.Pixels {
		if px != DefaultBackground && px.R > px.G && px.R > px.B {
			reddish++
		}
	}
	if reddish == 0 {
		t.Error("no reddish pixels for a red cube")
	}
}

func TestMaterialFromColor(t *testing.T) {
	c := solids.RGBA(0.8, 0.4, 0.2, 1)
	ambient, diffuse, specular, shininess := MaterialFromColor(c.Color)

	if want := math3d.V3(0.4, 0.2, 0.1); ambient.Distance(want) > 1e-9 {
		t.Errorf("ambient = %v, want %v", ambient, want)
	}
	if want := math3d.V3(0.8, 0.4, 0.2); diffuse.Distance(want) > 1e-9 {
		t.Errorf("diffuse = %v, want %v", diffuse, want)
	}
	if want := math3d.V3(1, 1, 1); specular != want {
		t.Errorf("specular = %v, want white", specular)
	}
	if shininess != 128 {
		t.Errorf("shininess = %v, want 128", shininess)
	}
}

func TestDrawWireframeDrawsEdges(t *testing.T) {
	fb := NewFramebuffer(100, 100)
	fb.Clear(ColorBlack)

	view := OrbitTransform(300, 0.5, 0.8)
	proj := NewPerspective(50, 50, 500, 1)
	DrawWireframe(fb, solids.NewCube(50), view, proj, ColorEdge)

	edgePixels := 0
	for _, px := range fb.Pixels {
		if px == ColorEdge {
			edgePixels++
		}
	}
	if edgePixels == 0 {
		t.Fatal("wireframe drew no edge pixels")
	}
}

func TestDrawFilledFacesCoversInterior(t *testing.T) {
	fb := NewFramebuffer(100, 100)
	fb.Clear(ColorBlack)

	view := OrbitTransform(300, 0.5, 0.8)
	proj := NewPerspective(50, 50, 500, 1)
	DrawFilledFaces(fb, solids.NewCube(50), view, proj)

	filled := 0
	for _, px := range fb.Pixels {
		if px != ColorBlack {
			filled++
		}
	}
	// A cube at this distance covers a solid patch, not just outlines.
	if filled < 50 {
		t.Fatalf("filled %d pixels, want a solid region", filled)
	}
}
