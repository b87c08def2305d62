package render

import (
	"image"
	"testing"

	"github.com/DelgadoPedro/prisma/pkg/math3d"
	"github.com/DelgadoPedro/prisma/pkg/solids"
)

func BenchmarkRenderTriangle(b *testing.B) {
	p := NewPhong(200, 200)
	n := math3d.V3(0, 0, 1)
	for b.Loop() {
		p.RenderTriangle(
			math3d.V2(10, 10), math3d.V2(190, 40), math3d.V2(100, 190),
			math3d.V3(10, 10, 0), math3d.V3(190, 40, 0), math3d.V3(100, 190, 0),
			n, n, n,
		)
		p.Clear(DefaultBackground)
	}
}

func BenchmarkFillPolygon(b *testing.B) {
	points := []image.Point{{100, 0}, {200, 80}, {160, 200}, {40, 200}, {0, 80}}
	for b.Loop() {
		FillPolygon(points)
	}
}

func BenchmarkRenderMeshSphere(b *testing.B) {
	p := NewPhong(200, 200)
	ctx := Context{
		Camera:     CameraTransform(200, 200, 0.5, 0.8),
		Projection: NewPerspective(100, 100, 300, 1),
	}
	sphere := solids.NewSphere(60, 16, 16)
	for b.Loop() {
		p.Clear(DefaultBackground)
		ctx.RenderMesh(p, sphere)
	}
}
