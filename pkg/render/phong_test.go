package render

import (
	"image/color"
	"testing"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/DelgadoPedro/prisma/pkg/math3d"
)

// flatTriangle renders a screen-facing triangle around (20, 20) with
// constant normal n at depth z.
func flatTriangle(p *Phong, z float64, n math3d.Vec3) {
	a2 := math3d.V2(5, 5)
	b2 := math3d.V2(35, 5)
	c2 := math3d.V2(20, 35)
	a3 := math3d.V3(5, 5, z)
	b3 := math3d.V3(35, 5, z)
	c3 := math3d.V3(20, 35, z)
	p.RenderTriangle(a2, b2, c2, a3, b3, c3, n, n, n)
}

func countNonBackground(p *Phong) int {
	fb := p.Framebuffer()
	n := 0
	for _, px := range fb.Pixels {
		if px != DefaultBackground {
			n++
		}
	}
	return n
}

func TestRenderTriangleDrawsPixels(t *testing.T) {
	p := NewPhong(40, 40)
	flatTriangle(p, 0, math3d.V3(0, 0, 1))

	if countNonBackground(p) == 0 {
		t.Fatal("triangle drew no pixels")
	}
}

func TestDegenerateTriangleSkipped(t *testing.T) {
	p := NewPhong(40, 40)
	n := math3d.V3(0, 0, 1)
	pos := math3d.V3(0, 10, 0)
	// All three vertices on one scanline.
	p.RenderTriangle(math3d.V2(0, 10), math3d.V2(20, 10), math3d.V2(39, 10), pos, pos, pos, n, n, n)

	if got := countNonBackground(p); got != 0 {
		t.Errorf("degenerate triangle drew %d pixels, want 0", got)
	}
}

func TestDepthTestKeepsNearSurface(t *testing.T) {
	near := math3d.V3(0, 0, 1)

	// Near then far, and far then near, must agree.
	a := NewPhong(40, 40)
	flatTriangle(a, -50, near)
	flatTriangle(a, 50, near)

	b := NewPhong(40, 40)
	flatTriangle(b, 50, near)
	flatTriangle(b, -50, near)

	want := a.Framebuffer().GetPixel(20, 20)
	got := b.Framebuffer().GetPixel(20, 20)
	if got != want {
		t.Errorf("render order changed result: %v vs %v", got, want)
	}

	ref := NewPhong(40, 40)
	flatTriangle(ref, -50, near)
	if nearOnly := ref.Framebuffer().GetPixel(20, 20); got != nearOnly {
		t.Errorf("center pixel = %v, want near surface color %v", got, nearOnly)
	}
}

func TestBackfaceGetsAmbientOnly(t *testing.T) {
	p := NewPhong(40, 40)
	// Default light sits at (200,200,200); a -z normal faces away from it.
	flatTriangle(p, 0, math3d.V3(0, 0, -1))

	// light ambient (0.5,0.5,0.5) times material ambient (0.4,0.4,0.5)
	r, g, b := colorful.Color{R: 0.2, G: 0.2, B: 0.25}.Clamped().RGB255()
	want := color.RGBA{R: r, G: g, B: b, A: 255}

	if got := p.Framebuffer().GetPixel(20, 20); got != want {
		t.Errorf("backface pixel = %v, want ambient %v", got, want)
	}
}

func TestSimpleShadingSkipsSpecular(t *testing.T) {
	n := math3d.V3(0, 0, 1)
	lightDir := math3d.V3(200, 200, 200).Normalize()
	// Mirror of the light direction about the normal, scaled out to the eye.
	reflectDir := n.Scale(2 * n.Dot(lightDir)).Sub(lightDir)
	viewer := reflectDir.Scale(300)

	full := NewPhong(40, 40)
	full.SetViewerPosition(viewer)
	flatTriangle(full, 0, n)

	simple := NewPhong(40, 40)
	simple.SetSimpleShading(true)
	simple.SetViewerPosition(viewer)
	flatTriangle(simple, 0, n)

	fullPx := full.Framebuffer().GetPixel(20, 20)
	simplePx := simple.Framebuffer().GetPixel(20, 20)
	if fullPx.R <= simplePx.R {
		t.Errorf("specular highlight missing: full %v not brighter than simple %v", fullPx, simplePx)
	}
}

func TestClearResetsDepth(t *testing.T) {
	p := NewPhong(40, 40)
	flatTriangle(p, -50, math3d.V3(0, 0, 1))
	p.Clear(DefaultBackground)

	if got := countNonBackground(p); got != 0 {
		t.Fatalf("clear left %d pixels", got)
	}

	// A farther surface must draw again after the depth reset.
	flatTriangle(p, 50, math3d.V3(0, 0, 1))
	if countNonBackground(p) == 0 {
		t.Error("far surface not drawn after clear")
	}
}

func TestResize(t *testing.T) {
	p := NewPhong(40, 40)
	flatTriangle(p, 0, math3d.V3(0, 0, 1))

	p.Resize(80, 20)
	w, h := p.Size()
	if w != 80 || h != 20 {
		t.Fatalf("size = %dx%d, want 80x20", w, h)
	}
	img := p.Image()
	if img.Bounds().Dx() != 80 || img.Bounds().Dy() != 20 {
		t.Errorf("image bounds = %v", img.Bounds())
	}
	if got := countNonBackground(p); got != 0 {
		t.Errorf("resize left %d stale pixels", got)
	}
}

func TestMaterialChangesOutput(t *testing.T) {
	red := NewPhong(40, 40)
	red.SetMaterial(math3d.V3(0.3, 0, 0), math3d.V3(1, 0, 0), math3d.V3(1, 1, 1), 64)
	flatTriangle(red, 0, math3d.V3(0, 0, 1))

	px := red.Framebuffer().GetPixel(20, 20)
	if px.R <= px.G || px.R <= px.B {
		t.Errorf("red material produced %v", px)
	}
}
