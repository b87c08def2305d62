package render

import (
	"image"
	"image/color"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/DelgadoPedro/prisma/pkg/math3d"
)

const normalEps = 1e-6

// Phong renders triangles into a framebuffer with per-pixel Phong lighting
// and a depth buffer. Normals and 3D positions are interpolated across each
// triangle and the full lighting equation runs at every pixel.
type Phong struct {
	width  int
	height int
	fb     *Framebuffer
	depth  []float64

	simpleShading bool

	lightPosition math3d.Vec3
	lightAmbient  math3d.Vec3
	lightDiffuse  math3d.Vec3
	lightSpecular math3d.Vec3

	materialAmbient   math3d.Vec3
	materialDiffuse   math3d.Vec3
	materialSpecular  math3d.Vec3
	materialShininess float64

	viewerPosition math3d.Vec3

	ambient math3d.Vec3 // lightAmbient * materialAmbient, cached
}

// NewPhong creates a renderer with a white-ish light at (200,200,200), a
// blue-tinted default material and the viewer at (0,0,300), cleared to the
// default background.
func NewPhong(width, height int) *Phong {
	p := &Phong{
		width:             width,
		height:            height,
		fb:                NewFramebuffer(width, height),
		depth:             make([]float64, width*height),
		lightPosition:     math3d.V3(200, 200, 200),
		lightAmbient:      math3d.V3(0.5, 0.5, 0.5),
		lightDiffuse:      math3d.V3(1, 1, 1),
		lightSpecular:     math3d.V3(1, 1, 1),
		materialAmbient:   math3d.V3(0.4, 0.4, 0.5),
		materialDiffuse:   math3d.V3(0.9, 0.9, 1),
		materialSpecular:  math3d.V3(1, 1, 1),
		materialShininess: 64,
		viewerPosition:    math3d.V3(0, 0, 300),
	}
	p.ambient = p.lightAmbient.Mul(p.materialAmbient)
	p.Clear(DefaultBackground)
	return p
}

// Size returns the pixel dimensions of the render target.
func (p *Phong) Size() (width, height int) {
	return p.width, p.height
}

// Resize reallocates the render target. The contents are cleared.
func (p *Phong) Resize(width, height int) {
	if width == p.width && height == p.height {
		return
	}
	p.width = width
	p.height = height
	p.fb = NewFramebuffer(width, height)
	p.depth = make([]float64, width*height)
	p.Clear(DefaultBackground)
}

// Clear fills the color buffer with bg and resets every depth to +Inf.
func (p *Phong) Clear(bg color.RGBA) {
	p.fb.Clear(bg)
	for i := range p.depth {
		p.depth[i] = math.Inf(1)
	}
}

// SetSimpleShading toggles the reduced lighting model that skips the
// specular term.
func (p *Phong) SetSimpleShading(simple bool) {
	p.simpleShading = simple
}

// SetLightPosition moves the point light.
func (p *Phong) SetLightPosition(pos math3d.Vec3) {
	p.lightPosition = pos
}

// SetViewerPosition moves the eye used for the specular term.
func (p *Phong) SetViewerPosition(pos math3d.Vec3) {
	p.viewerPosition = pos
}

// SetMaterial sets the material reflectances and shininess exponent.
func (p *Phong) SetMaterial(ambient, diffuse, specular math3d.Vec3, shininess float64) {
	p.materialAmbient = ambient
	p.materialDiffuse = diffuse
	p.materialSpecular = specular
	p.materialShininess = shininess
	p.ambient = p.lightAmbient.Mul(p.materialAmbient)
}

// Framebuffer returns the color buffer, for terminal drawing.
func (p *Phong) Framebuffer() *Framebuffer {
	return p.fb
}

// Image returns the rendered frame as a standard Go image.
func (p *Phong) Image() *image.RGBA {
	return p.fb.ToImage()
}

// shade computes the Phong lighting equation for one pixel. normal is the
// interpolated normal, pos the interpolated camera-space position. Surfaces
// facing away from the light fall back to the ambient term.
func (p *Phong) shade(normal, pos math3d.Vec3) math3d.Vec3 {
	nLen := normal.Len()
	if nLen < normalEps {
		return p.ambient
	}
	if math.Abs(nLen-1) > 1e-3 {
		normal = normal.Scale(1 / nLen)
	}

	lightVec := p.lightPosition.Sub(pos)
	lLen := lightVec.Len()
	if lLen < normalEps {
		return p.ambient
	}
	lightVec = lightVec.Scale(1 / lLen)

	nDotL := normal.Dot(lightVec)
	if nDotL < 0 {
		return p.ambient
	}

	out := p.ambient.Add(p.lightDiffuse.Mul(p.materialDiffuse).Scale(nDotL))

	if !p.simpleShading {
		viewVec := p.viewerPosition.Sub(pos)
		if vLen := viewVec.Len(); vLen >= normalEps {
			viewVec = viewVec.Scale(1 / vLen)
			// R = 2(N.L)N - L
			reflect := normal.Scale(2 * nDotL).Sub(lightVec)
			if rLen := reflect.Len(); rLen > normalEps {
				reflect = reflect.Scale(1 / rLen)
				if rDotV := reflect.Dot(viewVec); rDotV > 0 {
					spec := math.Pow(rDotV, p.materialShininess)
					out = out.Add(p.lightSpecular.Mul(p.materialSpecular).Scale(spec))
				}
			}
		}
	}

	return out.Min(math3d.V3(1, 1, 1)).Max(math3d.Zero3())
}

// shadeToRGBA converts a [0,1] light intensity to an opaque 8-bit color.
func shadeToRGBA(c math3d.Vec3) color.RGBA {
	r, g, b := colorful.Color{R: c.X, G: c.Y, B: c.Z}.Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// triVert is one triangle corner after screen rounding: integer scanline,
// rounded screen x, camera-space position and unit normal.
type triVert struct {
	x   float64
	y   int
	pos math3d.Vec3
	n   math3d.Vec3
}

// edgeInterp walks one triangle edge a scanline at a time, carrying screen
// x, 3D position and normal.
type edgeInterp struct {
	x, dx     float64
	pos, dpos math3d.Vec3
	n, dn     math3d.Vec3
}

func newEdgeInterp(x0, x1 float64, p0, p1, n0, n1 math3d.Vec3, dy float64) edgeInterp {
	inv := 1.0 / dy
	return edgeInterp{
		x:    x0,
		dx:   (x1 - x0) * inv,
		pos:  p0,
		dpos: p1.Sub(p0).Scale(inv),
		n:    n0,
		dn:   n1.Sub(n0).Scale(inv),
	}
}

func (e *edgeInterp) step() {
	e.x += e.dx
	e.pos = e.pos.Add(e.dpos)
	e.n = e.n.Add(e.dn)
}

func unitOrDefault(n math3d.Vec3) math3d.Vec3 {
	if l := n.Len(); l > normalEps {
		return n.Scale(1 / l)
	}
	return math3d.V3(0, 0, 1)
}

// RenderTriangle rasterizes one triangle. a2, b2, c2 are projected screen
// positions, a3, b3, c3 the matching camera-space positions and na, nb, nc
// the vertex normals. The triangle splits at the middle vertex into a top
// and bottom half that share the long edge.
func (p *Phong) RenderTriangle(a2, b2, c2 math3d.Vec2, a3, b3, c3, na, nb, nc math3d.Vec3) {
	vs := [3]triVert{
		{x: math.Round(a2.X), y: int(math.Round(a2.Y)), pos: a3, n: unitOrDefault(na)},
		{x: math.Round(b2.X), y: int(math.Round(b2.Y)), pos: b3, n: unitOrDefault(nb)},
		{x: math.Round(c2.X), y: int(math.Round(c2.Y)), pos: c3, n: unitOrDefault(nc)},
	}
	if vs[1].y < vs[0].y {
		vs[0], vs[1] = vs[1], vs[0]
	}
	if vs[2].y < vs[1].y {
		vs[1], vs[2] = vs[2], vs[1]
	}
	if vs[1].y < vs[0].y {
		vs[0], vs[1] = vs[1], vs[0]
	}
	v0, v1, v2 := vs[0], vs[1], vs[2]

	if v0.y == v2.y {
		return
	}
	longDy := float64(v2.y - v0.y)

	if v1.y > v0.y {
		left := newEdgeInterp(v0.x, v1.x, v0.pos, v1.pos, v0.n, v1.n, float64(v1.y-v0.y))
		right := newEdgeInterp(v0.x, v2.x, v0.pos, v2.pos, v0.n, v2.n, longDy)
		for y := v0.y; y <= v1.y; y++ {
			p.scanline(y, &left, &right)
			left.step()
			right.step()
		}
	}

	if v2.y > v1.y {
		// The bottom half's right edge continues the long edge from where
		// the top half left it.
		k := float64(v1.y-v0.y) / longDy
		midX := v0.x + k*(v2.x-v0.x)
		midPos := v0.pos.Add(v2.pos.Sub(v0.pos).Scale(k))
		midN := v0.n.Add(v2.n.Sub(v0.n).Scale(k))

		dy := float64(v2.y - v1.y)
		left := newEdgeInterp(v1.x, v2.x, v1.pos, v2.pos, v1.n, v2.n, dy)
		right := newEdgeInterp(midX, v2.x, midPos, v2.pos, midN, v2.n, dy)
		for y := v1.y + 1; y <= v2.y; y++ {
			left.step()
			right.step()
			p.scanline(y, &left, &right)
		}
	}
}

// scanline shades one horizontal run between two edge interpolators,
// depth-testing every pixel.
func (p *Phong) scanline(y int, left, right *edgeInterp) {
	if y < 0 || y >= p.height {
		return
	}

	xs := int(math.Round(left.x))
	xe := int(math.Round(right.x))
	lPos, rPos := left.pos, right.pos
	lN, rN := left.n, right.n
	if xs > xe {
		xs, xe = xe, xs
		lPos, rPos = rPos, lPos
		lN, rN = rN, lN
	}
	if xe <= xs {
		return
	}

	dx := float64(xe - xs)
	x0 := xs
	if x0 < 0 {
		x0 = 0
	}
	x1 := xe + 1
	if x1 > p.width {
		x1 = p.width
	}

	posStep := rPos.Sub(lPos).Scale(1 / dx)
	nStep := rN.Sub(lN).Scale(1 / dx)

	adv := float64(x0 - xs)
	pos := lPos.Add(posStep.Scale(adv))
	n := lN.Add(nStep.Scale(adv))

	for x := x0; x < x1; x++ {
		idx := y*p.width + x
		if pos.Z < p.depth[idx] {
			p.depth[idx] = pos.Z
			p.fb.Pixels[idx] = shadeToRGBA(p.shade(n, pos))
		}
		pos = pos.Add(posStep)
		n = n.Add(nStep)
	}
}
