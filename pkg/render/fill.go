package render

import (
	"image"
	"math"
	"sort"
)

// Span is a horizontal run of filled pixels on one scanline, inclusive on
// both ends.
type Span struct {
	Y      int
	XStart int
	XEnd   int
}

type fillEdge struct {
	yMax     int // exclusive: the edge is active while y < yMax
	x        float64
	invSlope float64
}

// FillPolygon scan-converts a closed polygon into spans using an edge table
// and active edge table. Horizontal edges are skipped per the standard
// scanline rules, crossings are paired left to right, and span ends round
// inward so spans never bleed past the outline.
func FillPolygon(points []image.Point) []Span {
	if len(points) == 0 {
		return nil
	}

	et, yMin, yMax := buildEdgeTable(points)

	var active []*fillEdge
	var spans []Span

	for y := yMin; y <= yMax; y++ {
		active = append(active, et[y]...)

		kept := active[:0]
		for _, e := range active {
			if y < e.yMax {
				kept = append(kept, e)
			}
		}
		active = kept

		sort.Slice(active, func(i, j int) bool { return active[i].x < active[j].x })

		for i := 0; i+1 < len(active); i += 2 {
			xStart := int(math.Ceil(active[i].x))
			xEnd := int(math.Floor(active[i+1].x))
			if xEnd >= xStart {
				spans = append(spans, Span{Y: y, XStart: xStart, XEnd: xEnd})
			}
		}

		for _, e := range active {
			e.x += e.invSlope
		}
	}

	return spans
}

// buildEdgeTable buckets the polygon's non-horizontal edges by their top
// scanline and returns the vertical extent of the outline.
func buildEdgeTable(points []image.Point) (et map[int][]*fillEdge, yMin, yMax int) {
	yMin, yMax = points[0].Y, points[0].Y
	et = make(map[int][]*fillEdge)

	n := len(points)
	for i := 0; i < n; i++ {
		p0 := points[i]
		p1 := points[(i+1)%n]

		if p0.Y < yMin {
			yMin = p0.Y
		}
		if p0.Y > yMax {
			yMax = p0.Y
		}

		if p0.Y == p1.Y {
			continue
		}

		lo, hi := p0, p1
		if hi.Y < lo.Y {
			lo, hi = hi, lo
		}
		et[lo.Y] = append(et[lo.Y], &fillEdge{
			yMax:     hi.Y,
			x:        float64(lo.X),
			invSlope: float64(p1.X-p0.X) / float64(p1.Y-p0.Y),
		})
	}
	return et, yMin, yMax
}
