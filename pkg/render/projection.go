package render

import (
	"math"

	"github.com/DelgadoPedro/prisma/pkg/math3d"
)

// ProjectionKind selects how camera-space points map to the screen plane.
type ProjectionKind int

const (
	// Orthographic drops z and scales x and y directly.
	Orthographic ProjectionKind = iota
	// Perspective divides by depth so distant geometry shrinks.
	Perspective
)

// Projection maps camera-space points onto screen coordinates centered at
// (CenterX, CenterY). Distance is the eye-to-plane distance and only affects
// the perspective kind.
type Projection struct {
	Kind     ProjectionKind
	CenterX  float64
	CenterY  float64
	Distance float64
	Scale    float64
}

// NewOrthographic creates an orthographic projection.
func NewOrthographic(centerX, centerY, scale float64) Projection {
	return Projection{Kind: Orthographic, CenterX: centerX, CenterY: centerY, Scale: scale}
}

// NewPerspective creates a perspective projection with the given
// eye-to-plane distance.
func NewPerspective(centerX, centerY, distance, scale float64) Projection {
	return Projection{Kind: Perspective, CenterX: centerX, CenterY: centerY, Distance: distance, Scale: scale}
}

// Project maps a camera-space point to screen coordinates.
//
// Perspective uses x' = x*d/(z+d). Points at or behind the eye plane are
// clamped just in front of it so the division stays finite.
func (p Projection) Project(pt math3d.Vec3) math3d.Vec2 {
	if p.Kind == Perspective {
		z := pt.Z
		if z+p.Distance <= 0 {
			z = -p.Distance + 0.1
		}
		f := p.Distance / (z + p.Distance)
		return math3d.V2(pt.X*f*p.Scale+p.CenterX, pt.Y*f*p.Scale+p.CenterY)
	}
	return math3d.V2(pt.X*p.Scale+p.CenterX, pt.Y*p.Scale+p.CenterY)
}

// CameraTransform builds the view transform for the shaded pipeline: yaw
// around y, then pitch around x, then a translation to the screen center.
// Angles are in radians.
func CameraTransform(width, height, pitch, yaw float64) math3d.Mat4 {
	return math3d.Translate(width/2.0, height/2.0, 0).
		Mul(math3d.RotateX(pitch)).
		Mul(math3d.RotateY(yaw))
}

// OrbitTransform builds the view transform for the wireframe pipeline: push
// the scene away from the viewer, then pitch, then yaw.
func OrbitTransform(distance, pitch, yaw float64) math3d.Mat4 {
	return math3d.RotateY(yaw).
		Mul(math3d.RotateX(pitch)).
		Mul(math3d.Translate(0, 0, -distance))
}

// OrbitPosition converts orbit angles and a distance into a world-space
// position. It places the viewer for specular highlights so the eye matches
// the camera orbit.
func OrbitPosition(pitch, yaw, distance float64) math3d.Vec3 {
	return math3d.V3(
		distance*math.Sin(yaw)*math.Cos(pitch),
		distance*math.Sin(pitch),
		distance*math.Cos(yaw)*math.Cos(pitch),
	)
}
