package raster

import (
	"math"

	"gimbalaim/pkg/linalg"
	"gimbalaim/pkg/rotation"
)

// View is an orbiting viewer looking at the world origin. The world is
// Z-up; Yaw turns the viewer around Z and Pitch raises it above the X-Y
// plane, both in degrees.
type View struct {
	Width, Height int
	// FOV is the perspective factor, e.g. 200-400
	FOV float64
	// Distance from the viewer to the origin, in world units after Scale
	Distance float64
	Scale    float64
	Yaw      float64
	Pitch    float64
}

// DefaultView returns a view from behind-right and slightly above
func DefaultView(width, height int) View {
	return View{
		Width:    width,
		Height:   height,
		FOV:      float64(min(width, height)),
		Distance: 4,
		Scale:    1,
		Yaw:      -135,
		Pitch:    25,
	}
}

// toCamera returns p in camera space: X right, Y down, Z depth away from
// the viewer.
func (v View) toCamera(p linalg.Vector3) linalg.Vector3 {
	p = p.Multiply(v.Scale)
	// Turn the world so the viewer looks along +X, then tilt it down.
	p, _ = rotation.RotateVector(p, rotation.AxisZ, -v.Yaw)
	p, _ = rotation.RotateVector(p, rotation.AxisY, -v.Pitch)
	return linalg.Vector3{X: -p.Y, Y: -p.Z, Z: p.X}
}

// Project projects the 3D point to 2D screen coordinates. ok is false when
// the point is at or behind the viewer.
func (v View) Project(p linalg.Vector3) (x, y int, ok bool) {
	c := v.toCamera(p)
	depth := v.Distance + c.Z
	if depth <= 1e-6 {
		return 0, 0, false
	}
	factor := v.FOV / depth
	x = int(math.Round(c.X*factor)) + v.Width/2
	y = int(math.Round(c.Y*factor)) + v.Height/2
	return x, y, true
}
