// Package aim computes where a sensor mounted on a rotating platform is
// looking: the platform orientation plus a camera gimbal offset, projected a
// distance from the platform position.
package aim

import (
	"gimbalaim/pkg/linalg"
	"gimbalaim/pkg/rotation"
)

// Forward is the reference direction the sensor points along before any
// rotation is applied.
var Forward = linalg.Vector3{X: 1, Y: 0, Z: 0}

// CameraAngles is the gimbal offset in degrees, added on top of the
// platform's yaw and pitch.
type CameraAngles struct {
	Yaw   float64 `json:"yaw"`
	Pitch float64 `json:"pitch"`
}

// Effective returns the platform orientation with the camera offset applied.
// Roll is not affected by the gimbal.
func Effective(platform rotation.Orientation, camera CameraAngles) rotation.Orientation {
	return rotation.Orientation{
		Yaw:   platform.Yaw + camera.Yaw,
		Pitch: platform.Pitch + camera.Pitch,
		Roll:  platform.Roll,
	}
}

// ProjectPoint returns the point distance units along the sensor's line of
// sight from initial.
func ProjectPoint(distance float64, initial linalg.Vector3, platform rotation.Orientation, camera CameraAngles) linalg.Vector3 {
	var p Projector
	return p.Project(distance, initial, platform, camera)
}

// Projector projects sight lines with a configurable reference direction
// and solver. The zero value uses Forward and a default solver.
type Projector struct {
	// Reference direction; zero means Forward.
	Reference linalg.Vector3
	// Boresight corrects sensor mounting misalignment. It is applied to the
	// reference direction before the orientation.
	Boresight *linalg.Matrix3
	Solver    *rotation.Solver
}

// Direction returns the sight line direction for the given angles
func (p *Projector) Direction(platform rotation.Orientation, camera CameraAngles) linalg.Vector3 {
	return p.Solve(platform, camera).Vector
}

// Solve is like Direction but also reports the rotation order used, so a
// caller can tell when no order was usable and the reference was returned.
func (p *Projector) Solve(platform rotation.Orientation, camera CameraAngles) rotation.Solution {
	ref := p.Reference
	if ref == (linalg.Vector3{}) {
		ref = Forward
	}
	if p.Boresight != nil {
		ref = p.Boresight.MulVec(ref)
	}
	return p.Solver.Solve(ref, Effective(platform, camera))
}

// Heading returns the platform's forward direction, Forward rotated by
// platform with p's solver. Reference, Boresight and the gimbal do not apply.
func (p *Projector) Heading(platform rotation.Orientation) linalg.Vector3 {
	var solver *rotation.Solver
	if p != nil {
		solver = p.Solver
	}
	return solver.Rotate(Forward, platform)
}

// Project returns initial + direction * distance
func (p *Projector) Project(distance float64, initial linalg.Vector3, platform rotation.Orientation, camera CameraAngles) linalg.Vector3 {
	return initial.Add(p.Direction(platform, camera).Multiply(distance))
}
