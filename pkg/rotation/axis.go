// Package rotation rotates vectors around the principal axes and applies
// yaw/pitch/roll orientations while avoiding rotations that would spin a
// vector around itself.
package rotation

import (
	"math"
	"strconv"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/pkg/errors"

	"gimbalaim/pkg/linalg"
)

// ErrInvalidAxis is returned for an Axis value outside AxisX, AxisY, AxisZ.
var ErrInvalidAxis = errors.New("invalid axis")

// Axis selects one of the principal axes
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "X"
	case AxisY:
		return "Y"
	case AxisZ:
		return "Z"
	}
	return "Axis(" + strconv.Itoa(int(a)) + ")"
}

// DegreesToRadians converts an angle in degrees to radians
func DegreesToRadians(degrees float64) float64 {
	return mgl64.DegToRad(degrees)
}

// RotationMatrix returns the right-handed rotation matrix for the given axis.
// A positive angle is counter-clockwise when looking from the positive end of
// the axis toward the origin.
func RotationMatrix(axis Axis, radians float64) (linalg.Matrix3, error) {
	sin, cos := math.Sincos(radians)
	switch axis {
	case AxisZ:
		return linalg.MatrixFromRows(
			linalg.Vector3{X: cos, Y: -sin, Z: 0},
			linalg.Vector3{X: sin, Y: cos, Z: 0},
			linalg.Vector3{X: 0, Y: 0, Z: 1},
		), nil
	case AxisX:
		return linalg.MatrixFromRows(
			linalg.Vector3{X: 1, Y: 0, Z: 0},
			linalg.Vector3{X: 0, Y: cos, Z: -sin},
			linalg.Vector3{X: 0, Y: sin, Z: cos},
		), nil
	case AxisY:
		return linalg.MatrixFromRows(
			linalg.Vector3{X: cos, Y: 0, Z: sin},
			linalg.Vector3{X: 0, Y: 1, Z: 0},
			linalg.Vector3{X: -sin, Y: 0, Z: cos},
		), nil
	}
	return linalg.Matrix3{}, errors.Wrapf(ErrInvalidAxis, "axis %d", int(axis))
}

// RotateVector rotates v around axis by angle degrees. It always rotates;
// use RotateByOrientation for the degeneracy-aware composition.
func RotateVector(v linalg.Vector3, axis Axis, degrees float64) (linalg.Vector3, error) {
	m, err := RotationMatrix(axis, DegreesToRadians(degrees))
	if err != nil {
		return v, err
	}
	return m.MulVec(v), nil
}
