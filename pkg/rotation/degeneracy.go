package rotation

import (
	"math"
	"strconv"

	"gimbalaim/pkg/linalg"
)

// DefaultTolerance is the threshold below which a value is treated as
// numerically zero: 100 machine epsilons for float64.
const DefaultTolerance = 100 * 0x1p-52

// AngleRole names one of the three orientation angles
type AngleRole int

const (
	Yaw AngleRole = iota
	Pitch
	Roll
)

func (r AngleRole) String() string {
	switch r {
	case Yaw:
		return "yaw"
	case Pitch:
		return "pitch"
	case Roll:
		return "roll"
	}
	return "AngleRole(" + strconv.Itoa(int(r)) + ")"
}

// Axis returns the axis the role rotates around: roll X, pitch Y, yaw Z.
// Unknown roles map to an invalid axis, which RotationMatrix rejects.
func (r AngleRole) Axis() Axis {
	switch r {
	case Roll:
		return AxisX
	case Pitch:
		return AxisY
	case Yaw:
		return AxisZ
	}
	return Axis(-1)
}

// CloseToZero reports whether |value| is below DefaultTolerance
func CloseToZero(value float64) bool {
	return closeToZero(value, DefaultTolerance)
}

// CanRotate reports whether rotating v for the given role would change it,
// i.e. v has a non-zero projection onto the plane the role's axis rotates.
func CanRotate(v linalg.Vector3, role AngleRole) bool {
	return canRotate(v, role, DefaultTolerance)
}

func closeToZero(value, tol float64) bool {
	return math.Abs(value) < tol
}

func canRotate(v linalg.Vector3, role AngleRole, tol float64) bool {
	switch role {
	case Yaw:
		return !closeToZero(v.X, tol) || !closeToZero(v.Y, tol)
	case Pitch:
		return !closeToZero(v.X, tol) || !closeToZero(v.Z, tol)
	case Roll:
		return !closeToZero(v.Z, tol) || !closeToZero(v.Y, tol)
	}
	return false
}
