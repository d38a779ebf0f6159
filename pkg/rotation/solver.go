package rotation

import (
	"log"

	"gimbalaim/pkg/linalg"
)

// Orientation holds yaw, pitch and roll in degrees. No wraparound is
// applied; any real value is accepted.
type Orientation struct {
	Yaw   float64 `json:"yaw"`
	Pitch float64 `json:"pitch"`
	Roll  float64 `json:"roll"`
}

// Angle returns the angle for the given role
func (o Orientation) Angle(role AngleRole) float64 {
	switch role {
	case Yaw:
		return o.Yaw
	case Pitch:
		return o.Pitch
	case Roll:
		return o.Roll
	}
	return 0
}

// IsZero reports whether all three angles are exactly zero
func (o Orientation) IsZero() bool {
	return o.Yaw == 0 && o.Pitch == 0 && o.Roll == 0
}

// Order is one sequence in which the three angles are applied
type Order [3]AngleRole

// The search order is fixed; results must match for the same input.
var permutations = [6]Order{
	{Roll, Pitch, Yaw},
	{Roll, Yaw, Pitch},
	{Yaw, Roll, Pitch},
	{Yaw, Pitch, Roll},
	{Pitch, Roll, Yaw},
	{Pitch, Yaw, Roll},
}

// Permutations returns the orders tried by the solver, in priority order.
func Permutations() []Order {
	out := make([]Order, len(permutations))
	copy(out, permutations[:])
	return out
}

// Solution is the outcome of applying an orientation
type Solution struct {
	Vector linalg.Vector3
	// Order is the permutation that was applied. It is nil for a zero
	// orientation and when no permutation succeeded.
	Order []AngleRole
	// Found is false when every permutation hit a degenerate step and
	// Vector is the unchanged input.
	Found bool
}

// Solver applies orientations to vectors.
//
// The permutation search is a heuristic, not a canonical Euler composition:
// it applies the angles in the first order where no rotation would spin the
// vector around itself. When every order is degenerate the input is returned
// unchanged and the intended rotation is silently dropped; Solve exposes
// that case through Solution.Found.
//
// A nil *Solver behaves like NewSolver().
type Solver struct {
	// Tolerance below which values count as zero. Zero means DefaultTolerance.
	Tolerance float64
	// Logger, when set, receives each applied rotation matrix and the
	// chosen order.
	Logger *log.Logger
}

// NewSolver creates a solver using DefaultTolerance
func NewSolver() *Solver {
	return &Solver{Tolerance: DefaultTolerance}
}

// RotateByOrientation applies o to v with a default Solver
func RotateByOrientation(v linalg.Vector3, o Orientation) linalg.Vector3 {
	var s Solver
	return s.Rotate(v, o)
}

// Rotate applies o to v and returns the rotated vector, or v itself when no
// permutation avoids a degenerate rotation.
func (s *Solver) Rotate(v linalg.Vector3, o Orientation) linalg.Vector3 {
	return s.Solve(v, o).Vector
}

// Solve applies o to v and reports which order was used.
func (s *Solver) Solve(v linalg.Vector3, o Orientation) Solution {
	if o.IsZero() {
		return Solution{Vector: v, Found: true}
	}

	for _, order := range permutations {
		if result, ok := s.applyOrder(v, o, order); ok {
			s.logf("applied order %v to %v: %v", order, v, result)
			return Solution{Vector: result, Order: order[:], Found: true}
		}
	}

	s.logf("no rotation order for %v with %+v, returning input", v, o)
	return Solution{Vector: v}
}

// CanRotate reports whether rotating v for role is meaningful under the
// solver's tolerance.
func (s *Solver) CanRotate(v linalg.Vector3, role AngleRole) bool {
	return canRotate(v, role, s.tolerance())
}

// applyOrder applies each non-zero angle in order. It fails as soon as a
// rotation would operate on a vector lying on the rotation axis.
func (s *Solver) applyOrder(v linalg.Vector3, o Orientation, order Order) (linalg.Vector3, bool) {
	tol := s.tolerance()
	result := v
	for _, role := range order {
		angle := o.Angle(role)
		if closeToZero(angle, tol) {
			continue
		}
		if !canRotate(result, role, tol) {
			return v, false
		}
		m, err := RotationMatrix(role.Axis(), DegreesToRadians(angle))
		if err != nil {
			return v, false
		}
		s.logf("rotate %s by %g: matrix %v", role, angle, m.Rows())
		result = m.MulVec(result)
	}
	return result, true
}

func (s *Solver) tolerance() float64 {
	if s == nil || s.Tolerance <= 0 {
		return DefaultTolerance
	}
	return s.Tolerance
}

func (s *Solver) logf(format string, args ...any) {
	if s == nil || s.Logger == nil {
		return
	}
	s.Logger.Printf(format, args...)
}
