package rotation

import (
	"bytes"
	"log"
	"math"
	"math/rand"
	"strconv"
	"testing"

	"go.viam.com/test"
	"gonum.org/v1/gonum/num/quat"

	"gimbalaim/pkg/linalg"
)

func TestRotateByOrientation(t *testing.T) {
	x := linalg.NewVector3(1, 0, 0)
	half := math.Sqrt2 / 2

	tests := []struct {
		name        string
		v           linalg.Vector3
		orientation Orientation
		expected    linalg.Vector3
	}{
		{"yaw 180", x, Orientation{Yaw: 180}, linalg.NewVector3(-1, 0, 0)},
		{"yaw 90", x, Orientation{Yaw: 90}, linalg.NewVector3(0, 1, 0)},
		{"yaw -90", x, Orientation{Yaw: -90}, linalg.NewVector3(0, -1, 0)},
		{"pitch -90", x, Orientation{Pitch: -90}, linalg.NewVector3(0, 0, 1)},
		{"yaw 45 pitch -45", x, Orientation{Yaw: 45, Pitch: -45}, linalg.NewVector3(0.5, 0.5, half)},
		{"yaw 45 pitch 45", x, Orientation{Yaw: 45, Pitch: 45}, linalg.NewVector3(0.5, 0.5, -half)},
		{"roll 90 on tilted vector", linalg.NewVector3(1, 0, 1), Orientation{Roll: 90}, linalg.NewVector3(1, -1, 0)},
		{"roll -90 on tilted vector", linalg.NewVector3(1, 0, 1), Orientation{Roll: -90}, linalg.NewVector3(1, 1, 0)},
		{"full turn", x, Orientation{Yaw: 360, Pitch: -720}, x},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RotateByOrientation(tt.v, tt.orientation)
			if !got.ApproxEqual(tt.expected, tolerance) {
				t.Errorf("got %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestZeroOrientationIsIdentity(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	for i := 0; i < 20; i++ {
		v := linalg.NewVector3(rnd.NormFloat64(), rnd.NormFloat64(), rnd.NormFloat64())
		test.That(t, RotateByOrientation(v, Orientation{}), test.ShouldResemble, v)
	}

	sol := NewSolver().Solve(linalg.NewVector3(0, 0, 1), Orientation{})
	test.That(t, sol.Found, test.ShouldBeTrue)
	test.That(t, sol.Order, test.ShouldBeNil)
}

func TestNegligibleAnglesAreSkipped(t *testing.T) {
	v := linalg.NewVector3(0, 0, 1)
	sol := NewSolver().Solve(v, Orientation{Yaw: 1e-20, Roll: -1e-18})

	test.That(t, sol.Found, test.ShouldBeTrue)
	test.That(t, sol.Vector, test.ShouldResemble, v)
	test.That(t, sol.Order, test.ShouldResemble, []AngleRole{Roll, Pitch, Yaw})
}

func TestSolverPicksFirstNonDegenerateOrder(t *testing.T) {
	x := linalg.NewVector3(1, 0, 0)

	tests := []struct {
		name        string
		orientation Orientation
		order       []AngleRole
		expected    linalg.Vector3
	}{
		{
			name:        "pitch alone uses the first order",
			orientation: Orientation{Pitch: -90},
			order:       []AngleRole{Roll, Pitch, Yaw},
			expected:    linalg.NewVector3(0, 0, 1),
		},
		{
			// Roll would spin (1,0,0) around itself, so yaw goes first
			name:        "yaw before roll",
			orientation: Orientation{Yaw: 90, Roll: 90},
			order:       []AngleRole{Yaw, Roll, Pitch},
			expected:    linalg.NewVector3(0, 0, 1),
		},
		{
			// After yaw 180 the vector lies on -X again, so roll must wait for pitch
			name:        "yaw pitch roll",
			orientation: Orientation{Yaw: 180, Pitch: 90, Roll: 90},
			order:       []AngleRole{Yaw, Pitch, Roll},
			expected:    linalg.NewVector3(0, -1, 0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sol := NewSolver().Solve(x, tt.orientation)
			test.That(t, sol.Found, test.ShouldBeTrue)
			test.That(t, sol.Order, test.ShouldResemble, tt.order)
			if !sol.Vector.ApproxEqual(tt.expected, tolerance) {
				t.Errorf("got %v, want %v", sol.Vector, tt.expected)
			}
		})
	}
}

func TestSolverFallsBackToInput(t *testing.T) {
	// Yaw is the only angle and the vector lies on the yaw axis
	v := linalg.NewVector3(0, 0, 1)
	sol := NewSolver().Solve(v, Orientation{Yaw: 90})

	test.That(t, sol.Found, test.ShouldBeFalse)
	test.That(t, sol.Order, test.ShouldBeNil)
	test.That(t, sol.Vector, test.ShouldResemble, v)
	test.That(t, RotateByOrientation(v, Orientation{Yaw: 90}), test.ShouldResemble, v)
}

func TestSolverEdgeCases(t *testing.T) {
	x := linalg.NewVector3(1, 0, 0)
	negZero := math.Copysign(0, -1)

	t.Run("zero vector has no usable order", func(t *testing.T) {
		sol := NewSolver().Solve(linalg.Vector3{}, Orientation{Yaw: 30, Pitch: 10, Roll: 5})
		test.That(t, sol.Found, test.ShouldBeFalse)
		test.That(t, sol.Vector, test.ShouldResemble, linalg.Vector3{})
	})

	t.Run("roll leaves the vector on the yaw axis", func(t *testing.T) {
		v := linalg.NewVector3(0, 0, 1)
		sol := NewSolver().Solve(v, Orientation{Yaw: 90, Roll: 180})
		test.That(t, sol.Found, test.ShouldBeFalse)
		test.That(t, sol.Order, test.ShouldBeNil)
		test.That(t, sol.Vector, test.ShouldResemble, v)
	})

	t.Run("negative zero angles are the identity", func(t *testing.T) {
		sol := NewSolver().Solve(x, Orientation{Yaw: negZero, Pitch: negZero, Roll: negZero})
		test.That(t, sol.Found, test.ShouldBeTrue)
		test.That(t, sol.Order, test.ShouldBeNil)
		test.That(t, sol.Vector, test.ShouldResemble, x)
	})

	t.Run("nil solver uses the default tolerance", func(t *testing.T) {
		var s *Solver
		test.That(t, s.Rotate(x, Orientation{Yaw: 90}).ApproxEqual(linalg.NewVector3(0, 1, 0), 1e-12), test.ShouldBeTrue)
		test.That(t, s.CanRotate(linalg.NewVector3(0, 0, 1), Yaw), test.ShouldBeFalse)
	})

	for _, angle := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		t.Run("non-finite yaw "+strconv.FormatFloat(angle, 'g', -1, 64), func(t *testing.T) {
			sol := NewSolver().Solve(x, Orientation{Yaw: angle})
			test.That(t, sol.Found, test.ShouldBeTrue)
			test.That(t, sol.Order, test.ShouldResemble, []AngleRole{Roll, Pitch, Yaw})
			test.That(t, math.IsNaN(sol.Vector.X), test.ShouldBeTrue)
			test.That(t, math.IsNaN(sol.Vector.Y), test.ShouldBeTrue)
		})
	}
}

func TestSolverCustomTolerance(t *testing.T) {
	v := linalg.NewVector3(1e-4, 0, 1)
	o := Orientation{Yaw: 90}

	rotated := NewSolver().Rotate(v, o)
	test.That(t, rotated.ApproxEqual(linalg.NewVector3(0, 1e-4, 1), 1e-12), test.ShouldBeTrue)

	coarse := &Solver{Tolerance: 1e-3}
	test.That(t, coarse.Rotate(v, o), test.ShouldResemble, v)
}

// With generic vectors and angles every step is meaningful, so the first
// order applies roll, then pitch, then yaw. Compare against quaternions.
func TestSolverMatchesQuaternionComposition(t *testing.T) {
	axisQuat := func(axis linalg.Vector3, degrees float64) quat.Number {
		sin, cos := math.Sincos(DegreesToRadians(degrees) / 2)
		return quat.Number{Real: cos, Imag: axis.X * sin, Jmag: axis.Y * sin, Kmag: axis.Z * sin}
	}
	rotate := func(v linalg.Vector3, q quat.Number) linalg.Vector3 {
		p := quat.Mul(quat.Mul(q, quat.Number{Imag: v.X, Jmag: v.Y, Kmag: v.Z}), quat.Conj(q))
		return linalg.NewVector3(p.Imag, p.Jmag, p.Kmag)
	}

	rnd := rand.New(rand.NewSource(99))
	for i := 0; i < 200; i++ {
		v := linalg.NewVector3(rnd.Float64()+0.1, rnd.Float64()+0.1, rnd.Float64()+0.1)
		o := Orientation{
			Yaw:   rnd.Float64()*340 + 10,
			Pitch: -(rnd.Float64()*340 + 10),
			Roll:  rnd.Float64()*170 + 5,
		}

		q := quat.Mul(axisQuat(linalg.NewVector3(0, 0, 1), o.Yaw),
			quat.Mul(axisQuat(linalg.NewVector3(0, 1, 0), o.Pitch),
				axisQuat(linalg.NewVector3(1, 0, 0), o.Roll)))
		expected := rotate(v, q)

		sol := NewSolver().Solve(v, o)
		test.That(t, sol.Order, test.ShouldResemble, []AngleRole{Roll, Pitch, Yaw})
		if !sol.Vector.ApproxEqual(expected, 1e-9) {
			t.Fatalf("%+v on %v: got %v, want %v", o, v, sol.Vector, expected)
		}
		test.That(t, sol.Vector.Length(), test.ShouldAlmostEqual, v.Length(), 1e-9)
	}
}

func TestSolverLogging(t *testing.T) {
	var buf bytes.Buffer
	s := &Solver{Logger: log.New(&buf, "", 0)}

	s.Rotate(linalg.NewVector3(1, 0, 0), Orientation{Yaw: 90})
	test.That(t, buf.String(), test.ShouldContainSubstring, "rotate yaw by 90")
	test.That(t, buf.String(), test.ShouldContainSubstring, "applied order [roll pitch yaw]")

	buf.Reset()
	s.Rotate(linalg.NewVector3(0, 0, 1), Orientation{Yaw: 90})
	test.That(t, buf.String(), test.ShouldContainSubstring, "no rotation order")
}

func TestPermutationsOrder(t *testing.T) {
	perms := Permutations()
	test.That(t, perms, test.ShouldResemble, []Order{
		{Roll, Pitch, Yaw},
		{Roll, Yaw, Pitch},
		{Yaw, Roll, Pitch},
		{Yaw, Pitch, Roll},
		{Pitch, Roll, Yaw},
		{Pitch, Yaw, Roll},
	})

	// Callers get a copy
	perms[0] = Order{Yaw, Yaw, Yaw}
	test.That(t, Permutations()[0], test.ShouldResemble, Order{Roll, Pitch, Yaw})
}
