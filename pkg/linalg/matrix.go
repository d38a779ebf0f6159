package linalg

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"
)

// ErrShape is returned when a dynamically sized matrix is not exactly 3x3.
var ErrShape = errors.New("matrix must be 3x3")

// Matrix3 is a 3x3 matrix. Storage is column-major (mgl64 layout); the
// accessors below are row-major.
type Matrix3 mgl64.Mat3

// Identity returns the 3x3 identity matrix
func Identity() Matrix3 {
	return Matrix3(mgl64.Ident3())
}

// MatrixFromRows builds a matrix from its three rows
func MatrixFromRows(row0, row1, row2 Vector3) Matrix3 {
	return Matrix3(mgl64.Mat3FromRows(row0.vec(), row1.vec(), row2.vec()))
}

// MatrixFromSlice builds a matrix from row-major nested slices, e.g. a
// matrix decoded from JSON. Anything other than three rows of three values
// fails with ErrShape.
func MatrixFromSlice(rows [][]float64) (Matrix3, error) {
	if len(rows) != 3 {
		return Matrix3{}, errors.Wrapf(ErrShape, "got %d rows", len(rows))
	}
	var r [3]Vector3
	for i, row := range rows {
		if len(row) != 3 {
			return Matrix3{}, errors.Wrapf(ErrShape, "row %d has %d columns", i, len(row))
		}
		r[i] = Vector3{row[0], row[1], row[2]}
	}
	return MatrixFromRows(r[0], r[1], r[2]), nil
}

// At returns the element at the given row and column
func (m Matrix3) At(row, col int) float64 {
	return mgl64.Mat3(m).At(row, col)
}

// Row returns row i as a vector
func (m Matrix3) Row(i int) Vector3 {
	return fromVec(mgl64.Mat3(m).Row(i))
}

// Rows returns the matrix as row-major nested slices
func (m Matrix3) Rows() [][]float64 {
	rows := make([][]float64, 3)
	for i := range rows {
		r := m.Row(i)
		rows[i] = []float64{r.X, r.Y, r.Z}
	}
	return rows
}

// MulVec returns the product m * v
func (m Matrix3) MulVec(v Vector3) Vector3 {
	return fromVec(mgl64.Mat3(m).Mul3x1(v.vec()))
}

// Mul returns the product m * other
func (m Matrix3) Mul(other Matrix3) Matrix3 {
	return Matrix3(mgl64.Mat3(m).Mul3(mgl64.Mat3(other)))
}

// Transpose returns the transpose of m
func (m Matrix3) Transpose() Matrix3 {
	return Matrix3(mgl64.Mat3(m).Transpose())
}

// Det returns the determinant of m
func (m Matrix3) Det() float64 {
	return mgl64.Mat3(m).Det()
}

// ApproxEqual reports whether every element of m is within tol of other.
func (m Matrix3) ApproxEqual(other Matrix3, tol float64) bool {
	return floats.EqualApprox(m[:], other[:], tol)
}

// IsRotation reports whether m is orthonormal with determinant +1 within tol.
func (m Matrix3) IsRotation(tol float64) bool {
	if !m.Mul(m.Transpose()).ApproxEqual(Identity(), tol) {
		return false
	}
	return scalar.EqualWithinAbs(m.Det(), 1, tol)
}
