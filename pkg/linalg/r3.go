package linalg

import "github.com/golang/geo/r3"

// FromR3 converts an r3.Vector into a Vector3
func FromR3(v r3.Vector) Vector3 {
	return Vector3{v.X, v.Y, v.Z}
}

// R3 converts v into an r3.Vector for use with geometry packages built on
// golang/geo.
func (v Vector3) R3() r3.Vector {
	return r3.Vector{X: v.X, Y: v.Y, Z: v.Z}
}
