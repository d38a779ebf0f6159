// Package format renders vectors, matrices and angles as text. The math
// packages carry no printing of their own.
package format

import (
	"fmt"
	"strconv"
	"strings"

	"gimbalaim/pkg/aim"
	"gimbalaim/pkg/linalg"
	"gimbalaim/pkg/rotation"
)

// Precision is the number of decimals used for every value
const Precision = 4

func num(v float64) string {
	s := strconv.FormatFloat(v, 'f', Precision, 64)
	// Avoid printing "-0.0000" for float noise around zero
	if strings.Trim(s, "-0.") == "" {
		return strconv.FormatFloat(0, 'f', Precision, 64)
	}
	return s
}

// Vector renders v as "(x, y, z)"
func Vector(v linalg.Vector3) string {
	return "(" + num(v.X) + ", " + num(v.Y) + ", " + num(v.Z) + ")"
}

// Matrix renders m one row per line
func Matrix(m linalg.Matrix3) string {
	var b strings.Builder
	for i := 0; i < 3; i++ {
		b.WriteString(Vector(m.Row(i)))
		b.WriteByte('\n')
	}
	return b.String()
}

// Orientation renders yaw, pitch and roll in degrees
func Orientation(o rotation.Orientation) string {
	return fmt.Sprintf("yaw: %s, pitch: %s, roll: %s", num(o.Yaw), num(o.Pitch), num(o.Roll))
}

// Camera renders the gimbal offset in degrees
func Camera(c aim.CameraAngles) string {
	return fmt.Sprintf("yaw: %s, pitch: %s", num(c.Yaw), num(c.Pitch))
}

// Order renders a rotation order as "roll -> pitch -> yaw"
func Order(order []rotation.AngleRole) string {
	if len(order) == 0 {
		return "none"
	}
	parts := make([]string, len(order))
	for i, role := range order {
		parts[i] = role.String()
	}
	return strings.Join(parts, " -> ")
}

// Result renders one projection result on a single line
func Result(r aim.Result) string {
	name := r.Job.Name
	if name == "" {
		name = "-"
	}
	s := fmt.Sprintf("%s: point %s direction %s [%s | camera %s]",
		name, Vector(r.Point), Vector(r.Direction), Orientation(r.Job.Orientation), Camera(r.Job.Camera))
	if !r.Found {
		s += " (no usable rotation order, reference direction kept)"
	}
	return s
}
