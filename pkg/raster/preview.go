package raster

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	"github.com/pkg/errors"

	"gimbalaim/pkg/linalg"
)

var (
	Background = color.RGBA{25, 25, 25, 255}
	AxisXColor = color.RGBA{220, 60, 60, 255}
	AxisYColor = color.RGBA{60, 200, 60, 255}
	AxisZColor = color.RGBA{70, 110, 230, 255}
	SightColor = color.RGBA{255, 255, 0, 255} // Yellow
	FrameColor = color.RGBA{160, 160, 160, 255}
)

// Scene is what a preview shows: the platform position, the point being
// looked at and the platform's heading.
type Scene struct {
	Position linalg.Vector3
	Target   linalg.Vector3
	// Heading is the platform's forward direction, drawn as a short line
	Heading linalg.Vector3
}

// Fit returns view scaled so the whole scene fits in the frame
func Fit(s Scene, view View) View {
	extent := 1.0
	for _, p := range []linalg.Vector3{s.Position, s.Target} {
		extent = math.Max(extent, p.Length())
	}
	view.Scale = 1 / extent
	return view
}

// Render draws the scene: world axes at the origin, a unit box around the
// platform, its heading and the sight line to the target with a marker.
func Render(s Scene, view View) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, view.Width, view.Height))
	Fill(img, Background)

	line := func(a, b linalg.Vector3, col color.RGBA) {
		x1, y1, ok1 := view.Project(a)
		x2, y2, ok2 := view.Project(b)
		if ok1 && ok2 {
			DrawLine(img, x1, y1, x2, y2, col)
		}
	}

	axisLength := 1 / view.Scale * 0.5
	origin := linalg.Vector3{}
	line(origin, linalg.NewVector3(axisLength, 0, 0), AxisXColor)
	line(origin, linalg.NewVector3(0, axisLength, 0), AxisYColor)
	line(origin, linalg.NewVector3(0, 0, axisLength), AxisZColor)

	half := axisLength * 0.05
	for _, e := range boxEdges {
		a := s.Position.Add(boxCorners[e[0]].Multiply(half))
		b := s.Position.Add(boxCorners[e[1]].Multiply(half))
		line(a, b, FrameColor)
	}
	line(s.Position, s.Position.Add(s.Heading.Normalize().Multiply(axisLength*0.3)), FrameColor)

	line(s.Position, s.Target, SightColor)
	if x, y, ok := view.Project(s.Target); ok {
		DrawCross(img, x, y, 4, SightColor)
	}
	return img
}

// WritePNG encodes img as PNG
func WritePNG(w io.Writer, img image.Image) error {
	return errors.Wrap(png.Encode(w, img), "encoding preview")
}

// Corners of a cube with half-size 1 and the indices of its edges.
var (
	boxCorners = [8]linalg.Vector3{
		{X: -1, Y: -1, Z: 1}, {X: 1, Y: -1, Z: 1}, {X: 1, Y: 1, Z: 1}, {X: -1, Y: 1, Z: 1},
		{X: -1, Y: -1, Z: -1}, {X: 1, Y: -1, Z: -1}, {X: 1, Y: 1, Z: -1}, {X: -1, Y: 1, Z: -1},
	}
	boxEdges = [12][2]int{
		{0, 1}, {1, 2}, {2, 3}, {3, 0},
		{4, 5}, {5, 6}, {6, 7}, {7, 4},
		{0, 4}, {1, 5}, {2, 6}, {3, 7},
	}
)
