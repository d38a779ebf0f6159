// Package raster draws a wireframe preview of an aim solution into an image
// without needing a GPU.
package raster

import (
	"image"
	"image/color"
	"math"
)

// DrawLine draws a line on the image from (x1, y1) to (x2, y2) by stepping
// along the major axis. The segment is clipped to the image first, so the
// work is bounded by the image size however far away the endpoints are.
func DrawLine(img *image.RGBA, x1, y1, x2, y2 int, col color.RGBA) {
	fx1, fy1, fx2, fy2, ok := clipLine(img.Bounds(), float64(x1), float64(y1), float64(x2), float64(y2))
	if !ok {
		return
	}

	dx := fx2 - fx1
	dy := fy2 - fy1
	steps := math.Ceil(math.Max(math.Abs(dx), math.Abs(dy)))
	if steps == 0 {
		setPixel(img, int(math.Round(fx1)), int(math.Round(fy1)), col)
		return
	}

	xInc := dx / steps
	yInc := dy / steps

	x := fx1
	y := fy1

	for i := 0; i <= int(steps); i++ {
		setPixel(img, int(math.Round(x)), int(math.Round(y)), col)
		x += xInc
		y += yInc
	}
}

// clipLine clips the segment to the pixel centres of r (Liang-Barsky).
// ok is false when no part of the segment is inside.
func clipLine(r image.Rectangle, x1, y1, x2, y2 float64) (cx1, cy1, cx2, cy2 float64, ok bool) {
	if r.Empty() {
		return 0, 0, 0, 0, false
	}
	minX, maxX := float64(r.Min.X), float64(r.Max.X-1)
	minY, maxY := float64(r.Min.Y), float64(r.Max.Y-1)

	dx := x2 - x1
	dy := y2 - y1
	t0, t1 := 0.0, 1.0

	// Each edge as p*t <= q
	edges := [4][2]float64{
		{-dx, x1 - minX},
		{dx, maxX - x1},
		{-dy, y1 - minY},
		{dy, maxY - y1},
	}
	for _, e := range edges {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return 0, 0, 0, 0, false
			}
			continue
		}
		t := q / p
		if p < 0 {
			if t > t1 {
				return 0, 0, 0, 0, false
			}
			t0 = math.Max(t0, t)
		} else {
			if t < t0 {
				return 0, 0, 0, 0, false
			}
			t1 = math.Min(t1, t)
		}
	}
	return x1 + t0*dx, y1 + t0*dy, x1 + t1*dx, y1 + t1*dy, true
}

// DrawCross draws a small "+" marker centred on (x, y)
func DrawCross(img *image.RGBA, x, y, size int, col color.RGBA) {
	DrawLine(img, x-size, y, x+size, y, col)
	DrawLine(img, x, y-size, x, y+size, col)
}

// Fill paints the whole image with col
func Fill(img *image.RGBA, col color.RGBA) {
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i] = col.R
		img.Pix[i+1] = col.G
		img.Pix[i+2] = col.B
		img.Pix[i+3] = col.A
	}
}

func setPixel(img *image.RGBA, x, y int, col color.RGBA) {
	if !(image.Point{x, y}.In(img.Bounds())) {
		return
	}
	offset := img.PixOffset(x, y)
	img.Pix[offset] = col.R
	img.Pix[offset+1] = col.G
	img.Pix[offset+2] = col.B
	img.Pix[offset+3] = col.A
}
