// Package overlay draws hand landmark annotations and the status HUD onto
// captured frames.
package overlay

import (
	"image"
	"image/color"

	"gocv.io/x/gocv"
)

// Filled is the thickness value that requests a filled shape.
const Filled = -1

// Canvas is the drawing surface the renderer targets. Keeping it an
// interface lets tests verify exactly which primitives were emitted without
// touching OpenCV.
type Canvas interface {
	Line(from, to image.Point, c color.RGBA, thickness int)
	Circle(center image.Point, radius int, c color.RGBA, thickness int)
	Text(text string, org image.Point, scale float64, c color.RGBA, thickness int)
}

// MatCanvas implements Canvas on top of a gocv.Mat.
type MatCanvas struct {
	Mat *gocv.Mat
}

// NewMatCanvas wraps a frame for drawing.
func NewMatCanvas(mat *gocv.Mat) *MatCanvas {
	return &MatCanvas{Mat: mat}
}

func (m *MatCanvas) Line(from, to image.Point, c color.RGBA, thickness int) {
	gocv.Line(m.Mat, from, to, c, thickness)
}

func (m *MatCanvas) Circle(center image.Point, radius int, c color.RGBA, thickness int) {
	gocv.Circle(m.Mat, center, radius, c, thickness)
}

func (m *MatCanvas) Text(text string, org image.Point, scale float64, c color.RGBA, thickness int) {
	gocv.PutText(m.Mat, text, org, gocv.FontHersheySimplex, scale, c, thickness)
}
