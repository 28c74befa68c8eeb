package overlay

import (
	"image"
	"image/color"
)

// LineOp records one Line call on a RecordingCanvas.
type LineOp struct {
	From, To  image.Point
	Color     color.RGBA
	Thickness int
}

// CircleOp records one Circle call on a RecordingCanvas.
type CircleOp struct {
	Center    image.Point
	Radius    int
	Color     color.RGBA
	Thickness int
}

// TextOp records one Text call on a RecordingCanvas.
type TextOp struct {
	Text      string
	Org       image.Point
	Scale     float64
	Color     color.RGBA
	Thickness int
}

// RecordingCanvas is a test implementation of Canvas that records every
// primitive instead of rasterizing it.
type RecordingCanvas struct {
	Lines   []LineOp
	Circles []CircleOp
	Texts   []TextOp
}

// NewRecordingCanvas creates an empty RecordingCanvas.
func NewRecordingCanvas() *RecordingCanvas {
	return &RecordingCanvas{}
}

func (r *RecordingCanvas) Line(from, to image.Point, c color.RGBA, thickness int) {
	r.Lines = append(r.Lines, LineOp{From: from, To: to, Color: c, Thickness: thickness})
}

func (r *RecordingCanvas) Circle(center image.Point, radius int, c color.RGBA, thickness int) {
	r.Circles = append(r.Circles, CircleOp{Center: center, Radius: radius, Color: c, Thickness: thickness})
}

func (r *RecordingCanvas) Text(text string, org image.Point, scale float64, c color.RGBA, thickness int) {
	r.Texts = append(r.Texts, TextOp{Text: text, Org: org, Scale: scale, Color: c, Thickness: thickness})
}

// FilledCircles returns only the filled marker circles, excluding outlines.
func (r *RecordingCanvas) FilledCircles() []CircleOp {
	var filled []CircleOp
	for _, op := range r.Circles {
		if op.Thickness == Filled {
			filled = append(filled, op)
		}
	}
	return filled
}

// Reset clears all recorded operations.
func (r *RecordingCanvas) Reset() {
	r.Lines = nil
	r.Circles = nil
	r.Texts = nil
}
