package overlay

import (
	"fmt"
	"image"
	"image/color"
	"strconv"

	"github.com/ayusman/mudra/internal/detector"
)

// Drawing constants matching the MediaPipe reference styling.
const (
	connectionThickness = 2
	markerRadius        = 5
	labelScale          = 0.3
	handednessScale     = 0.6
)

var (
	connectionColor = color.RGBA{G: 255}
	markerRing      = color.RGBA{R: 255, G: 255, B: 255}
	labelColor      = color.RGBA{R: 255, G: 255, B: 255}

	// One color per anatomical group: wrist, thumb, index, middle, ring, pinky.
	groupColors = [6]color.RGBA{
		{B: 255},         // wrist: blue
		{R: 255, G: 255}, // thumb: yellow
		{R: 255, B: 255}, // index: magenta
		{G: 255},         // middle: green
		{G: 255, B: 255}, // ring: cyan
		{R: 128, B: 128}, // pinky: purple
	}
)

// toPixels maps a normalized landmark onto the pixel grid of the frame being
// rendered. Normalized coordinates are resolution independent, so the live
// frame dimensions are the only scale factor.
func toPixels(p detector.Point3D, width, height int) image.Point {
	return image.Point{
		X: int(p.X*float64(width) + 0.5),
		Y: int(p.Y*float64(height) + 0.5),
	}
}

// groupColor returns the marker color for a landmark index.
func groupColor(index int) color.RGBA {
	switch {
	case index == detector.Wrist:
		return groupColors[0]
	case index <= detector.ThumbTip:
		return groupColors[1]
	case index <= detector.IndexTip:
		return groupColors[2]
	case index <= detector.MiddleTip:
		return groupColors[3]
	case index <= detector.RingTip:
		return groupColors[4]
	default:
		return groupColors[5]
	}
}

// Renderer draws detection results onto a canvas. It holds no per-frame
// state; the same renderer serves every frame.
type Renderer struct{}

// NewRenderer creates a Renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// Draw annotates the canvas with every hand in result, in result order.
// Connections and markers obey the view toggles; the handedness label is
// drawn whenever present. Hands with fewer landmarks than the topology
// expects degrade gracefully: affected edges and labels are skipped.
func (r *Renderer) Draw(c Canvas, width, height int, result detector.Result, view View) {
	for _, hand := range result.Hands {
		points := make([]image.Point, len(hand.Points))
		for i, p := range hand.Points {
			points[i] = toPixels(p, width, height)
		}

		if view.ShowConnections {
			r.drawConnections(c, points)
		}
		if view.ShowLandmarks {
			r.drawMarkers(c, points)
		}
		r.drawHandedness(c, hand, points)
	}
}

func (r *Renderer) drawConnections(c Canvas, points []image.Point) {
	for _, conn := range detector.Connections {
		start, end := conn[0], conn[1]
		if start >= len(points) || end >= len(points) {
			continue
		}
		c.Line(points[start], points[end], connectionColor, connectionThickness)
	}
}

func (r *Renderer) drawMarkers(c Canvas, points []image.Point) {
	for i, pt := range points {
		c.Circle(pt, markerRadius, groupColor(i), Filled)
		c.Circle(pt, markerRadius, markerRing, 1)

		labelOrg := image.Point{X: pt.X + 8, Y: pt.Y - 8}
		c.Text(strconv.Itoa(i), labelOrg, labelScale, labelColor, 1)
	}
}

func (r *Renderer) drawHandedness(c Canvas, hand detector.Hand, points []image.Point) {
	if hand.Handedness == "" || len(points) <= detector.Wrist {
		return
	}

	wrist := points[detector.Wrist]
	text := fmt.Sprintf("%s (%.2f)", hand.Handedness, hand.Score)
	org := image.Point{X: wrist.X - 50, Y: wrist.Y - 20}
	c.Text(text, org, handednessScale, labelColor, 2)
}
