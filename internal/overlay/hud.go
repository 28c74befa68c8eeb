package overlay

import (
	"fmt"
	"image"
	"image/color"
)

// HUD styling constants.
const (
	hudScale     = 0.7
	pausedScale  = 0.8
	helpScale    = 0.4
	hudThickness = 2
)

var (
	hudColor    = color.RGBA{G: 255}
	pausedColor = color.RGBA{R: 255}
	helpColor   = color.RGBA{R: 255, G: 255, B: 255}

	helpLines = []string{
		"SPACE: Pause | S: Save | C: Connections",
		"L: Landmarks | Q/ESC: Quit",
	}
)

// HUD draws the fixed status overlay: FPS, hand count, title, the paused
// indicator, and the key bindings. It is drawn on every frame regardless of
// the paused state so the status stays live while detection is frozen.
type HUD struct {
	Title string
}

// NewHUD creates a HUD with the given static title line.
func NewHUD(title string) *HUD {
	return &HUD{Title: title}
}

// Draw renders the status overlay onto the canvas.
func (h *HUD) Draw(c Canvas, width, height int, fps float64, handCount int, paused bool) {
	c.Text(fmt.Sprintf("FPS: %.1f", fps), image.Point{X: 10, Y: 30}, hudScale, hudColor, hudThickness)
	c.Text(fmt.Sprintf("Hands: %d", handCount), image.Point{X: 10, Y: 60}, hudScale, hudColor, hudThickness)
	c.Text(h.Title, image.Point{X: 10, Y: 90}, hudScale, hudColor, hudThickness)

	if paused {
		c.Text("PAUSED", image.Point{X: width - 150, Y: 30}, pausedScale, pausedColor, hudThickness)
	}

	for i, line := range helpLines {
		org := image.Point{X: 10, Y: height - 40 + i*20}
		c.Text(line, org, helpScale, helpColor, 1)
	}
}
