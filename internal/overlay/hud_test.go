package overlay

import (
	"strings"
	"testing"
)

func hudTexts(c *RecordingCanvas) []string {
	var out []string
	for _, op := range c.Texts {
		out = append(out, op.Text)
	}
	return out
}

func TestHUD_Draw(t *testing.T) {
	h := NewHUD("MediaPipe Hand Landmarker")

	t.Run("running state", func(t *testing.T) {
		c := NewRecordingCanvas()

		h.Draw(c, 640, 480, 29.7, 2, false)

		texts := hudTexts(c)
		joined := strings.Join(texts, "\n")

		for _, want := range []string{"FPS: 29.7", "Hands: 2", "MediaPipe Hand Landmarker"} {
			if !strings.Contains(joined, want) {
				t.Errorf("HUD missing %q in %v", want, texts)
			}
		}
		if strings.Contains(joined, "PAUSED") {
			t.Error("PAUSED indicator drawn while running")
		}
	})

	t.Run("paused indicator", func(t *testing.T) {
		c := NewRecordingCanvas()

		h.Draw(c, 640, 480, 0, 0, true)

		found := false
		for _, op := range c.Texts {
			if op.Text == "PAUSED" {
				found = true
				if op.Org.X != 640-150 || op.Org.Y != 30 {
					t.Errorf("PAUSED org = %v, want (490,30)", op.Org)
				}
			}
		}
		if !found {
			t.Error("PAUSED indicator not drawn")
		}
	})

	t.Run("zero hands reads 0", func(t *testing.T) {
		c := NewRecordingCanvas()

		h.Draw(c, 640, 480, 15, 0, false)

		if !strings.Contains(strings.Join(hudTexts(c), "\n"), "Hands: 0") {
			t.Error("hand count should read 0 when no result published")
		}
	})

	t.Run("key help always present", func(t *testing.T) {
		c := NewRecordingCanvas()

		h.Draw(c, 640, 480, 15, 0, false)

		joined := strings.Join(hudTexts(c), "\n")
		if !strings.Contains(joined, "SPACE") || !strings.Contains(joined, "Q/ESC") {
			t.Error("key help lines missing")
		}
	})
}
