package server

import (
	"testing"

	"gocv.io/x/gocv"
)

func TestFrameFeed(t *testing.T) {
	t.Run("empty feed has no frame", func(t *testing.T) {
		feed := NewFrameFeed()

		data, seq := feed.Latest()
		if data != nil || seq != 0 {
			t.Errorf("Latest() = %d bytes seq %d, want nil and 0", len(data), seq)
		}
	})

	t.Run("publish overwrites", func(t *testing.T) {
		feed := NewFrameFeed()

		frame := gocv.NewMatWithSize(48, 64, gocv.MatTypeCV8UC3)
		defer frame.Close()

		feed.Publish(&frame)
		first, seq1 := feed.Latest()
		if first == nil || seq1 != 1 {
			t.Fatalf("Latest() after publish = %d bytes seq %d", len(first), seq1)
		}

		feed.Publish(&frame)
		_, seq2 := feed.Latest()
		if seq2 != 2 {
			t.Errorf("seq after second publish = %d, want 2", seq2)
		}
	})

	t.Run("latest is valid JPEG", func(t *testing.T) {
		feed := NewFrameFeed()

		frame := gocv.NewMatWithSize(48, 64, gocv.MatTypeCV8UC3)
		defer frame.Close()
		feed.Publish(&frame)

		data, _ := feed.Latest()
		if len(data) < 2 || data[0] != 0xff || data[1] != 0xd8 {
			t.Error("published frame is not a JPEG")
		}
	})
}
