package server

import (
	"fmt"
	"net/http"
	"time"
)

// streamInterval paces MJPEG delivery at roughly 15 frames per second.
const streamInterval = 66 * time.Millisecond

// StreamHandler serves the annotated frame feed as an MJPEG stream.
type StreamHandler struct {
	feed *FrameFeed
}

// NewStreamHandler creates a new StreamHandler reading from the given feed.
func NewStreamHandler(feed *FrameFeed) *StreamHandler {
	return &StreamHandler{feed: feed}
}

// ServeHTTP streams MJPEG frames to connected clients until they disconnect.
func (h *StreamHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	w.Header().Set("Content-Type", "multipart/x-mixed-replace; boundary=frame")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	var lastSeq uint64
	for {
		select {
		case <-r.Context().Done():
			return
		default:
		}

		data, seq := h.feed.Latest()
		if data == nil || seq == lastSeq {
			time.Sleep(streamInterval)
			continue
		}
		lastSeq = seq

		fmt.Fprintf(w, "--frame\r\n")
		fmt.Fprintf(w, "Content-Type: image/jpeg\r\n")
		fmt.Fprintf(w, "Content-Length: %d\r\n\r\n", len(data))
		if _, err := w.Write(data); err != nil {
			return
		}
		fmt.Fprintf(w, "\r\n")

		if f, ok := w.(http.Flusher); ok {
			f.Flush()
		}

		time.Sleep(streamInterval)
	}
}
