// Package server provides the optional HTTP preview surface for the Mudra viewer.
package server

import (
	"sync"

	"gocv.io/x/gocv"
)

// FrameFeed is a single-slot holder of the most recent annotated frame,
// already encoded as JPEG. The frame loop overwrites it once per tick;
// stream clients read whatever is newest. A slow client therefore skips
// frames instead of backing up the capture loop.
type FrameFeed struct {
	mu   sync.RWMutex
	jpeg []byte
	seq  uint64
}

// NewFrameFeed creates an empty feed.
func NewFrameFeed() *FrameFeed {
	return &FrameFeed{}
}

// Publish encodes the frame as JPEG and installs it as the latest. Encoding
// failures drop the frame; the previous one stays current.
func (f *FrameFeed) Publish(frame *gocv.Mat) {
	buf, err := gocv.IMEncode(".jpg", *frame)
	if err != nil {
		return
	}
	defer buf.Close()

	data := make([]byte, buf.Len())
	copy(data, buf.GetBytes())

	f.mu.Lock()
	f.jpeg = data
	f.seq++
	f.mu.Unlock()
}

// Latest returns the newest JPEG and its sequence number, or nil and zero if
// nothing has been published yet. The returned slice is never mutated
// afterwards.
func (f *FrameFeed) Latest() ([]byte, uint64) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.jpeg, f.seq
}
