package detector

import "gocv.io/x/gocv"

// Landmarker defines the interface for asynchronous hand landmark detection.
// Submissions are fire-and-forget: results arrive later through the ResultFunc
// the implementation was started with, tagged with the submission timestamp.
type Landmarker interface {
	// Start launches the underlying detection service and begins delivering
	// completions to onResult. onResult may be invoked from an internal
	// goroutine and must not block for long.
	Start(onResult ResultFunc) error

	// Submit sends a frame for detection and returns immediately. The frame
	// is tagged with timestampMs, which must be strictly increasing across
	// submissions. If the service is not started or is still busy with a
	// prior frame, the submission is dropped.
	Submit(frame *gocv.Mat, timestampMs int64)

	// Close releases any resources held by the landmarker.
	Close() error
}

// ResultFunc receives completed detections from a Landmarker.
type ResultFunc func(Result)

// Config holds configuration options for hand detection.
type Config struct {
	// MaxHands is the maximum number of hands to detect (default: 2).
	MaxHands int

	// MinDetectionConf is the minimum hand detection confidence (0.0-1.0).
	MinDetectionConf float64

	// MinPresenceConf is the minimum hand presence confidence (0.0-1.0).
	MinPresenceConf float64

	// MinTrackingConf is the minimum tracking confidence (0.0-1.0).
	MinTrackingConf float64
}

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() Config {
	return Config{
		MaxHands:         2,
		MinDetectionConf: 0.5,
		MinPresenceConf:  0.5,
		MinTrackingConf:  0.5,
	}
}
