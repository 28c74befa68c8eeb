// Package capture provides camera capture functionality using GoCV (OpenCV).
package capture

import (
	"errors"
	"fmt"
	"sync"

	"gocv.io/x/gocv"
)

// Default camera settings. Low resolution keeps per-frame detection latency
// down; the high FPS cap and single-frame buffer keep display latency low.
const (
	DefaultWidth   = 640
	DefaultHeight  = 480
	DefaultFPS     = 60
	DefaultBuffers = 1
)

// ErrCameraNotOpen is returned when trying to read from a camera that is not open.
var ErrCameraNotOpen = errors.New("camera is not open")

// Camera defines the interface for camera capture implementations.
type Camera interface {
	Open() error
	Close() error
	ReadFrame() (*gocv.Mat, error)
	IsOpen() bool
}

// cameraImpl manages video capture from a camera device using GoCV.
type cameraImpl struct {
	deviceID int
	capture  *gocv.VideoCapture
	mu       sync.Mutex
	running  bool
}

// NewCamera creates a new Camera with the given device ID.
func NewCamera(deviceID int) Camera {
	return &cameraImpl{
		deviceID: deviceID,
	}
}

// Probe tries successive device IDs starting at first and returns an opened
// Camera for the first device that yields a readable frame. Each candidate
// must actually produce a frame; merely opening is not enough on platforms
// where dead device nodes still open.
func Probe(first, maxAttempts int) (Camera, error) {
	for id := first; id < first+maxAttempts; id++ {
		cam := NewCamera(id)
		if err := cam.Open(); err != nil {
			continue
		}

		frame, err := cam.ReadFrame()
		if err != nil {
			cam.Close()
			continue
		}
		frame.Close()

		return cam, nil
	}
	return nil, fmt.Errorf("no usable camera in device range %d-%d", first, first+maxAttempts-1)
}

// Open opens the camera for capturing frames and applies the capture
// properties (640x480, 60fps, single-frame buffer).
func (c *cameraImpl) Open() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.running {
		return nil
	}

	capture, err := gocv.OpenVideoCapture(c.deviceID)
	if err != nil {
		return err
	}

	capture.Set(gocv.VideoCaptureFrameWidth, DefaultWidth)
	capture.Set(gocv.VideoCaptureFrameHeight, DefaultHeight)
	capture.Set(gocv.VideoCaptureFPS, DefaultFPS)
	capture.Set(gocv.VideoCaptureBufferSize, DefaultBuffers)

	c.capture = capture
	c.running = true

	return nil
}

// Close closes the camera and releases resources.
func (c *cameraImpl) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.running || c.capture == nil {
		c.running = false
		return nil
	}

	err := c.capture.Close()
	c.capture = nil
	c.running = false

	return err
}

// ReadFrame reads a single frame from the camera.
// The caller is responsible for closing the returned Mat.
func (c *cameraImpl) ReadFrame() (*gocv.Mat, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.running || c.capture == nil {
		return nil, ErrCameraNotOpen
	}

	mat := gocv.NewMat()
	if ok := c.capture.Read(&mat); !ok {
		mat.Close()
		return nil, errors.New("failed to read frame from camera")
	}

	if mat.Empty() {
		mat.Close()
		return nil, errors.New("captured frame is empty")
	}

	return &mat, nil
}

// IsOpen returns true if the camera is currently open and running.
func (c *cameraImpl) IsOpen() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.running
}

// Mirror flips the frame horizontally in place, giving the selfie-view
// orientation users expect from a webcam feed.
func Mirror(frame *gocv.Mat) {
	gocv.Flip(*frame, frame, 1)
}
