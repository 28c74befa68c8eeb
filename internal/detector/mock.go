package detector

import (
	"sync"

	"gocv.io/x/gocv"
)

// MockLandmarker is a test implementation of the Landmarker interface.
// Tests drive completions by hand via Complete, which lets them exercise
// out-of-order and late-arrival scenarios deterministically.
type MockLandmarker struct {
	mu         sync.Mutex
	onResult   ResultFunc
	started    bool
	submitted  []int64
	closeCalls int
}

// NewMockLandmarker creates a new MockLandmarker instance.
func NewMockLandmarker() *MockLandmarker {
	return &MockLandmarker{}
}

// Start records the result callback.
func (m *MockLandmarker) Start(onResult ResultFunc) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.onResult = onResult
	m.started = true
	return nil
}

// Submit records the submission timestamp. Frames are not inspected.
func (m *MockLandmarker) Submit(frame *gocv.Mat, timestampMs int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.started {
		return
	}
	m.submitted = append(m.submitted, timestampMs)
}

// Complete simulates the service finishing a detection.
func (m *MockLandmarker) Complete(hands []Hand, timestampMs int64) {
	m.mu.Lock()
	fn := m.onResult
	m.mu.Unlock()
	if fn != nil {
		fn(Result{Hands: hands, TimestampMs: timestampMs})
	}
}

// Submitted returns the timestamps of all recorded submissions.
func (m *MockLandmarker) Submitted() []int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]int64, len(m.submitted))
	copy(out, m.submitted)
	return out
}

// Close records the call and is otherwise a no-op.
func (m *MockLandmarker) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closeCalls++
	m.started = false
	return nil
}

// CloseCalls reports how many times Close was called.
func (m *MockLandmarker) CloseCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.closeCalls
}

// OpenPalmHand returns a preset Hand with all 21 landmarks in a plausible
// open-palm arrangement, in normalized coordinates.
func OpenPalmHand() Hand {
	hand := Hand{
		Points:     make([]Point3D, NumLandmarks),
		Handedness: "Right",
		Score:      0.95,
	}

	// Wrist at base
	hand.Points[Wrist] = Point3D{X: 0.5, Y: 0.8, Z: 0.0}

	// Thumb extended to the side
	hand.Points[ThumbCMC] = Point3D{X: 0.55, Y: 0.75, Z: 0.02}
	hand.Points[ThumbMCP] = Point3D{X: 0.62, Y: 0.70, Z: 0.03}
	hand.Points[ThumbIP] = Point3D{X: 0.68, Y: 0.65, Z: 0.03}
	hand.Points[ThumbTip] = Point3D{X: 0.73, Y: 0.60, Z: 0.03}

	// Index finger extended upward
	hand.Points[IndexMCP] = Point3D{X: 0.55, Y: 0.68, Z: 0.0}
	hand.Points[IndexPIP] = Point3D{X: 0.57, Y: 0.55, Z: 0.0}
	hand.Points[IndexDIP] = Point3D{X: 0.58, Y: 0.45, Z: 0.0}
	hand.Points[IndexTip] = Point3D{X: 0.58, Y: 0.35, Z: 0.0}

	// Middle finger extended upward (slightly longer)
	hand.Points[MiddleMCP] = Point3D{X: 0.50, Y: 0.66, Z: 0.0}
	hand.Points[MiddlePIP] = Point3D{X: 0.50, Y: 0.52, Z: 0.0}
	hand.Points[MiddleDIP] = Point3D{X: 0.50, Y: 0.40, Z: 0.0}
	hand.Points[MiddleTip] = Point3D{X: 0.50, Y: 0.28, Z: 0.0}

	// Ring finger extended upward
	hand.Points[RingMCP] = Point3D{X: 0.45, Y: 0.68, Z: 0.0}
	hand.Points[RingPIP] = Point3D{X: 0.43, Y: 0.55, Z: 0.0}
	hand.Points[RingDIP] = Point3D{X: 0.42, Y: 0.45, Z: 0.0}
	hand.Points[RingTip] = Point3D{X: 0.42, Y: 0.35, Z: 0.0}

	// Pinky extended upward
	hand.Points[PinkyMCP] = Point3D{X: 0.40, Y: 0.70, Z: 0.0}
	hand.Points[PinkyPIP] = Point3D{X: 0.37, Y: 0.60, Z: 0.0}
	hand.Points[PinkyDIP] = Point3D{X: 0.35, Y: 0.50, Z: 0.0}
	hand.Points[PinkyTip] = Point3D{X: 0.34, Y: 0.42, Z: 0.0}

	return hand
}
