// Package detector provides asynchronous hand landmark detection for the Mudra viewer.
package detector

// Hand landmark indices following MediaPipe convention.
// See: https://developers.google.com/mediapipe/solutions/vision/hand_landmarker
const (
	Wrist        = 0
	ThumbCMC     = 1
	ThumbMCP     = 2
	ThumbIP      = 3
	ThumbTip     = 4
	IndexMCP     = 5
	IndexPIP     = 6
	IndexDIP     = 7
	IndexTip     = 8
	MiddleMCP    = 9
	MiddlePIP    = 10
	MiddleDIP    = 11
	MiddleTip    = 12
	RingMCP      = 13
	RingPIP      = 14
	RingDIP      = 15
	RingTip      = 16
	PinkyMCP     = 17
	PinkyPIP     = 18
	PinkyDIP     = 19
	PinkyTip     = 20
	NumLandmarks = 21
)

// Connections lists the landmark index pairs forming the hand skeleton:
// one chain per finger rooted at the wrist, plus the palm cross-links.
var Connections = [][2]int{
	// Thumb
	{Wrist, ThumbCMC}, {ThumbCMC, ThumbMCP}, {ThumbMCP, ThumbIP}, {ThumbIP, ThumbTip},
	// Index finger
	{Wrist, IndexMCP}, {IndexMCP, IndexPIP}, {IndexPIP, IndexDIP}, {IndexDIP, IndexTip},
	// Middle finger
	{Wrist, MiddleMCP}, {MiddleMCP, MiddlePIP}, {MiddlePIP, MiddleDIP}, {MiddleDIP, MiddleTip},
	// Ring finger
	{Wrist, RingMCP}, {RingMCP, RingPIP}, {RingPIP, RingDIP}, {RingDIP, RingTip},
	// Pinky
	{Wrist, PinkyMCP}, {PinkyMCP, PinkyPIP}, {PinkyPIP, PinkyDIP}, {PinkyDIP, PinkyTip},
	// Palm
	{IndexMCP, MiddleMCP}, {MiddleMCP, RingMCP}, {RingMCP, PinkyMCP},
}

// Point3D represents a normalized landmark position. X and Y are in [0,1]
// relative to the frame; Z is relative depth with the wrist as reference.
type Point3D struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Hand holds the landmarks detected for a single hand together with its
// handedness classification. A well-formed hand has NumLandmarks points;
// consumers must tolerate short slices from a misbehaving service.
type Hand struct {
	Points     []Point3D `json:"points"`
	Handedness string    `json:"handedness"` // "Left" or "Right"
	Score      float64   `json:"score"`
}

// Result is one completed detection: every hand found in the frame that was
// submitted at TimestampMs. Results are immutable once received.
type Result struct {
	Hands       []Hand `json:"hands"`
	TimestampMs int64  `json:"timestamp_ms"`
}
