package detector

import (
	"bufio"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"sync"
	"sync/atomic"

	"gocv.io/x/gocv"
)

// MediaPipeLandmarker implements Landmarker using a Python MediaPipe service
// subprocess running the hand landmarker in live-stream mode.
//
// Wire protocol: each submission is a 12-byte header (8-byte big-endian
// timestamp in milliseconds, 4-byte big-endian payload length) followed by a
// JPEG payload on stdin. The service answers one JSON line per submission on
// stdout, echoing the timestamp. Completions are read by a dedicated goroutine
// and handed to the ResultFunc, so Submit never waits for inference.
//
// At most one submission is in flight. Submit drops the frame when the
// service is still processing the previous one; under load the viewer skips
// frames rather than building a latency queue.
type MediaPipeLandmarker struct {
	config   Config
	onResult ResultFunc

	cmd    *exec.Cmd
	stdin  io.WriteCloser
	stdout *bufio.Reader

	writeMu sync.Mutex // serializes stdin writes
	mu      sync.Mutex // guards lifecycle state

	started  atomic.Bool
	inFlight atomic.Bool
	dropped  atomic.Uint64

	readerDone chan struct{}
}

// NewMediaPipeLandmarker creates a landmarker. The service process is not
// launched until Start is called; Submit before Start is a no-op.
func NewMediaPipeLandmarker(config Config) (*MediaPipeLandmarker, error) {
	if findLandmarkerScript() == "" {
		return nil, fmt.Errorf("hand_landmarker_service.py not found")
	}
	return &MediaPipeLandmarker{config: config}, nil
}

// Start launches the Python service and the completion reader goroutine.
func (l *MediaPipeLandmarker) Start(onResult ResultFunc) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.started.Load() {
		return nil
	}

	scriptPath := findLandmarkerScript()
	if scriptPath == "" {
		return fmt.Errorf("hand_landmarker_service.py not found")
	}

	// Use virtual environment Python if available
	pythonPath := findVenvPython()
	if pythonPath == "" {
		pythonPath = "python3"
	}

	l.cmd = exec.Command(pythonPath, scriptPath,
		"--max-hands", strconv.Itoa(l.config.MaxHands),
		"--min-detection-confidence", formatConf(l.config.MinDetectionConf),
		"--min-presence-confidence", formatConf(l.config.MinPresenceConf),
		"--min-tracking-confidence", formatConf(l.config.MinTrackingConf),
	)

	stdin, err := l.cmd.StdinPipe()
	if err != nil {
		return fmt.Errorf("create stdin pipe: %w", err)
	}

	stdout, err := l.cmd.StdoutPipe()
	if err != nil {
		return fmt.Errorf("create stdout pipe: %w", err)
	}

	// Capture stderr for debugging
	l.cmd.Stderr = os.Stderr

	if err := l.cmd.Start(); err != nil {
		return fmt.Errorf("start landmarker service: %w", err)
	}

	l.onResult = onResult
	l.stdin = stdin
	l.stdout = bufio.NewReader(stdout)
	l.readerDone = make(chan struct{})
	l.started.Store(true)

	go l.readCompletions()

	return nil
}

// Submit encodes the frame as JPEG and writes it to the service. It returns
// immediately: the matching result arrives later via the ResultFunc. The
// frame is dropped when the service has not been started or a previous
// submission is still in flight.
func (l *MediaPipeLandmarker) Submit(frame *gocv.Mat, timestampMs int64) {
	if !l.started.Load() {
		return
	}

	if !l.inFlight.CompareAndSwap(false, true) {
		l.dropped.Add(1)
		return
	}

	buf, err := gocv.IMEncode(".jpg", *frame)
	if err != nil {
		l.inFlight.Store(false)
		log.Printf("encode frame: %v", err)
		return
	}
	defer buf.Close()

	data := buf.GetBytes()

	header := make([]byte, 12)
	binary.BigEndian.PutUint64(header[:8], uint64(timestampMs))
	binary.BigEndian.PutUint32(header[8:], uint32(len(data)))

	l.writeMu.Lock()
	defer l.writeMu.Unlock()

	if _, err := l.stdin.Write(header); err != nil {
		l.inFlight.Store(false)
		log.Printf("write header: %v", err)
		return
	}
	if _, err := l.stdin.Write(data); err != nil {
		l.inFlight.Store(false)
		log.Printf("write frame: %v", err)
	}
}

// Dropped reports how many submissions were skipped because the service was
// still busy with a prior frame.
func (l *MediaPipeLandmarker) Dropped() uint64 {
	return l.dropped.Load()
}

// Close shuts down the Python service and waits for the reader to exit.
// Best effort: errors are returned but the process state is torn down
// regardless.
func (l *MediaPipeLandmarker) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.started.Load() {
		return nil
	}
	l.started.Store(false)

	if l.stdin != nil {
		l.stdin.Close()
	}

	err := l.cmd.Wait()
	<-l.readerDone

	l.cmd = nil
	l.stdin = nil
	l.stdout = nil

	return err
}

// readCompletions consumes JSON lines from the service until stdout closes,
// forwarding each completed detection verbatim.
func (l *MediaPipeLandmarker) readCompletions() {
	defer close(l.readerDone)

	for {
		line, err := l.stdout.ReadString('\n')
		if err != nil {
			if l.started.Load() {
				log.Printf("landmarker service read: %v", err)
			}
			return
		}

		var completion struct {
			TimestampMs int64      `json:"timestamp_ms"`
			Hands       []jsonHand `json:"hands"`
		}
		if err := json.Unmarshal([]byte(line), &completion); err != nil {
			log.Printf("parse landmarker response: %v", err)
			l.inFlight.Store(false)
			continue
		}

		hands := make([]Hand, len(completion.Hands))
		for i, h := range completion.Hands {
			hands[i] = h.toHand()
		}

		l.inFlight.Store(false)

		if l.onResult != nil {
			l.onResult(Result{Hands: hands, TimestampMs: completion.TimestampMs})
		}
	}
}

func formatConf(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func findLandmarkerScript() string {
	// Get executable directory
	execPath, err := os.Executable()
	var execDir string
	if err == nil {
		execDir = filepath.Dir(execPath)
	}

	candidates := []string{
		"scripts/hand_landmarker_service.py",
		"../scripts/hand_landmarker_service.py",
		filepath.Join(execDir, "scripts/hand_landmarker_service.py"),
		filepath.Join(os.Getenv("HOME"), ".mudra/scripts/hand_landmarker_service.py"),
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			absPath, err := filepath.Abs(path)
			if err == nil {
				return absPath
			}
			return path
		}
	}
	return ""
}

// findVenvPython looks for a Python interpreter in a virtual environment.
// It checks for venv/bin/python relative to the project directory.
func findVenvPython() string {
	execPath, err := os.Executable()
	if err != nil {
		return ""
	}
	execDir := filepath.Dir(execPath)

	candidates := []string{
		"venv/bin/python",
		"../venv/bin/python",
		"../../venv/bin/python",
		filepath.Join(execDir, "venv/bin/python"),
		filepath.Join(os.Getenv("HOME"), ".mudra/venv/bin/python"),
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			absPath, err := filepath.Abs(path)
			if err == nil {
				return absPath
			}
			return path
		}
	}
	return ""
}

// jsonHand represents the JSON structure from the Python service.
type jsonHand struct {
	Points     []jsonPoint `json:"points"`
	Handedness string      `json:"handedness"`
	Score      float64     `json:"score"`
}

type jsonPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

func (h jsonHand) toHand() Hand {
	hand := Hand{
		Points:     make([]Point3D, len(h.Points)),
		Handedness: h.Handedness,
		Score:      h.Score,
	}

	for i, p := range h.Points {
		hand.Points[i] = Point3D{X: p.X, Y: p.Y, Z: p.Z}
	}

	return hand
}
