package app

import (
	"strings"
	"testing"

	"github.com/ayusman/mudra/internal/capture"
	"github.com/ayusman/mudra/internal/detector"
	"gocv.io/x/gocv"
)

func testFrame(t *testing.T) *gocv.Mat {
	t.Helper()
	frame := gocv.NewMatWithSize(480, 640, gocv.MatTypeCV8UC3)
	t.Cleanup(func() { frame.Close() })
	return &frame
}

func newTestApp(t *testing.T, cam capture.Camera, keys ...int) (*App, *detector.MockLandmarker, *MockDisplay) {
	t.Helper()

	landmarker := detector.NewMockLandmarker()
	display := NewMockDisplay(keys...)

	a := New(Config{
		Camera:     cam,
		Landmarker: landmarker,
		Display:    display,
	})
	if err := a.Start(); err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	return a, landmarker, display
}

func TestApp_RunQuitsOnKey(t *testing.T) {
	cam := capture.NewMockCamera([]*gocv.Mat{testFrame(t)}, true)

	tests := []struct {
		name string
		key  int
	}{
		{name: "q key", key: keyQ},
		{name: "escape", key: keyEsc},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, _, display := newTestApp(t, cam, tt.key)
			defer a.Close()

			if err := a.Run(); err != nil {
				t.Fatalf("Run() error = %v, want nil on quit", err)
			}
			if display.Shown() != 1 {
				t.Errorf("frames shown = %d, want 1", display.Shown())
			}
		})
	}
}

func TestApp_RunFailsOnFrameReadError(t *testing.T) {
	// Single frame without looping: the second read fails.
	cam := capture.NewMockCamera([]*gocv.Mat{testFrame(t)}, false)

	a, _, _ := newTestApp(t, cam)
	defer a.Close()

	err := a.Run()
	if err == nil {
		t.Fatal("Run() should fail when the camera stops yielding frames")
	}
	if !strings.Contains(err.Error(), "read frame") {
		t.Errorf("error = %v, want frame read failure", err)
	}
}

func TestApp_PauseStopsSubmissions(t *testing.T) {
	cam := capture.NewMockCamera([]*gocv.Mat{testFrame(t)}, true)

	// Tick 1 submits then pauses; ticks 2-3 are paused; tick 4 quits.
	a, landmarker, display := newTestApp(t, cam, keySpace, keyNone, keyNone, keyQ)
	defer a.Close()

	if err := a.Run(); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if got := len(landmarker.Submitted()); got != 1 {
		t.Errorf("submissions = %d, want 1 (paused after first tick)", got)
	}
	// The status overlay still presents every tick while paused.
	if display.Shown() != 4 {
		t.Errorf("frames shown = %d, want 4", display.Shown())
	}
}

func TestApp_SubmissionTimestampsIncrease(t *testing.T) {
	cam := capture.NewMockCamera([]*gocv.Mat{testFrame(t)}, true)

	a, landmarker, _ := newTestApp(t, cam, keyNone, keyNone, keyQ)
	defer a.Close()

	if err := a.Run(); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	stamps := landmarker.Submitted()
	if len(stamps) != 3 {
		t.Fatalf("submissions = %d, want 3", len(stamps))
	}
	for i := 1; i < len(stamps); i++ {
		if stamps[i] < stamps[i-1] {
			t.Errorf("timestamps decreased: %v", stamps)
		}
	}
}

func TestApp_HandleKeyToggles(t *testing.T) {
	cam := capture.NewMockCamera(nil, false)
	a, _, _ := newTestApp(t, cam)
	defer a.Close()

	if a.handleKey(keyC, nil) {
		t.Error("toggle key should not quit")
	}
	if a.state.View().ShowConnections {
		t.Error("connections should be off after toggle")
	}

	a.handleKey(keyL, nil)
	if a.state.View().ShowLandmarks {
		t.Error("landmarks should be off after toggle")
	}

	a.handleKey(keyNone, nil)
	v := a.state.View()
	if v.ShowConnections || v.ShowLandmarks {
		t.Error("no-key poll must not change state")
	}
}

func TestApp_PublishForwardsOnlyAdopted(t *testing.T) {
	cam := capture.NewMockCamera(nil, false)

	var adopted []int64
	landmarker := detector.NewMockLandmarker()
	a := New(Config{
		Camera:     cam,
		Landmarker: landmarker,
		Display:    NewMockDisplay(),
		OnAdopted:  func(r detector.Result) { adopted = append(adopted, r.TimestampMs) },
	})
	if err := a.Start(); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	defer a.Close()

	landmarker.Complete(nil, 100)
	landmarker.Complete(nil, 90) // late, must be dropped
	landmarker.Complete(nil, 110)

	want := []int64{100, 110}
	if len(adopted) != len(want) || adopted[0] != want[0] || adopted[1] != want[1] {
		t.Errorf("adopted = %v, want %v", adopted, want)
	}

	if got := a.Results().HandCount(); got != 0 {
		t.Errorf("HandCount() = %d, want 0", got)
	}
}

func TestApp_CloseReleasesCollaborators(t *testing.T) {
	cam := capture.NewMockCamera(nil, false)
	a, landmarker, display := newTestApp(t, cam)

	a.Close()

	if landmarker.CloseCalls() != 1 {
		t.Errorf("landmarker Close calls = %d, want 1", landmarker.CloseCalls())
	}
	if !display.Closed() {
		t.Error("display should be closed")
	}
	if cam.IsOpen() {
		t.Error("camera should be closed")
	}
}
