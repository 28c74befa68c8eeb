// Package app drives the Mudra frame loop: capture, asynchronous detection,
// overlay rendering, presentation, and keyboard handling.
package app

import (
	"fmt"
	"log"
	"sync/atomic"
	"time"

	"github.com/ayusman/mudra/internal/capture"
	"github.com/ayusman/mudra/internal/detector"
	"github.com/ayusman/mudra/internal/overlay"
	"github.com/ayusman/mudra/internal/snapshot"
	"gocv.io/x/gocv"
)

// DefaultTitle is the static HUD label and window title.
const DefaultTitle = "MediaPipe Hand Landmarker"

// Config wires the collaborators into the frame loop. Camera, Landmarker and
// Display are required; Saver and the observers are optional.
type Config struct {
	Camera     capture.Camera
	Landmarker detector.Landmarker
	Display    Display
	Saver      *snapshot.Saver

	// OnAdopted is invoked for every detection result newly adopted by the
	// result store, from the landmarker's completion goroutine.
	OnAdopted detector.ResultFunc

	// OnFrame receives each fully annotated frame just before it is
	// presented. The frame is only valid for the duration of the call.
	OnFrame func(frame *gocv.Mat)

	Title string
}

// App owns the frame loop and the state shared with the detection
// completion path.
type App struct {
	config   Config
	results  *detector.ResultStore
	state    *overlay.DisplayState
	renderer *overlay.Renderer
	hud      *overlay.HUD
	fps      *FPSMeter
	clock    func() time.Time
	stop     atomic.Bool
}

// New creates an App around the configured collaborators.
func New(config Config) *App {
	title := config.Title
	if title == "" {
		title = DefaultTitle
	}

	return &App{
		config:   config,
		results:  detector.NewResultStore(),
		state:    overlay.NewDisplayState(),
		renderer: overlay.NewRenderer(),
		hud:      overlay.NewHUD(title),
		fps:      NewFPSMeter(),
		clock:    time.Now,
	}
}

// Results returns the result store, for read-only observers such as the
// preview server.
func (a *App) Results() *detector.ResultStore {
	return a.results
}

// State returns the display state.
func (a *App) State() *overlay.DisplayState {
	return a.state
}

// Start opens the camera and launches the detection service. Either failing
// is a setup failure: the loop must not be entered.
func (a *App) Start() error {
	if err := a.config.Camera.Open(); err != nil {
		return fmt.Errorf("open camera: %w", err)
	}

	if err := a.config.Landmarker.Start(a.publish); err != nil {
		return fmt.Errorf("start landmarker: %w", err)
	}

	return nil
}

// publish is the detection completion sink. It runs on the landmarker's
// reader goroutine; the result store's timestamp rule drops completions that
// arrive after a newer one.
func (a *App) publish(r detector.Result) {
	if a.results.Publish(r) && a.config.OnAdopted != nil {
		a.config.OnAdopted(r)
	}
}

// RequestStop asks the frame loop to exit before its next tick. Safe to
// call from any goroutine, typically a signal handler.
func (a *App) RequestStop() {
	a.stop.Store(true)
}

// Run executes the frame loop until a quit key arrives, RequestStop is
// called, or a frame read fails. A failed read terminates the loop rather
// than retrying: a camera that stops yielding frames is fatal for the run.
func (a *App) Run() error {
	for !a.stop.Load() {
		frame, err := a.config.Camera.ReadFrame()
		if err != nil {
			return fmt.Errorf("read frame: %w", err)
		}

		quit := a.tick(frame)
		frame.Close()

		if quit {
			return nil
		}
	}
	return nil
}

// tick processes one captured frame and reports whether a quit key arrived.
func (a *App) tick(frame *gocv.Mat) bool {
	capture.Mirror(frame)

	width, height := frame.Cols(), frame.Rows()
	canvas := overlay.NewMatCanvas(frame)
	view := a.state.View()

	if !view.Paused {
		a.config.Landmarker.Submit(frame, a.clock().UnixMilli())

		if result, ok := a.results.Current(); ok {
			a.renderer.Draw(canvas, width, height, result, view)
		}

		a.fps.Tick()
	}

	// The HUD stays live while detection is frozen.
	a.hud.Draw(canvas, width, height, a.fps.Current(), a.results.HandCount(), view.Paused)

	if a.config.OnFrame != nil {
		a.config.OnFrame(frame)
	}

	a.config.Display.Show(frame)

	return a.handleKey(a.config.Display.WaitKey(1), frame)
}

// handleKey dispatches a single pending key event and reports whether it
// requests quitting.
func (a *App) handleKey(key int, frame *gocv.Mat) bool {
	if key == keyNone {
		return false
	}

	switch key & 0xff {
	case keyQ, keyEsc:
		return true

	case keySpace:
		if a.state.TogglePaused() {
			log.Println("Paused")
		} else {
			log.Println("Resumed")
		}

	case keyS:
		if a.config.Saver == nil {
			break
		}
		path, err := a.config.Saver.Save(frame, a.results.HandCount())
		if err != nil {
			log.Printf("save screenshot: %v", err)
		} else {
			log.Printf("Screenshot saved: %s", path)
		}

	case keyC:
		log.Printf("Connections: %v", onOff(a.state.ToggleConnections()))

	case keyL:
		log.Printf("Landmarks: %v", onOff(a.state.ToggleLandmarks()))
	}

	return false
}

// Close releases the detection service and the capture and display surfaces.
// Cleanup is best effort: every resource is released even when an earlier
// one fails.
func (a *App) Close() {
	if err := a.config.Landmarker.Close(); err != nil {
		log.Printf("close landmarker: %v", err)
	}
	if err := a.config.Camera.Close(); err != nil {
		log.Printf("close camera: %v", err)
	}
	if err := a.config.Display.Close(); err != nil {
		log.Printf("close display: %v", err)
	}
}

func onOff(v bool) string {
	if v {
		return "ON"
	}
	return "OFF"
}
