package overlay

import "sync"

// View is an immutable snapshot of the display toggles, taken once per frame
// so a toggle arriving mid-render cannot produce a half-updated overlay.
type View struct {
	Paused          bool
	ShowLandmarks   bool
	ShowConnections bool
}

// DisplayState holds the three independent display toggles. Each flag flips
// only in response to its own key event; there are no automatic transitions
// and no constraints between flags.
type DisplayState struct {
	mu              sync.Mutex
	paused          bool
	showLandmarks   bool
	showConnections bool
}

// NewDisplayState returns the initial state: running, both overlays on.
func NewDisplayState() *DisplayState {
	return &DisplayState{
		showLandmarks:   true,
		showConnections: true,
	}
}

// TogglePaused flips the paused flag and returns the new value.
func (s *DisplayState) TogglePaused() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.paused = !s.paused
	return s.paused
}

// ToggleLandmarks flips the landmark-marker flag and returns the new value.
func (s *DisplayState) ToggleLandmarks() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.showLandmarks = !s.showLandmarks
	return s.showLandmarks
}

// ToggleConnections flips the skeleton-connection flag and returns the new value.
func (s *DisplayState) ToggleConnections() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.showConnections = !s.showConnections
	return s.showConnections
}

// Paused reports whether display processing is paused.
func (s *DisplayState) Paused() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.paused
}

// View returns a consistent snapshot of all three flags.
func (s *DisplayState) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return View{
		Paused:          s.paused,
		ShowLandmarks:   s.showLandmarks,
		ShowConnections: s.showConnections,
	}
}
