package app

import "time"

// FPSMeter estimates displayed frames per second: it counts ticks and folds
// them into a rate every time a full second of wall clock has elapsed.
// It is used from the frame loop only and is not safe for concurrent use.
type FPSMeter struct {
	count       int
	windowStart time.Time
	current     float64
	now         func() time.Time
}

// NewFPSMeter creates a meter with the measurement window starting now.
func NewFPSMeter() *FPSMeter {
	m := &FPSMeter{now: time.Now}
	m.windowStart = m.now()
	return m
}

// Tick records one displayed frame and, once a second has elapsed, folds the
// accumulated count into the current estimate and restarts the window.
func (m *FPSMeter) Tick() {
	m.count++

	now := m.now()
	if elapsed := now.Sub(m.windowStart); elapsed >= time.Second {
		m.current = float64(m.count) / elapsed.Seconds()
		m.count = 0
		m.windowStart = now
	}
}

// Current returns the most recent completed-window estimate. It reads zero
// until the first full second has elapsed.
func (m *FPSMeter) Current() float64 {
	return m.current
}
