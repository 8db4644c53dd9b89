// Package timer implements the study timer.
//
// The timer does not own a goroutine. Start hands out a Handle and the caller
// schedules one-second ticks carrying it; Pause and Reset retire the handle so
// any tick still in flight is dropped. At most one handle is live at a time.
package timer

import (
	"fmt"
	"time"
)

// Interval is the tick period.
const Interval = time.Second

// DefaultPresets are the preset durations in minutes.
var DefaultPresets = []int{25, 45, 60}

// Handle identifies one scheduled ticker.
type Handle uint64

// Timer tracks elapsed study time.
type Timer struct {
	minutes int
	seconds int
	running bool
	live    Handle
}

// New returns a stopped timer at 00:00.
func New() *Timer {
	return &Timer{}
}

// Start begins ticking. It returns the new handle and true, or false when the
// timer is already running.
func (t *Timer) Start() (Handle, bool) {
	if t.running {
		return 0, false
	}
	t.running = true
	t.live++
	return t.live, true
}

// Tick advances the timer by one second if h is the live handle.
// It reports whether the tick was applied and the caller should schedule the next one.
func (t *Timer) Tick(h Handle) bool {
	if !t.running || h != t.live {
		return false
	}
	t.seconds++
	if t.seconds >= 60 {
		t.seconds = 0
		t.minutes++
	}
	return true
}

// Pause retires the live handle. Calling it on a stopped timer is a no-op.
func (t *Timer) Pause() {
	if !t.running {
		return
	}
	t.running = false
	t.live++
}

// Reset pauses and zeroes the elapsed time.
func (t *Timer) Reset() {
	t.Pause()
	t.minutes = 0
	t.seconds = 0
}

// SetPreset resets and then sets the minutes. Negative values count as zero.
func (t *Timer) SetPreset(minutes int) {
	t.Reset()
	if minutes < 0 {
		minutes = 0
	}
	t.minutes = minutes
}

// Minutes returns elapsed minutes.
func (t *Timer) Minutes() int { return t.minutes }

// Seconds returns elapsed seconds within the current minute.
func (t *Timer) Seconds() int { return t.seconds }

// Running reports whether a ticker is live.
func (t *Timer) Running() bool { return t.running }

// Live returns the current handle. It only matches ticks while running.
func (t *Timer) Live() Handle { return t.live }

// Digits returns the zero-padded minute and second strings.
func (t *Timer) Digits() (string, string) {
	return fmt.Sprintf("%02d", t.minutes), fmt.Sprintf("%02d", t.seconds)
}

// Display returns the timer as MM:SS.
func (t *Timer) Display() string {
	m, s := t.Digits()
	return m + ":" + s
}
