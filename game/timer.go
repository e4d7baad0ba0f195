package game

import (
	"fmt"
	"time"

	"github.com/lixenwraith/mirador/parameter"
)

// TimerConfig sets the countdown length and the remaining-time thresholds
// at which the display color changes.
type TimerConfig struct {
	Duration          time.Duration
	WarningThreshold  time.Duration
	CriticalThreshold time.Duration
}

func DefaultTimerConfig() TimerConfig {
	return TimerConfig{
		Duration:          parameter.TimerDuration,
		WarningThreshold:  parameter.TimerWarningThreshold,
		CriticalThreshold: parameter.TimerCriticalThreshold,
	}
}

// TimerUrgency classifies remaining time against the config thresholds.
type TimerUrgency int

const (
	TimerNormal TimerUrgency = iota
	TimerWarning
	TimerCritical
)

// GameTimer is the per-level countdown. Paused spans are excluded from
// elapsed time so pausing never costs the player.
type GameTimer struct {
	Config TimerConfig

	startTime     time.Time
	running       bool
	expired       bool
	pausedAt      time.Time
	paused        bool
	elapsedPaused time.Duration

	// now is replaceable for tests
	now func() time.Time
}

func NewGameTimer(config TimerConfig) *GameTimer {
	return &GameTimer{
		Config: config,
		now:    time.Now,
	}
}

// Start begins a fresh countdown, discarding any previous state.
func (t *GameTimer) Start() {
	t.startTime = t.now()
	t.running = true
	t.expired = false
	t.paused = false
	t.elapsedPaused = 0
}

// Pause freezes the countdown. No effect if already paused or stopped.
func (t *GameTimer) Pause() {
	if t.running && !t.paused {
		t.pausedAt = t.now()
		t.paused = true
	}
}

// Resume continues after a pause, crediting the paused span.
func (t *GameTimer) Resume() {
	if t.paused {
		t.elapsedPaused += t.now().Sub(t.pausedAt)
		t.paused = false
	}
}

// Stop ends the countdown without the ability to resume.
func (t *GameTimer) Stop() {
	t.running = false
}

// Reset restores the full duration without starting.
func (t *GameTimer) Reset() {
	t.startTime = t.now()
	t.expired = false
	t.paused = false
	t.elapsedPaused = 0
}

func (t *GameTimer) IsRunning() bool { return t.running }
func (t *GameTimer) IsPaused() bool  { return t.paused }

// Remaining returns the time left, zero once stopped or expired.
func (t *GameTimer) Remaining() time.Duration {
	if !t.running || t.expired {
		return 0
	}

	var elapsed time.Duration
	if t.paused {
		elapsed = t.pausedAt.Sub(t.startTime) - t.elapsedPaused
	} else {
		elapsed = t.now().Sub(t.startTime) - t.elapsedPaused
	}

	remaining := t.Config.Duration - elapsed
	if remaining < 0 {
		return 0
	}
	return remaining
}

// Update checks for expiry. Returns true only on the frame the timer
// transitions to expired, for one-shot game-over handling.
func (t *GameTimer) Update() bool {
	if !t.running || t.paused {
		return false
	}
	wasExpired := t.expired
	t.expired = t.Remaining() == 0
	return !wasExpired && t.expired
}

func (t *GameTimer) IsExpired() bool {
	return t.expired || (!t.running && t.Remaining() == 0)
}

// Urgency classifies the remaining time for display coloring.
func (t *GameTimer) Urgency() TimerUrgency {
	remaining := t.Remaining()
	switch {
	case remaining <= t.Config.CriticalThreshold:
		return TimerCritical
	case remaining <= t.Config.WarningThreshold:
		return TimerWarning
	default:
		return TimerNormal
	}
}

// FormatTime renders remaining seconds as a fixed-width "SS.hh" string so
// the decimal point never shifts on screen.
func (t *GameTimer) FormatTime() string {
	return fmt.Sprintf("%05.2f", t.Remaining().Seconds())
}
