package parameter

import "time"

// Game Timer
const (
	// TimerDuration per level countdown
	TimerDuration = 30 * time.Second

	// TimerWarningThreshold remaining time for the warning color
	TimerWarningThreshold = 20 * time.Second

	// TimerCriticalThreshold remaining time for the critical color
	TimerCriticalThreshold = 10 * time.Second
)
