package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100
)

// Wall Hit Sound
const (
	WallHitFrequency = 220.0
	WallHitDuration  = 120 * time.Millisecond
	WallHitAttack    = 5 * time.Millisecond
	WallHitRelease   = 80 * time.Millisecond

	// WallHitCooldown between consecutive wall hit sounds
	WallHitCooldown = 330 * time.Millisecond
)
