package parameter

// Enemy Chase
const (
	// EnemyBaseSpeed in world units per second at level 1
	EnemyBaseSpeed = 150.0

	// EnemySpeedPerLevel added per level above the first
	EnemySpeedPerLevel = 15.0

	// EnemyHeight above the floor, below player eye level
	EnemyHeight = 30.0
)

// Enemy Path Probing
const (
	// EnemyPathRadius kept to walls during swept heading probes
	EnemyPathRadius = 5.0

	// EnemyRotationStep in radians per heading probe
	EnemyRotationStep = 0.3

	// EnemyArrivalThreshold distance to consider the target reached
	EnemyArrivalThreshold = 10.0

	// EnemyMaxProbes bounds the alternating heading search per update
	EnemyMaxProbes = 10

	// EnemyProbeDistance ahead of the current position per probe
	EnemyProbeDistance = 50.0
)
