package parameter

// Player Movement
const (
	// PlayerSpeed in world units per second
	PlayerSpeed = 100.0

	// PlayerSprintMultiplier applied while sprinting
	PlayerSprintMultiplier = 1.75

	// PlayerMouseSensitivity scales raw mouse deltas to degrees
	PlayerMouseSensitivity = 1.0

	// PlayerPitchLimit clamps vertical look to prevent flipping
	PlayerPitchLimit = 89.0
)

// Player Orientation Defaults
const (
	PlayerDefaultPitch = 3.0
	PlayerDefaultYaw   = 316.0
	PlayerDefaultFOV   = 100.0
)

// Player Collision Body
const (
	// PlayerRadius of the collision cylinder
	PlayerRadius = 5.0

	// PlayerCollisionHeight of the collision cylinder
	PlayerCollisionHeight = 100.0
)
