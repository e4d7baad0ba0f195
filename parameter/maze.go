package parameter

// Maze Generation
const (
	// MazeDefaultWidth and MazeDefaultHeight in logical cells
	MazeDefaultWidth  = 25
	MazeDefaultHeight = 25

	// MazeTestWidth and MazeTestHeight for the reduced test arena
	MazeTestWidth  = 7
	MazeTestHeight = 7
)

// Generation Animation
const (
	// GenerationStepDelayMs between animated steps in slow mode
	GenerationStepDelayMs = 15

	// GenerationFastStepDelayMs once fast mode engages
	GenerationFastStepDelayMs = 1
)
