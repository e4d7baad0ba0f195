package world

import "github.com/lixenwraith/mirador/maze"

// Direction is a cardinal heading in the maze.
type Direction int

const (
	North Direction = iota
	East
	South
	West
)

// BottomLeftCell is the maze entrance used for player spawn.
func BottomLeftCell(width, height int) maze.Cell {
	return maze.Cell{Row: height - 1, Col: 0}
}

func TopLeftCell(width, height int) maze.Cell {
	return maze.Cell{Row: 0, Col: 0}
}

func TopRightCell(width, height int) maze.Cell {
	return maze.Cell{Row: 0, Col: width - 1}
}

func BottomRightCell(width, height int) maze.Cell {
	return maze.Cell{Row: height - 1, Col: width - 1}
}

// AdjacentCell returns the neighbor in the given direction, or false if it
// would leave the grid.
func AdjacentCell(cell maze.Cell, dir Direction, width, height int) (maze.Cell, bool) {
	switch dir {
	case North:
		if cell.Row > 0 {
			return maze.Cell{Row: cell.Row - 1, Col: cell.Col}, true
		}
	case South:
		if cell.Row < height-1 {
			return maze.Cell{Row: cell.Row + 1, Col: cell.Col}, true
		}
	case East:
		if cell.Col < width-1 {
			return maze.Cell{Row: cell.Row, Col: cell.Col + 1}, true
		}
	case West:
		if cell.Col > 0 {
			return maze.Cell{Row: cell.Row, Col: cell.Col - 1}, true
		}
	}
	return maze.Cell{}, false
}

// YawToDirection snaps a yaw angle in degrees to the nearest cardinal.
func YawToDirection(yaw float32) Direction {
	normalized := yaw
	for normalized < 0 {
		normalized += 360
	}
	for normalized >= 360 {
		normalized -= 360
	}

	switch {
	case normalized >= 315 || normalized <= 45:
		return North
	case normalized <= 135:
		return East
	case normalized <= 225:
		return South
	default:
		return West
	}
}

// DirectionToYaw converts a cardinal direction to a yaw angle in degrees.
func DirectionToYaw(dir Direction) float32 {
	switch dir {
	case East:
		return 90.0
	case South:
		return 180.0
	case West:
		return 270.0
	default:
		return 0.0
	}
}
