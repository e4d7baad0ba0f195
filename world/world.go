// Package world maps between maze grid coordinates and 3D world space.
//
// The maze floor is a square centered on the origin: X grows east, Y up,
// Z north. Wall extraction, the render mesh builders, and player spawning
// all derive cell size and origin from here so they stay numerically
// consistent.
package world

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/mirador/maze"
)

// PlayerHeight is the camera height above the floor in world units.
const PlayerHeight float32 = 50.0

// FloorSize returns the world-space edge length of the floor. Test mode
// shrinks the arena to a quarter of the area.
func FloorSize(testMode bool) float32 {
	if testMode {
		return 1500.0
	}
	return 3000.0
}

// CellSize is the world-space edge length of one grid cell. Dimensions are
// (width, height) counted in whatever grid the caller works in.
func CellSize(width, height int, testMode bool) float32 {
	maxDim := width
	if height > maxDim {
		maxDim = height
	}
	return FloorSize(testMode) / float32(maxDim)
}

// Origin returns the world X/Z of the grid's bottom-left corner.
func Origin(width, height int, testMode bool) (float32, float32) {
	cellSize := CellSize(width, height, testMode)
	originX := -(float32(width) * cellSize) / 2.0
	originZ := -(float32(height) * cellSize) / 2.0
	return originX, originZ
}

// MazeToWorld returns the world position of the center of a grid cell at
// the given height.
func MazeToWorld(cell maze.Cell, width, height int, y float32, testMode bool) mgl32.Vec3 {
	cellSize := CellSize(width, height, testMode)
	originX, originZ := Origin(width, height, testMode)

	worldX := originX + (float32(cell.Col)+0.5)*cellSize
	worldZ := originZ + (float32(cell.Row)+0.5)*cellSize
	return mgl32.Vec3{worldX, y, worldZ}
}

// WorldToMaze returns the grid cell containing a world position, clamped
// to grid bounds. Y is ignored.
func WorldToMaze(pos mgl32.Vec3, width, height int, testMode bool) maze.Cell {
	cellSize := CellSize(width, height, testMode)
	originX, originZ := Origin(width, height, testMode)

	col := int(mgl32.Clamp((pos.X()-originX)/cellSize, 0, float32(width-1)))
	row := int(mgl32.Clamp((pos.Z()-originZ)/cellSize, 0, float32(height-1)))
	return maze.Cell{Row: row, Col: col}
}
