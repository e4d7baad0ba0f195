package collision

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/mirador/world"
)

// ExtractWallFaces converts the maze's boolean wall grid into 3D quads
// positioned in world units. Each wall cell emits quads along its north
// and west edges wherever a wall run begins (previous row/column open or
// absent), and the outer boundary contributes its south and east edges.
// Every emitted side produces a front and a back copy with opposite
// normals so collision works from either side.
//
// In test mode the grid contains only perimeter walls, which shrinks the
// floor and yields a single open arena.
func ExtractWallFaces(grid [][]bool, testMode bool) []WallFace {
	if len(grid) == 0 || len(grid[0]) == 0 {
		return nil
	}
	gridWidth := len(grid[0])
	gridHeight := len(grid)

	cellSize := world.CellSize(gridWidth, gridHeight, testMode)
	wallHeight := cellSize
	originX, originZ := world.Origin(gridWidth, gridHeight, testMode)

	var faces []WallFace
	for z, row := range grid {
		for x, isWall := range row {
			if !isWall {
				continue
			}
			wx := originX + float32(x)*cellSize
			wz := originZ + float32(z)*cellSize

			// North side, exposed when the cell above is open or absent
			if z == 0 || !grid[z-1][x] {
				faces = append(faces,
					zFacingWall(wx, wz, cellSize, wallHeight, false),
					zFacingWall(wx, wz, cellSize, wallHeight, true),
				)
			}
			// West side
			if x == 0 || !grid[z][x-1] {
				faces = append(faces,
					xFacingWall(wx, wz, cellSize, wallHeight, false),
					xFacingWall(wx, wz, cellSize, wallHeight, true),
				)
			}
			// Boundary south and east sides
			if z == gridHeight-1 {
				faces = append(faces,
					zFacingWall(wx, wz+cellSize, cellSize, wallHeight, false),
					zFacingWall(wx, wz+cellSize, cellSize, wallHeight, true),
				)
			}
			if x == gridWidth-1 {
				faces = append(faces,
					xFacingWall(wx+cellSize, wz, cellSize, wallHeight, false),
					xFacingWall(wx+cellSize, wz, cellSize, wallHeight, true),
				)
			}
		}
	}

	return faces
}

// zFacingWall builds a quad perpendicular to the Z axis at depth z.
// The corner winding flips with reverseNormal so the two copies of a
// side face opposite ways.
func zFacingWall(x, z, size, height float32, reverseNormal bool) WallFace {
	if reverseNormal {
		return NewWallFace([4]mgl32.Vec3{
			{x, 0, z},
			{x + size, 0, z},
			{x + size, height, z},
			{x, height, z},
		})
	}
	return NewWallFace([4]mgl32.Vec3{
		{x, height, z},
		{x + size, height, z},
		{x + size, 0, z},
		{x, 0, z},
	})
}

// xFacingWall builds a quad perpendicular to the X axis at offset x.
func xFacingWall(x, z, size, height float32, reverseNormal bool) WallFace {
	if reverseNormal {
		return NewWallFace([4]mgl32.Vec3{
			{x, 0, z},
			{x, 0, z + size},
			{x, height, z + size},
			{x, height, z},
		})
	}
	return NewWallFace([4]mgl32.Vec3{
		{x, height, z},
		{x, height, z + size},
		{x, 0, z + size},
		{x, 0, z},
	})
}
