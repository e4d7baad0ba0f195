// Package render generates vertex data for the floor and wall meshes.
// It has no GPU dependency; any consumer can upload the buffers. Cell
// size and origin come from the world package so the mesh lines up
// exactly with the collision geometry.
package render

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/mirador/maze"
	"github.com/lixenwraith/mirador/world"
)

// Material indices consumed by shaders.
const (
	MaterialFloor uint8 = 0
	MaterialWall  uint8 = 1
	MaterialExit  uint8 = 4
)

// Wall and floor colors, RGBA.
var (
	wallColor      = [4]uint8{107, 55, 55, 255}
	floorColorA    = [4]uint8{120, 80, 160, 255}
	floorColorB    = [4]uint8{100, 120, 180, 255}
	exitPatchColor = [4]uint8{0, 255, 0, 255}
)

// Vertex is one mesh vertex: position in world units, color, material.
type Vertex struct {
	Position mgl32.Vec3
	Color    [4]uint8
	Material uint8
}

// FloorVertices builds the two-triangle floor quad, plus a green exit
// patch when an exit cell is set. Returns the vertices and the world XZ
// center of the exit patch (zero when absent).
func FloorVertices(grid [][]bool, exitCell *maze.Cell, testMode bool) ([]Vertex, mgl32.Vec2) {
	half := world.FloorSize(testMode) / 2

	corners := [4]mgl32.Vec3{
		{-half, 0, -half},
		{half, 0, -half},
		{half, 0, half},
		{-half, 0, half},
	}
	vertices := []Vertex{
		{Position: corners[0], Color: floorColorA, Material: MaterialFloor},
		{Position: corners[1], Color: floorColorA, Material: MaterialFloor},
		{Position: corners[2], Color: floorColorA, Material: MaterialFloor},
		{Position: corners[0], Color: floorColorB, Material: MaterialFloor},
		{Position: corners[2], Color: floorColorB, Material: MaterialFloor},
		{Position: corners[3], Color: floorColorB, Material: MaterialFloor},
	}

	var exitCenter mgl32.Vec2
	if exitCell != nil && len(grid) > 0 {
		patch, center := exitPatch(grid, *exitCell, testMode)
		vertices = append(vertices, patch...)
		exitCenter = center
	}
	return vertices, exitCenter
}

// exitPatch is a green quad raised slightly above the floor over the
// exit cell.
func exitPatch(grid [][]bool, exit maze.Cell, testMode bool) ([]Vertex, mgl32.Vec2) {
	width, height := len(grid[0]), len(grid)
	cellSize := world.CellSize(width, height, testMode)
	originX, originZ := world.Origin(width, height, testMode)

	wx := originX + float32(exit.Col)*cellSize
	wz := originZ + float32(exit.Row)*cellSize

	c := [4]mgl32.Vec3{
		{wx, 1, wz},
		{wx + cellSize, 1, wz},
		{wx + cellSize, 1, wz + cellSize},
		{wx, 1, wz + cellSize},
	}
	patch := []Vertex{
		{Position: c[0], Color: exitPatchColor, Material: MaterialExit},
		{Position: c[1], Color: exitPatchColor, Material: MaterialExit},
		{Position: c[2], Color: exitPatchColor, Material: MaterialExit},
		{Position: c[0], Color: exitPatchColor, Material: MaterialExit},
		{Position: c[2], Color: exitPatchColor, Material: MaterialExit},
		{Position: c[3], Color: exitPatchColor, Material: MaterialExit},
	}
	center := mgl32.Vec2{wx + cellSize/2, wz + cellSize/2}
	return patch, center
}

// WallVertices builds wall quads for the maze grid using the same
// emission pattern as collision extraction. Outer walls render twice as
// tall as interior walls. Test mode draws only the perimeter.
func WallVertices(grid [][]bool, testMode bool) []Vertex {
	if len(grid) == 0 || len(grid[0]) == 0 {
		return nil
	}
	width, height := len(grid[0]), len(grid)

	cellSize := world.CellSize(width, height, testMode)
	innerHeight := cellSize
	outerHeight := cellSize * 2
	originX, originZ := world.Origin(width, height, testMode)

	var vertices []Vertex

	if testMode {
		for x := 0; x < width; x++ {
			wx := originX + float32(x)*cellSize
			if grid[0][x] {
				vertices = append(vertices, zFacingQuad(wx, originZ, cellSize, outerHeight)...)
			}
			if grid[height-1][x] {
				wz := originZ + float32(height-1)*cellSize
				vertices = append(vertices, zFacingQuad(wx, wz+cellSize, cellSize, outerHeight)...)
			}
		}
		for z := 0; z < height; z++ {
			wz := originZ + float32(z)*cellSize
			if grid[z][0] {
				vertices = append(vertices, xFacingQuad(originX, wz, cellSize, outerHeight)...)
			}
			if grid[z][width-1] {
				wx := originX + float32(width-1)*cellSize
				vertices = append(vertices, xFacingQuad(wx+cellSize, wz, cellSize, outerHeight)...)
			}
		}
		return vertices
	}

	for z, row := range grid {
		for x, isWall := range row {
			if !isWall {
				continue
			}
			wx := originX + float32(x)*cellSize
			wz := originZ + float32(z)*cellSize

			if z == 0 || !grid[z-1][x] {
				h := innerHeight
				if z == 0 {
					h = outerHeight
				}
				vertices = append(vertices, zFacingQuad(wx, wz, cellSize, h)...)
			}
			if x == 0 || !grid[z][x-1] {
				h := innerHeight
				if x == 0 {
					h = outerHeight
				}
				vertices = append(vertices, xFacingQuad(wx, wz, cellSize, h)...)
			}
			if z == height-1 {
				vertices = append(vertices, zFacingQuad(wx, wz+cellSize, cellSize, outerHeight)...)
			}
			if x == width-1 {
				vertices = append(vertices, xFacingQuad(wx+cellSize, wz, cellSize, outerHeight)...)
			}
		}
	}

	return vertices
}

// zFacingQuad is two triangles spanning width along X at depth z.
func zFacingQuad(x, z, width, height float32) []Vertex {
	c := [4]mgl32.Vec3{
		{x, 0, z},
		{x + width, 0, z},
		{x + width, height, z},
		{x, height, z},
	}
	return quadTriangles(c)
}

// xFacingQuad is two triangles spanning depth along Z at offset x.
func xFacingQuad(x, z, depth, height float32) []Vertex {
	c := [4]mgl32.Vec3{
		{x, 0, z},
		{x, 0, z + depth},
		{x, height, z + depth},
		{x, height, z},
	}
	return quadTriangles(c)
}

func quadTriangles(c [4]mgl32.Vec3) []Vertex {
	return []Vertex{
		{Position: c[0], Color: wallColor, Material: MaterialWall},
		{Position: c[1], Color: wallColor, Material: MaterialWall},
		{Position: c[2], Color: wallColor, Material: MaterialWall},
		{Position: c[0], Color: wallColor, Material: MaterialWall},
		{Position: c[2], Color: wallColor, Material: MaterialWall},
		{Position: c[3], Color: wallColor, Material: MaterialWall},
	}
}
