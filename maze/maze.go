package maze

import (
	"bufio"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"
)

// Cell types in the wall grid
const (
	Wall    = true
	Passage = false
)

// Cell is a maze grid coordinate. Value type, compared by value.
type Cell struct {
	Row, Col int
}

// Edge is a candidate wall-removal between two adjacent cells.
type Edge struct {
	A, B Cell
}

// Render geometry for the preview texture, in pixels
const (
	cellPx = 4
	wallPx = 1
)

// SaveDir is where completed mazes are written.
const SaveDir = "src/maze/saved-mazes/generated"

// Maze is the boolean wall grid of a (Width x Height)-cell maze.
// Walls is (2*Height+1) rows by (2*Width+1) columns: odd/odd slots are
// cells, even-index slots are the walls and passages between them.
type Maze struct {
	Width, Height int
	Walls         [][]bool

	TotalEdges     int
	ProcessedEdges int

	// ExitCell is nil until generation completes.
	ExitCell *Cell
}

// New creates a maze with every wall slot filled in.
func New(width, height int) *Maze {
	walls := make([][]bool, height*2+1)
	for i := range walls {
		walls[i] = make([]bool, width*2+1)
		for j := range walls[i] {
			walls[i][j] = Wall
		}
	}
	return &Maze{
		Width:  width,
		Height: height,
		Walls:  walls,
	}
}

// SetRandomExit marks a uniformly random cell as the exit. A maze with a
// zero dimension has no cells; the exit stays nil.
func (m *Maze) SetRandomExit() {
	if m.Width <= 0 || m.Height <= 0 {
		return
	}
	c := Cell{Row: rand.Intn(m.Height), Col: rand.Intn(m.Width)}
	m.ExitCell = &c
}

// IsWalkable reports whether logical cell (x, y) is open.
func (m *Maze) IsWalkable(x, y int) bool {
	if x < 0 || y < 0 || x >= m.Width || y >= m.Height {
		return false
	}
	wallRow := y*2 + 1
	wallCol := x*2 + 1
	if wallRow >= len(m.Walls) || wallCol >= len(m.Walls[0]) {
		return false
	}
	return !m.Walls[wallRow][wallCol]
}

func (m *Maze) IsWall(x, y int) bool {
	return !m.IsWalkable(x, y)
}

// CellDimensions returns the maze size in logical cells.
func (m *Maze) CellDimensions() (int, int) {
	return m.Width, m.Height
}

// RenderDimensions returns the preview image size in pixels.
func (m *Maze) RenderDimensions() (int, int) {
	w := m.Width*cellPx + (m.Width+1)*wallPx
	h := m.Height*cellPx + (m.Height+1)*wallPx
	return w, h
}

// RenderData rasterizes the grid to an RGBA byte buffer for the live
// generation preview. Walls and unconnected cells are black, passages and
// connected cells white, the exit cell red.
func (m *Maze) RenderData(connected map[Cell]struct{}) []byte {
	renderWidth, renderHeight := m.RenderDimensions()
	data := make([]byte, renderWidth*renderHeight*4)

	for row := range m.Walls {
		for col := range m.Walls[row] {
			isWall := m.Walls[row][col]
			pxRow := row / 2
			pxCol := col / 2

			x := pxCol * (cellPx + wallPx)
			if col%2 != 0 {
				x += wallPx
			}
			y := pxRow * (cellPx + wallPx)
			if row%2 != 0 {
				y += wallPx
			}

			w := wallPx
			if col%2 != 0 {
				w = cellPx
			}
			h := wallPx
			if row%2 != 0 {
				h = cellPx
			}

			var color [4]byte
			switch {
			case isWall:
				color = [4]byte{0, 0, 0, 255}
			case row%2 == 1 && col%2 == 1:
				cell := Cell{Row: row / 2, Col: col / 2}
				switch {
				case m.ExitCell != nil && *m.ExitCell == cell:
					color = [4]byte{255, 0, 0, 255}
				case connected != nil && contains(connected, cell):
					color = [4]byte{255, 255, 255, 255}
				default:
					color = [4]byte{0, 0, 0, 255}
				}
			default:
				color = [4]byte{255, 255, 255, 255}
			}

			for dy := 0; dy < h; dy++ {
				for dx := 0; dx < w; dx++ {
					xi := x + dx
					yi := y + dy
					if xi < renderWidth && yi < renderHeight {
						idx := (yi*renderWidth + xi) * 4
						copy(data[idx:idx+4], color[:])
					}
				}
			}
		}
	}

	return data
}

func contains(set map[Cell]struct{}, c Cell) bool {
	_, ok := set[c]
	return ok
}

// SaveToFile writes the maze as plain text under SaveDir, one byte per
// wall-grid slot: '#' wall, ' ' open, '*' exit cell. The file is named
// from the current local time, e.g. Maze_06-24-25_11-24PM.mz.
func (m *Maze) SaveToFile() (string, error) {
	name := time.Now().Format("Maze_01-02-06_03-04PM") + ".mz"
	path := filepath.Join(SaveDir, name)

	if err := os.MkdirAll(SaveDir, 0o755); err != nil {
		return "", fmt.Errorf("create output directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create maze file: %w", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for rowIdx, row := range m.Walls {
		for colIdx, isWall := range row {
			var symbol byte
			switch {
			case isWall:
				symbol = '#'
			case rowIdx%2 == 1 && colIdx%2 == 1 &&
				m.ExitCell != nil && *m.ExitCell == (Cell{Row: rowIdx / 2, Col: colIdx / 2}):
				symbol = '*'
			default:
				symbol = ' '
			}
			if err := w.WriteByte(symbol); err != nil {
				return "", fmt.Errorf("write maze file: %w", err)
			}
		}
		if err := w.WriteByte('\n'); err != nil {
			return "", fmt.Errorf("write maze file: %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		return "", fmt.Errorf("write maze file: %w", err)
	}

	return path, nil
}

// ParseFile reads a saved maze into a wall grid. '#' is a wall, anything
// else open. A '*' at an odd/odd slot marks the exit; its coordinates are
// reported in wall-grid units, matching how consumers track the player.
// Panics on I/O failure: there is no fallback maze.
func ParseFile(path string) ([][]bool, *Cell) {
	f, err := os.Open(path)
	if err != nil {
		panic(fmt.Sprintf("maze: open %s: %v", path, err))
	}
	defer f.Close()

	var grid [][]bool
	var exit *Cell

	scanner := bufio.NewScanner(f)
	for rowIdx := 0; scanner.Scan(); rowIdx++ {
		line := scanner.Text()
		row := make([]bool, 0, len(line))
		for colIdx, c := range line {
			row = append(row, c == '#')
			if c == '*' && rowIdx%2 == 1 && colIdx%2 == 1 {
				exit = &Cell{Row: rowIdx, Col: colIdx}
			}
		}
		grid = append(grid, row)
	}
	if err := scanner.Err(); err != nil {
		panic(fmt.Sprintf("maze: read %s: %v", path, err))
	}

	return grid, exit
}
