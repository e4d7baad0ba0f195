package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/lixenwraith/mirador/maze"
	"github.com/lixenwraith/mirador/parameter"
)

func main() {
	reader := bufio.NewReader(os.Stdin)

	for {
		fmt.Println("\n=== KRUSKAL MAZE GENERATOR ===")

		w := getInt(reader, fmt.Sprintf("Width in cells (default %d): ", parameter.MazeDefaultWidth), parameter.MazeDefaultWidth)
		h := getInt(reader, fmt.Sprintf("Height in cells (default %d): ", parameter.MazeDefaultHeight), parameter.MazeDefaultHeight)

		fmt.Println("\nGenerating...")
		startT := time.Now()

		gen := maze.NewGenerator(w, h)
		lastReport := -1
		for gen.Step() {
			processed, total := gen.Progress()
			pct := processed * 100 / total
			if pct/10 != lastReport {
				lastReport = pct / 10
				mode := ""
				if gen.FastMode() {
					mode = " [fast]"
				}
				fmt.Printf("  %3d%%%s\n", pct, mode)
			}
		}
		dur := time.Since(startT)

		m := gen.Maze()
		fmt.Printf("Done in %v\n", dur)
		fmt.Printf("Grid Dimensions: %dx%d\n", len(m.Walls[0]), len(m.Walls))

		draw(m)

		path, err := m.SaveToFile()
		if err != nil {
			fmt.Printf("Save failed: %v\n", err)
		} else {
			fmt.Printf("Saved to %s\n", path)
		}

		fmt.Print("\nGenerate another? [Y/n]: ")
		cont, _ := reader.ReadString('\n')
		if strings.ToLower(strings.TrimSpace(cont)) == "n" {
			break
		}
	}
}

func draw(m *maze.Maze) {
	// Entrance at the bottom-left cell, exit wherever generation put it
	start := maze.Cell{Row: 2*m.Height - 1, Col: 1}
	var end maze.Cell
	if m.ExitCell != nil {
		end = maze.Cell{Row: m.ExitCell.Row*2 + 1, Col: m.ExitCell.Col*2 + 1}
	}

	solution := maze.Solve(m.Walls, start, end)
	pathMap := make(map[maze.Cell]bool, len(solution))
	for _, c := range solution {
		pathMap[c] = true
	}

	if solution != nil {
		fmt.Printf("Solution Path Length: %d steps\n", len(solution))
	} else {
		fmt.Println("Status: Unsolvable (Isolated Start/End)")
	}

	for row, cells := range m.Walls {
		for col, isWall := range cells {
			c := maze.Cell{Row: row, Col: col}
			switch {
			case c == start:
				fmt.Print("S")
			case c == end:
				fmt.Print("E")
			case isWall:
				fmt.Print("█")
			case pathMap[c]:
				fmt.Print("•")
			default:
				fmt.Print(" ")
			}
		}
		fmt.Println()
	}
}

func getInt(r *bufio.Reader, prompt string, def int) int {
	fmt.Print(prompt)
	s, _ := r.ReadString('\n')
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	v, err := strconv.Atoi(s)
	if err != nil || v < 1 {
		return def
	}
	return v
}
