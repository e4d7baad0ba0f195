package maze

import "math/rand"

// FastThreshold is the remaining-edge count at which the generator flags
// fast mode; the animation loop batches more steps per frame once set.
const FastThreshold = 600

// Generator builds a perfect maze with randomized Kruskal's algorithm, one
// shuffled edge per Step call. It is the single owner of its Maze: callers
// step and read the preview from the same update loop.
type Generator struct {
	maze      *Maze
	unionFind *UnionFind
	edges     []Edge
	current   int
	complete  bool
	connected map[Cell]struct{}
	fastMode  bool
}

// NewGenerator registers every cell as a singleton set, opens the cell
// slots in the grid, and shuffles the full adjacency edge list.
func NewGenerator(width, height int) *Generator {
	m := New(width, height)
	uf := NewUnionFind()

	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			uf.MakeSet(Cell{Row: row, Col: col})
			m.Walls[row*2+1][col*2+1] = Passage
		}
	}

	// Horizontal and vertical adjacencies only, each once
	var edges []Edge
	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			current := Cell{Row: row, Col: col}
			if col+1 < width {
				edges = append(edges, Edge{A: current, B: Cell{Row: row, Col: col + 1}})
			}
			if row+1 < height {
				edges = append(edges, Edge{A: current, B: Cell{Row: row + 1, Col: col}})
			}
		}
	}
	rand.Shuffle(len(edges), func(i, j int) {
		edges[i], edges[j] = edges[j], edges[i]
	})

	m.TotalEdges = len(edges)

	g := &Generator{
		maze:      m,
		unionFind: uf,
		edges:     edges,
		connected: make(map[Cell]struct{}),
	}
	if len(edges) == 0 {
		g.finish()
	}
	return g
}

// Step consumes the next shuffled edge. Returns true if a wall was removed,
// false if the edge was rejected or generation is already complete.
func (g *Generator) Step() bool {
	if g.complete {
		return false
	}

	if !g.fastMode && len(g.edges)-g.current <= FastThreshold {
		g.fastMode = true
	}

	edge := g.edges[g.current]
	g.current++
	g.maze.ProcessedEdges++

	removed := false
	if g.unionFind.Union(edge.A, edge.B) {
		wallRow := edge.A.Row + edge.B.Row + 1
		wallCol := edge.A.Col + edge.B.Col + 1
		g.maze.Walls[wallRow][wallCol] = Passage

		g.connected[edge.A] = struct{}{}
		g.connected[edge.B] = struct{}{}
		removed = true
	}

	if g.current >= len(g.edges) {
		g.finish()
	}
	return removed
}

func (g *Generator) finish() {
	g.complete = true
	g.maze.SetRandomExit()
}

// IsComplete reports whether every edge has been consumed.
func (g *Generator) IsComplete() bool {
	return g.complete
}

// Progress returns the (processed, total) edge counts the maze carries.
func (g *Generator) Progress() (int, int) {
	return g.maze.ProcessedEdges, g.maze.TotalEdges
}

// ProgressRatio is processed/total, 1.0 for a maze with no edges.
func (g *Generator) ProgressRatio() float32 {
	if len(g.edges) == 0 {
		return 1.0
	}
	return float32(g.current) / float32(len(g.edges))
}

// FastMode reports whether the remaining edge count has dropped to or
// below FastThreshold.
func (g *Generator) FastMode() bool {
	return g.fastMode
}

// Connected returns the set of cells joined to the spanning tree so far.
// The map is live; callers must not mutate it.
func (g *Generator) Connected() map[Cell]struct{} {
	return g.connected
}

// Maze returns the grid under construction.
func (g *Generator) Maze() *Maze {
	return g.maze
}
