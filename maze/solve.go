package maze

// Solve runs BFS over open wall-grid slots from start to end, both in
// wall-grid coordinates. Returns the path including both endpoints, or nil
// if unreachable or either endpoint is a wall.
func Solve(grid [][]bool, start, end Cell) []Cell {
	if len(grid) == 0 || len(grid[0]) == 0 {
		return nil
	}
	rows, cols := len(grid), len(grid[0])
	inBounds := func(c Cell) bool {
		return c.Row >= 0 && c.Row < rows && c.Col >= 0 && c.Col < cols
	}
	if !inBounds(start) || !inBounds(end) {
		return nil
	}
	if grid[start.Row][start.Col] || grid[end.Row][end.Col] {
		return nil
	}

	dirs := []Cell{{Row: -1}, {Row: 1}, {Col: -1}, {Col: 1}}

	queue := []Cell{start}
	cameFrom := make(map[Cell]Cell)
	visited := map[Cell]bool{start: true}

	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]

		if curr == end {
			var path []Cell
			for curr != start {
				path = append([]Cell{curr}, path...)
				curr = cameFrom[curr]
			}
			return append([]Cell{start}, path...)
		}

		for _, d := range dirs {
			next := Cell{Row: curr.Row + d.Row, Col: curr.Col + d.Col}
			if inBounds(next) && !grid[next.Row][next.Col] && !visited[next] {
				visited[next] = true
				cameFrom[next] = curr
				queue = append(queue, next)
			}
		}
	}
	return nil
}
