package maze

import "fmt"

// UnionFind tracks connectivity of maze cells during Kruskal generation.
// Cells must be registered with MakeSet before Find or Union touches them.
type UnionFind struct {
	parent map[Cell]Cell
	rank   map[Cell]int
}

func NewUnionFind() *UnionFind {
	return &UnionFind{
		parent: make(map[Cell]Cell),
		rank:   make(map[Cell]int),
	}
}

// MakeSet registers cell as a singleton set. Idempotent.
func (uf *UnionFind) MakeSet(cell Cell) {
	if _, ok := uf.parent[cell]; ok {
		return
	}
	uf.parent[cell] = cell
	uf.rank[cell] = 0
}

// Find returns the root of the set containing cell, compressing the path
// as it goes. Calling Find on an unregistered cell is a programming error.
func (uf *UnionFind) Find(cell Cell) Cell {
	p, ok := uf.parent[cell]
	if !ok {
		panic(fmt.Sprintf("maze: Find on unregistered cell %v", cell))
	}
	if p != cell {
		root := uf.Find(p)
		uf.parent[cell] = root
		return root
	}
	return cell
}

// Union merges the sets containing a and b by rank.
// Returns true if a merge occurred, false if they already share a root.
func (uf *UnionFind) Union(a, b Cell) bool {
	root1 := uf.Find(a)
	root2 := uf.Find(b)

	if root1 == root2 {
		return false
	}

	rank1 := uf.rank[root1]
	rank2 := uf.rank[root2]

	switch {
	case rank1 < rank2:
		uf.parent[root1] = root2
	case rank1 > rank2:
		uf.parent[root2] = root1
	default:
		// Ties collapse into root1
		uf.parent[root2] = root1
		uf.rank[root1] = rank1 + 1
	}

	return true
}
