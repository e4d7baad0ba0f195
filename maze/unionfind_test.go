package maze

import "testing"

func TestUnionFindBasic(t *testing.T) {
	uf := NewUnionFind()
	a := Cell{Row: 0, Col: 0}
	b := Cell{Row: 0, Col: 1}
	c := Cell{Row: 1, Col: 0}

	uf.MakeSet(a)
	uf.MakeSet(b)
	uf.MakeSet(c)

	if uf.Find(a) != a {
		t.Errorf("Fresh set should be its own root, got %v", uf.Find(a))
	}

	if !uf.Union(a, b) {
		t.Error("First union of disjoint sets should merge")
	}
	if uf.Union(a, b) {
		t.Error("Second union of same sets should not merge")
	}
	if uf.Find(a) != uf.Find(b) {
		t.Error("Unioned cells should share a root")
	}
	if uf.Find(a) == uf.Find(c) {
		t.Error("Unrelated cell should have a different root")
	}
}

func TestUnionFindMakeSetIdempotent(t *testing.T) {
	uf := NewUnionFind()
	a := Cell{Row: 2, Col: 3}
	b := Cell{Row: 2, Col: 4}

	uf.MakeSet(a)
	uf.MakeSet(b)
	uf.Union(a, b)

	// Re-registering must not reset membership
	uf.MakeSet(a)
	if uf.Find(a) != uf.Find(b) {
		t.Error("MakeSet on an existing cell reset its set membership")
	}
}

func TestUnionFindRankTieCollapsesIntoFirstRoot(t *testing.T) {
	uf := NewUnionFind()
	a := Cell{Row: 0, Col: 0}
	b := Cell{Row: 0, Col: 1}

	uf.MakeSet(a)
	uf.MakeSet(b)
	uf.Union(a, b)

	if root := uf.Find(b); root != a {
		t.Errorf("Equal-rank union should collapse into the first root, got %v", root)
	}
}

func TestUnionFindFindUnregisteredPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Find on an unregistered cell should panic")
		}
	}()
	NewUnionFind().Find(Cell{Row: 9, Col: 9})
}

func TestUnionFindPathCompression(t *testing.T) {
	uf := NewUnionFind()
	cells := make([]Cell, 50)
	for i := range cells {
		cells[i] = Cell{Row: 0, Col: i}
		uf.MakeSet(cells[i])
	}
	for i := 1; i < len(cells); i++ {
		uf.Union(cells[i-1], cells[i])
	}

	root := uf.Find(cells[0])
	for _, c := range cells {
		if uf.Find(c) != root {
			t.Fatalf("Cell %v not connected to chain root", c)
		}
		if uf.parent[c] != root && uf.parent[c] != c {
			t.Errorf("Path to %v not compressed after Find", c)
		}
	}
}
