package collision

import (
	"math"
	"sort"
)

// leafFaceLimit caps faces per leaf; below it brute force beats traversal.
const leafFaceLimit = 4

// splitTrials is the number of candidate positions scored per axis when
// choosing a split axis. The trials pick the axis only; the actual cut is
// always at the median face.
const splitTrials = 8

const noChild = int32(-1)

// bvhNode lives in the BVH's node arena. Leaves reference a contiguous
// face range; internal nodes reference two child indices. A node's bounds
// always contain its whole subtree.
type bvhNode struct {
	bounds      AABB
	left, right int32 // noChild for leaves
	firstFace   int32
	faceCount   int32
}

// BVH is a flat-array bounding volume hierarchy over wall faces. Built
// once per maze and immutable afterwards; a maze change rebuilds it
// wholesale.
type BVH struct {
	nodes []bvhNode
	faces []WallFace
	root  int32
}

// Build replaces the hierarchy with one over the given faces. The face
// slice is reordered during partitioning. An empty build leaves a BVH
// whose queries return nothing.
func (b *BVH) Build(faces []WallFace) {
	b.nodes = b.nodes[:0]
	b.faces = faces
	b.root = noChild
	if len(faces) == 0 {
		return
	}
	b.root = b.buildRange(0, len(faces))
}

// FaceCount reports the number of indexed faces.
func (b *BVH) FaceCount() int {
	return len(b.faces)
}

// buildRange builds the subtree over faces[start:end) and returns its
// node index. Children are appended before their parent, so the root is
// the last node allocated.
func (b *BVH) buildRange(start, end int) int32 {
	if end-start <= leafFaceLimit {
		bounds := b.faces[start].Bounds
		for i := start + 1; i < end; i++ {
			bounds.Expand(b.faces[i].Bounds)
		}
		b.nodes = append(b.nodes, bvhNode{
			bounds:    bounds,
			left:      noChild,
			right:     noChild,
			firstFace: int32(start),
			faceCount: int32(end - start),
		})
		return int32(len(b.nodes) - 1)
	}

	axis := b.bestSplitAxis(start, end)

	sub := b.faces[start:end]
	sort.Slice(sub, func(i, j int) bool {
		return sub[i].Bounds.Center()[axis] < sub[j].Bounds.Center()[axis]
	})

	mid := start + (end-start)/2
	left := b.buildRange(start, mid)
	right := b.buildRange(mid, end)

	bounds := b.nodes[left].bounds
	bounds.Expand(b.nodes[right].bounds)
	b.nodes = append(b.nodes, bvhNode{
		bounds: bounds,
		left:   left,
		right:  right,
	})
	return int32(len(b.nodes) - 1)
}

// bestSplitAxis scores trial split positions on each axis with a balance
// heuristic and returns the axis with the lowest cost.
func (b *BVH) bestSplitAxis(start, end int) int {
	bestAxis := 0
	bestCost := float32(math.Inf(1))

	for axis := 0; axis < 3; axis++ {
		minCenter := float32(math.Inf(1))
		maxCenter := float32(math.Inf(-1))
		for i := start; i < end; i++ {
			c := b.faces[i].Bounds.Center()[axis]
			if c < minCenter {
				minCenter = c
			}
			if c > maxCenter {
				maxCenter = c
			}
		}

		for i := 1; i < splitTrials; i++ {
			t := float32(i) / float32(splitTrials)
			splitPos := minCenter + t*(maxCenter-minCenter)

			cost := b.splitCost(start, end, axis, splitPos)
			if cost < bestCost {
				bestCost = cost
				bestAxis = axis
			}
		}
	}

	return bestAxis
}

// splitCost is |left - right| for a face count split at splitPos;
// balanced partitions score lowest.
func (b *BVH) splitCost(start, end, axis int, splitPos float32) float32 {
	left, right := 0, 0
	for i := start; i < end; i++ {
		if b.faces[i].Bounds.Center()[axis] < splitPos {
			left++
		} else {
			right++
		}
	}
	d := left - right
	if d < 0 {
		d = -d
	}
	return float32(d)
}

// Query collects every face whose bounds intersect the query box,
// pruning subtrees whose bounds miss it. Traversal is iterative over the
// node arena.
func (b *BVH) Query(query AABB) []*WallFace {
	var results []*WallFace
	b.QueryInto(query, &results)
	return results
}

// QueryInto appends matches to *results, letting hot paths reuse one
// allocation across frames.
func (b *BVH) QueryInto(query AABB, results *[]*WallFace) {
	if b.root == noChild {
		return
	}

	var stack [64]int32
	top := 0
	stack[top] = b.root
	top++

	for top > 0 {
		top--
		node := &b.nodes[stack[top]]
		if !node.bounds.Intersects(query) {
			continue
		}

		if node.left == noChild {
			for i := node.firstFace; i < node.firstFace+node.faceCount; i++ {
				if b.faces[i].Bounds.Intersects(query) {
					*results = append(*results, &b.faces[i])
				}
			}
			continue
		}

		stack[top] = node.left
		top++
		stack[top] = node.right
		top++
	}
}
