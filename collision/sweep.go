package collision

import "github.com/go-gl/mathgl/mgl32"

const sweepParallelEpsilon = 0.0001

// CylinderIntersectsGeometry reports whether sweeping a cylinder of the
// given radius along the segment from start to end touches any wall
// face. Used for enemy path probing and line-of-sight checks.
func (s *System) CylinderIntersectsGeometry(start, end mgl32.Vec3, radius float32) bool {
	swept := NewAABB(
		mgl32.Vec3{
			min32(start[0], end[0]) - radius,
			min32(start[1], end[1]) - radius,
			min32(start[2], end[2]) - radius,
		},
		mgl32.Vec3{
			max32(start[0], end[0]) + radius,
			max32(start[1], end[1]) + radius,
			max32(start[2], end[2]) + radius,
		},
	)

	for _, face := range s.bvh.Query(swept) {
		if sweptCylinderHitsFace(start, end, radius, face) {
			return true
		}
	}
	return false
}

// LineIsClear reports whether the segment between two points is free of
// walls when swept with the player radius. Satisfies the line-of-sight
// dependency of the enemy pathfinder.
func (s *System) LineIsClear(from, to mgl32.Vec3) bool {
	return !s.CylinderIntersectsGeometry(from, to, s.playerRadius)
}

// sweptCylinderHitsFace tests a radius-padded segment against one
// axis-aligned wall face. The face's dominant normal axis selects the
// plane; the remaining two axes form the face's 2D footprint.
func sweptCylinderHitsFace(start, end mgl32.Vec3, radius float32, face *WallFace) bool {
	axis := dominantAxis(face.Normal)
	u, v := otherAxes(axis)

	planeCoord := face.Corners[0][axis]
	d0 := start[axis] - planeCoord
	d1 := end[axis] - planeCoord

	// Entire sweep on one side of the plane, farther than the radius
	if d0*d1 > 0 && abs32(d0) > radius && abs32(d1) > radius {
		return false
	}

	if abs32(d1-d0) > sweepParallelEpsilon {
		// Segment crosses or approaches the plane; test the footprint at
		// the clamped closest-approach point.
		t := mgl32.Clamp(d0/(d0-d1), 0, 1)
		p := start.Add(end.Sub(start).Mul(t))
		return spanOverlaps(p[u]-radius, p[u]+radius, face.Bounds.Min[u], face.Bounds.Max[u]) &&
			spanOverlaps(p[v]-radius, p[v]+radius, face.Bounds.Min[v], face.Bounds.Max[v])
	}

	// Segment runs parallel to the plane
	if abs32(d0) > radius {
		return false
	}
	return spanOverlaps(
		min32(start[u], end[u])-radius, max32(start[u], end[u])+radius,
		face.Bounds.Min[u], face.Bounds.Max[u],
	) && spanOverlaps(
		min32(start[v], end[v])-radius, max32(start[v], end[v])+radius,
		face.Bounds.Min[v], face.Bounds.Max[v],
	)
}

func dominantAxis(n mgl32.Vec3) int {
	ax, ay, az := abs32(n[0]), abs32(n[1]), abs32(n[2])
	if ax >= ay && ax >= az {
		return 0
	}
	if ay >= az {
		return 1
	}
	return 2
}

func otherAxes(axis int) (int, int) {
	switch axis {
	case 0:
		return 1, 2
	case 1:
		return 0, 2
	default:
		return 0, 1
	}
}

func spanOverlaps(minA, maxA, minB, maxB float32) bool {
	return minA <= maxB && maxA >= minB
}

func min32(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func max32(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
