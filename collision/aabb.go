// Package collision detects and resolves player movement against the
// maze's extruded wall geometry. Wall quads are indexed by a bounding
// volume hierarchy; movement resolves with wall sliding, and a swept
// cylinder test serves as the enemy's line-of-sight oracle.
package collision

import "github.com/go-gl/mathgl/mgl32"

// AABB is an axis-aligned box, the primitive for all broad-phase tests.
// Invariant: Min[i] <= Max[i] on every axis.
type AABB struct {
	Min, Max mgl32.Vec3
}

// NewAABB builds a box from its corner points.
func NewAABB(min, max mgl32.Vec3) AABB {
	return AABB{Min: min, Max: max}
}

// AABBFromQuad is the tightest box containing four corner points.
func AABBFromQuad(p1, p2, p3, p4 mgl32.Vec3) AABB {
	min := p1
	max := p1
	for _, p := range []mgl32.Vec3{p2, p3, p4} {
		for i := 0; i < 3; i++ {
			if p[i] < min[i] {
				min[i] = p[i]
			}
			if p[i] > max[i] {
				max[i] = p[i]
			}
		}
	}
	return AABB{Min: min, Max: max}
}

// Expand grows the box in place to fully contain other.
func (a *AABB) Expand(other AABB) {
	for i := 0; i < 3; i++ {
		if other.Min[i] < a.Min[i] {
			a.Min[i] = other.Min[i]
		}
		if other.Max[i] > a.Max[i] {
			a.Max[i] = other.Max[i]
		}
	}
}

// Intersects reports overlap on all three axes. Touching boxes intersect.
func (a AABB) Intersects(other AABB) bool {
	for i := 0; i < 3; i++ {
		if a.Max[i] < other.Min[i] || a.Min[i] > other.Max[i] {
			return false
		}
	}
	return true
}

// Center is the box midpoint, used for BVH partitioning and closest-face
// selection during resolution.
func (a AABB) Center() mgl32.Vec3 {
	return mgl32.Vec3{
		(a.Min[0] + a.Max[0]) * 0.5,
		(a.Min[1] + a.Max[1]) * 0.5,
		(a.Min[2] + a.Max[2]) * 0.5,
	}
}

// SurfaceArea of the box.
func (a AABB) SurfaceArea() float32 {
	dx := a.Max[0] - a.Min[0]
	dy := a.Max[1] - a.Min[1]
	dz := a.Max[2] - a.Min[2]
	return 2.0 * (dx*dy + dy*dz + dz*dx)
}
