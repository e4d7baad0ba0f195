package collision

import "github.com/go-gl/mathgl/mgl32"

// WallFace is one collidable quad of extruded wall geometry. Immutable
// after construction.
type WallFace struct {
	Corners [4]mgl32.Vec3
	Normal  mgl32.Vec3
	Bounds  AABB
}

// NewWallFace derives the unit normal and bounding box from the corner
// winding. Corners must be non-degenerate.
func NewWallFace(corners [4]mgl32.Vec3) WallFace {
	return WallFace{
		Corners: corners,
		Normal:  quadNormal(corners),
		Bounds:  AABBFromQuad(corners[0], corners[1], corners[2], corners[3]),
	}
}

// quadNormal is normalize(v x u) for edge vectors u = c1-c0, v = c2-c0.
// The swapped cross order makes the normal point against the winding.
func quadNormal(corners [4]mgl32.Vec3) mgl32.Vec3 {
	u := corners[1].Sub(corners[0])
	v := corners[2].Sub(corners[0])
	return v.Cross(u).Normalize()
}
