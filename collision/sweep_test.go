package collision

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestCylinderSweepCrossingWall(t *testing.T) {
	s := arenaSystem()

	start := mgl32.Vec3{0, 10, 0}
	end := mgl32.Vec3{0, 10, 700}
	if !s.CylinderIntersectsGeometry(start, end, 5) {
		t.Error("sweep crossing the south wall reported no intersection")
	}
}

func TestCylinderSweepOpenPath(t *testing.T) {
	s := arenaSystem()

	start := mgl32.Vec3{-600, 10, -600}
	end := mgl32.Vec3{600, 10, -600}
	if s.CylinderIntersectsGeometry(start, end, 5) {
		t.Error("sweep across the open arena reported an intersection")
	}
}

func TestCylinderSweepStopsShortOfWall(t *testing.T) {
	s := arenaSystem()

	// Approaches the z=650 plane but stays 20 units away, beyond radius
	start := mgl32.Vec3{0, 10, 500}
	end := mgl32.Vec3{0, 10, 630}
	if s.CylinderIntersectsGeometry(start, end, 5) {
		t.Error("sweep ending short of the wall reported an intersection")
	}
}

func TestCylinderSweepParallelGrazing(t *testing.T) {
	s := arenaSystem()

	// Runs parallel to the south wall within the cylinder radius
	start := mgl32.Vec3{-300, 10, 647}
	end := mgl32.Vec3{300, 10, 647}
	if !s.CylinderIntersectsGeometry(start, end, 5) {
		t.Error("parallel sweep within radius of the wall reported no intersection")
	}

	// Same path but well clear of the wall
	start = mgl32.Vec3{-300, 10, 600}
	end = mgl32.Vec3{300, 10, 600}
	if s.CylinderIntersectsGeometry(start, end, 5) {
		t.Error("parallel sweep far from the wall reported an intersection")
	}
}

func TestCylinderSweepMissesFaceFootprint(t *testing.T) {
	s := NewSystem(5, 100)
	// One wall segment spanning x in [0,100] at z=50
	s.BuildFromFaces([]WallFace{
		zFacingWall(0, 50, 100, 100, false),
		zFacingWall(0, 50, 100, 100, true),
	})

	// Crosses the wall plane but 200 units to the side of the segment
	start := mgl32.Vec3{-200, 10, 0}
	end := mgl32.Vec3{-200, 10, 100}
	if s.CylinderIntersectsGeometry(start, end, 5) {
		t.Error("sweep beside the wall segment reported an intersection")
	}

	// Same crossing within the segment footprint
	start = mgl32.Vec3{50, 10, 0}
	end = mgl32.Vec3{50, 10, 100}
	if !s.CylinderIntersectsGeometry(start, end, 5) {
		t.Error("sweep through the wall segment reported no intersection")
	}
}

func TestLineIsClear(t *testing.T) {
	s := arenaSystem()

	if !s.LineIsClear(mgl32.Vec3{-500, 10, 0}, mgl32.Vec3{500, 10, 0}) {
		t.Error("open line reported blocked")
	}
	if s.LineIsClear(mgl32.Vec3{0, 10, 0}, mgl32.Vec3{0, 10, 700}) {
		t.Error("line through the south wall reported clear")
	}
}
