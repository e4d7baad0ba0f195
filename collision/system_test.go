package collision

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

// arenaSystem builds a system over a 15x15 perimeter-only grid in test
// mode: cell size 100, open interior, interior-facing wall planes at
// x=650 (east) and z=650 (south).
func arenaSystem() *System {
	n := 15
	grid := make([][]bool, n)
	for z := range grid {
		grid[z] = make([]bool, n)
		for x := range grid[z] {
			grid[z][x] = z == 0 || x == 0 || z == n-1 || x == n-1
		}
	}
	s := NewSystem(5, 100)
	s.BuildFromMaze(grid, true)
	return s
}

type countingListener struct {
	hits int
}

func (c *countingListener) WallHit() { c.hits++ }

func vecNear(a, b mgl32.Vec3, eps float32) bool {
	d := a.Sub(b)
	return abs32(d[0]) <= eps && abs32(d[1]) <= eps && abs32(d[2]) <= eps
}

func TestResolveOpenSpace(t *testing.T) {
	s := arenaSystem()

	p := mgl32.Vec3{0, 0, 0}
	if got := s.CheckAndResolveCollision(p, p); got != p {
		t.Errorf("at rest in open space: got %v, want %v", got, p)
	}

	q := mgl32.Vec3{50, 0, -30}
	if got := s.CheckAndResolveCollision(p, q); got != q {
		t.Errorf("open-space move: got %v, want %v", got, q)
	}
}

func TestResolveHeadOnFullStop(t *testing.T) {
	s := arenaSystem()

	current := mgl32.Vec3{0, 0, 600}
	desired := mgl32.Vec3{0, 0, 648}

	got := s.CheckAndResolveCollision(current, desired)
	if !vecNear(got, current, 1e-3) {
		t.Errorf("head-on into wall: got %v, want full stop at %v", got, current)
	}
}

func TestResolveSlideAlongWall(t *testing.T) {
	s := arenaSystem()

	current := mgl32.Vec3{100, 0, 600}
	desired := mgl32.Vec3{110, 0, 648}

	got := s.CheckAndResolveCollision(current, desired)

	if abs32(got.X()-110) > 1e-3 {
		t.Errorf("lateral component lost: x = %v, want 110", got.X())
	}
	if got.Z() > 645+1e-3 {
		t.Errorf("slide penetrated wall plane: z = %v", got.Z())
	}
}

func TestResolveNeverIncreasesPenetration(t *testing.T) {
	s := arenaSystem()
	const wallPlane = float32(650)

	starts := []mgl32.Vec3{
		{0, 0, 600}, {-200, 0, 610}, {330, 0, 590},
	}
	for _, current := range starts {
		for _, dz := range []float32{40, 50, 55} {
			desired := current.Add(mgl32.Vec3{3, 0, dz})
			got := s.CheckAndResolveCollision(current, desired)

			desiredDist := abs32(wallPlane - desired.Z())
			gotDist := abs32(wallPlane - got.Z())
			if gotDist < desiredDist-1e-3 {
				t.Errorf("from %v toward %v: resolved %v is closer to wall than desired",
					current, desired, got)
			}
		}
	}
}

func TestWallHitFiredOncePerEvent(t *testing.T) {
	s := arenaSystem()
	listener := &countingListener{}
	s.SetListener(listener)

	s.CheckAndResolveCollision(mgl32.Vec3{0, 0, 600}, mgl32.Vec3{0, 0, 648})
	if listener.hits != 1 {
		t.Errorf("head-on collision fired WallHit %d times, want 1", listener.hits)
	}

	s.CheckAndResolveCollision(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{10, 0, 0})
	if listener.hits != 1 {
		t.Errorf("open-space move fired WallHit, count now %d", listener.hits)
	}
}

// pinchFaces returns two distinct walls facing each other across an
// 8-unit gap, narrower than the player diameter.
func pinchFaces(zStart float32) []WallFace {
	return []WallFace{
		xFacingWall(-4, zStart, 100, 100, true),
		xFacingWall(4, zStart, 100, 100, false),
	}
}

func TestPinnedHeldInPlace(t *testing.T) {
	s := NewSystem(5, 100)
	s.BuildFromFaces(pinchFaces(-50))

	current := mgl32.Vec3{0, 0, 0}
	desired := mgl32.Vec3{0.5, 0, 0}

	got := s.CheckAndResolveCollision(current, desired)
	if got != current {
		t.Errorf("pinned with no free escape: got %v, want %v", got, current)
	}
}

func TestPinnedEscapes(t *testing.T) {
	s := NewSystem(5, 100)
	// Walls start at z=3, so backing off along -Z clears them
	s.BuildFromFaces(pinchFaces(3))

	current := mgl32.Vec3{0, 0, 0}
	desired := mgl32.Vec3{0.5, 0, 0}

	got := s.CheckAndResolveCollision(current, desired)
	want := mgl32.Vec3{0, 0, -2.5}
	if !vecNear(got, want, 1e-3) {
		t.Errorf("pinned escape: got %v, want %v", got, want)
	}
}

func TestCoplanarPairIsNotPinned(t *testing.T) {
	s := arenaSystem()

	// Contact with a single double-sided wall must slide, not escape
	current := mgl32.Vec3{200, 0, 600}
	desired := mgl32.Vec3{210, 0, 648}

	got := s.CheckAndResolveCollision(current, desired)
	if abs32(got.X()-210) > 1e-3 {
		t.Errorf("wall contact treated as pinch: got %v, want slide to x=210", got)
	}
}
