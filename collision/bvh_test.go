package collision

import (
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

// gridFaces lays out n*n unit wall quads on a plane grid, enough to force
// several levels of hierarchy.
func gridFaces(n int) []WallFace {
	faces := make([]WallFace, 0, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			x := float32(i) * 2
			z := float32(j) * 2
			faces = append(faces, zFacingWall(x, z, 1, 1, false))
		}
	}
	return faces
}

// resultSet keys query results by face bounds, which are unique per quad
// in the test layouts.
func resultSet(faces []*WallFace) map[AABB]int {
	set := make(map[AABB]int, len(faces))
	for _, f := range faces {
		set[f.Bounds]++
	}
	return set
}

func TestBVHQueryMatchesBruteForce(t *testing.T) {
	faces := gridFaces(12)
	var b BVH
	b.Build(faces)

	if b.FaceCount() != 144 {
		t.Fatalf("FaceCount() = %d, want 144", b.FaceCount())
	}

	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 50; trial++ {
		lo := mgl32.Vec3{rng.Float32() * 24, -1, rng.Float32() * 24}
		size := mgl32.Vec3{rng.Float32() * 8, 3, rng.Float32() * 8}
		query := NewAABB(lo, lo.Add(size))

		got := resultSet(b.Query(query))

		want := make(map[AABB]int)
		for i := range faces {
			if faces[i].Bounds.Intersects(query) {
				want[faces[i].Bounds]++
			}
		}

		if len(got) != len(want) {
			t.Fatalf("trial %d: query %v returned %d faces, brute force %d",
				trial, query, len(got), len(want))
		}
		for bounds, n := range want {
			if got[bounds] != n {
				t.Errorf("trial %d: face %v count %d, want %d", trial, bounds, got[bounds], n)
			}
		}
	}
}

func TestBVHQueryAll(t *testing.T) {
	faces := gridFaces(5)
	var b BVH
	b.Build(faces)

	everything := NewAABB(mgl32.Vec3{-10, -10, -10}, mgl32.Vec3{100, 100, 100})
	if got := len(b.Query(everything)); got != 25 {
		t.Errorf("query covering all faces returned %d, want 25", got)
	}

	nothing := NewAABB(mgl32.Vec3{500, 500, 500}, mgl32.Vec3{501, 501, 501})
	if got := len(b.Query(nothing)); got != 0 {
		t.Errorf("query far from all faces returned %d, want 0", got)
	}
}

func TestBVHEmpty(t *testing.T) {
	var b BVH
	b.Build(nil)

	if b.FaceCount() != 0 {
		t.Errorf("FaceCount() = %d, want 0", b.FaceCount())
	}
	query := NewAABB(mgl32.Vec3{-1000, -1000, -1000}, mgl32.Vec3{1000, 1000, 1000})
	if got := b.Query(query); len(got) != 0 {
		t.Errorf("empty BVH query returned %d faces", len(got))
	}
}

func TestBVHSingleFace(t *testing.T) {
	var b BVH
	b.Build([]WallFace{zFacingWall(0, 0, 10, 10, false)})

	hit := NewAABB(mgl32.Vec3{4, 4, -1}, mgl32.Vec3{6, 6, 1})
	if got := len(b.Query(hit)); got != 1 {
		t.Errorf("query overlapping the face returned %d, want 1", got)
	}
	miss := NewAABB(mgl32.Vec3{20, 0, 20}, mgl32.Vec3{21, 1, 21})
	if got := len(b.Query(miss)); got != 0 {
		t.Errorf("query missing the face returned %d, want 0", got)
	}
}

func TestBVHQueryInto(t *testing.T) {
	faces := gridFaces(8)
	var b BVH
	b.Build(faces)

	buf := make([]*WallFace, 0, 16)
	query := NewAABB(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{5, 1, 5})

	buf = buf[:0]
	b.QueryInto(query, &buf)
	first := len(buf)

	buf = buf[:0]
	b.QueryInto(query, &buf)
	if len(buf) != first {
		t.Errorf("reused buffer query returned %d, want %d", len(buf), first)
	}
}
