package collision

import "github.com/go-gl/mathgl/mgl32"

// resolveEpsilon is the minimum per-axis movement distinguishing progress
// from a true stuck state during iterative resolution.
const resolveEpsilon = 0.0001

// pinnedDot marks two face normals as nearly anti-parallel, the signature
// of a player wedged between opposing walls.
const pinnedDot = -0.95

// coplanarEpsilon separates genuine opposing wall pairs from the front
// and back copies of a single wall, which share one plane.
const coplanarEpsilon = 0.001

// maxResolveIterations bounds the slide loop; corner cases converge in
// two or three passes.
const maxResolveIterations = 5

// HitListener receives the wall-hit side effect, at most once per
// resolved collision event. The audio manager implements it.
type HitListener interface {
	WallHit()
}

type noopListener struct{}

func (noopListener) WallHit() {}

// System owns the wall BVH and resolves player movement against it. The
// player is modeled as an upright cylinder-shaped box of fixed radius and
// height. Long-lived; rebuilt via BuildFromMaze when a level loads.
type System struct {
	bvh          BVH
	playerRadius float32
	playerHeight float32

	mazeWidth  int
	mazeHeight int

	listener HitListener
}

// NewSystem creates a collision system for a player cylinder of the given
// radius and height, with no geometry loaded.
func NewSystem(playerRadius, playerHeight float32) *System {
	return &System{
		playerRadius: playerRadius,
		playerHeight: playerHeight,
		listener:     noopListener{},
	}
}

// SetListener installs the wall-hit side effect receiver. A nil listener
// restores the no-op default.
func (s *System) SetListener(l HitListener) {
	if l == nil {
		s.listener = noopListener{}
		return
	}
	s.listener = l
}

// BuildFromMaze extracts wall faces from the boolean wall grid and
// rebuilds the BVH over them.
func (s *System) BuildFromMaze(grid [][]bool, testMode bool) {
	if len(grid) == 0 {
		s.bvh.Build(nil)
		s.mazeWidth, s.mazeHeight = 0, 0
		return
	}
	s.mazeWidth = len(grid[0])
	s.mazeHeight = len(grid)
	s.bvh.Build(ExtractWallFaces(grid, testMode))
}

// BuildFromFaces indexes pre-built geometry directly, bypassing maze
// extraction.
func (s *System) BuildFromFaces(faces []WallFace) {
	s.bvh.Build(faces)
}

// MazeDimensions returns the cached wall-grid size of the loaded maze.
func (s *System) MazeDimensions() (int, int) {
	return s.mazeWidth, s.mazeHeight
}

// FaceCount reports the number of wall faces currently indexed.
func (s *System) FaceCount() int {
	return s.bvh.FaceCount()
}

func (s *System) playerBox(pos mgl32.Vec3) AABB {
	return AABB{
		Min: mgl32.Vec3{pos[0] - s.playerRadius, pos[1], pos[2] - s.playerRadius},
		Max: mgl32.Vec3{pos[0] + s.playerRadius, pos[1] + s.playerHeight, pos[2] + s.playerRadius},
	}
}

// CheckAndResolveCollision returns where the player ends up after
// attempting to move from current to desired. Movement into walls slides
// along them; a player pinned between opposing faces is nudged free or
// held in place.
func (s *System) CheckAndResolveCollision(current, desired mgl32.Vec3) mgl32.Vec3 {
	candidates := s.bvh.Query(s.playerBox(desired))
	if len(candidates) == 0 {
		return desired
	}

	if s.isPinned(desired, candidates) {
		return s.escapePinned(current)
	}

	resolved := desired
	wallHitPlayed := false

	for iter := 0; iter < maxResolveIterations; iter++ {
		hits := s.bvh.Query(s.playerBox(resolved))
		if len(hits) == 0 {
			break
		}

		closest := closestFace(hits, resolved)

		next, slid := resolveWallCollision(current, resolved, closest)
		if slid && !wallHitPlayed {
			s.listener.WallHit()
			wallHitPlayed = true
		}
		resolved = next

		// No meaningful movement left means a true stuck state; escaping
		// here would fight the slide that produced it.
		delta := resolved.Sub(current)
		if abs32(delta[0]) <= resolveEpsilon &&
			abs32(delta[1]) <= resolveEpsilon &&
			abs32(delta[2]) <= resolveEpsilon {
			break
		}
	}

	return resolved
}

// isPinned reports whether any two candidate faces oppose each other
// with the player position within playerRadius of both planes.
func (s *System) isPinned(pos mgl32.Vec3, faces []*WallFace) bool {
	for i := 0; i < len(faces); i++ {
		for j := i + 1; j < len(faces); j++ {
			if faces[i].Normal.Dot(faces[j].Normal) >= pinnedDot {
				continue
			}
			// Front and back copies of one wall are anti-parallel but
			// coplanar; only distinct opposing planes count as a pinch.
			sep := abs32(faces[j].Corners[0].Sub(faces[i].Corners[0]).Dot(faces[i].Normal))
			if sep <= coplanarEpsilon {
				continue
			}
			di := abs32(pos.Sub(faces[i].Corners[0]).Dot(faces[i].Normal))
			dj := abs32(pos.Sub(faces[j].Corners[0]).Dot(faces[j].Normal))
			if di < s.playerRadius && dj < s.playerRadius {
				return true
			}
		}
	}
	return false
}

// escapePinned tries four cardinal half-radius offsets from current and
// returns the first collision-free one, or current unchanged.
func (s *System) escapePinned(current mgl32.Vec3) mgl32.Vec3 {
	step := s.playerRadius / 2
	offsets := []mgl32.Vec3{
		{step, 0, 0},
		{-step, 0, 0},
		{0, 0, step},
		{0, 0, -step},
	}
	for _, off := range offsets {
		candidate := current.Add(off)
		if len(s.bvh.Query(s.playerBox(candidate))) == 0 {
			return candidate
		}
	}
	return current
}

// closestFace picks the candidate whose bounds center is nearest pos.
func closestFace(faces []*WallFace, pos mgl32.Vec3) *WallFace {
	closest := faces[0]
	closestDistSq := float32(0)
	for i, face := range faces {
		d := face.Bounds.Center().Sub(pos)
		distSq := d.Dot(d)
		if i == 0 || distSq < closestDistSq {
			closestDistSq = distSq
			closest = face
		}
	}
	return closest
}

// resolveWallCollision projects the movement onto the wall plane. The
// slide is applied from current, not the penetrating desired position,
// so penetration cannot accumulate across iterations. Returns the new
// position and whether a slide occurred.
func resolveWallCollision(current, desired mgl32.Vec3, face *WallFace) (mgl32.Vec3, bool) {
	movement := desired.Sub(current)

	// Orient the normal against the direction of travel
	effectiveNormal := face.Normal
	if movement.Dot(face.Normal) >= 0 {
		effectiveNormal = face.Normal.Mul(-1)
	}

	movementDot := movement.Dot(effectiveNormal)
	if movementDot < 0 {
		slide := movement.Sub(effectiveNormal.Mul(movementDot))
		return current.Add(slide), true
	}

	return desired, false
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
