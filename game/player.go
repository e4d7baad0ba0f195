// Package game holds the player, the chasing enemy, and the per-level
// timer and screen state that tie maze generation and collision into a
// playable loop.
package game

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/mirador/collision"
	"github.com/lixenwraith/mirador/maze"
	"github.com/lixenwraith/mirador/parameter"
	"github.com/lixenwraith/mirador/world"
)

// Player is the first-person avatar. Position is in world units; Pitch
// and Yaw are degrees. CurrentCell tracks position in wall-grid
// coordinates, matching the units the maze exit is stored in.
type Player struct {
	Position mgl32.Vec3
	Pitch    float32
	Yaw      float32
	FOV      float32

	BaseSpeed        float32
	Speed            float32
	MouseSensitivity float32

	CurrentCell maze.Cell
}

func NewPlayer() *Player {
	return &Player{
		Position:         mgl32.Vec3{0, world.PlayerHeight, 0},
		Pitch:            parameter.PlayerDefaultPitch,
		Yaw:              parameter.PlayerDefaultYaw,
		FOV:              parameter.PlayerDefaultFOV,
		BaseSpeed:        parameter.PlayerSpeed,
		Speed:            parameter.PlayerSpeed,
		MouseSensitivity: parameter.PlayerMouseSensitivity,
	}
}

func (p *Player) forwardXZ() (float32, float32) {
	rad := float64(mgl32.DegToRad(p.Yaw))
	return float32(math.Sin(rad)), float32(math.Cos(rad))
}

func (p *Player) rightXZ() (float32, float32) {
	rad := float64(mgl32.DegToRad(p.Yaw))
	return float32(math.Cos(rad)), float32(math.Sin(rad))
}

// MoveForward advances along the current yaw heading.
func (p *Player) MoveForward(dt float32) {
	fx, fz := p.forwardXZ()
	p.Position[0] -= fx * p.Speed * dt
	p.Position[2] -= fz * p.Speed * dt
}

func (p *Player) MoveBackward(dt float32) {
	fx, fz := p.forwardXZ()
	p.Position[0] += fx * p.Speed * dt
	p.Position[2] += fz * p.Speed * dt
}

func (p *Player) MoveLeft(dt float32) {
	rx, rz := p.rightXZ()
	p.Position[0] -= rx * p.Speed * dt
	p.Position[2] += rz * p.Speed * dt
}

func (p *Player) MoveRight(dt float32) {
	rx, rz := p.rightXZ()
	p.Position[0] += rx * p.Speed * dt
	p.Position[2] -= rz * p.Speed * dt
}

// SetSprinting raises movement speed while held, restoring the base
// speed when released.
func (p *Player) SetSprinting(on bool) {
	if on {
		p.Speed = p.BaseSpeed * parameter.PlayerSprintMultiplier
	} else {
		p.Speed = p.BaseSpeed
	}
}

// MoveUp changes flight height directly, used by debug free-look.
func (p *Player) MoveUp(dt float32) {
	p.Position[1] += p.Speed * dt
}

// MouseMovement applies look deltas, clamping pitch to avoid flipping.
func (p *Player) MouseMovement(deltaX, deltaY float32) {
	p.Yaw -= deltaX * p.MouseSensitivity
	p.Pitch -= deltaY * p.MouseSensitivity
	p.Pitch = mgl32.Clamp(p.Pitch, -parameter.PlayerPitchLimit, parameter.PlayerPitchLimit)
}

// MoveWithCollision composes the desired position from the pressed
// movement flags and lets the collision system resolve it.
func (p *Player) MoveWithCollision(sys *collision.System, dt float32, forward, backward, left, right bool) {
	current := p.Position
	desired := current

	if forward {
		fx, fz := p.forwardXZ()
		desired[0] -= fx * p.Speed * dt
		desired[2] -= fz * p.Speed * dt
	}
	if backward {
		fx, fz := p.forwardXZ()
		desired[0] += fx * p.Speed * dt
		desired[2] += fz * p.Speed * dt
	}
	if left {
		rx, rz := p.rightXZ()
		desired[0] -= rx * p.Speed * dt
		desired[2] += rz * p.Speed * dt
	}
	if right {
		rx, rz := p.rightXZ()
		desired[0] += rx * p.Speed * dt
		desired[2] -= rz * p.Speed * dt
	}

	p.Position = sys.CheckAndResolveCollision(current, desired)
}

// UpdateCell refreshes CurrentCell from the world position. The grid is
// the wall grid, so the cell is in wall-grid coordinates.
func (p *Player) UpdateCell(grid [][]bool, testMode bool) {
	if len(grid) == 0 {
		return
	}
	p.CurrentCell = world.WorldToMaze(p.Position, len(grid[0]), len(grid), testMode)
}

// SpawnAtMazeEntrance places the player in the bottom-left corner facing
// north, into the maze.
func (p *Player) SpawnAtMazeEntrance(grid [][]bool, testMode bool) {
	if len(grid) == 0 {
		return
	}
	width, height := len(grid[0]), len(grid)

	entrance := world.BottomLeftCell(width, height)
	p.Position = world.MazeToWorld(entrance, width, height, world.PlayerHeight, testMode)
	p.CurrentCell = entrance
	p.Yaw = world.DirectionToYaw(world.North)
}
