package game

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/mirador/parameter"
)

// LineOfSight answers whether a straight path between two points is free
// of walls. The collision system provides the real implementation; tests
// substitute fakes.
type LineOfSight interface {
	LineIsClear(from, to mgl32.Vec3) bool
}

// Pathfinder steers the enemy toward a target, probing rotated headings
// when the direct line is blocked.
type Pathfinder struct {
	Position mgl32.Vec3
	Target   mgl32.Vec3

	PathRadius       float32
	RotationStep     float32
	ArrivalThreshold float32
	Speed            float32

	// Locked freezes the enemy, used while the timer is paused and on
	// menu screens.
	Locked bool
}

// Enemy is the maze stalker chasing the player.
type Enemy struct {
	Pathfinder Pathfinder
	Size       float32
}

// NewEnemy creates an enemy at the given position with base tuning.
func NewEnemy(position mgl32.Vec3) *Enemy {
	return &Enemy{
		Pathfinder: Pathfinder{
			Position:         position,
			PathRadius:       parameter.EnemyPathRadius,
			RotationStep:     parameter.EnemyRotationStep,
			ArrivalThreshold: parameter.EnemyArrivalThreshold,
			Speed:            parameter.EnemyBaseSpeed,
			Locked:           true,
		},
		Size: 100.0,
	}
}

// Update advances the enemy toward the player for one frame. Movement
// stays in the horizontal plane; speed grows with the level.
func (e *Enemy) Update(playerPos mgl32.Vec3, dt float32, level int, los LineOfSight) {
	pf := &e.Pathfinder
	if pf.Locked || dt <= 0 {
		return
	}

	target := mgl32.Vec3{playerPos.X(), pf.Position.Y(), playerPos.Z()}
	pf.Target = target

	toTarget := target.Sub(pf.Position)
	dist := toTarget.Len()
	if dist < pf.ArrivalThreshold {
		return
	}

	heading, ok := pf.clearHeading(toTarget.Mul(1/dist), los)
	if !ok {
		return
	}

	speed := pf.Speed + parameter.EnemySpeedPerLevel*float32(level-1)
	step := speed * dt
	if step > dist {
		step = dist
	}
	pf.Position = pf.Position.Add(heading.Mul(step))
}

// clearHeading returns the first unobstructed direction, starting with
// the direct one and fanning out in alternating rotation steps.
func (pf *Pathfinder) clearHeading(direct mgl32.Vec3, los LineOfSight) (mgl32.Vec3, bool) {
	if pf.headingClear(direct, los) {
		return direct, true
	}

	for i := 1; i <= parameter.EnemyMaxProbes; i++ {
		angle := pf.RotationStep * float32((i+1)/2)
		if i%2 == 0 {
			angle = -angle
		}
		candidate := mgl32.Rotate3DY(angle).Mul3x1(direct)
		if pf.headingClear(candidate, los) {
			return candidate, true
		}
	}
	return mgl32.Vec3{}, false
}

func (pf *Pathfinder) headingClear(dir mgl32.Vec3, los LineOfSight) bool {
	probe := pf.Position.Add(dir.Mul(parameter.EnemyProbeDistance))
	return los.LineIsClear(pf.Position, probe)
}
