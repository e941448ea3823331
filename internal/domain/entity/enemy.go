package entity

import "github.com/younwookim/batcoin/internal/domain/geom"

// AnimationInterval is the number of updates between sprite frames
const AnimationInterval = 4

// Patrol directions used by the flyer while waiting
const (
	PatrolUp   = 0
	PatrolDown = 1
)

// VariantSpec groups the fixed constants of one enemy archetype.
// Adding an archetype means adding a spec and a movement policy.
type VariantSpec struct {
	Variant Variant
	Sprite  string // asset key of the sprite sheet

	SpawnX, SpawnY int
	MaxHealth      int

	FrameCount  int
	FrameWidth  int
	FrameHeight int

	ChaseSpeed int // pixels per frame while following

	// Flyer idle patrol
	PatrolSpeed int
	PatrolTop   int // below this y the patrol turns downward
	PatrolBot   int // above this y the patrol turns upward

	// Runner ground line, 0 when unused
	GroundY int
}

// FlyerSpec is the level 1 enemy: vertical patrol, diagonal chase
var FlyerSpec = VariantSpec{
	Variant:     VariantFlyer,
	Sprite:      "flyer",
	SpawnX:      260,
	SpawnY:      100,
	MaxHealth:   50,
	FrameCount:  3,
	FrameWidth:  64,
	FrameHeight: 64,
	ChaseSpeed:  3,
	PatrolSpeed: 7,
	PatrolTop:   12,
	PatrolBot:   400,
}

// RunnerSpec is the level 2 enemy: pinned to the ground, horizontal chase
var RunnerSpec = VariantSpec{
	Variant:     VariantRunner,
	Sprite:      "runner",
	SpawnX:      500,
	SpawnY:      500,
	MaxHealth:   70,
	FrameCount:  4,
	FrameWidth:  64,
	FrameHeight: 64,
	ChaseSpeed:  10,
	GroundY:     500,
}

// Enemy represents an enemy entity
type Enemy struct {
	Spec VariantSpec

	// SpawnX, SpawnY is where the enemy was created; X, Y is where it is now
	SpawnX, SpawnY int
	X, Y           int

	PatrolDir int
	// Speed is kept for future variants; no current policy reads it
	Speed float64

	// Animation
	Frame      int
	FrameTimer int

	Alive     bool
	Health    int
	MaxHealth int
	State     AIState
}

// NewEnemy creates a live enemy at its variant's spawn point
func NewEnemy(spec VariantSpec) *Enemy {
	return &Enemy{
		Spec:      spec,
		SpawnX:    spec.SpawnX,
		SpawnY:    spec.SpawnY,
		X:         spec.SpawnX,
		Y:         spec.SpawnY,
		PatrolDir: PatrolUp,
		Alive:     true,
		Health:    spec.MaxHealth,
		MaxHealth: spec.MaxHealth,
		State:     StateWaiting,
	}
}

// Variant returns the enemy archetype
func (e *Enemy) Variant() Variant {
	return e.Spec.Variant
}

// TakeDamage applies damage and reports whether this hit killed the enemy.
// Alive flips to false at most once; hits on a dead enemy report false.
func (e *Enemy) TakeDamage(damage int) bool {
	if !e.Alive {
		return false
	}
	e.Health -= damage
	if e.Health <= 0 {
		e.Alive = false
		return true
	}
	return false
}

// Animate advances the sprite one frame every AnimationInterval calls
func (e *Enemy) Animate() {
	e.FrameTimer++
	if e.FrameTimer < AnimationInterval {
		return
	}
	e.FrameTimer = 0
	if e.Spec.FrameCount > 0 {
		e.Frame = (e.Frame + 1) % e.Spec.FrameCount
	}
}

// SpriteRect returns the current frame's region in the sprite sheet
func (e *Enemy) SpriteRect() geom.Rect {
	return geom.NewRect(e.Frame*e.Spec.FrameWidth, 0, e.Spec.FrameWidth, e.Spec.FrameHeight)
}

// Rect returns the enemy's screen rectangle
func (e *Enemy) Rect() geom.Rect {
	return geom.NewRect(e.X, e.Y, e.Spec.FrameWidth, e.Spec.FrameHeight)
}
