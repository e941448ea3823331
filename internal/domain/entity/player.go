package entity

import "github.com/younwookim/batcoin/internal/domain/geom"

const (
	// PlayerStartX, PlayerStartY is the spawn point of the player
	PlayerStartX = 10
	PlayerStartY = 450

	// PlayerMaxHealth is the starting and maximum player health
	PlayerMaxHealth = 100

	// PlayerSpeed is the player movement in pixels per frame
	PlayerSpeed = 5

	// DefaultPlayerSize is used when the player sprite could not be loaded
	DefaultPlayerSize = 64
)

// Player represents the player entity.
// W and H come from the loaded sprite.
type Player struct {
	X, Y int
	W, H int

	Direction Direction

	Health    int
	MaxHealth int
}

// NewPlayer creates a player at the spawn point with the given sprite size.
// Non-positive sizes fall back to DefaultPlayerSize.
func NewPlayer(w, h int) *Player {
	if w <= 0 {
		w = DefaultPlayerSize
	}
	if h <= 0 {
		h = DefaultPlayerSize
	}
	return &Player{
		X:         PlayerStartX,
		Y:         PlayerStartY,
		W:         w,
		H:         h,
		Health:    PlayerMaxHealth,
		MaxHealth: PlayerMaxHealth,
	}
}

// Move applies one frame of movement in the current direction
func (p *Player) Move(step int) {
	dx, dy := p.Direction.Delta(step)
	p.X += dx
	p.Y += dy
}

// ClampTo keeps the whole sprite inside a screen of the given size
func (p *Player) ClampTo(screenW, screenH int) {
	p.X = geom.Clamp(p.X, 0, screenW-p.W)
	p.Y = geom.Clamp(p.Y, 0, screenH-p.H)
}

// TakeDamage subtracts damage and reports whether the player died
func (p *Player) TakeDamage(damage int) bool {
	p.Health -= damage
	return p.Health <= 0
}

// IsAlive returns true while health is above zero
func (p *Player) IsAlive() bool {
	return p.Health > 0
}

// Rect returns the player's screen rectangle
func (p *Player) Rect() geom.Rect {
	return geom.NewRect(p.X, p.Y, p.W, p.H)
}
