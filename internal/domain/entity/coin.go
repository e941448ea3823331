package entity

import "github.com/younwookim/batcoin/internal/domain/geom"

// CoinSize is the fixed coin footprint in pixels
const CoinSize = 20

// Coin is a pickup dropped by a defeated enemy. Each level owns one coin.
type Coin struct {
	X, Y      int
	Visible   bool
	Collected bool
}

// Drop places the coin and makes it visible.
// A collected coin stays gone for the rest of the session.
func (c *Coin) Drop(x, y int) bool {
	if c.Collected {
		return false
	}
	c.X, c.Y = x, y
	c.Visible = true
	return true
}

// Collect hides the coin permanently
func (c *Coin) Collect() {
	c.Visible = false
	c.Collected = true
}

// Rect returns the coin's screen rectangle
func (c *Coin) Rect() geom.Rect {
	return geom.NewRect(c.X, c.Y, CoinSize, CoinSize)
}

// LevelSpec describes one level: the enemy that guards it.
// The coin of a level is the one its enemy drops.
type LevelSpec struct {
	Number int
	Enemy  VariantSpec
}

// DefaultLevels is the fixed level sequence
var DefaultLevels = []LevelSpec{
	{Number: 1, Enemy: FlyerSpec},
	{Number: 2, Enemy: RunnerSpec},
}
