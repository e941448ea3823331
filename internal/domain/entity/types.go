package entity

// AIState is the behavioral state of an enemy
type AIState int

const (
	StateWaiting AIState = iota
	StateFollowing
	StateAttacking
)

// String returns the string representation of the AI state
func (s AIState) String() string {
	switch s {
	case StateWaiting:
		return "Waiting"
	case StateFollowing:
		return "Following"
	case StateAttacking:
		return "Attacking"
	default:
		return "Unknown"
	}
}

// Variant identifies an enemy archetype and its movement policy
type Variant int

const (
	VariantFlyer Variant = iota
	VariantRunner
)

// String returns the string representation of the variant
func (v Variant) String() string {
	switch v {
	case VariantFlyer:
		return "Flyer"
	case VariantRunner:
		return "Runner"
	default:
		return "Unknown"
	}
}

// Direction is the player's current movement direction
type Direction int

const (
	DirNone Direction = iota
	DirLeft
	DirRight
	DirUp
	DirDown
)

// String returns the string representation of the direction
func (d Direction) String() string {
	switch d {
	case DirNone:
		return "None"
	case DirLeft:
		return "Left"
	case DirRight:
		return "Right"
	case DirUp:
		return "Up"
	case DirDown:
		return "Down"
	default:
		return "Unknown"
	}
}

// Delta returns the per-frame offset for moving step pixels in this direction
func (d Direction) Delta(step int) (dx, dy int) {
	switch d {
	case DirLeft:
		return -step, 0
	case DirRight:
		return step, 0
	case DirUp:
		return 0, -step
	case DirDown:
		return 0, step
	}
	return 0, 0
}
