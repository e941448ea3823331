package system

import (
	"github.com/younwookim/batcoin/internal/domain/entity"
	"github.com/younwookim/batcoin/internal/domain/geom"
)

// Distance thresholds between enemy and player positions, in pixels
const (
	WaitDistance   = 150
	AttackDistance = 50
)

// Classify maps the horizontal and vertical distance to the player onto an AI state.
// It is recomputed every frame with no memory of the previous state.
func Classify(dx, dy int) entity.AIState {
	switch {
	case dx > WaitDistance && dy > WaitDistance:
		return entity.StateWaiting
	case dx <= AttackDistance && dy <= AttackDistance:
		return entity.StateAttacking
	default:
		return entity.StateFollowing
	}
}

// reclassify updates the enemy state from its current distance to the player
func reclassify(enemy *entity.Enemy, player *entity.Player) {
	dx := geom.Abs(enemy.X - player.X)
	dy := geom.Abs(enemy.Y - player.Y)
	enemy.State = Classify(dx, dy)
}

// MovementPolicy moves an enemy for one frame and keeps its state current
type MovementPolicy interface {
	Step(enemy *entity.Enemy, player *entity.Player)
}

// FlyerPolicy acts on the state from the previous frame, then reclassifies.
type FlyerPolicy struct{}

// Step implements MovementPolicy
func (FlyerPolicy) Step(enemy *entity.Enemy, player *entity.Player) {
	spec := enemy.Spec

	switch enemy.State {
	case entity.StateWaiting:
		if enemy.Y < spec.PatrolTop {
			enemy.PatrolDir = entity.PatrolDown
		} else if enemy.Y > spec.PatrolBot {
			enemy.PatrolDir = entity.PatrolUp
		}
		if enemy.PatrolDir == entity.PatrolDown {
			enemy.Y += spec.PatrolSpeed
		} else {
			enemy.Y -= spec.PatrolSpeed
		}
	case entity.StateFollowing:
		// Each axis closes independently, so diagonal chase is faster
		enemy.X += approach(enemy.X, player.X, spec.ChaseSpeed)
		enemy.Y += approach(enemy.Y, player.Y, spec.ChaseSpeed)
	case entity.StateAttacking:
		enemy.Speed = 0
	}

	reclassify(enemy, player)
}

// RunnerPolicy pins the enemy to its ground line, classifies, then moves horizontally.
type RunnerPolicy struct{}

// Step implements MovementPolicy
func (RunnerPolicy) Step(enemy *entity.Enemy, player *entity.Player) {
	enemy.Y = enemy.Spec.GroundY
	reclassify(enemy, player)

	switch enemy.State {
	case entity.StateFollowing:
		enemy.X += approach(enemy.X, player.X, enemy.Spec.ChaseSpeed)
	case entity.StateAttacking:
		enemy.Speed = 0
	}
}

// approach returns the signed step moving from toward target, 0 when aligned
func approach(from, target, step int) int {
	switch {
	case from > target:
		return -step
	case from < target:
		return step
	}
	return 0
}

// AISystem runs the movement policy registered for each enemy variant
type AISystem struct {
	policies map[entity.Variant]MovementPolicy
}

// NewAISystem creates an AI system with the built-in variant policies
func NewAISystem() *AISystem {
	return &AISystem{
		policies: map[entity.Variant]MovementPolicy{
			entity.VariantFlyer:  FlyerPolicy{},
			entity.VariantRunner: RunnerPolicy{},
		},
	}
}

// Register installs or replaces the policy for a variant
func (s *AISystem) Register(v entity.Variant, p MovementPolicy) {
	s.policies[v] = p
}

// Update advances one enemy by one frame. Dead enemies and unknown variants are left alone.
func (s *AISystem) Update(enemy *entity.Enemy, player *entity.Player) {
	if enemy == nil || !enemy.Alive {
		return
	}
	policy, ok := s.policies[enemy.Variant()]
	if !ok {
		return
	}
	policy.Step(enemy, player)
}
