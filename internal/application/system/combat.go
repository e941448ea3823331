package system

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/younwookim/batcoin/internal/application/state"
	"github.com/younwookim/batcoin/internal/domain/entity"
	"github.com/younwookim/batcoin/internal/domain/geom"
)

// Combat constants
const (
	HitCooldown       = 500 * time.Millisecond
	EnemyHitDamage    = 10
	PlayerContactLoss = 5
)

// CombatSystem handles enemy contact, coin drops, coin pickup and level progression
type CombatSystem struct {
	levels  []entity.LevelSpec
	ai      *AISystem
	enemy   *entity.Enemy
	coins   []*entity.Coin
	lastHit time.Time
	logger  *log.Logger

	// Event callbacks
	OnEnemyDefeated func(enemy *entity.Enemy)
	OnLevelAdvanced func(level int)
	OnGameOver      func()
}

// NewCombatSystem creates a combat system with the first level's enemy and one hidden coin per level
func NewCombatSystem(levels []entity.LevelSpec, ai *AISystem, logger *log.Logger) *CombatSystem {
	if ai == nil {
		ai = NewAISystem()
	}
	s := &CombatSystem{
		levels: levels,
		ai:     ai,
		coins:  make([]*entity.Coin, len(levels)),
		logger: logger,
	}
	for i := range s.coins {
		s.coins[i] = &entity.Coin{}
	}
	if len(levels) > 0 {
		s.enemy = entity.NewEnemy(levels[0].Enemy)
	}
	return s
}

// Update runs one frame: enemy animation and AI, contact damage, then coin pickup
func (s *CombatSystem) Update(player *entity.Player, session *state.Session, now time.Time) {
	if s.enemy != nil && s.enemy.Alive {
		s.enemy.Animate()
		s.ai.Update(s.enemy, player)
	}
	s.resolveContact(player, session, now)
	s.collectCoins(player, session)
}

// resolveContact trades damage when the enemy touches the player and the cooldown has passed.
// A zero lastHit means no hit has landed yet.
func (s *CombatSystem) resolveContact(player *entity.Player, session *state.Session, now time.Time) {
	enemy := s.enemy
	if enemy == nil || !enemy.Alive {
		return
	}
	if !geom.Collide(player.Rect(), enemy.Rect()) {
		return
	}
	if !s.lastHit.IsZero() && now.Sub(s.lastHit) < HitCooldown {
		return
	}

	killed := enemy.TakeDamage(EnemyHitDamage)
	playerDied := player.TakeDamage(PlayerContactLoss)
	s.lastHit = now

	if killed {
		score := session.AddScore(state.ScoreEnemyDefeated)
		s.logger.Info("enemy defeated", "variant", enemy.Variant(), "score", score)
		s.dropCoin(session.Level, enemy)
		if s.OnEnemyDefeated != nil {
			s.OnEnemyDefeated(enemy)
		}
	}

	if playerDied {
		s.logger.Info("player defeated, game over", "score", session.Score, "level", session.Level)
		session.End()
		if s.OnGameOver != nil {
			s.OnGameOver()
		}
	}
}

// dropCoin places the coin bound to level at the enemy's position
func (s *CombatSystem) dropCoin(level int, enemy *entity.Enemy) {
	coin := s.coinFor(level)
	if coin == nil {
		return
	}
	if coin.Drop(enemy.X, enemy.Y) {
		s.logger.Info("coin dropped", "x", coin.X, "y", coin.Y, "level", level)
	}
}

// collectCoins picks up every visible coin the player touches.
// Collecting the current level's coin after its enemy died starts the next level.
func (s *CombatSystem) collectCoins(player *entity.Player, session *state.Session) {
	for i, coin := range s.coins {
		if !coin.Visible || !geom.Collide(coin.Rect(), player.Rect()) {
			continue
		}
		coin.Collect()
		score := session.AddScore(state.ScoreCoinCollected)
		s.logger.Info("coin collected", "score", score)

		if i == session.Level-1 && !s.enemy.Alive && session.Level < len(s.levels) {
			s.advanceLevel(session)
		}
	}
}

// advanceLevel replaces the dead enemy with the next level's enemy
func (s *CombatSystem) advanceLevel(session *state.Session) {
	level := session.AdvanceLevel()
	s.enemy = entity.NewEnemy(s.levels[level-1].Enemy)
	s.logger.Info("level advanced", "level", level, "enemy", s.enemy.Variant())
	if s.OnLevelAdvanced != nil {
		s.OnLevelAdvanced(level)
	}
}

func (s *CombatSystem) coinFor(level int) *entity.Coin {
	if level < 1 || level > len(s.coins) {
		return nil
	}
	return s.coins[level-1]
}

// Enemy returns the current enemy
func (s *CombatSystem) Enemy() *entity.Enemy {
	return s.enemy
}

// Coins returns the coins, indexed by level-1
func (s *CombatSystem) Coins() []*entity.Coin {
	return s.coins
}

// LastHit returns the time of the last damage exchange
func (s *CombatSystem) LastHit() time.Time {
	return s.lastHit
}
