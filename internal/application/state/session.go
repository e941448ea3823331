package state

// Points awarded by the session
const (
	ScoreEnemyDefeated = 100
	ScoreCoinCollected = 50
)

// Session holds the in-memory state of one run: score, level and whether it is still going.
// Score never decreases and Level only moves forward.
type Session struct {
	Score int
	Level int
	State GameState
}

// NewSession starts a session on level 1
func NewSession() *Session {
	return &Session{
		Level: 1,
		State: StatePlaying,
	}
}

// AddScore adds points; negative amounts are ignored
func (s *Session) AddScore(points int) int {
	if points > 0 {
		s.Score += points
	}
	return s.Score
}

// AdvanceLevel moves to the next level and returns it
func (s *Session) AdvanceLevel() int {
	s.Level++
	return s.Level
}

// End marks the session as over. It cannot be resumed.
func (s *Session) End() {
	s.State = StateGameOver
}

// Running reports whether the game loop should keep going
func (s *Session) Running() bool {
	return s.State == StatePlaying
}
