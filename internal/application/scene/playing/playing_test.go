package playing

import (
	"bytes"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/batcoin/internal/application/replay"
	"github.com/younwookim/batcoin/internal/application/scene"
	"github.com/younwookim/batcoin/internal/application/system"
	"github.com/younwookim/batcoin/internal/domain/entity"
)

var testEpoch = time.Date(2025, 5, 11, 12, 0, 0, 0, time.UTC)

// fakeClock is advanced by hand between updates
type fakeClock struct{ t time.Time }

func (c *fakeClock) Now() time.Time          { return c.t }
func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestScene(source system.KeySource) (*Playing, *fakeClock) {
	p := New(nil, source, 1060, 594, log.New(io.Discard))
	clock := &fakeClock{t: testEpoch}
	p.SetClock(clock.Now)
	return p, clock
}

// stackOnEnemy puts the player on the flyer's spawn point
func stackOnEnemy(p *Playing) {
	enemy := p.Combat().Enemy()
	p.Player().X, p.Player().Y = enemy.X, enemy.Y
}

func TestPlaying_ImplementsScene(t *testing.T) {
	var _ scene.Scene = (*Playing)(nil)
}

func TestNew(t *testing.T) {
	p, _ := newTestScene(nil)

	assert.Equal(t, entity.PlayerStartX, p.Player().X)
	assert.Equal(t, entity.PlayerStartY, p.Player().Y)
	assert.Equal(t, entity.DefaultPlayerSize, p.Player().W)
	assert.Equal(t, 1, p.Session().Level)
	assert.True(t, p.Session().Running())
	assert.Equal(t, entity.VariantFlyer, p.Combat().Enemy().Variant())
}

func TestPlaying_ReplayMovesPlayer(t *testing.T) {
	source := replay.NewReplayer(replay.ReplayData{
		Frames: replay.Hold(ebiten.KeyArrowRight, 0, 10),
	})
	p, _ := newTestScene(source)

	for i := 0; i < 15; i++ {
		_, err := p.Update(1.0 / 60)
		require.NoError(t, err)
	}

	// Ten frames of movement; the release lands on frame 10
	assert.Equal(t, entity.PlayerStartX+10*entity.PlayerSpeed, p.Player().X)
	assert.Equal(t, entity.PlayerStartY, p.Player().Y)
	assert.Equal(t, entity.DirNone, p.Player().Direction)
	assert.Equal(t, entity.PlayerMaxHealth, p.Player().Health)
}

func TestPlaying_ReplayClampsToScreen(t *testing.T) {
	source := replay.NewReplayer(replay.ReplayData{
		Frames: replay.Hold(ebiten.KeyArrowLeft, 0, 30),
	})
	p, _ := newTestScene(source)

	for i := 0; i < 30; i++ {
		_, err := p.Update(1.0 / 60)
		require.NoError(t, err)
	}

	assert.Equal(t, 0, p.Player().X)
}

func TestPlaying_HitCooldownUsesClock(t *testing.T) {
	p, clock := newTestScene(nil)
	stackOnEnemy(p)

	_, err := p.Update(1.0 / 60)
	require.NoError(t, err)
	assert.Equal(t, 40, p.Combat().Enemy().Health)
	assert.Equal(t, 95, p.Player().Health)

	// Same instant: blocked by the cooldown
	_, err = p.Update(1.0 / 60)
	require.NoError(t, err)
	assert.Equal(t, 40, p.Combat().Enemy().Health)
	assert.Equal(t, 95, p.Player().Health)

	clock.Advance(system.HitCooldown)
	_, err = p.Update(1.0 / 60)
	require.NoError(t, err)
	assert.Equal(t, 30, p.Combat().Enemy().Health)
	assert.Equal(t, 90, p.Player().Health)
}

func TestPlaying_DefeatFlyerAdvancesLevel(t *testing.T) {
	p, clock := newTestScene(nil)
	stackOnEnemy(p)

	for i := 0; i < 5; i++ {
		_, err := p.Update(1.0 / 60)
		require.NoError(t, err)
		clock.Advance(system.HitCooldown)
	}

	// The coin drops under the player and is picked up in the same frame
	assert.Equal(t, 150, p.Session().Score)
	assert.Equal(t, 2, p.Session().Level)
	assert.Equal(t, 75, p.Player().Health)
	assert.True(t, p.Combat().Coins()[0].Collected)

	enemy := p.Combat().Enemy()
	assert.Equal(t, entity.VariantRunner, enemy.Variant())
	assert.True(t, enemy.Alive)

	_, err := p.Update(1.0 / 60)
	require.NoError(t, err)
	assert.Equal(t, 500, enemy.Y)
	assert.Equal(t, entity.StateWaiting, enemy.State)
}

func TestPlaying_GameOverTerminates(t *testing.T) {
	p, _ := newTestScene(nil)
	stackOnEnemy(p)
	p.Player().Health = entity.PlayerMaxHealth / 20

	next, err := p.Update(1.0 / 60)

	assert.Nil(t, next)
	assert.ErrorIs(t, err, ebiten.Termination)
	assert.False(t, p.Session().Running())
	assert.Equal(t, 0, p.Player().Health)

	// Stays terminated without touching the world again
	enemyHealth := p.Combat().Enemy().Health
	_, err = p.Update(1.0 / 60)
	assert.ErrorIs(t, err, ebiten.Termination)
	assert.Equal(t, enemyHealth, p.Combat().Enemy().Health)
}

func TestPlaying_HUDText(t *testing.T) {
	p, _ := newTestScene(nil)
	p.Session().AddScore(250)
	p.Session().AdvanceLevel()

	assert.Equal(t, "Score: 250  Level: 2", p.hudText())
}

func TestHealthRatio(t *testing.T) {
	tests := []struct {
		name      string
		health    int
		maxHealth int
		expected  float64
	}{
		{"full", 100, 100, 1},
		{"half", 25, 50, 0.5},
		{"empty", 0, 70, 0},
		{"negative health", -5, 70, 0},
		{"overheal", 120, 100, 1},
		{"zero max", 10, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, healthRatio(tt.health, tt.maxHealth), 1e-9)
		})
	}
}

func TestHealthColor(t *testing.T) {
	tests := []struct {
		ratio    float64
		expected interface{}
	}{
		{1, colorHealthHi},
		{0.51, colorHealthHi},
		{0.5, colorHealthMid},
		{0.26, colorHealthMid},
		{0.25, colorHealthLow},
		{0.01, colorHealthLow},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, healthColor(tt.ratio), "ratio %v", tt.ratio)
	}
}

func TestPlaying_GameOverLogsOnce(t *testing.T) {
	var buf bytes.Buffer
	p := New(nil, nil, 1060, 594, log.New(&buf))
	p.SetClock(func() time.Time { return testEpoch })
	stackOnEnemy(p)
	p.Player().Health = 5

	_, err := p.Update(1.0 / 60)
	require.ErrorIs(t, err, ebiten.Termination)
	p.OnExit()

	out := buf.String()
	assert.Equal(t, 1, strings.Count(out, "player defeated"))
	assert.Equal(t, 1, strings.Count(out, "\n"), "only the defeat line is logged: %q", out)
	assert.Equal(t, 1, p.Frame())
}

func TestHealthFill(t *testing.T) {
	tests := []struct {
		name           string
		x, y, w, h     float32
		ratio          float64
		fx, fy, fw, fh float32
	}{
		{"player full", 840, 20, 200, 20, 1, 841, 21, 198, 18},
		{"player half", 840, 20, 200, 20, 0.5, 841, 21, 99, 18},
		{"enemy bar", 260, 85, 40, 10, 0.2, 261, 86, 7.6, 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx, fy, fw, fh := healthFill(tt.x, tt.y, tt.w, tt.h, tt.ratio)
			assert.Equal(t, tt.fx, fx)
			assert.Equal(t, tt.fy, fy)
			assert.InDelta(t, tt.fw, fw, 1e-4)
			assert.Equal(t, tt.fh, fh)
			assert.Less(t, fx+fw, tt.x+tt.w, "fill stays inside the frame")
		})
	}
}
