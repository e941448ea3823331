// Package playing provides the main gameplay scene.
package playing

import (
	"fmt"
	"image"
	"image/color"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/younwookim/batcoin/internal/application/scene"
	"github.com/younwookim/batcoin/internal/application/state"
	"github.com/younwookim/batcoin/internal/application/system"
	"github.com/younwookim/batcoin/internal/domain/entity"
	"github.com/younwookim/batcoin/internal/infrastructure/assets"
)

// Health bar layout
const (
	playerBarX, playerBarY = 840, 20
	playerBarW, playerBarH = 200, 20
	enemyBarW, enemyBarH   = 40, 10
	enemyBarOffset         = 15
)

// Colors for rendering
var (
	colorBG        = color.RGBA{26, 26, 46, 255}
	colorBarFrame  = color.RGBA{0, 0, 0, 255}
	colorHealthHi  = color.RGBA{0, 200, 0, 255}
	colorHealthMid = color.RGBA{230, 200, 0, 255}
	colorHealthLow = color.RGBA{200, 0, 0, 255}
	colorHUD       = color.White
)

var hudFace = text.NewGoXFace(basicfont.Face7x13)

// Playing is the main gameplay scene
type Playing struct {
	assets  *assets.Library
	logger  *log.Logger
	session *state.Session
	player  *entity.Player
	input   *system.InputSystem
	combat  *system.CombatSystem
	screenW int
	screenH int
	now     func() time.Time
	frame   int
}

// New creates a new Playing scene. lib may be nil, in which case nothing but
// the HUD is drawn.
func New(lib *assets.Library, source system.KeySource, screenW, screenH int, logger *log.Logger) *Playing {
	p := &Playing{
		assets:  lib,
		logger:  logger,
		session: state.NewSession(),
		player:  entity.NewPlayer(lib.PlayerSize()),
		input:   system.NewInputSystem(source),
		combat:  system.NewCombatSystem(entity.DefaultLevels, system.NewAISystem(), logger),
		screenW: screenW,
		screenH: screenH,
		now:     time.Now,
	}

	return p
}

// SetClock replaces the time source used for the hit cooldown
func (p *Playing) SetClock(now func() time.Time) {
	p.now = now
}

// Update proceeds the game state (implements scene.Scene).
// It returns ebiten.Termination once the player has been defeated.
func (p *Playing) Update(_ float64) (scene.Scene, error) {
	if !p.session.Running() {
		return nil, ebiten.Termination
	}

	p.input.Update()
	p.input.UpdatePlayer(p.player, p.screenW, p.screenH)
	p.combat.Update(p.player, p.session, p.now())
	p.frame++

	if !p.session.Running() {
		return nil, ebiten.Termination
	}
	return nil, nil // nil = stay on this scene
}

// Draw renders the game screen
func (p *Playing) Draw(screen *ebiten.Image) {
	if p.assets != nil && p.assets.Background != nil {
		screen.DrawImage(p.assets.Background, nil)
	} else {
		screen.Fill(colorBG)
	}

	p.drawPlayer(screen)
	p.drawEnemy(screen)
	p.drawCoins(screen)
	drawHealthBar(screen, playerBarX, playerBarY, playerBarW, playerBarH, p.player.Health, p.player.MaxHealth)
	p.drawHUD(screen)
}

func (p *Playing) drawPlayer(screen *ebiten.Image) {
	if p.assets == nil || p.assets.Player == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(p.player.X), float64(p.player.Y))
	screen.DrawImage(p.assets.Player, op)
}

func (p *Playing) drawEnemy(screen *ebiten.Image) {
	enemy := p.combat.Enemy()
	if enemy == nil || !enemy.Alive {
		return
	}

	if sheet := p.assets.Enemy(enemy.Variant()); sheet != nil {
		sr := enemy.SpriteRect()
		frame := sheet.SubImage(image.Rect(sr.X, sr.Y, sr.X+sr.W, sr.Y+sr.H)).(*ebiten.Image)
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(float64(enemy.X), float64(enemy.Y))
		screen.DrawImage(frame, op)
	}

	drawHealthBar(screen, float32(enemy.X), float32(enemy.Y-enemyBarOffset),
		enemyBarW, enemyBarH, enemy.Health, enemy.MaxHealth)
}

func (p *Playing) drawCoins(screen *ebiten.Image) {
	for i, coin := range p.combat.Coins() {
		if !coin.Visible {
			continue
		}
		img := p.assets.CoinFor(i + 1)
		if img == nil {
			continue
		}
		b := img.Bounds()
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(float64(entity.CoinSize)/float64(b.Dx()), float64(entity.CoinSize)/float64(b.Dy()))
		op.GeoM.Translate(float64(coin.X), float64(coin.Y))
		screen.DrawImage(img, op)
	}
}

func (p *Playing) drawHUD(screen *ebiten.Image) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(10, 10)
	op.ColorScale.ScaleWithColor(colorHUD)
	text.Draw(screen, p.hudText(), hudFace, op)
}

func (p *Playing) hudText() string {
	return fmt.Sprintf("Score: %d  Level: %d", p.session.Score, p.session.Level)
}

// drawHealthBar draws a black frame filled in proportion to health/maxHealth
func drawHealthBar(screen *ebiten.Image, x, y, w, h float32, health, maxHealth int) {
	vector.DrawFilledRect(screen, x, y, w, h, colorBarFrame, false)
	ratio := healthRatio(health, maxHealth)
	if ratio <= 0 {
		return
	}
	fx, fy, fw, fh := healthFill(x, y, w, h, ratio)
	vector.DrawFilledRect(screen, fx, fy, fw, fh, healthColor(ratio), false)
}

// healthFill returns the fill rectangle, inset 1 px so the frame stays visible
func healthFill(x, y, w, h float32, ratio float64) (fx, fy, fw, fh float32) {
	return x + 1, y + 1, (w - 2) * float32(ratio), h - 2
}

func healthRatio(health, maxHealth int) float64 {
	if maxHealth <= 0 || health <= 0 {
		return 0
	}
	if health >= maxHealth {
		return 1
	}
	return float64(health) / float64(maxHealth)
}

// healthColor is green above half, yellow above a quarter, red otherwise
func healthColor(ratio float64) color.Color {
	switch {
	case ratio > 0.5:
		return colorHealthHi
	case ratio > 0.25:
		return colorHealthMid
	default:
		return colorHealthLow
	}
}

// OnEnter is called when entering this scene
func (p *Playing) OnEnter() {
	p.logger.Info("level started", "level", p.session.Level, "enemy", p.combat.Enemy().Variant())
}

// OnExit is called when leaving this scene. The final summary is logged by the caller.
func (p *Playing) OnExit() {}

// Player returns the player entity
func (p *Playing) Player() *entity.Player {
	return p.player
}

// Session returns the session state
func (p *Playing) Session() *state.Session {
	return p.session
}

// Frame returns the number of ticks played
func (p *Playing) Frame() int {
	return p.frame
}

// Combat returns the combat system
func (p *Playing) Combat() *system.CombatSystem {
	return p.combat
}
