// Package assets loads the game's images.
package assets

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	_ "image/png"
	"io/fs"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/batcoin/internal/domain/entity"
	"github.com/younwookim/batcoin/internal/infrastructure/config"
)

var (
	colorCoinGold    = color.RGBA{255, 215, 0, 255}
	colorCoinOutline = color.RGBA{0, 0, 0, 255}
)

// Library holds every image the playing scene draws. Any field but Coin and
// DefaultCoin may be nil when its file could not be loaded.
type Library struct {
	Background  *ebiten.Image
	Player      *ebiten.Image
	Flyer       *ebiten.Image
	Runner      *ebiten.Image
	Coin        *ebiten.Image // Dropped by later levels
	DefaultCoin *ebiten.Image // Procedural, dropped on level 1
}

// Sources is the decoded, not yet uploaded, form of a Library
type Sources struct {
	Background image.Image
	Player     image.Image
	Flyer      image.Image
	Runner     image.Image
	Coin       image.Image
}

// Decode reads and decodes a single image from fsys
func Decode(fsys fs.FS, name string) (image.Image, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", name, err)
	}
	return img, nil
}

// LoadSources decodes the configured images. A missing coin image is an
// error; every other failure is logged and leaves the image nil.
func LoadSources(fsys fs.FS, cfg config.AssetsConfig, logger *log.Logger) (*Sources, error) {
	coin, err := Decode(fsys, cfg.Coin)
	if err != nil {
		return nil, fmt.Errorf("failed to load coin image: %w", err)
	}

	optional := func(name string) image.Image {
		img, err := Decode(fsys, name)
		if err != nil {
			logger.Warn("image unavailable, drawing without it", "file", name, "err", err)
			return nil
		}
		return img
	}

	return &Sources{
		Background: optional(cfg.Background),
		Player:     optional(cfg.Player),
		Flyer:      optional(cfg.Flyer),
		Runner:     optional(cfg.Runner),
		Coin:       coin,
	}, nil
}

// Load decodes the configured images and uploads them to the GPU
func Load(fsys fs.FS, cfg config.AssetsConfig, logger *log.Logger) (*Library, error) {
	src, err := LoadSources(fsys, cfg, logger)
	if err != nil {
		return nil, err
	}

	lib := &Library{
		Background:  upload(src.Background),
		Player:      upload(src.Player),
		Flyer:       upload(src.Flyer),
		Runner:      upload(src.Runner),
		Coin:        upload(src.Coin),
		DefaultCoin: ebiten.NewImageFromImage(DefaultCoinImage()),
	}
	logger.Debug("assets loaded", "dir", cfg.Dir)
	return lib, nil
}

func upload(img image.Image) *ebiten.Image {
	if img == nil {
		return nil
	}
	return ebiten.NewImageFromImage(img)
}

// DefaultCoinImage draws the level 1 coin: a gold square with a 2 px black outline
func DefaultCoinImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, entity.CoinSize, entity.CoinSize))
	draw.Draw(img, img.Bounds(), image.NewUniform(colorCoinOutline), image.Point{}, draw.Src)
	inner := image.Rect(2, 2, entity.CoinSize-2, entity.CoinSize-2)
	draw.Draw(img, inner, image.NewUniform(colorCoinGold), image.Point{}, draw.Src)
	return img
}

// Enemy returns the sprite sheet for an enemy variant
func (l *Library) Enemy(v entity.Variant) *ebiten.Image {
	if l == nil {
		return nil
	}
	switch v {
	case entity.VariantFlyer:
		return l.Flyer
	case entity.VariantRunner:
		return l.Runner
	}
	return nil
}

// CoinFor returns the image of the coin dropped on the given level
func (l *Library) CoinFor(level int) *ebiten.Image {
	if l == nil {
		return nil
	}
	if level <= 1 {
		return l.DefaultCoin
	}
	return l.Coin
}

// PlayerSize returns the player sprite's size, or zero when it is missing
func (l *Library) PlayerSize() (w, h int) {
	if l == nil || l.Player == nil {
		return 0, 0
	}
	b := l.Player.Bounds()
	return b.Dx(), b.Dy()
}
