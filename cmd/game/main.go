package main

import (
	"errors"
	"io/fs"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/younwookim/batcoin/internal/application/game"
	"github.com/younwookim/batcoin/internal/application/scene/playing"
	"github.com/younwookim/batcoin/internal/application/system"
	"github.com/younwookim/batcoin/internal/infrastructure/assets"
	"github.com/younwookim/batcoin/internal/infrastructure/config"
)

func newLogger(level string) *log.Logger {
	logger := log.NewWithOptions(os.Stdout, log.Options{
		ReportTimestamp: true,
		Prefix:          "batcoin",
	})
	if lvl, err := log.ParseLevel(level); err == nil {
		logger.SetLevel(lvl)
	} else {
		logger.Warn("unknown log level, using info", "level", level)
	}
	return logger
}

func main() {
	// Load configuration from the embedded filesystem
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		log.Fatal("failed to get config subfs", "err", err)
	}
	cfg, err := config.NewFSLoader(fsys, "configs").Load()
	if err != nil {
		log.Fatal("failed to load config", "err", err)
	}

	logger := newLogger(cfg.Log.Level)

	// Only initialized; nothing is played yet
	_ = audio.NewContext(cfg.Audio.SampleRate)

	lib, err := assets.Load(os.DirFS(cfg.Assets.Dir), cfg.Assets, logger)
	if err != nil {
		logger.Fatal("failed to load assets", "dir", cfg.Assets.Dir, "err", err)
	}

	display := cfg.Display
	scene := playing.New(lib, system.NewKeyboardSource(), display.ScreenWidth, display.ScreenHeight, logger)
	g := game.New(scene, display.ScreenWidth, display.ScreenHeight, display.Framerate)

	ebiten.SetWindowSize(display.ScreenWidth, display.ScreenHeight)
	ebiten.SetWindowTitle(display.Title)
	if display.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	ebiten.SetTPS(display.Framerate)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Fatal("game stopped", "err", err)
	}
	logger.Info("final result", "score", scene.Session().Score, "level", scene.Session().Level, "frames", scene.Frame())
}
