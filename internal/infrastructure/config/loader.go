package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// ConfigFile is the name of the game configuration inside the loader's filesystem
const ConfigFile = "game.yaml"

// GameConfig holds all loaded configuration
type GameConfig struct {
	Display DisplayConfig `yaml:"display"`
	Assets  AssetsConfig  `yaml:"assets"`
	Audio   AudioConfig   `yaml:"audio"`
	Log     LogConfig     `yaml:"log"`
}

// Default returns the configuration used when a field is left out of game.yaml
func Default() *GameConfig {
	return &GameConfig{
		Display: DisplayConfig{
			ScreenWidth:  1060,
			ScreenHeight: 594,
			Framerate:    60,
			Title:        "Batcoin",
			Resizable:    true,
		},
		Assets: AssetsConfig{
			Dir:        ".",
			Background: "background.png",
			Player:     "perso.png",
			Flyer:      "batt.png",
			Runner:     "ennemi.png",
			Coin:       "coin.png",
		},
		Audio: AudioConfig{SampleRate: 48000},
		Log:   LogConfig{Level: "info"},
	}
}

// Validate rejects configurations the game cannot run with
func (c *GameConfig) Validate() error {
	var errs []error
	if c.Display.ScreenWidth <= 0 || c.Display.ScreenHeight <= 0 {
		errs = append(errs, fmt.Errorf("display size must be positive, got %dx%d",
			c.Display.ScreenWidth, c.Display.ScreenHeight))
	}
	if c.Display.Framerate <= 0 {
		errs = append(errs, fmt.Errorf("framerate must be positive, got %d", c.Display.Framerate))
	}
	if c.Audio.SampleRate <= 0 {
		errs = append(errs, fmt.Errorf("audio sample rate must be positive, got %d", c.Audio.SampleRate))
	}
	if c.Assets.Coin == "" {
		errs = append(errs, errors.New("assets.coin is required"))
	}
	return errors.Join(errs...)
}

// Loader loads game configuration from YAML files using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// Load reads game.yaml over the defaults and validates the result
func (l *Loader) Load() (*GameConfig, error) {
	data, err := fs.ReadFile(l.fsys, ConfigFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s/%s: %w", l.basePath, ConfigFile, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", ConfigFile, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", ConfigFile, err)
	}

	return cfg, nil
}
