package config

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoader_LoadEmbeddedConfig(t *testing.T) {
	loader := NewLoader("../../../cmd/game/configs")

	cfg, err := loader.Load()
	require.NoError(t, err)

	assert.Equal(t, 1060, cfg.Display.ScreenWidth)
	assert.Equal(t, 594, cfg.Display.ScreenHeight)
	assert.Equal(t, 60, cfg.Display.Framerate)
	assert.True(t, cfg.Display.Resizable)
	assert.Equal(t, ".", cfg.Assets.Dir)
	assert.Equal(t, "coin.png", cfg.Assets.Coin)
	assert.Equal(t, "batt.png", cfg.Assets.Flyer)
	assert.Equal(t, "ennemi.png", cfg.Assets.Runner)
	assert.Equal(t, 48000, cfg.Audio.SampleRate)
}

func TestLoader_PartialFileKeepsDefaults(t *testing.T) {
	fsys := fstest.MapFS{
		"game.yaml": {Data: []byte("display:\n  title: Test\nlog:\n  level: debug\n")},
	}

	cfg, err := NewFSLoader(fsys, "mem").Load()
	require.NoError(t, err)

	assert.Equal(t, "Test", cfg.Display.Title)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, 1060, cfg.Display.ScreenWidth)
	assert.True(t, cfg.Display.Resizable)
	assert.Equal(t, ".", cfg.Assets.Dir)
	assert.Equal(t, "perso.png", cfg.Assets.Player)
}

func TestLoader_Errors(t *testing.T) {
	tests := []struct {
		name string
		fsys fstest.MapFS
		msg  string
	}{
		{"missing file", fstest.MapFS{}, "failed to read"},
		{"bad yaml", fstest.MapFS{"game.yaml": {Data: []byte("display: [")}}, "failed to parse"},
		{"zero framerate", fstest.MapFS{"game.yaml": {Data: []byte("display:\n  framerate: 0\n")}}, "framerate"},
		{"negative width", fstest.MapFS{"game.yaml": {Data: []byte("display:\n  screenWidth: -1\n")}}, "display size"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewFSLoader(tt.fsys, "mem").Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestGameConfig_Validate(t *testing.T) {
	assert.NoError(t, Default().Validate())
	assert.True(t, Default().Display.Resizable)

	cfg := Default()
	cfg.Assets.Coin = ""
	cfg.Audio.SampleRate = 0
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "assets.coin")
	assert.Contains(t, err.Error(), "sample rate")
}
