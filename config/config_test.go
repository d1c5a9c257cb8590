package config_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/plus3/ballplayer/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := config.Default()

	assert.Equal(t, 1280, cfg.Window.Width)
	assert.Equal(t, 720, cfg.Window.Height)
	assert.True(t, cfg.Window.Resizable)
	assert.Equal(t, 64.0, cfg.Sprites.Size)
	assert.Equal(t, "sprites/ball_blue_large.png", cfg.Sprites.Player)
	assert.Equal(t, "sprites/ball_red_large.png", cfg.Sprites.Enemy)
	assert.Equal(t, 500.0, cfg.Player.Speed)
	assert.Equal(t, 200.0, cfg.Enemies.Speed)
	assert.Equal(t, 5, cfg.Enemies.Count)
	assert.NoError(t, cfg.Validate())
}

func TestDefaultReturnsCopies(t *testing.T) {
	a := config.Default()
	a.Player.Speed = 1
	assert.Equal(t, 500.0, config.Default().Player.Speed)
}

func TestParseOverlaysDefaults(t *testing.T) {
	cfg, err := config.Parse([]byte("enemies:\n  count: 12\nseed: 7\n"))
	require.NoError(t, err)

	assert.Equal(t, 12, cfg.Enemies.Count)
	assert.Equal(t, 200.0, cfg.Enemies.Speed)
	assert.Equal(t, uint64(7), cfg.Seed)
	assert.Equal(t, 500.0, cfg.Player.Speed)
}

func TestParseRejectsInvalid(t *testing.T) {
	_, err := config.Parse([]byte("player:\n  speed: -1\nenemies:\n  count: -3\n"))
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrInvalid)
	assert.ErrorContains(t, err, "player.speed")
	assert.ErrorContains(t, err, "enemies.count")
}

func TestParseRejectsMalformed(t *testing.T) {
	_, err := config.Parse([]byte("window: [1, 2"))
	assert.Error(t, err)
	assert.NotErrorIs(t, err, config.ErrInvalid)
}

func TestValidate(t *testing.T) {
	cfg := config.Default()
	cfg.Window.Width = 0
	cfg.Sprites.Size = 0

	err := cfg.Validate()
	assert.ErrorIs(t, err, config.ErrInvalid)
	assert.ErrorContains(t, err, "window size 0x720")
	assert.ErrorContains(t, err, "sprites.size")
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.yaml")
	require.NoError(t, os.WriteFile(path, []byte("player:\n  speed: 250\n"), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 250.0, cfg.Player.Speed)

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestApplyLive(t *testing.T) {
	cfg := config.Default()
	next := config.Default()
	next.Player.Speed = 100
	next.Enemies.Speed = 50
	next.Enemies.Count = 99
	next.Sprites.Size = 10

	cfg.ApplyLive(next)

	assert.Equal(t, 100.0, cfg.Player.Speed)
	assert.Equal(t, 50.0, cfg.Enemies.Speed)
	assert.Equal(t, 5, cfg.Enemies.Count)
	assert.Equal(t, 64.0, cfg.Sprites.Size)
}

func ExampleParse() {
	cfg, err := config.Parse([]byte("enemies:\n  speed: 300\n"))
	if err != nil {
		panic(err)
	}
	fmt.Printf("player %g, enemies %g x%d\n", cfg.Player.Speed, cfg.Enemies.Speed, cfg.Enemies.Count)

	// Output:
	// player 500, enemies 300 x5
}
