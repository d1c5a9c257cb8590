package game_test

import (
	"fmt"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/plus3/ballplayer/config"
	"github.com/plus3/ballplayer/ecs"
	"github.com/plus3/ballplayer/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const frame = 1.0 / 60.0

func newWorld(t *testing.T, seed uint64) *game.World {
	t.Helper()
	cfg := config.Default()
	cfg.Seed = seed
	w := game.NewWorld(cfg, game.NewRand(seed))
	w.SetWindow(1280, 720)
	return w
}

func TestStartupSpawns(t *testing.T) {
	w := newWorld(t, 1)
	w.Step(frame)

	player, ok := w.Player()
	require.True(t, ok)
	assert.Equal(t, cp.Vector{}, player.Transform.Translation)
	assert.Equal(t, "sprites/ball_blue_large.png", player.Sprite.Image)
	assert.NotNil(t, player.Confined)

	bb := w.Window().InsetBounds(64)
	count := 0
	for _, e := range w.Enemies() {
		count++
		assert.True(t, game.Contains(bb, e.Transform.Translation))
		assert.InDelta(t, 1.0, e.Enemy.Direction.Length(), game.DirectionTolerance)
		assert.Equal(t, "sprites/ball_red_large.png", e.Sprite.Image)
	}
	assert.Equal(t, 5, count)

	require.NoError(t, game.CheckInvariants(w.Storage, w.Window(), 5))
}

func TestStartupRunsOnce(t *testing.T) {
	w := newWorld(t, 1)
	for range 10 {
		w.Step(frame)
	}
	assert.Equal(t, 6, w.Storage.Len())
}

func TestSameSeedSameSpawns(t *testing.T) {
	a := newWorld(t, 99)
	b := newWorld(t, 99)
	a.Step(frame)
	b.Step(frame)

	for id, e := range a.Enemies() {
		other := b.Storage.Get(id)
		require.NotNil(t, other)
		assert.Equal(t, e.Transform.Translation, other.Transform.Translation)
		assert.Equal(t, e.Enemy.Direction, other.Enemy.Direction)
	}
}

func TestStartupWithoutWindow(t *testing.T) {
	w := game.NewWorld(config.Default(), game.NewRand(3))
	w.Step(frame)

	_, ok := w.Player()
	assert.True(t, ok)
	assert.Equal(t, 0, ecs.NewQuery(w.Storage, ecs.WithEnemy).Count())
}

func TestPlayerMovesWithInput(t *testing.T) {
	w := newWorld(t, 1)
	w.Step(frame)

	w.Input().Set(game.KeyD, true)
	w.Step(0.5)

	player, _ := w.Player()
	assert.InDelta(t, 250.0, player.Transform.Translation.X, 1e-9)
	assert.InDelta(t, 0.0, player.Transform.Translation.Y, 1e-9)
}

func TestPlayerDiagonalSpeed(t *testing.T) {
	w := newWorld(t, 1)
	w.SetWindow(4000, 4000)
	w.Step(frame)

	w.Input().Set(game.KeyW, true)
	w.Input().Set(game.KeyRight, true)
	w.Step(1)

	player, _ := w.Player()
	assert.InDelta(t, 353.553, player.Transform.Translation.X, 1e-3)
	assert.InDelta(t, 353.553, player.Transform.Translation.Y, 1e-3)
	assert.InDelta(t, 500.0, player.Transform.Translation.Length(), 1e-9)
}

func TestPlayerIdleWithoutInput(t *testing.T) {
	w := newWorld(t, 1)
	w.Step(frame)

	for range 30 {
		w.Step(frame)
	}
	player, _ := w.Player()
	assert.Equal(t, cp.Vector{}, player.Transform.Translation)
}

func TestPlayerConfinedToWindow(t *testing.T) {
	w := newWorld(t, 1)
	w.Step(frame)

	w.Input().Set(game.KeyA, true)
	for range 300 {
		w.Step(frame)
	}

	player, _ := w.Player()
	assert.Equal(t, -608.0, player.Transform.Translation.X)
}

func TestLiveSpeedChange(t *testing.T) {
	w := newWorld(t, 1)
	w.Step(frame)

	next := config.Default()
	next.Player.Speed = 100
	w.Config.ApplyLive(next)

	w.Input().Set(game.KeyUp, true)
	w.Step(1)

	player, _ := w.Player()
	assert.InDelta(t, 100.0, player.Transform.Translation.Y, 1e-9)
}

func TestEnemiesBounce(t *testing.T) {
	w := newWorld(t, 5)
	w.SetWindow(300, 300)

	for i := range 2000 {
		w.Step(frame)
		require.NoError(t, game.CheckInvariants(w.Storage, w.Window(), 5), "frame %d", i)
	}
	assert.Greater(t, w.Bounces().Total, 0)
}

func TestResizeClampsEverything(t *testing.T) {
	w := newWorld(t, 11)
	w.Step(frame)

	w.Input().Set(game.KeyD, true)
	w.Input().Set(game.KeyW, true)
	for range 120 {
		w.Step(frame)
	}

	w.SetWindow(200, 150)
	w.Step(frame)
	require.NoError(t, game.CheckInvariants(w.Storage, w.Window(), 5))

	player, _ := w.Player()
	assert.Equal(t, cp.Vector{X: 68, Y: 43}, player.Transform.Translation)
}

func TestWindowRemovedSkipsWindowSystems(t *testing.T) {
	w := newWorld(t, 4)
	w.Step(frame)
	w.ClearWindow()
	assert.Nil(t, w.Window())

	w.Input().Set(game.KeyD, true)
	for range 600 {
		w.Step(frame)
	}

	player, _ := w.Player()
	assert.InDelta(t, 5000.0, player.Transform.Translation.X, 1e-6)
	assert.Equal(t, 0, w.Bounces().Count)

	w.SetWindow(1280, 720)
	w.Step(frame)
	require.NoError(t, game.CheckInvariants(w.Storage, w.Window(), 5))
}

func TestNoPlayerIsNoOp(t *testing.T) {
	cfg := config.Default()
	storage := ecs.NewStorage()
	ecs.NewSingleton(storage, game.InputState{})
	ecs.SetSingleton(storage, game.Window{Width: 800, Height: 600})

	scheduler := ecs.NewScheduler(storage)
	scheduler.Register(&game.PlayerMovementSystem{Config: cfg})
	scheduler.Register(&game.ConfinementSystem{})

	ecs.ReadSingleton[game.InputState](storage).Set(game.KeyW, true)
	assert.NotPanics(t, func() { scheduler.Once(frame) })
	assert.Equal(t, 0, storage.Len())
}

func TestCheckInvariantsReportsViolations(t *testing.T) {
	storage := ecs.NewStorage()
	storage.Spawn(ecs.Entity{
		Transform: ecs.Transform{Translation: cp.Vector{X: 5000}},
		Sprite:    ecs.Sprite{Size: 64},
		Enemy:     &ecs.Enemy{Direction: cp.Vector{X: 2}},
		Confined:  &ecs.Confined{},
	})

	err := game.CheckInvariants(storage, &game.Window{Width: 800, Height: 600}, 1)
	assert.ErrorIs(t, err, game.ErrPlayerCount)
	assert.ErrorIs(t, err, game.ErrOutOfBounds)
	assert.ErrorIs(t, err, game.ErrDirection)
	assert.NotErrorIs(t, err, game.ErrEnemyCount)

	assert.NotErrorIs(t, game.CheckInvariants(storage, nil, 1), game.ErrOutOfBounds)
}

func ExampleWorld() {
	cfg := config.Default()
	cfg.Enemies.Count = 3

	world := game.NewWorld(cfg, game.NewRand(1))
	world.SetWindow(800, 600)

	world.Input().Set(game.KeyD, true)
	for range 60 {
		world.Step(1.0 / 60.0)
	}

	player, _ := world.Player()
	fmt.Printf("player at (%.0f, %.0f)\n", player.Transform.Translation.X, player.Transform.Translation.Y)
	fmt.Println("invariants:", game.CheckInvariants(world.Storage, world.Window(), 3))

	// Output:
	// player at (368, 0)
	// invariants: <nil>
}
