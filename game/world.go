// Package game implements the ball-player simulation: one keyboard-driven ball and a
// fixed set of enemy balls bouncing around a window.
//
// Each frame runs, in order: player movement, enemy movement, enemy direction update
// and confinement. Hosts own the window, input and rendering; they feed the window
// size and held keys in through singletons and read positions back from Storage.
package game

import (
	"iter"
	"math/rand/v2"

	"github.com/plus3/ballplayer/config"
	"github.com/plus3/ballplayer/ecs"
)

// World bundles the storage and scheduler of one game session.
type World struct {
	Storage   *ecs.Storage
	Scheduler *ecs.Scheduler
	Config    *config.Config

	input   *ecs.Singleton[InputState]
	bounces *ecs.Singleton[BounceEvents]
}

// NewWorld wires the startup and update systems. cfg is shared with the systems, so
// live changes applied to it (see config.Config.ApplyLive) take effect on the next frame.
func NewWorld(cfg *config.Config, rng *rand.Rand) *World {
	storage := ecs.NewStorage()

	w := &World{
		Storage: storage,
		Config:  cfg,
		input:   ecs.NewSingleton(storage, InputState{}),
		bounces: ecs.NewSingleton(storage, BounceEvents{}),
	}

	scheduler := ecs.NewScheduler(storage)
	scheduler.RegisterStartup(&SpawnPlayerSystem{Config: cfg})
	scheduler.RegisterStartup(&SpawnEnemiesSystem{Config: cfg, Rand: rng})

	scheduler.Register(&PlayerMovementSystem{Config: cfg})
	scheduler.Register(&EnemyMovementSystem{Config: cfg})
	scheduler.Register(&EnemyDirectionSystem{})
	scheduler.Register(&ConfinementSystem{})
	w.Scheduler = scheduler

	return w
}

// NewRand returns a generator seeded with seed, or with a random seed when seed is 0.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = rand.Uint64()
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// SetWindow records the current window size for the next frame.
func (w *World) SetWindow(width, height float64) {
	if win := ecs.ReadSingleton[Window](w.Storage); win != nil {
		win.Width, win.Height = width, height
		return
	}
	ecs.SetSingleton(w.Storage, Window{Width: width, Height: height})
}

// ClearWindow marks the window as unavailable. Window-dependent systems skip until
// SetWindow is called again.
func (w *World) ClearWindow() {
	ecs.DeleteSingleton[Window](w.Storage)
}

// Window returns the current window, or nil when none is set.
func (w *World) Window() *Window {
	return ecs.ReadSingleton[Window](w.Storage)
}

// Input returns the held-key state the host should refresh before each Step.
func (w *World) Input() *InputState {
	return w.input.Get()
}

// Bounces returns the reflection counters of the last frame.
func (w *World) Bounces() BounceEvents {
	return *w.bounces.Get()
}

// Step runs one frame of dt seconds. The first call also runs the startup systems.
func (w *World) Step(dt float64) {
	w.Scheduler.Once(dt)
}

// Player returns the player entity, if it has been spawned.
func (w *World) Player() (*ecs.Entity, bool) {
	return ecs.NewQuery(w.Storage, ecs.WithPlayer).Single()
}

// Enemies iterates the enemy entities.
func (w *World) Enemies() iter.Seq2[ecs.EntityId, *ecs.Entity] {
	return ecs.NewQuery(w.Storage, ecs.WithEnemy).Iter()
}
