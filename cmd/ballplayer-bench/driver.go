package main

import (
	"math/rand/v2"

	"github.com/plus3/ballplayer/config"
	"github.com/plus3/ballplayer/game"
)

const (
	minWindowSize  = 200.0
	inputHoldRange = 30
)

// Driver plays a world with pseudo-random held keys and window sizes.
type Driver struct {
	world *game.World
	rng   *rand.Rand

	window      game.Window
	resizeEvery int
	frame       int
	holdFrames  int

	bounces int
	resizes int
}

func NewDriver(cfg *config.Config, window game.Window, resizeEvery int) *Driver {
	d := &Driver{
		world:       game.NewWorld(cfg, game.NewRand(cfg.Seed)),
		rng:         game.NewRand(cfg.Seed + 1),
		window:      window,
		resizeEvery: resizeEvery,
	}
	d.world.SetWindow(window.Width, window.Height)
	return d
}

// Frame advances the world by dt and returns any invariant violations.
func (d *Driver) Frame(dt float64) error {
	d.frame++

	if d.resizeEvery > 0 && d.frame%d.resizeEvery == 0 {
		d.resize()
	}
	d.script()

	d.world.Step(dt)
	d.bounces += d.world.Bounces().Count

	return game.CheckInvariants(d.world.Storage, d.world.Window(), d.world.Config.Enemies.Count)
}

// script re-rolls the held keys every few frames.
func (d *Driver) script() {
	if d.holdFrames > 0 {
		d.holdFrames--
		return
	}
	d.holdFrames = d.rng.IntN(inputHoldRange)

	input := d.world.Input()
	for _, k := range game.Keys() {
		input.Set(k, d.rng.IntN(4) == 0)
	}
}

func (d *Driver) resize() {
	d.window.Width = minWindowSize + d.rng.Float64()*1720
	d.window.Height = minWindowSize + d.rng.Float64()*880
	d.world.SetWindow(d.window.Width, d.window.Height)
	d.resizes++
}

func (d *Driver) Bounces() int { return d.bounces }

func (d *Driver) Resizes() int { return d.resizes }
