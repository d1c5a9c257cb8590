package game

import (
	"math/rand/v2"

	"github.com/jakecoffman/cp"
	"github.com/plus3/ballplayer/config"
	"github.com/plus3/ballplayer/ecs"
)

// BounceEvents counts the edge reflections of the most recent frame. Hosts use it for
// sound cues; the simulation itself never reads it.
type BounceEvents struct {
	Count int
	Total int
}

// SpawnPlayerSystem creates the player at the origin. Startup only.
type SpawnPlayerSystem struct {
	Config *config.Config
}

func (s *SpawnPlayerSystem) Execute(frame *ecs.UpdateFrame) {
	frame.Commands.Spawn(ecs.Entity{
		Sprite: ecs.Sprite{
			Image: s.Config.Sprites.Player,
			Size:  s.Config.Sprites.Size,
		},
		Player:   &ecs.Player{},
		Confined: &ecs.Confined{},
	})
}

// SpawnEnemiesSystem creates the configured number of enemies at random positions
// inside the window with random headings. Startup only; without a window nothing is spawned.
type SpawnEnemiesSystem struct {
	Config *config.Config
	Rand   *rand.Rand
	Window ecs.Singleton[Window]
}

func (s *SpawnEnemiesSystem) Execute(frame *ecs.UpdateFrame) {
	window := s.Window.Get()
	if window == nil {
		return
	}

	size := s.Config.Sprites.Size
	bb := window.InsetBounds(size)

	for range s.Config.Enemies.Count {
		position := cp.Vector{
			X: uniform(s.Rand, bb.L, bb.R),
			Y: uniform(s.Rand, bb.B, bb.T),
		}
		direction := normalizeOrZero(cp.Vector{
			X: uniform(s.Rand, -1, 1),
			Y: uniform(s.Rand, -1, 1),
		})

		frame.Commands.Spawn(ecs.Entity{
			Transform: ecs.Transform{Translation: position},
			Sprite: ecs.Sprite{
				Image: s.Config.Sprites.Enemy,
				Size:  size,
			},
			Enemy:    &ecs.Enemy{Direction: direction},
			Confined: &ecs.Confined{},
		})
	}
}

// uniform draws from [lo, hi). An empty or inverted range yields its midpoint.
func uniform(r *rand.Rand, lo, hi float64) float64 {
	if hi <= lo {
		return (lo + hi) / 2
	}
	return lo + r.Float64()*(hi-lo)
}

// PlayerMovementSystem moves the player along the held direction keys.
type PlayerMovementSystem struct {
	Config  *config.Config
	Players ecs.Query `ecs:"player"`
	Input   ecs.Singleton[InputState]
}

func (s *PlayerMovementSystem) Execute(frame *ecs.UpdateFrame) {
	player, ok := s.Players.Single()
	if !ok {
		return
	}
	input := s.Input.Get()
	if input == nil {
		return
	}

	dir := input.Direction()
	if dir.Length() == 0 {
		return
	}
	player.Transform.Translation = Step(player.Transform.Translation, dir, s.Config.Player.Speed, frame.DeltaTime)
}

// EnemyMovementSystem advances every enemy along its heading. It does not look at the window.
type EnemyMovementSystem struct {
	Config  *config.Config
	Enemies ecs.Query `ecs:"enemy"`
}

func (s *EnemyMovementSystem) Execute(frame *ecs.UpdateFrame) {
	speed := s.Config.Enemies.Speed
	for _, enemy := range s.Enemies.Iter() {
		enemy.Transform.Translation = Step(enemy.Transform.Translation, enemy.Enemy.Direction, speed, frame.DeltaTime)
	}
}

// EnemyDirectionSystem reflects enemy headings off the window edges they have reached.
// It must run after EnemyMovementSystem so it sees this frame's positions.
type EnemyDirectionSystem struct {
	Enemies ecs.Query `ecs:"enemy"`
	Window  ecs.Singleton[Window]
	Bounces ecs.Singleton[BounceEvents]
}

func (s *EnemyDirectionSystem) Execute(frame *ecs.UpdateFrame) {
	events := s.Bounces.Get()
	if events != nil {
		events.Count = 0
	}

	window := s.Window.Get()
	if window == nil {
		return
	}

	count := 0
	for _, enemy := range s.Enemies.Iter() {
		bb := window.InsetBounds(enemy.Sprite.Size)

		dir, bounced := Reflect(enemy.Transform.Translation, enemy.Enemy.Direction, bb)
		enemy.Enemy.Direction = dir
		if bounced {
			count++
		}
	}

	if events != nil {
		events.Count = count
		events.Total += count
	}
}

// ConfinementSystem clamps every confined entity into the window.
type ConfinementSystem struct {
	Confined ecs.Query `ecs:"confined"`
	Window   ecs.Singleton[Window]
}

func (s *ConfinementSystem) Execute(frame *ecs.UpdateFrame) {
	window := s.Window.Get()
	if window == nil {
		return
	}

	for _, entity := range s.Confined.Iter() {
		bb := window.InsetBounds(entity.Sprite.Size)
		entity.Transform.Translation = Confine(entity.Transform.Translation, bb)
	}
}
