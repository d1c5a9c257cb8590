package ecs_test

import (
	"testing"

	"github.com/plus3/ballplayer/ecs"
	"github.com/stretchr/testify/assert"
)

type spawnSystem struct {
	executed bool
}

func (s *spawnSystem) Execute(frame *ecs.UpdateFrame) {
	s.executed = true
	frame.Commands.Spawn(player(1, 2))
}

func TestCommandsFlush(t *testing.T) {
	storage := ecs.NewStorage()
	var commands ecs.Commands

	var order []string
	commands.Spawn(player(0, 0))
	commands.Defer(func() {
		order = append(order, "defer")
		assert.Equal(t, 1, storage.Len(), "defers run after spawns")
	})
	assert.Equal(t, 2, commands.Len())
	assert.Equal(t, 0, storage.Len())

	spawned := commands.Flush(storage)
	assert.Equal(t, []ecs.EntityId{1}, spawned)
	assert.Equal(t, []string{"defer"}, order)
	assert.Equal(t, 0, commands.Len())

	assert.Empty(t, commands.Flush(storage))
}

func TestCommandsAppliedAfterStage(t *testing.T) {
	storage := ecs.NewStorage()
	scheduler := ecs.NewScheduler(storage)

	spawner := &spawnSystem{}
	counter := &countingSystem{}
	scheduler.Register(spawner)
	scheduler.Register(counter)

	scheduler.Once(0.1)
	assert.True(t, spawner.executed)
	assert.Equal(t, []int{0}, counter.seen, "spawn is not visible within the same stage")
	assert.Equal(t, 1, storage.Len())

	scheduler.Once(0.1)
	assert.Equal(t, []int{0, 1}, counter.seen)
}
