package ecs

// Commands buffers structural changes made while systems run. They are applied
// by the Scheduler once the current stage has finished, so queries never observe
// a half-built frame.
type Commands struct {
	spawns []Entity
	defers []func()
}

func newCommands() *Commands {
	return &Commands{}
}

// Spawn queues an entity spawn.
func (c *Commands) Spawn(entity Entity) {
	c.spawns = append(c.spawns, entity)
}

// Defer queues a function to run after all spawns of this flush.
func (c *Commands) Defer(fn func()) {
	c.defers = append(c.defers, fn)
}

// Len returns the number of queued operations.
func (c *Commands) Len() int {
	return len(c.spawns) + len(c.defers)
}

// Flush applies all queued operations to storage in order and resets the buffer.
// It returns the ids of the spawned entities.
func (c *Commands) Flush(storage *Storage) []EntityId {
	var spawned []EntityId
	for _, entity := range c.spawns {
		spawned = append(spawned, storage.Spawn(entity))
	}

	for _, fn := range c.defers {
		fn()
	}

	c.spawns = c.spawns[:0]
	c.defers = c.defers[:0]
	return spawned
}
