package ecs

import "github.com/jakecoffman/cp"

// Transform holds an entity's position in world space. The origin is the window centre and +Y points up.
type Transform struct {
	Translation cp.Vector
}

// Sprite describes how an entity is drawn. Size is the edge length of the square sprite and
// doubles as the entity's extent for bounds checks.
type Sprite struct {
	Image string
	Size  float64
}

// HalfSize returns half the sprite edge.
func (s Sprite) HalfSize() float64 {
	return s.Size / 2
}

// Player tags the entity driven by keyboard input.
type Player struct{}

// Enemy carries the heading of an autonomously moving entity.
// Direction is unit length, or the zero vector once both axes cancel out.
type Enemy struct {
	Direction cp.Vector
}

// Confined marks an entity whose position is clamped to the window every frame.
type Confined struct{}
