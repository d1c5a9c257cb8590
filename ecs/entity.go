package ecs

// EntityId identifies an entity for the lifetime of its Storage. Zero is never a valid id.
type EntityId uint64

// Entity is a single record in Storage. Transform and Sprite are always present;
// the remaining components are optional and nil when the entity does not carry them.
type Entity struct {
	Id        EntityId
	Transform Transform
	Sprite    Sprite

	Player   *Player
	Enemy    *Enemy
	Confined *Confined
}

// Components returns the names of the components attached to the entity.
func (e *Entity) Components() []string {
	names := []string{"Transform", "Sprite"}
	if e.Player != nil {
		names = append(names, "Player")
	}
	if e.Enemy != nil {
		names = append(names, "Enemy")
	}
	if e.Confined != nil {
		names = append(names, "Confined")
	}
	return names
}

// Kind returns a short label for the entity, used by debug tooling.
func (e *Entity) Kind() string {
	switch {
	case e.Player != nil:
		return "player"
	case e.Enemy != nil:
		return "enemy"
	default:
		return "entity"
	}
}
