package ecs

import (
	"fmt"
	"iter"
	"strings"
)

// Filter selects entities by the optional components they carry.
// The zero Filter matches every entity.
type Filter uint8

const (
	WithPlayer Filter = 1 << iota
	WithEnemy
	WithConfined
)

var filterNames = map[string]Filter{
	"player":   WithPlayer,
	"enemy":    WithEnemy,
	"confined": WithConfined,
}

// ParseFilter parses a comma separated list of component names, e.g. "enemy,confined".
func ParseFilter(tag string) (Filter, error) {
	var f Filter
	if tag == "" {
		return f, nil
	}
	for _, name := range strings.Split(tag, ",") {
		bit, ok := filterNames[strings.TrimSpace(name)]
		if !ok {
			return 0, fmt.Errorf("ecs: unknown query component %q", name)
		}
		f |= bit
	}
	return f, nil
}

// Matches reports whether the entity carries every component named by the filter.
func (f Filter) Matches(e *Entity) bool {
	if f&WithPlayer != 0 && e.Player == nil {
		return false
	}
	if f&WithEnemy != 0 && e.Enemy == nil {
		return false
	}
	if f&WithConfined != 0 && e.Confined == nil {
		return false
	}
	return true
}

// Query iterates the entities matching a Filter. Matching slots are cached and only
// rebuilt when the storage version changes.
//
// Systems declare queries as exported fields with an `ecs` tag naming the required
// components; the Scheduler initializes them on registration:
//
//	type EnemyMovementSystem struct {
//		Enemies ecs.Query `ecs:"enemy"`
//	}
type Query struct {
	storage *Storage
	filter  Filter

	cachedSlots []int
	lastVersion int
}

// NewQuery creates a Query over storage.
func NewQuery(storage *Storage, filter Filter) *Query {
	q := &Query{}
	q.Init(storage, filter)
	return q
}

// Init initializes or re-initializes the Query.
// Called by the Scheduler during system registration.
func (q *Query) Init(storage *Storage, filter Filter) {
	q.storage = storage
	q.filter = filter
	q.cachedSlots = nil
	q.lastVersion = -1
}

// Filter returns the components the query requires.
func (q *Query) Filter() Filter {
	return q.filter
}

func (q *Query) refresh() {
	if q.storage == nil {
		panic("Query used before Init")
	}
	if q.lastVersion == q.storage.version {
		return
	}

	q.cachedSlots = q.cachedSlots[:0]
	for i := range q.storage.entities {
		if q.filter.Matches(q.storage.slot(i)) {
			q.cachedSlots = append(q.cachedSlots, i)
		}
	}
	q.lastVersion = q.storage.version
}

// Iter returns an iterator over the matching entities in spawn order.
// Entities spawned during iteration are not visited.
func (q *Query) Iter() iter.Seq2[EntityId, *Entity] {
	q.refresh()
	slots := q.cachedSlots

	return func(yield func(EntityId, *Entity) bool) {
		for _, slot := range slots {
			entity := q.storage.slot(slot)
			if !yield(entity.Id, entity) {
				return
			}
		}
	}
}

// Count returns the number of matching entities.
func (q *Query) Count() int {
	q.refresh()
	return len(q.cachedSlots)
}

// Single returns the only matching entity. It reports false when there are
// zero or several matches.
func (q *Query) Single() (*Entity, bool) {
	q.refresh()
	if len(q.cachedSlots) != 1 {
		return nil, false
	}
	return q.storage.slot(q.cachedSlots[0]), true
}
