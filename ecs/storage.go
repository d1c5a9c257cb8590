package ecs

import (
	"iter"
	"reflect"
	"sort"

	"github.com/kamstrup/intmap"
)

// Storage owns every entity record and singleton resource of a simulation.
// Entities are kept in a dense slice; slots never move, so slot indices stay valid
// for the lifetime of the storage.
type Storage struct {
	entities []Entity
	index    *intmap.Map[EntityId, int]
	nextId   EntityId

	// version increments on every structural change so queries know when to rebuild.
	version int

	singletons map[reflect.Type]any
}

// NewStorage creates an empty storage.
func NewStorage() *Storage {
	return &Storage{
		index:      intmap.New[EntityId, int](64),
		singletons: make(map[reflect.Type]any),
	}
}

// Spawn adds an entity record and returns its newly assigned id.
// Any Id already set on the record is ignored.
func (s *Storage) Spawn(entity Entity) EntityId {
	s.nextId++
	entity.Id = s.nextId

	s.entities = append(s.entities, entity)
	s.index.Put(entity.Id, len(s.entities)-1)
	s.version++

	return entity.Id
}

// Get returns the entity with the given id, or nil if it does not exist.
// The pointer is only valid until the next Spawn.
func (s *Storage) Get(id EntityId) *Entity {
	slot, ok := s.index.Get(id)
	if !ok {
		return nil
	}
	return &s.entities[slot]
}

// Len returns the number of entities.
func (s *Storage) Len() int {
	return len(s.entities)
}

// Version returns a counter that changes whenever entities are added.
func (s *Storage) Version() int {
	return s.version
}

// Iter returns an iterator over every entity in spawn order.
func (s *Storage) Iter() iter.Seq2[EntityId, *Entity] {
	return func(yield func(EntityId, *Entity) bool) {
		for i := range s.entities {
			entity := &s.entities[i]
			if !yield(entity.Id, entity) {
				return
			}
		}
	}
}

func (s *Storage) slot(i int) *Entity {
	return &s.entities[i]
}

// RemoveSingleton deletes the singleton of the given type, if any.
func (s *Storage) RemoveSingleton(t reflect.Type) {
	delete(s.singletons, t)
}

// getSingleton returns a pointer to the singleton of the given type, or nil.
func (s *Storage) getSingleton(t reflect.Type) any {
	return s.singletons[t]
}

// SetSingleton stores value as the singleton of type T and returns a pointer to the stored copy.
func SetSingleton[T any](s *Storage, value T) *T {
	ptr := new(T)
	*ptr = value
	s.singletons[reflect.TypeFor[T]()] = ptr
	return ptr
}

// ReadSingleton returns the singleton of type T, or nil if it has not been added.
func ReadSingleton[T any](s *Storage) *T {
	value, ok := s.singletons[reflect.TypeFor[T]()]
	if !ok {
		return nil
	}
	return value.(*T)
}

// DeleteSingleton removes the singleton of type T.
func DeleteSingleton[T any](s *Storage) {
	s.RemoveSingleton(reflect.TypeFor[T]())
}

// StorageStats is a point-in-time summary of a Storage.
type StorageStats struct {
	TotalEntityCount int
	PlayerCount      int
	EnemyCount       int
	ConfinedCount    int
	SingletonCount   int
	SingletonTypes   []string
}

// CollectStats walks the storage and counts entities per component.
func (s *Storage) CollectStats() *StorageStats {
	stats := &StorageStats{
		TotalEntityCount: len(s.entities),
		SingletonCount:   len(s.singletons),
		SingletonTypes:   make([]string, 0, len(s.singletons)),
	}

	for _, entity := range s.Iter() {
		if entity.Player != nil {
			stats.PlayerCount++
		}
		if entity.Enemy != nil {
			stats.EnemyCount++
		}
		if entity.Confined != nil {
			stats.ConfinedCount++
		}
	}

	for t := range s.singletons {
		stats.SingletonTypes = append(stats.SingletonTypes, t.String())
	}
	sort.Strings(stats.SingletonTypes)

	return stats
}
