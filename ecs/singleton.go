package ecs

import "reflect"

// Singleton provides access to a single resource that is not associated with any entity,
// such as the host window or the current input state.
//
// Unlike component pointers, a singleton may appear and disappear between frames
// (the host removes the window while it is closing), so Get looks the value up every call.
type Singleton[T any] struct {
	storage       *Storage
	componentType reflect.Type
}

// NewSingleton creates a Singleton accessor for the given storage.
// If initializer is provided and the singleton doesn't exist yet, it is added with that value.
func NewSingleton[T any](storage *Storage, initializer ...T) *Singleton[T] {
	s := &Singleton[T]{}
	s.Init(storage)

	if len(initializer) > 0 && !s.Exists() {
		SetSingleton(storage, initializer[0])
	}
	return s
}

// Init binds the accessor to a storage.
// This is called automatically by the Scheduler during system registration.
func (s *Singleton[T]) Init(storage *Storage) {
	s.storage = storage
	s.componentType = reflect.TypeFor[T]()
}

// Get returns a pointer to the singleton, or nil if it is not currently present.
func (s *Singleton[T]) Get() *T {
	if s.storage == nil {
		return nil
	}
	value := s.storage.getSingleton(s.componentType)
	if value == nil {
		return nil
	}
	return value.(*T)
}

// Exists reports whether the singleton is currently present.
func (s *Singleton[T]) Exists() bool {
	return s.Get() != nil
}
