package ecs

// System represents a behavior that runs once per frame (or once at startup).
// Systems are structs that can include Query and Singleton fields, which the
// Scheduler initializes on registration, plus any configuration they need.
type System interface {
	Execute(frame *UpdateFrame)
}
