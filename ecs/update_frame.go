package ecs

// UpdateFrame is passed to every system of a stage.
type UpdateFrame struct {
	// DeltaTime is the elapsed wall-clock time since the previous frame, in seconds.
	DeltaTime float64
	Commands  *Commands
	Storage   *Storage
}

func newUpdateFrame(dt float64, storage *Storage) *UpdateFrame {
	return &UpdateFrame{
		DeltaTime: dt,
		Commands:  newCommands(),
		Storage:   storage,
	}
}
