// Package debugui provides a Dear ImGui overlay for inspecting a running simulation:
// an entity browser, a component inspector and performance statistics.
//
// Windows render from deferred commands, so they always see the state left by the
// last system of the frame.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/ballplayer/ecs"
)

// ImguiItem holds a Dear ImGui render function.
type ImguiItem struct {
	Render func()
}

// ImguiInputState tracks whether Dear ImGui is consuming mouse or keyboard input.
// Hosts read it to avoid moving the player while a text field has focus.
type ImguiInputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// ImguiSystem updates ImguiInputState and defers every item's render function
// until the frame's commands are flushed.
type ImguiSystem struct {
	Items      []ImguiItem
	InputState ecs.Singleton[ImguiInputState]
}

// Execute updates input state and queues all ImGui render functions for execution.
func (i *ImguiSystem) Execute(frame *ecs.UpdateFrame) {
	if state := i.InputState.Get(); state != nil {
		state.WantCaptureMouse = imgui.CurrentIO().WantCaptureMouse()
		state.WantCaptureKeyboard = imgui.CurrentIO().WantCaptureKeyboard()
	}

	for _, item := range i.Items {
		frame.Commands.Defer(item.Render)
	}
}

// Overlay is the standard set of debug windows.
type Overlay struct {
	Browser     *EntityBrowser
	Inspector   *ComponentInspector
	Performance *PerformanceStats

	storage   *ecs.Storage
	scheduler *ecs.Scheduler
	timer     *FrameTimer
}

// NewOverlay creates the debug windows for storage and scheduler.
func NewOverlay(storage *ecs.Storage, scheduler *ecs.Scheduler) *Overlay {
	ecs.NewSingleton(storage, ImguiInputState{})

	return &Overlay{
		Browser:     NewEntityBrowser(50),
		Inspector:   NewComponentInspector(),
		Performance: NewPerformanceStats(120),
		storage:     storage,
		scheduler:   scheduler,
		timer:       NewFrameTimer(),
	}
}

// System returns an ImguiSystem rendering every overlay window. Register it last
// so the windows show the frame's final state.
func (o *Overlay) System() *ImguiSystem {
	return &ImguiSystem{
		Items: []ImguiItem{
			{Render: func() { o.Browser.Render(o.storage) }},
			{Render: func() { o.Inspector.Render(o.storage, o.Browser.SelectedEntity()) }},
			{Render: func() { o.Performance.Render(o.storage, o.scheduler, o.timer.GetDeltaTime()) }},
		},
	}
}
