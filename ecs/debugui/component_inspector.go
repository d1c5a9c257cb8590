package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/ballplayer/ecs"
)

// ComponentInspector shows the components of one entity. The position can be edited,
// which teleports the entity; confinement pulls it back inside the window next frame.
type ComponentInspector struct {
	selectedEntityId ecs.EntityId
}

func NewComponentInspector() *ComponentInspector {
	return &ComponentInspector{}
}

func (ci *ComponentInspector) Render(storage *ecs.Storage, selectedEntityId ecs.EntityId) {
	if !imgui.BeginV("Component Inspector", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	ci.selectedEntityId = selectedEntityId

	if ci.selectedEntityId == 0 {
		imgui.Text("No entity selected")
		imgui.End()
		return
	}

	entity := storage.Get(ci.selectedEntityId)
	if entity == nil {
		imgui.Text(fmt.Sprintf("Entity %d not found", ci.selectedEntityId))
		imgui.End()
		return
	}

	imgui.Text(fmt.Sprintf("Entity ID: %d", entity.Id))
	imgui.Text(fmt.Sprintf("Kind: %s", entity.Kind()))
	imgui.Separator()

	if imgui.TreeNodeStr("Transform") {
		floatField("X", &entity.Transform.Translation.X)
		floatField("Y", &entity.Transform.Translation.Y)
		imgui.TreePop()
	}

	if imgui.TreeNodeStr("Sprite") {
		imgui.Text(fmt.Sprintf("Image: %s", entity.Sprite.Image))
		imgui.Text(fmt.Sprintf("Size: %g", entity.Sprite.Size))
		imgui.TreePop()
	}

	if entity.Enemy != nil && imgui.TreeNodeStr("Enemy") {
		dir := entity.Enemy.Direction
		imgui.Text(fmt.Sprintf("Direction: %.4f, %.4f", dir.X, dir.Y))
		imgui.Text(fmt.Sprintf("Length: %.6f", dir.Length()))
		imgui.TreePop()
	}

	if entity.Player != nil {
		imgui.BulletText("Player")
	}
	if entity.Confined != nil {
		imgui.BulletText("Confined")
	}

	imgui.End()
}

func floatField(name string, value *float64) {
	v := float32(*value)
	imgui.Text(fmt.Sprintf("%s:", name))
	imgui.SameLine()
	imgui.SetNextItemWidth(150)
	if imgui.InputFloat(fmt.Sprintf("##%s", name), &v) {
		*value = float64(v)
	}
}
