package factory

import (
	"github.com/XQwart/fkpg-jmp-fix/archetypes"
	"github.com/XQwart/fkpg-jmp-fix/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateCamera(e *ecs.ECS) *donburi.Entry {
	camera := archetypes.Camera.Spawn(e)
	components.Camera.Set(camera, &components.CameraData{})
	return camera
}
