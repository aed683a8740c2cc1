package factory

import (
	"github.com/XQwart/fkpg-jmp-fix/archetypes"
	"github.com/XQwart/fkpg-jmp-fix/components"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateSpace(e *ecs.ECS, width, height, cellWidth, cellHeight int) *donburi.Entry {
	space := archetypes.Space.Spawn(e)
	components.Space.Set(space, resolv.NewSpace(width, height, cellWidth, cellHeight))
	return space
}

// addToSpace links obj to entry and registers it with the level's space
func addToSpace(e *ecs.ECS, entry *donburi.Entry, obj *resolv.Object) {
	obj.SetShape(resolv.NewRectangle(0, 0, obj.W, obj.H))
	obj.Data = entry // Link for O(1) lookup
	components.Object.SetValue(entry, components.ObjectData{Object: obj})
	if spaceEntry, ok := components.Space.First(e.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
}
