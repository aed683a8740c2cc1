package factory

import (
	"github.com/XQwart/fkpg-jmp-fix/archetypes"
	"github.com/XQwart/fkpg-jmp-fix/components"
	"github.com/XQwart/fkpg-jmp-fix/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// pickupSize is the side of a pickup's collision box
const pickupSize = 16.0

func CreateGround(e *ecs.ECS, x, y, w, h float64) *donburi.Entry {
	ground := archetypes.Ground.Spawn(e)
	obj := resolv.NewObject(x, y, w, h, tags.ResolvSolid)
	addToSpace(e, ground, obj)
	return ground
}

func CreateHazard(e *ecs.ECS, x, y, w, h float64, damage int) *donburi.Entry {
	hazard := archetypes.Hazard.Spawn(e)
	components.Hazard.SetValue(hazard, components.HazardData{Damage: damage})
	addToSpace(e, hazard, resolv.NewObject(x, y, w, h, tags.ResolvHazard))
	return hazard
}

// CreatePickup places a pickup centered on (x, y)
func CreatePickup(e *ecs.ECS, x, y float64, kind components.PickupKind, value int) *donburi.Entry {
	pickup := archetypes.Pickup.Spawn(e)
	components.Pickup.SetValue(pickup, components.PickupData{Kind: kind, Value: value})
	obj := resolv.NewObject(x-pickupSize/2, y-pickupSize/2, pickupSize, pickupSize, tags.ResolvPickup)
	addToSpace(e, pickup, obj)
	return pickup
}

func CreateExit(e *ecs.ECS, x, y, w, h float64) *donburi.Entry {
	exit := archetypes.Exit.Spawn(e)
	components.Exit.SetValue(exit, components.ExitData{})
	addToSpace(e, exit, resolv.NewObject(x, y, w, h, tags.ResolvExit))
	return exit
}
