package tags

import "github.com/yohamta/donburi"

var (
	Player = donburi.NewTag().SetName("Player")
	Ground = donburi.NewTag().SetName("Ground")
	Hazard = donburi.NewTag().SetName("Hazard")
	Pickup = donburi.NewTag().SetName("Pickup")
	Exit   = donburi.NewTag().SetName("Exit")
)

// Resolv tags for physics collision
const (
	ResolvSolid  = "solid"
	ResolvPlayer = "player"
	ResolvHazard = "hazard"
	ResolvPickup = "pickup"
	ResolvExit   = "exit"
)
