package components

import "github.com/yohamta/donburi"

// HazardData damages characters touching it
type HazardData struct {
	Damage int
}

var Hazard = donburi.NewComponentType[HazardData]()

// PickupKind is what a pickup grants
type PickupKind int

const (
	PickupCoin PickupKind = iota
	PickupMana
)

type PickupData struct {
	Kind      PickupKind
	Value     int
	Collected bool
}

var Pickup = donburi.NewComponentType[PickupData]()

// ExitData marks the level exit
type ExitData struct {
	Activated bool
}

var Exit = donburi.NewComponentType[ExitData]()
