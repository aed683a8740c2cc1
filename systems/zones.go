package systems

import (
	"github.com/XQwart/fkpg-jmp-fix/components"
	cfg "github.com/XQwart/fkpg-jmp-fix/config"
	"github.com/XQwart/fkpg-jmp-fix/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateZones applies hazards, pickups and the exit to the player.
// Must run AFTER UpdateCharacterPhysics.
func UpdateZones(e *ecs.ECS) {
	entry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	char := components.Character.Get(entry)
	obj := components.Object.Get(entry).Object

	if char.IsAlive() {
		checkHazards(entry, obj)
		checkPickups(e, entry, obj)
		checkExit(e, obj)
	}
	checkFall(e, entry, char)
}

func checkHazards(entry *donburi.Entry, obj *resolv.Object) {
	check := obj.Check(0, 0, tags.ResolvHazard)
	if check == nil {
		return
	}
	combatant := CombatantFor(entry)
	for _, hazardObj := range check.ObjectsByTags(tags.ResolvHazard) {
		hazardEntry, ok := hazardObj.Data.(*donburi.Entry)
		if !ok || !hazardEntry.Valid() {
			continue
		}
		hazard := components.Hazard.Get(hazardEntry)
		// The invulnerability window limits how often a hazard bites
		if combatant.TakeDamage(hazard.Damage) {
			return
		}
	}
}

func checkPickups(e *ecs.ECS, entry *donburi.Entry, obj *resolv.Object) {
	check := obj.Check(0, 0, tags.ResolvPickup)
	if check == nil {
		return
	}
	player := components.Player.Get(entry)

	for _, pickupObj := range check.ObjectsByTags(tags.ResolvPickup) {
		pickupEntry, ok := pickupObj.Data.(*donburi.Entry)
		if !ok || !pickupEntry.Valid() {
			continue
		}
		pickup := components.Pickup.Get(pickupEntry)
		if pickup.Collected {
			continue
		}
		pickup.Collected = true

		switch pickup.Kind {
		case components.PickupCoin:
			player.AddCoins(pickup.Value)
			PlaySFX(e, cfg.SoundCoin)
		case components.PickupMana:
			player.AddMana(pickup.Value)
			PlaySFX(e, cfg.SoundMana)
		}
		removeObject(e, pickupEntry, pickupObj)
	}
}

func checkExit(e *ecs.ECS, obj *resolv.Object) {
	check := obj.Check(0, 0, tags.ResolvExit)
	if check == nil {
		return
	}
	for _, exitObj := range check.ObjectsByTags(tags.ResolvExit) {
		exitEntry, ok := exitObj.Data.(*donburi.Entry)
		if !ok || !exitEntry.Valid() {
			continue
		}
		components.Exit.Get(exitEntry).Activated = true
		SetOutcome(e, components.OutcomeLevelComplete)
		return
	}
}

// checkFall kills a player who dropped below the level
func checkFall(e *ecs.ECS, entry *donburi.Entry, char *components.CharacterData) {
	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry).CurrentLevel
	if level == nil {
		return
	}
	if char.Position.Y-char.HalfHeight <= float64(level.Height) {
		return
	}

	Kill(CombatantFor(entry), entry)
}

// removeObject takes an entity out of the collision space and the world
func removeObject(e *ecs.ECS, entry *donburi.Entry, obj *resolv.Object) {
	if spaceEntry, ok := components.Space.First(e.World); ok {
		components.Space.Get(spaceEntry).Remove(obj)
	}
	e.World.Remove(entry.Entity())
}
