package factory

import (
	"github.com/XQwart/fkpg-jmp-fix/archetypes"
	"github.com/XQwart/fkpg-jmp-fix/assets"
	"github.com/XQwart/fkpg-jmp-fix/components"
	cfg "github.com/XQwart/fkpg-jmp-fix/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// spaceCellSize is the resolv cell size in pixels
const spaceCellSize = 16

// CreateLevel loads level id and spawns its collision space, ground,
// hazards, pickups and exits
func CreateLevel(e *ecs.ECS, id string) (*donburi.Entry, error) {
	data, err := assets.LoadLevel(id)
	if err != nil {
		return nil, err
	}

	level := archetypes.Level.Spawn(e)
	components.Level.SetValue(level, components.LevelData{ID: id, CurrentLevel: data})

	// The space has to exist before anything collidable is created
	CreateSpace(e, data.Width, data.Height, spaceCellSize, spaceCellSize)

	for _, r := range data.Ground {
		CreateGround(e, r.X, r.Y, r.Width, r.Height)
	}
	for _, r := range data.Spikes {
		CreateHazard(e, r.X, r.Y, r.Width, r.Height, cfg.Hazard.SpikeDamage)
	}
	for _, r := range data.Exits {
		CreateExit(e, r.X, r.Y, r.Width, r.Height)
	}
	for _, p := range data.Pickups {
		kind, value := pickupKind(p)
		CreatePickup(e, p.X, p.Y, kind, value)
	}

	return level, nil
}

func pickupKind(p assets.PickupSpawn) (components.PickupKind, int) {
	kind, value := components.PickupCoin, cfg.Hazard.CoinValue
	if p.Kind == "mana" {
		kind, value = components.PickupMana, cfg.Hazard.ManaValue
	}
	if p.Value > 0 {
		value = p.Value
	}
	return kind, value
}

// PlayerStart returns the sprite center for a fresh player. Spawn points
// mark the feet.
func PlayerStart(level *assets.Level) (float64, float64) {
	halfHeight := float64(cfg.Player.SpriteHeight) / 2
	if level == nil || len(level.PlayerSpawns) == 0 {
		return cfg.Player.DefaultSpawnX, cfg.Player.DefaultSpawnY - halfHeight
	}
	spawn := level.PlayerSpawns[0]
	return spawn.X, spawn.Y - halfHeight
}
