package factory

import (
	"github.com/XQwart/fkpg-jmp-fix/archetypes"
	"github.com/XQwart/fkpg-jmp-fix/assets"
	"github.com/XQwart/fkpg-jmp-fix/components"
	cfg "github.com/XQwart/fkpg-jmp-fix/config"
	"github.com/XQwart/fkpg-jmp-fix/systems"
	"github.com/XQwart/fkpg-jmp-fix/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// CreatePlayer spawns the player with its sprite centered on (x, y).
// health outside (0, MaxHealth] starts the player at full health.
func CreatePlayer(e *ecs.ECS, x, y float64, health int, frames assets.FrameSource) *donburi.Entry {
	player := archetypes.Player.Spawn(e)

	if health <= 0 || health > cfg.Player.MaxHealth {
		health = cfg.Player.MaxHealth
	}

	char := components.CharacterData{
		Position:       math.Vec2{X: x, Y: y},
		MaxVelocity:    math.Vec2{X: cfg.Player.BaseSpeed * cfg.Player.SprintMultiplier, Y: cfg.Player.MaxFallSpeed},
		Health:         health,
		MaxHealth:      cfg.Player.MaxHealth,
		InvulnDuration: cfg.Player.InvulnDuration,
		HalfWidth:      float64(cfg.Player.SpriteWidth) / 2,
		HalfHeight:     float64(cfg.Player.SpriteHeight) / 2,
	}
	components.Character.SetValue(player, char)

	components.Player.SetValue(player, components.PlayerData{
		MaxMana:      cfg.Player.MaxMana,
		CurrentState: cfg.Idle,
	})

	w, h := float64(cfg.Player.CollisionWidth), float64(cfg.Player.CollisionHeight)
	ox, oy := systems.ObjectOrigin(&char, w, h)
	obj := resolv.NewObject(ox, oy, w, h, "character", tags.ResolvPlayer)
	addToSpace(e, player, obj)

	animData := GenerateAnimations(cfg.PlayerSpriteKey, frames)
	animData.SetAnimation(cfg.Idle)
	components.Animation.Set(player, animData)

	return player
}
