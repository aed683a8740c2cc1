package factory

import (
	"testing"

	"github.com/XQwart/fkpg-jmp-fix/assets"
	"github.com/XQwart/fkpg-jmp-fix/assets/animations"
	"github.com/XQwart/fkpg-jmp-fix/components"
	cfg "github.com/XQwart/fkpg-jmp-fix/config"
	"github.com/XQwart/fkpg-jmp-fix/systems"
	"github.com/XQwart/fkpg-jmp-fix/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

// noFrames stands in for missing art; every state plays the placeholder
type noFrames struct{}

func (noFrames) Frames(string) []animations.Frame { return nil }

func newLevelWorld(t *testing.T) (*ecs.ECS, *assets.Level) {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	entry, err := CreateLevel(e, "tutorial")
	require.NoError(t, err)
	return e, components.Level.Get(entry).CurrentLevel
}

func countTagged(e *ecs.ECS, c donburi.IComponentType) int {
	return donburi.NewQuery(filter.Contains(c)).Count(e.World)
}

func TestCreateLevelSpawnsEverything(t *testing.T) {
	e, level := newLevelWorld(t)

	assert.Equal(t, len(level.Ground), countTagged(e, tags.Ground))
	assert.Equal(t, len(level.Spikes), countTagged(e, tags.Hazard))
	assert.Equal(t, len(level.Exits), countTagged(e, tags.Exit))
	assert.Equal(t, len(level.Pickups), countTagged(e, tags.Pickup))

	_, ok := components.Space.First(e.World)
	assert.True(t, ok)
}

func TestCreateLevelUnknown(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	_, err := CreateLevel(e, "does_not_exist")
	assert.Error(t, err)
}

func TestPickupKind(t *testing.T) {
	kind, value := pickupKind(assets.PickupSpawn{Kind: "coin"})
	assert.Equal(t, components.PickupCoin, kind)
	assert.Equal(t, cfg.Hazard.CoinValue, value)

	kind, value = pickupKind(assets.PickupSpawn{Kind: "mana"})
	assert.Equal(t, components.PickupMana, kind)
	assert.Equal(t, cfg.Hazard.ManaValue, value)

	_, value = pickupKind(assets.PickupSpawn{Kind: "coin", Value: 5})
	assert.Equal(t, 5, value)
}

func TestPlayerStart(t *testing.T) {
	half := float64(cfg.Player.SpriteHeight) / 2

	x, y := PlayerStart(&assets.Level{PlayerSpawns: []assets.PlayerSpawn{{X: 96, Y: 576}}})
	assert.Equal(t, 96.0, x)
	assert.Equal(t, 576-half, y)

	x, y = PlayerStart(&assets.Level{})
	assert.Equal(t, cfg.Player.DefaultSpawnX, x)
	assert.Equal(t, cfg.Player.DefaultSpawnY-half, y)
}

func TestCreatePlayer(t *testing.T) {
	e, _ := newLevelWorld(t)

	player := CreatePlayer(e, 96, 512, 0, noFrames{})
	char := components.Character.Get(player)
	assert.Equal(t, cfg.Player.MaxHealth, char.Health)
	assert.Equal(t, 96.0, char.Position.X)

	obj := components.Object.Get(player).Object
	assert.Equal(t, float64(cfg.Player.CollisionWidth), obj.W)
	// Feet of the box line up with the bottom of the sprite
	assert.Equal(t, char.Position.Y+char.HalfHeight, obj.Y+obj.H)
	assert.Same(t, player, obj.Data)

	anim := components.Animation.Get(player)
	assert.Equal(t, cfg.Idle, anim.CurrentSheet)
	assert.True(t, anim.CurrentFrame(false).IsPlaceholder())
}

func TestCreatePlayerKeepsSavedHealth(t *testing.T) {
	e, _ := newLevelWorld(t)
	player := CreatePlayer(e, 96, 512, 35, noFrames{})
	assert.Equal(t, 35, components.Character.Get(player).Health)
}

func TestPlayerLandsAndCollectsCoins(t *testing.T) {
	e, level := newLevelWorld(t)
	x, y := PlayerStart(level)
	player := CreatePlayer(e, x, y-40, 0, noFrames{})

	for range 60 {
		systems.UpdatePlayer(e)
		systems.UpdateCharacterPhysics(e)
		systems.UpdateZones(e)
	}
	char := components.Character.Get(player)
	require.True(t, char.OnGround)
	assert.InDelta(t, y, char.Position.Y, 0.001)

	components.Player.Get(player).MoveDirection = 1
	for range 180 {
		systems.UpdatePlayer(e)
		systems.UpdateCharacterPhysics(e)
		systems.UpdateZones(e)
	}

	assert.Equal(t, 3*cfg.Hazard.CoinValue, components.Player.Get(player).Coins)
	assert.Equal(t, len(level.Pickups)-3, countTagged(e, tags.Pickup))
}
