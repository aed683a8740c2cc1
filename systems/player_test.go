package systems

import (
	"testing"

	"github.com/XQwart/fkpg-jmp-fix/components"
	cfg "github.com/XQwart/fkpg-jmp-fix/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

func stepFor(entry *donburi.Entry, seconds float64) {
	for range int(seconds * cfg.TPS) {
		StepPlayer(entry, cfg.DeltaTime)
	}
}

func TestHeavyAttackNeedsDoubleClick(t *testing.T) {
	e := newTestECS()
	player := newTestPlayer(e)
	heavy := cfg.Input.HeavyAttackButton

	assert.False(t, HandlePlayerClick(player, heavy, 1000))
	assert.Equal(t, cfg.Idle, playerState(player))

	assert.True(t, HandlePlayerClick(player, heavy, 1150))
	assert.Equal(t, cfg.AttackHeavy, playerState(player))

	data := components.Player.Get(player)
	assert.False(t, data.HeavyClickPending)
	assert.Contains(t, pendingSFX(e), cfg.SoundAttackHeavy)
}

func TestHeavyAttackThreshold(t *testing.T) {
	tests := []struct {
		name  string
		gapMs int64
		fires bool
	}{
		{name: "quick", gapMs: 150, fires: true},
		{name: "at threshold", gapMs: cfg.Player.DoubleClickThreshold.Milliseconds(), fires: true},
		{name: "too slow", gapMs: cfg.Player.DoubleClickThreshold.Milliseconds() + 1, fires: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			player := newTestPlayer(newTestECS())
			heavy := cfg.Input.HeavyAttackButton

			HandlePlayerClick(player, heavy, 5000)
			assert.Equal(t, tt.fires, HandlePlayerClick(player, heavy, 5000+tt.gapMs))
		})
	}
}

func TestSlowSecondClickRearmsDetector(t *testing.T) {
	player := newTestPlayer(newTestECS())
	heavy := cfg.Input.HeavyAttackButton

	HandlePlayerClick(player, heavy, 1000)
	assert.False(t, HandlePlayerClick(player, heavy, 1600))

	data := components.Player.Get(player)
	assert.True(t, data.HeavyClickPending)
	assert.Equal(t, int64(1600), data.LastHeavyClickMs)

	assert.True(t, HandlePlayerClick(player, heavy, 1800))
}

func TestLightAttackPicksOneOfTwo(t *testing.T) {
	for range 20 {
		e := newTestECS()
		player := newTestPlayer(e)
		require.True(t, HandlePlayerClick(player, cfg.Input.LightAttackButton, 0))
		assert.Contains(t, []cfg.StateID{cfg.AttackLight1, cfg.AttackLight2}, playerState(player))
		assert.Contains(t, pendingSFX(e), cfg.SoundAttackLight)
	}
}

func TestNoAttackWhileAttacking(t *testing.T) {
	player := newTestPlayer(newTestECS())
	pickLightAttack = func() cfg.StateID { return cfg.AttackLight1 }
	t.Cleanup(func() { pickLightAttack = defaultPickLightAttack })

	require.True(t, HandlePlayerClick(player, cfg.Input.LightAttackButton, 0))
	assert.False(t, HandlePlayerClick(player, cfg.Input.LightAttackButton, 50))

	// A heavy click during the attack is not remembered
	assert.False(t, HandlePlayerClick(player, cfg.Input.HeavyAttackButton, 60))
	assert.False(t, components.Player.Get(player).HeavyClickPending)
	assert.Equal(t, cfg.AttackLight1, playerState(player))
}

func TestAttackReturnsToIdle(t *testing.T) {
	player := newTestPlayer(newTestECS())
	HandlePlayerClick(player, cfg.Input.LightAttackButton, 0)

	stepFor(player, 0.5)
	assert.Equal(t, cfg.Idle, playerState(player))
}

func TestJumpGating(t *testing.T) {
	player := newTestPlayer(newTestECS())
	data := components.Player.Get(player)
	char := components.Character.Get(player)

	HandlePlayerAction(player, cfg.ActionBlock, true, 0)
	HandlePlayerAction(player, cfg.ActionJump, true, 0)
	assert.False(t, data.JumpRequested, "no jumping behind the shield")

	HandlePlayerAction(player, cfg.ActionBlock, false, 0)
	char.OnGround = false
	HandlePlayerAction(player, cfg.ActionJump, true, 0)
	assert.False(t, data.JumpRequested, "no jumping in the air")

	char.OnGround = true
	HandlePlayerAction(player, cfg.ActionJump, true, 0)
	require.True(t, data.JumpRequested)

	StepPlayer(player, cfg.DeltaTime)
	assert.Equal(t, cfg.Player.JumpSpeed, char.Velocity.Y)
	assert.False(t, char.OnGround)
	assert.False(t, data.JumpRequested)
	assert.Equal(t, cfg.Physics.Gravity, char.Acceleration.Y)
}

func TestMoveReleaseIsEdgeAware(t *testing.T) {
	player := newTestPlayer(newTestECS())
	data := components.Player.Get(player)

	HandlePlayerAction(player, cfg.ActionMoveRight, true, 0)
	HandlePlayerAction(player, cfg.ActionMoveLeft, true, 0)
	HandlePlayerAction(player, cfg.ActionMoveRight, false, 0)
	assert.Equal(t, -1, data.MoveDirection)

	HandlePlayerAction(player, cfg.ActionMoveLeft, false, 0)
	assert.Equal(t, 0, data.MoveDirection)
}

func TestLocomotionStates(t *testing.T) {
	player := newTestPlayer(newTestECS())
	char := components.Character.Get(player)

	HandlePlayerAction(player, cfg.ActionMoveLeft, true, 0)
	StepPlayer(player, cfg.DeltaTime)
	assert.Equal(t, cfg.Walk, playerState(player))
	assert.Equal(t, -cfg.Player.BaseSpeed, char.Velocity.X)
	assert.True(t, char.FacingLeft)

	HandlePlayerAction(player, cfg.ActionSprint, true, 0)
	StepPlayer(player, cfg.DeltaTime)
	assert.Equal(t, cfg.Run, playerState(player))
	assert.InDelta(t, -cfg.Player.BaseSpeed*cfg.Player.SprintMultiplier, char.Velocity.X, 1e-9)

	HandlePlayerAction(player, cfg.ActionMoveLeft, false, 0)
	StepPlayer(player, cfg.DeltaTime)
	assert.Equal(t, cfg.Idle, playerState(player))
	assert.True(t, char.FacingLeft, "facing is kept when stopping")
}

func TestBlockHoldAndRelease(t *testing.T) {
	player := newTestPlayer(newTestECS())

	HandlePlayerAction(player, cfg.ActionBlock, true, 0)
	assert.Equal(t, cfg.Block, playerState(player))

	// Moving does not drop the guard
	HandlePlayerAction(player, cfg.ActionMoveRight, true, 0)
	StepPlayer(player, cfg.DeltaTime)
	assert.Equal(t, cfg.Block, playerState(player))

	HandlePlayerAction(player, cfg.ActionBlock, false, 0)
	assert.Equal(t, cfg.Idle, playerState(player))
	StepPlayer(player, cfg.DeltaTime)
	assert.Equal(t, cfg.Walk, playerState(player))
}

func TestBlockHeldThroughAttack(t *testing.T) {
	player := newTestPlayer(newTestECS())
	HandlePlayerClick(player, cfg.Input.LightAttackButton, 0)

	HandlePlayerAction(player, cfg.ActionBlock, true, 0)
	assert.True(t, playerState(player).IsAttack(), "the attack is not interrupted")

	stepFor(player, 0.5)
	assert.Equal(t, cfg.Block, playerState(player))
}

func TestDeadPlayerStaysPut(t *testing.T) {
	e := newTestECS()
	player := newTestPlayer(e)
	char := components.Character.Get(player)
	data := components.Player.Get(player)

	NewPlayerCombatant(player).TakeDamage(cfg.Player.MaxHealth)
	require.Equal(t, cfg.Death, playerState(player))

	HandlePlayerAction(player, cfg.ActionMoveRight, true, 0)
	HandlePlayerAction(player, cfg.ActionJump, true, 0)
	assert.False(t, HandlePlayerClick(player, cfg.Input.LightAttackButton, 0))

	StepPlayer(player, cfg.DeltaTime)
	assert.Zero(t, char.Velocity.X)
	assert.Zero(t, char.Velocity.Y)
	assert.Equal(t, cfg.Death, playerState(player))

	stepFor(player, 0.5)
	assert.True(t, data.Removed)
	assert.Equal(t, cfg.Death, playerState(player))
}
