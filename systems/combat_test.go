package systems

import (
	"testing"

	"github.com/XQwart/fkpg-jmp-fix/components"
	cfg "github.com/XQwart/fkpg-jmp-fix/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

func countSFX(sounds []cfg.SoundID, id cfg.SoundID) int {
	n := 0
	for _, s := range sounds {
		if s == id {
			n++
		}
	}
	return n
}

func clearInvulnerability(entry *donburi.Entry) {
	char := components.Character.Get(entry)
	char.Invulnerable = false
	char.InvulnTimer = 0
}

func TestPlayerHurt(t *testing.T) {
	e := newTestECS()
	player := newTestPlayer(e)
	c := CombatantFor(player)

	require.True(t, c.TakeDamage(30))
	char := components.Character.Get(player)
	assert.Equal(t, cfg.Player.MaxHealth-30, char.Health)
	assert.Equal(t, cfg.Hurt, playerState(player))
	assert.True(t, char.Invulnerable)
	assert.Contains(t, pendingSFX(e), cfg.SoundHurt)

	assert.False(t, c.TakeDamage(30), "invulnerable after a hit")
	assert.Equal(t, cfg.Player.MaxHealth-30, char.Health)

	stepFor(player, 0.5)
	assert.Equal(t, cfg.Idle, playerState(player))
}

func TestBlockHalvesDamage(t *testing.T) {
	tests := []struct {
		damage int
		taken  int
	}{
		{damage: 20, taken: 10},
		{damage: 15, taken: 7},
		{damage: 1, taken: 1},
	}

	for _, tt := range tests {
		e := newTestECS()
		player := newTestPlayer(e)
		HandlePlayerAction(player, cfg.ActionBlock, true, 0)

		require.True(t, CombatantFor(player).TakeDamage(tt.damage))
		assert.Equal(t, cfg.Player.MaxHealth-tt.taken, components.Character.Get(player).Health, "damage %d", tt.damage)
		assert.Contains(t, pendingSFX(e), cfg.SoundBlock)
	}
}

func TestNonPositiveDamageIgnored(t *testing.T) {
	player := newTestPlayer(newTestECS())
	HandlePlayerAction(player, cfg.ActionBlock, true, 0)

	assert.False(t, CombatantFor(player).TakeDamage(0))
	assert.False(t, CombatantFor(player).TakeDamage(-5))
	assert.Equal(t, cfg.Player.MaxHealth, components.Character.Get(player).Health)
	assert.Equal(t, cfg.Block, playerState(player))
}

func TestDeathHappensOnce(t *testing.T) {
	e := newTestECS()
	player := newTestPlayer(e)
	c := CombatantFor(player)

	c.TakeDamage(cfg.Player.MaxHealth - 10)
	clearInvulnerability(player)
	require.True(t, c.TakeDamage(50))

	char := components.Character.Get(player)
	assert.Equal(t, 0, char.Health)
	assert.Equal(t, cfg.Death, playerState(player))

	assert.False(t, c.TakeDamage(10))
	Kill(c, player)
	assert.Equal(t, 1, countSFX(pendingSFX(e), cfg.SoundDeath))
	assert.Equal(t, cfg.Death, playerState(player))
}

func TestKillIgnoresInvulnerability(t *testing.T) {
	e := newTestECS()
	player := newTestPlayer(e)
	c := CombatantFor(player)

	c.TakeDamage(10)
	require.True(t, components.Character.Get(player).Invulnerable)

	Kill(c, player)
	assert.Equal(t, 0, components.Character.Get(player).Health)
	assert.Equal(t, cfg.Death, playerState(player))
}

func TestCharacterCombatant(t *testing.T) {
	w := donburi.NewWorld()
	entry := w.Entry(w.Create(components.Character))
	components.Character.SetValue(entry, components.CharacterData{Health: 10, MaxHealth: 10})

	c := CombatantFor(entry)
	assert.IsType(t, CharacterCombatant{}, c)
	assert.True(t, c.TakeDamage(4))
	assert.Equal(t, 6, components.Character.Get(entry).Health)
}
