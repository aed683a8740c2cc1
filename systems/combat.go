package systems

import (
	"github.com/XQwart/fkpg-jmp-fix/components"
	cfg "github.com/XQwart/fkpg-jmp-fix/config"
	"github.com/yohamta/donburi"
)

// Combatant is anything that can be hurt. OnDeath runs exactly once, on the
// hit that brings health to zero.
type Combatant interface {
	TakeDamage(amount int) bool
	OnDeath()
}

// CharacterCombatant is the plain damage rule of a character: health and the
// invulnerability window, nothing else.
type CharacterCombatant struct {
	entry *donburi.Entry
}

func (c CharacterCombatant) TakeDamage(amount int) bool {
	applied, died := components.Character.Get(c.entry).TakeDamage(amount)
	if died {
		c.OnDeath()
	}
	return applied
}

func (c CharacterCombatant) OnDeath() {}

// PlayerCombatant adds blocking and the HURT/DEATH transitions
type PlayerCombatant struct {
	entry *donburi.Entry
}

func NewPlayerCombatant(entry *donburi.Entry) PlayerCombatant {
	return PlayerCombatant{entry: entry}
}

// TakeDamage applies amount, halved while blocking (never below 1). A hit
// that is survived puts the player in HURT.
func (p PlayerCombatant) TakeDamage(amount int) bool {
	if amount <= 0 {
		return false
	}
	player := components.Player.Get(p.entry)
	char := components.Character.Get(p.entry)

	blocked := player.IsBlocking
	if blocked {
		amount = blockedDamage(amount)
	}

	applied, died := char.TakeDamage(amount)
	if !applied {
		return false
	}
	if died {
		p.OnDeath()
		return true
	}

	if player.CurrentState != cfg.Death {
		enterState(p.entry, cfg.Hurt)
	}
	if blocked {
		queueSFX(p.entry.World, cfg.SoundBlock)
	} else {
		queueSFX(p.entry.World, cfg.SoundHurt)
	}
	return true
}

func (p PlayerCombatant) OnDeath() {
	enterState(p.entry, cfg.Death)
	queueSFX(p.entry.World, cfg.SoundDeath)
}

func blockedDamage(amount int) int {
	return max(1, int(float64(amount)*cfg.Player.BlockDamageReduction))
}

// CombatantFor returns the damage rule for entry
func CombatantFor(entry *donburi.Entry) Combatant {
	if entry.HasComponent(components.Player) {
		return NewPlayerCombatant(entry)
	}
	return CharacterCombatant{entry: entry}
}

// Kill takes all remaining health regardless of invulnerability or blocking.
// Used for falling out of the level.
func Kill(c Combatant, entry *donburi.Entry) {
	char := components.Character.Get(entry)
	if !char.IsAlive() {
		return
	}
	char.Health = 0
	char.Invulnerable = false
	c.OnDeath()
}
