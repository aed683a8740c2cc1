package components

import (
	"github.com/XQwart/fkpg-jmp-fix/config"
	"github.com/yohamta/donburi"
)

// PlayerData holds the player's intent flags, resources and state machine
// state. It lives on the same entity as CharacterData.
type PlayerData struct {
	Mana    int
	MaxMana int
	Coins   int

	MoveDirection int // -1 left, 0 none, 1 right
	IsSprinting   bool
	IsBlocking    bool
	JumpRequested bool // consumed by the next physics step

	// Double-click detector for the heavy attack
	HeavyClickPending bool
	LastHeavyClickMs  int64

	CurrentState config.StateID
	Removed      bool // death animation finished
}

// AddCoins adds amount; coins never drop below zero
func (p *PlayerData) AddCoins(amount int) {
	p.Coins = max(0, p.Coins+amount)
}

// SpendCoins removes amount if the player can afford it
func (p *PlayerData) SpendCoins(amount int) bool {
	if amount < 0 || p.Coins < amount {
		return false
	}
	p.Coins -= amount
	return true
}

// AddMana adds amount, capped at MaxMana
func (p *PlayerData) AddMana(amount int) {
	p.Mana = max(0, min(p.MaxMana, p.Mana+amount))
}

// UseMana consumes amount if enough mana is available
func (p *PlayerData) UseMana(amount int) bool {
	if amount < 0 || p.Mana < amount {
		return false
	}
	p.Mana -= amount
	return true
}

func (p *PlayerData) ManaFraction() float64 {
	if p.MaxMana <= 0 {
		return 0
	}
	return float64(p.Mana) / float64(p.MaxMana)
}

var Player = donburi.NewComponentType[PlayerData]()
