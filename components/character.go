package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// CharacterData is the physical body and health of anything that moves and
// can be hurt. Position is the center of the sprite.
type CharacterData struct {
	Position     math.Vec2
	Velocity     math.Vec2
	Acceleration math.Vec2
	MaxVelocity  math.Vec2 // component-wise speed limit, zero means unlimited

	Health    int
	MaxHealth int

	OnGround       bool
	Invulnerable   bool
	InvulnTimer    float64 // seconds left
	InvulnDuration float64 // granted after surviving a hit

	FacingLeft bool
	HalfWidth  float64
	HalfHeight float64
}

// IsAlive reports whether the character still has health. Death is terminal.
func (c *CharacterData) IsAlive() bool {
	return c.Health > 0
}

// ApplyPhysics integrates acceleration into velocity and velocity into position
func (c *CharacterData) ApplyPhysics(dt float64) {
	c.Velocity.X += c.Acceleration.X * dt
	c.Velocity.Y += c.Acceleration.Y * dt

	c.Velocity.X = clampAbs(c.Velocity.X, c.MaxVelocity.X)
	c.Velocity.Y = clampAbs(c.Velocity.Y, c.MaxVelocity.Y)

	c.Position.X += c.Velocity.X * dt
	c.Position.Y += c.Velocity.Y * dt
}

// TakeDamage subtracts amount from health. It returns applied=false when the
// hit was ignored (invulnerable, already dead or a non-positive amount).
// died is true only for the hit that brought health to zero; a surviving hit
// starts the invulnerability window instead.
func (c *CharacterData) TakeDamage(amount int) (applied, died bool) {
	if amount <= 0 || c.Invulnerable || !c.IsAlive() {
		return false, false
	}

	c.Health -= amount
	if c.Health <= 0 {
		c.Health = 0
		return true, true
	}

	c.Invulnerable = true
	c.InvulnTimer = c.InvulnDuration
	return true, false
}

// UpdateInvulnerability counts the invulnerability window down
func (c *CharacterData) UpdateInvulnerability(dt float64) {
	if !c.Invulnerable {
		return
	}
	c.InvulnTimer -= dt
	if c.InvulnTimer <= 0 {
		c.InvulnTimer = 0
		c.Invulnerable = false
	}
}

// Heal restores health up to MaxHealth. Dead characters stay dead.
func (c *CharacterData) Heal(amount int) {
	if amount <= 0 || !c.IsAlive() {
		return
	}
	c.Health = min(c.Health+amount, c.MaxHealth)
}

// Bounds returns the top-left corner and size of the sprite box
func (c *CharacterData) Bounds() (x, y, w, h float64) {
	return c.Position.X - c.HalfWidth, c.Position.Y - c.HalfHeight, c.HalfWidth * 2, c.HalfHeight * 2
}

func clampAbs(v, limit float64) float64 {
	if limit <= 0 {
		return v
	}
	if v > limit {
		return limit
	}
	if v < -limit {
		return -limit
	}
	return v
}

var Character = donburi.NewComponentType[CharacterData]()
