package systems

import (
	"github.com/XQwart/fkpg-jmp-fix/components"
	cfg "github.com/XQwart/fkpg-jmp-fix/config"
	"github.com/XQwart/fkpg-jmp-fix/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCharacterPhysics integrates every character and resolves it against
// the level's solid objects. Must run AFTER UpdatePlayer.
func UpdateCharacterPhysics(e *ecs.ECS) {
	tags.Player.Each(e.World, func(entry *donburi.Entry) {
		char := components.Character.Get(entry)
		obj := components.Object.Get(entry).Object
		moveCharacter(char, obj, cfg.DeltaTime)
	})
}

// moveCharacter applies one physics step and slides the collision box along
// solids. The box bottom is kept aligned with the sprite bottom.
func moveCharacter(char *components.CharacterData, obj *resolv.Object, dt float64) {
	prevX, prevY := char.Position.X, char.Position.Y
	char.ApplyPhysics(dt)
	dx := char.Position.X - prevX
	dy := char.Position.Y - prevY

	dx = resolveHorizontal(char, obj, dx)
	obj.X += dx

	dy = resolveVertical(char, obj, dy)
	obj.Y += dy

	obj.Update()
	SyncCharacterToObject(char, obj)
}

func resolveHorizontal(char *components.CharacterData, obj *resolv.Object, dx float64) float64 {
	if dx == 0 {
		return 0
	}
	check := obj.Check(dx, 0, tags.ResolvSolid)
	if check == nil {
		return dx
	}
	solids := check.ObjectsByTags(tags.ResolvSolid)
	if len(solids) == 0 {
		return dx
	}

	// Only walls block sideways movement, not the floor we stand on
	for _, solid := range solids {
		if obj.Bottom() > solid.Y && obj.Y < solid.Y+solid.H {
			char.Velocity.X = 0
			return check.ContactWithObject(solid).X()
		}
	}
	return dx
}

func resolveVertical(char *components.CharacterData, obj *resolv.Object, dy float64) float64 {
	char.OnGround = false

	// Look one pixel further down so resting on the floor counts as grounded
	checkDistance := dy
	if dy >= 0 {
		checkDistance++
	}

	check := obj.Check(0, checkDistance, tags.ResolvSolid)
	if check == nil {
		return dy
	}
	solids := check.ObjectsByTags(tags.ResolvSolid)
	if len(solids) == 0 {
		return dy
	}

	solid := solids[0]
	if dy >= 0 {
		char.OnGround = true
	}
	char.Velocity.Y = 0
	return check.ContactWithObject(solid).Y()
}

// SyncCharacterToObject derives the sprite center from the collision box
func SyncCharacterToObject(char *components.CharacterData, obj *resolv.Object) {
	char.Position.X = obj.X + obj.W/2
	char.Position.Y = obj.Y + obj.H - char.HalfHeight
}

// ObjectOrigin returns the top-left corner of a w×h collision box for a
// character centered at (x, y)
func ObjectOrigin(char *components.CharacterData, w, h float64) (float64, float64) {
	return char.Position.X - w/2, char.Position.Y + char.HalfHeight - h
}
