package systems

import (
	"math/rand/v2"

	"github.com/XQwart/fkpg-jmp-fix/components"
	cfg "github.com/XQwart/fkpg-jmp-fix/config"
	"github.com/XQwart/fkpg-jmp-fix/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// pickLightAttack chooses between the two light attack animations
var pickLightAttack = defaultPickLightAttack

func defaultPickLightAttack() cfg.StateID {
	if rand.IntN(2) == 0 {
		return cfg.AttackLight1
	}
	return cfg.AttackLight2
}

func UpdatePlayer(e *ecs.ECS) {
	tags.Player.Each(e.World, func(entry *donburi.Entry) {
		StepPlayer(entry, cfg.DeltaTime)
	})
}

// HandlePlayerAction applies the press or release of a player action.
// Keyboard attack keys behave like the matching mouse button.
func HandlePlayerAction(entry *donburi.Entry, action cfg.ActionID, pressed bool, nowMs int64) {
	player := components.Player.Get(entry)
	char := components.Character.Get(entry)

	switch action {
	case cfg.ActionMoveLeft:
		player.MoveDirection = releaseAware(player.MoveDirection, -1, pressed)
	case cfg.ActionMoveRight:
		player.MoveDirection = releaseAware(player.MoveDirection, 1, pressed)
	case cfg.ActionJump:
		if pressed && char.OnGround && !player.IsBlocking {
			player.JumpRequested = true
		}
	case cfg.ActionSprint:
		player.IsSprinting = pressed
	case cfg.ActionBlock:
		player.IsBlocking = pressed
		if pressed {
			player.JumpRequested = false
			if player.CurrentState.IsLocomotion() {
				enterState(entry, cfg.Block)
			}
		} else if player.CurrentState == cfg.Block {
			enterState(entry, cfg.Idle)
		}
	case cfg.ActionAttackLight:
		if pressed {
			HandlePlayerClick(entry, cfg.Input.LightAttackButton, nowMs)
		}
	case cfg.ActionAttackHeavy:
		if pressed {
			HandlePlayerClick(entry, cfg.Input.HeavyAttackButton, nowMs)
		}
	}
}

// releaseAware returns the new move direction. Releasing a direction only
// stops movement when that direction is the active one.
func releaseAware(current, dir int, pressed bool) int {
	if pressed {
		return dir
	}
	if current == dir {
		return 0
	}
	return current
}

// HandlePlayerClick starts an attack for a mouse click at nowMs. The light
// button attacks at once; the heavy button needs a second click within the
// double-click threshold. It reports whether an attack started.
func HandlePlayerClick(entry *donburi.Entry, button ebiten.MouseButton, nowMs int64) bool {
	player := components.Player.Get(entry)
	if !canAttack(player.CurrentState) {
		return false
	}

	switch button {
	case cfg.Input.LightAttackButton:
		enterState(entry, pickLightAttack())
		queueSFX(entry.World, cfg.SoundAttackLight)
		return true

	case cfg.Input.HeavyAttackButton:
		threshold := cfg.Player.DoubleClickThreshold.Milliseconds()
		if player.HeavyClickPending && nowMs-player.LastHeavyClickMs <= threshold {
			player.HeavyClickPending = false
			player.LastHeavyClickMs = 0
			enterState(entry, cfg.AttackHeavy)
			queueSFX(entry.World, cfg.SoundAttackHeavy)
			return true
		}
		player.HeavyClickPending = true
		player.LastHeavyClickMs = nowMs
	}
	return false
}

func canAttack(state cfg.StateID) bool {
	return state.IsLocomotion()
}

// enterState switches the player state and its animation. Entering the
// current state again keeps the animation running.
func enterState(entry *donburi.Entry, state cfg.StateID) {
	player := components.Player.Get(entry)
	if player.CurrentState == state {
		return
	}
	player.CurrentState = state
	components.Animation.Get(entry).SetAnimation(state)
}

// StepPlayer runs one frame of the player: invulnerability, movement intent,
// state resolution and animation. Movement itself is applied by
// UpdateCharacterPhysics.
func StepPlayer(entry *donburi.Entry, dt float64) {
	player := components.Player.Get(entry)
	char := components.Character.Get(entry)
	anim := components.Animation.Get(entry)

	char.UpdateInvulnerability(dt)
	resolveMovement(player, char)
	resolveState(entry, player, anim)
	anim.Update(dt)
}

func resolveMovement(player *components.PlayerData, char *components.CharacterData) {
	if !char.IsAlive() {
		player.JumpRequested = false
		char.Velocity.X = 0
		char.Acceleration.X = 0
		if char.OnGround {
			char.Acceleration.Y = 0
			char.Velocity.Y = 0
		} else {
			char.Acceleration.Y = cfg.Physics.Gravity
		}
		return
	}

	if player.JumpRequested && char.OnGround && !player.IsBlocking {
		char.Velocity.Y = cfg.Player.JumpSpeed
		char.OnGround = false
		player.JumpRequested = false
	}

	if char.OnGround {
		char.Acceleration.Y = 0
		char.Velocity.Y = 0
	} else {
		char.Acceleration.Y = cfg.Physics.Gravity
	}

	speed := cfg.Player.BaseSpeed
	if player.IsSprinting {
		speed *= cfg.Player.SprintMultiplier
	}
	char.Velocity.X = float64(player.MoveDirection) * speed
	char.Acceleration.X = 0

	if player.MoveDirection < 0 {
		char.FacingLeft = true
	} else if player.MoveDirection > 0 {
		char.FacingLeft = false
	}
}

func resolveState(entry *donburi.Entry, player *components.PlayerData, anim *components.AnimationData) {
	switch state := player.CurrentState; {
	case state.IsAttack() || state == cfg.Hurt:
		if anim.IsFinished() {
			enterState(entry, cfg.Idle)
		}
		return
	case state == cfg.Death:
		if anim.IsFinished() {
			player.Removed = true
		}
		return
	case state == cfg.Block:
		return
	}

	switch {
	case player.IsBlocking:
		enterState(entry, cfg.Block)
	case player.MoveDirection != 0 && player.IsSprinting:
		enterState(entry, cfg.Run)
	case player.MoveDirection != 0:
		enterState(entry, cfg.Walk)
	default:
		enterState(entry, cfg.Idle)
	}
}
