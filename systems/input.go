package systems

import (
	"github.com/XQwart/fkpg-jmp-fix/components"
	cfg "github.com/XQwart/fkpg-jmp-fix/config"
	"github.com/XQwart/fkpg-jmp-fix/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// playerActions are forwarded to the player as press/release events
var playerActions = []cfg.ActionID{
	cfg.ActionMoveLeft,
	cfg.ActionMoveRight,
	cfg.ActionJump,
	cfg.ActionSprint,
	cfg.ActionBlock,
	cfg.ActionAttackLight,
	cfg.ActionAttackHeavy,
}

// UpdateInput polls raw input and updates the Input component.
// Must run BEFORE UpdatePlayerInput in the system order.
func UpdateInput(e *ecs.ECS) {
	input := getOrCreateInput(e)
	clock := getOrCreateClock(e)

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}
	input.Clicks = input.Clicks[:0]

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])
	analogLeft, analogRight, analogUp, analogDown := getAnalogStickState(gamepadIDs)

	var keyboardUsed, gamepadUsed bool

	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
				keyboardUsed = true
			}
		}

		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					input.Current[actionID] = true
					gamepadUsed = true
				}
			}
		}
	}

	// Merge analog stick into directional actions
	if analogLeft {
		input.Current[cfg.ActionMoveLeft] = true
		input.Current[cfg.ActionMenuLeft] = true
		gamepadUsed = true
	}
	if analogRight {
		input.Current[cfg.ActionMoveRight] = true
		input.Current[cfg.ActionMenuRight] = true
		gamepadUsed = true
	}
	if analogUp {
		input.Current[cfg.ActionMenuUp] = true
		gamepadUsed = true
	}
	if analogDown {
		input.Current[cfg.ActionMenuDown] = true
		gamepadUsed = true
	}

	for _, btn := range []ebiten.MouseButton{cfg.Input.LightAttackButton, cfg.Input.HeavyAttackButton} {
		if inpututil.IsMouseButtonJustPressed(btn) {
			input.Clicks = append(input.Clicks, components.Click{Button: btn, TimeMs: clock.ElapsedMs})
			keyboardUsed = true
		}
	}

	// Gamepad takes priority if both used
	if gamepadUsed {
		input.LastInputMethod = components.InputGamepad
	} else if keyboardUsed {
		input.LastInputMethod = components.InputKeyboard
	}
}

// UpdatePlayerInput turns this frame's input edges into player events
func UpdatePlayerInput(e *ecs.ECS) {
	entry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	input := getOrCreateInput(e)
	now := getOrCreateClock(e).ElapsedMs

	for _, id := range playerActions {
		action := GetAction(input, id)
		switch {
		case action.JustPressed:
			HandlePlayerAction(entry, id, true, now)
		case action.JustReleased:
			HandlePlayerAction(entry, id, false, now)
		}
	}

	for _, click := range input.Clicks {
		HandlePlayerClick(entry, click.Button, click.TimeMs)
	}

	releaseStaleIntents(entry, input, now)
}

// releaseStaleIntents sends the release for held intents whose key is no
// longer down. A release that happened while this system was skipped (pause)
// has no edge left to report.
func releaseStaleIntents(entry *donburi.Entry, input *components.InputData, nowMs int64) {
	player := components.Player.Get(entry)
	if player.MoveDirection < 0 && !input.Current[cfg.ActionMoveLeft] {
		HandlePlayerAction(entry, cfg.ActionMoveLeft, false, nowMs)
	}
	if player.MoveDirection > 0 && !input.Current[cfg.ActionMoveRight] {
		HandlePlayerAction(entry, cfg.ActionMoveRight, false, nowMs)
	}
	if player.IsSprinting && !input.Current[cfg.ActionSprint] {
		HandlePlayerAction(entry, cfg.ActionSprint, false, nowMs)
	}
	if player.IsBlocking && !input.Current[cfg.ActionBlock] {
		HandlePlayerAction(entry, cfg.ActionBlock, false, nowMs)
	}
}

// getAnalogStickState reads the left analog stick from all gamepads
func getAnalogStickState(gamepads []ebiten.GamepadID) (left, right, up, down bool) {
	deadzone := cfg.Input.AnalogDeadzone

	for _, gpID := range gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}

		horizontal := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		vertical := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical)

		left = left || horizontal < -deadzone
		right = right || horizontal > deadzone
		up = up || vertical < -deadzone
		down = down || vertical > deadzone
	}

	return
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(e *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Input))
		// Zero-value InputData is correct (all bools false)
	}
	return components.Input.Get(entry)
}

// GetAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}

// LatchInput polls input and treats everything already held as old, so a key
// still down from the previous scene does not fire again in the next one
func LatchInput(e *ecs.ECS) {
	UpdateInput(e)
	input := getOrCreateInput(e)
	input.Previous = input.Current
	input.Clicks = input.Clicks[:0]
}
