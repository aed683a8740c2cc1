package components

import (
	cfg "github.com/XQwart/fkpg-jmp-fix/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// InputMethod represents the type of input device being used
type InputMethod int

const (
	InputKeyboard InputMethod = iota
	InputGamepad
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// Click is a mouse button press with its timestamp in milliseconds
type Click struct {
	Button ebiten.MouseButton
	TimeMs int64
}

// InputData stores the current and previous frame's pressed state for all actions.
// JustPressed/JustReleased are computed on-demand by comparing frames.
type InputData struct {
	Current         [cfg.ActionCount]bool // Current frame's Pressed state
	Previous        [cfg.ActionCount]bool // Previous frame's Pressed state
	Clicks          []Click               // Mouse presses this frame
	LastInputMethod InputMethod
}

var Input = donburi.NewComponentType[InputData]()
