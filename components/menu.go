package components

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// MainMenuOption represents the available main menu selections
type MainMenuOption int

const (
	MainMenuNewGame MainMenuOption = iota
	MainMenuContinue
	MainMenuSettings
	MainMenuExit
)

// MenuData stores the current state of the main menu
type MenuData struct {
	SelectedIndex int
	Options       []MainMenuOption
	HasSaveGame   bool // Continue is selectable only with a save

	// Background slideshow
	Backgrounds []*ebiten.Image // nil entries use a placeholder colour
	Current     int
	Next        int
	Hold        float64      // seconds until the next crossfade
	Fade        *gween.Tween // nil when no crossfade is running
	FadeAlpha   float32
}

// Enabled reports whether option can be selected
func (m *MenuData) Enabled(option MainMenuOption) bool {
	return option != MainMenuContinue || m.HasSaveGame
}

// Menu is the component type for main menu state
var Menu = donburi.NewComponentType[MenuData]()
