package components

import (
	"github.com/yohamta/donburi"
)

// SettingsMenuOption represents menu items in the settings menu
type SettingsMenuOption int

const (
	SettingsOptMusicVolume SettingsMenuOption = iota
	SettingsOptSFXVolume
	SettingsOptMute
	SettingsOptFullscreen
	SettingsOptResolution
	SettingsOptBack
	SettingsOptCount
)

// SettingsMenuData stores the settings screen cursor. The values themselves
// live in config.Config.
type SettingsMenuData struct {
	SelectedOption SettingsMenuOption
}

// SettingsMenu is the component type for settings menu state
var SettingsMenu = donburi.NewComponentType[SettingsMenuData]()
