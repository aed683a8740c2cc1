package systems

import (
	"fmt"
	"strings"

	"github.com/XQwart/fkpg-jmp-fix/components"
	cfg "github.com/XQwart/fkpg-jmp-fix/config"
	"github.com/XQwart/fkpg-jmp-fix/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

const numSettingsOptions = int(components.SettingsOptCount)

// Display applies window settings. The settings screen goes through it so
// the option logic can be exercised without a window.
type Display interface {
	SetFullscreen(bool)
	SetWindowSize(width, height int)
}

// EbitenDisplay is the real window
type EbitenDisplay struct{}

func (EbitenDisplay) SetFullscreen(on bool)           { ebiten.SetFullscreen(on) }
func (EbitenDisplay) SetWindowSize(width, height int) { ebiten.SetWindowSize(width, height) }

// ApplyDisplaySettings pushes fullscreen and resolution from c to d
func ApplyDisplaySettings(c *cfg.Config, d Display) {
	d.SetFullscreen(c.Fullscreen)
	if !c.Fullscreen {
		res := c.Resolution()
		d.SetWindowSize(res.Width, res.Height)
	}
}

// NewUpdateSettingsMenu creates the settings system. Values are written to c
// as they change; onBack runs when the player leaves the screen.
func NewUpdateSettingsMenu(c *cfg.Config, d Display, onBack func()) ecs.System {
	return func(e *ecs.ECS) {
		settings := GetOrCreateSettingsMenu(e)
		input := getOrCreateInput(e)

		if GetAction(input, cfg.ActionMenuUp).JustPressed {
			navigateSettings(c, settings, -1)
			PlaySFX(e, cfg.SoundMenuNavigate)
		}
		if GetAction(input, cfg.ActionMenuDown).JustPressed {
			navigateSettings(c, settings, 1)
			PlaySFX(e, cfg.SoundMenuNavigate)
		}
		if GetAction(input, cfg.ActionMenuLeft).JustPressed {
			adjustSetting(e, c, d, settings.SelectedOption, -1)
		}
		if GetAction(input, cfg.ActionMenuRight).JustPressed {
			adjustSetting(e, c, d, settings.SelectedOption, 1)
		}

		if GetAction(input, cfg.ActionMenuSelect).JustPressed {
			if settings.SelectedOption == components.SettingsOptBack {
				PlaySFX(e, cfg.SoundMenuSelect)
				onBack()
				return
			}
			adjustSetting(e, c, d, settings.SelectedOption, 1)
		}

		if GetAction(input, cfg.ActionMenuBack).JustPressed {
			PlaySFX(e, cfg.SoundMenuSelect)
			onBack()
		}
	}
}

// navigateSettings moves the selection, skipping hidden options
func navigateSettings(c *cfg.Config, s *components.SettingsMenuData, step int) {
	for {
		s.SelectedOption = components.SettingsMenuOption(
			(int(s.SelectedOption) + step + numSettingsOptions) % numSettingsOptions,
		)
		if !isOptionHidden(c, s.SelectedOption) {
			return
		}
	}
}

// isOptionHidden hides the resolution while fullscreen is on
func isOptionHidden(c *cfg.Config, opt components.SettingsMenuOption) bool {
	return opt == components.SettingsOptResolution && c.Fullscreen
}

// adjustSetting changes the value of opt by one step in direction
func adjustSetting(e *ecs.ECS, c *cfg.Config, d Display, opt components.SettingsMenuOption, direction int) {
	switch opt {
	case components.SettingsOptMusicVolume:
		c.MusicVolume = adjustVolumeStep(c.MusicVolume, direction)
		ApplyAudioSettings(c)
		PlaySFX(e, cfg.SoundMenuNavigate)

	case components.SettingsOptSFXVolume:
		c.SFXVolume = adjustVolumeStep(c.SFXVolume, direction)
		ApplyAudioSettings(c)
		// Preview at the new volume
		PlaySFX(e, cfg.SoundMenuSelect)

	case components.SettingsOptMute:
		c.Muted = !c.Muted
		ApplyAudioSettings(c)
		PlaySFX(e, cfg.SoundMenuSelect)

	case components.SettingsOptFullscreen:
		c.Fullscreen = !c.Fullscreen
		ApplyDisplaySettings(c, d)
		PlaySFX(e, cfg.SoundMenuSelect)

	case components.SettingsOptResolution:
		n := len(cfg.SettingsMenu.Resolutions)
		c.ResolutionIndex = (c.ResolutionIndex + direction + n) % n
		ApplyDisplaySettings(c, d)
		PlaySFX(e, cfg.SoundMenuNavigate)
	}
}

// adjustVolumeStep adjusts volume by stepping through predefined values
func adjustVolumeStep(current float64, direction int) float64 {
	steps := cfg.SettingsMenu.VolumeSteps
	newIdx := findClosestStepIndex(current, steps) + direction
	newIdx = max(0, min(newIdx, len(steps)-1))
	return steps[newIdx]
}

// findClosestStepIndex finds the closest step index for a volume value
func findClosestStepIndex(value float64, steps []float64) int {
	closest := 0
	minDiff := 2.0
	for i, step := range steps {
		diff := value - step
		if diff < 0 {
			diff = -diff
		}
		if diff < minDiff {
			minDiff = diff
			closest = i
		}
	}
	return closest
}

// NewDrawSettingsMenu creates the renderer for the settings screen
func NewDrawSettingsMenu(c *cfg.Config) func(*ecs.ECS, *ebiten.Image) {
	return func(e *ecs.ECS, screen *ebiten.Image) {
		settings := GetOrCreateSettingsMenu(e)

		width := float64(screen.Bounds().Dx())
		height := float64(screen.Bounds().Dy())

		vector.DrawFilledRect(screen, 0, 0, float32(width), float32(height), cfg.Menu.BackgroundColor, false)
		drawCentered(screen, "SETTINGS", fonts.Title.Get(), width, cfg.SettingsMenu.TitleY, cfg.Menu.TitleColor)

		fontFace := fonts.Bold.Get()
		row := 0
		for opt := components.SettingsOptMusicVolume; opt < components.SettingsOptCount; opt++ {
			if isOptionHidden(c, opt) {
				continue
			}
			y := cfg.SettingsMenu.MenuStartY + float64(row)*(cfg.SettingsMenu.MenuItemHeight+cfg.SettingsMenu.MenuItemGap)
			row++

			textColor := cfg.Pause.TextColorNormal
			if opt == settings.SelectedOption {
				textColor = cfg.Pause.TextColorSelected
			}

			label, value := getOptionDisplay(c, opt)
			baseline := int(y + cfg.SettingsMenu.MenuItemHeight)
			text.Draw(screen, label, fontFace, int(width/2)-180, baseline, textColor)
			if value != "" {
				text.Draw(screen, value, fontFace, int(width/2)+20, baseline, textColor)
			}
		}

		input := getOrCreateInput(e)
		hint := getSettingsHint(input.LastInputMethod)
		drawCentered(screen, hint, fonts.Small.Get(), width, height-12, cfg.Pause.TextColorNormal)
	}
}

// getSettingsHint returns the appropriate hint for settings menu
func getSettingsHint(method components.InputMethod) string {
	if method == components.InputGamepad {
		return "Left Stick/D-Pad: Navigate   Left/Right: Change   A: Select   B: Back"
	}
	return "Arrows: Navigate   Left/Right: Change   Enter: Select   Esc: Back"
}

// getOptionDisplay returns the label and value display for an option
func getOptionDisplay(c *cfg.Config, opt components.SettingsMenuOption) (string, string) {
	switch opt {
	case components.SettingsOptMusicVolume:
		return "Music Volume", formatVolumeBar(c.MusicVolume)
	case components.SettingsOptSFXVolume:
		return "SFX Volume", formatVolumeBar(c.SFXVolume)
	case components.SettingsOptMute:
		return "Mute", formatToggle(c.Muted)
	case components.SettingsOptFullscreen:
		return "Fullscreen", formatToggle(c.Fullscreen)
	case components.SettingsOptResolution:
		return "Resolution", c.Resolution().Label
	case components.SettingsOptBack:
		return "< Back", ""
	default:
		return "", ""
	}
}

// formatVolumeBar creates a visual volume bar
func formatVolumeBar(volume float64) string {
	filled := int(volume * 10)
	bar := strings.Repeat("|", filled) + strings.Repeat(".", 10-filled)
	return fmt.Sprintf("[%s] %d%%", bar, int(volume*100))
}

// formatToggle formats a boolean as On/Off
func formatToggle(value bool) string {
	if value {
		return "[X] On"
	}
	return "[ ] Off"
}

// GetOrCreateSettingsMenu returns the singleton SettingsMenu component, creating if needed.
func GetOrCreateSettingsMenu(e *ecs.ECS) *components.SettingsMenuData {
	if _, ok := components.SettingsMenu.First(e.World); !ok {
		ent := e.World.Entry(e.World.Create(components.SettingsMenu))
		components.SettingsMenu.SetValue(ent, components.SettingsMenuData{
			SelectedOption: components.SettingsOptMusicVolume,
		})
	}

	ent, _ := components.SettingsMenu.First(e.World)
	return components.SettingsMenu.Get(ent)
}
