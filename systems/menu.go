package systems

import (
	"image/color"

	"github.com/XQwart/fkpg-jmp-fix/components"
	cfg "github.com/XQwart/fkpg-jmp-fix/config"
	"github.com/XQwart/fkpg-jmp-fix/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

var menuBackgroundOp = &ebiten.DrawImageOptions{}

// NewUpdateMenu creates the main menu system. onSelect receives the chosen
// option; disabled options cannot be chosen.
func NewUpdateMenu(onSelect func(components.MainMenuOption)) ecs.System {
	return func(e *ecs.ECS) {
		menu := GetOrCreateMenu(e)
		input := getOrCreateInput(e)

		numOptions := len(menu.Options)
		if numOptions == 0 {
			return
		}

		if GetAction(input, cfg.ActionMenuUp).JustPressed {
			PlaySFX(e, cfg.SoundMenuNavigate)
			moveMenuSelection(menu, -1)
		}
		if GetAction(input, cfg.ActionMenuDown).JustPressed {
			PlaySFX(e, cfg.SoundMenuNavigate)
			moveMenuSelection(menu, 1)
		}

		if GetAction(input, cfg.ActionMenuSelect).JustPressed {
			option := menu.Options[menu.SelectedIndex]
			if !menu.Enabled(option) {
				return
			}
			PlaySFX(e, cfg.SoundMenuSelect)
			onSelect(option)
		}
	}
}

// moveMenuSelection steps the cursor with wrap-around, skipping disabled options
func moveMenuSelection(menu *components.MenuData, step int) {
	n := len(menu.Options)
	for range n {
		menu.SelectedIndex = (menu.SelectedIndex + step + n) % n
		if menu.Enabled(menu.Options[menu.SelectedIndex]) {
			return
		}
	}
}

// RefreshMenu updates whether Continue is available and moves the cursor
// off it when it is not
func RefreshMenu(e *ecs.ECS, hasSave bool) {
	menu := GetOrCreateMenu(e)
	menu.HasSaveGame = hasSave
	if !menu.Enabled(menu.Options[menu.SelectedIndex]) {
		moveMenuSelection(menu, 1)
	}
}

// SetMenuBackgrounds installs the slideshow images. nil entries are drawn
// with a placeholder colour.
func SetMenuBackgrounds(e *ecs.ECS, backgrounds []*ebiten.Image) {
	menu := GetOrCreateMenu(e)
	menu.Backgrounds = backgrounds
	menu.Current = 0
	menu.Next = 0
	menu.Fade = nil
	menu.FadeAlpha = 0
	menu.Hold = cfg.Menu.BackgroundHold.Seconds()
}

// UpdateMenuBackground holds each background, then cross-fades to the next
func UpdateMenuBackground(e *ecs.ECS) {
	menu := GetOrCreateMenu(e)
	if len(menu.Backgrounds) < 2 {
		return
	}

	if menu.Fade == nil {
		menu.Hold -= cfg.DeltaTime
		if menu.Hold > 0 {
			return
		}
		menu.Next = (menu.Current + 1) % len(menu.Backgrounds)
		menu.Fade = gween.New(0, 1, float32(cfg.Menu.FadeDuration.Seconds()), ease.InOutQuad)
		menu.FadeAlpha = 0
		return
	}

	alpha, finished := menu.Fade.Update(float32(cfg.DeltaTime))
	menu.FadeAlpha = alpha
	if finished {
		menu.Current = menu.Next
		menu.Fade = nil
		menu.FadeAlpha = 0
		menu.Hold = cfg.Menu.BackgroundHold.Seconds()
	}
}

// DrawMenu renders the main menu screen
func DrawMenu(e *ecs.ECS, screen *ebiten.Image) {
	menu := GetOrCreateMenu(e)

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	vector.DrawFilledRect(screen, 0, 0, float32(width), float32(height), cfg.Menu.BackgroundColor, false)
	if len(menu.Backgrounds) > 0 {
		drawMenuBackground(screen, menu, menu.Current, 1)
		if menu.Fade != nil {
			drawMenuBackground(screen, menu, menu.Next, menu.FadeAlpha)
		}
	}

	drawCentered(screen, cfg.Menu.Title, fonts.Title.Get(), width, cfg.Menu.TitleY, cfg.Menu.TitleColor)

	menuFont := fonts.Bold.Get()
	for i, option := range menu.Options {
		y := cfg.Menu.MenuStartY + float64(i)*(cfg.Menu.MenuItemHeight+cfg.Menu.MenuItemGap)

		textColor := cfg.Menu.TextColorNormal
		switch {
		case !menu.Enabled(option):
			textColor = cfg.Menu.TextColorDisabled
		case i == menu.SelectedIndex:
			textColor = cfg.Menu.TextColorSelected
		}

		drawCentered(screen, getOptionLabel(option), menuFont, width, y+cfg.Menu.MenuItemHeight, textColor)
	}

	input := getOrCreateInput(e)
	hint := getMenuHint(input.LastInputMethod)
	drawCentered(screen, hint, fonts.Small.Get(), width, height-12, cfg.Menu.TextColorNormal)
}

func drawMenuBackground(screen *ebiten.Image, menu *components.MenuData, index int, alpha float32) {
	img := menu.Backgrounds[index]
	if img == nil {
		colors := cfg.Menu.PlaceholderColors
		if len(colors) == 0 {
			return
		}
		base := colors[index%len(colors)]
		c := color.NRGBA{R: base.R, G: base.G, B: base.B, A: uint8(float32(base.A) * alpha)}
		bounds := screen.Bounds()
		vector.DrawFilledRect(screen, 0, 0, float32(bounds.Dx()), float32(bounds.Dy()), c, false)
		return
	}

	sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()
	iw, ih := img.Bounds().Dx(), img.Bounds().Dy()
	menuBackgroundOp.GeoM.Reset()
	menuBackgroundOp.GeoM.Scale(float64(sw)/float64(iw), float64(sh)/float64(ih))
	menuBackgroundOp.ColorScale.Reset()
	menuBackgroundOp.ColorScale.ScaleAlpha(alpha)
	screen.DrawImage(img, menuBackgroundOp)
}

// drawCentered draws s horizontally centered with its baseline at y
func drawCentered(screen *ebiten.Image, s string, face font.Face, width, y float64, c color.Color) {
	x := int((width - float64(fonts.TextWidth(face, s))) / 2)
	text.Draw(screen, s, face, x, int(y), c)
}

// getMenuHint returns the appropriate hint for menu navigation
func getMenuHint(method components.InputMethod) string {
	if method == components.InputGamepad {
		return "Left Stick/D-Pad: Navigate   A: Select"
	}
	return "Arrows: Navigate   Enter: Select"
}

// getOptionLabel returns the display text for a menu option
func getOptionLabel(option components.MainMenuOption) string {
	switch option {
	case components.MainMenuNewGame:
		return "New Game"
	case components.MainMenuContinue:
		return "Continue"
	case components.MainMenuSettings:
		return "Settings"
	case components.MainMenuExit:
		return "Exit"
	default:
		return ""
	}
}

// GetOrCreateMenu returns the singleton Menu component, creating if needed
func GetOrCreateMenu(e *ecs.ECS) *components.MenuData {
	if _, ok := components.Menu.First(e.World); !ok {
		ent := e.World.Entry(e.World.Create(components.Menu))
		components.Menu.SetValue(ent, components.MenuData{
			Options: []components.MainMenuOption{
				components.MainMenuNewGame,
				components.MainMenuContinue,
				components.MainMenuSettings,
				components.MainMenuExit,
			},
			Hold: cfg.Menu.BackgroundHold.Seconds(),
		})
	}

	ent, _ := components.Menu.First(e.World)
	return components.Menu.Get(ent)
}
