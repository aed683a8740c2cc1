package systems

import (
	"testing"

	"github.com/XQwart/fkpg-jmp-fix/components"
	cfg "github.com/XQwart/fkpg-jmp-fix/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
)

func TestMenuSkipsContinueWithoutSave(t *testing.T) {
	e := newTestECS()
	RefreshMenu(e, false)
	menu := GetOrCreateMenu(e)

	var chosen []components.MainMenuOption
	update := NewUpdateMenu(func(o components.MainMenuOption) { chosen = append(chosen, o) })

	press(e, cfg.ActionMenuDown)
	update(e)
	assert.Equal(t, components.MainMenuSettings, menu.Options[menu.SelectedIndex])

	press(e, cfg.ActionMenuUp)
	update(e)
	assert.Equal(t, components.MainMenuNewGame, menu.Options[menu.SelectedIndex])

	press(e, cfg.ActionMenuSelect)
	update(e)
	assert.Equal(t, []components.MainMenuOption{components.MainMenuNewGame}, chosen)
}

func TestMenuContinueWithSave(t *testing.T) {
	e := newTestECS()
	RefreshMenu(e, true)

	var chosen components.MainMenuOption = -1
	update := NewUpdateMenu(func(o components.MainMenuOption) { chosen = o })

	press(e, cfg.ActionMenuDown)
	update(e)
	press(e, cfg.ActionMenuSelect)
	update(e)
	assert.Equal(t, components.MainMenuContinue, chosen)
}

func TestRefreshMenuMovesCursorOffContinue(t *testing.T) {
	e := newTestECS()
	menu := GetOrCreateMenu(e)
	menu.HasSaveGame = true
	menu.SelectedIndex = 1

	RefreshMenu(e, false)
	assert.Equal(t, components.MainMenuSettings, menu.Options[menu.SelectedIndex])
}

func TestMenuBackgroundCrossfade(t *testing.T) {
	e := newTestECS()
	SetMenuBackgrounds(e, make([]*ebiten.Image, 2))
	menu := GetOrCreateMenu(e)

	frames := int((cfg.Menu.BackgroundHold + cfg.Menu.FadeDuration).Seconds()*cfg.TPS) + 10
	for range frames {
		UpdateMenuBackground(e)
	}
	assert.Equal(t, 1, menu.Current)
	assert.Nil(t, menu.Fade)
}
