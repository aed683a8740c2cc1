package systems

import (
	"testing"

	"github.com/XQwart/fkpg-jmp-fix/components"
	cfg "github.com/XQwart/fkpg-jmp-fix/config"
	"github.com/stretchr/testify/assert"
)

type fakeDisplay struct {
	fullscreen    bool
	width, height int
}

func (d *fakeDisplay) SetFullscreen(on bool) { d.fullscreen = on }
func (d *fakeDisplay) SetWindowSize(width, height int) {
	d.width, d.height = width, height
}

func TestAdjustVolumeStep(t *testing.T) {
	assert.Equal(t, 0.75, adjustVolumeStep(0.5, 1))
	assert.Equal(t, 0.25, adjustVolumeStep(0.5, -1))
	assert.Equal(t, 1.0, adjustVolumeStep(1.0, 1))
	assert.Equal(t, 0.0, adjustVolumeStep(0, -1))
	// Off-grid values snap to the closest step first
	assert.Equal(t, 0.75, adjustVolumeStep(0.55, 1))
}

func TestSettingsChangeConfig(t *testing.T) {
	e := newTestECS()
	c := cfg.NewConfig(nil)
	d := &fakeDisplay{}
	update := NewUpdateSettingsMenu(c, d, func() {})

	press(e, cfg.ActionMenuRight)
	update(e)
	assert.Equal(t, adjustVolumeStep(cfg.Audio.DefaultMusicVol, 1), c.MusicVolume)

	GetOrCreateSettingsMenu(e).SelectedOption = components.SettingsOptMute
	press(e, cfg.ActionMenuSelect)
	update(e)
	assert.True(t, c.Muted)

	GetOrCreateSettingsMenu(e).SelectedOption = components.SettingsOptResolution
	press(e, cfg.ActionMenuRight)
	update(e)
	res := c.Resolution()
	assert.Equal(t, res.Width, d.width)
	assert.Equal(t, res.Height, d.height)

	GetOrCreateSettingsMenu(e).SelectedOption = components.SettingsOptFullscreen
	press(e, cfg.ActionMenuSelect)
	update(e)
	assert.True(t, c.Fullscreen)
	assert.True(t, d.fullscreen)
}

func TestResolutionWraps(t *testing.T) {
	e := newTestECS()
	c := cfg.NewConfig(nil)
	c.ResolutionIndex = 0
	adjustSetting(e, c, &fakeDisplay{}, components.SettingsOptResolution, -1)
	assert.Equal(t, len(cfg.SettingsMenu.Resolutions)-1, c.ResolutionIndex)
}

func TestNavigationSkipsResolutionInFullscreen(t *testing.T) {
	c := cfg.NewConfig(nil)
	c.Fullscreen = true
	s := &components.SettingsMenuData{SelectedOption: components.SettingsOptFullscreen}

	navigateSettings(c, s, 1)
	assert.Equal(t, components.SettingsOptBack, s.SelectedOption)

	navigateSettings(c, s, -1)
	assert.Equal(t, components.SettingsOptFullscreen, s.SelectedOption)

	navigateSettings(c, s, 1)
	navigateSettings(c, s, 1)
	assert.Equal(t, components.SettingsOptMusicVolume, s.SelectedOption, "wraps around")
}

func TestSettingsBack(t *testing.T) {
	e := newTestECS()
	backs := 0
	update := NewUpdateSettingsMenu(cfg.NewConfig(nil), &fakeDisplay{}, func() { backs++ })

	press(e, cfg.ActionMenuBack)
	update(e)

	GetOrCreateSettingsMenu(e).SelectedOption = components.SettingsOptBack
	press(e, cfg.ActionMenuSelect)
	update(e)

	assert.Equal(t, 2, backs)
}

func TestFormatVolumeBar(t *testing.T) {
	assert.Equal(t, "[|||||.....] 50%", formatVolumeBar(0.5))
	assert.Equal(t, "[..........] 0%", formatVolumeBar(0))
}
