package systems

import (
	"image/color"

	"github.com/XQwart/fkpg-jmp-fix/components"
	cfg "github.com/XQwart/fkpg-jmp-fix/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// StartScreenFade covers the screen in black and fades it out over FadeInTime
func StartScreenFade(e *ecs.ECS) {
	fade := getOrCreateScreenFade(e)
	fade.Alpha = 1
	fade.Tween = gween.New(1, 0, float32(cfg.Game.FadeInTime.Seconds()), ease.OutQuad)
}

// UpdateEffects advances the screen fade
func UpdateEffects(e *ecs.ECS) {
	fade := getOrCreateScreenFade(e)
	if fade.Tween == nil {
		return
	}
	alpha, finished := fade.Tween.Update(float32(cfg.DeltaTime))
	fade.Alpha = alpha
	if finished {
		fade.Alpha = 0
		fade.Tween = nil
	}
}

// DrawScreenFade draws the fade overlay on top of everything
func DrawScreenFade(e *ecs.ECS, screen *ebiten.Image) {
	fade := getOrCreateScreenFade(e)
	if fade.Alpha <= 0 {
		return
	}
	b := screen.Bounds()
	c := color.NRGBA{A: uint8(255 * min(fade.Alpha, 1))}
	vector.DrawFilledRect(screen, 0, 0, float32(b.Dx()), float32(b.Dy()), c, false)
}

func getOrCreateScreenFade(e *ecs.ECS) *components.ScreenFadeData {
	entry, ok := components.ScreenFade.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.ScreenFade))
	}
	return components.ScreenFade.Get(entry)
}
