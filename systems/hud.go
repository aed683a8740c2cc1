package systems

import (
	"fmt"
	"image/color"

	"github.com/XQwart/fkpg-jmp-fix/components"
	cfg "github.com/XQwart/fkpg-jmp-fix/config"
	"github.com/XQwart/fkpg-jmp-fix/fonts"
	"github.com/XQwart/fkpg-jmp-fix/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawHUD renders the health and mana bars and the coin counter in the top-left corner.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	char := components.Character.Get(playerEntry)
	player := components.Player.Get(playerEntry)

	x := float32(cfg.UI.HUDMargin)
	y := float32(cfg.UI.HUDMargin)
	w := float32(cfg.UI.HealthBarWidth)

	drawBar(screen, x, y, w, float32(cfg.UI.HealthBarHeight), healthFraction(char), cfg.UI.HealthColor)
	y += float32(cfg.UI.HealthBarHeight + cfg.UI.BarGap)

	drawBar(screen, x, y, w, float32(cfg.UI.ManaBarHeight), float32(player.ManaFraction()), cfg.UI.ManaColor)
	y += float32(cfg.UI.ManaBarHeight + cfg.UI.BarGap)

	face := fonts.Small.Get()
	text.Draw(screen, fmt.Sprintf("Coins: %d", player.Coins), face, int(x), int(y)+face.Metrics().Ascent.Ceil(), cfg.UI.CoinColor)
}

func drawBar(screen *ebiten.Image, x, y, w, h, ratio float32, fill color.Color) {
	vector.DrawFilledRect(screen, x, y, w, h, cfg.UI.BarBackground, false)
	if ratio > 0 {
		vector.DrawFilledRect(screen, x, y, w*min(ratio, 1), h, fill, false)
	}
}

func healthFraction(char *components.CharacterData) float32 {
	if char.MaxHealth <= 0 {
		return 0
	}
	return float32(char.Health) / float32(char.MaxHealth)
}
