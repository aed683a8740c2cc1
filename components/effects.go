package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// ScreenFadeData drives a full-screen fade in (singleton component)
type ScreenFadeData struct {
	Tween *gween.Tween
	Alpha float32 // 1 = black, 0 = clear
}

var ScreenFade = donburi.NewComponentType[ScreenFadeData]()
