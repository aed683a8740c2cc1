package components

import (
	"github.com/XQwart/fkpg-jmp-fix/assets"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	ID           string
	CurrentLevel *assets.Level
}

var Level = donburi.NewComponentType[LevelData]()
