package components

import (
	cfg "github.com/XQwart/fkpg-jmp-fix/config"
	"github.com/yohamta/donburi"
)

// AudioData queues sound effects raised by systems during a frame (singleton component)
type AudioData struct {
	PendingSFX []cfg.SoundID
}

var Audio = donburi.NewComponentType[AudioData]()
