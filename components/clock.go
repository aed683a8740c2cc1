package components

import "github.com/yohamta/donburi"

// ClockData is the scene's simulation time (singleton component)
type ClockData struct {
	ElapsedMs int64
	Frame     int
}

var Clock = donburi.NewComponentType[ClockData]()
