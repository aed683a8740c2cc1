package systems

import (
	"github.com/XQwart/fkpg-jmp-fix/components"
	cfg "github.com/XQwart/fkpg-jmp-fix/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdateClock advances the scene clock by one tick. Paused scenes skip it,
// so click timing and every timer stop together.
func UpdateClock(e *ecs.ECS) {
	clock := getOrCreateClock(e)
	clock.Frame++
	clock.ElapsedMs = int64(clock.Frame) * 1000 / cfg.TPS
}

func getOrCreateClock(e *ecs.ECS) *components.ClockData {
	entry, ok := components.Clock.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Clock))
	}
	return components.Clock.Get(entry)
}
