package systems

import (
	"github.com/XQwart/fkpg-jmp-fix/components"
	"github.com/XQwart/fkpg-jmp-fix/tags"
	"github.com/yohamta/donburi/ecs"
)

// SetOutcome ends the session. The first outcome wins.
func SetOutcome(e *ecs.ECS, outcome components.Outcome) {
	data := getOrCreateOutcome(e)
	if data.Outcome == components.OutcomeNone {
		data.Outcome = outcome
	}
}

// GetOutcome returns how the session ended, OutcomeNone while it runs
func GetOutcome(e *ecs.ECS) components.Outcome {
	return getOrCreateOutcome(e).Outcome
}

// UpdateOutcome ends the session once the player's death animation is over
func UpdateOutcome(e *ecs.ECS) {
	entry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	if components.Player.Get(entry).Removed {
		SetOutcome(e, components.OutcomeGameOver)
	}
}

func getOrCreateOutcome(e *ecs.ECS) *components.OutcomeData {
	entry, ok := components.SessionOutcome.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.SessionOutcome))
	}
	return components.SessionOutcome.Get(entry)
}
