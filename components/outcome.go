package components

import "github.com/yohamta/donburi"

// Outcome is how a gameplay session ended
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeLevelComplete
	OutcomeGameOver
	OutcomeSaveAndQuit
	OutcomeQuit
)

// OutcomeData is set once by whichever system ends the session (singleton component)
type OutcomeData struct {
	Outcome Outcome
}

var SessionOutcome = donburi.NewComponentType[OutcomeData]()
