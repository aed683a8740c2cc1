package config

// StateID identifies a player character state. Exactly one is active per frame.
type StateID int

const (
	StateNone StateID = iota
	Idle
	Walk
	Run
	AttackLight1
	AttackLight2
	AttackHeavy
	Block
	Hurt
	Death
)

// PlayerStates lists every state the player animation set is built from.
var PlayerStates = []StateID{
	Idle, Walk, Run, AttackLight1, AttackLight2, AttackHeavy, Block, Hurt, Death,
}

var stateNames = map[StateID]string{
	StateNone:    "NONE",
	Idle:         "IDLE",
	Walk:         "WALK",
	Run:          "RUN",
	AttackLight1: "ATTACK_LIGHT_1",
	AttackLight2: "ATTACK_LIGHT_2",
	AttackHeavy:  "ATTACK_HEAVY",
	Block:        "BLOCK",
	Hurt:         "HURT",
	Death:        "DEATH",
}

func (s StateID) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "UNKNOWN"
}

// IsAttack reports whether s is one of the attack states
func (s StateID) IsAttack() bool {
	return s == AttackLight1 || s == AttackLight2 || s == AttackHeavy
}

// IsLocomotion reports whether s is a movement state from which attacks may start
func (s StateID) IsLocomotion() bool {
	return s == Idle || s == Walk || s == Run
}
