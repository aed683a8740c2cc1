package config

// AnimationDef describes how one state's frames are found and played.
// Folder is relative to the character's sprite directory.
type AnimationDef struct {
	Folder string
	FPS    float64
	Loop   bool
}

// CharacterAnimations maps a character key (e.g., "hero_knight")
// to its specific set of animation definitions.
var CharacterAnimations = map[string]map[StateID]AnimationDef{
	"hero_knight": {
		Idle:         {Folder: "idle", FPS: 8, Loop: true},
		Walk:         {Folder: "walk", FPS: 10, Loop: true},
		Run:          {Folder: "run", FPS: 12, Loop: true},
		AttackLight1: {Folder: "attack_1", FPS: 14, Loop: false},
		AttackLight2: {Folder: "attack_2", FPS: 14, Loop: false},
		AttackHeavy:  {Folder: "heavy_attack", FPS: 12, Loop: false},
		Block:        {Folder: "defend", FPS: 8, Loop: true},
		Hurt:         {Folder: "hurt", FPS: 10, Loop: false},
		Death:        {Folder: "death", FPS: 8, Loop: false},
	},
}

// PlayerSpriteKey is the CharacterAnimations entry used for the player.
const PlayerSpriteKey = "hero_knight"
