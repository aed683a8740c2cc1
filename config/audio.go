package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	// Combat sounds
	SoundAttackLight
	SoundAttackHeavy
	SoundBlock
	SoundHurt
	SoundDeath
	// Movement sounds
	SoundJump
	// Pickups
	SoundCoin
	SoundMana
	// UI sounds
	SoundMenuNavigate
	SoundMenuSelect
)

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate        int
	DefaultMusicVol   float64
	DefaultSFXVol     float64
	MusicFadeDuration int // frames for music fade out (60 = 1 second at 60fps)
}

// SoundConfig maps sound IDs to file paths
type SoundConfig struct {
	MenuMusic         []string // one track is picked at random
	LevelMusic        map[string]string
	DialogVoiceDir    string
	SFXPaths          map[SoundID]string
	VolumeMultipliers map[SoundID]float64
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate:        44100,
		DefaultMusicVol:   0.75,
		DefaultSFXVol:     1.0,
		MusicFadeDuration: 60,
	}

	Sound = SoundConfig{
		MenuMusic: []string{
			"audio/music/menu1.ogg",
			"audio/music/menu2.ogg",
			"audio/music/menu3.ogg",
		},
		LevelMusic: map[string]string{
			"tutorial": "audio/music/tutorial.ogg",
		},
		DialogVoiceDir: "audio/dialogs",
		SFXPaths: map[SoundID]string{
			SoundAttackLight:  "audio/sfx/attack_light.wav",
			SoundAttackHeavy:  "audio/sfx/attack_heavy.wav",
			SoundBlock:        "audio/sfx/block.wav",
			SoundHurt:         "audio/sfx/hurt.wav",
			SoundDeath:        "audio/sfx/death.wav",
			SoundJump:         "audio/sfx/jump.wav",
			SoundCoin:         "audio/sfx/coin.wav",
			SoundMana:         "audio/sfx/mana.wav",
			SoundMenuNavigate: "audio/sfx/menu_navigate.wav",
			SoundMenuSelect:   "audio/sfx/menu_select.wav",
		},
		VolumeMultipliers: map[SoundID]float64{
			SoundHurt:  1.5,
			SoundDeath: 1.5,
		},
	}
}
