package config

import (
	"image/color"
	"time"
)

// TPS is the fixed simulation rate. Every per-frame timer is derived from it.
const TPS = 60

// DeltaTime is the duration of one simulation step in seconds.
const DeltaTime = 1.0 / TPS

// PlayerConfig contains all player-related configuration values.
// Speeds are in pixels per second, accelerations in pixels per second squared.
// Y grows downward, so JumpSpeed is negative.
type PlayerConfig struct {
	// Stats
	MaxHealth int
	MaxMana   int

	// Movement
	BaseSpeed        float64
	SprintMultiplier float64
	JumpSpeed        float64
	MaxFallSpeed     float64

	// Combat
	InvulnDuration       float64 // seconds
	BlockDamageReduction float64
	DoubleClickThreshold time.Duration

	// Dimensions
	SpriteWidth     int
	SpriteHeight    int
	CollisionWidth  int
	CollisionHeight int

	// Where to spawn when a level has no PlayerSpawn object
	DefaultSpawnX float64
	DefaultSpawnY float64
}

// PhysicsConfig contains world physics values
type PhysicsConfig struct {
	Gravity float64 // pixels per second squared
}

// HazardConfig contains values for level hazards and pickups
type HazardConfig struct {
	SpikeDamage int
	CoinValue   int
	ManaValue   int
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	FollowSmoothing    float64 // How fast camera follows player (0.0-1.0)
	LookAheadDistanceX float64 // Max horizontal look-ahead offset in pixels
	LookAheadSmoothing float64 // How fast look-ahead offset changes (0.0-1.0)
}

// MenuConfig contains main menu configuration values
type MenuConfig struct {
	BackgroundColor   color.RGBA
	TitleColor        color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	TextColorDisabled color.RGBA
	Title             string
	TitleY            float64
	MenuStartY        float64
	MenuItemHeight    float64
	MenuItemGap       float64

	// Background slideshow
	Backgrounds       []string
	PlaceholderColors []color.RGBA
	BackgroundHold    time.Duration
	FadeDuration      time.Duration
}

// PauseConfig contains pause menu configuration values
type PauseConfig struct {
	OverlayColor      color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	MenuItemHeight    float64
	MenuItemGap       float64
	MenuOptions       []string
}

// DialogConfig contains the dialog screen layout
type DialogConfig struct {
	BackgroundColor  color.RGBA
	TextBoxColor     color.RGBA
	NameBoxColor     color.RGBA
	PortraitBoxColor color.RGBA
	TextColor        color.RGBA
	NameColor        color.RGBA
	HintColor        color.RGBA
	TextBoxRatio     float64 // share of screen height used by the text box
	Margin           float64
	Padding          float64
	PortraitSize     float64
	LineHeight       float64
	DefaultSpeaker   string
	MoreIndicator    string
}

// UIConfig contains HUD values
type UIConfig struct {
	HUDMargin       float64
	HealthBarWidth  float64
	HealthBarHeight float64
	ManaBarHeight   float64
	BarGap          float64
	BarBackground   color.RGBA
	HealthColor     color.RGBA
	ManaColor       color.RGBA
	CoinColor       color.RGBA
}

// GameConfig contains scene flow values
type GameConfig struct {
	StartingLevel string
	IntroDialog   string
	DefaultDialog string // shown when the dialog scene is opened without an id
	FadeInTime    time.Duration
}

// ScreenConfig holds the logical screen size
type ScreenConfig struct {
	Width  int
	Height int
}

// Global configuration instances
var C *ScreenConfig
var Player PlayerConfig
var Physics PhysicsConfig
var Hazard HazardConfig
var Camera CameraConfig
var Menu MenuConfig
var Pause PauseConfig
var Dialog DialogConfig
var UI UIConfig
var Game GameConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Gray         = color.RGBA{R: 128, G: 128, B: 128, A: 255}
	Magenta      = color.RGBA{R: 255, G: 0, B: 255, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255} // Selected menu items
	DarkBlue     = color.RGBA{R: 60, G: 100, B: 160, A: 255}  // Unselected menu items
)

func init() {
	C = &ScreenConfig{
		Width:  960,
		Height: 540,
	}

	Physics = PhysicsConfig{
		Gravity: 0.6 * TPS * TPS,
	}

	Player = PlayerConfig{
		MaxHealth: 100,
		MaxMana:   100,

		BaseSpeed:        3 * TPS,
		SprintMultiplier: 1.6,
		JumpSpeed:        -12 * TPS,
		MaxFallSpeed:     15 * TPS,

		InvulnDuration:       1.0,
		BlockDamageReduction: 0.5,
		DoubleClickThreshold: 400 * time.Millisecond,

		SpriteWidth:     128,
		SpriteHeight:    128,
		CollisionWidth:  32,
		CollisionHeight: 64,

		DefaultSpawnX: 100,
		DefaultSpawnY: 100,
	}

	Hazard = HazardConfig{
		SpikeDamage: 20,
		CoinValue:   1,
		ManaValue:   25,
	}

	Camera = CameraConfig{
		FollowSmoothing:    0.1,
		LookAheadDistanceX: 60.0,
		LookAheadSmoothing: 0.05,
	}

	Menu = MenuConfig{
		BackgroundColor:   color.RGBA{R: 20, G: 20, B: 30, A: 255},
		TitleColor:        White,
		TextColorNormal:   DarkBlue,
		TextColorSelected: LightBlue,
		TextColorDisabled: Gray,
		Title:             "FALLEN KNIGHT",
		TitleY:            120,
		MenuStartY:        220,
		MenuItemHeight:    24,
		MenuItemGap:       12,
		Backgrounds: []string{
			"images/backgrounds/bg1.png",
			"images/backgrounds/bg2.png",
			"images/backgrounds/bg3.png",
		},
		PlaceholderColors: []color.RGBA{
			{R: 30, G: 24, B: 48, A: 255},
			{R: 18, G: 40, B: 52, A: 255},
			{R: 48, G: 28, B: 24, A: 255},
		},
		BackgroundHold: 6 * time.Second,
		FadeDuration:   1500 * time.Millisecond,
	}

	Pause = PauseConfig{
		OverlayColor:      BlackOverlay,
		TextColorNormal:   DarkBlue,
		TextColorSelected: LightBlue,
		MenuItemHeight:    20,
		MenuItemGap:       10,
		MenuOptions:       []string{"Resume", "Save & Quit", "Quit"},
	}

	Dialog = DialogConfig{
		BackgroundColor:  color.RGBA{R: 12, G: 12, B: 18, A: 255},
		TextBoxColor:     color.RGBA{R: 30, G: 30, B: 45, A: 230},
		NameBoxColor:     color.RGBA{R: 60, G: 50, B: 90, A: 255},
		PortraitBoxColor: color.RGBA{R: 45, G: 45, B: 60, A: 255},
		TextColor:        White,
		NameColor:        Yellow,
		HintColor:        Gray,
		TextBoxRatio:     0.3,
		Margin:           20,
		Padding:          16,
		PortraitSize:     96,
		LineHeight:       22,
		DefaultSpeaker:   "Narrator",
		MoreIndicator:    "...",
	}

	UI = UIConfig{
		HUDMargin:       10,
		HealthBarWidth:  160,
		HealthBarHeight: 12,
		ManaBarHeight:   6,
		BarGap:          4,
		BarBackground:   color.RGBA{R: 40, G: 40, B: 40, A: 255},
		HealthColor:     color.RGBA{R: 200, G: 40, B: 40, A: 255},
		ManaColor:       color.RGBA{R: 60, G: 100, B: 230, A: 255},
		CoinColor:       Yellow,
	}

	Game = GameConfig{
		StartingLevel: "tutorial",
		IntroDialog:   "introduction",
		DefaultDialog: "test",
		FadeInTime:    600 * time.Millisecond,
	}
}
