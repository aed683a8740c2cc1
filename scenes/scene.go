package scenes

import (
	"github.com/XQwart/fkpg-jmp-fix/assets"
	cfg "github.com/XQwart/fkpg-jmp-fix/config"
	"github.com/XQwart/fkpg-jmp-fix/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

// SceneID names a scene or a transition token returned by one
type SceneID string

const (
	SceneMenu     SceneID = "menu"
	SceneSettings SceneID = "settings"
	SceneGame     SceneID = "game"
	SceneDialog   SceneID = "dialog"

	// Pseudo scenes resolved by the controller
	SceneNewGame  SceneID = "new_game"
	SceneContinue SceneID = "continue"

	// Tokens only
	SceneExit          SceneID = "exit"
	SceneBack          SceneID = "back"
	SceneGameOver      SceneID = "game_over"
	SceneLevelComplete SceneID = "level_complete"
)

// Scene is one screen of the game. Update returns the transition token, or
// an empty id to stay on this scene.
type Scene interface {
	Update() (SceneID, error)
	Draw(screen *ebiten.Image)
}

// Activator is implemented by scenes that refresh whenever they are shown
type Activator interface {
	Activate()
}

// Disposer is implemented by scenes holding resources beyond their lifetime
type Disposer interface {
	Dispose()
}

// Params are the per-visit arguments of a scene
type Params struct {
	LevelID  string
	Saved    *systems.SaveData
	DialogID string
	Next     SceneID
}

// Shared is handed to every scene
type Shared struct {
	Config  *cfg.Config
	Store   cfg.Store
	Logger  *zap.Logger
	Dialogs *assets.DialogLibrary
	Sprites *assets.SpriteLoader
	Voice   systems.VoicePlayer
	Display systems.Display
}

// Factory builds a scene
type Factory func(shared *Shared, p Params) (Scene, error)

// Registry maps every constructible scene to its factory
type Registry map[SceneID]Factory

// DefaultRegistry returns the factories of the game's scenes
func DefaultRegistry() Registry {
	return Registry{
		SceneMenu:     NewMenuScene,
		SceneSettings: NewSettingsScene,
		SceneGame:     NewGameScene,
		SceneDialog:   NewDialogScene,
	}
}
