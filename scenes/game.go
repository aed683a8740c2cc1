package scenes

import (
	"fmt"

	"github.com/XQwart/fkpg-jmp-fix/assets"
	"github.com/XQwart/fkpg-jmp-fix/assets/animations"
	"github.com/XQwart/fkpg-jmp-fix/components"
	cfg "github.com/XQwart/fkpg-jmp-fix/config"
	"github.com/XQwart/fkpg-jmp-fix/systems"
	"github.com/XQwart/fkpg-jmp-fix/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// GameScene runs one level
type GameScene struct {
	ecs     *ecs.ECS
	shared  *Shared
	levelID string
	player  *donburi.Entry
}

// NewGameScene loads p.LevelID and places the player at the level spawn, or
// at the saved position when p.Saved is set
func NewGameScene(shared *Shared, p Params) (Scene, error) {
	// Preload assets to avoid lag on first use
	systems.PreloadAllSFX()

	gs := &GameScene{shared: shared, levelID: p.LevelID}
	gs.ecs = ecs.NewECS(donburi.NewWorld())

	// Audio system (runs first, even when paused for menu sounds)
	gs.ecs.AddSystem(systems.UpdateAudio)

	// Systems that always run
	gs.ecs.AddSystem(systems.UpdateInput)
	gs.ecs.AddSystem(systems.UpdatePause)

	// Game systems wrapped with the pause check
	gs.ecs.AddSystem(systems.WithPauseCheck(systems.UpdateClock))
	gs.ecs.AddSystem(systems.WithPauseCheck(systems.UpdatePlayerInput))
	gs.ecs.AddSystem(systems.WithPauseCheck(systems.UpdatePlayer))
	gs.ecs.AddSystem(systems.WithPauseCheck(systems.UpdateCharacterPhysics))
	gs.ecs.AddSystem(systems.WithPauseCheck(systems.UpdateZones))
	gs.ecs.AddSystem(systems.WithPauseCheck(systems.UpdateOutcome))
	gs.ecs.AddSystem(systems.WithPauseCheck(systems.UpdateCamera))
	gs.ecs.AddSystem(systems.WithPauseCheck(systems.UpdateEffects))

	gs.ecs.AddRenderer(cfg.Default, systems.DrawLevel)
	gs.ecs.AddRenderer(cfg.Default, systems.DrawPlayer)
	gs.ecs.AddRenderer(cfg.Default, systems.DrawHUD)
	gs.ecs.AddRenderer(cfg.Overlay, systems.DrawPause)
	gs.ecs.AddRenderer(cfg.Overlay, systems.DrawScreenFade)

	level, err := factory.CreateLevel(gs.ecs, p.LevelID)
	if err != nil {
		return nil, err
	}
	factory.CreateCamera(gs.ecs)

	x, y := factory.PlayerStart(components.Level.Get(level).CurrentLevel)
	health := 0
	if p.Saved != nil {
		x, y, health = p.Saved.X, p.Saved.Y, p.Saved.Health
	}

	var frames assets.FrameSource = noFrames{}
	if shared.Sprites != nil {
		frames = shared.Sprites
	}
	gs.player = factory.CreatePlayer(gs.ecs, x, y, health, frames)

	systems.SnapCamera(gs.ecs)
	systems.StartScreenFade(gs.ecs)
	systems.PlayLevelMusic(p.LevelID)

	shared.Logger.Info("level started",
		zap.String("level", p.LevelID),
		zap.Bool("from_save", p.Saved != nil),
	)
	return gs, nil
}

func (gs *GameScene) Activate() {
	systems.LatchInput(gs.ecs)
}

func (gs *GameScene) Update() (SceneID, error) {
	gs.ecs.Update()

	switch systems.GetOutcome(gs.ecs) {
	case components.OutcomeLevelComplete:
		return SceneLevelComplete, nil
	case components.OutcomeGameOver:
		return SceneGameOver, nil
	case components.OutcomeSaveAndQuit:
		if err := systems.SaveGame(gs.shared.Store, gs.snapshot()); err != nil {
			return "", fmt.Errorf("save and quit: %w", err)
		}
		return SceneMenu, nil
	case components.OutcomeQuit:
		return SceneMenu, nil
	}
	return "", nil
}

// snapshot captures the player for the save file
func (gs *GameScene) snapshot() systems.SaveData {
	s := systems.SaveData{LevelID: gs.levelID}
	if gs.player == nil || !gs.player.Valid() {
		return s
	}
	char := components.Character.Get(gs.player)
	s.X, s.Y, s.Health = char.Position.X, char.Position.Y, char.Health
	return s
}

func (gs *GameScene) Draw(screen *ebiten.Image) {
	gs.ecs.Draw(screen)
}

func (gs *GameScene) Dispose() {
	systems.FadeOutMusic()
}

// noFrames leaves every animation on its placeholder
type noFrames struct{}

func (noFrames) Frames(string) []animations.Frame { return nil }
