package scenes

import (
	cfg "github.com/XQwart/fkpg-jmp-fix/config"
	"github.com/XQwart/fkpg-jmp-fix/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// SettingsScene edits audio and display settings in place
type SettingsScene struct {
	ecs    *ecs.ECS
	shared *Shared
	done   bool
}

func NewSettingsScene(shared *Shared, _ Params) (Scene, error) {
	ss := &SettingsScene{shared: shared}
	display := shared.Display
	if display == nil {
		display = systems.EbitenDisplay{}
	}

	ss.ecs = ecs.NewECS(donburi.NewWorld())
	ss.ecs.AddSystem(systems.UpdateAudio)
	ss.ecs.AddSystem(systems.UpdateInput)
	ss.ecs.AddSystem(systems.NewUpdateSettingsMenu(shared.Config, display, ss.onBack))

	ss.ecs.AddRenderer(cfg.Default, systems.NewDrawSettingsMenu(shared.Config))
	return ss, nil
}

func (ss *SettingsScene) onBack() {
	if err := ss.shared.Config.Save(); err != nil {
		ss.shared.Logger.Warn("could not save settings", zap.Error(err))
	}
	ss.done = true
}

func (ss *SettingsScene) Activate() {
	ss.done = false
	systems.LatchInput(ss.ecs)
	systems.PlayRandomMenuMusic()
}

func (ss *SettingsScene) Update() (SceneID, error) {
	ss.ecs.Update()
	if ss.done {
		ss.done = false
		return SceneBack, nil
	}
	return "", nil
}

func (ss *SettingsScene) Draw(screen *ebiten.Image) {
	ss.ecs.Draw(screen)
}
