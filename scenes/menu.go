package scenes

import (
	"github.com/XQwart/fkpg-jmp-fix/components"
	cfg "github.com/XQwart/fkpg-jmp-fix/config"
	"github.com/XQwart/fkpg-jmp-fix/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// MenuScene is the title screen
type MenuScene struct {
	ecs    *ecs.ECS
	shared *Shared
	next   SceneID
}

func NewMenuScene(shared *Shared, _ Params) (Scene, error) {
	ms := &MenuScene{shared: shared}
	ms.ecs = ecs.NewECS(donburi.NewWorld())

	ms.ecs.AddSystem(systems.UpdateAudio)
	ms.ecs.AddSystem(systems.UpdateInput)
	ms.ecs.AddSystem(systems.NewUpdateMenu(ms.onSelect))
	ms.ecs.AddSystem(systems.UpdateMenuBackground)

	ms.ecs.AddRenderer(cfg.Default, systems.DrawMenu)

	if shared.Sprites != nil {
		var backgrounds []*ebiten.Image
		for _, p := range cfg.Menu.Backgrounds {
			if img := shared.Sprites.Image(p); img != nil {
				backgrounds = append(backgrounds, img)
			}
		}
		systems.SetMenuBackgrounds(ms.ecs, backgrounds)
	}
	return ms, nil
}

func (ms *MenuScene) onSelect(option components.MainMenuOption) {
	switch option {
	case components.MainMenuNewGame:
		ms.next = SceneNewGame
	case components.MainMenuContinue:
		ms.next = SceneContinue
	case components.MainMenuSettings:
		ms.next = SceneSettings
	case components.MainMenuExit:
		ms.next = SceneExit
	}
}

// Activate runs every time the menu is shown, since a save may have been
// written or cleared in the meantime
func (ms *MenuScene) Activate() {
	ms.next = ""
	systems.LatchInput(ms.ecs)
	systems.RefreshMenu(ms.ecs, systems.HasSaveGame(ms.shared.Store))
	systems.PlayRandomMenuMusic()
}

func (ms *MenuScene) Update() (SceneID, error) {
	ms.ecs.Update()
	next := ms.next
	ms.next = ""
	return next, nil
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	ms.ecs.Draw(screen)
}
