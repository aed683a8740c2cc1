package scenes

import (
	cfg "github.com/XQwart/fkpg-jmp-fix/config"
	"github.com/XQwart/fkpg-jmp-fix/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DialogScene plays a dialog sequence, then moves on to Params.Next
type DialogScene struct {
	ecs    *ecs.ECS
	shared *Shared
	next   SceneID
	closed bool
}

func NewDialogScene(shared *Shared, p Params) (Scene, error) {
	if p.DialogID == "" {
		p.DialogID = cfg.Game.DefaultDialog
	}
	entries, err := shared.Dialogs.Load(p.DialogID)
	if err != nil {
		return nil, err
	}

	if shared.Voice == nil {
		shared.Voice = systems.AudioVoice{}
	}

	ds := &DialogScene{shared: shared, next: p.Next}
	if ds.next == "" {
		ds.next = SceneBack
	}

	ds.ecs = ecs.NewECS(donburi.NewWorld())
	ds.ecs.AddSystem(systems.UpdateAudio)
	ds.ecs.AddSystem(systems.UpdateInput)
	ds.ecs.AddSystem(systems.NewUpdateDialog(shared.Voice, func() { ds.closed = true }))

	var images systems.ImageSource = noImages{}
	if shared.Sprites != nil {
		images = shared.Sprites
	}
	ds.ecs.AddRenderer(cfg.Default, systems.NewDrawDialog(images))

	systems.StartDialog(ds.ecs, p.DialogID, entries, shared.Voice)
	return ds, nil
}

func (ds *DialogScene) Activate() {
	systems.LatchInput(ds.ecs)
}

func (ds *DialogScene) Update() (SceneID, error) {
	ds.ecs.Update()
	if ds.closed {
		return ds.next, nil
	}
	return "", nil
}

func (ds *DialogScene) Draw(screen *ebiten.Image) {
	ds.ecs.Draw(screen)
}

func (ds *DialogScene) Dispose() {
	ds.shared.Voice.StopVoice()
}

type noImages struct{}

func (noImages) Image(string) *ebiten.Image { return nil }
