package systems

import (
	"github.com/XQwart/fkpg-jmp-fix/assets/animations"
	"github.com/XQwart/fkpg-jmp-fix/components"
	cfg "github.com/XQwart/fkpg-jmp-fix/config"
	"github.com/XQwart/fkpg-jmp-fix/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// memStore is an in-memory cfg.Store
type memStore struct {
	items map[string][]byte
	err   error
}

func newMemStore() *memStore {
	return &memStore{items: map[string][]byte{}}
}

func (s *memStore) LoadItem(key string) ([]byte, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.items[key], nil
}

func (s *memStore) SaveItem(key string, data []byte) error {
	if s.err != nil {
		return s.err
	}
	s.items[key] = data
	return nil
}

func (s *memStore) DeleteItem(key string) error {
	if s.err != nil {
		return s.err
	}
	delete(s.items, key)
	return nil
}

// fakeVoice records dialog cues instead of playing them
type fakeVoice struct {
	played  []string
	stopped int
}

func (v *fakeVoice) PlayVoice(name string) { v.played = append(v.played, name) }
func (v *fakeVoice) StopVoice()            { v.stopped++ }

func newTestECS() *ecs.ECS {
	return ecs.NewECS(donburi.NewWorld())
}

// testAnimations gives every player state three frames at 10 fps
func testAnimations() *components.AnimationData {
	frames := []animations.Frame{{Key: "0"}, {Key: "1"}, {Key: "2"}}
	anims := map[cfg.StateID]*animations.Animation{}
	for state, def := range cfg.CharacterAnimations[cfg.PlayerSpriteKey] {
		anims[state] = animations.NewAnimation(frames, 10, def.Loop)
	}
	return &components.AnimationData{Animations: anims}
}

// newTestPlayer creates a grounded player with full health and no
// collision object
func newTestPlayer(e *ecs.ECS) *donburi.Entry {
	w := e.World
	entry := w.Entry(w.Create(tags.Player, components.Player, components.Character, components.Animation))

	components.Character.SetValue(entry, components.CharacterData{
		Health:         cfg.Player.MaxHealth,
		MaxHealth:      cfg.Player.MaxHealth,
		InvulnDuration: cfg.Player.InvulnDuration,
		OnGround:       true,
		HalfWidth:      float64(cfg.Player.SpriteWidth) / 2,
		HalfHeight:     float64(cfg.Player.SpriteHeight) / 2,
	})
	components.Player.SetValue(entry, components.PlayerData{
		MaxMana:      cfg.Player.MaxMana,
		CurrentState: cfg.Idle,
	})
	anim := testAnimations()
	anim.SetAnimation(cfg.Idle)
	components.Animation.Set(entry, anim)
	return entry
}

func playerState(entry *donburi.Entry) cfg.StateID {
	return components.Player.Get(entry).CurrentState
}

func pendingSFX(e *ecs.ECS) []cfg.SoundID {
	return getOrCreateAudio(e.World).PendingSFX
}
