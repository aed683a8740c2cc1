package scenes

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/XQwart/fkpg-jmp-fix/assets"
	cfg "github.com/XQwart/fkpg-jmp-fix/config"
	"github.com/XQwart/fkpg-jmp-fix/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

// ErrUnknownScene is returned when a scene id has no factory
var ErrUnknownScene = errors.New("unknown scene")

// SceneError is a failure while building or running a scene
type SceneError struct {
	ID  SceneID
	Err error
}

func (e *SceneError) Error() string {
	return fmt.Sprintf("scene %q: %v", e.ID, e.Err)
}

func (e *SceneError) Unwrap() error { return e.Err }

// transitions maps a token returned by a scene to the scene shown next.
// Tokens missing here are scene ids themselves.
var transitions = map[SceneID]SceneID{
	SceneBack:          SceneMenu,
	SceneGameOver:      SceneMenu,
	SceneLevelComplete: SceneMenu,
}

// Controller owns the active scene and implements ebiten.Game.
// Menu and settings are built once and reused; every other scene is built
// fresh on each visit.
type Controller struct {
	shared   *Shared
	registry Registry
	cache    map[SceneID]Scene
	watcher  *assets.DialogWatcher

	current   Scene
	currentID SceneID

	// state carried into the next game scene
	levelID string
	saved   *systems.SaveData

	closed bool
}

func NewController(shared *Shared, registry Registry) *Controller {
	if shared.Logger == nil {
		shared.Logger = zap.NewNop()
	}
	return &Controller{
		shared:   shared,
		registry: registry,
		cache:    make(map[SceneID]Scene),
		levelID:  cfg.Game.StartingLevel,
	}
}

// WatchDialogs drops cached dialog scripts as w reports them changed
func (c *Controller) WatchDialogs(w *assets.DialogWatcher) {
	c.watcher = w
}

// Start shows the first scene
func (c *Controller) Start(id SceneID) error {
	return c.switchTo(id)
}

// Current returns the id of the scene being shown
func (c *Controller) Current() SceneID {
	return c.currentID
}

// Resolve returns the scene for id, building it if needed.
// new_game and continue are resolved here and never reach the registry.
func (c *Controller) Resolve(id SceneID) (Scene, SceneID, error) {
	switch id {
	case SceneNewGame:
		if err := systems.ClearGame(c.shared.Store); err != nil {
			c.shared.Logger.Warn("could not clear save", zap.Error(err))
		}
		c.levelID = cfg.Game.StartingLevel
		c.saved = nil
		s, err := c.build(SceneDialog, Params{DialogID: cfg.Game.IntroDialog, Next: SceneGame})
		return s, SceneDialog, err

	case SceneContinue:
		c.saved = systems.LoadGame(c.shared.Store, c.shared.Logger)
		c.levelID = cfg.Game.StartingLevel
		if c.saved != nil && c.saved.LevelID != "" {
			c.levelID = c.saved.LevelID
		}
		s, err := c.build(SceneGame, c.gameParams())
		return s, SceneGame, err

	case SceneGame:
		s, err := c.build(SceneGame, c.gameParams())
		return s, SceneGame, err

	case SceneMenu, SceneSettings:
		if s, ok := c.cache[id]; ok {
			return s, id, nil
		}
		s, err := c.build(id, Params{})
		if err != nil {
			return nil, id, err
		}
		c.cache[id] = s
		return s, id, nil
	}

	s, err := c.build(id, Params{})
	return s, id, err
}

func (c *Controller) gameParams() Params {
	return Params{LevelID: c.levelID, Saved: c.saved}
}

func (c *Controller) build(id SceneID, p Params) (Scene, error) {
	factory, ok := c.registry[id]
	if !ok {
		return nil, &SceneError{ID: id, Err: ErrUnknownScene}
	}
	s, err := factory(c.shared, p)
	if err != nil {
		return nil, &SceneError{ID: id, Err: err}
	}
	return s, nil
}

// Translate maps the token scene from returned to the id shown next. An
// empty token keeps from.
func Translate(from, token SceneID) SceneID {
	if token == "" {
		return from
	}
	if next, ok := transitions[token]; ok {
		return next
	}
	return token
}

func (c *Controller) switchTo(id SceneID) error {
	next, resolved, err := c.Resolve(id)
	if err != nil {
		return err
	}

	if c.current != nil && c.current != next {
		if _, cached := c.cache[c.currentID]; !cached {
			dispose(c.current)
		}
	}

	c.current = next
	c.currentID = resolved
	c.shared.Logger.Debug("scene changed", zap.String("scene", string(resolved)))

	if a, ok := next.(Activator); ok {
		a.Activate()
	}
	return nil
}

func (c *Controller) Update() (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &SceneError{ID: c.currentID, Err: fmt.Errorf("panic: %v", r)}
		}
	}()

	c.drainDialogChanges()

	if c.current == nil {
		return ebiten.Termination
	}

	token, err := c.current.Update()
	if err != nil {
		return &SceneError{ID: c.currentID, Err: err}
	}
	if token == "" {
		return nil
	}

	next := Translate(c.currentID, token)
	if next == SceneExit {
		return ebiten.Termination
	}
	return c.switchTo(next)
}

func (c *Controller) drainDialogChanges() {
	if c.watcher == nil || c.shared.Dialogs == nil {
		return
	}
	for {
		select {
		case id := <-c.watcher.Changes:
			c.shared.Dialogs.Invalidate(id)
			c.shared.Logger.Info("dialog reloaded", zap.String("dialog", id))
		case err := <-c.watcher.Errors:
			c.shared.Logger.Warn("dialog watcher", zap.Error(err))
		default:
			return
		}
	}
}

func (c *Controller) Draw(screen *ebiten.Image) {
	defer func() {
		if r := recover(); r != nil {
			c.shared.Logger.Error("draw panicked", zap.String("scene", string(c.currentID)), zap.Any("panic", r))
		}
	}()

	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)
	if c.current != nil {
		c.current.Draw(screen)
	}
}

func (c *Controller) Layout(_, _ int) (int, int) {
	return cfg.C.Width, cfg.C.Height
}

// Close releases every scene and asset and writes the settings back.
// Calling it again does nothing.
func (c *Controller) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true

	if c.current != nil {
		if _, cached := c.cache[c.currentID]; !cached {
			dispose(c.current)
		}
		c.current = nil
	}
	for id, s := range c.cache {
		dispose(s)
		delete(c.cache, id)
	}

	if c.shared.Sprites != nil {
		c.shared.Sprites.Dispose()
	}
	if c.watcher != nil {
		if err := c.watcher.Close(); err != nil {
			c.shared.Logger.Warn("could not close dialog watcher", zap.Error(err))
		}
	}
	systems.StopMusic()

	if c.shared.Config == nil {
		return nil
	}
	return c.shared.Config.Save()
}

func dispose(s Scene) {
	if d, ok := s.(Disposer); ok {
		d.Dispose()
	}
}
