package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/XQwart/fkpg-jmp-fix/assets"
	"github.com/XQwart/fkpg-jmp-fix/config"
	"github.com/XQwart/fkpg-jmp-fix/fonts"
	"github.com/XQwart/fkpg-jmp-fix/logger"
	"github.com/XQwart/fkpg-jmp-fix/scenes"
	"github.com/XQwart/fkpg-jmp-fix/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

func main() {
	env, err := config.LoadEnv()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log, err := logger.New(logger.Config{
		Level:    env.LogLevel,
		Encoding: env.LogEncoding,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	zap.ReplaceGlobals(log)

	if err := run(env, log); err != nil {
		log.Error("game stopped", zap.Error(err))
		_ = log.Sync()
		os.Exit(1)
	}
	_ = log.Sync()
}

func run(env config.EnvConfig, log *zap.Logger) (err error) {
	// Initialize persistence and load saved settings
	store, err := systems.OpenStore(env.AppName)
	if err != nil {
		log.Warn("could not initialize persistence, progress will not be kept", zap.Error(err))
		store = nil
	}
	settings, err := config.LoadConfig(store)
	if err != nil {
		log.Warn("could not load settings, using defaults", zap.Error(err))
	}

	if err := fonts.LoadDefaults(); err != nil {
		return fmt.Errorf("failed to load fonts: %w", err)
	}
	if err := assets.LoadShaders(); err != nil {
		log.Warn("could not compile shaders, hit flashes are disabled", zap.Error(err))
	}

	assetFS := os.DirFS(env.AssetDir)
	systems.SetAudioSource(assetFS)
	systems.ApplyAudioSettings(settings)
	systems.ApplyDisplaySettings(settings, systems.EbitenDisplay{})
	ebiten.SetWindowTitle(config.Menu.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)
	ebiten.SetTPS(config.TPS)

	dialogs := assets.EmbeddedDialogs()
	var watcher *assets.DialogWatcher
	if env.DialogDir != "" {
		dialogs = assets.NewDialogLibrary(os.DirFS(env.DialogDir), ".")
		if watcher, err = assets.NewDialogWatcher(env.DialogDir); err != nil {
			log.Warn("dialog scripts will not reload", zap.String("dir", env.DialogDir), zap.Error(err))
			watcher = nil
		}
	}

	shared := &scenes.Shared{
		Config:  settings,
		Store:   store,
		Logger:  log,
		Dialogs: dialogs,
		Sprites: assets.NewSpriteLoader(assetFS, log),
		Voice:   systems.AudioVoice{},
		Display: systems.EbitenDisplay{},
	}
	controller := scenes.NewController(shared, scenes.DefaultRegistry())
	if watcher != nil {
		controller.WatchDialogs(watcher)
	}
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
		if cerr := controller.Close(); cerr != nil {
			log.Warn("could not save settings on exit", zap.Error(cerr))
		}
	}()

	first := scenes.SceneMenu
	if env.SkipMenu {
		first = scenes.SceneContinue
	}
	if err := controller.Start(first); err != nil {
		return err
	}

	if err := ebiten.RunGame(controller); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
