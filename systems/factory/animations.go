package factory

import (
	"fmt"
	"path"

	"github.com/XQwart/fkpg-jmp-fix/assets"
	"github.com/XQwart/fkpg-jmp-fix/assets/animations"
	"github.com/XQwart/fkpg-jmp-fix/components"
	cfg "github.com/XQwart/fkpg-jmp-fix/config"
)

// CharacterSpriteDir holds one folder per character, one sub-folder per state
const CharacterSpriteDir = "images/characters"

// GenerateAnimations creates an AnimationData component based on the character key
// (e.g., "hero_knight") which maps to a set of animation definitions in config.
// States whose folder is empty or missing play a placeholder frame.
func GenerateAnimations(key string, frames assets.FrameSource) *components.AnimationData {
	defs, ok := cfg.CharacterAnimations[key]
	if !ok {
		panic(fmt.Sprintf("No animation definitions found for key: %s", key))
	}

	animData := &components.AnimationData{
		Animations:   make(map[cfg.StateID]*animations.Animation, len(defs)),
		FrameWidth:   cfg.Player.SpriteWidth,
		FrameHeight:  cfg.Player.SpriteHeight,
		CurrentSheet: cfg.StateNone,
	}

	for state, def := range defs {
		dir := path.Join(CharacterSpriteDir, key, def.Folder)
		animData.Animations[state] = animations.NewAnimation(frames.Frames(dir), def.FPS, def.Loop)
	}

	return animData
}
