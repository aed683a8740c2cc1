package components

import (
	"github.com/XQwart/fkpg-jmp-fix/assets/animations"
	"github.com/XQwart/fkpg-jmp-fix/config"
	"github.com/yohamta/donburi"
)

// AnimationData binds every state of an entity to its animation. The map is
// fixed when the entity is created.
type AnimationData struct {
	CurrentAnimation *animations.Animation
	CurrentSheet     config.StateID
	FrameWidth       int
	FrameHeight      int
	Animations       map[config.StateID]*animations.Animation
}

// SetAnimation switches to the animation bound to state and plays it from
// the first frame. Selecting the active state again does nothing.
func (a *AnimationData) SetAnimation(state config.StateID) {
	if a.CurrentSheet == state && a.CurrentAnimation != nil {
		return
	}

	anim, ok := a.Animations[state]
	if !ok {
		// No animation for this state, clear current
		a.CurrentAnimation = nil
		a.CurrentSheet = state
		return
	}
	a.CurrentAnimation = anim
	a.CurrentSheet = state
	a.CurrentAnimation.Restart()
}

// Update advances the active animation
func (a *AnimationData) Update(dt float64) {
	if a.CurrentAnimation != nil {
		a.CurrentAnimation.Update(dt)
	}
}

// IsFinished reports whether the active animation has played through
func (a *AnimationData) IsFinished() bool {
	return a.CurrentAnimation != nil && a.CurrentAnimation.IsFinished()
}

// CurrentFrame returns the frame to draw for the active state
func (a *AnimationData) CurrentFrame(flipX bool) animations.FrameRef {
	if a.CurrentAnimation == nil {
		return animations.FrameRef{Frame: animations.PlaceholderFrame, FlipX: flipX}
	}
	return a.CurrentAnimation.CurrentFrame(flipX)
}

var Animation = donburi.NewComponentType[AnimationData]()
