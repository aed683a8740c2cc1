package components

import (
	"testing"

	"github.com/XQwart/fkpg-jmp-fix/assets/animations"
	"github.com/XQwart/fkpg-jmp-fix/config"
	"github.com/stretchr/testify/assert"
)

func newSet() *AnimationData {
	frames := []animations.Frame{{Key: "0"}, {Key: "1"}, {Key: "2"}}
	return &AnimationData{Animations: map[config.StateID]*animations.Animation{
		config.Idle:         animations.NewAnimation(frames, 10, true),
		config.AttackLight1: animations.NewAnimation(frames, 10, false),
	}}
}

func TestSetAnimationResetsOnSwitch(t *testing.T) {
	a := newSet()
	a.SetAnimation(config.Idle)
	a.Update(0.1)
	assert.Equal(t, 1, a.CurrentAnimation.Frame())

	a.SetAnimation(config.AttackLight1)
	a.Update(0.2)
	assert.Equal(t, 2, a.CurrentAnimation.Frame())
	assert.True(t, a.IsFinished())

	a.SetAnimation(config.Idle)
	assert.Equal(t, 0, a.CurrentAnimation.Frame())

	a.SetAnimation(config.AttackLight1)
	assert.Equal(t, 0, a.CurrentAnimation.Frame(), "re-entering a state restarts it")
	assert.False(t, a.IsFinished())
}

func TestSetAnimationSameStateIsNoop(t *testing.T) {
	a := newSet()
	a.SetAnimation(config.Idle)
	a.Update(0.1)
	a.SetAnimation(config.Idle)
	assert.Equal(t, 1, a.CurrentAnimation.Frame())
}

func TestMissingStateDrawsPlaceholder(t *testing.T) {
	a := newSet()
	a.SetAnimation(config.Death)
	assert.Nil(t, a.CurrentAnimation)
	assert.False(t, a.IsFinished())
	assert.True(t, a.CurrentFrame(false).IsPlaceholder())
}
