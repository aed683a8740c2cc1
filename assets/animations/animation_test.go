package animations

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func frames(n int) []Frame {
	out := make([]Frame, n)
	for i := range out {
		out[i] = Frame{Key: string(rune('a' + i))}
	}
	return out
}

func TestLoopingAnimationWraps(t *testing.T) {
	a := NewAnimation(frames(3), 10, true)

	for _, want := range []int{1, 2, 0, 1} {
		a.Update(0.1)
		assert.Equal(t, want, a.Frame())
		assert.False(t, a.IsFinished())
	}
}

func TestNonLoopingAnimationClamps(t *testing.T) {
	a := NewAnimation(frames(3), 10, false)

	a.Update(0.1)
	assert.Equal(t, 1, a.Frame())
	assert.False(t, a.IsFinished())

	a.Update(0.1)
	assert.Equal(t, 2, a.Frame())
	assert.True(t, a.IsFinished(), "finished exactly when the clamp is reached")

	a.Update(0.5)
	assert.Equal(t, 2, a.Frame())
	assert.True(t, a.IsFinished())
}

func TestLargeStepAdvancesSeveralFrames(t *testing.T) {
	a := NewAnimation(frames(5), 4, true)
	a.Update(0.875)
	assert.Equal(t, 3, a.Frame())

	// remainder of 0.125 carries over
	a.Update(0.125)
	assert.Equal(t, 4, a.Frame())
}

func TestSubFrameUpdatesAccumulate(t *testing.T) {
	a := NewAnimation(frames(2), 4, true)
	a.Update(0.125)
	assert.Equal(t, 0, a.Frame())
	a.Update(0.125)
	assert.Equal(t, 1, a.Frame())
}

func TestRestart(t *testing.T) {
	a := NewAnimation(frames(3), 10, false)
	a.Update(1)
	assert.True(t, a.IsFinished())

	a.Restart()
	assert.Equal(t, 0, a.Frame())
	assert.False(t, a.IsFinished())
}

func TestEmptyFramesUsePlaceholder(t *testing.T) {
	a := NewAnimation(nil, 10, true)
	assert.Equal(t, 1, a.Len())

	ref := a.CurrentFrame(true)
	assert.True(t, ref.IsPlaceholder())
	assert.True(t, ref.FlipX)
}

func TestCurrentFrameCarriesFlip(t *testing.T) {
	a := NewAnimation(frames(2), 10, true)
	assert.Equal(t, "a", a.CurrentFrame(false).Key)
	assert.False(t, a.CurrentFrame(false).FlipX)
	assert.True(t, a.CurrentFrame(true).FlipX)
}
