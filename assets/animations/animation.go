package animations

import "github.com/hajimehoshi/ebiten/v2"

// Frame is one image of an animation. Image is nil for the placeholder frame
// that stands in for missing sprites; renderers draw a marker box instead.
type Frame struct {
	Key   string
	Image *ebiten.Image
}

// IsPlaceholder reports whether f stands in for a missing sprite
func (f Frame) IsPlaceholder() bool {
	return f.Image == nil
}

// PlaceholderFrame is used when an animation has no frames
var PlaceholderFrame = Frame{Key: "placeholder"}

// FrameRef is what a renderer needs to draw the current frame
type FrameRef struct {
	Frame
	FlipX bool
}

// Animation plays an ordered list of frames at a fixed rate. Playback is
// driven by elapsed time, not ticks.
type Animation struct {
	frames        []Frame
	frameDuration float64 // seconds; 0 means the frame never advances
	Loop          bool
	index         int
	elapsed       float64
}

// NewAnimation builds an animation. An empty frame list is replaced by a
// single placeholder frame.
func NewAnimation(frames []Frame, fps float64, loop bool) *Animation {
	if len(frames) == 0 {
		frames = []Frame{PlaceholderFrame}
	}
	a := &Animation{
		frames: frames,
		Loop:   loop,
	}
	if fps > 0 {
		a.frameDuration = 1 / fps
	}
	return a
}

// Update advances playback by dt seconds. Several frames may be skipped when
// dt spans more than one frame duration; only the remainder is carried over.
func (a *Animation) Update(dt float64) {
	if a.frameDuration <= 0 {
		return
	}
	a.elapsed += dt
	if a.elapsed < a.frameDuration {
		return
	}

	steps := int(a.elapsed / a.frameDuration)
	a.elapsed -= float64(steps) * a.frameDuration

	last := len(a.frames) - 1
	if a.Loop {
		a.index = (a.index + steps) % len(a.frames)
		return
	}
	a.index += steps
	if a.index > last {
		a.index = last
	}
}

// CurrentFrame returns the frame to draw, mirrored when flipX is set
func (a *Animation) CurrentFrame(flipX bool) FrameRef {
	return FrameRef{Frame: a.frames[a.index], FlipX: flipX}
}

// IsFinished is true for a non-looping animation sitting on its last frame
func (a *Animation) IsFinished() bool {
	return !a.Loop && a.index == len(a.frames)-1
}

func (a *Animation) Frame() int {
	return a.index
}

func (a *Animation) Len() int {
	return len(a.frames)
}

func (a *Animation) Restart() {
	a.index = 0
	a.elapsed = 0
}
