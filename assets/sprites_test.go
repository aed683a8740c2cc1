package assets

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestFramesFallBackToEmpty(t *testing.T) {
	fsys := fstest.MapFS{
		"hero/idle/readme.txt": {Data: []byte("not a frame")},
	}
	l := NewSpriteLoader(fsys, zap.NewNop())

	assert.Empty(t, l.Frames("hero/missing"))
	assert.Empty(t, l.Frames("hero/idle"))
	assert.Nil(t, l.Image("hero/idle/none.png"))
	assert.Nil(t, l.Image(""))
}
