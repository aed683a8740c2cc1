package assets

import (
	"bytes"
	"image/color"
	_ "image/png"
	"io/fs"
	"path"
	"strings"

	"github.com/XQwart/fkpg-jmp-fix/assets/animations"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"go.uber.org/zap"
)

// FrameSource lists the frames of one animation folder in file name order
type FrameSource interface {
	Frames(dir string) []animations.Frame
}

// SpriteLoader decodes images from an asset file system and caches them.
// Missing or broken files are logged once and reported as nil.
type SpriteLoader struct {
	fsys   fs.FS
	logger *zap.Logger
	cache  map[string]*ebiten.Image
	failed map[string]bool
}

func NewSpriteLoader(fsys fs.FS, logger *zap.Logger) *SpriteLoader {
	return &SpriteLoader{
		fsys:   fsys,
		logger: logger,
		cache:  make(map[string]*ebiten.Image),
		failed: make(map[string]bool),
	}
}

// Image returns the decoded image at p, or nil when it cannot be loaded
func (l *SpriteLoader) Image(p string) *ebiten.Image {
	if p == "" {
		return nil
	}
	if img, ok := l.cache[p]; ok {
		return img
	}
	if l.failed[p] {
		return nil
	}

	data, err := fs.ReadFile(l.fsys, p)
	if err != nil {
		l.fail(p, err)
		return nil
	}
	img, _, err := ebitenutil.NewImageFromReader(bytes.NewReader(data))
	if err != nil {
		l.fail(p, err)
		return nil
	}

	l.cache[p] = img
	return img
}

// Frames loads every PNG in dir. An empty or missing folder yields no frames
// and the animation falls back to its placeholder.
func (l *SpriteLoader) Frames(dir string) []animations.Frame {
	entries, err := fs.ReadDir(l.fsys, dir)
	if err != nil {
		if !l.failed[dir] {
			l.fail(dir, err)
		}
		return nil
	}

	// fs.ReadDir returns entries sorted by file name
	var frames []animations.Frame
	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(path.Ext(e.Name()), ".png") {
			continue
		}
		p := path.Join(dir, e.Name())
		if img := l.Image(p); img != nil {
			frames = append(frames, animations.Frame{Key: p, Image: img})
		}
	}
	if len(frames) == 0 {
		l.logger.Warn("animation folder has no frames", zap.String("dir", dir))
	}
	return frames
}

// Dispose frees every cached image
func (l *SpriteLoader) Dispose() {
	for p, img := range l.cache {
		img.Deallocate()
		delete(l.cache, p)
	}
}

func (l *SpriteLoader) fail(p string, err error) {
	l.failed[p] = true
	l.logger.Warn("could not load image", zap.String("path", p), zap.Error(err))
}

// Placeholder returns a flat image used where a picture is missing
func Placeholder(w, h int, c color.Color) *ebiten.Image {
	img := ebiten.NewImage(w, h)
	img.Fill(c)
	return img
}
