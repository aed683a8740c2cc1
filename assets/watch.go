package assets

import (
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DialogWatcher reports dialog ids whose scripts changed on disk
type DialogWatcher struct {
	watcher *fsnotify.Watcher
	Changes chan string
	Errors  chan error
	closeCh chan struct{}
	once    sync.Once
}

func NewDialogWatcher(dir string) (*DialogWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(dir); err != nil {
		_ = w.Close()
		return nil, err
	}

	dw := &DialogWatcher{
		watcher: w,
		Changes: make(chan string, 16),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
	}
	go dw.run()
	return dw, nil
}

func (w *DialogWatcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
	})
	return err
}

func (w *DialogWatcher) run() {
	last := make(map[string]time.Time)
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			id, ok := dialogID(event.Name)
			if !ok {
				continue
			}
			// editors fire several events per save
			now := time.Now()
			if t, ok := last[id]; ok && now.Sub(t) < 100*time.Millisecond {
				continue
			}
			last[id] = now
			select {
			case w.Changes <- id:
			case <-w.closeCh:
				return
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			default:
			}
		case <-w.closeCh:
			return
		}
	}
}

func dialogID(name string) (string, bool) {
	base := filepath.Base(name)
	ext := strings.ToLower(filepath.Ext(base))
	if ext != ".yaml" && ext != ".yml" {
		return "", false
	}
	return strings.TrimSuffix(base, filepath.Ext(base)), true
}
