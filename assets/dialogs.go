package assets

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"

	"gopkg.in/yaml.v3"
)

//go:embed dialogs/*.yaml
var dialogFS embed.FS

// ErrDialogNotFound is returned when no script exists for a dialog id
var ErrDialogNotFound = errors.New("dialog not found")

// DialogEntry is one line of a dialog script. Only Text is required.
type DialogEntry struct {
	Speaker  string `yaml:"speaker"`
	Text     string `yaml:"text"`
	Portrait string `yaml:"portrait"`
	Image    string `yaml:"image"`
	Sound    string `yaml:"sound"`
}

type dialogScript struct {
	Entries []DialogEntry `yaml:"entries"`
}

// DialogLibrary loads dialog scripts (<dir>/<id>.yaml) and caches them
type DialogLibrary struct {
	fsys  fs.FS
	dir   string
	cache map[string][]DialogEntry
}

func NewDialogLibrary(fsys fs.FS, dir string) *DialogLibrary {
	return &DialogLibrary{
		fsys:  fsys,
		dir:   dir,
		cache: make(map[string][]DialogEntry),
	}
}

// EmbeddedDialogs returns a library over the scripts compiled into the binary
func EmbeddedDialogs() *DialogLibrary {
	return NewDialogLibrary(dialogFS, "dialogs")
}

// Load returns the entries of dialog id
func (l *DialogLibrary) Load(id string) ([]DialogEntry, error) {
	if entries, ok := l.cache[id]; ok {
		return entries, nil
	}

	p := path.Join(l.dir, id+".yaml")
	data, err := fs.ReadFile(l.fsys, p)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrDialogNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read dialog %s: %w", p, err)
	}

	var script dialogScript
	if err := yaml.Unmarshal(data, &script); err != nil {
		return nil, fmt.Errorf("failed to parse dialog %s: %w", p, err)
	}
	for i, e := range script.Entries {
		if e.Text == "" {
			return nil, fmt.Errorf("dialog %s: entry %d has no text", id, i)
		}
	}

	l.cache[id] = script.Entries
	return script.Entries, nil
}

// Invalidate drops a cached script so the next Load reads it again
func (l *DialogLibrary) Invalidate(id string) {
	delete(l.cache, id)
}
