package assets

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedDialogsLoad(t *testing.T) {
	lib := EmbeddedDialogs()

	intro, err := lib.Load("introduction")
	require.NoError(t, err)
	require.NotEmpty(t, intro)
	for _, e := range intro {
		assert.NotEmpty(t, e.Text)
	}

	test, err := lib.Load("test")
	require.NoError(t, err)
	assert.Len(t, test, 2)
	assert.Empty(t, test[1].Speaker)
}

func TestDialogLibraryErrors(t *testing.T) {
	fsys := fstest.MapFS{
		"d/broken.yaml": {Data: []byte("entries: [")},
		"d/notext.yaml": {Data: []byte("entries:\n  - speaker: x\n")},
		"d/ok.yaml":     {Data: []byte("entries:\n  - text: hi\n")},
	}
	lib := NewDialogLibrary(fsys, "d")

	_, err := lib.Load("missing")
	assert.ErrorIs(t, err, ErrDialogNotFound)

	_, err = lib.Load("broken")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrDialogNotFound)

	_, err = lib.Load("notext")
	assert.Error(t, err)

	entries, err := lib.Load("ok")
	require.NoError(t, err)
	assert.Equal(t, "hi", entries[0].Text)
}

func TestDialogLibraryInvalidate(t *testing.T) {
	fsys := fstest.MapFS{"d/a.yaml": {Data: []byte("entries:\n  - text: old\n")}}
	lib := NewDialogLibrary(fsys, "d")

	entries, err := lib.Load("a")
	require.NoError(t, err)
	assert.Equal(t, "old", entries[0].Text)

	fsys["d/a.yaml"] = &fstest.MapFile{Data: []byte("entries:\n  - text: new\n")}
	entries, _ = lib.Load("a")
	assert.Equal(t, "old", entries[0].Text, "cached until invalidated")

	lib.Invalidate("a")
	entries, err = lib.Load("a")
	require.NoError(t, err)
	assert.Equal(t, "new", entries[0].Text)
}

func TestDialogID(t *testing.T) {
	tests := []struct {
		name string
		id   string
		ok   bool
	}{
		{"/tmp/dialogs/introduction.yaml", "introduction", true},
		{"intro.YML", "intro", true},
		{"notes.txt", "", false},
	}
	for _, tt := range tests {
		id, ok := dialogID(tt.name)
		assert.Equal(t, tt.ok, ok, tt.name)
		assert.Equal(t, tt.id, id, tt.name)
	}
}
