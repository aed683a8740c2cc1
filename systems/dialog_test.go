package systems

import (
	"testing"

	"github.com/XQwart/fkpg-jmp-fix/assets"
	"github.com/XQwart/fkpg-jmp-fix/components"
	cfg "github.com/XQwart/fkpg-jmp-fix/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/basicfont"
)

func testEntries() []assets.DialogEntry {
	return []assets.DialogEntry{
		{Text: "one", Sound: "one.ogg"},
		{Speaker: "Hermit", Text: "two"},
		{Text: "three", Sound: "three.ogg"},
	}
}

func TestStartDialogPlaysFirstCue(t *testing.T) {
	voice := &fakeVoice{}
	d := StartDialog(newTestECS(), "intro", testEntries(), voice)

	assert.Equal(t, "intro", d.ID)
	assert.Equal(t, []string{"one.ogg"}, voice.played)
}

func TestAdvanceDialog(t *testing.T) {
	voice := &fakeVoice{}
	d := StartDialog(newTestECS(), "intro", testEntries(), voice)

	require.True(t, AdvanceDialog(d, voice))
	assert.Equal(t, 1, voice.stopped, "previous cue is cut off")
	assert.Len(t, voice.played, 1, "entry without a sound plays nothing")

	require.True(t, AdvanceDialog(d, voice))
	assert.Equal(t, []string{"one.ogg", "three.ogg"}, voice.played)
	assert.True(t, d.IsFinished())

	assert.False(t, AdvanceDialog(d, voice))
	cur, _ := d.Current()
	assert.Equal(t, "three", cur.Text)
}

func TestSkipDialogPlaysNothing(t *testing.T) {
	voice := &fakeVoice{}
	d := StartDialog(newTestECS(), "intro", testEntries(), voice)

	SkipDialog(d, voice)
	assert.True(t, d.IsFinished())
	assert.Equal(t, []string{"one.ogg"}, voice.played)
	assert.Equal(t, 1, voice.stopped)
}

func TestUpdateDialogClosesAfterLastEntry(t *testing.T) {
	e := newTestECS()
	voice := &fakeVoice{}
	closed := 0
	StartDialog(e, "intro", testEntries(), voice)
	update := NewUpdateDialog(voice, func() { closed++ })

	for range 3 {
		press(e, cfg.ActionDialogAdvance)
		update(e)
	}
	assert.Equal(t, 1, closed)
}

func TestUpdateDialogClickAdvances(t *testing.T) {
	e := newTestECS()
	voice := &fakeVoice{}
	StartDialog(e, "intro", testEntries(), voice)
	update := NewUpdateDialog(voice, func() {})

	input := getOrCreateInput(e)
	input.Clicks = append(input.Clicks, components.Click{Button: cfg.Input.LightAttackButton})
	update(e)

	entry, _ := components.Dialog.First(e.World)
	assert.Equal(t, 1, components.Dialog.Get(entry).Cursor)
}

func TestUpdateDialogSkipCloses(t *testing.T) {
	e := newTestECS()
	voice := &fakeVoice{}
	closed := false
	StartDialog(e, "intro", testEntries(), voice)

	press(e, cfg.ActionDialogSkip)
	NewUpdateDialog(voice, func() { closed = true })(e)

	assert.True(t, closed)
	assert.Len(t, voice.played, 1)
}

func TestWrapText(t *testing.T) {
	face := basicfont.Face7x13

	lines := wrapText(face, "the quick brown fox jumps", 7*10)
	assert.Equal(t, []string{"the quick", "brown fox", "jumps"}, lines)

	assert.Equal(t, []string{"incomprehensibilities"}, wrapText(face, "incomprehensibilities", 20))
	assert.Nil(t, wrapText(face, "   ", 100))
}
