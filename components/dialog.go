package components

import (
	"github.com/XQwart/fkpg-jmp-fix/assets"
	"github.com/yohamta/donburi"
)

// DialogData is a dialog sequence and the index of the entry on screen.
// An entry counts as shown as soon as the cursor reaches it.
type DialogData struct {
	ID      string
	Entries []assets.DialogEntry
	Cursor  int
}

// IsFinished reports whether the last entry has been shown
func (d *DialogData) IsFinished() bool {
	return d.Cursor >= len(d.Entries)-1
}

// Advance moves to the next entry. It returns false when the sequence was
// already finished, which tells the caller to close the dialog.
func (d *DialogData) Advance() bool {
	if d.IsFinished() {
		return false
	}
	d.Cursor++
	return true
}

// SkipToEnd jumps straight to the last entry
func (d *DialogData) SkipToEnd() {
	if len(d.Entries) > 0 {
		d.Cursor = len(d.Entries) - 1
	}
}

// Current returns the entry on screen
func (d *DialogData) Current() (assets.DialogEntry, bool) {
	if d.Cursor < 0 || d.Cursor >= len(d.Entries) {
		return assets.DialogEntry{}, false
	}
	return d.Entries[d.Cursor], true
}

var Dialog = donburi.NewComponentType[DialogData]()
