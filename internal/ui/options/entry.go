package options

import (
	"fyne.io/fyne/v2/widget"
)

// submitEntry is a single-line entry that commits on Enter and on focus loss.
type submitEntry struct {
	widget.Entry
	onCommit func(text string)
}

func newSubmitEntry(onCommit func(text string)) *submitEntry {
	entry := &submitEntry{onCommit: onCommit}
	entry.ExtendBaseWidget(entry)
	entry.OnSubmitted = func(string) {
		entry.commit()
	}
	return entry
}

func (entry *submitEntry) FocusLost() {
	entry.Entry.FocusLost()
	entry.commit()
}

func (entry *submitEntry) commit() {
	if entry.onCommit != nil {
		entry.onCommit(entry.Text)
	}
}
