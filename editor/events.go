package editor

import (
	"github.com/iw2rmb/tagpad/buffer"
	"github.com/iw2rmb/tagpad/tagtext"
)

// ChangeEvent is passed to Config.OnChange.
type ChangeEvent struct {
	Version     uint64
	TextVersion uint64
	Cursor      buffer.Pos
	Form        tagtext.Form

	// Text is the whole document in Form.
	Text string
}

func buildChangeEvent(b *buffer.Buffer) ChangeEvent {
	return ChangeEvent{
		Version:     b.Version(),
		TextVersion: b.TextVersion(),
		Cursor:      b.Cursor(),
		Form:        b.Form(),
		Text:        b.Text(),
	}
}

// SaveMsg asks the host to persist Text, a Storage-form document.
type SaveMsg struct {
	Text        string
	TextVersion uint64
}

// SavedMsg reports the outcome of a SaveMsg back to the editor.
type SavedMsg struct {
	TextVersion uint64
	Path        string
	Err         error
}

// AutoTagMsg asks the host to tag Text, the document with all tags removed.
type AutoTagMsg struct {
	Text string
}

// AutoTagResultMsg carries the tagger output, a Storage-form document, that
// replaces the whole buffer.
type AutoTagResultMsg struct {
	Text string
	Err  error
}

// StatusMsg shows Text in the status line until the next message.
type StatusMsg struct {
	Text string
}
