package editor

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/tagpad/buffer"
	"github.com/iw2rmb/tagpad/internal/logging"
	"github.com/iw2rmb/tagpad/tagtext"
)

func (m Model) updateKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if !m.focused || m.buf == nil {
		return m, nil
	}
	km := m.cfg.KeyMap

	// These work in every mode, including with the picker open.
	switch {
	case key.Matches(msg, km.Quit):
		return m, tea.Quit
	case key.Matches(msg, km.Save):
		return m, m.saveCmd()
	case key.Matches(msg, km.AutoTag):
		return m, m.autoTagCmd()
	}

	if m.picker.visible {
		m.updatePickerKey(msg)
		return m, nil
	}

	m.status = ""
	if m.moveKey(msg) {
		return m, nil
	}

	if m.mode == ModeInsert {
		m.updateInsertKey(msg)
		return m, nil
	}

	switch {
	case key.Matches(msg, km.Pick):
		m.openPicker()
	case key.Matches(msg, km.ClearTag):
		m.retag(m.buf.TokenAtCursor(), "")
	case key.Matches(msg, km.Insert):
		m.mode = ModeInsert
	}
	return m, nil
}

func (m *Model) moveKey(msg tea.KeyMsg) bool {
	km := m.cfg.KeyMap
	var mv buffer.Move
	switch {
	case key.Matches(msg, km.TokenLeft):
		mv = buffer.Move{Unit: buffer.MoveToken, Dir: buffer.DirLeft}
	case key.Matches(msg, km.TokenRight):
		mv = buffer.Move{Unit: buffer.MoveToken, Dir: buffer.DirRight}
	case key.Matches(msg, km.Left):
		mv = buffer.Move{Unit: buffer.MoveGrapheme, Dir: buffer.DirLeft}
	case key.Matches(msg, km.Right):
		mv = buffer.Move{Unit: buffer.MoveGrapheme, Dir: buffer.DirRight}
	case key.Matches(msg, km.Up):
		mv = buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirUp}
	case key.Matches(msg, km.Down):
		mv = buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirDown}
	case key.Matches(msg, km.DocStart):
		mv = buffer.Move{Unit: buffer.MoveDoc, Dir: buffer.DirHome}
	case key.Matches(msg, km.DocEnd):
		mv = buffer.Move{Unit: buffer.MoveDoc, Dir: buffer.DirEnd}
	case key.Matches(msg, km.Home):
		mv = buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirHome}
	case key.Matches(msg, km.End):
		mv = buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirEnd}
	case key.Matches(msg, km.PageUp):
		m.moveRows(buffer.DirUp)
		return true
	case key.Matches(msg, km.PageDown):
		m.moveRows(buffer.DirDown)
		return true
	default:
		return false
	}
	m.buf.Move(mv)
	return true
}

func (m *Model) moveRows(dir buffer.MoveDir) {
	n := max(m.viewport.Height-1, 1)
	for i := 0; i < n; i++ {
		m.buf.Move(buffer.Move{Unit: buffer.MoveLine, Dir: dir})
	}
}

func (m *Model) updateInsertKey(msg tea.KeyMsg) {
	km := m.cfg.KeyMap
	switch {
	case key.Matches(msg, km.Normal):
		m.mode = ModeTag
	case key.Matches(msg, km.Backspace):
		m.buf.DeleteBackward()
	case key.Matches(msg, km.Delete):
		m.buf.DeleteForward()
	case key.Matches(msg, km.Enter):
		m.buf.InsertNewline()
	default:
		if msg.Type == tea.KeyRunes && len(msg.Runes) > 0 && !msg.Alt {
			s := string(msg.Runes)
			// Normalize newlines from pasted text.
			s = strings.ReplaceAll(s, "\r\n", "\n")
			s = strings.ReplaceAll(s, "\r", "\n")
			m.buf.InsertText(s)
		} else if msg.Type == tea.KeySpace {
			m.buf.InsertText(" ")
		}
	}
}

// retag applies tag to ref, reporting failures in the status line.
func (m *Model) retag(ref buffer.TokenRef, tag string) {
	if ref.IsEmpty() {
		m.status = "no token under cursor"
		return
	}
	if m.cfg.Codec.IsPunctuation(ref.Token.Word) {
		m.status = "punctuation cannot be tagged"
		return
	}
	old, tv := ref.Token.Tag, m.buf.TextVersion()
	err := m.buf.RetagToken(ref, tag)
	switch {
	case errors.Is(err, buffer.ErrStaleToken):
		m.status = "document changed, tag not applied"
	case err != nil:
		m.status = err.Error()
	case m.buf.TextVersion() != tv:
		logging.Retag(ref.Token.Word, old, tag)
	}
}

func (m Model) saveCmd() tea.Cmd {
	msg := SaveMsg{Text: m.StorageText(), TextVersion: m.buf.TextVersion()}
	return func() tea.Msg { return msg }
}

func (m Model) autoTagCmd() tea.Cmd {
	msg := AutoTagMsg{Text: plainText(m.cfg.Codec, m.buf.Text())}
	return func() tea.Msg { return msg }
}

// plainText strips every tag from a Display document, one sentence per line.
func plainText(c tagtext.Codec, text string) string {
	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		toks := c.ParseSentence(line, tagtext.Display)
		words := make([]string, 0, len(toks))
		for _, t := range toks {
			words = append(words, t.Word)
		}
		out = append(out, strings.Join(words, " "))
	}
	return strings.Join(out, "\n")
}
