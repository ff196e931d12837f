package editor

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"

	"github.com/iw2rmb/tagpad/buffer"
)

// pickerState is the tag picker opened on one token. target pins the token
// to the text version it was opened against.
type pickerState struct {
	visible  bool
	target   buffer.TokenRef
	query    string
	items    []string
	selected int
	offset   int
}

// PickerOpen reports whether the tag picker is showing.
func (m Model) PickerOpen() bool { return m.picker.visible }

// PickerItems returns the tags currently listed by the picker.
func (m Model) PickerItems() []string {
	return append([]string(nil), m.picker.items...)
}

func (m *Model) openPicker() {
	ref := m.buf.TokenAtCursor()
	if ref.IsEmpty() {
		m.status = "no token under cursor"
		return
	}
	if m.cfg.Codec.IsPunctuation(ref.Token.Word) {
		m.status = "punctuation cannot be tagged"
		return
	}

	m.picker = pickerState{visible: true, target: ref}
	m.refilter()
	for i, tag := range m.picker.items {
		if tag == ref.Token.Tag {
			m.picker.selected = i
			break
		}
	}
	m.scrollPicker()
	m.layout()
	m.followCursorWithForce(true)
}

func (m *Model) closePicker() {
	m.picker = pickerState{}
	m.layout()
}

func (m *Model) updatePickerKey(msg tea.KeyMsg) {
	km := m.cfg.PickerKeyMap
	p := &m.picker
	switch {
	case key.Matches(msg, km.Dismiss):
		m.closePicker()
		return
	case key.Matches(msg, km.Accept):
		tag, ok := m.pickerChoice()
		target := p.target
		m.closePicker()
		if ok {
			m.retag(target, tag)
		}
		return
	case key.Matches(msg, km.Next):
		if len(p.items) > 0 {
			p.selected = (p.selected + 1) % len(p.items)
		}
	case key.Matches(msg, km.Prev):
		if len(p.items) > 0 {
			p.selected = (p.selected - 1 + len(p.items)) % len(p.items)
		}
	case key.Matches(msg, km.Backspace):
		if p.query != "" {
			q := []rune(p.query)
			p.query = string(q[:len(q)-1])
			m.refilter()
		}
	default:
		if msg.Type == tea.KeyRunes && len(msg.Runes) > 0 && !msg.Alt {
			p.query += strings.TrimSpace(string(msg.Runes))
			m.refilter()
		}
	}
	m.scrollPicker()
	m.layout()
	m.followCursorWithForce(true)
}

// pickerChoice is the selected tag, or the query itself when nothing in the
// taxonomy matches it.
func (m Model) pickerChoice() (string, bool) {
	p := m.picker
	if len(p.items) > 0 {
		return p.items[clampInt(p.selected, 0, len(p.items)-1)], true
	}
	if q := strings.ToUpper(p.query); q != "" {
		return q, true
	}
	return "", false
}

func (m *Model) refilter() {
	m.picker.items = m.table.Filter(m.picker.query)
	m.picker.selected = 0
	m.picker.offset = 0
}

func (m *Model) scrollPicker() {
	p := &m.picker
	rows := m.pickerListRows()
	if p.selected < p.offset {
		p.offset = p.selected
	}
	if p.selected >= p.offset+rows {
		p.offset = p.selected - rows + 1
	}
	p.offset = clampInt(p.offset, 0, max(len(p.items)-rows, 0))
}

// pickerListRows is the number of list rows, at least one so an empty
// result can be shown.
func (m Model) pickerListRows() int {
	return max(min(m.cfg.PickerMaxRows, len(m.picker.items)), 1)
}

// pickerHeight counts the query row and the list rows, never leaving the
// document without at least one row when there is room for it.
func (m Model) pickerHeight() int {
	h := 1 + m.pickerListRows()
	if avail := m.height - 2; h > avail {
		h = max(avail, 0)
	}
	return h
}

func (m Model) renderPicker() []string {
	st := m.cfg.Style
	p := m.picker
	h := m.pickerHeight()
	if h == 0 {
		return nil
	}

	word := p.target.Token.Word
	out := make([]string, 0, h)
	out = append(out, st.PickerQuery.Render(m.fitWidth(fmt.Sprintf("tag %s: %s", word, p.query))))

	if len(p.items) == 0 {
		line := "no matching tags"
		if p.query != "" {
			line = fmt.Sprintf("enter applies %s", strings.ToUpper(p.query))
		}
		if len(out) < h {
			out = append(out, st.PickerItem.Render(m.fitWidth("  "+line)))
		}
		return out
	}

	tagWidth := 0
	for _, tag := range p.items {
		tagWidth = max(tagWidth, runewidth.StringWidth(tag))
	}
	for i := p.offset; i < len(p.items) && len(out) < h; i++ {
		tag := p.items[i]
		group := ""
		if g, ok := m.table.GroupOf(tag); ok {
			group = g.Name
		}
		line := "  " + runewidth.FillRight(tag, tagWidth) + "  " + group
		style := st.PickerItem
		if i == p.selected {
			style = st.PickerSelected
		}
		out = append(out, style.Render(m.fitWidth(line)))
	}
	return out
}

// fitWidth truncates or pads s to the editor width.
func (m Model) fitWidth(s string) string {
	if m.width <= 0 {
		return s
	}
	return runewidth.FillRight(runewidth.Truncate(s, m.width, "…"), m.width)
}
