package editor

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/tagpad/buffer"
	graphemeutil "github.com/iw2rmb/tagpad/internal/grapheme"
	"github.com/iw2rmb/tagpad/tagtext"
	"github.com/iw2rmb/tagpad/taxonomy"
)

// Mode selects how printable keys are interpreted.
type Mode uint8

const (
	// ModeTag treats printable keys as commands.
	ModeTag Mode = iota
	// ModeInsert types printable keys into the document.
	ModeInsert
)

func (m Mode) String() string {
	if m == ModeInsert {
		return "insert"
	}
	return "tag"
}

// Model is a Bubble Tea component that renders and retags a Display-form
// buffer.
type Model struct {
	cfg   Config
	buf   *buffer.Buffer
	table taxonomy.Table

	focused bool
	mode    Mode
	picker  pickerState
	status  string

	width, height int
	viewport      viewport.Model
	xOffset       int

	savedTextVersion uint64
	lastBufVersion   uint64
	lastCursor       buffer.Pos
}

func New(cfg Config) Model {
	cfg.KeyMap = normalizeKeyMap(cfg.KeyMap)
	cfg.PickerKeyMap = normalizePickerKeyMap(cfg.PickerKeyMap)
	cfg.PickerMaxRows = normalizePickerMaxRows(cfg.PickerMaxRows)

	text := cfg.Codec.Convert(cfg.Text, cfg.Form, tagtext.Display)
	table := cfg.Taxonomy
	if table.IsZero() {
		table = taxonomy.Default()
	}

	m := Model{
		cfg:      cfg,
		buf:      buffer.New(text, tagtext.Display, buffer.Options{Codec: cfg.Codec}),
		table:    table,
		focused:  true,
		viewport: viewport.New(0, 0),
	}
	m.savedTextVersion = m.buf.TextVersion()
	m.lastBufVersion = m.buf.Version()
	m.lastCursor = m.buf.Cursor()
	m.rebuildContent()
	return m
}

func (m Model) Buffer() *buffer.Buffer { return m.buf }

func (m Model) Mode() Mode { return m.mode }

// Dirty reports whether the text changed since load or the last SavedMsg.
func (m Model) Dirty() bool { return m.buf.TextVersion() != m.savedTextVersion }

// StorageText returns the document in Storage form.
func (m Model) StorageText() string {
	return m.cfg.Codec.Convert(m.buf.Text(), tagtext.Display, tagtext.Storage)
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) SetSize(width, height int) Model {
	m.width = max(width, 0)
	m.height = max(height, 0)
	m.layout()
	m.rebuildContent()
	m.followCursorWithForce(true)
	return m
}

func (m Model) Focus() Model {
	if !m.focused {
		m.focused = true
		m.rebuildContent()
		m.followCursorWithForce(true)
	}
	return m
}

func (m Model) Blur() Model {
	if m.focused {
		m.focused = false
		m.picker = pickerState{}
		m.layout()
		m.rebuildContent()
	}
	return m
}

func (m Model) Focused() bool { return m.focused }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case tea.MouseMsg:
		m, cmd = m.updateMouse(msg)
		// Don't force-follow the cursor here; allow manual scrolling via mouse wheel.
		m.syncFromBuffer()
		return m, cmd
	case tea.KeyMsg:
		m, cmd = m.updateKey(msg)
	case SavedMsg:
		m.applySaved(msg)
	case AutoTagResultMsg:
		m.applyAutoTag(msg)
	case StatusMsg:
		m.status = msg.Text
	}

	if m.syncFromBuffer() {
		m.followCursorWithForce(true)
	}
	return m, cmd
}

func (m Model) View() string {
	parts := []string{m.viewport.View()}
	if m.picker.visible {
		parts = append(parts, m.renderPicker()...)
	}
	parts = append(parts, m.renderStatus())
	return strings.Join(parts, "\n")
}

// layout splits the height between the document, the picker and the one-row
// status line.
func (m *Model) layout() {
	h := m.height - 1
	if m.picker.visible {
		h -= m.pickerHeight()
	}
	m.viewport.Width = m.width
	m.viewport.Height = max(h, 0)
}

// syncFromBuffer rebuilds content when the host or a key handler mutated the
// buffer, and reports whether the cursor moved.
func (m *Model) syncFromBuffer() (cursorChanged bool) {
	if m.buf == nil {
		return false
	}
	ver := m.buf.Version()
	cur := m.buf.Cursor()
	if ver == m.lastBufVersion && cur == m.lastCursor {
		return false
	}
	cursorChanged = cur != m.lastCursor
	m.lastBufVersion = ver
	m.lastCursor = cur
	m.rebuildContent()
	if m.cfg.OnChange != nil {
		m.cfg.OnChange(buildChangeEvent(m.buf))
	}
	return cursorChanged
}

func (m *Model) rebuildContent() {
	m.viewport.SetContent(m.renderContent())
}

func (m *Model) followCursorWithForce(force bool) {
	if m.buf == nil {
		return
	}
	cur := m.buf.Cursor()

	if w := m.contentWidth(); w > 0 {
		cell := cellsBefore(graphemeutil.Split(m.buf.Line(cur.Row)), cur.GraphemeCol, m.cfg.TabWidth)
		x := m.xOffset
		switch {
		case cell < x:
			x = cell
		case cell >= x+w:
			x = cell - w + 1
		}
		if x != m.xOffset {
			m.xOffset = x
			m.rebuildContent()
		}
	}

	h := m.viewport.Height - m.viewport.Style.GetVerticalFrameSize()
	if h <= 0 || !force {
		return
	}
	y := m.viewport.YOffset
	if cur.Row < y {
		m.viewport.SetYOffset(cur.Row)
		return
	}
	if cur.Row >= y+h {
		m.viewport.SetYOffset(cur.Row - h + 1)
	}
}

func (m *Model) applySaved(msg SavedMsg) {
	if msg.Err != nil {
		m.status = "save failed: " + msg.Err.Error()
		return
	}
	m.savedTextVersion = msg.TextVersion
	m.status = "saved"
	if msg.Path != "" {
		m.status += " " + msg.Path
	}
}

func (m *Model) applyAutoTag(msg AutoTagResultMsg) {
	if msg.Err != nil {
		m.status = "auto-tag failed: " + msg.Err.Error()
		return
	}
	m.picker = pickerState{}
	m.layout()
	m.buf.SetText(m.cfg.Codec.ToDisplay(msg.Text), tagtext.Display)
	m.status = "auto-tagged"
}
