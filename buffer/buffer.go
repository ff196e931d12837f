package buffer

import (
	"strings"

	"github.com/iw2rmb/tagpad/internal/grapheme"
	"github.com/iw2rmb/tagpad/tagtext"
)

type Options struct {
	// Codec converts the document between forms. The zero value uses
	// tagtext.DefaultPunctuation.
	Codec tagtext.Codec
}

// Buffer is the pure document state: tagged text in one form, and a cursor.
type Buffer struct {
	lines       [][]string
	form        tagtext.Form
	version     uint64
	textVersion uint64

	cursor Pos

	opt Options

	lastChange    Change
	hasLastChange bool
}

func New(text string, form tagtext.Form, opt Options) *Buffer {
	return &Buffer{
		lines:  splitLines(text),
		form:   form,
		cursor: Pos{Row: 0, GraphemeCol: 0},
		opt:    opt,
	}
}

func (b *Buffer) Text() string {
	if len(b.lines) == 0 {
		return ""
	}

	var sb strings.Builder
	for i, line := range b.lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(grapheme.Join(line))
	}
	return sb.String()
}

// Line returns the text of row, or "" when row is out of range.
func (b *Buffer) Line(row int) string {
	if row < 0 || row >= len(b.lines) {
		return ""
	}
	return grapheme.Join(b.lines[row])
}

func (b *Buffer) LineCount() int { return len(b.lines) }

func (b *Buffer) Form() tagtext.Form { return b.form }

func (b *Buffer) Codec() tagtext.Codec { return b.opt.Codec }

// Version increments on every observable change, including cursor moves.
func (b *Buffer) Version() uint64 { return b.version }

// TextVersion increments only when the text changes.
func (b *Buffer) TextVersion() uint64 { return b.textVersion }

func (b *Buffer) Cursor() Pos { return b.cursor }

func (b *Buffer) SetCursor(p Pos) {
	next := b.clampPos(p)
	if next == b.cursor {
		return
	}
	b.cursor = next
	b.version++
}

// SetText replaces the whole document, for example with the output of an
// auto-tagging pass, and records the form the new text is in.
func (b *Buffer) SetText(text string, form tagtext.Form) {
	before := b.Text()
	if before == text && form == b.form {
		return
	}
	change := b.beginChange(ChangeReplace)
	b.lines = splitLines(text)
	b.form = form
	b.cursor = b.clampPos(b.cursor)
	b.version++
	b.textVersion++
	if edit, ok := replacementAppliedEdit(before, text); ok {
		change.addAppliedEdit(edit)
	}
	b.commitChange(change)
}

func (b *Buffer) lineLen(row int) int {
	if row < 0 || row >= len(b.lines) {
		return 0
	}
	return len(b.lines[row])
}

func (b *Buffer) clampPos(p Pos) Pos {
	return ClampPos(p, len(b.lines), b.lineLen)
}

func splitLines(text string) [][]string {
	parts := strings.Split(text, "\n")
	lines := make([][]string, 0, len(parts))
	for _, s := range parts {
		lines = append(lines, grapheme.Split(s))
	}
	if len(lines) == 0 {
		lines = append(lines, nil)
	}
	return lines
}
