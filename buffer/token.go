package buffer

import (
	"errors"
	"strings"

	"github.com/iw2rmb/tagpad/boundary"
	"github.com/iw2rmb/tagpad/internal/grapheme"
	"github.com/iw2rmb/tagpad/tagtext"
)

var (
	// ErrStaleToken is returned when a TokenRef was taken against an older
	// version of the text.
	ErrStaleToken = errors.New("buffer: token reference is stale")
	// ErrNoToken is returned when the cursor sits between two separators.
	ErrNoToken = errors.New("buffer: no token at position")
)

// TokenRef is a token located against one specific version of the text.
type TokenRef struct {
	Span boundary.Span
	// Range covers every grapheme cluster the span touches. A separator that
	// clusters with the next character (a space before a combining mark)
	// falls inside Range but outside Span.
	Range       Range
	Text        string
	Token       tagtext.Token
	TextVersion uint64
}

func (r TokenRef) IsEmpty() bool { return r.Span.IsEmpty() }

// TokenAt resolves the token that contains or immediately precedes p.
func (b *Buffer) TokenAt(p Pos) TokenRef {
	p = b.clampPos(p)
	text := b.Text()
	span := boundary.Locate(text, b.posToByteOffset(p), b.form)
	raw := span.Slice(text)
	return TokenRef{
		Span: span,
		Range: Range{
			Start: b.byteOffsetToPosFloor(span.Start),
			End:   b.byteOffsetToPosCeil(span.End()),
		},
		Text:        raw,
		Token:       tagtext.ParseToken(raw, b.form),
		TextVersion: b.textVersion,
	}
}

func (b *Buffer) TokenAtCursor() TokenRef { return b.TokenAt(b.cursor) }

// Retag replaces the tag of the token under the cursor.
func (b *Buffer) Retag(tag string) error {
	return b.RetagToken(b.TokenAtCursor(), tag)
}

// RetagToken replaces the tag of ref. Every byte outside ref's span is left
// untouched. A ref taken before the last text change is rejected with
// ErrStaleToken.
func (b *Buffer) RetagToken(ref TokenRef, tag string) error {
	if ref.TextVersion != b.textVersion {
		return ErrStaleToken
	}
	if ref.IsEmpty() {
		return ErrNoToken
	}

	// Spans never cross a sentence separator, so the splice stays on one
	// line. It works on bytes: Range may reach into a separator's cluster.
	row := ref.Range.Start.Row
	lineStart := b.posToByteOffset(Pos{Row: row})
	line := strings.Join(b.lines[row], "")
	local := boundary.Span{Start: ref.Span.Start - lineStart, Len: ref.Span.Len}
	next := boundary.ReplaceTag(line, local, tag, b.form)
	if next == line {
		return nil
	}
	rebuilt := next[local.Start : local.End()+len(next)-len(line)]

	change := b.beginChange(ChangeRetag)
	cur := b.cursor
	lines := append([][]string(nil), b.lines...)
	lines[row] = grapheme.Split(next)
	b.lines = lines
	newEnd := b.byteOffsetToPosCeil(ref.Span.Start + len(rebuilt))
	applied := AppliedEdit{
		RangeBefore: ref.Range,
		RangeAfter:  Range{Start: ref.Range.Start, End: newEnd},
		InsertText:  rebuilt,
		DeletedText: ref.Text,
	}
	b.cursor = b.clampPos(shiftCursor(cur, ref.Range, newEnd))
	b.version++
	b.textVersion++
	change.addAppliedEdit(applied)
	b.commitChange(change)
	return nil
}

// shiftCursor keeps cur in place relative to a single-line replacement of
// old that now ends at newEnd.
func shiftCursor(cur Pos, old Range, newEnd Pos) Pos {
	if cur.Row != old.Start.Row || cur.GraphemeCol <= old.Start.GraphemeCol {
		return cur
	}
	if cur.GraphemeCol >= old.End.GraphemeCol {
		cur.GraphemeCol += newEnd.GraphemeCol - old.End.GraphemeCol
		return cur
	}
	if cur.GraphemeCol > newEnd.GraphemeCol {
		cur.GraphemeCol = newEnd.GraphemeCol
	}
	return cur
}

// Convert re-encodes the whole document into form. The cursor stays on the
// same sentence, at the start of the token with the same index when the
// sentence still has one.
func (b *Buffer) Convert(form tagtext.Form) {
	if form == b.form {
		return
	}
	before := b.Text()
	row, tokIdx := b.cursorTokenIndex()
	if form == tagtext.Display {
		row = nonBlankRowsBefore(b.lines, row)
	}

	change := b.beginChange(ChangeConvert)
	after := b.opt.Codec.Convert(before, b.form, form)
	b.lines = splitLines(after)
	b.form = form
	b.cursor = b.tokenStart(row, tokIdx)
	b.version++
	if edit, ok := replacementAppliedEdit(before, after); ok {
		b.textVersion++
		change.addAppliedEdit(edit)
	}
	b.commitChange(change)
}

func (b *Buffer) cursorTokenIndex() (row, idx int) {
	row = b.cursor.Row
	line := b.lines[row]
	prefix := strings.Join(line[:b.cursor.GraphemeCol], "")
	return row, strings.Count(prefix, b.form.TokenDelimiter())
}

func (b *Buffer) tokenStart(row, idx int) Pos {
	if row >= len(b.lines) {
		row = len(b.lines) - 1
	}
	line := strings.Join(b.lines[row], "")
	delim := b.form.TokenDelimiter()
	off := 0
	for i := 0; i < idx; i++ {
		j := strings.Index(line[off:], delim)
		if j < 0 {
			break
		}
		off += j + len(delim)
	}
	p := b.byteOffsetToPosFloor(b.posToByteOffset(Pos{Row: row}) + off)
	return b.clampPos(p)
}

func nonBlankRowsBefore(lines [][]string, row int) int {
	n := 0
	for i := 0; i < row && i < len(lines); i++ {
		if strings.TrimSpace(strings.Join(lines[i], "")) != "" {
			n++
		}
	}
	return n
}
