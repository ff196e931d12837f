package buffer

import "github.com/iw2rmb/tagpad/tagtext"

// ChangeKind identifies which operation produced a change.
type ChangeKind uint8

const (
	ChangeEdit ChangeKind = iota
	ChangeRetag
	ChangeConvert
	ChangeReplace
)

func (k ChangeKind) String() string {
	switch k {
	case ChangeEdit:
		return "edit"
	case ChangeRetag:
		return "retag"
	case ChangeConvert:
		return "convert"
	case ChangeReplace:
		return "replace"
	default:
		return "unknown"
	}
}

// AppliedEdit describes one effective edit in a change transaction.
type AppliedEdit struct {
	RangeBefore Range
	RangeAfter  Range
	InsertText  string
	DeletedText string
}

// Change is a normalized, versioned mutation payload.
type Change struct {
	Kind              ChangeKind
	VersionBefore     uint64
	VersionAfter      uint64
	TextVersionBefore uint64
	TextVersionAfter  uint64
	FormBefore        tagtext.Form
	FormAfter         tagtext.Form
	CursorBefore      Pos
	CursorAfter       Pos
	AppliedEdits      []AppliedEdit
}

type changeBuilder struct {
	kind              ChangeKind
	versionBefore     uint64
	textVersionBefore uint64
	formBefore        tagtext.Form
	cursorBefore      Pos
	appliedEdits      []AppliedEdit
}

// LastChange returns the most recent effective text change.
func (b *Buffer) LastChange() (Change, bool) {
	if !b.hasLastChange {
		return Change{}, false
	}
	return cloneChange(b.lastChange), true
}

func cloneChange(in Change) Change {
	out := in
	out.AppliedEdits = append([]AppliedEdit(nil), in.AppliedEdits...)
	return out
}

func (b *Buffer) beginChange(kind ChangeKind) changeBuilder {
	return changeBuilder{
		kind:              kind,
		versionBefore:     b.version,
		textVersionBefore: b.textVersion,
		formBefore:        b.form,
		cursorBefore:      b.cursor,
	}
}

func (cb *changeBuilder) addAppliedEdit(edit AppliedEdit) {
	edit.RangeBefore = NormalizeRange(edit.RangeBefore)
	edit.RangeAfter = NormalizeRange(edit.RangeAfter)
	cb.appliedEdits = append(cb.appliedEdits, edit)
}

func (b *Buffer) commitChange(cb changeBuilder) {
	if b.textVersion == cb.textVersionBefore {
		return
	}
	b.lastChange = Change{
		Kind:              cb.kind,
		VersionBefore:     cb.versionBefore,
		VersionAfter:      b.version,
		TextVersionBefore: cb.textVersionBefore,
		TextVersionAfter:  b.textVersion,
		FormBefore:        cb.formBefore,
		FormAfter:         b.form,
		CursorBefore:      cb.cursorBefore,
		CursorAfter:       b.cursor,
		AppliedEdits:      append([]AppliedEdit(nil), cb.appliedEdits...),
	}
	b.hasLastChange = true
}

func replacementAppliedEdit(beforeText, afterText string) (AppliedEdit, bool) {
	if beforeText == afterText {
		return AppliedEdit{}, false
	}
	return AppliedEdit{
		RangeBefore: fullDocumentRange(beforeText),
		RangeAfter:  fullDocumentRange(afterText),
		InsertText:  afterText,
		DeletedText: beforeText,
	}, true
}

func fullDocumentRange(text string) Range {
	lines := splitLines(text)
	lastRow := len(lines) - 1
	return Range{
		Start: Pos{Row: 0, GraphemeCol: 0},
		End:   Pos{Row: lastRow, GraphemeCol: len(lines[lastRow])},
	}
}
