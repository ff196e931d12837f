package editor

import (
	"github.com/iw2rmb/tagpad/tagtext"
	"github.com/iw2rmb/tagpad/taxonomy"
)

const defaultPickerMaxRows = 8

// Config configures the editor Model.
type Config struct {
	// Text is the initial document, in Form. Storage documents are converted
	// to Display on load.
	Text  string
	Form  tagtext.Form
	Codec tagtext.Codec

	// Taxonomy feeds the tag picker and the status line. The zero value uses
	// taxonomy.Default().
	Taxonomy taxonomy.Table

	// Rendering options.
	ShowLineNums bool
	Style        Style
	TabWidth     int

	// KeyMap and PickerKeyMap fall back to their defaults when zero.
	KeyMap       KeyMap
	PickerKeyMap PickerKeyMap
	// PickerMaxRows caps the number of tags listed at once.
	PickerMaxRows int

	// OnChange is called after every observable buffer change, including
	// cursor moves.
	OnChange func(ChangeEvent)
}

func normalizePickerMaxRows(rows int) int {
	if rows <= 0 {
		return defaultPickerMaxRows
	}
	return rows
}
