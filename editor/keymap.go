package editor

import (
	"reflect"

	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines the editor key bindings.
//
// Bindings must be portable across terminals (ctrl/alt fallbacks).
type KeyMap struct {
	Left, Right, Up, Down key.Binding
	TokenLeft, TokenRight key.Binding
	Home, End             key.Binding
	DocStart, DocEnd      key.Binding
	PageUp, PageDown      key.Binding

	// Tag mode.
	Pick     key.Binding
	ClearTag key.Binding
	Insert   key.Binding

	// Insert mode.
	Normal            key.Binding
	Backspace, Delete key.Binding
	Enter             key.Binding

	Save    key.Binding
	AutoTag key.Binding
	Quit    key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left:  key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "left")),
		Right: key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "right")),
		Up:    key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
		Down:  key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),

		// Terminals vary between alt+arrows and ctrl+arrows.
		TokenLeft:  key.NewBinding(key.WithKeys("alt+left", "ctrl+left"), key.WithHelp("alt/ctrl+←", "previous token")),
		TokenRight: key.NewBinding(key.WithKeys("alt+right", "ctrl+right"), key.WithHelp("alt/ctrl+→", "next token")),

		Home:     key.NewBinding(key.WithKeys("home", "ctrl+a"), key.WithHelp("home", "line start")),
		End:      key.NewBinding(key.WithKeys("end", "ctrl+e"), key.WithHelp("end", "line end")),
		DocStart: key.NewBinding(key.WithKeys("ctrl+home"), key.WithHelp("ctrl+home", "document start")),
		DocEnd:   key.NewBinding(key.WithKeys("ctrl+end"), key.WithHelp("ctrl+end", "document end")),
		PageUp:   key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "page up")),
		PageDown: key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdown", "page down")),

		Pick:     key.NewBinding(key.WithKeys("t", "enter"), key.WithHelp("t", "pick tag")),
		ClearTag: key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "clear tag")),
		Insert:   key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "insert mode")),

		Normal:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "tag mode")),
		Backspace: key.NewBinding(key.WithKeys("backspace", "ctrl+h"), key.WithHelp("backspace", "delete left")),
		Delete:    key.NewBinding(key.WithKeys("delete"), key.WithHelp("del", "delete right")),
		Enter:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "new sentence")),

		Save:    key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
		AutoTag: key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "auto-tag")),
		Quit:    key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

// PickerKeyMap defines bindings active while the tag picker is open. Any
// other printable key edits the filter query.
type PickerKeyMap struct {
	Accept    key.Binding
	Dismiss   key.Binding
	Next      key.Binding
	Prev      key.Binding
	Backspace key.Binding
}

func DefaultPickerKeyMap() PickerKeyMap {
	return PickerKeyMap{
		Accept:    key.NewBinding(key.WithKeys("enter", "tab"), key.WithHelp("enter", "apply tag")),
		Dismiss:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close picker")),
		Next:      key.NewBinding(key.WithKeys("down", "ctrl+n"), key.WithHelp("↓", "next tag")),
		Prev:      key.NewBinding(key.WithKeys("up", "ctrl+p"), key.WithHelp("↑", "previous tag")),
		Backspace: key.NewBinding(key.WithKeys("backspace", "ctrl+h"), key.WithHelp("backspace", "edit filter")),
	}
}

func normalizeKeyMap(km KeyMap) KeyMap {
	if reflect.DeepEqual(km, KeyMap{}) {
		return DefaultKeyMap()
	}
	return km
}

func normalizePickerKeyMap(km PickerKeyMap) PickerKeyMap {
	if reflect.DeepEqual(km, PickerKeyMap{}) {
		return DefaultPickerKeyMap()
	}
	return km
}
