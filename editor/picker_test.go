package editor

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/go-cmp/cmp"

	"github.com/iw2rmb/tagpad/buffer"
	"github.com/iw2rmb/tagpad/taxonomy"
)

func newPickerModel(t *testing.T) Model {
	t.Helper()
	m := New(Config{Text: "The_DT cat_NN sat_VB"})
	m = m.SetSize(40, 14)
	m.Buffer().SetCursor(buffer.Pos{Row: 0, GraphemeCol: 8})
	m, _ = m.Update(nil)
	m = typeRunes(m, "t")
	if !m.PickerOpen() {
		t.Fatalf("picker did not open")
	}
	return m
}

func TestPicker_PreselectsCurrentTag(t *testing.T) {
	m := newPickerModel(t)
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if m.PickerOpen() {
		t.Fatalf("picker still open after accept")
	}
	if got, want := m.Buffer().Text(), "The_DT cat_NN sat_VB"; got != want {
		t.Fatalf("text: got %q, want %q", got, want)
	}
	if m.Dirty() {
		t.Fatalf("re-applying the current tag must not dirty the model")
	}
}

func TestPicker_FilterAndAccept(t *testing.T) {
	m := newPickerModel(t)
	m = typeRunes(m, "vbd")
	if diff := cmp.Diff([]string{"VBD"}, m.PickerItems()); diff != "" {
		t.Fatalf("items mismatch (-want +got):\n%s", diff)
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	if got := len(m.PickerItems()); got != 6 {
		t.Fatalf("items after backspace: got %d, want 6 (%v)", got, m.PickerItems())
	}

	m = typeRunes(m, "d")
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if got, want := m.Buffer().Text(), "The_DT cat_VBD sat_VB"; got != want {
		t.Fatalf("text: got %q, want %q", got, want)
	}
	if got := m.Buffer().Cursor(); got != (buffer.Pos{Row: 0, GraphemeCol: 8}) {
		t.Fatalf("cursor moved by retag: %v", got)
	}
}

func TestPicker_Navigate(t *testing.T) {
	m := newPickerModel(t)
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if got, want := m.Buffer().Text(), "The_DT cat_NNS sat_VB"; got != want {
		t.Fatalf("text: got %q, want %q", got, want)
	}
}

func TestPicker_WrapsAround(t *testing.T) {
	m := newPickerModel(t)
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	items := m.PickerItems()
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	want := "The_DT cat_" + items[len(items)-1] + " sat_VB"
	if got := m.Buffer().Text(); got != want {
		t.Fatalf("text: got %q, want %q", got, want)
	}
}

func TestPicker_CustomTag(t *testing.T) {
	m := newPickerModel(t)
	m = typeRunes(m, "zz")
	if got := len(m.PickerItems()); got != 0 {
		t.Fatalf("items: got %d, want 0", got)
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if got, want := m.Buffer().Text(), "The_DT cat_ZZ sat_VB"; got != want {
		t.Fatalf("text: got %q, want %q", got, want)
	}
}

func TestPicker_Dismiss(t *testing.T) {
	m := newPickerModel(t)
	m = typeRunes(m, "vb")
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if m.PickerOpen() {
		t.Fatalf("picker still open after esc")
	}
	if got, want := m.Buffer().Text(), "The_DT cat_NN sat_VB"; got != want {
		t.Fatalf("text: got %q, want %q", got, want)
	}
}

func TestPicker_StaleTargetIsRejected(t *testing.T) {
	m := newPickerModel(t)
	m.Buffer().SetCursor(buffer.Pos{})
	m.Buffer().InsertText("so ")

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if got, want := m.Buffer().Text(), "so The_DT cat_NN sat_VB"; got != want {
		t.Fatalf("text: got %q, want %q", got, want)
	}
	if got := m.statusText(); !strings.Contains(got, "document changed") {
		t.Fatalf("status: got %q", got)
	}
}

func TestPicker_LayoutKeepsHeight(t *testing.T) {
	m := newPickerModel(t)
	if got := lipgloss.Height(m.View()); got != 14 {
		t.Fatalf("height with picker: got %d, want 14", got)
	}

	lines := viewLines(m)
	if got, want := lines[4], "tag cat:"; got != want {
		t.Fatalf("picker header: got %q, want %q", got, want)
	}
	if got, want := lines[5], "  NN    Noun"; got != want {
		t.Fatalf("first picker row: got %q, want %q", got, want)
	}
	if got, want := lines[len(lines)-1], "Ln 1, Col 9  cat_NN  (Noun)"; got != want {
		t.Fatalf("status: got %q, want %q", got, want)
	}
}

func TestPicker_UsesConfiguredTaxonomy(t *testing.T) {
	tbl := taxonomy.Table{Groups: []taxonomy.Group{
		{Name: "Noun", Prefixes: []string{"N"}, Tags: []string{"N", "NPL"}},
		{Name: "Verb", Prefixes: []string{"V"}, Tags: []string{"V"}},
	}}
	m := New(Config{Text: "cat_N", Taxonomy: tbl})
	m = m.SetSize(30, 8)
	m = typeRunes(m, "t")
	if diff := cmp.Diff([]string{"N", "NPL", "V"}, m.PickerItems()); diff != "" {
		t.Fatalf("items mismatch (-want +got):\n%s", diff)
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if got, want := m.Buffer().Text(), "cat_NPL"; got != want {
		t.Fatalf("text: got %q, want %q", got, want)
	}
}
