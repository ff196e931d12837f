package buffer

import (
	"testing"

	"github.com/iw2rmb/tagpad/tagtext"
)

func TestBuffer_MoveGrapheme_BoundsAndLineCrossing(t *testing.T) {
	b := New("ab\néd", tagtext.Display, Options{})

	b.Move(Move{Unit: MoveGrapheme, Dir: DirLeft})
	if got := b.Cursor(); got != (Pos{Row: 0, GraphemeCol: 0}) {
		t.Fatalf("cursor=%v, want (0,0)", got)
	}

	b.SetCursor(Pos{Row: 0, GraphemeCol: 2})
	b.Move(Move{Unit: MoveGrapheme, Dir: DirRight})
	if got := b.Cursor(); got != (Pos{Row: 1, GraphemeCol: 0}) {
		t.Fatalf("cursor=%v, want (1,0)", got)
	}

	b.Move(Move{Unit: MoveGrapheme, Dir: DirRight})
	if got := b.Cursor(); got != (Pos{Row: 1, GraphemeCol: 1}) {
		t.Fatalf("cursor=%v, want (1,1) past the combined cluster", got)
	}

	b.SetCursor(Pos{Row: 1, GraphemeCol: 0})
	b.Move(Move{Unit: MoveGrapheme, Dir: DirLeft})
	if got := b.Cursor(); got != (Pos{Row: 0, GraphemeCol: 2}) {
		t.Fatalf("cursor=%v, want (0,2)", got)
	}
}

func TestBuffer_MoveToken_Display(t *testing.T) {
	b := New("The_DT cat_NN sat_VB\nOk_UH .", tagtext.Display, Options{})

	b.SetCursor(Pos{Row: 0, GraphemeCol: 9})
	b.Move(Move{Unit: MoveToken, Dir: DirRight})
	if got := b.Cursor(); got != (Pos{Row: 0, GraphemeCol: 14}) {
		t.Fatalf("cursor=%v, want (0,14)", got)
	}

	b.Move(Move{Unit: MoveToken, Dir: DirRight})
	if got := b.Cursor(); got != (Pos{Row: 1, GraphemeCol: 0}) {
		t.Fatalf("cursor=%v, want next sentence", got)
	}

	b.Move(Move{Unit: MoveToken, Dir: DirLeft})
	if got := b.Cursor(); got != (Pos{Row: 0, GraphemeCol: 14}) {
		t.Fatalf("cursor=%v, want last token of previous sentence", got)
	}

	b.Move(Move{Unit: MoveToken, Dir: DirLeft})
	b.Move(Move{Unit: MoveToken, Dir: DirLeft})
	if got := b.Cursor(); got != (Pos{Row: 0, GraphemeCol: 0}) {
		t.Fatalf("cursor=%v, want (0,0)", got)
	}

	v := b.Version()
	b.Move(Move{Unit: MoveToken, Dir: DirLeft})
	if b.Version() != v {
		t.Fatalf("no-op move bumped version")
	}
}

func TestBuffer_TokenStarts_Storage(t *testing.T) {
	b := New("a/DT, ,/,, b/NN", tagtext.Storage, Options{})
	got := b.tokenStarts(0)
	want := []int{0, 6, 11}
	if len(got) != len(want) {
		t.Fatalf("starts=%v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("starts=%v, want %v", got, want)
		}
	}
}

func TestBuffer_MoveLine_HomeEndAndVerticalClamp(t *testing.T) {
	b := New("hello\nw\nworld", tagtext.Display, Options{})

	b.SetCursor(Pos{Row: 0, GraphemeCol: 3})
	b.Move(Move{Unit: MoveLine, Dir: DirEnd})
	if got := b.Cursor(); got != (Pos{Row: 0, GraphemeCol: 5}) {
		t.Fatalf("cursor=%v, want (0,5)", got)
	}

	b.Move(Move{Unit: MoveLine, Dir: DirHome})
	if got := b.Cursor(); got != (Pos{Row: 0, GraphemeCol: 0}) {
		t.Fatalf("cursor=%v, want (0,0)", got)
	}

	b.SetCursor(Pos{Row: 2, GraphemeCol: 5})
	b.Move(Move{Unit: MoveLine, Dir: DirUp})
	if got := b.Cursor(); got != (Pos{Row: 1, GraphemeCol: 1}) {
		t.Fatalf("cursor=%v, want (1,1)", got)
	}
}

func TestBuffer_MoveDoc_StartEnd(t *testing.T) {
	b := New("a\nbc", tagtext.Display, Options{})

	b.SetCursor(Pos{Row: 1, GraphemeCol: 1})
	b.Move(Move{Unit: MoveDoc, Dir: DirHome})
	if got := b.Cursor(); got != (Pos{Row: 0, GraphemeCol: 0}) {
		t.Fatalf("cursor=%v, want (0,0)", got)
	}

	b.Move(Move{Unit: MoveDoc, Dir: DirEnd})
	if got := b.Cursor(); got != (Pos{Row: 1, GraphemeCol: 2}) {
		t.Fatalf("cursor=%v, want (1,2)", got)
	}
}
