package boundary

import (
	"fmt"
	"strings"

	"github.com/iw2rmb/tagpad/tagtext"
)

// RunPos addresses a byte inside one run of a styled document.
type RunPos struct {
	Run    int
	Offset int
}

// Flat is a sequence of text runs flattened into a single string, with the
// mapping needed to translate offsets back into run coordinates.
type Flat struct {
	Text   string
	starts []int
}

// Flatten concatenates runs and records where each one starts.
func Flatten(runs []string) Flat {
	starts := make([]int, len(runs))
	var sb strings.Builder
	for i, r := range runs {
		starts[i] = sb.Len()
		sb.WriteString(r)
	}
	return Flat{Text: sb.String(), starts: starts}
}

func (f Flat) Len() int { return len(f.starts) }

func (f Flat) runLen(i int) int {
	if i == len(f.starts)-1 {
		return len(f.Text) - f.starts[i]
	}
	return f.starts[i+1] - f.starts[i]
}

// Offset converts a run position into an offset in Text. It panics when p
// does not address a byte (or the end) of an existing run.
func (f Flat) Offset(p RunPos) int {
	if p.Run < 0 || p.Run >= len(f.starts) || p.Offset < 0 || p.Offset > f.runLen(p.Run) {
		panic(fmt.Sprintf("boundary: run position %+v out of range", p))
	}
	return f.starts[p.Run] + p.Offset
}

// Pos converts an offset in Text back into a run position.
//
// An offset on the boundary between two runs belongs to the start of the
// later run, unless left is set, in which case it belongs to the end of the
// earlier one. Empty runs are skipped.
func (f Flat) Pos(off int, left bool) RunPos {
	if off < 0 || off > len(f.Text) {
		panic(fmt.Sprintf("boundary: offset %d out of range [0, %d]", off, len(f.Text)))
	}
	first, last := -1, -1
	for i, start := range f.starts {
		n := f.runLen(i)
		if n == 0 {
			continue
		}
		if first < 0 {
			first = i
		}
		last = i
		if left && off > start && off <= start+n {
			return RunPos{Run: i, Offset: off - start}
		}
		if !left && off >= start && off < start+n {
			return RunPos{Run: i, Offset: off - start}
		}
	}
	switch {
	case first < 0:
		return RunPos{}
	case off == 0:
		return RunPos{Run: first}
	default:
		return RunPos{Run: last, Offset: off - f.starts[last]}
	}
}

// LocateRuns resolves the token under caret in a styled document. The result
// is the token's first byte and its end, both in run coordinates.
func LocateRuns(runs []string, caret RunPos, form tagtext.Form) (start, end RunPos) {
	f := Flatten(runs)
	s := Locate(f.Text, f.Offset(caret), form)
	return f.Pos(s.Start, false), f.Pos(s.End(), true)
}
