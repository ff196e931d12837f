package buffer

import "strings"

type MoveUnit int

const (
	MoveGrapheme MoveUnit = iota
	MoveToken
	MoveLine
	MoveDoc
)

type MoveDir int

const (
	DirLeft MoveDir = iota
	DirRight
	DirUp
	DirDown
	DirHome // line start (or doc start for MoveDoc)
	DirEnd  // line end (or doc end for MoveDoc)
)

type Move struct {
	Unit MoveUnit
	Dir  MoveDir
}

func (b *Buffer) Move(m Move) {
	next := b.clampPos(b.moveCursor(b.cursor, m))
	if next == b.cursor {
		return
	}
	b.cursor = next
	b.version++
}

func (b *Buffer) moveCursor(p Pos, m Move) Pos {
	switch m.Unit {
	case MoveGrapheme:
		return b.moveGrapheme(p, m.Dir)
	case MoveToken:
		return b.moveToken(p, m.Dir)
	case MoveLine:
		return b.moveLine(p, m.Dir)
	case MoveDoc:
		return b.moveDoc(p, m.Dir)
	default:
		return p
	}
}

func (b *Buffer) moveGrapheme(p Pos, dir MoveDir) Pos {
	row, col := p.Row, p.GraphemeCol
	lastRow := len(b.lines) - 1

	switch dir {
	case DirLeft:
		if row == 0 && col == 0 {
			return p
		}
		if col > 0 {
			return Pos{Row: row, GraphemeCol: col - 1}
		}
		prevRow := row - 1
		return Pos{Row: prevRow, GraphemeCol: len(b.lines[prevRow])}
	case DirRight:
		if row == lastRow && col == len(b.lines[lastRow]) {
			return p
		}
		if col < len(b.lines[row]) {
			return Pos{Row: row, GraphemeCol: col + 1}
		}
		return Pos{Row: row + 1, GraphemeCol: 0}
	default:
		return b.moveLine(p, dir)
	}
}

// moveToken jumps between token starts on the current sentence. Moving left
// from a token start, or right from the last token, crosses into the
// neighbouring sentence.
func (b *Buffer) moveToken(p Pos, dir MoveDir) Pos {
	starts := b.tokenStarts(p.Row)
	switch dir {
	case DirLeft:
		for i := len(starts) - 1; i >= 0; i-- {
			if starts[i] < p.GraphemeCol {
				return Pos{Row: p.Row, GraphemeCol: starts[i]}
			}
		}
		if p.Row > 0 {
			prev := b.tokenStarts(p.Row - 1)
			if len(prev) == 0 {
				return Pos{Row: p.Row - 1}
			}
			return Pos{Row: p.Row - 1, GraphemeCol: prev[len(prev)-1]}
		}
		return Pos{Row: p.Row}
	case DirRight:
		for _, s := range starts {
			if s > p.GraphemeCol {
				return Pos{Row: p.Row, GraphemeCol: s}
			}
		}
		if p.Row < len(b.lines)-1 {
			return Pos{Row: p.Row + 1}
		}
		return Pos{Row: p.Row, GraphemeCol: len(b.lines[p.Row])}
	default:
		return b.moveLine(p, dir)
	}
}

// tokenStarts returns the grapheme column of every non-empty token in row.
func (b *Buffer) tokenStarts(row int) []int {
	line := b.lines[row]
	delim := b.form.TokenDelimiter()
	var (
		out    []int
		off    int
		inTok  bool
		joined = strings.Join(line, "")
	)
	for col, cluster := range line {
		if strings.HasPrefix(joined[off:], delim) {
			inTok = false
		} else if !inTok && !b.insideDelimiter(joined, off, delim) {
			out = append(out, col)
			inTok = true
		}
		off += len(cluster)
	}
	return out
}

// insideDelimiter reports whether byte off continues a delimiter that
// started earlier in line.
func (b *Buffer) insideDelimiter(line string, off int, delim string) bool {
	for k := 1; k < len(delim) && k <= off; k++ {
		if strings.HasPrefix(line[off-k:], delim) {
			return true
		}
	}
	return false
}

func (b *Buffer) moveLine(p Pos, dir MoveDir) Pos {
	row, col := p.Row, p.GraphemeCol
	lastRow := len(b.lines) - 1

	switch dir {
	case DirHome:
		return Pos{Row: row, GraphemeCol: 0}
	case DirEnd:
		return Pos{Row: row, GraphemeCol: len(b.lines[row])}
	case DirUp:
		if row == 0 {
			return p
		}
		nr := row - 1
		return Pos{Row: nr, GraphemeCol: min(col, len(b.lines[nr]))}
	case DirDown:
		if row == lastRow {
			return p
		}
		nr := row + 1
		return Pos{Row: nr, GraphemeCol: min(col, len(b.lines[nr]))}
	default:
		return p
	}
}

func (b *Buffer) moveDoc(p Pos, dir MoveDir) Pos {
	lastRow := len(b.lines) - 1
	lastCol := len(b.lines[lastRow])

	switch dir {
	case DirHome, DirUp:
		return Pos{Row: 0, GraphemeCol: 0}
	case DirEnd, DirDown:
		return Pos{Row: lastRow, GraphemeCol: lastCol}
	default:
		return p
	}
}
