package buffer

import "unicode/utf8"

type OffsetClampMode uint8

const (
	OffsetError OffsetClampMode = iota
	OffsetClamp
)

// ConvertPolicy controls how out-of-range offsets and positions are treated.
// Newlines always count as one byte and one rune.
type ConvertPolicy struct {
	ClampMode OffsetClampMode
}

func (b *Buffer) PosFromByteOffset(off int, p ConvertPolicy) (Pos, bool) {
	off, ok := clampOffset(off, b.docByteLen(), p.ClampMode)
	if !ok {
		return Pos{}, false
	}
	return b.byteOffsetToPos(off)
}

func (b *Buffer) ByteOffsetFromPos(pos Pos, p ConvertPolicy) (int, bool) {
	pos, ok := b.normalizePosForMode(pos, p.ClampMode)
	if !ok {
		return 0, false
	}
	return b.posToByteOffset(pos), true
}

func (b *Buffer) PosFromRuneOffset(off int, p ConvertPolicy) (Pos, bool) {
	off, ok := clampOffset(off, b.docRuneLen(), p.ClampMode)
	if !ok {
		return Pos{}, false
	}
	return b.runeOffsetToPos(off)
}

func (b *Buffer) RuneOffsetFromPos(pos Pos, p ConvertPolicy) (int, bool) {
	pos, ok := b.normalizePosForMode(pos, p.ClampMode)
	if !ok {
		return 0, false
	}
	return b.posToRuneOffset(pos), true
}

func clampOffset(off, max int, mode OffsetClampMode) (int, bool) {
	switch mode {
	case OffsetError:
		if off < 0 || off > max {
			return 0, false
		}
		return off, true
	case OffsetClamp:
		if off < 0 {
			return 0, true
		}
		if off > max {
			return max, true
		}
		return off, true
	default:
		return 0, false
	}
}

func (b *Buffer) normalizePosForMode(pos Pos, mode OffsetClampMode) (Pos, bool) {
	switch mode {
	case OffsetError:
		clamped := b.clampPos(pos)
		if clamped != pos {
			return Pos{}, false
		}
		return pos, true
	case OffsetClamp:
		return b.clampPos(pos), true
	default:
		return Pos{}, false
	}
}

func (b *Buffer) docByteLen() int {
	total := 0
	for row, line := range b.lines {
		for _, cluster := range line {
			total += len(cluster)
		}
		if row < len(b.lines)-1 {
			total++
		}
	}
	return total
}

func (b *Buffer) docRuneLen() int {
	total := 0
	for row, line := range b.lines {
		for _, cluster := range line {
			total += utf8.RuneCountInString(cluster)
		}
		if row < len(b.lines)-1 {
			total++
		}
	}
	return total
}

func (b *Buffer) byteOffsetToPos(off int) (Pos, bool) {
	return b.offsetToPos(off, func(s string) int { return len(s) }, false)
}

func (b *Buffer) runeOffsetToPos(off int) (Pos, bool) {
	return b.offsetToPos(off, utf8.RuneCountInString, false)
}

// byteOffsetToPosFloor maps off to the cluster containing it when off falls
// inside a multi-byte cluster.
func (b *Buffer) byteOffsetToPosFloor(off int) Pos {
	p, _ := b.offsetToPos(off, func(s string) int { return len(s) }, true)
	return p
}

// byteOffsetToPosCeil maps off to the position after the cluster containing
// it when off falls inside a multi-byte cluster.
func (b *Buffer) byteOffsetToPosCeil(off int) Pos {
	p, ok := b.offsetToPos(off, func(s string) int { return len(s) }, true)
	if !ok && p.GraphemeCol < len(b.lines[p.Row]) {
		p.GraphemeCol++
	}
	return p
}

func (b *Buffer) offsetToPos(off int, size func(string) int, floor bool) (Pos, bool) {
	cur := 0

	for row, line := range b.lines {
		col := 0
		if off == cur {
			return Pos{Row: row, GraphemeCol: col}, true
		}

		for _, cluster := range line {
			next := cur + size(cluster)
			if off > cur && off < next {
				if floor {
					return Pos{Row: row, GraphemeCol: col}, false
				}
				return Pos{}, false
			}
			cur = next
			col++
			if off == cur {
				return Pos{Row: row, GraphemeCol: col}, true
			}
		}

		if row < len(b.lines)-1 {
			cur++
			if off == cur {
				return Pos{Row: row + 1, GraphemeCol: 0}, true
			}
		}
	}

	if floor {
		last := len(b.lines) - 1
		return Pos{Row: last, GraphemeCol: len(b.lines[last])}, false
	}
	return Pos{}, false
}

func (b *Buffer) posToByteOffset(pos Pos) int {
	return b.posToOffset(pos, func(s string) int { return len(s) })
}

func (b *Buffer) posToRuneOffset(pos Pos) int {
	return b.posToOffset(pos, utf8.RuneCountInString)
}

func (b *Buffer) posToOffset(pos Pos, size func(string) int) int {
	off := 0

	for row := 0; row < pos.Row; row++ {
		for _, cluster := range b.lines[row] {
			off += size(cluster)
		}
		off++
	}

	for col := 0; col < pos.GraphemeCol; col++ {
		off += size(b.lines[pos.Row][col])
	}

	return off
}
