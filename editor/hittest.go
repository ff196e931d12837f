package editor

import (
	"github.com/iw2rmb/tagpad/buffer"
	graphemeutil "github.com/iw2rmb/tagpad/internal/grapheme"
)

// ScreenToDoc maps viewport-local mouse coordinates to a document position.
func (m Model) ScreenToDoc(x, y int) buffer.Pos { return m.screenToDocPos(x, y) }

// screenToDocPos maps viewport-local mouse coordinates to a document position.
//
// Coordinates are in terminal cells relative to the top-left of the visible
// content. Gutter clicks map to column 0 and x/y are clamped into document
// bounds. A click on the right half of a wide grapheme lands before it.
func (m *Model) screenToDocPos(x, y int) buffer.Pos {
	if m.buf == nil {
		return buffer.Pos{}
	}
	row := clampInt(m.viewport.YOffset+y, 0, m.buf.LineCount()-1)

	visualX := x - m.gutterWidth()
	if visualX < 0 {
		return buffer.Pos{Row: row}
	}
	visualX += max(m.xOffset, 0)

	clusters := graphemeutil.Split(m.buf.Line(row))
	cell := 0
	for i, g := range clusters {
		w := graphemeCellWidth(g, cell, m.cfg.TabWidth)
		if visualX < cell+w {
			return buffer.Pos{Row: row, GraphemeCol: i}
		}
		cell += w
	}
	return buffer.Pos{Row: row, GraphemeCol: len(clusters)}
}

// DocToScreen maps a document position to viewport-local coordinates.
//
// ok is false when the position is scrolled out of view.
func (m Model) DocToScreen(pos buffer.Pos) (x int, y int, ok bool) {
	if m.buf == nil {
		return 0, 0, false
	}
	row := clampInt(pos.Row, 0, m.buf.LineCount()-1)
	clusters := graphemeutil.Split(m.buf.Line(row))
	col := clampInt(pos.GraphemeCol, 0, len(clusters))

	x = cellsBefore(clusters, col, m.cfg.TabWidth) - m.xOffset + m.gutterWidth()
	y = row - m.viewport.YOffset
	if y < 0 || y >= m.viewport.Height {
		return x, y, false
	}
	if x < m.gutterWidth() || x >= m.viewport.Width {
		return x, y, false
	}
	return x, y, true
}
