package editor

import (
	"fmt"
	"strings"

	"github.com/iw2rmb/tagpad/buffer"
	graphemeutil "github.com/iw2rmb/tagpad/internal/grapheme"
	"github.com/iw2rmb/tagpad/tagtext"
)

const maxIntVal = int(^uint(0) >> 1)

func (m *Model) renderContent() string {
	if m.buf == nil {
		return ""
	}

	lineCount := m.buf.LineCount()
	cursor := m.buf.Cursor()
	digitCount := 0
	if m.cfg.ShowLineNums {
		digitCount = gutterDigits(lineCount)
	}

	var tok buffer.Range
	hasTok := false
	if m.focused {
		if ref := m.buf.TokenAtCursor(); !ref.IsEmpty() {
			tok, hasTok = ref.Range, true
		}
	}

	left := max(m.xOffset, 0)
	right := maxIntVal
	if w := m.contentWidth(); w > 0 {
		right = left + w
	}

	out := make([]string, 0, lineCount)
	for row := 0; row < lineCount; row++ {
		var sb strings.Builder
		if m.cfg.ShowLineNums {
			numStyle := m.cfg.Style.LineNum
			if m.focused && row == cursor.Row {
				numStyle = m.cfg.Style.LineNumActive
			}
			sb.WriteString(numStyle.Render(fmt.Sprintf("%*d", digitCount, row+1)))
			sb.WriteString(m.cfg.Style.Gutter.Render(" "))
		}

		tokStart, tokEnd := -1, -1
		if hasTok && tok.Start.Row == row {
			tokStart, tokEnd = tok.Start.GraphemeCol, tok.End.GraphemeCol
		}
		cursorCol := -1
		if m.focused && row == cursor.Row {
			cursorCol = cursor.GraphemeCol
		}
		sb.WriteString(renderLine(m.cfg.Style, m.buf.Line(row), cursorCol, tokStart, tokEnd, left, right, m.cfg.TabWidth))
		out = append(out, sb.String())
	}
	return strings.Join(out, "\n")
}

// renderLine renders the cells [left, right) of one line. cursorCol is -1
// when the cursor is on another row; [tokStart, tokEnd) is the highlighted
// token.
func renderLine(st Style, line string, cursorCol, tokStart, tokEnd, left, right, tabWidth int) string {
	clusters := graphemeutil.Split(line)

	var sb strings.Builder
	cell := 0
	for i, g := range clusters {
		if cell >= right {
			break
		}
		w := graphemeCellWidth(g, cell, tabWidth)
		if cell < left {
			if cell+w > left {
				// Wide grapheme cut by the left edge: keep alignment with blanks.
				sb.WriteString(st.Text.Render(strings.Repeat(" ", cell+w-left)))
			}
			cell += w
			continue
		}
		if cell+w > right {
			sb.WriteString(st.Text.Render(strings.Repeat(" ", right-cell)))
			break
		}

		text := g
		if g == "\t" {
			text = strings.Repeat(" ", w)
		}
		style := st.Text
		switch {
		case i == cursorCol:
			style = st.Cursor
		case i >= tokStart && i < tokEnd:
			style = st.Token.Inherit(st.Text)
		}
		sb.WriteString(style.Render(text))
		cell += w
	}

	// Cursor at EOL is rendered as a 1-cell placeholder space.
	if cursorCol >= len(clusters) && cell >= left && cell < right {
		sb.WriteString(st.Cursor.Render(" "))
	}
	return sb.String()
}

func (m Model) gutterWidth() int {
	if !m.cfg.ShowLineNums {
		return 0
	}
	return gutterDigits(m.buf.LineCount()) + 1
}

// contentWidth is the number of text cells per row, or 0 when unsized.
func (m Model) contentWidth() int {
	w := m.viewport.Width - m.viewport.Style.GetHorizontalFrameSize() - m.gutterWidth()
	if w <= 0 {
		return 0
	}
	return w
}

func gutterDigits(lineCount int) int {
	if lineCount < 1 {
		lineCount = 1
	}
	return len(fmt.Sprintf("%d", lineCount))
}

// statusText is "Ln r, Col c  word_TAG  (Group)" followed by the mode,
// unsaved marker and the last message.
func (m Model) statusText() string {
	cur := m.buf.Cursor()
	parts := []string{fmt.Sprintf("Ln %d, Col %d", cur.Row+1, cur.GraphemeCol+1)}

	if ref := m.buf.TokenAtCursor(); !ref.IsEmpty() {
		parts = append(parts, m.cfg.Codec.FormatToken(ref.Token, tagtext.Display))
		if ref.Token.Tagged() {
			if g, ok := m.table.GroupOf(ref.Token.Tag); ok {
				parts = append(parts, "("+g.Name+")")
			}
		}
	}
	if m.mode == ModeInsert {
		parts = append(parts, "-- INSERT --")
	}
	if m.Dirty() {
		parts = append(parts, "[+]")
	}
	if m.status != "" {
		parts = append(parts, m.status)
	}
	return strings.Join(parts, "  ")
}

func (m Model) renderStatus() string {
	return m.cfg.Style.Status.Render(m.fitWidth(m.statusText()))
}
