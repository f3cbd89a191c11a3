package effects

import (
	"fmt"
	"io"
	"strings"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

// TextRenderer dumps the board as plain text: '#' for settled cells, '@' for
// the falling piece and '.' for empty cells, followed by a status line.
type TextRenderer struct {
	w io.Writer
}

// NewTextRenderer creates a renderer writing to w.
func NewTextRenderer(w io.Writer) *TextRenderer {
	return &TextRenderer{w: w}
}

// Draw writes one frame. Write errors are dropped.
func (r *TextRenderer) Draw(s tetris.Snapshot) {
	//nolint:errcheck // fire and forget
	io.WriteString(r.w, FormatSnapshot(s))
}

// FormatSnapshot renders a snapshot the way TextRenderer draws it.
func FormatSnapshot(s tetris.Snapshot) string {
	rows := make([][]byte, len(s.Board))
	for y, row := range s.Board {
		rows[y] = make([]byte, len(row))
		for x, c := range row {
			if c == core.ColorDefault {
				rows[y][x] = '.'
			} else {
				rows[y][x] = '#'
			}
		}
	}
	if s.Status != tetris.StatusGameOver {
		for _, p := range s.Current.Cells() {
			if p.Y >= 0 && p.Y < len(rows) && p.X >= 0 && p.X < len(rows[p.Y]) {
				rows[p.Y][p.X] = '@'
			}
		}
	}

	var sb strings.Builder
	for _, row := range rows {
		sb.Write(row)
		sb.WriteByte('\n')
	}
	fmt.Fprintf(&sb, "status=%s score=%d level=%d lines=%d next=%s\n",
		s.Status, s.Score, s.Level, s.Lines, s.Next.Kind)
	return sb.String()
}
