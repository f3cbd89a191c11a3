package tetris

import (
	"strings"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Board is a fixed-size grid of cells. Each cell holds core.ColorDefault when
// empty or the fill identity of the piece that locked there.
type Board struct {
	rows  int
	cols  int
	cells [][]core.Color
}

// NewBoard creates an empty board with the given dimensions.
func NewBoard(rows, cols int) *Board {
	b := &Board{rows: rows, cols: cols}
	b.cells = make([][]core.Color, rows)
	for y := range b.cells {
		b.cells[y] = make([]core.Color, cols)
	}
	return b
}

// Rows returns the board height.
func (b *Board) Rows() int {
	return b.rows
}

// Cols returns the board width.
func (b *Board) Cols() int {
	return b.cols
}

// Cell returns the fill identity at (x, y), or ColorDefault outside the board.
func (b *Board) Cell(x, y int) core.Color {
	if x < 0 || x >= b.cols || y < 0 || y >= b.rows {
		return core.ColorDefault
	}
	return b.cells[y][x]
}

// SetCell writes a fill identity into a board cell. Out-of-range writes are ignored.
func (b *Board) SetCell(x, y int, c core.Color) {
	if x < 0 || x >= b.cols || y < 0 || y >= b.rows {
		return
	}
	b.cells[y][x] = c
}

// IsCellFilled reports whether (x, y) blocks a piece. Columns outside [0, cols)
// and rows at or below the floor count as filled. Rows above the board (y < 0)
// hold no content and never block.
func (b *Board) IsCellFilled(x, y int) bool {
	if x < 0 || x >= b.cols || y >= b.rows {
		return true
	}
	if y < 0 {
		return false
	}
	return b.cells[y][x] != core.ColorDefault
}

// CheckCollision reports whether any occupied cell of shape, translated by
// (x, y), lands on a wall, the floor, or a filled cell.
func (b *Board) CheckCollision(shape Shape, x, y int) bool {
	for dy, row := range shape {
		for dx, filled := range row {
			if filled && b.IsCellFilled(x+dx, y+dy) {
				return true
			}
		}
	}
	return false
}

// Place writes the piece's fill identity into every cell it occupies, in
// row-major order. If an occupied cell targets row 0 or above, Place stops at
// that cell and reports game over; cells written earlier in the pass remain.
// The first occupied cell visited is always in the piece's top row, so a
// placement that ends the game writes nothing.
func (b *Board) Place(p Piece) (gameOver bool) {
	for dy, row := range p.Shape {
		for dx, filled := range row {
			if !filled {
				continue
			}
			if p.Y+dy <= 0 {
				return true
			}
			b.SetCell(p.X+dx, p.Y+dy, p.Fill)
		}
	}
	return false
}

// ClearLines removes every full row, shifting the rows above it down and
// inserting empty rows at the top. Returns the number of rows removed.
func (b *Board) ClearLines() int {
	cleared := 0
	for y := b.rows - 1; y >= 0; {
		if !b.rowFull(y) {
			y--
			continue
		}
		// Shift everything above y down by one; the same index is then
		// examined again because it now holds the row that was above it.
		copy(b.cells[1:y+1], b.cells[:y])
		b.cells[0] = make([]core.Color, b.cols)
		cleared++
	}
	return cleared
}

func (b *Board) rowFull(y int) bool {
	for _, c := range b.cells[y] {
		if c == core.ColorDefault {
			return false
		}
	}
	return true
}

// FilledCount returns the number of non-empty cells.
func (b *Board) FilledCount() int {
	n := 0
	for _, row := range b.cells {
		for _, c := range row {
			if c != core.ColorDefault {
				n++
			}
		}
	}
	return n
}

// Grid returns a copy of the cell grid.
func (b *Board) Grid() [][]core.Color {
	out := make([][]core.Color, b.rows)
	for y, row := range b.cells {
		out[y] = append([]core.Color(nil), row...)
	}
	return out
}

// String renders the board with '#' for filled and '.' for empty cells.
func (b *Board) String() string {
	var sb strings.Builder
	sb.Grow((b.cols + 1) * b.rows)
	for y, row := range b.cells {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for _, c := range row {
			if c == core.ColorDefault {
				sb.WriteByte('.')
			} else {
				sb.WriteByte('#')
			}
		}
	}
	return sb.String()
}
