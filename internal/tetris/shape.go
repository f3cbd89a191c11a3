// Package tetris implements the falling-block game-state engine: the shape
// catalog and rotation, the board with collision and line clearing, scoring,
// piece spawning, and the controller state machine that ties them together.
//
// The engine has no knowledge of terminals, sound or timers. Commands return
// the events they produced and the platform decides what to do with them.
package tetris

import "strings"

// Shape is a grid of occupied cells relative to the shape's top-left origin.
// Rows are indexed first: shape[row][col].
type Shape [][]bool

// Kind identifies one of the catalog shapes.
type Kind int

const (
	KindI Kind = iota
	KindO
	KindS
	KindZ
	KindL
	KindJ
	KindT
)

// KindCount is the number of shapes in the catalog.
const KindCount = 7

func (k Kind) String() string {
	switch k {
	case KindI:
		return "I"
	case KindO:
		return "O"
	case KindS:
		return "S"
	case KindZ:
		return "Z"
	case KindL:
		return "L"
	case KindJ:
		return "J"
	case KindT:
		return "T"
	default:
		return "?"
	}
}

// catalog is indexed by Kind and never handed out directly.
var catalog = [KindCount]Shape{
	KindI: ParseShape("####"),
	KindO: ParseShape("##", "##"),
	KindS: ParseShape(".##", "##."),
	KindZ: ParseShape("##.", ".##"),
	KindL: ParseShape("#..", "###"),
	KindJ: ParseShape("..#", "###"),
	KindT: ParseShape(".#.", "###"),
}

// CatalogShape returns a copy of the canonical shape for a kind.
func CatalogShape(k Kind) Shape {
	if k < 0 || int(k) >= KindCount {
		return nil
	}
	return catalog[k].Clone()
}

// ParseShape builds a shape from rows of text where '#' marks an occupied cell.
func ParseShape(rows ...string) Shape {
	s := make(Shape, len(rows))
	for y, row := range rows {
		s[y] = make([]bool, len(row))
		for x, ch := range row {
			s[y][x] = ch == '#'
		}
	}
	return s
}

// Rows returns the number of rows in the shape.
func (s Shape) Rows() int {
	return len(s)
}

// Cols returns the number of columns in the shape.
func (s Shape) Cols() int {
	if len(s) == 0 {
		return 0
	}
	return len(s[0])
}

// Clone returns a deep copy of the shape.
func (s Shape) Clone() Shape {
	if s == nil {
		return nil
	}
	out := make(Shape, len(s))
	for y, row := range s {
		out[y] = append([]bool(nil), row...)
	}
	return out
}

// Equal reports whether two shapes have the same dimensions and occupancy.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for y := range s {
		if len(s[y]) != len(other[y]) {
			return false
		}
		for x := range s[y] {
			if s[y][x] != other[y][x] {
				return false
			}
		}
	}
	return true
}

// CellCount returns the number of occupied cells.
func (s Shape) CellCount() int {
	n := 0
	for _, row := range s {
		for _, filled := range row {
			if filled {
				n++
			}
		}
	}
	return n
}

// String renders the shape with '#' and '.' for debugging and test output.
func (s Shape) String() string {
	var b strings.Builder
	for y, row := range s {
		if y > 0 {
			b.WriteByte('\n')
		}
		for _, filled := range row {
			if filled {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
	}
	return b.String()
}

// Rotate returns a new shape turned a quarter turn. For an R x C shape the
// result is C x R with rotated[i][j] = s[j][C-1-i]. The input is not modified.
func Rotate(s Shape) Shape {
	rows, cols := s.Rows(), s.Cols()
	out := make(Shape, cols)
	for i := range cols {
		out[i] = make([]bool, rows)
		for j := range rows {
			out[i][j] = s[j][cols-1-i]
		}
	}
	return out
}
