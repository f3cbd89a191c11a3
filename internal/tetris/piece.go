package tetris

import "github.com/vovakirdan/tui-tetris/internal/core"

// Piece is a shape with its fill identity and board position. X and Y are the
// board coordinates of the shape's top-left cell.
type Piece struct {
	Kind  Kind
	Shape Shape
	Fill  core.Color
	X     int
	Y     int
}

// Clone returns a copy of the piece that does not share its shape grid.
func (p Piece) Clone() Piece {
	p.Shape = p.Shape.Clone()
	return p
}

// Cells returns the board coordinates of every occupied cell.
func (p Piece) Cells() []core.Point {
	cells := make([]core.Point, 0, 4)
	for dy, row := range p.Shape {
		for dx, filled := range row {
			if filled {
				cells = append(cells, core.Point{X: p.X + dx, Y: p.Y + dy})
			}
		}
	}
	return cells
}

// Source is the random source used to pick shapes. *rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
}

// Factory spawns new pieces at the top of a board of a given width.
type Factory struct {
	src  Source
	cols int
}

// NewFactory creates a factory that picks shapes from src.
func NewFactory(src Source, cols int) *Factory {
	return &Factory{src: src, cols: cols}
}

// New spawns a uniformly chosen piece, horizontally centered on row 0.
// No collision check is made against the board.
func (f *Factory) New() Piece {
	k := Kind(f.src.Intn(KindCount))
	shape := CatalogShape(k)
	return Piece{
		Kind:  k,
		Shape: shape,
		Fill:  core.PieceColors[k],
		X:     (f.cols - shape.Cols()) / 2,
		Y:     0,
	}
}
