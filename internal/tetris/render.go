package tetris

import (
	"fmt"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Render layout constants.
const (
	cellWidth    = 2  // Terminal columns per board cell
	sidebarWidth = 16 // Width of the next/score panel
	sidebarGap   = 2
)

// MinScreenSize returns the smallest screen that fits the board and sidebar.
func (g *Game) MinScreenSize() (w, h int) {
	return g.opts.Cols*cellWidth + 2 + sidebarGap + sidebarWidth, g.opts.Rows + 2
}

// Render draws the board, the falling piece, the next-piece preview and the
// score panel into dst. It reads state only.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	minW, minH := g.MinScreenSize()
	if dst.Width() < minW || dst.Height() < minH {
		dst.DrawTextCentered(dst.Height()/2, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", minW, minH))
		return
	}

	ox := (dst.Width() - minW) / 2
	oy := (dst.Height() - minH) / 2
	boardRect := core.NewRect(ox, oy, g.opts.Cols*cellWidth+2, g.opts.Rows+2)
	dst.DrawBox(boardRect)

	g.renderBoard(dst, ox+1, oy+1)
	g.renderPiece(dst, g.current, ox+1, oy+1)
	g.renderSidebar(dst, boardRect.Right()+sidebarGap, oy)
	g.renderOverlay(dst, boardRect)
}

func (g *Game) renderBoard(dst *core.Screen, x0, y0 int) {
	for y := range g.board.Rows() {
		for x := range g.board.Cols() {
			sx := x0 + x*cellWidth
			if c := g.board.Cell(x, y); c != core.ColorDefault {
				drawBlock(dst, sx, y0+y, c)
			} else {
				dst.SetColored(sx+1, y0+y, '·', core.ColorGray)
			}
		}
	}
}

func (g *Game) renderPiece(dst *core.Screen, p Piece, x0, y0 int) {
	for _, cell := range p.Cells() {
		if cell.Y < 0 {
			continue
		}
		drawBlock(dst, x0+cell.X*cellWidth, y0+cell.Y, p.Fill)
	}
}

func drawBlock(dst *core.Screen, x, y int, c core.Color) {
	dst.SetColored(x, y, '█', c)
	dst.SetColored(x+1, y, '█', c)
}

func (g *Game) renderSidebar(dst *core.Screen, x, y int) {
	dst.DrawText(x, y+1, "NEXT")
	preview := g.next
	preview.X, preview.Y = 0, 0
	g.renderPiece(dst, preview, x, y+3)

	dst.DrawText(x, y+7, fmt.Sprintf("SCORE %d", g.scorer.Score()))
	dst.DrawText(x, y+8, fmt.Sprintf("LEVEL %d", g.scorer.Level()))
	dst.DrawText(x, y+9, fmt.Sprintf("LINES %d", g.lines))
}

func (g *Game) renderOverlay(dst *core.Screen, board core.Rect) {
	var line1, line2 string
	switch g.status {
	case StatusIdle:
		line1, line2 = "READY", "Enter: start"
	case StatusPaused:
		line1, line2 = "PAUSED", "P: resume"
	case StatusGameOver:
		line1, line2 = "GAME OVER", "Enter: new game"
	default:
		return
	}
	midY := board.Y + board.H/2
	centerIn(dst, board, midY-1, line1)
	centerIn(dst, board, midY+1, line2)
}

func centerIn(dst *core.Screen, r core.Rect, y int, text string) {
	n := len([]rune(text))
	x := r.X + (r.W-n)/2
	dst.DrawText(x-1, y, " "+text+" ")
}
