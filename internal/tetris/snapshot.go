package tetris

import (
	"time"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Snapshot captures the complete game state for determinism testing and
// read-only consumers such as renderers.
type Snapshot struct {
	Tick     uint64
	Status   Status
	Score    int
	Level    int
	Lines    int
	Interval time.Duration
	Board    [][]core.Color
	Current  Piece
	Next     Piece
}

// Snapshot returns a copy of the current game state.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:     g.tick,
		Status:   g.status,
		Score:    g.scorer.Score(),
		Level:    g.scorer.Level(),
		Lines:    g.lines,
		Interval: g.DropInterval(),
		Board:    g.board.Grid(),
		Current:  g.current.Clone(),
		Next:     g.next.Clone(),
	}
}
