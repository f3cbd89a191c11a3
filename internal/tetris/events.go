package tetris

// Events returned by Game commands. Each implements core.Event.

// StartedEvent is emitted when play begins.
type StartedEvent struct{}

// PausedEvent is emitted when a running game is paused.
type PausedEvent struct{}

// ResumedEvent is emitted when a paused game resumes.
type ResumedEvent struct{}

// ResetEvent is emitted when the board, score and pieces are reinitialized.
type ResetEvent struct{}

// MovedEvent is emitted after a successful horizontal move.
type MovedEvent struct {
	Dx int
}

// RotatedEvent is emitted after a successful rotation.
type RotatedEvent struct{}

// DescendedEvent is emitted when the current piece moves down one row.
type DescendedEvent struct{}

// LockedEvent is emitted when a piece merges into the board and the next
// piece takes over.
type LockedEvent struct {
	Kind Kind
}

// LinesClearedEvent is emitted when a lock completes one or more rows.
type LinesClearedEvent struct {
	Count  int
	Points int
}

// GameOverEvent is emitted when a piece locks at or above the top row.
type GameOverEvent struct {
	Score int
	Level int
}

func (StartedEvent) EventName() string      { return "started" }
func (PausedEvent) EventName() string       { return "paused" }
func (ResumedEvent) EventName() string      { return "resumed" }
func (ResetEvent) EventName() string        { return "reset" }
func (MovedEvent) EventName() string        { return "moved" }
func (RotatedEvent) EventName() string      { return "rotated" }
func (DescendedEvent) EventName() string    { return "descended" }
func (LockedEvent) EventName() string       { return "locked" }
func (LinesClearedEvent) EventName() string { return "lines_cleared" }
func (GameOverEvent) EventName() string     { return "game_over" }
