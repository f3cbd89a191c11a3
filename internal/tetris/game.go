package tetris

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

// Status is the controller state.
type Status int

const (
	StatusIdle Status = iota
	StatusRunning
	StatusPaused
	StatusGameOver
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusRunning:
		return "running"
	case StatusPaused:
		return "paused"
	case StatusGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Cadence controls when the automatic drop interval is computed.
type Cadence string

const (
	// CadenceFixed computes the interval once, at the first Start of the game
	// instance, and keeps it for every later session including after Reset.
	CadenceFixed Cadence = "fixed"
	// CadenceRearm recomputes the interval whenever the level changes.
	CadenceRearm Cadence = "rearm"
)

// Options configures board size and timing.
type Options struct {
	Rows         int
	Cols         int
	BaseInterval time.Duration // Drop interval at level 1; divided by level
	Cadence      Cadence
}

// DefaultOptions returns a 20x10 board with a one second base interval.
func DefaultOptions() Options {
	return Options{
		Rows:         20,
		Cols:         10,
		BaseInterval: time.Second,
		Cadence:      CadenceFixed,
	}
}

// defaultOptions is used by the registry factories.
var defaultOptions = DefaultOptions()

// SetDefaultOptions sets the options used by games created through the registry.
func SetDefaultOptions(opts Options) {
	defaultOptions = opts
}

// Game is the controller: it owns the board, current and next pieces, score,
// and status, and applies commands to them. All commands run synchronously on
// the caller's goroutine; Game is not safe for concurrent use.
type Game struct {
	id    string
	title string
	opts  Options

	factory *Factory
	board   *Board
	current Piece
	next    Piece
	scorer  Scorer
	lines   int
	status  Status

	tick      uint64
	frame     time.Duration // Simulated time per Step
	fallTimer time.Duration
	interval  time.Duration
	armed     bool

	screenW int
	screenH int
}

// New creates a game using the registry default options.
func New() *Game {
	return NewWithOptions(defaultOptions)
}

// NewRearm creates a game whose drop interval follows the level.
func NewRearm() *Game {
	opts := defaultOptions
	opts.Cadence = CadenceRearm
	g := NewWithOptions(opts)
	g.id = "tetris_rearm"
	g.title = "Tetris (Re-armed Cadence)"
	return g
}

// NewWithOptions creates a game with explicit options. Reset must be called
// before use.
func NewWithOptions(opts Options) *Game {
	return &Game{
		id:    "tetris",
		title: "Tetris",
		opts:  opts,
	}
}

func init() {
	registry.Register("tetris", func() registry.Game {
		return New()
	})
	registry.Register("tetris_rearm", func() registry.Game {
		return NewRearm()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name.
func (g *Game) Title() string {
	return g.title
}

// Options returns the options the game was created with.
func (g *Game) Options() Options {
	return g.opts
}

// Reset initializes the game for a new platform session with a seeded random
// source. The game is left Idle with the drop interval unarmed.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.ResetWithSource(cfg, rand.New(rand.NewSource(cfg.Seed)))
}

// ResetWithSource is Reset with an explicit random source.
func (g *Game) ResetWithSource(cfg core.RuntimeConfig, src Source) {
	tickRate := cfg.TickRate
	if tickRate <= 0 {
		tickRate = core.DefaultConfig().TickRate
	}
	g.frame = time.Second / time.Duration(tickRate)
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.tick = 0
	g.armed = false
	g.interval = 0
	g.factory = NewFactory(src, g.opts.Cols)
	g.newSession()
}

// newSession clears the board and score and spawns two fresh pieces.
func (g *Game) newSession() {
	g.board = NewBoard(g.opts.Rows, g.opts.Cols)
	g.scorer = NewScorer()
	g.lines = 0
	g.fallTimer = 0
	g.current = g.factory.New()
	g.next = g.factory.New()
	g.status = StatusIdle
}

// Start moves an Idle game to Running. From GameOver it starts a fresh
// session first. Running and Paused games are unaffected.
func (g *Game) Start() []core.Event {
	var events []core.Event
	switch g.status {
	case StatusGameOver:
		g.newSession()
		events = append(events, ResetEvent{})
	case StatusIdle:
	default:
		return nil
	}
	g.status = StatusRunning
	if !g.armed || g.opts.Cadence == CadenceRearm {
		g.arm()
	}
	return append(events, StartedEvent{})
}

// Pause stops a running game. Commands are ignored until Resume.
func (g *Game) Pause() []core.Event {
	if g.status != StatusRunning {
		return nil
	}
	g.status = StatusPaused
	return []core.Event{PausedEvent{}}
}

// Resume continues a paused game.
func (g *Game) Resume() []core.Event {
	if g.status != StatusPaused {
		return nil
	}
	g.status = StatusRunning
	return []core.Event{ResumedEvent{}}
}

// TogglePause pauses a running game or resumes a paused one.
func (g *Game) TogglePause() []core.Event {
	if g.status == StatusPaused {
		return g.Resume()
	}
	return g.Pause()
}

// ResetGame discards the current session and returns to Idle with an empty
// board, score 0, level 1 and two new pieces. The drop interval stays armed.
func (g *Game) ResetGame() []core.Event {
	g.newSession()
	return []core.Event{ResetEvent{}}
}

// MoveLeft shifts the current piece one column left if it fits.
func (g *Game) MoveLeft() []core.Event {
	return g.shift(-1)
}

// MoveRight shifts the current piece one column right if it fits.
func (g *Game) MoveRight() []core.Event {
	return g.shift(1)
}

func (g *Game) shift(dx int) []core.Event {
	if g.status != StatusRunning {
		return nil
	}
	if g.board.CheckCollision(g.current.Shape, g.current.X+dx, g.current.Y) {
		return nil
	}
	g.current.X += dx
	return []core.Event{MovedEvent{Dx: dx}}
}

// Rotate turns the current piece a quarter turn in place if the result fits.
// No alternate offsets are tried.
func (g *Game) Rotate() []core.Event {
	if g.status != StatusRunning {
		return nil
	}
	rotated := Rotate(g.current.Shape)
	if g.board.CheckCollision(rotated, g.current.X, g.current.Y) {
		return nil
	}
	g.current.Shape = rotated
	return []core.Event{RotatedEvent{}}
}

// MoveDown moves the current piece down one row, or locks it if the row
// below is blocked.
func (g *Game) MoveDown() []core.Event {
	if g.status != StatusRunning {
		return nil
	}
	return g.moveDown()
}

// Tick is the timer-driven descent. It behaves exactly like MoveDown.
func (g *Game) Tick() []core.Event {
	return g.MoveDown()
}

// HardDrop descends one row at a time until the piece rests, then makes one
// more MoveDown to lock it.
func (g *Game) HardDrop() []core.Event {
	if g.status != StatusRunning {
		return nil
	}
	var events []core.Event
	for !g.blockedBelow() {
		events = append(events, g.moveDown()...)
	}
	return append(events, g.moveDown()...)
}

func (g *Game) blockedBelow() bool {
	return g.board.CheckCollision(g.current.Shape, g.current.X, g.current.Y+1)
}

func (g *Game) moveDown() []core.Event {
	if g.blockedBelow() {
		return g.lock()
	}
	g.current.Y++
	return []core.Event{DescendedEvent{}}
}

// lock merges the current piece, clears lines and promotes the next piece.
// The promoted piece is not checked for collision.
func (g *Game) lock() []core.Event {
	if g.board.Place(g.current) {
		g.status = StatusGameOver
		return []core.Event{GameOverEvent{Score: g.scorer.Score(), Level: g.scorer.Level()}}
	}

	var events []core.Event
	if n := g.board.ClearLines(); n > 0 {
		prevLevel := g.scorer.Level()
		points, err := g.scorer.Award(n)
		if err == nil {
			g.lines += n
			events = append(events, LinesClearedEvent{Count: n, Points: points})
		}
		if g.opts.Cadence == CadenceRearm && g.scorer.Level() != prevLevel {
			g.arm()
		}
	}

	locked := g.current.Kind
	g.current = g.next
	g.next = g.factory.New()
	return append(events, LockedEvent{Kind: locked})
}

// arm computes the drop interval from the current level.
func (g *Game) arm() {
	g.interval = intervalFor(g.opts.BaseInterval, g.scorer.Level())
	g.armed = true
}

func intervalFor(base time.Duration, level int) time.Duration {
	if level < 1 {
		level = 1
	}
	return base / time.Duration(level)
}

// DropInterval returns the active automatic-drop interval. Before the first
// Start it returns the interval the current level would arm.
func (g *Game) DropInterval() time.Duration {
	if !g.armed {
		return intervalFor(g.opts.BaseInterval, g.scorer.Level())
	}
	return g.interval
}

// Apply dispatches a single input action. Unrecognized actions are ignored.
func (g *Game) Apply(a core.Action) []core.Event {
	switch a {
	case core.ActionMoveLeft:
		return g.MoveLeft()
	case core.ActionMoveRight:
		return g.MoveRight()
	case core.ActionSoftDrop:
		return g.MoveDown()
	case core.ActionRotate:
		return g.Rotate()
	case core.ActionHardDrop:
		return g.HardDrop()
	case core.ActionStart:
		return g.Start()
	case core.ActionPause:
		return g.TogglePause()
	case core.ActionReset:
		return g.ResetGame()
	default:
		return nil
	}
}

// Step applies the frame's actions in order, then advances the drop timer by
// one frame and performs any automatic descents that fall due.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	var events []core.Event
	for _, a := range in.Actions {
		events = append(events, g.Apply(a)...)
	}

	if g.status == StatusRunning && g.interval > 0 {
		g.fallTimer += g.frame
		for g.status == StatusRunning && g.fallTimer >= g.interval {
			g.fallTimer -= g.interval
			events = append(events, g.Tick()...)
		}
	}

	return core.StepResult{State: g.State(), Events: events}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.scorer.Score(),
		Level:    g.scorer.Level(),
		GameOver: g.status == StatusGameOver,
		Paused:   g.status == StatusPaused,
		Running:  g.status == StatusRunning,
	}
}

// Status returns the controller state.
func (g *Game) Status() Status {
	return g.status
}

// Board returns the live board. Callers must not modify it.
func (g *Game) Board() *Board {
	return g.board
}

// Current returns a copy of the falling piece.
func (g *Game) Current() Piece {
	return g.current.Clone()
}

// Next returns a copy of the preview piece.
func (g *Game) Next() Piece {
	return g.next.Clone()
}

// Lines returns the total number of rows cleared this session.
func (g *Game) Lines() int {
	return g.lines
}
