package effects

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

type recordAudio struct {
	cues []Cue
}

func (r *recordAudio) Play(c Cue) { r.cues = append(r.cues, c) }

type recordRenderer struct {
	frames []tetris.Snapshot
}

func (r *recordRenderer) Draw(s tetris.Snapshot) { r.frames = append(r.frames, s) }

type fixedSnapshot tetris.Snapshot

func (f fixedSnapshot) Snapshot() tetris.Snapshot { return tetris.Snapshot(f) }

func TestCueFor(t *testing.T) {
	tests := []struct {
		event core.Event
		cue   Cue
		ok    bool
	}{
		{tetris.MovedEvent{Dx: 1}, CueMove, true},
		{tetris.RotatedEvent{}, CueRotate, true},
		{tetris.LinesClearedEvent{Count: 2, Points: 100}, CueClear, true},
		{tetris.LockedEvent{Kind: tetris.KindT}, CueLock, true},
		{tetris.GameOverEvent{}, CueGameOver, true},
		{tetris.DescendedEvent{}, "", false},
		{tetris.StartedEvent{}, "", false},
		{tetris.PausedEvent{}, "", false},
	}

	for _, tc := range tests {
		t.Run(tc.event.EventName(), func(t *testing.T) {
			cue, ok := CueFor(tc.event)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.cue, cue)
		})
	}
}

func TestParseCue(t *testing.T) {
	for _, c := range AllCues() {
		got, err := ParseCue(string(c))
		require.NoError(t, err)
		assert.Equal(t, c, got)
	}

	_, err := ParseCue("explode")
	assert.Error(t, err)
}

func TestDispatchOrder(t *testing.T) {
	audio := &recordAudio{}
	renderer := &recordRenderer{}
	d := NewDispatcher(audio, renderer)

	snap := fixedSnapshot{Score: 40}
	d.Dispatch(snap, []core.Event{
		tetris.DescendedEvent{},
		tetris.LinesClearedEvent{Count: 1, Points: 40},
		tetris.LockedEvent{Kind: tetris.KindO},
	})

	assert.Equal(t, []Cue{CueClear, CueLock}, audio.cues)
	require.Len(t, renderer.frames, 1)
	assert.Equal(t, 40, renderer.frames[0].Score)
}

func TestDispatchNoEventsNoDraw(t *testing.T) {
	renderer := &recordRenderer{}
	d := NewDispatcher(nil, renderer)
	d.Dispatch(fixedSnapshot{}, nil)
	assert.Empty(t, renderer.frames)
}

func TestBellAudio(t *testing.T) {
	var buf bytes.Buffer
	bell := NewBellAudio(&buf, CueClear, CueGameOver)

	bell.Play(CueMove)
	bell.Play(CueClear)
	bell.Play(CueLock)
	bell.Play(CueGameOver)
	assert.Equal(t, "\a\a", buf.String())

	buf.Reset()
	all := NewBellAudio(&buf)
	for _, c := range AllCues() {
		all.Play(c)
	}
	assert.Equal(t, strings.Repeat("\a", len(AllCues())), buf.String())
}

func TestLogAudio(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})

	NewLogAudio(logger).Play(CueRotate)
	assert.Contains(t, buf.String(), "cue")
	assert.Contains(t, buf.String(), "rotate")
}

func TestMultiAudio(t *testing.T) {
	a, b := &recordAudio{}, &recordAudio{}
	MultiAudio{a, NopAudio{}, b}.Play(CueLock)
	assert.Equal(t, []Cue{CueLock}, a.cues)
	assert.Equal(t, []Cue{CueLock}, b.cues)
}

func TestTextRendererWithGame(t *testing.T) {
	g := tetris.NewWithOptions(tetris.Options{Rows: 4, Cols: 4, BaseInterval: 1, Cadence: tetris.CadenceFixed})
	g.Reset(core.RuntimeConfig{TickRate: 60, Seed: 7})
	g.Start()

	var buf bytes.Buffer
	d := NewDispatcher(nil, NewTextRenderer(&buf))
	d.Dispatch(g, g.MoveDown())

	out := buf.String()
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 5)
	assert.Contains(t, lines[4], "status=running")
	assert.Contains(t, lines[4], "score=0")
	assert.Equal(t, g.Current().Shape.CellCount(), strings.Count(out, "@"))
}

func TestFormatSnapshotGameOverHidesPiece(t *testing.T) {
	snap := tetris.Snapshot{
		Status: tetris.StatusGameOver,
		Board:  [][]core.Color{{core.ColorDefault, core.ColorGold}},
		Current: tetris.Piece{
			Kind:  tetris.KindI,
			Shape: tetris.CatalogShape(tetris.KindI),
		},
	}
	out := FormatSnapshot(snap)
	assert.True(t, strings.HasPrefix(out, ".#\n"))
	assert.Contains(t, out, "status=game_over")
}
