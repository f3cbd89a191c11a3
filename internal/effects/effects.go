// Package effects interprets engine events as side effects: audio cues and
// redraws. The engine returns events; this package decides what they sound
// and look like.
package effects

import (
	"fmt"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

// Cue names a sound triggered by an event.
type Cue string

const (
	CueMove     Cue = "move"
	CueRotate   Cue = "rotate"
	CueClear    Cue = "clear"
	CueLock     Cue = "lock"
	CueGameOver Cue = "gameover"
)

// AllCues returns every known cue in a stable order.
func AllCues() []Cue {
	return []Cue{CueMove, CueRotate, CueClear, CueLock, CueGameOver}
}

// ParseCue validates a cue name.
func ParseCue(name string) (Cue, error) {
	for _, c := range AllCues() {
		if string(c) == name {
			return c, nil
		}
	}
	return "", fmt.Errorf("effects: unknown cue %q", name)
}

// CueFor returns the cue for an event, if it has one.
func CueFor(e core.Event) (Cue, bool) {
	switch e.(type) {
	case tetris.MovedEvent:
		return CueMove, true
	case tetris.RotatedEvent:
		return CueRotate, true
	case tetris.LinesClearedEvent:
		return CueClear, true
	case tetris.LockedEvent:
		return CueLock, true
	case tetris.GameOverEvent:
		return CueGameOver, true
	default:
		return "", false
	}
}

// Audio plays cues. Play must not block on playback and reports no errors.
type Audio interface {
	Play(c Cue)
}

// Renderer draws a game state. It is called after every command that changed
// something.
type Renderer interface {
	Draw(s tetris.Snapshot)
}

// Snapshotter is the read side of a game.
type Snapshotter interface {
	Snapshot() tetris.Snapshot
}

// Dispatcher routes events to an Audio sink and a Renderer. Either may be nil.
type Dispatcher struct {
	audio    Audio
	renderer Renderer
}

// NewDispatcher creates a dispatcher.
func NewDispatcher(audio Audio, renderer Renderer) *Dispatcher {
	return &Dispatcher{audio: audio, renderer: renderer}
}

// Dispatch plays the cue of each event in order and then redraws once if any
// event was produced.
func (d *Dispatcher) Dispatch(src Snapshotter, events []core.Event) {
	if len(events) == 0 {
		return
	}
	if d.audio != nil {
		for _, e := range events {
			if c, ok := CueFor(e); ok {
				d.audio.Play(c)
			}
		}
	}
	if d.renderer != nil && src != nil {
		d.renderer.Draw(src.Snapshot())
	}
}
