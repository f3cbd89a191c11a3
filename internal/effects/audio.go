package effects

import (
	"io"

	"github.com/charmbracelet/log"
)

// NopAudio discards every cue.
type NopAudio struct{}

func (NopAudio) Play(Cue) {}

// BellAudio rings the terminal bell for a configured set of cues.
type BellAudio struct {
	w    io.Writer
	cues map[Cue]bool
}

// NewBellAudio creates a bell sink. With no cues given, every cue rings.
func NewBellAudio(w io.Writer, cues ...Cue) *BellAudio {
	if len(cues) == 0 {
		cues = AllCues()
	}
	set := make(map[Cue]bool, len(cues))
	for _, c := range cues {
		set[c] = true
	}
	return &BellAudio{w: w, cues: set}
}

// Play writes BEL if the cue is enabled. Write errors are dropped.
func (b *BellAudio) Play(c Cue) {
	if !b.cues[c] {
		return
	}
	//nolint:errcheck // fire and forget
	b.w.Write([]byte{'\a'})
}

// LogAudio records cues as debug log entries.
type LogAudio struct {
	logger *log.Logger
}

// NewLogAudio creates a log sink.
func NewLogAudio(logger *log.Logger) *LogAudio {
	return &LogAudio{logger: logger}
}

func (l *LogAudio) Play(c Cue) {
	l.logger.Debug("cue", "name", string(c))
}

// MultiAudio fans a cue out to several sinks.
type MultiAudio []Audio

func (m MultiAudio) Play(c Cue) {
	for _, a := range m {
		a.Play(c)
	}
}
