// Package config provides YAML-based configuration loading for the tetris
// engine and its terminal front end.
package config

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-tetris/internal/effects"
	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

// MinBoardSize is the smallest accepted board dimension.
const MinBoardSize = 4

// TetrisConfig contains all configuration for a tetris session.
type TetrisConfig struct {
	Board  BoardConfig  `yaml:"board"`
	Timing TimingConfig `yaml:"timing"`
	Audio  AudioConfig  `yaml:"audio"`
}

// BoardConfig defines the playfield size in cells.
type BoardConfig struct {
	Rows int `yaml:"rows"`
	Cols int `yaml:"cols"`
}

// TimingConfig defines the automatic drop timer.
type TimingConfig struct {
	BaseIntervalMS int    `yaml:"base_interval_ms"` // Level 1 interval; divided by level
	Cadence        string `yaml:"cadence"`          // "fixed" or "rearm"
}

// AudioConfig selects which cues ring the terminal bell.
type AudioConfig struct {
	Bell bool     `yaml:"bell"`
	Cues []string `yaml:"cues"`
}

// Validate reports the first invalid field.
func (c TetrisConfig) Validate() error {
	if c.Board.Rows < MinBoardSize || c.Board.Cols < MinBoardSize {
		return fmt.Errorf("board must be at least %dx%d, got %dx%d",
			MinBoardSize, MinBoardSize, c.Board.Cols, c.Board.Rows)
	}
	if c.Timing.BaseIntervalMS <= 0 {
		return fmt.Errorf("timing.base_interval_ms must be positive, got %d", c.Timing.BaseIntervalMS)
	}
	switch tetris.Cadence(c.Timing.Cadence) {
	case tetris.CadenceFixed, tetris.CadenceRearm:
	default:
		return fmt.Errorf("timing.cadence must be %q or %q, got %q",
			tetris.CadenceFixed, tetris.CadenceRearm, c.Timing.Cadence)
	}
	if _, err := c.AudioCues(); err != nil {
		return err
	}
	return nil
}

// EngineOptions converts the config to engine options.
func (c TetrisConfig) EngineOptions() tetris.Options {
	return tetris.Options{
		Rows:         c.Board.Rows,
		Cols:         c.Board.Cols,
		BaseInterval: time.Duration(c.Timing.BaseIntervalMS) * time.Millisecond,
		Cadence:      tetris.Cadence(c.Timing.Cadence),
	}
}

// AudioCues parses the configured cue names. An empty list means every cue.
func (c TetrisConfig) AudioCues() ([]effects.Cue, error) {
	if len(c.Audio.Cues) == 0 {
		return effects.AllCues(), nil
	}
	cues := make([]effects.Cue, 0, len(c.Audio.Cues))
	for _, name := range c.Audio.Cues {
		cue, err := effects.ParseCue(name)
		if err != nil {
			return nil, fmt.Errorf("audio.cues: %w", err)
		}
		cues = append(cues, cue)
	}
	return cues, nil
}

// Marshal encodes the config as YAML.
func (c TetrisConfig) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return data, nil
}
