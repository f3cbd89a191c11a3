package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/effects"
	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
	"github.com/vovakirdan/tui-tetris/internal/registry"
	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a game",
	Long: `Start playing. The default variant is "tetris".

Controls:
  Left/Right, A/D  - Move
  Down, S          - Soft drop
  Up, W            - Rotate
  Space            - Hard drop
  Enter            - Start (starts a new game after game over)
  P/Esc            - Pause / resume
  R                - Reset
  ?                - Toggle help
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - 1.5s base interval, speeds up with level
  normal - 1s base interval, speeds up with level
  hard   - 0.5s base interval, speeds up with level
  fixed  - Interval fixed when play starts

Examples:
  tetris play
  tetris play --difficulty hard
  tetris play tetris_rearm --log-file tetris.log --log-level debug`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	gameID := "tetris"
	if len(args) == 1 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'tetris list' to see available variants", gameID)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	cues, err := cfg.AudioCues()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(flagLogFile, flagLogLevel)
	if err != nil {
		return err
	}
	defer closeLog() //nolint:errcheck // Best-effort close

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rtCfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Registry factories read the engine options at creation time
	tetris.SetDefaultOptions(cfg.EngineOptions())
	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("error creating game: %w", err)
	}

	var audio effects.Audio = effects.NopAudio{}
	if cfg.Audio.Bell {
		audio = effects.NewBellAudio(os.Stderr, cues...)
	}

	logger.Info("starting", "game", gameID, "rows", cfg.Board.Rows, "cols", cfg.Board.Cols,
		"cadence", cfg.Timing.Cadence, "base_interval_ms", cfg.Timing.BaseIntervalMS)

	return tui.Run(game, rtCfg, tui.Options{Logger: logger, Audio: audio})
}
