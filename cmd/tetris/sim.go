package main

import (
	"fmt"
	"io"
	"unicode"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/effects"
	"github.com/vovakirdan/tui-tetris/internal/registry"
	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

var (
	flagSimGame  string
	flagSimTrace bool
)

var simCmd = &cobra.Command{
	Use:   "sim <script>",
	Short: "Run a scripted game without a terminal UI",
	Long: `Runs a seeded game from a command script and prints the final board.

Script commands (whitespace is ignored):
  s  start       p  pause/resume   x  reset
  l  left        r  right          u  rotate
  d  soft drop   h  hard drop      t  timer tick

Examples:
  tetris sim "s hhhh" --seed 3
  tetris sim "s llh rrh uh" --trace`,
	Args: cobra.ExactArgs(1),
	RunE: runSimCmd,
}

func init() {
	simCmd.Flags().StringVar(&flagSimGame, "game", "tetris", "Variant to simulate")
	simCmd.Flags().BoolVar(&flagSimTrace, "trace", false, "Print the board after every command")
}

// simCommands maps script letters to engine actions. 't' is handled separately.
var simCommands = map[rune]core.Action{
	's': core.ActionStart,
	'p': core.ActionPause,
	'x': core.ActionReset,
	'l': core.ActionMoveLeft,
	'r': core.ActionMoveRight,
	'u': core.ActionRotate,
	'd': core.ActionSoftDrop,
	'h': core.ActionHardDrop,
}

func runSimCmd(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger, closeLog, err := newLogger(flagLogFile, flagLogLevel)
	if err != nil {
		return err
	}
	defer closeLog() //nolint:errcheck // Best-effort close

	tetris.SetDefaultOptions(cfg.EngineOptions())
	created, err := registry.Create(flagSimGame)
	if err != nil {
		return fmt.Errorf("error creating game: %w", err)
	}
	game, ok := created.(*tetris.Game)
	if !ok {
		return fmt.Errorf("game %q cannot be simulated", flagSimGame)
	}
	game.Reset(core.RuntimeConfig{TickRate: flagFPS, Seed: flagSeed})

	return runSim(cmd.OutOrStdout(), logger, game, args[0], flagSimTrace)
}

// runSim executes script against game and writes the final state to w.
func runSim(w io.Writer, logger *log.Logger, game *tetris.Game, script string, trace bool) error {
	var renderer effects.Renderer
	if trace {
		renderer = effects.NewTextRenderer(w)
	}
	dispatcher := effects.NewDispatcher(effects.NewLogAudio(logger), renderer)

	for i, c := range script {
		if unicode.IsSpace(c) {
			continue
		}

		var events []core.Event
		if c == 't' {
			events = game.Tick()
		} else {
			action, ok := simCommands[c]
			if !ok {
				return fmt.Errorf("sim: unknown command %q at position %d", c, i)
			}
			events = game.Apply(action)
		}

		if trace {
			fmt.Fprintf(w, "> %c\n", c)
		}
		dispatcher.Dispatch(game, events)
	}

	if trace {
		fmt.Fprintln(w, "= final")
	}
	_, err := io.WriteString(w, effects.FormatSnapshot(game.Snapshot()))
	return err
}
