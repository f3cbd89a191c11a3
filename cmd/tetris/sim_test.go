package main

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

func newSimGame(seed int64) *tetris.Game {
	g := tetris.NewWithOptions(tetris.DefaultOptions())
	g.Reset(core.RuntimeConfig{TickRate: 60, Seed: seed})
	return g
}

func TestRunSimFinalBoard(t *testing.T) {
	var buf bytes.Buffer
	g := newSimGame(1)

	require.NoError(t, runSim(&buf, log.New(io.Discard), g, "s h", false))

	out := buf.String()
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 21)
	assert.Contains(t, lines[20], "status=running")
	assert.Equal(t, 4, strings.Count(out, "#"), "one locked piece")
	assert.Equal(t, 4, strings.Count(out, "@"), "one falling piece")
}

func TestRunSimDeterministic(t *testing.T) {
	script := "s llh rrh uh ttt h"
	var a, b bytes.Buffer
	require.NoError(t, runSim(&a, log.New(io.Discard), newSimGame(9), script, false))
	require.NoError(t, runSim(&b, log.New(io.Discard), newSimGame(9), script, false))
	assert.Equal(t, a.String(), b.String())
}

func TestRunSimTrace(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, runSim(&buf, log.New(io.Discard), newSimGame(1), "s l p l", true))

	out := buf.String()
	assert.Contains(t, out, "> s\n")
	assert.Contains(t, out, "= final\n")
	assert.Contains(t, out, "status=paused")
	// Start, left and pause redraw; the paused left is ignored.
	assert.Equal(t, 4, strings.Count(out, "status="))
}

func TestRunSimUnknownCommand(t *testing.T) {
	var buf bytes.Buffer
	err := runSim(&buf, log.New(io.Discard), newSimGame(1), "sq", false)
	assert.ErrorContains(t, err, "unknown command")
}

func TestRunSimResetReturnsIdle(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, runSim(&buf, log.New(io.Discard), newSimGame(1), "s hh x", false))
	out := buf.String()
	assert.Contains(t, out, "status=idle score=0 level=1 lines=0")
	assert.Zero(t, strings.Count(out, "#"))
}
