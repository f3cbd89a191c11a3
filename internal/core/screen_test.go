package core

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runeAt(s *Screen, x, y int) rune {
	return s.GetCell(x, y).Rune
}

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	assert.Equal(t, 80, s.Width())
	assert.Equal(t, 24, s.Height())
	assert.Equal(t, strings.Repeat(" ", 80*24), strings.ReplaceAll(s.String(), "\n", ""),
		"new screen is filled with spaces")
}

func TestScreenSetOutOfBounds(t *testing.T) {
	s := NewScreen(10, 10)

	s.Set(5, 5, 'X')
	assert.Equal(t, 'X', runeAt(s, 5, 5))

	// Out of bounds writes are silent
	s.Set(-1, 0, 'A')
	s.Set(100, 0, 'A')
	s.Set(0, -1, 'A')
	s.Set(0, 100, 'A')
	assert.NotContains(t, s.String(), "A")

	assert.Equal(t, Cell{Rune: ' '}, s.GetCell(-1, 0))
	assert.Equal(t, Cell{Rune: ' '}, s.GetCell(100, 0))
}

func TestScreenSetColored(t *testing.T) {
	s := NewScreen(4, 4)
	s.SetColored(1, 2, '█', ColorPurple)
	assert.Equal(t, Cell{Rune: '█', Color: ColorPurple}, s.GetCell(1, 2))

	s.Clear()
	assert.Equal(t, Cell{Rune: ' ', Color: ColorDefault}, s.GetCell(1, 2))
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawText(2, 1, "Hello")
	for i, ch := range "Hello" {
		assert.Equal(t, ch, runeAt(s, 2+i, 1))
	}

	s.DrawText(18, 0, "Hello") // Only "He" fits
	assert.Equal(t, 'H', runeAt(s, 18, 0))
	assert.Equal(t, 'e', runeAt(s, 19, 0))
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawTextCentered(2, "Hi")

	x := (20 - 2) / 2
	assert.Equal(t, 'H', runeAt(s, x, 2))
	assert.Equal(t, 'i', runeAt(s, x+1, 2))
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawBox(NewRect(1, 1, 5, 4))

	corners := []struct {
		x, y int
		want rune
	}{
		{1, 1, '┌'},
		{5, 1, '┐'},
		{1, 4, '└'},
		{5, 4, '┘'},
	}
	for _, c := range corners {
		assert.Equal(t, c.want, runeAt(s, c.x, c.y), "corner (%d, %d)", c.x, c.y)
	}

	for x := 2; x < 5; x++ {
		assert.Equal(t, '─', runeAt(s, x, 1))
		assert.Equal(t, '─', runeAt(s, x, 4))
	}
	for y := 2; y < 4; y++ {
		assert.Equal(t, '│', runeAt(s, 1, y))
		assert.Equal(t, '│', runeAt(s, 5, y))
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawText(0, 0, "AAAAA")
	s.DrawText(0, 1, "BBBBB")
	s.DrawText(0, 2, "CCCCC")

	assert.Equal(t, "AAAAA\nBBBBB\nCCCCC", s.String())
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawText(0, 0, "Hello")

	s.Resize(8, 4)
	assert.Equal(t, 8, s.Width())
	assert.Equal(t, 4, s.Height())
	rows := strings.Split(s.String(), "\n")
	require.Len(t, rows, 4)
	assert.Equal(t, "Hello   ", rows[0], "content preserved")

	s.Resize(15, 8)
	rows = strings.Split(s.String(), "\n")
	require.Len(t, rows, 8)
	assert.True(t, strings.HasPrefix(rows[0], "Hello"), "content preserved after enlarging")
	assert.Len(t, rows[0], 15)
}
