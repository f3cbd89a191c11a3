package tetris

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPointsFor(t *testing.T) {
	tests := []struct {
		lines, level, expected int
	}{
		{1, 1, 40},
		{2, 1, 100},
		{3, 1, 300},
		{4, 1, 1200},
		{1, 2, 80},
		{4, 3, 3600},
		{3, 5, 1500},
	}

	for _, tc := range tests {
		got, err := PointsFor(tc.lines, tc.level)
		require.NoError(t, err)
		assert.Equal(t, tc.expected, got, "PointsFor(%d, %d)", tc.lines, tc.level)
	}
}

func TestPointsForRejectsOutOfRange(t *testing.T) {
	for _, n := range []int{-1, 0, 5, 8} {
		_, err := PointsFor(n, 1)
		assert.True(t, errors.Is(err, ErrInvalidLineCount), "lines=%d", n)
	}
}

func TestLevelFor(t *testing.T) {
	assert.Equal(t, 1, LevelFor(0))
	assert.Equal(t, 1, LevelFor(999))
	assert.Equal(t, 2, LevelFor(1000))
	assert.Equal(t, 4, LevelFor(3600))
}

func TestScorerAward(t *testing.T) {
	s := NewScorer()
	points, err := s.Award(2)
	require.NoError(t, err)
	assert.Equal(t, 100, points)
	assert.Equal(t, 100, s.Score())
	assert.Equal(t, 1, s.Level())

	_, err = s.Award(5)
	assert.Error(t, err)
	assert.Equal(t, 100, s.Score(), "invalid award leaves score unchanged")
}

func TestScorerTetrisAtLevelThree(t *testing.T) {
	s := Scorer{score: 2100, level: LevelFor(2100)}
	require.Equal(t, 3, s.Level())

	_, err := s.Award(4)
	require.NoError(t, err)
	assert.Equal(t, 5700, s.Score())
	assert.Equal(t, 6, s.Level())
}

func TestScorerMonotonic(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	s := NewScorer()
	prev := s.Score()
	for range 500 {
		_, err := s.Award(1 + rng.Intn(MaxLinesPerClear))
		require.NoError(t, err)
		assert.GreaterOrEqual(t, s.Score(), prev)
		assert.Equal(t, s.Score()/1000+1, s.Level())
		prev = s.Score()
	}
	assert.Equal(t, math.MaxInt, s.Score(), "long runs saturate")
	assert.Equal(t, math.MaxInt/1000+1, s.Level())
}

func TestScorerSaturates(t *testing.T) {
	s := Scorer{score: math.MaxInt - 10, level: LevelFor(math.MaxInt - 10)}

	points, err := s.Award(4)
	require.NoError(t, err)
	assert.Equal(t, 10, points)
	assert.Equal(t, math.MaxInt, s.Score())

	points, err = s.Award(1)
	require.NoError(t, err)
	assert.Zero(t, points)
	assert.Equal(t, math.MaxInt, s.Score())
	assert.Equal(t, LevelFor(math.MaxInt), s.Level())
}

func TestPointsForSaturates(t *testing.T) {
	points, err := PointsFor(4, math.MaxInt/1000)
	require.NoError(t, err)
	assert.Equal(t, math.MaxInt, points)
}
