package tetris

import (
	"errors"
	"fmt"
	"math"
)

// lineRewards is indexed by lines cleared minus one.
var lineRewards = [...]int{40, 100, 300, 1200}

// pointsPerLevel is the score span of one level.
const pointsPerLevel = 1000

// MaxLinesPerClear is the largest number of rows a single lock can clear.
const MaxLinesPerClear = len(lineRewards)

// ErrInvalidLineCount is returned when scoring a line count outside [1, 4].
var ErrInvalidLineCount = errors.New("tetris: invalid line count")

// PointsFor returns the reward for clearing lines rows at once on level.
// The product saturates at math.MaxInt.
func PointsFor(lines, level int) (int, error) {
	if lines < 1 || lines > MaxLinesPerClear {
		return 0, fmt.Errorf("%w: %d", ErrInvalidLineCount, lines)
	}
	reward := lineRewards[lines-1]
	if level > math.MaxInt/reward {
		return math.MaxInt, nil
	}
	return reward * level, nil
}

// LevelFor returns the level for a score.
func LevelFor(score int) int {
	return score/pointsPerLevel + 1
}

// Scorer tracks score and level. The zero value is not ready; use NewScorer.
type Scorer struct {
	score int
	level int
}

// NewScorer returns a scorer at score 0, level 1.
func NewScorer() Scorer {
	return Scorer{score: 0, level: 1}
}

// Score returns the current score.
func (s *Scorer) Score() int {
	return s.score
}

// Level returns the current level.
func (s *Scorer) Level() int {
	return s.level
}

// Award adds the reward for a clear of lines rows at the current level and
// recomputes the level. The score saturates at math.MaxInt and the returned
// points are what was actually added. On error the score is left unchanged.
func (s *Scorer) Award(lines int) (int, error) {
	points, err := PointsFor(lines, s.level)
	if err != nil {
		return 0, err
	}
	if points > math.MaxInt-s.score {
		points = math.MaxInt - s.score
	}
	s.score += points
	s.level = LevelFor(s.score)
	return points, nil
}
