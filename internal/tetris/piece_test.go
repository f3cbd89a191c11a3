package tetris

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// seqSource returns kinds from a fixed list, cycling when exhausted.
type seqSource struct {
	kinds []Kind
	i     int
}

func (s *seqSource) Intn(n int) int {
	k := s.kinds[s.i%len(s.kinds)]
	s.i++
	return int(k) % n
}

func TestFactorySpawnPosition(t *testing.T) {
	tests := []struct {
		kind Kind
		x    int
	}{
		{KindI, 3},
		{KindO, 4},
		{KindS, 3},
		{KindZ, 3},
		{KindL, 3},
		{KindJ, 3},
		{KindT, 3},
	}

	for _, tc := range tests {
		t.Run(tc.kind.String(), func(t *testing.T) {
			f := NewFactory(&seqSource{kinds: []Kind{tc.kind}}, 10)
			p := f.New()
			assert.Equal(t, tc.kind, p.Kind)
			assert.Equal(t, tc.x, p.X)
			assert.Equal(t, 0, p.Y)
			assert.Equal(t, core.PieceColors[tc.kind], p.Fill)
			assert.True(t, CatalogShape(tc.kind).Equal(p.Shape))
		})
	}
}

func TestFactoryDeterministic(t *testing.T) {
	a := NewFactory(rand.New(rand.NewSource(42)), 10)
	b := NewFactory(rand.New(rand.NewSource(42)), 10)
	for range 50 {
		assert.Equal(t, a.New(), b.New())
	}
}

func TestFactoryCoversCatalog(t *testing.T) {
	f := NewFactory(rand.New(rand.NewSource(1)), 10)
	seen := make(map[Kind]int)
	for range 700 {
		seen[f.New().Kind]++
	}
	assert.Len(t, seen, KindCount)
}

func TestPieceCloneIndependent(t *testing.T) {
	p := NewFactory(&seqSource{kinds: []Kind{KindT}}, 10).New()
	c := p.Clone()
	c.Shape[0][0] = true
	assert.False(t, p.Shape[0][0])
}
