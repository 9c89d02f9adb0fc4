package balancer

import (
	"math/rand/v2"

	"github.com/preston-bernstein/team-draw-service/internal/domain/players"
)

// Source supplies uniform integers in [0, n). *rand.Rand satisfies it.
type Source interface {
	IntN(n int) int
}

type globalSource struct{}

func (globalSource) IntN(n int) int { return rand.IntN(n) }

// NewSeededSource returns a deterministic source for reproducible draws.
func NewSeededSource(seed uint64) Source {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// shuffle applies Fisher-Yates in place.
func (b *Balancer) shuffle(pool []players.Player) {
	for i := len(pool) - 1; i > 0; i-- {
		j := b.src.IntN(i + 1)
		pool[i], pool[j] = pool[j], pool[i]
	}
}
