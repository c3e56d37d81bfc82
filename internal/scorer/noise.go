package scorer

import (
	"math/rand"
	"sync"
)

// Noise is the source of the human-uncertainty term added to every heuristic
// score. It is injected so tests can fix the seed or disable it entirely.
type Noise interface {
	// Sample returns a value in the open interval (-5, 5).
	Sample() float64
}

type uniformNoise struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewUniformNoise returns a seedable noise source drawing uniformly from
// (-5, 5). Safe for concurrent use.
func NewUniformNoise(seed int64) Noise {
	return &uniformNoise{rng: rand.New(rand.NewSource(seed))}
}

func (n *uniformNoise) Sample() float64 {
	n.mu.Lock()
	defer n.mu.Unlock()
	return (n.rng.Float64() - 0.5) * 10
}

// NoNoise disables the uncertainty term, making the engine deterministic.
type NoNoise struct{}

func (NoNoise) Sample() float64 { return 0 }
