package random

import (
	"io"
	"math/rand"
)

// Seeded is the pseudo-random Source. The same seed and the same draw
// sequence reproduce the same competition.
type Seeded struct {
	rng *rand.Rand
	out io.Writer
}

// NewSeeded builds a Seeded source. Clamp warnings are written to out.
func NewSeeded(seed int64, out io.Writer) *Seeded {
	return &Seeded{rng: rand.New(rand.NewSource(seed)), out: out}
}

// Chance rolls a real number in [0,100) and succeeds when the roll is at
// most the (clamped) percentage.
func (s *Seeded) Chance(_ string, percent int) bool {
	percent, _ = clampRate(s.out, percent)
	return s.rng.Float64()*100 <= float64(percent)
}

// Float draws uniformly from [min,max).
func (s *Seeded) Float(_ string, min, max float64) float64 {
	max = clampFloatRange(s.out, min, max)
	return min + s.rng.Float64()*(max-min)
}

// Int draws uniformly from [min,max], both inclusive.
func (s *Seeded) Int(_ string, min, max int) int {
	max = clampIntRange(s.out, min, max)
	return min + s.rng.Intn(max-min+1)
}
