package rng

import (
	"math/rand"
	"time"
)

// Stream is the single source of randomness for a generation pass. Every
// stochastic decision draws from it in a fixed order, which is what makes a
// seed reproduce a piece exactly. It is an explicit handle, never a package
// global, so nothing outside the pass can disturb the draw sequence.
type Stream struct {
	r *rand.Rand
}

func New(seed int64) *Stream {
	return &Stream{r: rand.New(rand.NewSource(seed))}
}

// RandomSeed picks a seed for runs where the caller did not supply one.
func RandomSeed() int64 {
	return time.Now().UnixNano()
}

// Float returns the next draw in [0, 1).
func (s *Stream) Float() float64 {
	return s.r.Float64()
}

// Bool returns a fair coin flip.
func (s *Stream) Bool() bool {
	return s.r.Intn(2) == 0
}

// Pick returns a uniform draw from [0, n).
func (s *Stream) Pick(n int) int {
	return s.r.Intn(n)
}
