package melody

import (
	"math"

	"github.com/meander-gen/meander/constants"
	"github.com/meander-gen/meander/rng"
)

// Scheduler decides, tick by tick, when melody notes start. Progress
// accumulates by 1/duration(t) where duration follows a cosine envelope
// between MinLen and MaxLen with a cycle of Steady measures; a note is due
// once progress passes 1. Stutter can delay a due onset or preempt one early.
type Scheduler struct {
	minLen  float64
	maxLen  float64
	steady  float64
	stutter float64

	progress float64
	tick     int
}

func NewScheduler(minLen, maxLen, steady, stutter float64) *Scheduler {
	return &Scheduler{minLen: minLen, maxLen: maxLen, steady: steady, stutter: stutter}
}

// Advance processes one tick and reports whether a note starts on it. The
// draw order is fixed: the stutter-trigger draw happens only when progress
// has not yet reached 1, then the stutter-delay draw happens only when an
// onset is otherwise due. Keeping that order stable is what makes a seed
// reproduce the rhythm.
func (s *Scheduler) Advance(stream *rng.Stream) bool {
	med := (s.maxLen + s.minLen) / 2
	dev := (s.maxLen - s.minLen) / 2
	clock := float64(s.tick) * 2 * math.Pi / constants.TicksPerMeasure / s.steady
	s.progress += 1 / (dev*math.Cos(clock) + med)
	s.tick++

	due := s.progress > 1
	if !due {
		// the trigger draw only makes the tick due, the delay draw below
		// can still hold it back
		due = stream.Float() < s.stutter
	}
	if due && stream.Float() > s.stutter {
		// the remainder carries into the next note, never clamped
		s.progress -= 1
		return true
	}
	return false
}

// Tick is the number of ticks processed so far.
func (s *Scheduler) Tick() int {
	return s.tick
}
