package melody

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/meander-gen/meander/rng"
)

func collectOnsets(s *Scheduler, stream *rng.Stream, ticks int) []int {
	var onsets []int
	for t := 1; t <= ticks; t++ {
		if s.Advance(stream) {
			onsets = append(onsets, t)
		}
	}
	return onsets
}

func TestConstantEnvelopeGivesConstantDurations(t *testing.T) {
	assert := assert.New(t)
	s := NewScheduler(4, 4, 1, 0)
	onsets := collectOnsets(s, rng.New(1), 100)

	assert.NotEmpty(onsets)
	// the very first note needs the extra tick that tips progress past 1
	assert.Equal(5, onsets[0])
	for i := 1; i < len(onsets); i++ {
		assert.Equal(4, onsets[i]-onsets[i-1])
	}
}

func TestDurationsStayWithinEnvelopeBounds(t *testing.T) {
	assert := assert.New(t)
	s := NewScheduler(2, 8, 4, 0)
	onsets := collectOnsets(s, rng.New(42), 2000)

	assert.Greater(len(onsets), 10)
	for i := 1; i < len(onsets); i++ {
		gap := onsets[i] - onsets[i-1]
		assert.GreaterOrEqual(gap, 2)
		assert.LessOrEqual(gap, 9)
	}
}

func TestRemainderCarriesover(t *testing.T) {
	assert := assert.New(t)
	// duration 3 vs envelope: progress hits 1 at uneven points, so the
	// remainder must keep the long-run onset rate at one per 3 ticks
	s := NewScheduler(3, 3, 1, 0)
	onsets := collectOnsets(s, rng.New(1), 3000)
	assert.InDelta(1000, len(onsets), 2)
}

func TestCertainStutterSuppressesAllOnsets(t *testing.T) {
	assert := assert.New(t)
	s := NewScheduler(2, 4, 1, 1)
	onsets := collectOnsets(s, rng.New(5), 500)
	assert.Empty(onsets)
}

func TestSameSeedSameRhythm(t *testing.T) {
	assert := assert.New(t)
	a := collectOnsets(NewScheduler(1.15, 3.5, 3.14, 0.3), rng.New(77), 1000)
	b := collectOnsets(NewScheduler(1.15, 3.5, 3.14, 0.3), rng.New(77), 1000)
	assert.Equal(a, b)
}

func TestStutterPreemptionKeepsDurationsPositive(t *testing.T) {
	assert := assert.New(t)
	s := NewScheduler(2, 8, 4, 0.4)
	onsets := collectOnsets(s, rng.New(3), 2000)
	for i := 1; i < len(onsets); i++ {
		assert.GreaterOrEqual(onsets[i]-onsets[i-1], 1)
	}
}
