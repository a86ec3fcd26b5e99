package harmony

import (
	"github.com/meander-gen/meander/constants"
	"github.com/meander-gen/meander/model"
	"github.com/meander-gen/meander/rng"
)

// Track is the realized accompaniment. Realization happens exactly once, in
// NewTrack; any random-choice draw is consumed there and every structural
// repeat afterwards reuses the result.
type Track struct {
	pattern []model.ChordEvent
	tickLen int
	names   []string
}

// NewTrack realizes expr over the chord progression, transposed by base.
func NewTrack(expr Expr, base int, stream *rng.Stream) *Track {
	t := &Track{}
	for _, st := range expr.resolve(stream) {
		t.names = append(t.names, st.Name)
		for m := 0; m < constants.MeasuresPerPattern; m++ {
			var chord [4]model.Pitch
			for i, off := range progression[m] {
				chord[i] = model.Pitch(off + base)
			}
			start := t.tickLen + m*constants.TicksPerMeasure
			for _, evt := range st.realize(chord) {
				evt.Tick += start
				t.pattern = append(t.pattern, evt)
			}
		}
		t.tickLen += constants.TicksPerPattern
	}
	return t
}

// Pattern returns one realization of the accompaniment.
func (t *Track) Pattern() []model.ChordEvent {
	return t.pattern
}

// TickLen is the realized pattern's length in ticks.
func (t *Track) TickLen() int {
	return t.tickLen
}

// StyleNames lists the styles the realization resolved to, in order.
func (t *Track) StyleNames() []string {
	return t.names
}

// ChordAt returns the chord the melody quantizes against at the given tick.
// It is periodic with the 4-measure selector cycle.
func (t *Track) ChordAt(tick int) []model.Pitch {
	m := (tick / constants.TicksPerMeasure) % constants.MeasuresPerCycle
	return selectorChords[m]
}

// IsSectionBoundary reports whether tick starts a new repeat of the pattern.
func (t *Track) IsSectionBoundary(tick int) bool {
	return tick%t.tickLen == 0
}
