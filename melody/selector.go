package melody

import (
	"math"

	"github.com/meander-gen/meander/constants"
	"github.com/meander-gen/meander/model"
	"github.com/meander-gen/meander/rng"
)

// PreBeat reports whether an onset tick lands on the last sixteenth before a
// beat. In that window the melody sounds its rounded ideal pitch instead of
// snapping to the harmony.
func PreBeat(tick int) bool {
	return tick%constants.StepsPerBeat == constants.StepsPerBeat-1
}

// NearestTone quantizes the ideal pitch to the chord tone with the smallest
// wrapped pitch-class distance, then re-octaves it next to the ideal pitch.
// An exact distance tie is broken by one fresh draw, so the choice is
// reproducible for a given seed and prior draw count.
func NearestTone(ideal float64, chord []model.Pitch, stream *rng.Stream) model.Pitch {
	self := model.Pitch(int(math.Round(ideal)))
	best := 12
	nearest := self.Class()
	for _, tone := range chord {
		diff := tone.Class() - self.Class()
		if diff < 0 {
			diff = -diff
		}
		if diff > 6 {
			diff = 12 - diff
		}
		if diff == 0 {
			nearest = tone.Class()
			break
		} else if diff < best {
			nearest = tone.Class()
			best = diff
		} else if diff == best && stream.Bool() {
			nearest = tone.Class()
		}
	}
	diff := nearest - self.Class()
	if diff > 6 {
		diff -= 12
	} else if diff < -6 {
		diff += 12
	}
	return self + model.Pitch(diff)
}
