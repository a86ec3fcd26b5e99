package model

import (
	"strings"

	"github.com/meander-gen/meander/util"
)

// Pitch is a number of half-steps relative to LilyPond's c, i.e. MIDI key 48.
// The melody center and harmony base from the config are expressed in the
// same units.
type Pitch int

// Correct for DMaj through AesMaj and fismin through cmin.
var pitchNames = [12]string{"c", "cis", "d", "ees", "e", "f", "fis", "g", "aes", "a", "bes", "b"}

// Class returns the pitch class in [0, 12).
func (p Pitch) Class() int {
	c := int(p) % 12
	if c < 0 {
		c += 12
	}
	return c
}

// Octave returns the octave offset from the reference c, rounding toward
// negative infinity.
func (p Pitch) Octave() int {
	o := int(p) / 12
	if int(p)%12 < 0 {
		o--
	}
	return o
}

// MidiKey maps the pitch onto a MIDI key number, clamped to the valid range.
func (p Pitch) MidiKey() uint8 {
	return uint8(util.Clamp(48+int(p), 0, 127))
}

// String renders the pitch in LilyPond absolute notation, e.g. c' or bes,,.
func (p Pitch) String() string {
	var b strings.Builder
	b.WriteString(pitchNames[p.Class()])
	octave := p.Octave()
	mark := byte('\'')
	if octave < 0 {
		mark = ','
		octave = -octave
	}
	for i := 0; i < octave; i++ {
		b.WriteByte(mark)
	}
	return b.String()
}
