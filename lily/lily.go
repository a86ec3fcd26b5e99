// Package lily renders a piece as LilyPond source. The seed is embedded as
// metadata so the companion MIDI output can be regenerated and verified from
// the notation file alone.
package lily

import (
	"fmt"
	"math/bits"
	"strings"

	"github.com/meander-gen/meander/constants"
	"github.com/meander-gen/meander/model"
	"github.com/meander-gen/meander/render"
	"github.com/meander-gen/meander/util"
)

// durNames[m] spells a duration of 2^m ticks.
var durNames = [5]string{"16", "8", "4", "2", "1"}

// Emitter accumulates the two staves as it consumes the event stream.
type Emitter struct {
	piece     *model.Piece
	melody    strings.Builder
	harmony   strings.Builder
	nextBreak int
}

var _ render.Emitter = (*Emitter)(nil)

func NewEmitter(p *model.Piece) *Emitter {
	return &Emitter{piece: p, nextBreak: constants.TicksPerCycle}
}

func (e *Emitter) BeginNote(part render.Part, tick int, p model.Pitch, dur int) {
	b := &e.melody
	b.WriteString(p.String())
	measureLeft := constants.TicksPerMeasure - tick%constants.TicksPerMeasure
	writeDuration(b, util.Min(dur, measureLeft))
	for rem := dur - measureLeft; rem > 0; rem -= constants.TicksPerMeasure {
		b.WriteByte('~')
		writeDuration(b, util.Min(rem, constants.TicksPerMeasure))
	}
	b.WriteByte(' ')
	for tick+dur >= e.nextBreak {
		b.WriteByte('\n')
		e.nextBreak += constants.TicksPerCycle
	}
}

func (e *Emitter) BeginChord(part render.Part, tick int, pitches []model.Pitch, dur int) {
	b := &e.harmony
	if len(pitches) == 1 {
		b.WriteString(pitches[0].String())
	} else {
		b.WriteByte('<')
		for i, p := range pitches {
			if i > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(p.String())
		}
		b.WriteByte('>')
	}
	writeDuration(b, dur)
	b.WriteByte(' ')
	if (tick+dur)%constants.TicksPerMeasure == 0 {
		b.WriteString("| ")
	}
	if (tick+dur)%constants.TicksPerCycle == 0 {
		b.WriteByte('\n')
	}
}

// RepeatSection renders the accompaniment with LilyPond's native repeat
// construct, so the pattern appears once in the source.
func (e *Emitter) RepeatSection(part render.Part, s model.Section, count int) {
	fmt.Fprintf(&e.harmony, "\\repeat unfold %d {\n", count)
	for _, c := range s.Chords {
		e.BeginChord(part, c.Tick, c.Pitches, c.Dur)
	}
	e.harmony.WriteString("}")
}

// Bytes assembles the full LilyPond document.
func (e *Emitter) Bytes() []byte {
	var melody strings.Builder
	melody.WriteString("{ ")
	melody.WriteString(e.melody.String())
	rest := e.piece.TrailingRest
	tick := e.piece.TotalTicks - rest
	for rest > 0 {
		chunk := util.Min(rest, constants.TicksPerMeasure-tick%constants.TicksPerMeasure)
		melody.WriteByte('r')
		writeDuration(&melody, chunk)
		melody.WriteByte(' ')
		tick += chunk
		rest -= chunk
	}
	melody.WriteByte('}')

	var doc strings.Builder
	fmt.Fprintf(&doc, "%% meander: seed=%d repeat=%d %s\n",
		e.piece.Seed, e.piece.Harmony.Repeat, e.piece.Params)
	fmt.Fprintf(&doc, `\version "2.24.1"
\score {
\new PianoStaff <<
\new Staff {
\tempo 4 = %d
\clef treble
\key c \major
\time 4/4
%s
\fine
}
\new Staff {
\clef bass
\key c \major
\time 4/4
%s
\fine
}
>>
\layout {}
\midi {}
}`, e.piece.Tempo, melody.String(), e.harmony.String())
	return []byte(doc.String())
}

// writeDuration spells a tick count as LilyPond durations: the binary
// decomposition of ticks, adjacent bits folded into dots, remaining parts
// tied with the pitch carried over (e.g. 7 -> "4..", 11 -> "2~8.").
func writeDuration(b *strings.Builder, ticks int) {
	mag := bits.Len(uint(ticks)) - 1
	printed := false
	for mag >= 0 {
		if ticks&(1<<mag) != 0 {
			if printed {
				b.WriteByte('~')
			}
			b.WriteString(durNames[mag])
			mag--
			for mag >= 0 && ticks&(1<<mag) != 0 {
				b.WriteByte('.')
				mag--
			}
			printed = true
		} else {
			mag--
		}
	}
}
