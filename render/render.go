// Package render defines the backend-agnostic emitter surface both output
// formats implement. There are exactly two implementations, notation and
// performance; no open-ended plugin mechanism is warranted.
package render

import "github.com/meander-gen/meander/model"

// Part identifies which concurrent line an event belongs to.
type Part int

const (
	Melody Part = iota
	Harmony
)

// Emitter consumes the event stream of one piece.
type Emitter interface {
	BeginNote(part Part, tick int, p model.Pitch, dur int)
	BeginChord(part Part, tick int, pitches []model.Pitch, dur int)
	// RepeatSection hands over a whole section with its repeat count. A
	// backend with a native repeat construct renders it once; one without
	// expands the contents count times literally.
	RepeatSection(part Part, s model.Section, count int)
}

// Piece feeds a generated piece to an emitter. The piece is immutable and
// read-only here, so every emitter sees the identical stream.
func Piece(p *model.Piece, e Emitter) {
	for _, n := range p.Melody {
		e.BeginNote(Melody, n.Tick, n.Pitch, n.Dur)
	}
	e.RepeatSection(Harmony, p.Harmony, p.Harmony.Repeat)
}
