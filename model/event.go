package model

// NoteEvent is one melody note. Dur runs until the next onset, so melody
// events tile the timeline without gaps.
type NoteEvent struct {
	Tick  int
	Dur   int
	Pitch Pitch
}

// ChordEvent is one harmony hit: one or more pitches sounding together for
// Dur ticks.
type ChordEvent struct {
	Tick    int
	Dur     int
	Pitches []Pitch
}

// Section is the realized accompaniment pattern, repeated verbatim Repeat
// times. The combinator resolution that produced it happened exactly once;
// repeats reuse it.
type Section struct {
	Chords  []ChordEvent
	TickLen int
	Repeat  int
}

// Piece is the full event stream for one generated piece. It is produced by a
// single generation pass and is read-only to the renderers, so the notation
// and performance outputs can never drift apart.
type Piece struct {
	Seed   int64
	Tempo  int
	Volume uint8
	// Params is the resolved generator configuration as one line of
	// key=value pairs. Renderers embed it next to the seed so any output can
	// be regenerated from its own metadata.
	Params string

	Melody []NoteEvent
	// TrailingRest pads the melody from the last onset to the end of the
	// piece, in ticks.
	TrailingRest int

	Harmony    Section
	TotalTicks int
}
