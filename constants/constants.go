package constants

// One tick is a sixteenth note.
const (
	StepsPerBeat    = 4
	BeatsPerMeasure = 4
	TicksPerMeasure = StepsPerBeat * BeatsPerMeasure

	// The chord progression cycles every 4 measures and the written-out
	// harmony pattern covers 4 such cycles.
	MeasuresPerCycle   = 4
	CyclesPerPattern   = 4
	MeasuresPerPattern = MeasuresPerCycle * CyclesPerPattern

	TicksPerCycle   = MeasuresPerCycle * TicksPerMeasure
	TicksPerPattern = MeasuresPerPattern * TicksPerMeasure
)
