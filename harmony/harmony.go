package harmony

import (
	"sort"

	"github.com/meander-gen/meander/constants"
	"github.com/meander-gen/meander/model"
	"github.com/meander-gen/meander/util"
)

// progression is the 16-measure accompaniment, one 4-tone chord per measure,
// as half-step offsets above the harmony base.
var progression = [constants.MeasuresPerPattern][4]int{
	// C E G B
	{0, 4, 7, 11},
	// C' A F D
	{12, 9, 5, 2},
	// C E G C'
	{0, 4, 7, 12},
	// D' B G D
	{14, 11, 7, 2},

	{0, 4, 7, 11},
	{12, 9, 5, 2},
	{0, 4, 7, 12},
	{14, 11, 7, 2},

	// E G C' E'
	{4, 7, 12, 16},
	// F' D' C' A
	{17, 14, 12, 9},
	// G B C' E'
	{7, 11, 12, 16},
	// G' F' D' B
	{19, 17, 14, 11},

	// C' G E C
	{12, 7, 4, 0},
	// D F A C'
	{2, 5, 9, 12},
	// B G E C
	{11, 7, 4, 0},
	// B, D G F
	{-1, 2, 7, 5},
}

// selectorChords are the chords the melody quantizes against, cycling every
// 4 measures. They are looser than the written accompaniment on purpose.
var selectorChords = [constants.MeasuresPerCycle][]model.Pitch{
	// C E G B
	{0, 4, 7, 11},
	// C D F A
	{0, 2, 5, 9},
	{0, 4, 7, 11},
	// D F G B
	{2, 5, 7, 11},
}

// A Style realizes one measure's chord as a rhythmic figure. Ticks in the
// returned events are relative to the measure start.
type Style struct {
	Name    string
	realize func(chord [4]model.Pitch) []model.ChordEvent
}

func styleQuarter(c [4]model.Pitch) []model.ChordEvent {
	var evts []model.ChordEvent
	for i, p := range c {
		evts = append(evts, model.ChordEvent{
			Tick:    i * constants.StepsPerBeat,
			Dur:     constants.StepsPerBeat,
			Pitches: []model.Pitch{p},
		})
	}
	return evts
}

func styleCenterEighths(c [4]model.Pitch) []model.ChordEvent {
	one := func(tick, dur int, p model.Pitch) model.ChordEvent {
		return model.ChordEvent{Tick: tick, Dur: dur, Pitches: []model.Pitch{p}}
	}
	return []model.ChordEvent{
		one(0, 4, c[0]),
		one(4, 2, c[1]),
		one(6, 2, c[2]),
		one(8, 2, c[1]),
		one(10, 2, c[2]),
		one(12, 4, c[3]),
	}
}

func styleBlock(c [4]model.Pitch) []model.ChordEvent {
	return []model.ChordEvent{{
		Tick:    0,
		Dur:     constants.TicksPerMeasure,
		Pitches: []model.Pitch{c[0], c[1], c[2], c[3]},
	}}
}

var styles = map[string]Style{
	"quarter":     {Name: "quarter", realize: styleQuarter},
	"center-8ths": {Name: "center-8ths", realize: styleCenterEighths},
	"block":       {Name: "block", realize: styleBlock},
}

// StyleNames lists the known styles in stable order.
func StyleNames() []string {
	names := util.GetKeys(styles)
	sort.Strings(names)
	return names
}
