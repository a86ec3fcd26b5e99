// Package gen runs the generation pass: one seeded, synchronous walk over the
// piece that produces the full event stream before any rendering starts.
package gen

import (
	"math"

	"github.com/meander-gen/meander/config"
	"github.com/meander-gen/meander/harmony"
	"github.com/meander-gen/meander/melody"
	"github.com/meander-gen/meander/model"
	"github.com/meander-gen/meander/rng"
)

// Generate produces the event stream for one piece. repeat is the number of
// times the accompaniment pattern plays; the melody runs for the same span.
// All randomness comes from the seed: the harmony resolution draw (if any)
// first, then the per-tick melody draws in a fixed order.
func Generate(cfg config.Config, repeat int, seed int64) (*model.Piece, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	stream := rng.New(seed)
	expr, err := harmony.ParseExpr(cfg.Harmony)
	if err != nil {
		return nil, err
	}
	track := harmony.NewTrack(expr, cfg.HarmonyBase, stream)
	total := repeat * track.TickLen()

	sched := melody.NewScheduler(cfg.MinLen, cfg.MaxLen, cfg.Steady, cfg.Stutter)
	phys := melody.NewPhysics(float64(cfg.MelodyBase), cfg.Gravity, cfg.Drag, cfg.Nudge)

	piece := &model.Piece{
		Seed:   seed,
		Tempo:  cfg.Tempo,
		Volume: cfg.Volume,
		Params: cfg.String(),
		Harmony: model.Section{
			Chords:  track.Pattern(),
			TickLen: track.TickLen(),
			Repeat:  repeat,
		},
		TotalTicks: total,
	}

	cur := model.NoteEvent{Tick: 0, Pitch: model.Pitch(cfg.MelodyBase)}
	for t := 1; t <= total; t++ {
		phys.Step(stream)
		if !sched.Advance(stream) {
			continue
		}
		cur.Dur = t - cur.Tick
		piece.Melody = append(piece.Melody, cur)

		pitch := model.Pitch(int(math.Round(phys.Pitch())))
		if !melody.PreBeat(t) {
			pitch = melody.NearestTone(phys.Pitch(), track.ChordAt(t), stream)
		}
		cur = model.NoteEvent{Tick: t, Pitch: pitch}
	}
	// the note still in flight is dropped; a rest carries the staff to the end
	piece.TrailingRest = total - cur.Tick

	return piece, nil
}
