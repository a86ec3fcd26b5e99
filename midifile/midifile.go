// Package midifile renders a piece as a Standard MIDI File. The format has no
// repeat primitive, so sections are expanded literally; melody and harmony
// land on two concurrently-playing tracks.
package midifile

import (
	"bytes"
	"fmt"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/meander-gen/meander/model"
	"github.com/meander-gen/meander/render"
)

// TicksPerQuarter is the SMF resolution; one scheduling tick (a sixteenth)
// is a quarter of it.
const TicksPerQuarter = 480

const ticksPerStep = TicksPerQuarter / 4

type span struct {
	tick    int
	dur     int
	pitches []model.Pitch
}

// Emitter buffers note spans per part and lays them out as SMF tracks.
type Emitter struct {
	piece *model.Piece
	parts [2][]span
}

var _ render.Emitter = (*Emitter)(nil)

func NewEmitter(p *model.Piece) *Emitter {
	return &Emitter{piece: p}
}

func (e *Emitter) BeginNote(part render.Part, tick int, p model.Pitch, dur int) {
	e.parts[part] = append(e.parts[part], span{tick: tick, dur: dur, pitches: []model.Pitch{p}})
}

func (e *Emitter) BeginChord(part render.Part, tick int, pitches []model.Pitch, dur int) {
	e.parts[part] = append(e.parts[part], span{tick: tick, dur: dur, pitches: pitches})
}

// RepeatSection materializes the section's contents count times.
func (e *Emitter) RepeatSection(part render.Part, s model.Section, count int) {
	for i := 0; i < count; i++ {
		for _, c := range s.Chords {
			e.BeginChord(part, i*s.TickLen+c.Tick, c.Pitches, c.Dur)
		}
	}
}

// SMF lays the buffered spans out as a three-track file: tempo map, melody,
// harmony.
func (e *Emitter) SMF() (*smf.SMF, error) {
	sm := smf.New()
	sm.TimeFormat = smf.MetricTicks(TicksPerQuarter)

	var meta smf.Track
	meta.Add(0, smf.MetaTrackSequenceName(fmt.Sprintf("meander seed %d", e.piece.Seed)))
	meta.Add(0, smf.MetaMeter(4, 4))
	meta.Add(0, smf.MetaTempo(float64(e.piece.Tempo)))
	meta.Close(0)
	if err := sm.Add(meta); err != nil {
		return nil, fmt.Errorf("adding tempo track: %w", err)
	}

	names := [2]string{"melody", "harmony"}
	for part, spans := range e.parts {
		tr := e.buildTrack(names[part], uint8(part), spans)
		if err := sm.Add(tr); err != nil {
			return nil, fmt.Errorf("adding %s track: %w", names[part], err)
		}
	}
	return sm, nil
}

func (e *Emitter) buildTrack(name string, channel uint8, spans []span) smf.Track {
	var tr smf.Track
	tr.Add(0, smf.MetaInstrument(name))
	last := 0
	for _, sp := range spans {
		delta := uint32((sp.tick - last) * ticksPerStep)
		for _, p := range sp.pitches {
			tr.Add(delta, midi.NoteOn(channel, p.MidiKey(), e.piece.Volume))
			delta = 0
		}
		delta = uint32(sp.dur * ticksPerStep)
		for _, p := range sp.pitches {
			tr.Add(delta, midi.NoteOff(channel, p.MidiKey()))
			delta = 0
		}
		last = sp.tick + sp.dur
	}
	tr.Close(uint32((e.piece.TotalTicks - last) * ticksPerStep))
	return tr
}

// Bytes serializes the file.
func (e *Emitter) Bytes() ([]byte, error) {
	sm, err := e.SMF()
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if _, err := sm.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("encoding midi: %w", err)
	}
	return buf.Bytes(), nil
}
