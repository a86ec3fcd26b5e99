package lily

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/meander-gen/meander/config"
	"github.com/meander-gen/meander/gen"
	"github.com/meander-gen/meander/model"
	"github.com/meander-gen/meander/render"
)

func TestDurationSpelling(t *testing.T) {
	cases := map[int]string{
		1:  "16",
		2:  "8",
		3:  "8.",
		4:  "4",
		5:  "4~16",
		6:  "4.",
		7:  "4..",
		8:  "2",
		11: "2~8.",
		12: "2.",
		15: "2...",
		16: "1",
	}
	assert := assert.New(t)
	for ticks, want := range cases {
		var b strings.Builder
		writeDuration(&b, ticks)
		assert.Equal(want, b.String(), "ticks=%d", ticks)
	}
}

func smallPiece() *model.Piece {
	return &model.Piece{
		Seed:   7,
		Tempo:  90,
		Volume: 100,
		Melody: []model.NoteEvent{
			{Tick: 0, Dur: 4, Pitch: 12},
		},
		TrailingRest: 12,
		Harmony: model.Section{
			Chords: []model.ChordEvent{
				{Tick: 0, Dur: 16, Pitches: []model.Pitch{0, 4}},
			},
			TickLen: 16,
			Repeat:  2,
		},
		TotalTicks: 16,
	}
}

func renderText(p *model.Piece) string {
	e := NewEmitter(p)
	render.Piece(p, e)
	return string(e.Bytes())
}

func TestDocumentSkeleton(t *testing.T) {
	assert := assert.New(t)
	out := renderText(smallPiece())

	assert.Contains(out, "% meander: seed=7 repeat=2")
	assert.Contains(out, `\version "2.24.1"`)
	assert.Contains(out, `\tempo 4 = 90`)
	assert.Contains(out, `\new PianoStaff`)
	assert.Contains(out, `\clef treble`)
	assert.Contains(out, `\clef bass`)
	assert.Contains(out, `\layout {}`)
	assert.Contains(out, `\midi {}`)
}

func TestMelodyAndTrailingRest(t *testing.T) {
	assert := assert.New(t)
	out := renderText(smallPiece())
	assert.Contains(out, "{ c'4 r2. }")
}

func TestHarmonyUsesNativeRepeat(t *testing.T) {
	assert := assert.New(t)
	out := renderText(smallPiece())
	// repeated section appears once, under a repeat construct
	assert.Contains(out, `\repeat unfold 2 {`)
	assert.Equal(1, strings.Count(out, "<c e>1"))
}

func TestNoteTiesAcrossTheBarline(t *testing.T) {
	assert := assert.New(t)
	p := smallPiece()
	p.Melody = []model.NoteEvent{{Tick: 0, Dur: 12, Pitch: 0}, {Tick: 12, Dur: 8, Pitch: 2}}
	p.TrailingRest = 12
	p.TotalTicks = 32
	out := renderText(p)
	assert.Contains(out, "c2. d4~4 ")
}

func TestRenderingIsDeterministic(t *testing.T) {
	assert := assert.New(t)
	cfg, err := config.Preset("1.1", nil)
	assert.NoError(err)

	a, err := gen.Generate(cfg, 1, 42)
	assert.NoError(err)
	b, err := gen.Generate(cfg, 1, 42)
	assert.NoError(err)
	assert.Equal(renderText(a), renderText(b))
}

func TestSeedIsEmbedded(t *testing.T) {
	assert := assert.New(t)
	cfg, err := config.Preset("1", nil)
	assert.NoError(err)
	p, err := gen.Generate(cfg, 1, 987654321)
	assert.NoError(err)
	out := renderText(p)
	assert.Contains(out, "seed=987654321")
	// the resolved parameters ride along so the piece can be regenerated
	assert.Contains(out, "repeat=1")
	assert.Contains(out, `harmony="quarter"`)
	assert.Contains(out, "tempo=80")
	assert.Contains(out, "stutter=0.05")
	assert.Contains(out, "volume=100")
}
