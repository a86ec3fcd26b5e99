package melody

import (
	"math"

	"github.com/meander-gen/meander/rng"
)

// Physics integrates the melody's ideal pitch: a random nudge, a restoring
// pull toward the center that grows faster than the displacement, and
// proportional drag. With gravity and drag positive the pitch oscillates
// around the center with decaying amplitude; with all forces zero it stays
// put.
type Physics struct {
	pitch    float64
	velocity float64

	base    float64
	gravity float64
	drag    float64
	nudge   float64
}

func NewPhysics(base float64, gravity, drag, nudge float64) *Physics {
	return &Physics{pitch: base, base: base, gravity: gravity, drag: drag, nudge: nudge}
}

// Step advances the integrator one tick. The sign draw happens every tick,
// even when nudge is zero, to keep the draw sequence stable across configs.
func (p *Physics) Step(stream *rng.Stream) {
	n := p.nudge
	if !stream.Bool() {
		n = -n
	}
	p.velocity += n

	d := p.pitch - p.base
	p.velocity -= p.gravity * d * (1 + math.Abs(d)/12)

	p.velocity -= p.drag * p.velocity
	p.pitch += p.velocity
}

// Pitch is the current ideal pitch, before quantization.
func (p *Physics) Pitch() float64 {
	return p.pitch
}

// Velocity is the current pitch velocity in half-steps per tick.
func (p *Physics) Velocity() float64 {
	return p.velocity
}
