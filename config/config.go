package config

import (
	"fmt"

	"github.com/meander-gen/meander/harmony"
)

// Config holds every knob of the generator. All values are validated before
// generation starts; a bad combination is fatal, never patched up.
type Config struct {
	// Harmony is a style token or combination expression, e.g. "quarter" or
	// "quarter+center-8ths".
	Harmony string `yaml:"harmony"`
	// Tempo is the playback speed in beats per minute.
	Tempo int `yaml:"tempo"`
	// MinLen and MaxLen bound the note duration envelope, in ticks.
	MinLen float64 `yaml:"min-len"`
	MaxLen float64 `yaml:"max-len"`
	// HarmonyBase is the pitch of the accompaniment's reference c, in
	// half-steps. Only whole-octave adjustments are allowed.
	HarmonyBase int `yaml:"harmony-base"`
	// MelodyBase is the melody's center pitch in half-steps.
	MelodyBase int `yaml:"melody-base"`
	// Steady is the duration envelope's cycle length, in measures.
	Steady float64 `yaml:"steady"`
	// Gravity, Drag and Nudge are the pitch-simulation forces.
	Gravity float64 `yaml:"gravity"`
	Drag    float64 `yaml:"drag"`
	Nudge   float64 `yaml:"nudge"`
	// Stutter is the probability of an irregular onset.
	Stutter float64 `yaml:"stutter"`
	// Volume is the MIDI note velocity, 0-127.
	Volume uint8 `yaml:"volume"`
}

// String renders the config as one line of key=value pairs, the form that
// gets embedded into generated output so a piece can be regenerated from its
// own header.
func (c Config) String() string {
	return fmt.Sprintf(
		"harmony=%q tempo=%d min-len=%g max-len=%g harmony-base=%d melody-base=%d steady=%g gravity=%g drag=%g nudge=%g stutter=%g volume=%d",
		c.Harmony, c.Tempo, c.MinLen, c.MaxLen, c.HarmonyBase, c.MelodyBase,
		c.Steady, c.Gravity, c.Drag, c.Nudge, c.Stutter, c.Volume)
}

func (c Config) Validate() error {
	if c.Tempo <= 0 {
		return fmt.Errorf("tempo must be positive, got %d", c.Tempo)
	}
	if c.MinLen <= 0 {
		return fmt.Errorf("min-len must be positive, got %g", c.MinLen)
	}
	if c.MinLen > c.MaxLen {
		return fmt.Errorf("min-len %g exceeds max-len %g", c.MinLen, c.MaxLen)
	}
	if c.Steady <= 0 {
		return fmt.Errorf("steady must be positive, got %g", c.Steady)
	}
	if c.Stutter < 0 || c.Stutter > 1 {
		return fmt.Errorf("stutter must be within [0,1], got %g", c.Stutter)
	}
	if c.Gravity < 0 || c.Drag < 0 || c.Nudge < 0 {
		return fmt.Errorf("gravity, drag and nudge must not be negative")
	}
	if c.HarmonyBase%12 != 0 {
		return fmt.Errorf("harmony-base can only be adjusted by multiples of 12, got %d", c.HarmonyBase)
	}
	if c.Volume > 127 {
		return fmt.Errorf("volume must be within 0-127, got %d", c.Volume)
	}
	if _, err := harmony.ParseExpr(c.Harmony); err != nil {
		return err
	}
	return nil
}
