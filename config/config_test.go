package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuiltinPresets(t *testing.T) {
	assert := assert.New(t)
	assert.Equal([]string{"1", "1.1"}, PresetNames())

	one, err := Preset("1", nil)
	assert.NoError(err)
	assert.Equal("quarter", one.Harmony)
	assert.Equal(80, one.Tempo)
	assert.Equal(math.Pi, one.Steady)
	assert.NoError(one.Validate())

	next, err := Preset("1.1", nil)
	assert.NoError(err)
	assert.Equal("center-8ths", next.Harmony)
	assert.Equal(1.15, next.MinLen)
	assert.NoError(next.Validate())
}

func TestStringListsEveryKnob(t *testing.T) {
	assert := assert.New(t)
	c, err := Preset("1.1", nil)
	assert.NoError(err)
	s := c.String()
	assert.Contains(s, `harmony="center-8ths"`)
	assert.Contains(s, "tempo=80")
	assert.Contains(s, "min-len=1.15")
	assert.Contains(s, "max-len=3.5")
	assert.Contains(s, "harmony-base=-12")
	assert.Contains(s, "melody-base=12")
	assert.Contains(s, "steady=3.14159")
	assert.Contains(s, "gravity=0.15")
	assert.Contains(s, "drag=0.22")
	assert.Contains(s, "nudge=1.5")
	assert.Contains(s, "stutter=0.05")
	assert.Contains(s, "volume=100")
}

func TestUnknownPreset(t *testing.T) {
	assert := assert.New(t)
	_, err := Preset("2038", nil)
	assert.Error(err)
}

func TestExtraPresetsShadowBuiltins(t *testing.T) {
	assert := assert.New(t)
	extra := map[string]Config{"1": {Tempo: 200}}
	c, err := Preset("1", extra)
	assert.NoError(err)
	assert.Equal(200, c.Tempo)
}

func TestValidateRejectsBadValues(t *testing.T) {
	assert := assert.New(t)
	base, err := Preset("1", nil)
	assert.NoError(err)

	bad := []func(c *Config){
		func(c *Config) { c.Tempo = 0 },
		func(c *Config) { c.MinLen = 0 },
		func(c *Config) { c.MinLen = c.MaxLen + 1 },
		func(c *Config) { c.Steady = 0 },
		func(c *Config) { c.Stutter = -0.1 },
		func(c *Config) { c.Stutter = 1.5 },
		func(c *Config) { c.Gravity = -1 },
		func(c *Config) { c.HarmonyBase = -5 },
		func(c *Config) { c.Volume = 200 },
		func(c *Config) { c.Harmony = "bogus" },
		func(c *Config) { c.Harmony = "quarter+" },
	}
	for i, mutate := range bad {
		c := base
		mutate(&c)
		assert.Error(c.Validate(), "case %d", i)
	}
}

func TestLoadPresetFile(t *testing.T) {
	assert := assert.New(t)
	path := filepath.Join(t.TempDir(), "presets.yaml")
	err := os.WriteFile(path, []byte(`
calm:
  harmony: block
  tempo: 60
  stutter: 0
`), 0644)
	assert.NoError(err)

	presets, err := LoadPresetFile(path)
	assert.NoError(err)
	c, ok := presets["calm"]
	assert.True(ok)
	assert.Equal("block", c.Harmony)
	assert.Equal(60, c.Tempo)
	assert.Equal(0.0, c.Stutter)
	// unset options inherit preset "1" values
	assert.Equal(0.15, c.Gravity)
	assert.Equal(1.0, c.MinLen)
}

func TestLoadPresetFileRejectsInvalidPresets(t *testing.T) {
	assert := assert.New(t)
	path := filepath.Join(t.TempDir(), "presets.yaml")
	err := os.WriteFile(path, []byte(`
broken:
  stutter: 2
`), 0644)
	assert.NoError(err)

	_, err = LoadPresetFile(path)
	assert.Error(err)
}

func TestLoadPresetFileMissing(t *testing.T) {
	assert := assert.New(t)
	_, err := LoadPresetFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(err)
}
