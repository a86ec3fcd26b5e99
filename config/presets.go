package config

import (
	"fmt"
	"math"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/meander-gen/meander/util"
)

// Built-in presets. "1" is the first tuning, "1.1" trades the quarter-note
// accompaniment for the center-eighths figure and narrows the note lengths.
var builtin = map[string]Config{
	"1": {
		Harmony:     "quarter",
		Tempo:       80,
		MinLen:      1,
		MaxLen:      4,
		HarmonyBase: -12,
		MelodyBase:  12,
		Steady:      math.Pi,
		Gravity:     0.15,
		Drag:        0.22,
		Nudge:       1.5,
		Stutter:     0.05,
		Volume:      100,
	},
	"1.1": {
		Harmony:     "center-8ths",
		Tempo:       80,
		MinLen:      1.15,
		MaxLen:      3.5,
		HarmonyBase: -12,
		MelodyBase:  12,
		Steady:      math.Pi,
		Gravity:     0.15,
		Drag:        0.22,
		Nudge:       1.5,
		Stutter:     0.05,
		Volume:      100,
	},
}

// Preset returns a named preset bundle, consulting extra (e.g. loaded from a
// preset file) before the built-ins.
func Preset(name string, extra map[string]Config) (Config, error) {
	if c, ok := extra[name]; ok {
		return c, nil
	}
	if c, ok := builtin[name]; ok {
		return c, nil
	}
	return Config{}, fmt.Errorf("unknown preset %q", name)
}

// PresetNames lists the built-in presets in stable order.
func PresetNames() []string {
	names := util.GetKeys(builtin)
	sort.Strings(names)
	return names
}

// LoadPresetFile reads user-defined presets from a YAML file mapping preset
// names to option bundles. Omitted options inherit from preset "1", so a file
// only needs to spell out what it changes.
func LoadPresetFile(path string) (map[string]Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading preset file: %w", err)
	}
	var raw map[string]yaml.Node
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing preset file %s: %w", path, err)
	}
	res := make(map[string]Config, len(raw))
	for name, node := range raw {
		c := builtin["1"]
		if err := node.Decode(&c); err != nil {
			return nil, fmt.Errorf("preset %q in %s: %w", name, path, err)
		}
		if err := c.Validate(); err != nil {
			return nil, fmt.Errorf("preset %q in %s: %w", name, path, err)
		}
		res[name] = c
	}
	return res, nil
}
