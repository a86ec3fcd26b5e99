package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/meander-gen/meander/config"
	"github.com/meander-gen/meander/gen"
	"github.com/meander-gen/meander/lily"
	"github.com/meander-gen/meander/midifile"
	"github.com/meander-gen/meander/render"
	"github.com/meander-gen/meander/rng"
	"github.com/meander-gen/meander/util"
)

var (
	genRepeat     int
	genPreset     string
	genPresetFile string
	genSeed       int64
	genMidi       string
	genForce      bool

	genHarmony     string
	genTempo       int
	genMinLen      float64
	genMaxLen      float64
	genHarmonyBase int
	genMelodyBase  int
	genSteady      float64
	genGravity     float64
	genDrag        float64
	genNudge       float64
	genStutter     float64
	genVolume      uint8
)

func init() {
	rootCmd.AddCommand(generateCmd)
	f := generateCmd.Flags()
	f.IntVarP(&genRepeat, "repeat", "r", 1, "number of times to repeat the accompaniment")
	f.StringVar(&genPreset, "preset", "1", "which default values to use")
	f.StringVar(&genPresetFile, "presets", "", "YAML file with extra preset definitions")
	f.Int64Var(&genSeed, "seed", 0, "random seed (a fresh one is picked if omitted)")
	f.StringVar(&genMidi, "midi", "", "also write a MIDI file to this path")
	f.BoolVarP(&genForce, "force", "f", false, "overwrite existing output files")

	f.StringVar(&genHarmony, "harmony", "", "harmony style or combination expression")
	f.IntVar(&genTempo, "tempo", 0, "beats per minute")
	f.Float64Var(&genMinLen, "min-len", 0, "minimum note length in ticks (ignoring stutter)")
	f.Float64Var(&genMaxLen, "max-len", 0, "maximum note length in ticks (ignoring stutter)")
	f.IntVar(&genHarmonyBase, "harmony-base", 0, "pitch of the harmony's lowest note, in half-steps")
	f.IntVar(&genMelodyBase, "melody-base", 0, "pitch of the melody's center, in half-steps")
	f.Float64Var(&genSteady, "steady", 0, "note-speed cycle length, in measures")
	f.Float64Var(&genGravity, "gravity", 0, "how strongly the melody oscillates around its center")
	f.Float64Var(&genDrag, "drag", 0, "how strongly the melody's velocity declines")
	f.Float64Var(&genNudge, "nudge", 0, "amount of random influence on the melody")
	f.Float64Var(&genStutter, "stutter", 0, "probability of an irregular note onset")
	f.Uint8Var(&genVolume, "volume", 0, "MIDI note velocity, 0-127")
}

var generateCmd = &cobra.Command{
	Use:   "generate OUTPUT.ly",
	Short: "Generates a piece and writes its notation",
	Long: `Generates a piece and writes LilyPond notation to OUTPUT.ly, plus a
MIDI rendition when --midi is given. Both outputs come from one generation
pass, so they always describe the same piece.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return generate(cmd, args[0])
	},
}

// buildConfig resolves the preset and lays explicitly-set flags over it.
func buildConfig(f *pflag.FlagSet) (config.Config, error) {
	var extra map[string]config.Config
	if genPresetFile != "" {
		var err error
		extra, err = config.LoadPresetFile(genPresetFile)
		if err != nil {
			return config.Config{}, err
		}
	}
	cfg, err := config.Preset(genPreset, extra)
	if err != nil {
		return config.Config{}, err
	}
	if f.Changed("harmony") {
		cfg.Harmony = genHarmony
	}
	if f.Changed("tempo") {
		cfg.Tempo = genTempo
	}
	if f.Changed("min-len") {
		cfg.MinLen = genMinLen
	}
	if f.Changed("max-len") {
		cfg.MaxLen = genMaxLen
	}
	if f.Changed("harmony-base") {
		cfg.HarmonyBase = genHarmonyBase
	}
	if f.Changed("melody-base") {
		cfg.MelodyBase = genMelodyBase
	}
	if f.Changed("steady") {
		cfg.Steady = genSteady
	}
	if f.Changed("gravity") {
		cfg.Gravity = genGravity
	}
	if f.Changed("drag") {
		cfg.Drag = genDrag
	}
	if f.Changed("nudge") {
		cfg.Nudge = genNudge
	}
	if f.Changed("stutter") {
		cfg.Stutter = genStutter
	}
	if f.Changed("volume") {
		cfg.Volume = genVolume
	}
	return cfg, cfg.Validate()
}

func checkOverwrite(path string, force bool) error {
	if force {
		return nil
	}
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%v already exists, pass --force to overwrite", path)
	}
	return nil
}

func generate(cmd *cobra.Command, output string) error {
	cfg, err := buildConfig(cmd.Flags())
	if err != nil {
		return err
	}
	if genRepeat < 1 {
		return fmt.Errorf("repeat must be at least 1, got %d", genRepeat)
	}
	// both paths are checked before anything is written, so a refusal can
	// never leave a mismatched pair behind
	if err := checkOverwrite(output, genForce); err != nil {
		return err
	}
	if genMidi != "" {
		if err := checkOverwrite(genMidi, genForce); err != nil {
			return err
		}
	}

	seed := genSeed
	if !cmd.Flags().Changed("seed") {
		seed = rng.RandomSeed()
	}

	piece, err := gen.Generate(cfg, genRepeat, seed)
	if err != nil {
		return err
	}

	ly := lily.NewEmitter(piece)
	render.Piece(piece, ly)
	if err := util.WriteFileAtomic(output, ly.Bytes()); err != nil {
		return fmt.Errorf("writing %v: %w", output, err)
	}
	fmt.Printf("wrote %v (seed %v)\n", output, seed)

	if genMidi != "" {
		mf := midifile.NewEmitter(piece)
		render.Piece(piece, mf)
		data, err := mf.Bytes()
		if err != nil {
			return err
		}
		if err := util.WriteFileAtomic(genMidi, data); err != nil {
			return fmt.Errorf("writing %v: %w", genMidi, err)
		}
		fmt.Printf("wrote %v\n", genMidi)
	}
	return nil
}
