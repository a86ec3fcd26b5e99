package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "meander",
	Short: "Procedural music generator",
	Long: `meander generates short piano pieces from a handful of numeric
parameters and a seed, as LilyPond notation and optionally MIDI.`,
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
