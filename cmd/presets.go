package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/meander-gen/meander/config"
	"github.com/meander-gen/meander/harmony"
)

func init() {
	rootCmd.AddCommand(presetsCmd)
}

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "Lists built-in presets and harmony styles",
	Long:  `Lists built-in presets and harmony styles`,
	Run: func(cmd *cobra.Command, args []string) {
		listPresets()
	},
}

func listPresets() {
	fmt.Println("presets:")
	for _, name := range config.PresetNames() {
		c, _ := config.Preset(name, nil)
		fmt.Printf("  %v: harmony=%v tempo=%v min-len=%v max-len=%v stutter=%v\n",
			name, c.Harmony, c.Tempo, c.MinLen, c.MaxLen, c.Stutter)
	}
	fmt.Printf("harmony styles: %v\n", strings.Join(harmony.StyleNames(), ", "))
	fmt.Println(`styles combine with + (sequence) and * (random choice)`)
}
