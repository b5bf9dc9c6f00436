package cmd

import (
	"fmt"
	"math/rand"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/faizfusion/saharenau/config"
	"github.com/faizfusion/saharenau/constants"
	"github.com/faizfusion/saharenau/musicxml"
	"github.com/faizfusion/saharenau/render"
	"github.com/faizfusion/saharenau/score"
	"github.com/faizfusion/saharenau/util"
)

var generateConfigPath string
var generateSeed int64

func init() {
	generateCmd.Flags().StringVarP(&generateConfigPath, "config", "c", "", "YAML composition config")
	generateCmd.Flags().Int64VarP(&generateSeed, "seed", "s", 0, "override the config seed")
	rootCmd.AddCommand(generateCmd)
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generates and exports the score",
	Long:  `Generates and exports the score`,
	Run: func(cmd *cobra.Command, args []string) {
		Generate(loadConfig())
	},
}

func loadConfig() config.Config {
	cfg := config.Default()
	if generateConfigPath != "" {
		loaded, err := config.Load(generateConfigPath)
		if err != nil {
			panic(err.Error())
		}
		cfg = loaded
	}
	if generateSeed != 0 {
		cfg.Seed = generateSeed
	}
	return cfg
}

// Generate builds the whole composition and writes both export formats
// into the out dir.
func Generate(cfg config.Config) {
	fmt.Printf("Generating %q with seed %v\n", cfg.Title, cfg.Seed)

	rng := rand.New(rand.NewSource(cfg.Seed))
	s, err := score.Build(cfg, rng)
	if err != nil {
		panic("Could not build score: " + err.Error())
	}

	util.RecreateOutputDir()
	outDir := constants.GetOutDir()

	midiPath := filepath.Join(outDir, constants.MidiFilename)
	fmt.Printf("Writing %v\n", midiPath)
	if err := render.WriteSMFFile(s, midiPath); err != nil {
		panic("Could not write midi: " + err.Error())
	}

	xmlPath := filepath.Join(outDir, constants.MusicXMLFilename)
	fmt.Printf("Writing %v\n", xmlPath)
	if err := musicxml.ExportFile(s, xmlPath); err != nil {
		panic("Could not write musicxml: " + err.Error())
	}
}
