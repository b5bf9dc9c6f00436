package cmd

import (
	"fmt"
	"math/rand"

	"github.com/spf13/cobra"

	"github.com/faizfusion/saharenau/render"
	"github.com/faizfusion/saharenau/score"
	"github.com/faizfusion/saharenau/util"
)

func init() {
	inspectCmd.Flags().StringVarP(&generateConfigPath, "config", "c", "", "YAML composition config")
	inspectCmd.Flags().Int64VarP(&generateSeed, "seed", "s", 0, "override the config seed")
	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect [midi file]",
	Short: "Prints a score summary, or the track layout of an exported .mid",
	Long:  `Prints a score summary, or the track layout of an exported .mid`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 1 {
			inspectMidi(args[0])
			return
		}
		inspectScore()
	},
}

func inspectScore() {
	cfg := loadConfig()
	rng := rand.New(rand.NewSource(cfg.Seed))
	s, err := score.Build(cfg, rng)
	if err != nil {
		panic("Could not build score: " + err.Error())
	}

	fmt.Printf("%v (%v)\n", s.Title, s.Composer)
	var counts []int
	for _, voice := range s.Voices {
		counts = append(counts, len(voice.Events))
		if len(voice.Events) == 0 {
			fmt.Printf("%-8v (empty)\n", voice.Name)
			continue
		}
		first := voice.Events[0].Offset
		var last float64
		for _, pe := range voice.Events {
			if stop := pe.Offset + pe.Event.Duration; stop > last {
				last = stop
			}
		}
		fmt.Printf("%-8v %4v events, beats %g..%g\n", voice.Name, len(voice.Events), first, last)
	}
	fmt.Printf("%v events total\n", util.Sum(counts))
	for _, tm := range s.Tempos {
		fmt.Printf("tempo %g BPM at beat %g\n", tm.BPM, tm.Offset)
	}
}

func inspectMidi(path string) {
	mf, err := render.ReadSMFFile(path)
	if err != nil {
		panic(err.Error())
	}
	fmt.Printf("%v tracks, time format %v\n", len(mf.Tracks), mf.TimeFormat)
	for i, track := range mf.Tracks {
		fmt.Printf("track %v: %v events\n", i, len(track))
	}
}
