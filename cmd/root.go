package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "saharenau",
	Short: "Generates the Sahar-e-Nau score",
	Long:  `Procedurally generates "Sahar-e-Nau: Symphony of the Awakening" and exports it to MIDI and MusicXML.`,
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
