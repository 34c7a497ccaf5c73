package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "tetrisctl",
	Short: "Drive and inspect the tetrisengine falling-block engine",
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(PlayCmd)
	rootCmd.AddCommand(InspectCmd)
}
