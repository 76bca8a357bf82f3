package cli

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "cube",
	Short: "A 3x3x3 Rubik's cube solver using Thistlethwaite's algorithm",
	Long: `Cube solves a 3x3x3 Rubik's cube using Thistlethwaite's four-phase
group reduction, plus sticker-level tools for twisting and inspecting
cube states.`,
	Version: "1.0.0",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(twistCmd)
	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(showCmd)
}
