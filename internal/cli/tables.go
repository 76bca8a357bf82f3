package cli

import (
	"fmt"
	"os"

	"github.com/ehrlich-b/cube/internal/thistlethwaite"
	"github.com/spf13/cobra"
)

var tablesCmd = &cobra.Command{
	Use:   "tables",
	Short: "Generate and inspect Thistlethwaite phase tables",
}

var tablesGenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate all four phase tables and write them to disk",
	Run: func(cmd *cobra.Command, args []string) {
		dir, _ := cmd.Flags().GetString("dir")
		if err := os.MkdirAll(dir, 0o755); err != nil {
			fmt.Printf("Error creating table directory: %v\n", err)
			os.Exit(1)
		}

		for _, p := range thistlethwaite.Phases {
			fmt.Printf("Generating %s (capacity %d)...\n", p.Name, p.Capacity)
			table := thistlethwaite.GeneratePhaseTable(p)
			fmt.Printf("  %d entries, max depth %d\n", table.Len(), table.MaxDepth())
			path := dir + "/" + p.Name + ".tbl"
			if err := table.WriteFile(path); err != nil {
				fmt.Printf("Error writing %s: %v\n", path, err)
				os.Exit(1)
			}
		}
	},
}

var tablesStatCmd = &cobra.Command{
	Use:   "stat",
	Short: "Report entry counts and max depth for the tables on disk",
	Run: func(cmd *cobra.Command, args []string) {
		dir, _ := cmd.Flags().GetString("dir")
		solver := thistlethwaite.LoadSolver(dir)
		for _, s := range solver.Stats() {
			fmt.Printf("%-8s %8d / %8d entries, max depth %d\n", s.Phase, s.Entries, s.Capacity, s.MaxDepth)
		}
	},
}

func init() {
	tablesCmd.PersistentFlags().String("dir", "tables", "Directory holding phase table files")
	tablesCmd.AddCommand(tablesGenerateCmd)
	tablesCmd.AddCommand(tablesStatCmd)
	rootCmd.AddCommand(tablesCmd)
}
