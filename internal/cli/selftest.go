package cli

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/ehrlich-b/cube/internal/selftest"
	"github.com/ehrlich-b/cube/internal/thistlethwaite"
)

var selftestCmd = &cobra.Command{
	Use:   "selftest",
	Short: "Run the solver against a fixed set of scrambles plus random scrambles",
	Run: func(cmd *cobra.Command, args []string) {
		tablesDir, _ := cmd.Flags().GetString("tables-dir")
		randomCount, _ := cmd.Flags().GetInt("random-count")
		randomLength, _ := cmd.Flags().GetInt("random-length")
		seed, _ := cmd.Flags().GetInt64("seed")
		dbPath, _ := cmd.Flags().GetString("db")

		store, err := selftest.OpenStore(dbPath)
		if err != nil {
			fmt.Printf("Error opening run-history store: %v\n", err)
		}
		defer store.Close()

		solver := thistlethwaite.LoadSolver(tablesDir)
		runID, report, err := selftest.Run(solver, randomCount, randomLength, seed, store)
		if err != nil {
			fmt.Printf("Error saving run history: %v\n", err)
		}

		renderSelftestReport(runID, report)
	},
}

var (
	selftestHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	selftestFailStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	selftestPassStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
)

func renderSelftestReport(runID string, rep thistlethwaite.Report) {
	fmt.Println(selftestHeaderStyle.Render(fmt.Sprintf("selftest run %s", runID)))

	passed := 0
	for _, r := range rep.Results {
		status := selftestPassStyle.Render("PASS")
		if !r.Solved || r.Err != nil {
			status = selftestFailStyle.Render("FAIL")
		} else {
			passed++
		}
		scramble := r.Scramble
		if scramble == "" {
			scramble = "(solved)"
		}
		fmt.Printf("%s  %-40s moves=%-4d %v\n", status, scramble, r.MoveCount, r.Duration.Round(time.Microsecond))
	}

	summary := lipgloss.NewStyle().MarginTop(1)
	fmt.Println(summary.Render(fmt.Sprintf(
		"%d/%d passed  |  moves best=%d worst=%d avg=%.1f  |  time best=%v worst=%v avg=%v",
		passed, len(rep.Results), rep.BestMoves, rep.WorstMoves, rep.AvgMoves,
		rep.BestTime.Round(time.Microsecond), rep.WorstTime.Round(time.Microsecond), rep.AvgTime.Round(time.Microsecond),
	)))
}

func init() {
	selftestCmd.Flags().String("tables-dir", "tables", "Directory containing generated Thistlethwaite phase table files")
	selftestCmd.Flags().Int("random-count", 9, "Number of random scrambles to generate and solve")
	selftestCmd.Flags().Int("random-length", 50, "Token length of each random scramble")
	selftestCmd.Flags().Int64("seed", 1, "Seed for the random scramble generator")
	selftestCmd.Flags().String("db", "", "Optional SQLite database path for persisting run history")
	rootCmd.AddCommand(selftestCmd)
}
