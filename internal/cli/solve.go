package cli

import (
	"fmt"
	"os"

	"github.com/ehrlich-b/cube/internal/bridge"
	"github.com/ehrlich-b/cube/internal/cfen"
	"github.com/ehrlich-b/cube/internal/cube"
	"github.com/ehrlich-b/cube/internal/thistlethwaite"
	"github.com/spf13/cobra"
)

var solveCmd = &cobra.Command{
	Use:   "solve [scramble]",
	Short: "Solve a scrambled 3x3x3 cube with the Thistlethwaite algorithm",
	Long: `Solve a scrambled 3x3x3 cube using Thistlethwaite's four-phase
group reduction. The scramble should be provided as a string of moves
drawn from the 18-move face-turn alphabet (R, R', R2, L, ... B2).

Use --headless for programmatic output (space-separated moves only).`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		scramble := args[0]
		headless, _ := cmd.Flags().GetBool("headless")
		useCfenOutput, _ := cmd.Flags().GetBool("cfen")
		startCfen, _ := cmd.Flags().GetString("start")
		tablesDir, _ := cmd.Flags().GetString("tables-dir")

		if startCfen != "" {
			if !headless {
				fmt.Println("Error: --start is not supported; the solver only starts from the solved cube plus the scramble argument")
			}
			os.Exit(1)
		}

		runThistlethwaiteSolve(scramble, tablesDir, headless, useCfenOutput)
	},
}

// runThistlethwaiteSolve parses scramble directly into the 18-token
// alphabet and solves it with the Thistlethwaite core, entirely in
// cubelet-state space. The sticker cube is only reconstructed afterward,
// by replaying the same tokens, for human-facing CFEN display.
func runThistlethwaiteSolve(scramble, tablesDir string, headless, useCfenOutput bool) {
	tokens, err := thistlethwaite.ParseTokens(scramble)
	if err != nil {
		if !headless {
			fmt.Printf("Error parsing scramble: %v\n", err)
		}
		os.Exit(1)
	}

	solver := thistlethwaite.LoadSolver(tablesDir)
	start := thistlethwaite.NewSolved().ApplyTurns(tokens)
	solution := solver.Solve(start)
	final := start.ApplyTurns(solution)

	if !headless {
		fmt.Printf("Solving 3x3x3 cube with scramble: %s\n", scramble)
	}

	if useCfenOutput {
		c := cube.NewCube(3)
		c.ApplyMoves(bridge.TokensToMoves(tokens))
		c.ApplyMoves(bridge.TokensToMoves(solution))
		cfenStr, err := cfen.GenerateCFEN(c)
		if err != nil {
			if !headless {
				fmt.Printf("Error generating CFEN: %v\n", err)
			}
			os.Exit(1)
		}
		fmt.Print(cfenStr)
		return
	}

	solutionStr := thistlethwaite.TokensString(solution)
	if headless {
		fmt.Print(solutionStr)
		return
	}

	fmt.Printf("Solution: %s\n", solutionStr)
	fmt.Printf("Steps: %d\n", len(solution))
	if !final.IsSolved() {
		fmt.Println("Warning: solution did not reach the solved state (check that phase tables are generated)")
	}
}

func init() {
	solveCmd.Flags().Bool("headless", false, "Output only space-separated moves for programmatic use")
	solveCmd.Flags().Bool("cfen", false, "Output final cube state as CFEN string instead of moves")
	solveCmd.Flags().String("start", "", "Reserved; starting from a non-solved CFEN is not supported")
	solveCmd.Flags().String("tables-dir", "tables", "Directory containing generated Thistlethwaite phase table files")
}
