package thistlethwaite

import "testing"

// buildTestSolver generates all four phase tables in memory. This is slow
// (phase 1 and phase 3 each enumerate hundreds of thousands of states) but
// deterministic, so it is acceptable for a correctness test rather than a
// benchmark.
func buildTestSolver(t *testing.T) *Solver {
	t.Helper()
	tables := GenerateAllTables()
	return NewSolverFromTables(tables)
}

func TestSolverSolvesFixedScrambles(t *testing.T) {
	sv := buildTestSolver(t)

	scrambles := []string{
		"",
		"R",
		"R U R' U'",
		"F R U R' U' F'",
		"R U2 R' U' R U' R'",
	}

	for _, sc := range scrambles {
		t.Run(sc, func(t *testing.T) {
			tokens, err := ParseTokens(sc)
			if err != nil {
				t.Fatalf("ParseTokens(%q) failed: %v", sc, err)
			}
			scrambled := NewSolved().ApplyTurns(tokens)
			solution := sv.Solve(scrambled)
			final := scrambled.ApplyTurns(solution)
			if !final.IsSolved() {
				t.Errorf("solve(%q) = %q did not solve the cube", sc, TokensString(solution))
			}
		})
	}
}

func TestSolverOnAlreadySolvedReturnsEmpty(t *testing.T) {
	sv := buildTestSolver(t)
	solution := sv.Solve(NewSolved())
	if len(solution) != 0 {
		t.Errorf("solving an already-solved cube should return no moves, got %q", TokensString(solution))
	}
}

func TestSolverWithMissingTablesFailsWithoutPanic(t *testing.T) {
	var tables [4]*PhaseTable
	for i, p := range Phases {
		tables[i] = NewPhaseTable(p.Capacity)
	}
	sv := NewSolverFromTables(tables)

	tokens, _ := ParseTokens("R U R' U'")
	scrambled := NewSolved().ApplyTurns(tokens)

	solution := sv.Solve(scrambled)
	final := scrambled.ApplyTurns(solution)
	if final.IsSolved() {
		t.Fatal("solving against empty tables should not coincidentally solve a scrambled cube")
	}
}
