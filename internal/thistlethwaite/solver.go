package thistlethwaite

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
)

// tableFileNames gives the on-disk name for each phase's table file,
// relative to a solver's table directory.
var tableFileNames = [4]string{"phase0.tbl", "phase1.tbl", "phase2.tbl", "phase3.tbl"}

// Solver holds the four loaded phase tables and solves states against
// them. Once constructed its tables are read-only; Solve is safe to call
// concurrently from multiple goroutines on the same Solver, though a
// single Solve call itself is single-threaded and synchronous.
type Solver struct {
	tables [4]*PhaseTable
}

// LoadSolver loads phase0.tbl..phase3.tbl from dir. A missing or corrupt
// table file is logged (not fatal) and replaced with an empty table for
// that phase; a solver built this way will fail to find depth-reducing
// moves for that phase and Solve will return a partial (non-solving)
// sequence, exactly as an absent table should behave per the error design.
func LoadSolver(dir string) *Solver {
	sv := &Solver{}
	for i, p := range Phases {
		path := filepath.Join(dir, tableFileNames[i])
		t, err := ReadPhaseTableFile(path, p.Capacity)
		if err != nil {
			log.Printf("thistlethwaite: %v, using empty %s table", err, p.Name)
			t = NewPhaseTable(p.Capacity)
		}
		sv.tables[i] = t
	}
	return sv
}

// NewSolverFromTables builds a Solver directly from already-generated
// tables, skipping the filesystem entirely (used by GenerateAllTables
// callers and by tests).
func NewSolverFromTables(tables [4]*PhaseTable) *Solver {
	return &Solver{tables: tables}
}

// SaveTables writes the four given tables to dir using the standard file
// names, creating dir if necessary.
func SaveTables(dir string, tables [4]*PhaseTable) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("thistlethwaite: creating %s: %w", dir, err)
	}
	for i, t := range tables {
		path := filepath.Join(dir, tableFileNames[i])
		if err := t.WriteFile(path); err != nil {
			return fmt.Errorf("thistlethwaite: saving %s: %w", Phases[i].Name, err)
		}
	}
	return nil
}

// Solve returns the turn sequence that takes state to the solved state,
// found by running the four phases in order (greedy descent for phases 0
// and 1, iterative-deepening search for phases 2 and 3) and simplifying
// the concatenated result. If a table is missing or corrupt the affected
// phase contributes no moves and the overall result will not solve the
// cube; Solve never panics and never blocks on anything but CPU.
func (sv *Solver) Solve(state State) []Token {
	cur := state
	var all []Token

	seg, next, _ := GreedyDescent(cur, sv.tables[0], Phase0)
	all = append(all, seg...)
	cur = next

	seg, next, _ = GreedyDescent(cur, sv.tables[1], Phase1)
	all = append(all, seg...)
	cur = next

	seg = IDDFSSearch(cur, sv.tables[2], Phase2)
	all = append(all, seg...)
	cur = cur.ApplyTurns(seg)

	seg = IDDFSSearch(cur, sv.tables[3], Phase3)
	all = append(all, seg...)
	cur = cur.ApplyTurns(seg)

	return Simplify(all)
}

// TableStats summarizes one phase table for CLI/API reporting.
type TableStats struct {
	Phase    string
	Entries  int
	Capacity int
	MaxDepth uint8
}

// Stats returns per-phase table statistics for sv's currently loaded
// tables.
func (sv *Solver) Stats() [4]TableStats {
	var stats [4]TableStats
	for i, t := range sv.tables {
		stats[i] = TableStats{
			Phase:    Phases[i].Name,
			Entries:  t.Len(),
			Capacity: len(t.Depth),
			MaxDepth: t.MaxDepth(),
		}
	}
	return stats
}
