package thistlethwaite

import (
	"math/rand"
	"testing"
)

func TestRankCombinationBounds(t *testing.T) {
	if got := rankCombination([]int{0, 1, 2, 3}, 8, 4); got != 0 {
		t.Errorf("rankCombination of the first 4-subset = %d, want 0", got)
	}
	want := binomial(8, 4) - 1
	if got := rankCombination([]int{4, 5, 6, 7}, 8, 4); got != want {
		t.Errorf("rankCombination of the last 4-subset = %d, want %d", got, want)
	}
}

func TestPhaseCoordsOfSolvedAreZero(t *testing.T) {
	s := NewSolved()

	if c, ok := Phase0Coord(s); !ok || c != 0 {
		t.Errorf("Phase0Coord(solved) = (%d, %v), want (0, true)", c, ok)
	}
	if c, ok := Phase1Coord(s); !ok || c != 0 {
		t.Errorf("Phase1Coord(solved) = (%d, %v), want (0, true)", c, ok)
	}
	if c, ok := Phase2Coord(s); !ok || c != 0 {
		t.Errorf("Phase2Coord(solved) = (%d, %v), want (0, true)", c, ok)
	}
	if c, ok := Phase3Coord(s); !ok || c != 0 {
		t.Errorf("Phase3Coord(solved) = (%d, %v), want (0, true)", c, ok)
	}
}

// TestCoordinateNoOpInvariance checks that a sequence which is a no-op
// for a given phase's group (here: four quarter turns of the same face,
// which always returns to solved) projects back to the solved coordinate.
func TestCoordinateNoOpInvariance(t *testing.T) {
	for _, face := range []Face{FaceR, FaceL, FaceU, FaceD, FaceF, FaceB} {
		s := NewSolved()
		for i := 0; i < 4; i++ {
			s.ApplyTurn(Token{Face: face, Variant: Clockwise})
		}
		if c, _ := Phase0Coord(s); c != 0 {
			t.Errorf("Phase0Coord after four %s turns = %d, want 0", face, c)
		}
	}
}

// TestPhase0CoordRangeUnderRandomStates samples random walks and checks
// every phase-0 coordinate produced stays within its declared range.
func TestPhase0CoordRangeUnderRandomStates(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	s := NewSolved()
	for i := 0; i < 1000; i++ {
		s.ApplyTurn(AllTokens[rng.Intn(len(AllTokens))])
		c, ok := Phase0Coord(s)
		if !ok {
			t.Fatalf("iteration %d: Phase0Coord returned ok=false", i)
		}
		if c >= Phase0Size {
			t.Fatalf("iteration %d: Phase0Coord = %d out of range [0, %d)", i, c, Phase0Size)
		}
	}
}

func TestPhase3CoordOnlyForReachableStates(t *testing.T) {
	s := NewSolved()
	for _, tk := range phase3TurnSet {
		s.ApplyTurn(tk)
	}
	if _, ok := Phase3Coord(s); !ok {
		t.Fatal("a state reached purely by phase-3 turns should have a valid Phase3Coord")
	}
}
