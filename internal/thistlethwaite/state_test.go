package thistlethwaite

import (
	"math/rand"
	"testing"
)

func TestNewSolvedIsSolved(t *testing.T) {
	if !NewSolved().IsSolved() {
		t.Fatal("NewSolved() should be solved")
	}
}

func TestApplyTurnQuarterTimesFourIsIdentity(t *testing.T) {
	for _, face := range []Face{FaceR, FaceL, FaceU, FaceD, FaceF, FaceB} {
		t.Run(face.String(), func(t *testing.T) {
			s := NewSolved()
			for i := 0; i < 4; i++ {
				s.ApplyTurn(Token{Face: face, Variant: Clockwise})
			}
			if !s.IsSolved() {
				t.Errorf("four clockwise quarter turns of %s should return to solved", face)
			}
		})
	}
}

func TestApplyTurnInverse(t *testing.T) {
	for _, face := range []Face{FaceR, FaceL, FaceU, FaceD, FaceF, FaceB} {
		s := NewSolved()
		s.ApplyTurn(Token{Face: face, Variant: Clockwise})
		s.ApplyTurn(Token{Face: face, Variant: CounterClockwise})
		if !s.IsSolved() {
			t.Errorf("%s then %s' should return to solved", face, face)
		}
	}
}

func TestApplyTurnHalfEqualsTwoQuarters(t *testing.T) {
	for _, face := range []Face{FaceR, FaceL, FaceU, FaceD, FaceF, FaceB} {
		half := NewSolved()
		half.ApplyTurn(Token{Face: face, Variant: Half})

		double := NewSolved()
		double.ApplyTurn(Token{Face: face, Variant: Clockwise})
		double.ApplyTurn(Token{Face: face, Variant: Clockwise})

		if half != double {
			t.Errorf("%s2 should equal %s %s", face, face, face)
		}
	}
}

// TestGlobalInvariantsUnderRandomWalk checks the two invariants every
// reachable state must satisfy: total corner-orientation sum is 0 mod 3,
// and total edge-orientation sum is 0 mod 2.
func TestGlobalInvariantsUnderRandomWalk(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	s := NewSolved()
	for step := 0; step < 2000; step++ {
		tok := AllTokens[rng.Intn(len(AllTokens))]
		s.ApplyTurn(tok)

		var cSum, eSum int
		for _, o := range s.CornerOrient {
			cSum += int(o)
		}
		for _, o := range s.EdgeOrient {
			eSum += int(o)
		}
		if cSum%3 != 0 {
			t.Fatalf("step %d: corner orientation sum %d not divisible by 3", step, cSum)
		}
		if eSum%2 != 0 {
			t.Fatalf("step %d: edge orientation sum %d not even", step, eSum)
		}
	}
}

func TestApplyTurnsAndHashConsistency(t *testing.T) {
	tokens, err := ParseTokens("R U R' U'")
	if err != nil {
		t.Fatalf("ParseTokens failed: %v", err)
	}
	a := NewSolved().ApplyTurns(tokens)
	b := NewSolved().ApplyTurns(tokens)
	if a.Hash() != b.Hash() {
		t.Fatal("identical scrambles should hash identically")
	}
	if a.IsSolved() {
		t.Fatal("R U R' U' should not solve the cube")
	}
}

func TestApplyTurnsDoesNotMutateReceiver(t *testing.T) {
	base := NewSolved()
	_ = base.ApplyTurns([]Token{{FaceR, Clockwise}})
	if !base.IsSolved() {
		t.Fatal("ApplyTurns should operate on a copy, leaving the receiver untouched")
	}
}
