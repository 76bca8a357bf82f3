package thistlethwaite

import "hash/fnv"

// Corner cubelet identities / solved positions, 0..7. Tetrad A is
// {UBL, DFL, DBR, UFR} = ids 0..3; tetrad B is {UFL, DBL, DFR, UBR} = ids
// 4..7. The id numbering is deliberately chosen so that tetrad membership
// falls out of a simple `id < 4` test (see coords.go).
const (
	UBL = iota
	DFL
	DBR
	UFR
	UFL
	DBL
	DFR
	UBR
)

// Edge cubelet identities / solved positions, 0..11. Positions 0..7 are the
// eight non-M-slice edges; positions 8..11 are the four M-slice edges
// {UF, DF, DB, UB}, so "is this edge in the M-slice" is also a simple
// `id >= 8` test.
const (
	EUL = iota
	EDL
	EDR
	EUR
	EBL
	EFL
	EFR
	EBR
	EUF
	EDF
	EDB
	EUB
)

// State is the cubelet-based representation of a 3x3x3 cube: four small
// fixed-size arrays, cheap to copy by value and cheap to hash. Corner/edge
// orientation is always indexed by cubelet identity, never by position, so
// orientation travels with the physical piece across turns.
type State struct {
	CornerPerm   [8]int8
	CornerOrient [8]int8
	EdgePerm     [12]int8
	EdgeOrient   [12]int8
}

// NewSolved returns the identity state: every cubelet in its own position
// at orientation 0.
func NewSolved() State {
	var s State
	for i := 0; i < 8; i++ {
		s.CornerPerm[i] = int8(i)
	}
	for i := 0; i < 12; i++ {
		s.EdgePerm[i] = int8(i)
	}
	return s
}

// IsSolved reports whether every cubelet is in its home position at
// orientation 0.
func (s State) IsSolved() bool {
	return s == NewSolved()
}

// Hash returns a value stable across runs for the same state, suitable for
// use as a map key or for comparing states in tests.
func (s State) Hash() uint64 {
	h := fnv.New64a()
	var buf [40]byte
	for i := 0; i < 8; i++ {
		buf[i] = byte(s.CornerPerm[i])
		buf[8+i] = byte(s.CornerOrient[i])
	}
	for i := 0; i < 12; i++ {
		buf[16+i] = byte(s.EdgePerm[i])
		buf[28+i] = byte(s.EdgeOrient[i])
	}
	h.Write(buf[:])
	return h.Sum64()
}

// cornerCycle/edgeCycle give, for each face, the four position indices
// (c0, c1, c2, c3) permuted by a clockwise quarter turn of that face. A
// clockwise quarter turn moves the cubelet at c0 to c1, c1 to c2, c2 to c3,
// and c3 to c0 (content flows c0 -> c1 -> c2 -> c3 -> c0).
var cornerCycle = [6][4]int{
	FaceR: {DBR, DFR, UFR, UBR},
	FaceL: {UBL, UFL, DFL, DBL},
	FaceU: {UBL, UBR, UFR, UFL},
	FaceD: {DFL, DFR, DBR, DBL},
	FaceF: {UFL, UFR, DFR, DFL},
	FaceB: {DBL, DBR, UBR, UBL},
}

var edgeCycle = [6][4]int{
	FaceR: {EUR, EBR, EDR, EFR},
	FaceL: {EFL, EDL, EBL, EUL},
	FaceU: {EUB, EUR, EUF, EUL},
	FaceD: {EDL, EDF, EDR, EDB},
	FaceF: {EUF, EFR, EDF, EFL},
	FaceB: {EBL, EDB, EBR, EUB},
}

// cornerOrientDelta gives the per-position corner-orientation twist a
// clockwise quarter turn adds, aligned with cornerCycle's (c0,c1,c2,c3)
// ordering. Only U, D, F, B twist corners; R and L do not (absent here).
var cornerOrientDelta = map[Face][4]int8{
	FaceU: {2, 1, 2, 1},
	FaceD: {2, 1, 2, 1},
	FaceF: {2, 1, 2, 1},
	FaceB: {2, 1, 2, 1},
}

// edgeFlipFaces is the set of faces whose quarter turns flip edge
// orientation. This is the "possibly buggy source behavior" called out in
// the design notes: only U and D flip, matching the literal spec rule.
var edgeFlipFaces = map[Face]bool{
	FaceU: true,
	FaceD: true,
}

// applyQuarterCW performs one clockwise quarter turn of face on s.
func (s *State) applyQuarterCW(face Face) {
	cyc := cornerCycle[face]
	oc := s.CornerPerm
	s.CornerPerm[cyc[0]] = oc[cyc[3]]
	s.CornerPerm[cyc[3]] = oc[cyc[2]]
	s.CornerPerm[cyc[2]] = oc[cyc[1]]
	s.CornerPerm[cyc[1]] = oc[cyc[0]]

	ecyc := edgeCycle[face]
	oe := s.EdgePerm
	s.EdgePerm[ecyc[0]] = oe[ecyc[3]]
	s.EdgePerm[ecyc[3]] = oe[ecyc[2]]
	s.EdgePerm[ecyc[2]] = oe[ecyc[1]]
	s.EdgePerm[ecyc[1]] = oe[ecyc[0]]

	if delta, ok := cornerOrientDelta[face]; ok {
		for i := 0; i < 4; i++ {
			id := s.CornerPerm[cyc[i]]
			s.CornerOrient[id] = (s.CornerOrient[id] + delta[i]) % 3
		}
	}
	if edgeFlipFaces[face] {
		for i := 0; i < 4; i++ {
			id := s.EdgePerm[ecyc[i]]
			s.EdgeOrient[id] ^= 1
		}
	}
}

// applyQuarterCCW performs one counter-clockwise quarter turn of face on s.
func (s *State) applyQuarterCCW(face Face) {
	cyc := cornerCycle[face]
	oc := s.CornerPerm
	s.CornerPerm[cyc[0]] = oc[cyc[1]]
	s.CornerPerm[cyc[1]] = oc[cyc[2]]
	s.CornerPerm[cyc[2]] = oc[cyc[3]]
	s.CornerPerm[cyc[3]] = oc[cyc[0]]

	ecyc := edgeCycle[face]
	oe := s.EdgePerm
	s.EdgePerm[ecyc[0]] = oe[ecyc[1]]
	s.EdgePerm[ecyc[1]] = oe[ecyc[2]]
	s.EdgePerm[ecyc[2]] = oe[ecyc[3]]
	s.EdgePerm[ecyc[3]] = oe[ecyc[0]]

	if delta, ok := cornerOrientDelta[face]; ok {
		for i := 0; i < 4; i++ {
			id := s.CornerPerm[cyc[i]]
			// The cubelet now at cyc[i] came from cyc[i+1], where a
			// clockwise turn would have given it delta[i+1]; undo that.
			inv := (3 - delta[(i+1)%4]) % 3
			s.CornerOrient[id] = (s.CornerOrient[id] + inv) % 3
		}
	}
	if edgeFlipFaces[face] {
		for i := 0; i < 4; i++ {
			id := s.EdgePerm[ecyc[i]]
			s.EdgeOrient[id] ^= 1
		}
	}
}

// ApplyTurn applies a single token to s in place. A half turn is two
// clockwise quarter turns; the orientation deltas cancel out over the two
// applications exactly as two physical quarter turns would.
func (s *State) ApplyTurn(t Token) {
	switch t.Variant {
	case Clockwise:
		s.applyQuarterCW(t.Face)
	case CounterClockwise:
		s.applyQuarterCCW(t.Face)
	case Half:
		s.applyQuarterCW(t.Face)
		s.applyQuarterCW(t.Face)
	}
}

// ApplyTurns returns the state obtained by applying tokens, in order, to a
// copy of s. s itself is left unmodified (State is a value type).
func (s State) ApplyTurns(tokens []Token) State {
	for _, t := range tokens {
		s.ApplyTurn(t)
	}
	return s
}
