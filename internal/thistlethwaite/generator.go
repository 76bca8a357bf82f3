package thistlethwaite

// CoordFunc projects a state onto one phase's coordinate space. ok is
// false when the state is outside the space the function is defined for
// (only possible for Phase3Coord).
type CoordFunc func(State) (uint32, bool)

// Phase describes one phase's search configuration: the legal moves, the
// coordinate function, and the dense table capacity.
type Phase struct {
	Name     string
	TurnSet  []Token
	Coord    CoordFunc
	Capacity int
}

// Phase0 restricts to nothing: every one of the 18 tokens reduces G0 to G1
// (fixing edge orientation).
var Phase0 = Phase{
	Name:     "phase0",
	TurnSet:  AllTokens,
	Coord:    Phase0Coord,
	Capacity: Phase0Size,
}

// phase1TurnSet drops the quarter U/D turns that would undo phase 0's
// edge-orientation fix while still allowing everything needed to reduce
// G1 to G2.
var phase1TurnSet = []Token{
	{FaceR, Clockwise}, {FaceR, CounterClockwise}, {FaceR, Half},
	{FaceL, Clockwise}, {FaceL, CounterClockwise}, {FaceL, Half},
	{FaceU, Half},
	{FaceD, Half},
	{FaceF, Clockwise}, {FaceF, CounterClockwise}, {FaceF, Half},
	{FaceB, Clockwise}, {FaceB, CounterClockwise}, {FaceB, Half},
}

var Phase1 = Phase{
	Name:     "phase1",
	TurnSet:  phase1TurnSet,
	Coord:    Phase1Coord,
	Capacity: Phase1Size,
}

// phase2TurnSet further restricts to the moves that keep both corner
// tetrads and the ES-slice edges confined to their sets.
var phase2TurnSet = []Token{
	{FaceR, Clockwise}, {FaceR, CounterClockwise}, {FaceR, Half},
	{FaceL, Clockwise}, {FaceL, CounterClockwise}, {FaceL, Half},
	{FaceU, Half},
	{FaceD, Half},
	{FaceF, Half},
	{FaceB, Half},
}

var Phase2 = Phase{
	Name:     "phase2",
	TurnSet:  phase2TurnSet,
	Coord:    Phase2Coord,
	Capacity: Phase2Size,
}

// Phase3 allows only the six double turns, the subgroup that resolves the
// final corner and edge permutations without disturbing orientation or
// slice placement.
var Phase3 = Phase{
	Name:     "phase3",
	TurnSet:  phase3TurnSet,
	Coord:    Phase3Coord,
	Capacity: Phase3Size,
}

// Phases lists all four phases in solve order.
var Phases = [4]Phase{Phase0, Phase1, Phase2, Phase3}

// GeneratePhaseTable builds a phase table by breadth-first search outward
// from the solved state, using only p's turn set, and recording the BFS
// depth (minimum move count under that turn set) at which each coordinate
// is first reached.
func GeneratePhaseTable(p Phase) *PhaseTable {
	table := NewPhaseTable(p.Capacity)
	start := NewSolved()
	startCoord, _ := p.Coord(start)
	table.Set(startCoord, 0)

	queue := []State{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		curCoord, _ := p.Coord(cur)
		curDepth, _ := table.Get(curCoord)

		for _, tk := range p.TurnSet {
			next := cur
			next.ApplyTurn(tk)
			nc, ok := p.Coord(next)
			if !ok {
				continue
			}
			if _, seen := table.Get(nc); seen {
				continue
			}
			table.Set(nc, curDepth+1)
			queue = append(queue, next)
		}
	}
	return table
}

// GenerateAllTables builds all four phase tables in order.
func GenerateAllTables() [4]*PhaseTable {
	var tables [4]*PhaseTable
	for i, p := range Phases {
		tables[i] = GeneratePhaseTable(p)
	}
	return tables
}
