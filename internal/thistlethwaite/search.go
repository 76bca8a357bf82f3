package thistlethwaite

// GreedyDescent solves phases 0 and 1: at each step it tries every move in
// the phase's turn set (in the set's fixed order) and takes the first one
// that strictly decreases the table depth, stopping when depth reaches 0.
// It is deterministic and does not backtrack; phases 0 and 1's tables
// guarantee a depth-reducing move always exists from any reachable state.
func GreedyDescent(start State, table *PhaseTable, p Phase) ([]Token, State, error) {
	var solution []Token
	cur := start
	for {
		coord, ok := p.Coord(cur)
		if !ok {
			return solution, cur, ErrUnreachableCoordinate
		}
		d, ok := table.Get(coord)
		if !ok {
			return solution, cur, ErrUnreachableCoordinate
		}
		if d == 0 {
			return solution, cur, nil
		}

		found := false
		for _, tk := range p.TurnSet {
			next := cur
			next.ApplyTurn(tk)
			nc, ok := p.Coord(next)
			if !ok {
				continue
			}
			nd, ok := table.Get(nc)
			if ok && nd == d-1 {
				cur = next
				solution = append(solution, tk)
				found = true
				break
			}
		}
		if !found {
			return solution, cur, ErrNoDepthReducingMove
		}
	}
}

// IDDFSSearch solves phases 2 and 3 by iterative-deepening depth-first
// search, bounded by the table's recorded depth for the start coordinate
// (so the outer loop never probes past the known optimum under this
// phase's turn set). It returns nil if the state's coordinate is missing
// from the table (table absent or corrupt).
func IDDFSSearch(start State, table *PhaseTable, p Phase) []Token {
	startCoord, ok := p.Coord(start)
	if !ok {
		return nil
	}
	maxDepth, ok := table.Get(startCoord)
	if !ok {
		return nil
	}

	for limit := 0; limit <= int(maxDepth); limit++ {
		var solution []Token
		if dfs(start, table, p, limit, &solution) {
			return solution
		}
	}
	return nil
}

func dfs(state State, table *PhaseTable, p Phase, limit int, solution *[]Token) bool {
	coord, ok := p.Coord(state)
	if !ok {
		return false
	}
	d, ok := table.Get(coord)
	if !ok || int(d) > limit {
		return false
	}
	if d == 0 {
		return true
	}
	if limit == 0 {
		return false
	}

	for _, tk := range p.TurnSet {
		next := state
		next.ApplyTurn(tk)
		*solution = append(*solution, tk)
		if dfs(next, table, p, limit-1, solution) {
			return true
		}
		*solution = (*solution)[:len(*solution)-1]
	}
	return false
}
