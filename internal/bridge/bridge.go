// Package bridge translates between internal/thistlethwaite's restricted
// 18-token turn alphabet and internal/cube's general sticker-based Move
// type, so the solver core's output can be replayed on a cube.Cube purely
// for display (colored/unicode rendering, CFEN export) without the
// sticker representation ever participating in the actual solve.
package bridge

import (
	"github.com/ehrlich-b/cube/internal/cube"
	"github.com/ehrlich-b/cube/internal/thistlethwaite"
)

var faceToCubeFace = map[thistlethwaite.Face]cube.Face{
	thistlethwaite.FaceR: cube.Right,
	thistlethwaite.FaceL: cube.Left,
	thistlethwaite.FaceU: cube.Up,
	thistlethwaite.FaceD: cube.Down,
	thistlethwaite.FaceF: cube.Front,
	thistlethwaite.FaceB: cube.Back,
}

// TokenToMove converts a single turn token to its cube.Move equivalent.
func TokenToMove(t thistlethwaite.Token) cube.Move {
	m := cube.Move{Face: faceToCubeFace[t.Face]}
	switch t.Variant {
	case thistlethwaite.Clockwise:
		m.Clockwise = true
	case thistlethwaite.CounterClockwise:
		m.Clockwise = false
	case thistlethwaite.Half:
		m.Clockwise = true
		m.Double = true
	}
	return m
}

// TokensToMoves converts a whole token sequence.
func TokensToMoves(tokens []thistlethwaite.Token) []cube.Move {
	moves := make([]cube.Move, len(tokens))
	for i, t := range tokens {
		moves[i] = TokenToMove(t)
	}
	return moves
}
