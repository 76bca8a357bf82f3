package thistlethwaite

import "errors"

// Error kinds returned by this package. None of these are panics: every
// solver function that can fail reports it through a plain error return,
// never through the hot search path signaling out-of-band.
var (
	// ErrInvalidToken is returned when a turn token is outside the 18-token
	// alphabet (wide turns, slice turns, whole-cube rotations, or garbage).
	ErrInvalidToken = errors.New("thistlethwaite: invalid turn token")

	// ErrUnreachableCoordinate is returned when a state's phase coordinate
	// falls outside the range a phase table was built to cover. A correct
	// caller never produces this for a state reachable from solved by the
	// previous phases' turn sets; it signals a corrupt table or a state
	// that was never a legal cube position.
	ErrUnreachableCoordinate = errors.New("thistlethwaite: coordinate not present in phase table")

	// ErrNoDepthReducingMove is returned by the greedy descent search when
	// no legal move in the current phase's turn set strictly decreases the
	// table depth. This only happens when the phase table is missing or
	// corrupt (see TableFileMissing / TableFileCorrupt).
	ErrNoDepthReducingMove = errors.New("thistlethwaite: no depth-reducing move available (phase table missing or corrupt)")

	// ErrTableFileMissing is logged (not fatal) when a phase table file is
	// absent at load time; the solver falls back to an empty table.
	ErrTableFileMissing = errors.New("thistlethwaite: phase table file missing")

	// ErrTableFileCorrupt is logged (not fatal) when a phase table file
	// cannot be parsed; the solver falls back to an empty table.
	ErrTableFileCorrupt = errors.New("thistlethwaite: phase table file corrupt")
)
