// Package thistlethwaite implements a cubelet-based 3x3x3 solver using
// Thistlethwaite's four-phase group reduction (G0 > G1 > G2 > G3 > {e}).
//
// The package is independent of the sticker-based cube.Cube model used by
// the rest of this repository: it works entirely in terms of corner and
// edge cubelet permutation/orientation arrays and a restricted 18-token
// turn alphabet. internal/cli wires the two representations together for
// display purposes.
package thistlethwaite

import (
	"fmt"
	"strings"
)

// Face identifies one of the six faces a turn can be applied to.
type Face int

const (
	FaceR Face = iota
	FaceL
	FaceU
	FaceD
	FaceF
	FaceB
)

func (f Face) String() string {
	return [...]string{"R", "L", "U", "D", "F", "B"}[f]
}

// Variant identifies how far a face is turned.
type Variant int

const (
	Clockwise Variant = iota
	CounterClockwise
	Half
)

// Token is a single quarter/half turn of one face: one of the 18 tokens
// R R' R2 L L' L2 U U' U2 D D' D2 F F' F2 B B' B2.
type Token struct {
	Face    Face
	Variant Variant
}

func (t Token) String() string {
	switch t.Variant {
	case Clockwise:
		return t.Face.String()
	case CounterClockwise:
		return t.Face.String() + "'"
	case Half:
		return t.Face.String() + "2"
	default:
		return "?"
	}
}

// AllTokens lists the full 18-token alphabet in a fixed, deterministic order.
var AllTokens = []Token{
	{FaceR, Clockwise}, {FaceR, CounterClockwise}, {FaceR, Half},
	{FaceL, Clockwise}, {FaceL, CounterClockwise}, {FaceL, Half},
	{FaceU, Clockwise}, {FaceU, CounterClockwise}, {FaceU, Half},
	{FaceD, Clockwise}, {FaceD, CounterClockwise}, {FaceD, Half},
	{FaceF, Clockwise}, {FaceF, CounterClockwise}, {FaceF, Half},
	{FaceB, Clockwise}, {FaceB, CounterClockwise}, {FaceB, Half},
}

var faceByLetter = map[byte]Face{
	'R': FaceR, 'L': FaceL, 'U': FaceU, 'D': FaceD, 'F': FaceF, 'B': FaceB,
}

// ParseToken parses a single turn token such as "R", "R'", or "R2". Any
// token outside the 18-token alphabet (wide turns, slice turns, whole-cube
// rotations, lowercase letters, unknown faces) is rejected.
func ParseToken(s string) (Token, error) {
	if len(s) == 0 || len(s) > 2 {
		return Token{}, fmt.Errorf("%w: %q", ErrInvalidToken, s)
	}
	face, ok := faceByLetter[s[0]]
	if !ok {
		return Token{}, fmt.Errorf("%w: %q", ErrInvalidToken, s)
	}
	if len(s) == 1 {
		return Token{Face: face, Variant: Clockwise}, nil
	}
	switch s[1] {
	case '\'':
		return Token{Face: face, Variant: CounterClockwise}, nil
	case '2':
		return Token{Face: face, Variant: Half}, nil
	default:
		return Token{}, fmt.Errorf("%w: %q", ErrInvalidToken, s)
	}
}

// ParseTokens parses a whitespace-separated sequence of turn tokens. An
// empty string parses to an empty (already-solved) sequence.
func ParseTokens(s string) ([]Token, error) {
	fields := strings.Fields(s)
	tokens := make([]Token, 0, len(fields))
	for _, f := range fields {
		tok, err := ParseToken(f)
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
	}
	return tokens, nil
}

// TokensString renders a token sequence back to its space-separated notation.
func TokensString(tokens []Token) string {
	parts := make([]string, len(tokens))
	for i, t := range tokens {
		parts[i] = t.String()
	}
	return strings.Join(parts, " ")
}
