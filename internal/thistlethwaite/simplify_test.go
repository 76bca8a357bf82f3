package thistlethwaite

import "testing"

func mustTokens(t *testing.T, s string) []Token {
	t.Helper()
	tokens, err := ParseTokens(s)
	if err != nil {
		t.Fatalf("ParseTokens(%q) failed: %v", s, err)
	}
	return tokens
}

func TestSimplify(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"no adjacent same-face moves", "R U R U", "R U R U"},
		{"cancel pair", "R R'", ""},
		{"double cancels to nothing when repeated four times", "R R R R", ""},
		{"two quarters combine to a half", "R R", "R2"},
		{"three quarters combine to the inverse", "R R R", "R'"},
		{"half plus quarter combines to inverse quarter", "R2 R", "R'"},
		{"cascading merge exposes further same-face pair", "R U U' R'", ""},
		{"different faces never merge", "R L", "R L"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Simplify(mustTokens(t, tt.in))
			want := mustTokens(t, tt.want)
			if len(got) != len(want) {
				t.Fatalf("Simplify(%q) = %q, want %q", tt.in, TokensString(got), tt.want)
			}
			for i := range got {
				if got[i] != want[i] {
					t.Fatalf("Simplify(%q) = %q, want %q", tt.in, TokensString(got), tt.want)
				}
			}
		})
	}
}

func TestSimplifyIsIdempotent(t *testing.T) {
	in := mustTokens(t, "R U R' U' F R U R' U' F' R2 L2 U2")
	once := Simplify(in)
	twice := Simplify(once)
	if len(once) != len(twice) {
		t.Fatalf("simplify is not idempotent: once=%q twice=%q", TokensString(once), TokensString(twice))
	}
	for i := range once {
		if once[i] != twice[i] {
			t.Fatalf("simplify is not idempotent: once=%q twice=%q", TokensString(once), TokensString(twice))
		}
	}
}

func TestSimplifyPreservesNetEffectOnState(t *testing.T) {
	in := mustTokens(t, "R R R R U U U' F F F")
	simplified := Simplify(in)

	before := NewSolved().ApplyTurns(in)
	after := NewSolved().ApplyTurns(simplified)
	if before != after {
		t.Fatalf("Simplify changed the net effect of the sequence")
	}
}
