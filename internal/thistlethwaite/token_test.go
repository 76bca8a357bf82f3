package thistlethwaite

import "testing"

func TestParseToken(t *testing.T) {
	tests := []struct {
		notation string
		want     Token
		wantErr  bool
	}{
		{"R", Token{FaceR, Clockwise}, false},
		{"R'", Token{FaceR, CounterClockwise}, false},
		{"R2", Token{FaceR, Half}, false},
		{"U", Token{FaceU, Clockwise}, false},
		{"F2", Token{FaceF, Half}, false},
		{"B'", Token{FaceB, CounterClockwise}, false},
		{"", Token{}, true},
		{"X", Token{}, true},
		{"R3", Token{}, true},
		{"M", Token{}, true},  // slice move, not in the 18-token alphabet
		{"Rw", Token{}, true}, // wide move
		{"x", Token{}, true},  // cube rotation
		{"2R", Token{}, true}, // layer move
	}

	for _, tt := range tests {
		t.Run(tt.notation, func(t *testing.T) {
			got, err := ParseToken(tt.notation)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseToken(%q) error = %v, wantErr %v", tt.notation, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseToken(%q) = %v, want %v", tt.notation, got, tt.want)
			}
		})
	}
}

func TestParseTokensInvalidSequence(t *testing.T) {
	// This is the scenario where M-slice moves are rejected outright: M is
	// not part of the 18-token alphabet apply_turn understands.
	_, err := ParseTokens("M U M U M U M U")
	if err == nil {
		t.Fatal("ParseTokens(\"M U M U M U M U\") should fail: M is not a legal token")
	}
}

func TestTokenStringRoundTrip(t *testing.T) {
	for _, tok := range AllTokens {
		got, err := ParseToken(tok.String())
		if err != nil {
			t.Fatalf("ParseToken(%q) failed: %v", tok.String(), err)
		}
		if got != tok {
			t.Errorf("round trip of %v through %q gave %v", tok, tok.String(), got)
		}
	}
}
