package thistlethwaite

import (
	"os"
	"path/filepath"
	"testing"
)

// TestPhase0TableSizeAndDepthOracle is the correctness oracle called out in
// the design notes: phase 0 (fixing edge orientation under all 18 tokens)
// must have exactly 2,048 reachable coordinates with a maximum BFS depth
// of 7. If this fails, the U/D-only edge-flip convention in state.go and
// the edge-orientation coordinate in coords.go disagree with each other.
func TestPhase0TableSizeAndDepthOracle(t *testing.T) {
	table := GeneratePhaseTable(Phase0)
	if got := table.Len(); got != 2048 {
		t.Errorf("phase 0 table has %d entries, want 2048", got)
	}
	if got := table.MaxDepth(); got != 7 {
		t.Errorf("phase 0 table max depth = %d, want 7", got)
	}
}

func TestPhase1TableSizeOracle(t *testing.T) {
	table := GeneratePhaseTable(Phase1)
	if got := table.Len(); got != 1082565 {
		t.Errorf("phase 1 table has %d entries, want 1082565", got)
	}
}

func TestPhase2TableSizeOracle(t *testing.T) {
	table := GeneratePhaseTable(Phase2)
	if got := table.Len(); got != 29400 {
		t.Errorf("phase 2 table has %d entries, want 29400", got)
	}
}

func TestPhase3TableSizeOracle(t *testing.T) {
	table := GeneratePhaseTable(Phase3)
	if got := table.Len(); got != 663552 {
		t.Errorf("phase 3 table has %d entries, want 663552", got)
	}
}

func TestPhaseTableWriteReadRoundTrip(t *testing.T) {
	table := GeneratePhaseTable(Phase0)

	dir := t.TempDir()
	path := filepath.Join(dir, "phase0.tbl")
	if err := table.WriteFile(path); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	loaded, err := ReadPhaseTableFile(path, Phase0.Capacity)
	if err != nil {
		t.Fatalf("ReadPhaseTableFile failed: %v", err)
	}
	if loaded.Len() != table.Len() {
		t.Fatalf("round-tripped table has %d entries, want %d", loaded.Len(), table.Len())
	}
	for coord := 0; coord < Phase0.Capacity; coord++ {
		want, wantOk := table.Get(uint32(coord))
		got, gotOk := loaded.Get(uint32(coord))
		if want != got || wantOk != gotOk {
			t.Fatalf("coord %d: round trip mismatch, want (%d,%v) got (%d,%v)", coord, want, wantOk, got, gotOk)
		}
	}
}

func TestReadPhaseTableFileMissing(t *testing.T) {
	_, err := ReadPhaseTableFile(filepath.Join(t.TempDir(), "does-not-exist.tbl"), Phase0.Capacity)
	if err == nil {
		t.Fatal("expected an error for a missing table file")
	}
}

func TestReadPhaseTableFileCorrupt(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "corrupt.tbl")
	if err := os.WriteFile(path, []byte{0x01, 0x00, 0x00, 0x00}, 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}
	_, err := ReadPhaseTableFile(path, Phase0.Capacity)
	if err == nil {
		t.Fatal("expected an error for a table file with a truncated record")
	}
}
