package align

import "testing"

func TestMakeProfileScoresMatchModel(t *testing.T) {
	m, err := NewScoreModel(DNAMatchMismatch(4, -2))
	if err != nil {
		t.Fatalf("NewScoreModel: %v", err)
	}
	rowWindows := [][]byte{[]byte("AC"), []byte("GT")}
	p := makeProfile[int32](m, rowWindows)

	colRank := []uint8{m.Rank('A'), m.Rank('A')}
	got := p.at(0, colRank)
	if got.Lane(0) != m.Score('A', 'A') {
		t.Errorf("profile.at(0) lane 0 = %d, want %d", got.Lane(0), m.Score('A', 'A'))
	}
	if got.Lane(1) != m.Score('A', 'G') {
		t.Errorf("profile.at(0) lane 1 = %d, want %d", got.Lane(1), m.Score('A', 'G'))
	}
}

func TestLaneLifecycleWritesBack(t *testing.T) {
	gap := GapModel{Open: -10, Extend: -1}
	rowVec := NewDPVector[int32](4, 2, gap, InitAffine)
	m, err := NewScoreModel(DNAMatchMismatch(4, -2))
	if err != nil {
		t.Fatalf("NewScoreModel: %v", err)
	}
	rowSeqs := [][]byte{[]byte("ACGT"), []byte("ACGT")}

	ln := newLane[int32](rowVec, 0, 2, m, rowSeqs)
	if ln.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", ln.Len())
	}
	cell := ln.At(0)
	diag := cell.Diag
	cell.Diag = diag // no-op mutation to confirm At returns a live pointer
	ln.Close()

	if rowVec.At(1).Diag.Lane(0) != ln.cells[0].Diag.Lane(0) {
		t.Error("Close did not write cached cell back to the underlying vector")
	}
}

func TestLanePartialTrailingWindow(t *testing.T) {
	gap := GapModel{Open: -10, Extend: -1}
	rowVec := NewDPVector[int32](3, 1, gap, InitAffine)
	m, err := NewScoreModel(DNAMatchMismatch(4, -2))
	if err != nil {
		t.Fatalf("NewScoreModel: %v", err)
	}
	rowSeqs := [][]byte{[]byte("ACG")}

	ln := newLane[int32](rowVec, 2, 8, m, rowSeqs)
	if ln.Len() != 1 {
		t.Errorf("Len() = %d, want 1 for the trailing partial lane", ln.Len())
	}
}
