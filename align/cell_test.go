package align

import "testing"

func TestNewDPVectorSize(t *testing.T) {
	gap := GapModel{Open: -10, Extend: -1}
	v := NewDPVector[int32](5, 4, gap, InitAffine)
	if got := v.Size(); got != 6 {
		t.Errorf("Size() = %d, want 6", got)
	}
}

func TestNewDPVectorAffineInit(t *testing.T) {
	gap := GapModel{Open: -10, Extend: -1}
	v := NewDPVector[int32](3, 2, gap, InitAffine)

	if got := v.At(0).Diag.Lane(0); got != 0 {
		t.Errorf("At(0).Diag = %d, want 0", got)
	}
	if got := v.At(2).Diag.Lane(0); got != -12 {
		t.Errorf("At(2).Diag = %d, want -12", got)
	}
	if got := v.At(2).Diag.Lane(1); got != -12 {
		t.Errorf("At(2).Diag lane 1 = %d, want -12 (both lanes share the init formula)", got)
	}
}

func TestNewDPVectorFreeShiftBegin(t *testing.T) {
	gap := GapModel{Open: -10, Extend: -1}
	v := NewDPVector[int32](3, 2, gap, InitFreeShiftBegin)

	for i := 0; i < v.Size(); i++ {
		if got := v.At(i).Diag.Lane(0); got != 0 {
			t.Errorf("At(%d).Diag = %d, want 0 under free-shift-begin", i, got)
		}
	}
}
