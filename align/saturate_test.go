package align

import (
	"errors"
	"testing"

	"github.com/ajroetker/go-pairalign/hwy"
)

func TestSaturatedWrapperUpdateOffsetRecenters(t *testing.T) {
	gap := GapModel{Open: -10, Extend: -1}
	v := NewDPVector[int16](4, 1, gap, InitAffine)
	w := NewSaturatedWrapper(v, int16(0), false)

	if err := w.UpdateOffset(); err != nil {
		t.Fatalf("UpdateOffset: %v", err)
	}
	// Diag[0]=0 is also the maximum reachable diag in a freshly-built
	// affine vector (every later cell is strictly more negative), so it's
	// the anchor rebasing centers on here too.
	if got := v.At(0).Diag.Lane(0); got != 0 {
		t.Errorf("At(0).Diag after rebase = %d, want 0", got)
	}
}

func TestSaturatedWrapperAnchorsOnMaxDiagNotCellZero(t *testing.T) {
	gap := GapModel{Open: -10, Extend: -1}
	v := NewDPVector[int16](2, 1, gap, InitAffine)
	// Simulate the kernel having written a cell whose diag grew past the
	// leading boundary, as a real match run would.
	v.cells[2].Diag = hwy.SetN[int16](50, 1)

	w := NewSaturatedWrapper(v, int16(0), false)
	if err := w.UpdateOffset(); err != nil {
		t.Fatalf("UpdateOffset: %v", err)
	}
	if got := v.At(2).Diag.Lane(0); got != 0 {
		t.Errorf("At(2).Diag after rebase = %d, want 0 (rebased around the max reachable cell, not cell 0)", got)
	}
	if got := v.At(0).Diag.Lane(0); got != -50 {
		t.Errorf("At(0).Diag after rebase = %d, want -50 (shifted by the same anchor)", got)
	}
}

func TestSaturatedWrapperAuditPassesConsistentRebase(t *testing.T) {
	gap := GapModel{Open: -10, Extend: -1}
	v := NewDPVector[int16](4, 1, gap, InitAffine)
	w := NewSaturatedWrapper(v, int16(0), true)

	if err := w.UpdateOffset(); err != nil {
		t.Fatalf("UpdateOffset with consistent state should not error: %v", err)
	}
}

func TestAuditLaneDetectsMismatch(t *testing.T) {
	err := auditLane(2, 1, int8(100), int8(-100), int8(0), int8(50))
	var overflow *SaturationOverflowError
	if !errors.As(err, &overflow) {
		t.Fatalf("auditLane error = %v, want *SaturationOverflowError", err)
	}
	if overflow.Cell != 2 || overflow.Lane != 1 {
		t.Errorf("overflow = %+v, want cell=2 lane=1", overflow)
	}
}

func TestAuditLaneAcceptsConsistentRebase(t *testing.T) {
	// before=50, newOffset=10, zeroOffset=0 -> wide=40, narrowAfter must equal 40.
	if err := auditLane[int16](0, 0, 50, 10, 0, 40); err != nil {
		t.Errorf("auditLane = %v, want nil", err)
	}
}

