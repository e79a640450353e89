package align

import "testing"

func TestGapModelFirstGap(t *testing.T) {
	g := GapModel{Open: -10, Extend: -1}
	if got := g.firstGap(); got != -11 {
		t.Errorf("firstGap() = %d, want -11", got)
	}
}

func TestAffineInitAtOrigin(t *testing.T) {
	g := GapModel{Open: -10, Extend: -1}
	for _, rule := range []InitRule{InitAffine, InitFreeShiftBegin} {
		if got := rule.affineInit(g, 0); got != 0 {
			t.Errorf("affineInit(rule=%v, 0) = %d, want 0", rule, got)
		}
	}
}

func TestAffineInitGrowth(t *testing.T) {
	g := GapModel{Open: -10, Extend: -1}
	if got := InitAffine.affineInit(g, 3); got != -13 {
		t.Errorf("InitAffine.affineInit(3) = %d, want -13", got)
	}
	if got := InitFreeShiftBegin.affineInit(g, 3); got != 0 {
		t.Errorf("InitFreeShiftBegin.affineInit(3) = %d, want 0", got)
	}
}
