package align

import (
	"testing"

	"github.com/ajroetker/go-pairalign/hwy"
)

func TestComputeCellMatchWins(t *testing.T) {
	gap := GapModel{Open: -10, Extend: -1}
	c := carry[int32]{first: hwy.SetN[int32](0, 1), second: hwy.SetN[int32](-100, 1)}
	cell := &Cell[int32]{Diag: hwy.SetN[int32](-5, 1), Hi: hwy.SetN[int32](-100, 1)}

	computeCell(&c, cell, hwy.SetN[int32](4, 1), gap, false)

	if got := cell.Diag.Lane(0); got != 4 {
		t.Errorf("cell.Diag = %d, want 4 (diag carry 0 + match score 4 beats both gap carries)", got)
	}
}

func TestComputeCellLocalFloorsAtZero(t *testing.T) {
	gap := GapModel{Open: -10, Extend: -1}
	c := carry[int32]{first: hwy.SetN[int32](-20, 1), second: hwy.SetN[int32](-100, 1)}
	cell := &Cell[int32]{Diag: hwy.SetN[int32](-100, 1), Hi: hwy.SetN[int32](-100, 1)}

	computeCell(&c, cell, hwy.SetN[int32](-2, 1), gap, true)

	if got := cell.Diag.Lane(0); got != 0 {
		t.Errorf("cell.Diag = %d, want 0 (local floor must beat an all-negative chain)", got)
	}
}

func TestInitialiseColumnSeedsFromBoundary(t *testing.T) {
	diag := hwy.SetN[int32](-13, 1)
	vgap := hwy.SetN[int32](-11, 1)
	c := initialiseColumn(diag, vgap)

	if got := c.first.Lane(0); got != -13 {
		t.Errorf("carry.first = %d, want -13", got)
	}
	if got := c.second.Lane(0); got != -11 {
		t.Errorf("carry.second = %d, want -11", got)
	}
}
