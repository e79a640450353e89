package align

import "github.com/ajroetker/go-pairalign/hwy"

// SaturatedWrapper wraps a DPVector whose cells use a narrow element type
// (int8/int16) and periodically rebases it. Entering a new column block,
// UpdateOffset recenters every stored cell around the maximum score
// currently reachable in this vector so narrow lanes stay representable
// as the sweep's scores drift away from zero.
//
// Only the row vector ever needs this: its cells are the kernel's live
// working state, rewritten column after column, so their magnitude grows
// with the sweep. The column vector is a fixed boundary of absolute
// scores computed once at construction and never written again; the
// engine shifts the two boundary values each column reads from it into
// the row vector's current offset space before the sweep uses them.
//
// A plain, wide-element DPVector (e.g. int32) has no need of this: the
// engine only wraps a vector when its element type is narrow (see
// Builder.WithElementWidth).
type SaturatedWrapper[T hwy.Integers] struct {
	vec         *DPVector[T]
	zeroOffset  T
	auditActive bool
}

// NewSaturatedWrapper wraps vec, rebasing around zeroOffset (the
// representable midpoint; 0 for signed narrow lanes). audit enables the
// wide-reference overflow check on every UpdateOffset call.
func NewSaturatedWrapper[T hwy.Integers](vec *DPVector[T], zeroOffset T, audit bool) *SaturatedWrapper[T] {
	return &SaturatedWrapper[T]{vec: vec, zeroOffset: zeroOffset, auditActive: audit}
}

// UpdateOffset recenters every cell in the wrapped vector around the
// maximum diag currently reachable in it: v <- v - newOffset + zeroOffset,
// saturating per lane, then folds newOffset into the vector's cumulative
// offset. If the audit is enabled it recomputes the same rebase in int64
// per lane and returns a *SaturationOverflowError on the first mismatch,
// leaving the vector unmodified for that cell onward (the caller should
// treat this as fatal per the error taxonomy).
func (w *SaturatedWrapper[T]) UpdateOffset() error {
	lanes := w.vec.lanes
	newOffset := w.vec.MaxDiag()
	zero := hwy.SetN(w.zeroOffset, lanes)

	for i := range w.vec.cells {
		cell := &w.vec.cells[i]
		narrowDiag := hwy.SaturatedAdd(hwy.SaturatedSub(cell.Diag, newOffset), zero)
		narrowHi := hwy.SaturatedAdd(hwy.SaturatedSub(cell.Hi, newOffset), zero)

		if w.auditActive {
			for lane := 0; lane < lanes; lane++ {
				if err := auditLane(i, lane, cell.Diag.Lane(lane), newOffset.Lane(lane), w.zeroOffset, narrowDiag.Lane(lane)); err != nil {
					return err
				}
				if err := auditLane(i, lane, cell.Hi.Lane(lane), newOffset.Lane(lane), w.zeroOffset, narrowHi.Lane(lane)); err != nil {
					return err
				}
			}
		}

		cell.Diag = narrowDiag
		cell.Hi = narrowHi
	}

	w.vec.updateOffset(newOffset)
	return nil
}

func auditLane[T hwy.Integers](cellIdx, lane int, before, newOffset, zeroOffset, narrowAfter T) error {
	wide := int64(before) - int64(newOffset) + int64(zeroOffset)
	if int64(narrowAfter) != wide {
		return &SaturationOverflowError{
			Cell:        cellIdx,
			Lane:        lane,
			NarrowValue: int64(narrowAfter),
			WideValue:   wide,
		}
	}
	return nil
}
