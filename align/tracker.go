package align

import "github.com/ajroetker/go-pairalign/hwy"

// tracker accumulates the reportable result of a compute call. The kernel
// calls noteDiag after every committed diag (cheap no-op for the global
// tracker); the engine calls finish once, after the full matrix has been
// swept, to produce the absolute per-lane scores.
type tracker[T hwy.Integers] interface {
	noteDiag(diag hwy.Vec[T], colOffset, rowOffset hwy.Vec[T], zeroOffset T)
	finish(bottomRight Cell[T], colOffset, rowOffset hwy.Vec[T], zeroOffset T) []int64
}

// globalTracker reports the bottom-right cell, adjusted for the trailing-
// gap policy. Unlike localTracker it ignores every intermediate commit.
type globalTracker[T hwy.Integers] struct {
	lanes   int
	gap     GapModel
	trailing TrailingPolicy
	lenDiff []int64 // per lane: |len(s1)-len(s2)|, the implied trailing run

	// boundaryCostCharged is false only when one sequence is empty and the
	// bottom-right cell is read straight from the construction-time
	// boundary rather than computed by the sweep. InitAffine's boundary
	// charges the standard affine cost there, same as the sweep always
	// does; InitFreeShiftBegin's boundary already waives it, so there is
	// nothing left for the trailing waiver below to undo.
	boundaryCostCharged bool
}

func newGlobalTracker[T hwy.Integers](lanes int, gap GapModel, trailing TrailingPolicy, lenDiff []int64, boundaryCostCharged bool) *globalTracker[T] {
	return &globalTracker[T]{lanes: lanes, gap: gap, trailing: trailing, lenDiff: lenDiff, boundaryCostCharged: boundaryCostCharged}
}

func (t *globalTracker[T]) noteDiag(hwy.Vec[T], hwy.Vec[T], hwy.Vec[T], T) {}

// finish lifts bottomRight.Diag out of saturated/offset space and, under
// free_shift_end, waives the affine cost implied by the length difference
// between the two sequences (the same cost affineInit would have charged
// at the leading edge, applied symmetrically at the trailing edge).
func (t *globalTracker[T]) finish(bottomRight Cell[T], colOffset, rowOffset hwy.Vec[T], zeroOffset T) []int64 {
	out := make([]int64, t.lanes)
	for lane := 0; lane < t.lanes; lane++ {
		absolute := int64(bottomRight.Diag.Lane(lane)) - int64(zeroOffset) +
			int64(colOffset.Lane(lane)) + int64(rowOffset.Lane(lane))
		if t.trailing == TrailingFreeShiftEnd && t.lenDiff[lane] > 0 && t.boundaryCostCharged {
			absolute -= int64(t.gap.Open) + t.lenDiff[lane]*int64(t.gap.Extend)
		}
		out[lane] = absolute
	}
	return out
}

// localTracker reports the maximum diag ever committed, lifted to
// absolute score space and floored at zero (Smith-Waterman never reports
// a negative alignment score).
type localTracker[T hwy.Integers] struct {
	lanes int
	max   []int64
}

func newLocalTracker[T hwy.Integers](lanes int) *localTracker[T] {
	return &localTracker[T]{lanes: lanes, max: make([]int64, lanes)}
}

func (t *localTracker[T]) noteDiag(diag hwy.Vec[T], colOffset, rowOffset hwy.Vec[T], zeroOffset T) {
	for lane := 0; lane < t.lanes; lane++ {
		absolute := int64(diag.Lane(lane)) - int64(zeroOffset) +
			int64(colOffset.Lane(lane)) + int64(rowOffset.Lane(lane))
		if absolute > t.max[lane] {
			t.max[lane] = absolute
		}
	}
}

func (t *localTracker[T]) finish(Cell[T], hwy.Vec[T], hwy.Vec[T], T) []int64 {
	out := make([]int64, t.lanes)
	copy(out, t.max)
	return out
}
