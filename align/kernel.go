package align

import "github.com/ajroetker/go-pairalign/hwy"

// carry is the per-column accumulator the kernel threads across one column
// sweep: first holds the diagonal candidate (and, after step 4 below, the
// "opened from here" candidate), second holds the vertical-gap carry for
// the next cell down.
type carry[T hwy.Integers] struct {
	first  hwy.Vec[T]
	second hwy.Vec[T]
}

// initialiseColumn starts column j's carry from the two boundary values
// the sweep's first row needs: diag is the top-left neighbor M(0,j-1) (the
// previous column's top-boundary diag), and vgap is the vertical-gap carry
// from this column's top boundary cell into row 1. Both come from the
// fixed column vector built at construction: the top boundary never
// changes once built, so every column reads colVec fresh rather than
// threading mutable state through it.
func initialiseColumn[T hwy.Integers](diag, vgap hwy.Vec[T]) carry[T] {
	return carry[T]{first: diag, second: vgap}
}

// computeCell runs the per-cell affine recurrence with diag committed
// before the new gap candidates are derived, since both the vertical and
// horizontal carries depend on the just-committed diag.
//
// cell is destructured on entry as (nextDiag, h) := (cell.Diag, cell.Hi)
// and reassembled on exit as the new (diag, hgap) pair.
func computeCell[T hwy.Integers](c *carry[T], cell *Cell[T], subScore hwy.Vec[T], gap GapModel, localFloor bool) {
	nextDiag, h := cell.Diag, cell.Hi
	n := c.first.NumLanes()
	gapExtend := hwy.SetN(T(gap.Extend), n)
	firstGap := hwy.SetN(T(gap.firstGap()), n)

	c.first = hwy.SaturatedAdd(c.first, subScore)
	c.first = hwy.Max(hwy.Max(c.first, c.second), h)
	if localFloor {
		c.first = hwy.ZeroIfNegative(c.first)
	}
	cell.Diag = c.first
	c.first = hwy.SaturatedAdd(c.first, firstGap)
	c.second = hwy.Max(hwy.SaturatedAdd(c.second, gapExtend), c.first)
	cell.Hi = hwy.Max(hwy.SaturatedAdd(h, gapExtend), c.first)
	c.first = nextDiag
}
