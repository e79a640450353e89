package align

import "github.com/ajroetker/go-pairalign/hwy"

// Cell is one DP matrix cell's affine pair: Diag is the best score ending at
// this cell across the diagonal/vertical/horizontal cases, and Hi is the gap
// carry this cell hands to its neighbour one step further along the sweep:
// the best score of reaching that neighbour through a gap opened or
// extended from here, with that step's extension already added. Both are
// batched N-wide: lane k holds the value for the k-th sequence pair in the
// current compute call.
//
// The source names the second component "vgap" in one place and uses it
// with horizontal-extension semantics in another (see the affine kernel's
// commit order); this implementation does not preserve that name, treating
// the pair as two symmetric open/extend carries instead.
type Cell[T hwy.Integers] struct {
	Diag hwy.Vec[T]
	Hi   hwy.Vec[T]
}

// DPVector owns one axis (row or column) of the DP matrix: a cell per
// sequence position (size = len(sequence)+1) plus a running offset used
// only by the saturated wrapper (zero for a plain, wide-element vector).
type DPVector[T hwy.Integers] struct {
	cells  []Cell[T]
	offset hwy.Vec[T]
	lanes  int
}

// NewDPVector allocates a DPVector sized for a sequence of length
// seqLen, batched over the given number of lanes, and seeds every cell
// using initRule and gap.
func NewDPVector[T hwy.Integers](seqLen, lanes int, gap GapModel, initRule InitRule) *DPVector[T] {
	v := &DPVector[T]{
		cells:  make([]Cell[T], seqLen+1),
		offset: hwy.ZeroN[T](lanes),
		lanes:  lanes,
	}
	for i := range v.cells {
		diag := initRule.affineInit(gap, i)
		v.cells[i] = Cell[T]{
			Diag: hwy.SetN(T(diag), lanes),
			Hi:   hwy.SetN(T(diag+gap.firstGap()), lanes),
		}
	}
	return v
}

// Size returns the number of cells in this vector (len(sequence)+1).
func (v *DPVector[T]) Size() int {
	return len(v.cells)
}

// At returns a pointer to the cell at index i for in-place mutation.
func (v *DPVector[T]) At(i int) *Cell[T] {
	return &v.cells[i]
}

// Offset returns the vector's current cumulative offset.
func (v *DPVector[T]) Offset() hwy.Vec[T] {
	return v.offset
}

// MaxDiag returns, per lane, the maximum Diag value currently stored
// across every cell in this vector: the best score reachable so far in
// this axis, and the anchor the saturated wrapper rebases around.
func (v *DPVector[T]) MaxDiag() hwy.Vec[T] {
	out := make([]T, v.lanes)
	for k := 0; k < v.lanes; k++ {
		m := v.cells[0].Diag.Lane(k)
		for i := 1; i < len(v.cells); i++ {
			if d := v.cells[i].Diag.Lane(k); d > m {
				m = d
			}
		}
		out[k] = m
	}
	return hwy.Load(out)
}

// updateOffset sets the stored offset to offset+delta. Only the saturated
// wrapper calls this; a plain (wide-element) vector never rebases.
func (v *DPVector[T]) updateOffset(delta hwy.Vec[T]) {
	v.offset = hwy.Add(v.offset, delta)
}
