package align

import "github.com/ajroetker/go-pairalign/hwy"

// profile is a lane-width-sized materialization of the row dimension of the
// substitution matrix for every lane in the current batch: for each of the
// lane's W row positions and each possible column rank, the precomputed
// N-wide score vector (lane k uses the k-th sequence pair's row symbol).
// Indexing at DP time becomes a single lookup keyed by the column symbol's
// rank alone, instead of a fresh (col, row) gather per cell.
type profile[T hwy.Integers] struct {
	sigma int
	width int
	lanes int
	// table[w*sigma+c] = N-wide vector of matrix.scoreByRank(c, rank(rowWindows[k][w]))
	table []hwy.Vec[T]
}

// makeProfile builds a profile from a lane's cached row window, one per
// lane (all windows must have the same width - the caller bundles only
// equal-length sequences into one batch).
func makeProfile[T hwy.Integers](model *ScoreModel, rowWindows [][]byte) *profile[T] {
	lanes := len(rowWindows)
	width := 0
	if lanes > 0 {
		width = len(rowWindows[0])
	}
	sigma := model.Sigma()

	p := &profile[T]{sigma: sigma, width: width, lanes: lanes}
	p.table = make([]hwy.Vec[T], width*sigma)
	for w := 0; w < width; w++ {
		for c := 0; c < sigma; c++ {
			lane := make([]T, lanes)
			for k := 0; k < lanes; k++ {
				rowRank := model.Rank(rowWindows[k][w])
				lane[k] = T(model.scoreByRank(uint8(c), rowRank))
			}
			p.table[w*sigma+c] = hwy.Load(lane)
		}
	}
	return p
}

// at returns the precomputed N-wide score vector for row-window offset w
// against the N-wide vector of column ranks colRank (lane k's column symbol
// rank for this cell).
func (p *profile[T]) at(w int, colRank []uint8) hwy.Vec[T] {
	lane := make([]T, p.lanes)
	for k := 0; k < p.lanes; k++ {
		lane[k] = p.table[w*p.sigma+int(colRank[k])].Lane(k)
	}
	return hwy.Load(lane)
}

// lane is a scoped, stack-like cache of W consecutive row cells, loaded
// from the underlying row DPVector on construction and written back on
// Close. The kernel reads and writes the cache in place during the sweep;
// the underlying vector is untouched until Close.
type lane[T hwy.Integers] struct {
	rowVec   *DPVector[T]
	start    int
	cells    []Cell[T]
	rowSyms  [][]byte // per-lane row symbols for this window, width == len(cells)
	profile  *profile[T]
}

// newLane constructs a lane covering rowVec cells [rowOffset+1, rowOffset+1+width),
// clipped to the vector's size for a trailing partial lane. rowSeqs holds
// each batch lane's full row sequence, used to build the scoring profile.
func newLane[T hwy.Integers](rowVec *DPVector[T], rowOffset, width int, model *ScoreModel, rowSeqs [][]byte) *lane[T] {
	start := rowOffset + 1
	n := min(width, rowVec.Size()-start)

	cells := make([]Cell[T], n)
	copy(cells, rowVec.cells[start:start+n])

	rowSyms := make([][]byte, len(rowSeqs))
	for k, seq := range rowSeqs {
		rowSyms[k] = seq[rowOffset : rowOffset+n]
	}

	return &lane[T]{
		rowVec:  rowVec,
		start:   start,
		cells:   cells,
		rowSyms: rowSyms,
		profile: makeProfile[T](model, rowSyms),
	}
}

// Len returns how many row cells this lane covers (<= lane width; less for
// the trailing partial lane).
func (l *lane[T]) Len() int {
	return len(l.cells)
}

// At returns a pointer to the w-th cached cell for in-place mutation.
func (l *lane[T]) At(w int) *Cell[T] {
	return &l.cells[w]
}

// Close writes the cached cells back to the underlying row vector at the
// same positions. The caller runs it once the sweep over this lane's
// cells is done, before advancing to the next row-lane tile.
func (l *lane[T]) Close() {
	copy(l.rowVec.cells[l.start:l.start+len(l.cells)], l.cells)
}
