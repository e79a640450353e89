package align

import (
	"fmt"

	"github.com/ajroetker/go-pairalign/hwy"
	"github.com/ajroetker/go-pairalign/hwy/contrib/workerpool"
)

// defaultLaneWidth is the compile-time row-lane tile width W: the number
// of consecutive row cells cached on the stack-like lane during the inner
// sweep. Tuned for cache locality, independent of the SIMD batch width N.
const defaultLaneWidth = 8

// blockSize is the column count between saturated-rebase checkpoints.
// Only consulted when the engine's element type is narrow.
const blockSize = 32

// Pair is one sequence pair submitted to a batched compute call.
type Pair struct {
	S1 []byte
	S2 []byte
}

// Engine runs the affine DP kernel against sequence pairs, configured
// once via Builder and safe to share across concurrent calls: a compute
// call owns its DP vectors exclusively and touches no shared mutable
// state.
type Engine struct {
	cfg          Config
	maxLanes     int
	pool         *workerpool.Pool
	computeOne   func(s1, s2 []byte) (int64, error)
	computeLanes func(pairs []Pair) ([]int64, error)
}

// Close releases the engine's worker pool. Safe to call more than once;
// only needed once the caller is done issuing ComputeBatch calls.
func (e *Engine) Close() {
	e.pool.Close()
}

// Compute aligns a single sequence pair (the N=1 convenience path) and
// returns its score.
func (e *Engine) Compute(s1, s2 []byte) (int64, error) {
	return e.computeOne(s1, s2)
}

// ComputeVector aligns all of pairs in lock step as one SIMD batch: every
// pair must share the same len(S1) and the same len(S2) (not necessarily
// equal to each other), since lanes advance through the recurrence
// together. Use ComputeBatch for mixed-length input.
func (e *Engine) ComputeVector(pairs []Pair) ([]int64, error) {
	return e.computeLanes(pairs)
}

// genericEngine is the type-parameterized implementation Builder.Build
// instantiates once, at the element width the configuration selected, and
// wraps in closures stored on Engine so callers never see T.
type genericEngine[T hwy.Integers] struct {
	matrix     *ScoreModel
	gap        GapModel
	initRule   InitRule
	trailing   TrailingPolicy
	method     Method
	audit      bool
	saturate   bool
	zeroOffset T
	laneWidth  int
}

func (e *genericEngine[T]) compute(s1, s2 []byte) (int64, error) {
	scores, err := e.computeVector([]Pair{{S1: s1, S2: s2}})
	if err != nil {
		return 0, err
	}
	return scores[0], nil
}

func (e *genericEngine[T]) computeVector(pairs []Pair) ([]int64, error) {
	if len(pairs) == 0 {
		return nil, &ConfigError{Reason: "computeVector called with no pairs"}
	}
	if max := hwy.MaxLanes[T](); len(pairs) > max {
		return nil, &ConfigError{Reason: fmt.Sprintf(
			"ComputeVector called with %d pairs, exceeds this element width's %d lanes; use ComputeBatch", len(pairs), max)}
	}
	lanes := len(pairs)
	lenS1, lenS2 := len(pairs[0].S1), len(pairs[0].S2)
	rowSeqs := make([][]byte, lanes)
	for k, p := range pairs {
		if len(p.S1) != lenS1 || len(p.S2) != lenS2 {
			return nil, &ConfigError{Reason: fmt.Sprintf(
				"ComputeVector requires equal-length pairs: pair 0 is (%d,%d), pair %d is (%d,%d)",
				lenS1, lenS2, k, len(p.S1), len(p.S2))}
		}
		if err := e.matrix.ValidateSequence(p.S1, "s1"); err != nil {
			return nil, err
		}
		if err := e.matrix.ValidateSequence(p.S2, "s2"); err != nil {
			return nil, err
		}
		rowSeqs[k] = p.S2
	}

	// Local alignment may start anywhere, so its boundaries are always zero.
	vecInit := e.initRule
	if e.method == MethodLocal {
		vecInit = InitFreeShiftBegin
	}
	colVec := NewDPVector[T](lenS1, lanes, e.gap, vecInit)
	rowVec := NewDPVector[T](lenS2, lanes, e.gap, vecInit)

	// Only the row vector ever rebases: it's the kernel's live working
	// state. The column vector is a fixed, read-only boundary built once
	// below and never written again - see SaturatedWrapper's doc comment.
	var rowWrap *SaturatedWrapper[T]
	if e.saturate {
		rowWrap = NewSaturatedWrapper(rowVec, e.zeroOffset, e.audit)
	}

	lenDiff := make([]int64, lanes)
	for k := range pairs {
		d := len(pairs[k].S1) - len(pairs[k].S2)
		if d < 0 {
			d = -d
		}
		lenDiff[k] = int64(d)
	}

	var track tracker[T]
	if e.method == MethodLocal {
		track = newLocalTracker[T](lanes)
	} else {
		// When either sequence is empty the sweep never runs and the
		// bottom-right cell is the raw construction-time boundary value,
		// which only carries the standard affine cost under InitAffine;
		// InitFreeShiftBegin already zeroed it.
		sweepRan := lenS1 > 0 && lenS2 > 0
		boundaryCostCharged := sweepRan || e.initRule == InitAffine
		track = newGlobalTracker[T](lanes, e.gap, e.trailing, lenDiff, boundaryCostCharged)
	}

	colRanks := make([]uint8, lanes)
	for j := 1; j <= lenS1; j++ {
		if e.saturate && (j-1)%blockSize == 0 {
			if err := rowWrap.UpdateOffset(); err != nil {
				return nil, err
			}
		}

		for k := range pairs {
			colRanks[k] = e.matrix.Rank(pairs[k].S1[j-1])
		}

		// The sweep's first row needs the top-left diagonal neighbor
		// M(0,j-1) and the vertical-gap carry from this column's top
		// boundary cell into row 1. The column vector holds absolute
		// scores, so both are shifted into the row vector's offset space.
		zero := hwy.SetN(e.zeroOffset, lanes)
		topDiag := hwy.SaturatedAdd(hwy.SaturatedSub(colVec.At(j-1).Diag, rowVec.Offset()), zero)
		topHi := hwy.SaturatedAdd(hwy.SaturatedSub(colVec.At(j).Hi, rowVec.Offset()), zero)
		c := initialiseColumn(topDiag, topHi)

		for rowOffset := 0; rowOffset < lenS2; rowOffset += e.laneWidth {
			ln := newLane(rowVec, rowOffset, e.laneWidth, e.matrix, rowSeqs)
			for w := 0; w < ln.Len(); w++ {
				sub := ln.profile.at(w, colRanks)
				cell := ln.At(w)
				computeCell(&c, cell, sub, e.gap, e.method == MethodLocal)
				track.noteDiag(cell.Diag, colVec.Offset(), rowVec.Offset(), e.zeroOffset)
			}
			ln.Close()
		}
	}

	// With zero row positions, no cell was ever swept and rowVec.At(0)
	// still holds its construction-time value; the true bottom-right score
	// is the column boundary's own final value instead.
	var bottomRight Cell[T]
	if lenS2 == 0 {
		bottomRight = *colVec.At(lenS1)
	} else {
		bottomRight = *rowVec.At(lenS2)
	}
	return track.finish(bottomRight, colVec.Offset(), rowVec.Offset(), e.zeroOffset), nil
}
