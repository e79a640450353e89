package align

// GapModel carries the affine gap penalty: opening a gap costs gapOpen, and
// every position the gap extends over (including the first) costs
// gapExtend. Both are typically negative.
type GapModel struct {
	Open   int32
	Extend int32
}

// firstGap is the cost of opening a new gap counting its own first
// extension: gap_open + gap_extend.
func (g GapModel) firstGap() int32 {
	return g.Open + g.Extend
}

// InitRule selects how the leading column/row of the DP matrix is seeded.
type InitRule int

const (
	// InitAffine seeds cell i with Open + i*Extend, the standard affine
	// leading-gap cost.
	InitAffine InitRule = iota
	// InitFreeShiftBegin seeds every leading cell with 0, waiving the cost
	// of a gap at the very start of either sequence.
	InitFreeShiftBegin
)

// affineInit returns the diag value for position i along an axis under this
// rule; i==0 is always 0 regardless of the rule.
func (r InitRule) affineInit(g GapModel, i int) int32 {
	if i == 0 {
		return 0
	}
	switch r {
	case InitFreeShiftBegin:
		return 0
	default:
		return g.Open + int32(i)*g.Extend
	}
}

// TrailingPolicy selects how the global tracker treats a trailing run of
// gaps at the end of either sequence.
type TrailingPolicy int

const (
	// TrailingPenalize charges the ordinary affine cost for any trailing
	// gap implied by the bottom-right cell.
	TrailingPenalize TrailingPolicy = iota
	// TrailingFreeShiftEnd waives that cost, matching InitFreeShiftBegin's
	// treatment of the leading edge.
	TrailingFreeShiftEnd
)

// Method selects which result tracker the engine runs.
type Method int

const (
	// MethodGlobal reports the bottom-right cell under the trailing policy
	// (Needleman-Wunsch family).
	MethodGlobal Method = iota
	// MethodLocal reports the maximum diag ever committed, clamped to a
	// floor of zero (Smith-Waterman).
	MethodLocal
)
