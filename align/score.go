package align

// sentinelRank marks a byte that has no entry in the substitution matrix.
const sentinelRank = 255

// MatrixRow is one row of a host-supplied substitution matrix: the symbol it
// names and its score against every other symbol, in the same row order the
// matrix was built from.
type MatrixRow struct {
	Symbol byte
	Scores []int32
}

// ScoreModel owns the dense substitution matrix and the rank map that
// translates raw sequence bytes into row/column indices into it. Both are
// read-only after construction and safe to share across concurrent computes.
type ScoreModel struct {
	rankMap [256]uint8
	matrix  []int32 // Sigma x Sigma, row-major: matrix[col*Sigma+row]
	sigma   int
}

// NewScoreModel builds a dense Sigma x Sigma substitution matrix and rank map
// from Sigma rows, each naming one symbol and its score against every row in
// the same order (row i's score against row j lives at rows[i].Scores[j]).
func NewScoreModel(rows []MatrixRow) (*ScoreModel, error) {
	sigma := len(rows)
	if sigma == 0 {
		return nil, &ConfigError{Reason: "substitution matrix has no rows"}
	}
	m := &ScoreModel{
		matrix: make([]int32, sigma*sigma),
		sigma:  sigma,
	}
	for i := range m.rankMap {
		m.rankMap[i] = sentinelRank
	}
	for i, row := range rows {
		if len(row.Scores) != sigma {
			return nil, &ConfigError{Reason: "substitution matrix row is not square"}
		}
		m.rankMap[row.Symbol] = uint8(i)
	}
	for i, row := range rows {
		copy(m.matrix[i*sigma:(i+1)*sigma], row.Scores)
	}
	return m, nil
}

// Sigma returns the alphabet cardinality this model was built with.
func (m *ScoreModel) Sigma() int {
	return m.sigma
}

// Rank translates a raw sequence byte to its dense rank, or sentinelRank if
// the byte has no row in the matrix.
func (m *ScoreModel) Rank(symbol byte) uint8 {
	return m.rankMap[symbol]
}

// Score returns the substitution score between a column symbol and a row
// symbol. Both must have a non-sentinel rank; callers validate sequences
// with ValidateSequence before calling Score.
func (m *ScoreModel) Score(colSym, rowSym byte) int32 {
	colRank := m.rankMap[colSym]
	rowRank := m.rankMap[rowSym]
	return m.matrix[int(colRank)*m.sigma+int(rowRank)]
}

// scoreByRank is Score's rank-indexed counterpart, used once ranks have
// already been resolved (the hot path inside a lane).
func (m *ScoreModel) scoreByRank(colRank, rowRank uint8) int32 {
	return m.matrix[int(colRank)*m.sigma+int(rowRank)]
}

// ValidateSequence checks that every byte in seq has a non-sentinel rank,
// returning an *InvalidSymbolError naming the first offender. name is used
// only to label the error ("s1" or "s2").
func (m *ScoreModel) ValidateSequence(seq []byte, name string) error {
	for i, b := range seq {
		if m.rankMap[b] == sentinelRank {
			return &InvalidSymbolError{Symbol: b, Sequence: name, Index: i}
		}
	}
	return nil
}
