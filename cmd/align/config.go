package main

import (
	"fmt"

	"github.com/ajroetker/go-pairalign/align"
)

// matrixFlags carries the flags common to score and batch for selecting a
// substitution model and gap model and building an *align.Engine from them.
type matrixFlags struct {
	matrixName  string
	gapOpen     int32
	gapExtend   int32
	local       bool
	freeEnds    bool
	laneWidth   int
}

func (f *matrixFlags) buildEngine() (*align.Engine, error) {
	rows, err := namedMatrix(f.matrixName)
	if err != nil {
		return nil, err
	}

	b := align.NewBuilder().
		WithMatrix(rows).
		WithGapModel(f.gapOpen, f.gapExtend).
		WithLaneWidth(f.laneWidth)

	if f.local {
		b = b.WithMethod(align.MethodLocal)
	}
	if f.freeEnds {
		b = b.WithInitRule(align.InitFreeShiftBegin).WithTrailingPolicy(align.TrailingFreeShiftEnd)
	}

	return b.Build()
}

func namedMatrix(name string) ([]align.MatrixRow, error) {
	switch name {
	case "", "dna":
		return align.DNAMatchMismatch(4, -2), nil
	case "blosum62":
		return align.BLOSUM62(), nil
	case "pam250":
		return align.PAM250(), nil
	default:
		return nil, fmt.Errorf("unknown matrix %q: want dna, blosum62, or pam250", name)
	}
}
