package main

import (
	"log/slog"

	"github.com/spf13/cobra"
)

func newScoreCmd() *cobra.Command {
	f := &matrixFlags{gapOpen: -10, gapExtend: -1, laneWidth: 8}

	cmd := &cobra.Command{
		Use:   "score <seq1> <seq2>",
		Short: "Score one pair of sequences",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := f.buildEngine()
			if err != nil {
				return err
			}
			defer engine.Close()

			s1, s2 := []byte(args[0]), []byte(args[1])
			slog.Debug("scoring pair", "len1", len(s1), "len2", len(s2), "matrix", f.matrixName)

			score, err := engine.Compute(s1, s2)
			if err != nil {
				return err
			}
			cmd.Println(score)
			return nil
		},
	}

	cmd.Flags().StringVar(&f.matrixName, "matrix", "dna", "substitution matrix: dna, blosum62, pam250")
	cmd.Flags().Int32Var(&f.gapOpen, "gap-open", f.gapOpen, "gap open penalty")
	cmd.Flags().Int32Var(&f.gapExtend, "gap-extend", f.gapExtend, "gap extend penalty")
	cmd.Flags().BoolVar(&f.local, "local", false, "run local (Smith-Waterman) alignment instead of global")
	cmd.Flags().BoolVar(&f.freeEnds, "free-end-gaps", false, "waive leading/trailing gap penalties (semiglobal)")
	cmd.Flags().IntVar(&f.laneWidth, "lane-width", f.laneWidth, "row-lane tile width")

	return cmd
}
