package main

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/ajroetker/go-pairalign/align"
	"github.com/spf13/cobra"
)

func newBatchCmd() *cobra.Command {
	f := &matrixFlags{gapOpen: -10, gapExtend: -1, laneWidth: 8}

	cmd := &cobra.Command{
		Use:   "batch <pairs.tsv>",
		Short: "Score every pair in a tab-separated file (seq1<TAB>seq2 per line)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pairs, err := readPairs(args[0])
			if err != nil {
				return err
			}

			engine, err := f.buildEngine()
			if err != nil {
				return err
			}
			defer engine.Close()

			slog.Info("scoring batch", "pairs", len(pairs), "matrix", f.matrixName)
			scores, err := engine.ComputeBatch(pairs)
			if err != nil {
				return err
			}
			for _, s := range scores {
				cmd.Println(s)
			}
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

func readPairs(path string) ([]align.Pair, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening pairs file: %w", err)
	}
	defer file.Close()

	var pairs []align.Pair
	scanner := bufio.NewScanner(file)
	for lineNo := 1; scanner.Scan(); lineNo++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Split(line, "\t")
		if len(fields) != 2 {
			return nil, fmt.Errorf("line %d: expected seq1<TAB>seq2, got %d fields", lineNo, len(fields))
		}
		pairs = append(pairs, align.Pair{S1: []byte(fields[0]), S2: []byte(fields[1])})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading pairs file: %w", err)
	}
	return pairs, nil
}
