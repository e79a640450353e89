// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command align scores pairs of biological sequences under an affine-gap
// substitution model.
//
// Usage:
//
//	align score GATTACA GATTACA --matrix=dna
//	align score QERTYK QERTYG --matrix=blosum62 --local
//	align batch pairs.tsv --matrix=blosum62
package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var logLevel string

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "align",
		Short: "Pairwise sequence alignment under an affine-gap model",
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level: debug, info, warn, error")
	root.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		configureLogging(logLevel)
	}

	root.AddCommand(newScoreCmd())
	root.AddCommand(newBatchCmd())
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func configureLogging(level string) {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "info":
		lvl = slog.LevelInfo
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelWarn
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})
	slog.SetDefault(slog.New(handler))
}
