// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/config"
)

var (
	// Position options
	startFEN = flag.String("fen", "", "Start from this FEN position (default: standard start)")
	moveList = flag.String("moves", "", "Moves to play in coordinate notation, e.g. \"e2e4 e7e5\"")

	// Output options
	outputFile = flag.String("o", "", "Output file (default: stdout)")
	jsonOutput = flag.Bool("json", false, "Output in JSON format")
	showLegal  = flag.Bool("legal", false, "List the legal moves of the side to move")
	noFEN      = flag.Bool("nofen", false, "Don't print the FEN line")

	// Perft options
	perftDepth   = flag.Int("perft", 0, "Count leaf nodes of the move tree to this depth")
	divide       = flag.Bool("divide", false, "Print perft counts per root move")
	workers      = flag.Int("workers", 0, "Number of perft worker threads (0 = auto-detect based on CPU cores)")
	perftTimeout = flag.Duration("timeout", 0, "Abandon perft after this long, e.g. 30s (0 = no limit)")

	// Interactive mode
	interactive = flag.Bool("i", false, "Read game commands from stdin")

	// Logging
	logFile = flag.String("l", "", "Write diagnostics to log file")
	verbose = flag.Bool("v", false, "Verbose diagnostics")

	// Other options
	quiet   = flag.Bool("s", false, "Silent mode (no diagnostics)")
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) {
	applyOutputFlags(cfg)
	applyPerftFlags(cfg)

	cfg.StartFEN = strings.TrimSpace(*startFEN)

	switch {
	case *quiet:
		cfg.Verbosity = 0
	case *verbose:
		cfg.Verbosity = 2
	}
}

// applyOutputFlags configures report output settings.
func applyOutputFlags(cfg *config.Config) {
	cfg.Output.JSONFormat = *jsonOutput
	cfg.Output.ShowLegalMoves = *showLegal
	cfg.Output.ShowFEN = !*noFEN
}

// applyPerftFlags configures perft settings.
func applyPerftFlags(cfg *config.Config) {
	cfg.Perft.Depth = *perftDepth
	cfg.Perft.Divide = *divide
	cfg.Perft.Timeout = *perftTimeout
	if *workers > 0 {
		cfg.Perft.Workers = *workers
	}
}

// parseMoveList splits a move list on whitespace and commas.
func parseMoveList(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})
}
