// chessrules plays moves against the chess rules engine and reports the
// resulting position, legal moves, game result and perft counts.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/output"
)

const programVersion = "0.1.0"

// runOptions holds the flags that pick what run does rather than how it
// reports.
type runOptions struct {
	moves       []string
	interactive bool
}

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chessrules version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	applyFlags(cfg)

	var opened []io.Closer
	for _, setup := range []func(*config.Config) (io.Closer, error){setupLogFile, setupOutputFile} {
		file, err := setup(cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			_ = closeAll(opened, nil)
			os.Exit(1)
		}
		if file != nil {
			opened = append(opened, file)
		}
	}

	opts := runOptions{
		moves:       parseMoveList(*moveList),
		interactive: *interactive,
	}
	err := run(cfg, opts, os.Stdin)
	if err = closeAll(opened, err); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// setupLogFile opens the log file named by the -l flag, if any.
func setupLogFile(cfg *config.Config) (io.Closer, error) {
	if *logFile == "" {
		return nil, nil
	}
	file, err := os.Create(*logFile)
	if err != nil {
		return nil, errors.Wrapf(err, "creating log file %s", *logFile)
	}
	cfg.LogFile = file
	return file, nil
}

// setupOutputFile opens the output file named by the -o flag, if any.
func setupOutputFile(cfg *config.Config) (io.Closer, error) {
	if *outputFile == "" {
		return nil, nil
	}
	file, err := os.Create(*outputFile)
	if err != nil {
		return nil, errors.Wrapf(err, "creating output file %s", *outputFile)
	}
	cfg.SetOutput(file)
	return file, nil
}

// closeAll closes every file, last opened first. It returns err when set,
// otherwise the first close error.
func closeAll(files []io.Closer, err error) error {
	for i := len(files) - 1; i >= 0; i-- {
		if cerr := files[i].Close(); cerr != nil && err == nil {
			err = errors.Wrap(cerr, "close")
		}
	}
	return err
}

// run validates the configuration and either drives an interactive session
// from in or plays opts.moves and writes one report.
func run(cfg *config.Config, opts runOptions, in io.Reader) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if opts.interactive {
		return runInteractive(cfg, in)
	}

	game, err := startGame(cfg.StartFEN)
	if err != nil {
		return err
	}
	for _, text := range opts.moves {
		if err := game.MakeMoveString(text); err != nil {
			return err
		}
		cfg.Logf(2, "played %s: %s\n", text, game.StateString())
	}
	if result := game.Result(); result != nil {
		cfg.Logf(1, "game finished: %s\n", result)
	}

	report := output.BuildReport(game, cfg.Output.ShowLegalMoves)
	if cfg.Perft.Depth > 0 {
		if report.Perft, err = runPerft(cfg, game); err != nil {
			return err
		}
	}

	writer := output.NewWriter(cfg.OutputFile, cfg)
	if err := writer.WriteReport(report); err != nil {
		return errors.Wrap(err, "write report")
	}
	return writer.Close()
}

func startGame(fen string) (*engine.GameState, error) {
	if fen == "" {
		return engine.NewGame(), nil
	}
	return engine.NewGameFromFEN(fen)
}

// runPerft counts the move tree below the current position on the worker
// pool, giving up after cfg.Perft.Timeout when one is set.
func runPerft(cfg *config.Config, game *engine.GameState) (*output.PerftReport, error) {
	ctx := context.Background()
	if cfg.Perft.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Perft.Timeout)
		defer cancel()
	}

	start := time.Now()
	nodes, counts, err := engine.ParallelPerft(ctx, game.Board(), game.CurrentPlayer(), cfg.Perft.Depth, cfg.Perft.Workers)
	if err != nil {
		return nil, errors.Wrapf(err, "perft %d", cfg.Perft.Depth)
	}
	cfg.Logf(1, "perft %d: %d nodes in %v using %d workers\n",
		cfg.Perft.Depth, nodes, time.Since(start).Round(time.Millisecond), cfg.Perft.Workers)

	if !cfg.Perft.Divide {
		counts = nil
	}
	return output.NewPerftReport(cfg.Perft.Depth, nodes, counts), nil
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chessrules [options]\n\n")
	fmt.Fprintf(os.Stderr, "Play moves under the rules of chess and report the resulting position.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nInteractive commands (-i):\n")
	fmt.Fprintf(os.Stderr, "  new [fen]          Start a game, prints its id\n")
	fmt.Fprintf(os.Stderr, "  move <id> <move>   Play a move such as e2e4 or e7e8n\n")
	fmt.Fprintf(os.Stderr, "  legal <id>         List legal moves\n")
	fmt.Fprintf(os.Stderr, "  show <id>          Print the game state\n")
	fmt.Fprintf(os.Stderr, "  drop <id>          Forget a game\n")
	fmt.Fprintf(os.Stderr, "  list               List game ids\n")
	fmt.Fprintf(os.Stderr, "  quit               Exit\n")
}
