package engine

import (
	"context"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/worker"
)

// Perft counts the leaf nodes of the legal move tree of the given depth.
// The board is not modified.
func Perft(board *chess.Board, player chess.Player, depth int) uint64 {
	nodes, _ := perft(context.Background(), board, player, depth)
	return nodes
}

// perft is Perft that gives up with ctx's error once ctx is done. The
// context is polled at every interior node above the last ply.
func perft(ctx context.Context, board *chess.Board, player chess.Player, depth int) (uint64, error) {
	if depth <= 0 {
		return 1, nil
	}

	moves := AllLegalMoves(board, player)
	if depth == 1 {
		return uint64(len(moves)), nil
	}
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	var nodes uint64
	for _, move := range moves {
		child := board.Copy()
		applyMove(child, player, move)
		n, err := perft(ctx, child, player.Opponent(), depth-1)
		if err != nil {
			return 0, err
		}
		nodes += n
	}
	return nodes, nil
}

// Divide returns the perft count below each legal root move, keyed by the
// move in coordinate notation.
func Divide(board *chess.Board, player chess.Player, depth int) map[string]uint64 {
	counts := make(map[string]uint64)
	if depth <= 0 {
		return counts
	}
	for _, move := range AllLegalMoves(board, player) {
		child := board.Copy()
		applyMove(child, player, move)
		counts[move.String()] = Perft(child, player.Opponent(), depth-1)
	}
	return counts
}

// SortedMoves returns the keys of a Divide result in lexical order.
func SortedMoves(counts map[string]uint64) []string {
	keys := maps.Keys(counts)
	slices.Sort(keys)
	return keys
}

// ParallelPerft is Perft with the root moves spread over a worker pool.
// It returns the total and the per-move counts. When ctx is done before
// the count finishes, the remaining subtrees are skipped and ctx's error
// is returned.
func ParallelPerft(ctx context.Context, board *chess.Board, player chess.Player, depth, workers int) (uint64, map[string]uint64, error) {
	counts := make(map[string]uint64)
	if depth <= 0 {
		return 1, counts, nil
	}

	moves := AllLegalMoves(board, player)
	pool := worker.New(subtreeCounter(ctx), worker.WithWorkers(workers), worker.WithQueueSize(len(moves)))
	pool.Start()

	go func() {
		defer pool.Close()
		for _, move := range moves {
			child := board.Copy()
			applyMove(child, player, move)
			subtree := worker.Subtree{
				Move:   move.String(),
				Board:  child,
				ToMove: player.Opponent(),
				Depth:  depth - 1,
			}
			if !pool.Submit(subtree) {
				return
			}
		}
	}()

	var total uint64
	var firstErr error
	for count := range pool.Results() {
		if count.Err != nil {
			if firstErr == nil {
				firstErr = count.Err
				pool.Stop()
			}
			continue
		}
		counts[count.Move] = count.Nodes
		total += count.Nodes
	}
	if firstErr != nil {
		return 0, nil, firstErr
	}
	return total, counts, nil
}

// subtreeCounter returns a worker.CountFunc bound to ctx.
func subtreeCounter(ctx context.Context) worker.CountFunc {
	return func(subtree worker.Subtree) worker.Count {
		nodes, err := perft(ctx, subtree.Board, subtree.ToMove, subtree.Depth)
		return worker.Count{Move: subtree.Move, Nodes: nodes, Err: err}
	}
}
