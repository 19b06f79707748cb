package testutil

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/exp/slices"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// PlacePieces returns an empty board holding the given pieces, keyed by
// algebraic square ("e4"). It fails the test on a bad square.
func PlacePieces(t testing.TB, pieces map[string]chess.Piece) *chess.Board {
	t.Helper()
	board := chess.NewBoard()
	for square, piece := range pieces {
		pos, err := chess.ParseSquare(square)
		if err != nil {
			t.Fatalf("PlacePieces: %v", err)
		}
		board.Set(pos, piece)
	}
	return board
}

// Moved returns a piece that has already moved.
func Moved(color chess.Player, kind chess.PieceKind) chess.Piece {
	piece := chess.NewPiece(color, kind)
	piece.HasMoved = true
	return piece
}

// SortedStrings renders each item with String and sorts the result, so
// move lists can be compared regardless of generation order.
func SortedStrings[T fmt.Stringer](items []T) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, item.String())
	}
	slices.Sort(out)
	return out
}

// AssertMoves fails unless got renders to exactly the want strings, in any
// order. An empty want expects no moves.
func AssertMoves[T fmt.Stringer](t testing.TB, got []T, want ...string) {
	t.Helper()
	sorted := append([]string{}, want...)
	slices.Sort(sorted)
	if diff := cmp.Diff(sorted, SortedStrings(got)); diff != "" {
		t.Errorf("moves mismatch (-want +got):\n%s", diff)
	}
}
