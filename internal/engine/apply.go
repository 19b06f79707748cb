package engine

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// applyMove plays a move for the player on board. The player's own
// pawn-skip square expires first, so only the latest double step can be
// taken en passant. It reports whether a piece was captured and whether a
// pawn moved.
func applyMove(board *chess.Board, player chess.Player, move Move) (captured, pawnMove bool) {
	pawnMove = board.At(move.From()).Kind == chess.Pawn
	board.ClearPawnSkipPosition(player)
	captured = move.Execute(board)
	return captured, pawnMove
}

// ParseCoordinate splits coordinate notation such as "e2e4" or "a7a8n"
// into its squares and optional promotion kind.
func ParseCoordinate(text string) (from, to chess.Position, promotion chess.PieceKind, err error) {
	if len(text) != 4 && len(text) != 5 {
		return from, to, chess.NoKind, fmt.Errorf("bad move text %q: %w", text, errors.ErrIllegalMove)
	}
	if from, err = chess.ParseSquare(text[0:2]); err != nil {
		return from, to, chess.NoKind, err
	}
	if to, err = chess.ParseSquare(text[2:4]); err != nil {
		return from, to, chess.NoKind, err
	}
	if len(text) == 5 {
		promotion = chess.KindFromLetter(text[4])
		if !validPromotion(promotion) {
			return from, to, chess.NoKind, fmt.Errorf("promotion letter %q: %w", text[4], errors.ErrInvalidPromotion)
		}
	}
	return from, to, promotion, nil
}
