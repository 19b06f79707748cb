package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// IsInCheck returns true if any opponent piece attacks the player's king.
func IsInCheck(board *chess.Board, player chess.Player) bool {
	for _, pos := range board.PiecePositionsFor(player.Opponent()) {
		if CanCaptureOpponentKing(board.At(pos), pos, board) {
			return true
		}
	}
	return false
}

// CanCaptureEnPassant returns true if the opponent has just double-stepped
// and one of the player's pawns can legally take en passant.
func CanCaptureEnPassant(board *chess.Board, player chess.Player) bool {
	skip, ok := board.PawnSkipPosition(player.Opponent())
	if !ok {
		return false
	}

	// The capturing pawn stands diagonally behind the skipped square.
	var behind []chess.Direction
	switch player {
	case chess.White:
		behind = []chess.Direction{chess.SouthWest, chess.SouthEast}
	case chess.Black:
		behind = []chess.Direction{chess.NorthWest, chess.NorthEast}
	default:
		return false
	}

	for _, dir := range behind {
		pos := skip.Add(dir)
		if !chess.IsInside(pos) {
			continue
		}
		piece := board.At(pos)
		if piece.Kind != chess.Pawn || piece.Color != player {
			continue
		}
		if NewEnPassant(pos, skip).IsLegal(board) {
			return true
		}
	}
	return false
}
