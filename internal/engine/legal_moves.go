package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// LegalMovesAt returns the legal moves of whatever piece stands on from.
func LegalMovesAt(board *chess.Board, from chess.Position) []Move {
	piece := board.At(from)
	if piece.IsNone() {
		return nil
	}

	var legal []Move
	for _, move := range GetMoves(piece, from, board) {
		if move.IsLegal(board) {
			legal = append(legal, move)
		}
	}
	return legal
}

// AllLegalMoves returns every legal move available to the player.
func AllLegalMoves(board *chess.Board, player chess.Player) []Move {
	var legal []Move
	for _, pos := range board.PiecePositionsFor(player) {
		legal = append(legal, LegalMovesAt(board, pos)...)
	}
	return legal
}

// HasLegalMoves returns true if the player has at least one legal move.
func HasLegalMoves(board *chess.Board, player chess.Player) bool {
	for _, pos := range board.PiecePositionsFor(player) {
		piece := board.At(pos)
		for _, move := range GetMoves(piece, pos, board) {
			if move.IsLegal(board) {
				return true
			}
		}
	}
	return false
}
