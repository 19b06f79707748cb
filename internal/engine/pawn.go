package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// promotionKinds is the order promotion moves are generated in.
var promotionKinds = []chess.PieceKind{chess.Knight, chess.Bishop, chess.Rook, chess.Queen}

// pawnForward returns the direction the player's pawns advance.
func pawnForward(color chess.Player) chess.Direction {
	if color == chess.White {
		return chess.North
	}
	return chess.South
}

// isLastRow reports whether a pawn arriving on the square promotes.
func isLastRow(p chess.Position) bool {
	return p.Row == 0 || p.Row == chess.BoardSize-1
}

// pawnMoves generates forward moves followed by diagonal moves.
func pawnMoves(pawn chess.Piece, from chess.Position, board *chess.Board) []Move {
	moves := pawnForwardMoves(pawn, from, board)
	return append(moves, pawnDiagonalMoves(pawn, from, board)...)
}

// pawnStepMoves returns the plain move, or the four promotions when the
// destination is the last row.
func pawnStepMoves(from, to chess.Position) []Move {
	if !isLastRow(to) {
		return []Move{NewNormalMove(from, to)}
	}
	moves := make([]Move, 0, len(promotionKinds))
	for _, kind := range promotionKinds {
		moves = append(moves, NewPawnPromotion(from, to, kind))
	}
	return moves
}

func pawnForwardMoves(pawn chess.Piece, from chess.Position, board *chess.Board) []Move {
	forward := pawnForward(pawn.Color)
	oneStep := from.Add(forward)
	if !chess.IsInside(oneStep) || !board.IsEmpty(oneStep) {
		return nil
	}

	moves := pawnStepMoves(from, oneStep)

	// Double push from an unmoved pawn
	twoSteps := oneStep.Add(forward)
	if !pawn.HasMoved && chess.IsInside(twoSteps) && board.IsEmpty(twoSteps) {
		moves = append(moves, NewDoublePawn(from, twoSteps))
	}
	return moves
}

// pawnAttackPositions returns the two diagonal squares ahead of the pawn
// that lie on the board.
func pawnAttackPositions(pawn chess.Piece, from chess.Position) []chess.Position {
	forward := pawnForward(pawn.Color)
	positions := make([]chess.Position, 0, 2)
	for _, side := range []chess.Direction{chess.West, chess.East} {
		if to := from.Add(forward.Add(side)); chess.IsInside(to) {
			positions = append(positions, to)
		}
	}
	return positions
}

func pawnDiagonalMoves(pawn chess.Piece, from chess.Position, board *chess.Board) []Move {
	skip, hasSkip := board.PawnSkipPosition(pawn.Color.Opponent())

	var moves []Move
	for _, to := range pawnAttackPositions(pawn, from) {
		if hasSkip && to == skip {
			moves = append(moves, NewEnPassant(from, to))
			continue
		}
		target := board.At(to)
		if !target.IsNone() && target.Color != pawn.Color {
			moves = append(moves, pawnStepMoves(from, to)...)
		}
	}
	return moves
}
