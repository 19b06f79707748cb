package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

var (
	bishopDirections = []chess.Direction{chess.NorthEast, chess.SouthWest, chess.SouthEast, chess.NorthWest}
	rookDirections   = []chess.Direction{chess.North, chess.South, chess.East, chess.West}
	queenDirections  = []chess.Direction{
		chess.North, chess.South, chess.East, chess.West,
		chess.NorthEast, chess.SouthEast, chess.NorthWest, chess.SouthWest,
	}
	kingDirections = queenDirections
)

// GetMoves returns the pseudo-legal moves of piece standing on from. The
// moves obey the movement pattern and board occupancy but are not yet
// checked for king safety. A fresh slice is built on every call.
func GetMoves(piece chess.Piece, from chess.Position, board *chess.Board) []Move {
	switch piece.Kind {
	case chess.Pawn:
		return pawnMoves(piece, from, board)
	case chess.Knight:
		return normalMoves(from, knightPositions(piece, from, board))
	case chess.Bishop:
		return normalMoves(from, slidingPositions(piece, from, board, bishopDirections))
	case chess.Rook:
		return normalMoves(from, slidingPositions(piece, from, board, rookDirections))
	case chess.Queen:
		return normalMoves(from, slidingPositions(piece, from, board, queenDirections))
	case chess.King:
		return kingMoves(piece, from, board)
	}
	return nil
}

// CanCaptureOpponentKing reports whether piece on from attacks the enemy
// king. It only looks at attack patterns, so check detection never has to
// run the legality filter.
func CanCaptureOpponentKing(piece chess.Piece, from chess.Position, board *chess.Board) bool {
	var targets []chess.Position
	switch piece.Kind {
	case chess.Pawn:
		targets = pawnAttackPositions(piece, from)
	case chess.Knight:
		targets = knightPositions(piece, from, board)
	case chess.Bishop:
		targets = slidingPositions(piece, from, board, bishopDirections)
	case chess.Rook:
		targets = slidingPositions(piece, from, board, rookDirections)
	case chess.Queen:
		targets = slidingPositions(piece, from, board, queenDirections)
	case chess.King:
		targets = stepPositions(piece, from, board, kingDirections)
	}

	for _, to := range targets {
		target := board.At(to)
		if target.Kind == chess.King && target.Color != piece.Color {
			return true
		}
	}
	return false
}

// normalMoves turns destination squares into plain moves.
func normalMoves(from chess.Position, targets []chess.Position) []Move {
	moves := make([]Move, 0, len(targets))
	for _, to := range targets {
		moves = append(moves, NewNormalMove(from, to))
	}
	return moves
}

// canLandOn reports whether the piece may finish on the square: on the
// board and not held by its own side.
func canLandOn(piece chess.Piece, to chess.Position, board *chess.Board) bool {
	if !chess.IsInside(to) {
		return false
	}
	target := board.At(to)
	return target.IsNone() || target.Color != piece.Color
}

// slidingPositions walks each direction until the edge or the first
// occupied square, which is included only when it holds an opponent piece.
func slidingPositions(piece chess.Piece, from chess.Position, board *chess.Board, dirs []chess.Direction) []chess.Position {
	var positions []chess.Position
	for _, dir := range dirs {
		for pos := from.Add(dir); chess.IsInside(pos); pos = pos.Add(dir) {
			target := board.At(pos)
			if target.IsNone() {
				positions = append(positions, pos)
				continue
			}
			if target.Color != piece.Color {
				positions = append(positions, pos)
			}
			break // Blocked
		}
	}
	return positions
}

// stepPositions returns the one-step destinations along each direction.
func stepPositions(piece chess.Piece, from chess.Position, board *chess.Board, dirs []chess.Direction) []chess.Position {
	positions := make([]chess.Position, 0, len(dirs))
	for _, dir := range dirs {
		if to := from.Add(dir); canLandOn(piece, to, board) {
			positions = append(positions, to)
		}
	}
	return positions
}

// knightPositions returns the knight destinations: two squares along one
// axis and one along the other.
func knightPositions(piece chess.Piece, from chess.Position, board *chess.Board) []chess.Position {
	positions := make([]chess.Position, 0, 8)
	for _, vertical := range []chess.Direction{chess.North, chess.South} {
		for _, horizontal := range []chess.Direction{chess.West, chess.East} {
			for _, offset := range []chess.Direction{
				vertical.Scale(2).Add(horizontal),
				horizontal.Scale(2).Add(vertical),
			} {
				if to := from.Add(offset); canLandOn(piece, to, board) {
					positions = append(positions, to)
				}
			}
		}
	}
	return positions
}
