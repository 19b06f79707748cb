package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// Castle moves the king two squares toward a rook and the rook to the
// square the king crossed.
type Castle struct {
	class            MoveClass
	from, to         chess.Position
	rookFrom, rookTo chess.Position
}

// NewCastle creates a castle for the king on from. class must be
// KingsideCastle or QueensideCastle.
func NewCastle(class MoveClass, from chess.Position) Castle {
	dir := chess.East
	rookCol := chess.BoardSize - 1
	if class == QueensideCastle {
		dir = chess.West
		rookCol = 0
	}
	return Castle{
		class:    class,
		from:     from,
		to:       from.Add(dir.Scale(2)),
		rookFrom: chess.Position{Row: from.Row, Column: rookCol},
		rookTo:   from.Add(dir),
	}
}

func (m Castle) Class() MoveClass { return m.class }
func (m Castle) From() chess.Position { return m.from }
func (m Castle) To() chess.Position { return m.to }
func (m Castle) String() string { return coordinate(m.from, m.to, chess.NoKind) }
func (Castle) sealed() {}

// RookFrom returns the rook's starting square.
func (m Castle) RookFrom() chess.Position { return m.rookFrom }

// RookTo returns the rook's destination.
func (m Castle) RookTo() chess.Position { return m.rookTo }

// Execute moves king and rook. No attack tests happen here.
func (m Castle) Execute(board *chess.Board) bool {
	NewNormalMove(m.from, m.to).Execute(board)
	NewNormalMove(m.rookFrom, m.rookTo).Execute(board)
	return false
}

// IsLegal rejects castling out of check and through or into an attacked
// square. The crossed square is the rook's destination.
func (m Castle) IsLegal(board *chess.Board) bool {
	king := board.At(m.from)
	if king.IsNone() || IsInCheck(board, king.Color) {
		return false
	}

	trial := board.Copy()
	NewNormalMove(m.from, m.rookTo).Execute(trial)
	if IsInCheck(trial, king.Color) {
		return false
	}

	return isLegal(m, board)
}

// isUnmovedRook checks the square holds a never-moved rook of the colour.
func isUnmovedRook(board *chess.Board, color chess.Player, p chess.Position) bool {
	piece := board.At(p)
	return piece.Kind == chess.Rook && piece.Color == color && !piece.HasMoved
}

// allEmpty reports whether every square in the list is empty.
func allEmpty(board *chess.Board, positions ...chess.Position) bool {
	for _, p := range positions {
		if !board.IsEmpty(p) {
			return false
		}
	}
	return true
}

// canCastle checks the king and rook are unmoved and the path between
// them is clear.
func canCastle(king chess.Piece, from chess.Position, board *chess.Board, class MoveClass) bool {
	if king.HasMoved {
		return false
	}
	row := from.Row
	if class == KingsideCastle {
		return isUnmovedRook(board, king.Color, chess.Position{Row: row, Column: 7}) &&
			allEmpty(board, chess.Position{Row: row, Column: 5}, chess.Position{Row: row, Column: 6})
	}
	return isUnmovedRook(board, king.Color, chess.Position{Row: row, Column: 0}) &&
		allEmpty(board,
			chess.Position{Row: row, Column: 1},
			chess.Position{Row: row, Column: 2},
			chess.Position{Row: row, Column: 3})
}

// kingMoves generates adjacent steps plus castle candidates.
func kingMoves(king chess.Piece, from chess.Position, board *chess.Board) []Move {
	moves := normalMoves(from, stepPositions(king, from, board, kingDirections))

	// Castling only from the king's home square
	if from.Column != 4 {
		return moves
	}
	if canCastle(king, from, board, KingsideCastle) {
		moves = append(moves, NewCastle(KingsideCastle, from))
	}
	if canCastle(king, from, board, QueensideCastle) {
		moves = append(moves, NewCastle(QueensideCastle, from))
	}
	return moves
}
