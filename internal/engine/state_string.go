package engine

import (
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// StateString returns the canonical position string used for repetition
// detection: "<placement> <side> <castling> <en-passant>". The
// en-passant field names the target square only when the side to move can
// actually make the capture.
func StateString(board *chess.Board, toMove chess.Player) string {
	var sb strings.Builder

	writePiecePositions(&sb, board)
	sb.WriteByte(' ')
	writeSideToMove(&sb, toMove)
	sb.WriteByte(' ')
	writeCastlingRights(&sb, board)
	sb.WriteByte(' ')
	writeEnPassant(&sb, board, toMove)

	return sb.String()
}

// writePiecePositions writes the piece placement, top row first.
func writePiecePositions(sb *strings.Builder, board *chess.Board) {
	for row := 0; row < chess.BoardSize; row++ {
		if row > 0 {
			sb.WriteByte('/')
		}
		emptyCount := 0
		for col := 0; col < chess.BoardSize; col++ {
			piece := board.At(chess.Position{Row: row, Column: col})
			if piece.IsNone() {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(piece.Letter())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
	}
}

// writeSideToMove writes the side to move to the builder.
func writeSideToMove(sb *strings.Builder, toMove chess.Player) {
	if toMove == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
}

// writeCastlingRights writes the available rights in KQkq order, or '-'.
func writeCastlingRights(sb *strings.Builder, board *chess.Board) {
	hasCastling := false
	if board.CastleRightKS(chess.White) {
		sb.WriteByte('K')
		hasCastling = true
	}
	if board.CastleRightQS(chess.White) {
		sb.WriteByte('Q')
		hasCastling = true
	}
	if board.CastleRightKS(chess.Black) {
		sb.WriteByte('k')
		hasCastling = true
	}
	if board.CastleRightQS(chess.Black) {
		sb.WriteByte('q')
		hasCastling = true
	}
	if !hasCastling {
		sb.WriteByte('-')
	}
}

// writeEnPassant writes the capturable en passant target square, or '-'.
func writeEnPassant(sb *strings.Builder, board *chess.Board, toMove chess.Player) {
	if !CanCaptureEnPassant(board, toMove) {
		sb.WriteByte('-')
		return
	}
	skip, _ := board.PawnSkipPosition(toMove.Opponent())
	sb.WriteString(skip.String())
}
