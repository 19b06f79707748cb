// Package engine provides chess move generation, legality checking and the
// game state machine.
package engine

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Setup is a position read from FEN: the board, the side to move and the
// two move counters.
type Setup struct {
	Board          *chess.Board
	ToMove         chess.Player
	HalfMoveClock  int
	FullMoveNumber int
}

// ParseFEN reads a FEN string. Moved flags are derived from the fields:
// kings and rooks count as unmoved only where a castling right keeps them
// so, and pawns only on their starting row. The en passant field becomes
// the opponent's pawn-skip square.
func ParseFEN(fen string) (Setup, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return Setup{}, fmt.Errorf("empty FEN string: %w", errors.ErrInvalidFEN)
	}

	setup := Setup{
		Board:          chess.NewBoard(),
		ToMove:         chess.White,
		FullMoveNumber: 1,
	}

	if err := parsePiecePositions(setup.Board, parts[0]); err != nil {
		return Setup{}, err
	}
	if err := parseSideToMove(&setup, parts); err != nil {
		return Setup{}, err
	}
	if err := parseCastlingRights(setup.Board, parts); err != nil {
		return Setup{}, err
	}
	if err := parseEnPassant(&setup, parts); err != nil {
		return Setup{}, err
	}
	if err := parseClocks(&setup, parts); err != nil {
		return Setup{}, err
	}
	if err := checkKings(setup.Board); err != nil {
		return Setup{}, err
	}

	return setup, nil
}

// NewBoardFromFEN returns just the board of a FEN string.
func NewBoardFromFEN(fen string) (*chess.Board, error) {
	setup, err := ParseFEN(fen)
	if err != nil {
		return nil, err
	}
	return setup.Board, nil
}

// parsePiecePositions parses the piece placement field of a FEN string.
func parsePiecePositions(board *chess.Board, placement string) error {
	rows := strings.Split(placement, "/")
	if len(rows) != chess.BoardSize {
		return fmt.Errorf("want %d ranks, got %d: %w", chess.BoardSize, len(rows), errors.ErrInvalidFEN)
	}

	for row, text := range rows {
		col := 0
		for _, c := range text {
			if c >= '1' && c <= '8' {
				col += int(c - '0')
				continue
			}
			kind := chess.NoKind
			if c <= unicode.MaxASCII {
				kind = chess.KindFromLetter(byte(c))
			}
			if kind == chess.NoKind {
				return fmt.Errorf("invalid piece character: %c: %w", c, errors.ErrInvalidFEN)
			}
			if col >= chess.BoardSize {
				return fmt.Errorf("rank %d too long: %w", chess.BoardSize-row, errors.ErrInvalidFEN)
			}

			colour := chess.White
			if unicode.IsLower(c) {
				colour = chess.Black
			}

			pos := chess.Position{Row: row, Column: col}
			piece := chess.NewPiece(colour, kind)
			// Only pawns on their start row may still double-step
			if kind == chess.Pawn {
				piece.HasMoved = !onPawnStartRow(colour, pos)
			}
			// Kings and rooks are unmarked later from the castling field
			if kind == chess.King || kind == chess.Rook {
				piece.HasMoved = true
			}
			board.Set(pos, piece)
			col++
		}
		if col != chess.BoardSize {
			return fmt.Errorf("rank %d has %d squares: %w", chess.BoardSize-row, col, errors.ErrInvalidFEN)
		}
	}
	return nil
}

func onPawnStartRow(colour chess.Player, pos chess.Position) bool {
	if colour == chess.White {
		return pos.Row == chess.BoardSize-2
	}
	return pos.Row == 1
}

// parseSideToMove parses the side to move field.
func parseSideToMove(setup *Setup, parts []string) error {
	if len(parts) < 2 {
		return nil
	}
	switch parts[1] {
	case "w":
		setup.ToMove = chess.White
	case "b":
		setup.ToMove = chess.Black
	default:
		return fmt.Errorf("invalid side to move: %s: %w", parts[1], errors.ErrInvalidFEN)
	}
	return nil
}

// parseCastlingRights clears the moved flag of every king and rook that a
// castling right refers to.
func parseCastlingRights(board *chess.Board, parts []string) error {
	if len(parts) < 3 || parts[2] == "-" {
		return nil
	}

	for _, c := range parts[2] {
		var colour chess.Player
		var rookCol int
		switch c {
		case 'K':
			colour, rookCol = chess.White, chess.BoardSize-1
		case 'Q':
			colour, rookCol = chess.White, 0
		case 'k':
			colour, rookCol = chess.Black, chess.BoardSize-1
		case 'q':
			colour, rookCol = chess.Black, 0
		default:
			return fmt.Errorf("invalid castling character: %c: %w", c, errors.ErrInvalidFEN)
		}

		row := 0
		if colour == chess.White {
			row = chess.BoardSize - 1
		}
		kingPos := chess.Position{Row: row, Column: 4}
		rookPos := chess.Position{Row: row, Column: rookCol}
		king, rook := board.At(kingPos), board.At(rookPos)
		// A right without its pieces in place is ignored
		if king.Kind != chess.King || king.Color != colour || rook.Kind != chess.Rook || rook.Color != colour {
			continue
		}
		king.HasMoved = false
		rook.HasMoved = false
		board.Set(kingPos, king)
		board.Set(rookPos, rook)
	}
	return nil
}

// parseEnPassant parses the en passant target square field.
func parseEnPassant(setup *Setup, parts []string) error {
	if len(parts) < 4 || parts[3] == "-" {
		return nil
	}
	target, err := chess.ParseSquare(parts[3])
	if err != nil {
		return fmt.Errorf("en passant square %q: %w", parts[3], errors.ErrInvalidFEN)
	}

	// The target lies behind a pawn of the side that just moved.
	wantRow := 2
	if setup.ToMove == chess.Black {
		wantRow = chess.BoardSize - 3
	}
	if target.Row != wantRow {
		return fmt.Errorf("en passant square %s on wrong rank: %w", target, errors.ErrInvalidFEN)
	}

	setup.Board.SetPawnSkipPosition(setup.ToMove.Opponent(), target)
	return nil
}

// parseClocks parses the halfmove clock and fullmove number fields.
func parseClocks(setup *Setup, parts []string) error {
	if len(parts) >= 5 {
		n, err := strconv.Atoi(parts[4])
		if err != nil || n < 0 {
			return fmt.Errorf("halfmove clock %q: %w", parts[4], errors.ErrInvalidFEN)
		}
		setup.HalfMoveClock = n
	}
	if len(parts) >= 6 {
		n, err := strconv.Atoi(parts[5])
		if err != nil || n < 1 {
			return fmt.Errorf("fullmove number %q: %w", parts[5], errors.ErrInvalidFEN)
		}
		setup.FullMoveNumber = n
	}
	return nil
}

// checkKings enforces exactly one king per side.
func checkKings(board *chess.Board) error {
	counting := board.CountPieces()
	if counting.White(chess.King) != 1 || counting.Black(chess.King) != 1 {
		return fmt.Errorf("need one king per side, got %d white and %d black: %w",
			counting.White(chess.King), counting.Black(chess.King), errors.ErrInvalidFEN)
	}
	return nil
}

// BoardToFEN renders a full FEN string. The en passant field follows the
// canonical state string and is only set when the capture is possible.
func BoardToFEN(board *chess.Board, toMove chess.Player, halfMoveClock, fullMoveNumber int) string {
	return fmt.Sprintf("%s %d %d", StateString(board, toMove), halfMoveClock, fullMoveNumber)
}
