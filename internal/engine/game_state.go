package engine

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/hashing"
)

// GameState drives a game: it filters legal moves, applies them and
// decides when the game is over. Once Result is set the state no longer
// changes.
type GameState struct {
	board         *chess.Board
	currentPlayer chess.Player
	result        *Result

	// Half-moves since the last capture or pawn move.
	halfMoveClock  int
	fullMoveNumber int

	positions   *hashing.PositionTable
	stateString string
	history     []Move
}

// NewGameState starts a game from the given board with player to move.
// The game takes ownership of the board.
func NewGameState(board *chess.Board, player chess.Player) *GameState {
	return newGameState(Setup{Board: board, ToMove: player, FullMoveNumber: 1})
}

// NewGame starts a game from the standard position.
func NewGame() *GameState {
	return NewGameState(chess.InitialBoard(), chess.White)
}

// NewGameFromFEN starts a game from a FEN position, keeping its clocks.
func NewGameFromFEN(fen string) (*GameState, error) {
	setup, err := ParseFEN(fen)
	if err != nil {
		return nil, err
	}
	return newGameState(setup), nil
}

func newGameState(setup Setup) *GameState {
	g := &GameState{
		board:          setup.Board,
		currentPlayer:  setup.ToMove,
		halfMoveClock:  setup.HalfMoveClock,
		fullMoveNumber: setup.FullMoveNumber,
		positions:      hashing.NewPositionTable(),
	}
	g.stateString = StateString(g.board, g.currentPlayer)
	g.positions.Add(g.stateString)
	g.result = evaluate(g.board, g.currentPlayer, g.halfMoveClock, 1)
	return g
}

// Board returns the live board. Callers must treat it as read-only; use
// Copy to experiment.
func (g *GameState) Board() *chess.Board { return g.board }

// CurrentPlayer returns the side to move.
func (g *GameState) CurrentPlayer() chess.Player { return g.currentPlayer }

// Result returns the outcome, or nil while the game is in progress.
func (g *GameState) Result() *Result {
	if g.result == nil {
		return nil
	}
	r := *g.result
	return &r
}

// IsGameOver returns true once a result has been set.
func (g *GameState) IsGameOver() bool { return g.result != nil }

// Status returns the state machine's current state.
func (g *GameState) Status() Status {
	if g.result == nil {
		return InProgress
	}
	return statusFor(*g.result)
}

// HalfMoveClock returns half-moves since the last capture or pawn move.
func (g *GameState) HalfMoveClock() int { return g.halfMoveClock }

// FullMoveNumber returns the FEN move number, incremented after Black moves.
func (g *GameState) FullMoveNumber() int { return g.fullMoveNumber }

// StateString returns the canonical string of the current position.
func (g *GameState) StateString() string { return g.stateString }

// FEN returns the current position as a FEN string.
func (g *GameState) FEN() string {
	return fmt.Sprintf("%s %d %d", g.stateString, g.halfMoveClock, g.fullMoveNumber)
}

// Occurrences returns how often the current position has been reached.
func (g *GameState) Occurrences() int { return g.positions.Count(g.stateString) }

// History returns the moves played so far.
func (g *GameState) History() []Move {
	return append([]Move(nil), g.history...)
}

// InCheck reports whether the side to move is in check.
func (g *GameState) InCheck() bool { return IsInCheck(g.board, g.currentPlayer) }

// LegalMovesForPiece returns the legal moves of the current player's piece
// on pos. Empty squares, opponent pieces and finished games give none.
func (g *GameState) LegalMovesForPiece(pos chess.Position) []Move {
	if g.result != nil || !chess.IsInside(pos) {
		return nil
	}
	piece := g.board.At(pos)
	if piece.IsNone() || piece.Color != g.currentPlayer {
		return nil
	}
	return LegalMovesAt(g.board, pos)
}

// AllLegalMovesFor returns every legal move for the player.
func (g *GameState) AllLegalMovesFor(player chess.Player) []Move {
	return AllLegalMoves(g.board, player)
}

// MakeMove plays a move for the side to move. The move must be one of the
// current legal moves; a promotion without a piece kind promotes to a queen.
func (g *GameState) MakeMove(move Move) error {
	if move == nil {
		return g.moveError(errors.ErrIllegalMove, "")
	}
	if g.result != nil {
		return g.moveError(errors.ErrGameOver, move.String())
	}
	if promo, ok := move.(PawnPromotion); ok && !validPromotion(promo.Kind()) {
		return g.moveError(fmt.Errorf("%s: %w", promo.Kind(), errors.ErrInvalidPromotion), move.String())
	}
	if !g.isCurrentLegal(move) {
		return g.moveError(errors.ErrIllegalMove, move.String())
	}

	mover := g.currentPlayer
	captured, pawnMove := applyMove(g.board, mover, move)
	g.history = append(g.history, move)
	g.currentPlayer = mover.Opponent()

	if captured || pawnMove {
		g.halfMoveClock = 0
	} else {
		g.halfMoveClock++
	}
	if mover == chess.Black {
		g.fullMoveNumber++
	}

	g.stateString = StateString(g.board, g.currentPlayer)
	occurrences := g.positions.Add(g.stateString)
	g.result = evaluate(g.board, g.currentPlayer, g.halfMoveClock, occurrences)
	return nil
}

// FindMove resolves coordinate notation ("e2e4", "e7e8n") against the
// current legal moves. A promotion without a letter picks the queen.
func (g *GameState) FindMove(text string) (Move, error) {
	from, to, kind, err := ParseCoordinate(text)
	if err != nil {
		return nil, g.moveError(err, text)
	}
	for _, move := range g.LegalMovesForPiece(from) {
		if move.To() != to {
			continue
		}
		promo, isPromo := move.(PawnPromotion)
		switch {
		case !isPromo && kind == chess.NoKind:
			return move, nil
		case isPromo && promo.Kind() == kindOrQueen(kind):
			return move, nil
		}
	}
	if g.result != nil {
		return nil, g.moveError(errors.ErrGameOver, text)
	}
	return nil, g.moveError(errors.ErrIllegalMove, text)
}

// MakeMoveString finds and plays a move given in coordinate notation.
func (g *GameState) MakeMoveString(text string) error {
	move, err := g.FindMove(text)
	if err != nil {
		return err
	}
	return g.MakeMove(move)
}

// isCurrentLegal checks membership in the current legal set.
func (g *GameState) isCurrentLegal(move Move) bool {
	for _, legal := range g.LegalMovesForPiece(move.From()) {
		if legal == move {
			return true
		}
	}
	return false
}

func (g *GameState) moveError(err error, text string) error {
	return &errors.MoveError{Err: err, Ply: len(g.history) + 1, MoveText: text}
}

func kindOrQueen(kind chess.PieceKind) chess.PieceKind {
	if kind == chess.NoKind {
		return chess.Queen
	}
	return kind
}
