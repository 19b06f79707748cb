package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// FiftyMoveLimit is the half-move count without capture or pawn move
// that draws the game.
const FiftyMoveLimit = 100

// RepetitionLimit is the number of occurrences of a position that draws
// the game.
const RepetitionLimit = 3

// EndReason says why a game finished.
type EndReason int

const (
	Checkmate EndReason = iota
	Stalemate
	FiftyMoveRule
	InsufficientMaterial
	ThreefoldRepetition
)

// String returns the string representation of an end reason.
func (r EndReason) String() string {
	names := []string{"Checkmate", "Stalemate", "FiftyMoveRule", "InsufficientMaterial", "ThreefoldRepetition"}
	if r >= 0 && int(r) < len(names) {
		return names[r]
	}
	return "Unknown"
}

// Result is the outcome of a finished game. Winner is chess.None for draws.
type Result struct {
	Winner chess.Player
	Reason EndReason
}

// Win creates a decisive result.
func Win(winner chess.Player, reason EndReason) Result {
	return Result{Winner: winner, Reason: reason}
}

// Draw creates a drawn result.
func Draw(reason EndReason) Result {
	return Result{Winner: chess.None, Reason: reason}
}

// String returns a PGN-style score followed by the reason, e.g. "1-0 Checkmate".
func (r Result) String() string {
	score := "1/2-1/2"
	switch r.Winner {
	case chess.White:
		score = "1-0"
	case chess.Black:
		score = "0-1"
	}
	return score + " " + r.Reason.String()
}

// Status is the state of the game state machine.
type Status int

const (
	InProgress Status = iota
	StatusCheckmate
	StatusStalemate
	DrawFiftyMove
	DrawInsufficientMaterial
	DrawRepetition
)

// String returns the string representation of a status.
func (s Status) String() string {
	names := []string{"InProgress", "Checkmate", "Stalemate", "DrawFiftyMove", "DrawInsufficientMaterial", "DrawRepetition"}
	if s >= 0 && int(s) < len(names) {
		return names[s]
	}
	return "Unknown"
}

// statusFor maps a result onto the terminal status.
func statusFor(r Result) Status {
	switch r.Reason {
	case Checkmate:
		return StatusCheckmate
	case Stalemate:
		return StatusStalemate
	case FiftyMoveRule:
		return DrawFiftyMove
	case InsufficientMaterial:
		return DrawInsufficientMaterial
	case ThreefoldRepetition:
		return DrawRepetition
	}
	return InProgress
}

// evaluate decides whether the game has ended, checking for the player to
// move in this order: no legal moves, insufficient material, fifty-move
// rule, threefold repetition.
func evaluate(board *chess.Board, toMove chess.Player, halfMoveClock, occurrences int) *Result {
	var r Result
	switch {
	case IsCheckmate(board, toMove):
		r = Win(toMove.Opponent(), Checkmate)
	case IsStalemate(board, toMove):
		r = Draw(Stalemate)
	case board.InsufficientMaterial():
		r = Draw(InsufficientMaterial)
	case halfMoveClock >= FiftyMoveLimit:
		r = Draw(FiftyMoveRule)
	case occurrences >= RepetitionLimit:
		r = Draw(ThreefoldRepetition)
	default:
		return nil
	}
	return &r
}

// IsCheckmate returns true if the position is checkmate for the player.
func IsCheckmate(board *chess.Board, player chess.Player) bool {
	return IsInCheck(board, player) && !HasLegalMoves(board, player)
}

// IsStalemate returns true if the position is stalemate for the player.
func IsStalemate(board *chess.Board, player chess.Player) bool {
	return !IsInCheck(board, player) && !HasLegalMoves(board, player)
}
