package output

import (
	"github.com/lgbarn/chessrules-go/internal/engine"
)

// Report is the printable state of a game.
type Report struct {
	StateString string       `json:"state"`
	FEN         string       `json:"fen,omitempty"`
	SideToMove  string       `json:"sideToMove"`
	Status      string       `json:"status"`
	Result      string       `json:"result,omitempty"`
	InCheck     bool         `json:"inCheck,omitempty"`
	Occurrences int          `json:"occurrences"` // times this position has been reached
	Moves       []string     `json:"moves,omitempty"`
	LegalMoves  []string     `json:"legalMoves,omitempty"`
	Perft       *PerftReport `json:"perft,omitempty"`
}

// PerftReport holds a move-tree count.
type PerftReport struct {
	Depth  int         `json:"depth"`
	Nodes  uint64      `json:"nodes"`
	Divide []MoveNodes `json:"divide,omitempty"`
}

// MoveNodes is the count below one root move.
type MoveNodes struct {
	Move  string `json:"move"`
	Nodes uint64 `json:"nodes"`
}

// ReportOutput holds multiple reports for array output.
type ReportOutput struct {
	Reports []*Report `json:"reports"`
}

// BuildReport captures the game's current state. Legal moves are listed
// only when withLegal is set.
func BuildReport(game *engine.GameState, withLegal bool) *Report {
	r := &Report{
		StateString: game.StateString(),
		FEN:         game.FEN(),
		SideToMove:  game.CurrentPlayer().String(),
		Status:      game.Status().String(),
		InCheck:     game.InCheck(),
		Occurrences: game.Occurrences(),
	}
	if result := game.Result(); result != nil {
		r.Result = result.String()
	}
	for _, move := range game.History() {
		r.Moves = append(r.Moves, move.String())
	}
	if withLegal && !game.IsGameOver() {
		for _, move := range game.AllLegalMovesFor(game.CurrentPlayer()) {
			r.LegalMoves = append(r.LegalMoves, move.String())
		}
	}
	return r
}

// NewPerftReport orders a divide result by move. counts may be nil when
// only the total is wanted.
func NewPerftReport(depth int, nodes uint64, counts map[string]uint64) *PerftReport {
	p := &PerftReport{Depth: depth, Nodes: nodes}
	for _, move := range engine.SortedMoves(counts) {
		p.Divide = append(p.Divide, MoveNodes{Move: move, Nodes: counts[move]})
	}
	return p
}
