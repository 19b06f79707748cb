package engine

import (
	"github.com/lgbarn/chessrules-go/internal/chess"
)

// MoveClass categorizes the five kinds of move.
type MoveClass int

const (
	Normal MoveClass = iota
	DoublePawnPush
	EnPassantCapture
	KingsideCastle
	QueensideCastle
	Promotion
)

// String returns the string representation of a move class.
func (c MoveClass) String() string {
	names := []string{"Normal", "DoublePawn", "EnPassant", "CastleKS", "CastleQS", "PawnPromotion"}
	if c >= 0 && int(c) < len(names) {
		return names[c]
	}
	return "Unknown"
}

// Move is a move of one of five closed kinds: NormalMove, DoublePawn,
// EnPassant, Castle and PawnPromotion. Moves are comparable values.
type Move interface {
	Class() MoveClass
	From() chess.Position
	To() chess.Position

	// Execute applies the move to the board and reports whether a piece
	// was captured.
	Execute(board *chess.Board) bool

	// IsLegal reports whether the move leaves the mover's king safe. The
	// board is not modified.
	IsLegal(board *chess.Board) bool

	// String returns coordinate notation, e.g. "e2e4" or "e7e8q".
	String() string

	sealed()
}

// isLegal executes m on a copy of the board and checks the mover's king.
func isLegal(m Move, board *chess.Board) bool {
	piece := board.At(m.From())
	if piece.IsNone() {
		return false
	}
	trial := board.Copy()
	m.Execute(trial)
	return !IsInCheck(trial, piece.Color)
}

// coordinate renders from/to squares with an optional promotion letter.
func coordinate(from, to chess.Position, promotion chess.PieceKind) string {
	s := from.String() + to.String()
	if promotion != chess.NoKind {
		s += string(promotion.Letter())
	}
	return s
}

// NormalMove relocates a piece, capturing whatever sits on the destination.
type NormalMove struct {
	from, to chess.Position
}

// NewNormalMove creates a plain move.
func NewNormalMove(from, to chess.Position) NormalMove {
	return NormalMove{from: from, to: to}
}

func (m NormalMove) Class() MoveClass { return Normal }
func (m NormalMove) From() chess.Position { return m.from }
func (m NormalMove) To() chess.Position { return m.to }
func (m NormalMove) String() string { return coordinate(m.from, m.to, chess.NoKind) }
func (m NormalMove) IsLegal(b *chess.Board) bool { return isLegal(m, b) }
func (NormalMove) sealed() {}

// Execute moves the piece and marks it as moved.
func (m NormalMove) Execute(board *chess.Board) bool {
	piece := board.Remove(m.from)
	captured := !board.IsEmpty(m.to)
	piece.HasMoved = true
	board.Set(m.to, piece)
	return captured
}

// DoublePawn is a two-square pawn advance from the start rank.
type DoublePawn struct {
	from, to, skipped chess.Position
}

// NewDoublePawn creates a double step; the skipped square is derived here.
func NewDoublePawn(from, to chess.Position) DoublePawn {
	return DoublePawn{
		from:    from,
		to:      to,
		skipped: chess.Position{Row: (from.Row + to.Row) / 2, Column: from.Column},
	}
}

func (m DoublePawn) Class() MoveClass { return DoublePawnPush }
func (m DoublePawn) From() chess.Position { return m.from }
func (m DoublePawn) To() chess.Position { return m.to }
func (m DoublePawn) String() string { return coordinate(m.from, m.to, chess.NoKind) }
func (m DoublePawn) IsLegal(b *chess.Board) bool { return isLegal(m, b) }
func (DoublePawn) sealed() {}

// Skipped returns the square the pawn passes over.
func (m DoublePawn) Skipped() chess.Position { return m.skipped }

// Execute records the skipped square for the mover, then moves the pawn.
func (m DoublePawn) Execute(board *chess.Board) bool {
	player := board.At(m.from).Color
	board.SetPawnSkipPosition(player, m.skipped)
	return NewNormalMove(m.from, m.to).Execute(board)
}

// EnPassant captures a pawn that has just double-stepped past the mover.
type EnPassant struct {
	from, to, capture chess.Position
}

// NewEnPassant creates an en passant capture. The captured pawn sits on
// the origin's row and the destination's column.
func NewEnPassant(from, to chess.Position) EnPassant {
	return EnPassant{
		from:    from,
		to:      to,
		capture: chess.Position{Row: from.Row, Column: to.Column},
	}
}

func (m EnPassant) Class() MoveClass { return EnPassantCapture }
func (m EnPassant) From() chess.Position { return m.from }
func (m EnPassant) To() chess.Position { return m.to }
func (m EnPassant) String() string { return coordinate(m.from, m.to, chess.NoKind) }
func (m EnPassant) IsLegal(b *chess.Board) bool { return isLegal(m, b) }
func (EnPassant) sealed() {}

// CaptureSquare returns the square of the pawn being taken.
func (m EnPassant) CaptureSquare() chess.Position { return m.capture }

// Execute moves the pawn and removes the passed pawn.
func (m EnPassant) Execute(board *chess.Board) bool {
	NewNormalMove(m.from, m.to).Execute(board)
	board.Remove(m.capture)
	return true
}

// PawnPromotion moves a pawn to the last rank and replaces it.
type PawnPromotion struct {
	from, to chess.Position
	kind     chess.PieceKind
}

// NewPawnPromotion creates a promotion. NoKind promotes to a queen.
func NewPawnPromotion(from, to chess.Position, kind chess.PieceKind) PawnPromotion {
	if kind == chess.NoKind {
		kind = chess.Queen
	}
	return PawnPromotion{from: from, to: to, kind: kind}
}

func (m PawnPromotion) Class() MoveClass { return Promotion }
func (m PawnPromotion) From() chess.Position { return m.from }
func (m PawnPromotion) To() chess.Position { return m.to }
func (m PawnPromotion) String() string { return coordinate(m.from, m.to, m.Kind()) }
func (m PawnPromotion) IsLegal(b *chess.Board) bool { return isLegal(m, b) }
func (PawnPromotion) sealed() {}

// Kind returns the piece the pawn becomes.
func (m PawnPromotion) Kind() chess.PieceKind {
	if m.kind == chess.NoKind {
		return chess.Queen
	}
	return m.kind
}

// Execute removes the pawn and places the new piece, already marked moved.
func (m PawnPromotion) Execute(board *chess.Board) bool {
	pawn := board.Remove(m.from)
	captured := !board.IsEmpty(m.to)
	board.Set(m.to, chess.Piece{Kind: m.Kind(), Color: pawn.Color, HasMoved: true})
	return captured
}

// validPromotion reports whether the kind may be promoted to.
func validPromotion(kind chess.PieceKind) bool {
	switch kind {
	case chess.Knight, chess.Bishop, chess.Rook, chess.Queen:
		return true
	}
	return false
}
