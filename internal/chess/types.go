// Package chess provides core chess types and operations.
package chess

// Player identifies a side. None is used where no side applies, such as
// the winner of a drawn game.
type Player int

const (
	None Player = iota
	White
	Black
)

// String returns the string representation of a player.
func (p Player) String() string {
	switch p {
	case White:
		return "White"
	case Black:
		return "Black"
	default:
		return "None"
	}
}

// Opponent returns the other side. None has no opponent.
func (p Player) Opponent() Player {
	switch p {
	case White:
		return Black
	case Black:
		return White
	default:
		return None
	}
}

// PieceKind represents a chess piece type.
type PieceKind int

const (
	NoKind PieceKind = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// String returns the string representation of a piece kind.
func (k PieceKind) String() string {
	names := []string{"None", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if k >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the single lowercase letter for a piece kind ('p', 'n', ...).
func (k PieceKind) Letter() byte {
	letters := []byte{' ', 'p', 'n', 'b', 'r', 'q', 'k'}
	if k >= 0 && int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// KindFromLetter converts a piece letter of either case to a kind.
// Unknown letters return NoKind.
func KindFromLetter(c byte) PieceKind {
	switch c {
	case 'P', 'p':
		return Pawn
	case 'N', 'n':
		return Knight
	case 'B', 'b':
		return Bishop
	case 'R', 'r':
		return Rook
	case 'Q', 'q':
		return Queen
	case 'K', 'k':
		return King
	default:
		return NoKind
	}
}

// Piece is a piece as it sits on the board. The zero Piece means an
// empty square.
type Piece struct {
	Kind     PieceKind
	Color    Player
	HasMoved bool
}

// NewPiece creates an unmoved piece.
func NewPiece(color Player, kind PieceKind) Piece {
	return Piece{Kind: kind, Color: color}
}

// IsNone reports whether p is the empty-square value.
func (p Piece) IsNone() bool {
	return p.Kind == NoKind
}

// Letter returns the FEN letter: uppercase for White, lowercase for Black.
func (p Piece) Letter() byte {
	c := p.Kind.Letter()
	if p.Color == White && c >= 'a' && c <= 'z' {
		c -= 'a' - 'A'
	}
	return c
}

// String returns e.g. "White Knight".
func (p Piece) String() string {
	if p.IsNone() {
		return "Empty"
	}
	return p.Color.String() + " " + p.Kind.String()
}
