package chess

// Board holds the piece grid and the per-player pawn-skip squares.
// Pieces are stored by value, so copying a Board copies every piece.
type Board struct {
	// squares[row][column]; the zero Piece marks an empty square.
	squares [BoardSize][BoardSize]Piece

	// The square a player's pawn passed over on its last double step.
	// Only valid for the ply that follows the double step.
	whiteSkip, blackSkip *Position
}

// NewBoard creates an empty board.
func NewBoard() *Board {
	return &Board{}
}

// InitialBoard creates a board with the standard starting position.
func InitialBoard() *Board {
	b := NewBoard()
	b.SetupInitialPosition()
	return b
}

// SetupInitialPosition clears the board and places the starting pieces.
func (b *Board) SetupInitialPosition() {
	*b = Board{}

	backRank := []PieceKind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for col := 0; col < BoardSize; col++ {
		b.squares[0][col] = NewPiece(Black, backRank[col])
		b.squares[1][col] = NewPiece(Black, Pawn)
		b.squares[6][col] = NewPiece(White, Pawn)
		b.squares[7][col] = NewPiece(White, backRank[col])
	}
}

// At returns the piece on the square, or the zero Piece if it is empty
// or off the board.
func (b *Board) At(p Position) Piece {
	if !IsInside(p) {
		return Piece{}
	}
	return b.squares[p.Row][p.Column]
}

// Set places a piece on the square. Off-board squares are ignored.
func (b *Board) Set(p Position, piece Piece) {
	if IsInside(p) {
		b.squares[p.Row][p.Column] = piece
	}
}

// Remove empties the square and returns what was on it.
func (b *Board) Remove(p Position) Piece {
	piece := b.At(p)
	b.Set(p, Piece{})
	return piece
}

// IsEmpty reports whether an on-board square has no piece.
func (b *Board) IsEmpty(p Position) bool {
	return b.At(p).IsNone()
}

// PiecePositions returns every occupied square, top row first.
func (b *Board) PiecePositions() []Position {
	positions := make([]Position, 0, 32)
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if !b.squares[row][col].IsNone() {
				positions = append(positions, Position{Row: row, Column: col})
			}
		}
	}
	return positions
}

// PiecePositionsFor returns the squares occupied by the player's pieces.
func (b *Board) PiecePositionsFor(player Player) []Position {
	positions := make([]Position, 0, 16)
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			piece := b.squares[row][col]
			if !piece.IsNone() && piece.Color == player {
				positions = append(positions, Position{Row: row, Column: col})
			}
		}
	}
	return positions
}

// FindPiece returns the first square, top row first, holding a piece of
// the given colour and kind.
func (b *Board) FindPiece(player Player, kind PieceKind) (Position, bool) {
	for _, pos := range b.PiecePositionsFor(player) {
		if b.At(pos).Kind == kind {
			return pos, true
		}
	}
	return Position{}, false
}

// Copy returns an independent board with the same pieces, moved flags
// and pawn-skip squares.
func (b *Board) Copy() *Board {
	newBoard := &Board{squares: b.squares}
	if b.whiteSkip != nil {
		skip := *b.whiteSkip
		newBoard.whiteSkip = &skip
	}
	if b.blackSkip != nil {
		skip := *b.blackSkip
		newBoard.blackSkip = &skip
	}
	return newBoard
}

// PawnSkipPosition returns the square the player's pawn skipped on its
// last double step, if any.
func (b *Board) PawnSkipPosition(player Player) (Position, bool) {
	var skip *Position
	switch player {
	case White:
		skip = b.whiteSkip
	case Black:
		skip = b.blackSkip
	}
	if skip == nil {
		return Position{}, false
	}
	return *skip, true
}

// SetPawnSkipPosition records the square skipped by the player's pawn.
func (b *Board) SetPawnSkipPosition(player Player, p Position) {
	switch player {
	case White:
		b.whiteSkip = &p
	case Black:
		b.blackSkip = &p
	}
}

// ClearPawnSkipPosition forgets the player's pawn-skip square.
func (b *Board) ClearPawnSkipPosition(player Player) {
	switch player {
	case White:
		b.whiteSkip = nil
	case Black:
		b.blackSkip = nil
	}
}

// homeRow returns the back-rank row for the player.
func homeRow(player Player) int {
	if player == White {
		return BoardSize - 1
	}
	return 0
}

// isUnmovedKingAndRook checks both squares hold the player's unmoved king
// and rook.
func (b *Board) isUnmovedKingAndRook(player Player, kingPos, rookPos Position) bool {
	king := b.At(kingPos)
	rook := b.At(rookPos)
	return king.Kind == King && king.Color == player && !king.HasMoved &&
		rook.Kind == Rook && rook.Color == player && !rook.HasMoved
}

// CastleRightKS reports whether the player keeps king-side castling
// rights: king and h-file rook both unmoved on their starting squares.
func (b *Board) CastleRightKS(player Player) bool {
	row := homeRow(player)
	return b.isUnmovedKingAndRook(player, Position{Row: row, Column: 4}, Position{Row: row, Column: 7})
}

// CastleRightQS reports whether the player keeps queen-side castling rights.
func (b *Board) CastleRightQS(player Player) bool {
	row := homeRow(player)
	return b.isUnmovedKingAndRook(player, Position{Row: row, Column: 4}, Position{Row: row, Column: 0})
}
