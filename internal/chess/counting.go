package chess

// Counting is a material tally by colour and piece kind.
type Counting struct {
	white [King + 1]int
	black [King + 1]int
	total int
}

// Increment adds one piece to the tally.
func (c *Counting) Increment(color Player, kind PieceKind) {
	if kind <= NoKind || kind > King {
		return
	}
	switch color {
	case White:
		c.white[kind]++
	case Black:
		c.black[kind]++
	default:
		return
	}
	c.total++
}

// White returns the number of white pieces of the kind.
func (c *Counting) White(kind PieceKind) int {
	if kind <= NoKind || kind > King {
		return 0
	}
	return c.white[kind]
}

// Black returns the number of black pieces of the kind.
func (c *Counting) Black(kind PieceKind) int {
	if kind <= NoKind || kind > King {
		return 0
	}
	return c.black[kind]
}

// Of returns the count for either side.
func (c *Counting) Of(color Player, kind PieceKind) int {
	if color == White {
		return c.White(kind)
	}
	return c.Black(kind)
}

// Total returns the number of pieces on the board, kings included.
func (c *Counting) Total() int {
	return c.total
}

// CountPieces tallies every piece on the board.
func (b *Board) CountPieces() Counting {
	var counting Counting
	for _, pos := range b.PiecePositions() {
		piece := b.At(pos)
		counting.Increment(piece.Color, piece.Kind)
	}
	return counting
}

// InsufficientMaterial returns true if neither side can force mate:
//   - K vs K
//   - K+B vs K
//   - K+N vs K
//   - K+B vs K+B with both bishops on the same square colour
func (b *Board) InsufficientMaterial() bool {
	counting := b.CountPieces()

	switch counting.Total() {
	case 2:
		return true
	case 3:
		return counting.White(Bishop) == 1 || counting.Black(Bishop) == 1 ||
			counting.White(Knight) == 1 || counting.Black(Knight) == 1
	case 4:
		return b.isKingBishopVKingBishop(&counting)
	}
	return false
}

// isKingBishopVKingBishop checks for one bishop each on same-coloured squares.
func (b *Board) isKingBishopVKingBishop(counting *Counting) bool {
	if counting.White(Bishop) != 1 || counting.Black(Bishop) != 1 {
		return false
	}
	whiteBishop, ok := b.FindPiece(White, Bishop)
	if !ok {
		return false
	}
	blackBishop, ok := b.FindPiece(Black, Bishop)
	if !ok {
		return false
	}
	return whiteBishop.SquareColor() == blackBishop.SquareColor()
}
