package chess

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// BoardSize is the number of rows and columns on the board.
const BoardSize = 8

// Direction is a step across the board.
type Direction struct {
	RowDelta    int
	ColumnDelta int
}

// Compass directions. Row 0 is Black's back rank, so North decreases the row.
var (
	North     = Direction{RowDelta: -1, ColumnDelta: 0}
	South     = Direction{RowDelta: 1, ColumnDelta: 0}
	East      = Direction{RowDelta: 0, ColumnDelta: 1}
	West      = Direction{RowDelta: 0, ColumnDelta: -1}
	NorthEast = North.Add(East)
	NorthWest = North.Add(West)
	SouthEast = South.Add(East)
	SouthWest = South.Add(West)
)

// Add returns the sum of two directions.
func (d Direction) Add(o Direction) Direction {
	return Direction{RowDelta: d.RowDelta + o.RowDelta, ColumnDelta: d.ColumnDelta + o.ColumnDelta}
}

// Scale multiplies both deltas by n.
func (d Direction) Scale(n int) Direction {
	return Direction{RowDelta: d.RowDelta * n, ColumnDelta: d.ColumnDelta * n}
}

// Position is a square on the board. Row 0 is rank 8 and column 0 is file a.
type Position struct {
	Row    int
	Column int
}

// NewPosition validates the coordinates and returns the square.
func NewPosition(row, column int) (Position, error) {
	p := Position{Row: row, Column: column}
	if !IsInside(p) {
		return Position{}, fmt.Errorf("row %d column %d: %w", row, column, errors.ErrInvalidPosition)
	}
	return p, nil
}

// MustPosition is like NewPosition but panics on out-of-range input.
// It is intended for fixed squares in tables and tests.
func MustPosition(row, column int) Position {
	p, err := NewPosition(row, column)
	if err != nil {
		panic(err)
	}
	return p
}

// ParseSquare parses an algebraic square such as "e4".
func ParseSquare(s string) (Position, error) {
	if len(s) != 2 {
		return Position{}, fmt.Errorf("square %q: %w", s, errors.ErrInvalidPosition)
	}
	file, rank := s[0], s[1]
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return Position{}, fmt.Errorf("square %q: %w", s, errors.ErrInvalidPosition)
	}
	return Position{Row: BoardSize - int(rank-'0'), Column: int(file - 'a')}, nil
}

// Sq is ParseSquare for literal squares; it panics on bad input.
func Sq(s string) Position {
	p, err := ParseSquare(s)
	if err != nil {
		panic(err)
	}
	return p
}

// IsInside reports whether the position lies on the 8x8 board.
func IsInside(p Position) bool {
	return p.Row >= 0 && p.Row < BoardSize && p.Column >= 0 && p.Column < BoardSize
}

// Add steps the position by d. The result may be off the board.
func (p Position) Add(d Direction) Position {
	return Position{Row: p.Row + d.RowDelta, Column: p.Column + d.ColumnDelta}
}

// SquareColor returns 0 for light squares and 1 for dark squares.
func (p Position) SquareColor() int {
	return (p.Row + p.Column) % 2
}

// File returns the file letter 'a'-'h'.
func (p Position) File() byte {
	return byte('a' + p.Column)
}

// Rank returns the rank digit '1'-'8'.
func (p Position) Rank() byte {
	return byte('0' + BoardSize - p.Row)
}

// String returns the algebraic name of the square.
func (p Position) String() string {
	if !IsInside(p) {
		return fmt.Sprintf("(%d,%d)", p.Row, p.Column)
	}
	return string([]byte{p.File(), p.Rank()})
}
