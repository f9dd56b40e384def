package domain

import "github.com/pkg/errors"

// Board is the 6x7 grid. Row 0 is the bottom row, so a column's pieces
// always occupy rows 0..n-1 with no gaps.
type Board [Rows][Columns]Piece

func NewBoard() Board {
	return Board{}
}

func (b *Board) IsValidColumn(column int) bool {
	if column < 0 || column >= Columns {
		return false
	}
	// the top row being free means at least one slot is left
	return b[Rows-1][column] == Empty
}

// NextOpenRow returns the lowest empty row of column.
func (b *Board) NextOpenRow(column int) (int, error) {
	if column < 0 || column >= Columns {
		return -1, errors.Wrapf(ErrInvalidMove, "column %d out of range", column)
	}
	for row := 0; row < Rows; row++ {
		if b[row][column] == Empty {
			return row, nil
		}
	}
	return -1, errors.Wrapf(ErrInvalidMove, "column %d is full", column)
}

// Drop writes piece into the cell unconditionally. Callers resolve the row
// with NextOpenRow first.
func (b *Board) Drop(row, column int, piece Piece) {
	b[row][column] = piece
}

// Clear undoes a Drop.
func (b *Board) Clear(row, column int) {
	b[row][column] = Empty
}

func (b *Board) LegalColumns() []int {
	columns := make([]int, 0, Columns)
	for col := 0; col < Columns; col++ {
		if b.IsValidColumn(col) {
			columns = append(columns, col)
		}
	}
	return columns
}

func (b *Board) IsFull() bool {
	for c := 0; c < Columns; c++ {
		if b[Rows-1][c] == Empty {
			return false
		}
	}
	return true
}

// Count returns how many cells hold piece.
func (b *Board) Count(piece Piece) int {
	n := 0
	for r := 0; r < Rows; r++ {
		for c := 0; c < Columns; c++ {
			if b[r][c] == piece {
				n++
			}
		}
	}
	return n
}

// ApplyMove drops piece into column on a copy of board and returns the copy
// together with the row the piece landed on.
func ApplyMove(board Board, column int, piece Piece) (Board, int, error) {
	row, err := board.NextOpenRow(column)
	if err != nil {
		return board, -1, err
	}
	board.Drop(row, column, piece)
	return board, row, nil
}
