package domain

import (
	"strings"
	"unicode"

	"github.com/pkg/errors"
)

const (
	emptySymbol  = '.'
	playerSymbol = 'X'
	aiSymbol     = 'O'
)

// ParseMoves replays a sequence of 1-based column digits ("4453") from an
// empty board, alternating pieces starting with first.
func ParseMoves(sequence string, first Piece) (Board, error) {
	game := NewGame(first)
	for i, ch := range sequence {
		if ch < '1' || ch > '0'+Columns {
			return game.Board, errors.Wrapf(ErrInvalidMove, "move %d: %q is not a column", i+1, ch)
		}
		if _, err := game.MakeMove(game.CurrentTurn, int(ch-'1')); err != nil {
			return game.Board, errors.Wrapf(err, "move %d", i+1)
		}
	}
	return game.Board, nil
}

// String renders the board top row first, one line per row.
func (b Board) String() string {
	var sb strings.Builder
	for r := Rows - 1; r >= 0; r-- {
		for c := 0; c < Columns; c++ {
			sb.WriteRune(symbolOf(b[r][c]))
		}
		if r > 0 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// ParseBoard reads the String rendering back. Whitespace is ignored.
func ParseBoard(s string) (Board, error) {
	var b Board
	cells := make([]Piece, 0, Rows*Columns)
	for _, ch := range s {
		if unicode.IsSpace(ch) {
			continue
		}
		p, ok := pieceOf(ch)
		if !ok {
			return b, errors.Wrapf(ErrInvalidBoard, "unexpected symbol %q", ch)
		}
		cells = append(cells, p)
	}
	if len(cells) != Rows*Columns {
		return b, errors.Wrapf(ErrInvalidBoard, "got %d cells, want %d", len(cells), Rows*Columns)
	}

	for i, p := range cells {
		b[Rows-1-i/Columns][i%Columns] = p
	}
	for c := 0; c < Columns; c++ {
		for r := 1; r < Rows; r++ {
			if b[r][c] != Empty && b[r-1][c] == Empty {
				return b, errors.Wrapf(ErrInvalidBoard, "floating piece at row %d column %d", r, c)
			}
		}
	}
	return b, nil
}

func symbolOf(p Piece) rune {
	switch p {
	case PlayerPiece:
		return playerSymbol
	case AIPiece:
		return aiSymbol
	}
	return emptySymbol
}

func pieceOf(ch rune) (Piece, bool) {
	switch ch {
	case emptySymbol:
		return Empty, true
	case playerSymbol:
		return PlayerPiece, true
	case aiSymbol:
		return AIPiece, true
	}
	return Empty, false
}
