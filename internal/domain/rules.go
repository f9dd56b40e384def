package domain

// Orientation names the direction of a window of ToWin cells.
type Orientation string

const (
	Horizontal       Orientation = "horizontal"
	Vertical         Orientation = "vertical"
	DiagonalPositive Orientation = "diagonal_positive"
	DiagonalNegative Orientation = "diagonal_negative"
)

type Cell struct {
	Row    int
	Column int
}

// Line is one window of ToWin consecutive cells.
type Line struct {
	Orientation Orientation
	Cells       [ToWin]Cell
}

// windows holds every line on the board: 24 horizontal, 21 vertical and
// 12 of each diagonal, in that order.
var windows = buildWindows()

func buildWindows() []Line {
	lines := make([]Line, 0, 69)

	for r := 0; r < Rows; r++ {
		for c := 0; c <= Columns-ToWin; c++ {
			lines = append(lines, line(Horizontal, r, c, 0, 1))
		}
	}
	for c := 0; c < Columns; c++ {
		for r := 0; r <= Rows-ToWin; r++ {
			lines = append(lines, line(Vertical, r, c, 1, 0))
		}
	}
	for r := 0; r <= Rows-ToWin; r++ {
		for c := 0; c <= Columns-ToWin; c++ {
			lines = append(lines, line(DiagonalPositive, r, c, 1, 1))
		}
	}
	// negative slope windows start at (r+3, c) and step down-right
	for r := 0; r <= Rows-ToWin; r++ {
		for c := 0; c <= Columns-ToWin; c++ {
			lines = append(lines, line(DiagonalNegative, r+ToWin-1, c, -1, 1))
		}
	}
	return lines
}

func line(o Orientation, row, col, deltaRow, deltaCol int) Line {
	l := Line{Orientation: o}
	for i := 0; i < ToWin; i++ {
		l.Cells[i] = Cell{Row: row + i*deltaRow, Column: col + i*deltaCol}
	}
	return l
}

// Windows returns every length-4 line on the board. The slice is shared and
// must not be modified.
func Windows() []Line {
	return windows
}

// Pieces reads the contents of a window from the board.
func (b *Board) Pieces(l Line) [ToWin]Piece {
	var w [ToWin]Piece
	for i, cell := range l.Cells {
		w[i] = b[cell.Row][cell.Column]
	}
	return w
}

// WinningLine returns the first window fully owned by piece.
func WinningLine(b *Board, piece Piece) (Line, bool) {
	if piece == Empty {
		return Line{}, false
	}
	for _, l := range windows {
		if ownsLine(b, l, piece) {
			return l, true
		}
	}
	return Line{}, false
}

func ownsLine(b *Board, l Line, piece Piece) bool {
	for _, cell := range l.Cells {
		if b[cell.Row][cell.Column] != piece {
			return false
		}
	}
	return true
}

func HasFourInRow(b *Board, piece Piece) bool {
	_, ok := WinningLine(b, piece)
	return ok
}

// IsTerminal checks both pieces because the board handed in may already be
// decided, regardless of who moved last.
func IsTerminal(b *Board) bool {
	return HasFourInRow(b, AIPiece) || HasFourInRow(b, PlayerPiece) || b.IsFull()
}

func OutcomeOf(b *Board) GameOutcome {
	switch {
	case HasFourInRow(b, AIPiece):
		return AIWin
	case HasFourInRow(b, PlayerPiece):
		return PlayerWin
	case b.IsFull():
		return Draw
	}
	return InProgress
}
