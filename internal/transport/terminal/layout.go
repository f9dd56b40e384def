package terminal

import (
	"github.com/iamasit07/4-in-a-row/minimax/internal/domain"
	"github.com/iamasit07/4-in-a-row/minimax/internal/service/game"
)

const (
	cellWidth   = 4
	boardWidth  = domain.Columns * cellWidth
	boardHeight = domain.Rows + 6 // hover row, board, labels, blank, status, notice, help
)

// Layout maps board coordinates to screen cells. Row 0 of the board is
// drawn at the bottom.
type Layout struct {
	Left int
	Top  int
}

// NewLayout centers the board on a width x height screen.
func NewLayout(width, height int) Layout {
	l := Layout{Left: (width - boardWidth) / 2, Top: (height - boardHeight) / 2}
	if l.Left < 1 {
		l.Left = 1
	}
	if l.Top < 0 {
		l.Top = 0
	}
	return l
}

// ColumnAt returns the board column under screen column x.
func (l Layout) ColumnAt(x int) (int, bool) {
	if x < l.Left || x >= l.Left+boardWidth {
		return 0, false
	}
	return (x - l.Left) / cellWidth, true
}

// CellOrigin returns the top-left screen position of a board cell.
func (l Layout) CellOrigin(row, column int) (int, int) {
	return l.Left + column*cellWidth, l.HoverY() + domain.Rows - row
}

func (l Layout) HoverY() int {
	return l.Top
}

func (l Layout) LabelY() int {
	return l.Top + domain.Rows + 1
}

func (l Layout) StatusY() int {
	return l.Top + domain.Rows + 3
}

// StatusText is the line shown under the board.
func StatusText(snap game.Snapshot) string {
	switch snap.Outcome {
	case domain.PlayerWin:
		return "You win! Press r to play again or q to quit."
	case domain.AIWin:
		return "AI wins! Press r to play again or q to quit."
	case domain.Draw:
		return "Draw! Press r to play again or q to quit."
	}
	if snap.CurrentTurn == domain.AIPiece {
		return "AI is thinking..."
	}
	return "Your turn. Click a column or use ←/→ and Enter."
}
