package bot

import (
	"github.com/iamasit07/4-in-a-row/minimax/internal/domain"
)

const (
	// Window weights, fixed by hand.
	SCORE_FOUR        = 100
	SCORE_THREE_OPEN  = 5
	SCORE_TWO_OPEN    = 2
	SCORE_BLOCK_THREE = -4
	SCORE_CENTER      = 3
)

// ScoreWindow scores one window of four cells from piece's point of view.
func ScoreWindow(window [domain.ToWin]domain.Piece, piece domain.Piece) int {
	opponent := domain.Opponent(piece)
	own, opp, empty := 0, 0, 0
	for _, cell := range window {
		switch cell {
		case piece:
			own++
		case opponent:
			opp++
		case domain.Empty:
			empty++
		}
	}

	score := 0
	switch {
	case own == 4:
		score += SCORE_FOUR
	case own == 3 && empty == 1:
		score += SCORE_THREE_OPEN
	case own == 2 && empty == 2:
		score += SCORE_TWO_OPEN
	}

	if opp == 3 && empty == 1 {
		score += SCORE_BLOCK_THREE
	}
	return score
}

// ScorePosition is the static evaluation used at the search horizon: a
// center column bonus plus ScoreWindow over every window on the board.
func ScorePosition(board *domain.Board, piece domain.Piece) int {
	score := 0

	for row := 0; row < domain.Rows; row++ {
		if board[row][domain.CenterColumn] == piece {
			score += SCORE_CENTER
		}
	}

	for _, l := range domain.Windows() {
		score += ScoreWindow(board.Pieces(l), piece)
	}
	return score
}
