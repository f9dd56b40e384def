package bot

import (
	"math/rand"

	"github.com/iamasit07/4-in-a-row/minimax/internal/domain"
)

const greedyAgentName = "Greedy Agent"

// GreedyPolicy takes an immediate win, otherwise blocks the opponent's
// immediate win, otherwise plays at random.
type GreedyPolicy struct {
	rng *rand.Rand
}

func NewGreedyPolicy(rng *rand.Rand) *GreedyPolicy {
	return &GreedyPolicy{rng: rng}
}

func (p *GreedyPolicy) Name() string {
	return greedyAgentName
}

func (p *GreedyPolicy) ChooseColumn(board domain.Board, piece domain.Piece) (int, error) {
	// win-check runs over every column before any block-check
	if col, ok := findWinningMove(board, piece); ok {
		return col, nil
	}
	if col, ok := findWinningMove(board, domain.Opponent(piece)); ok {
		return col, nil
	}
	return randomColumn(&board, p.rng)
}

// findWinningMove returns the lowest column where piece wins at once.
func findWinningMove(board domain.Board, piece domain.Piece) (int, bool) {
	for _, col := range board.LegalColumns() {
		testBoard, _, err := domain.ApplyMove(board, col, piece)
		if err != nil {
			continue
		}
		if domain.HasFourInRow(&testBoard, piece) {
			return col, true
		}
	}
	return NoColumn, false
}
