package bot

import (
	"math/rand"

	"github.com/iamasit07/4-in-a-row/minimax/internal/domain"
)

const randomAgentName = "Random Agent"

// RandomPolicy plays a uniformly random legal column.
type RandomPolicy struct {
	rng *rand.Rand
}

func NewRandomPolicy(rng *rand.Rand) *RandomPolicy {
	return &RandomPolicy{rng: rng}
}

func (p *RandomPolicy) Name() string {
	return randomAgentName
}

func (p *RandomPolicy) ChooseColumn(board domain.Board, _ domain.Piece) (int, error) {
	return randomColumn(&board, p.rng)
}
