package bot

import (
	"fmt"

	"github.com/iamasit07/4-in-a-row/minimax/internal/domain"
)

// MinimaxPolicy plays whatever the engine chooses at a fixed depth.
type MinimaxPolicy struct {
	engine *Engine
	depth  int
	name   string
}

func NewMinimaxPolicy(engine *Engine, depth int) *MinimaxPolicy {
	return &MinimaxPolicy{
		engine: engine,
		depth:  depth,
		name:   minimaxAgentName(depth),
	}
}

// NewPositionalPolicy is the shallow benchmark opponent, normally searching
// PositionalDepth plies. Playing the player piece, it searches as the
// minimizing side.
func NewPositionalPolicy(engine *Engine, depth int) *MinimaxPolicy {
	p := NewMinimaxPolicy(engine, depth)
	p.name = positionalAgentName(depth)
	return p
}

func (p *MinimaxPolicy) Name() string {
	return p.name
}

func (p *MinimaxPolicy) Depth() int {
	return p.depth
}

func (p *MinimaxPolicy) ChooseColumn(board domain.Board, piece domain.Piece) (int, error) {
	return p.engine.ChooseMove(board, p.depth, piece)
}

func minimaxAgentName(depth int) string {
	return fmt.Sprintf("Minimax Agent (Depth %d)", depth)
}

func positionalAgentName(depth int) string {
	return fmt.Sprintf("Positional Agent (Depth %d)", depth)
}
