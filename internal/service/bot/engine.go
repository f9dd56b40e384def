package bot

import (
	"math"
	"math/rand"

	"github.com/iamasit07/4-in-a-row/minimax/internal/domain"
	"github.com/pkg/errors"
)

const (
	MINIMAX_WIN  int64 = 100000000000000
	MINIMAX_LOSS int64 = -10000000000000
	MINIMAX_DRAW int64 = 0

	NegInf int64 = math.MinInt64
	PosInf int64 = math.MaxInt64

	DefaultDepth    = 4
	PositionalDepth = 2

	// NoColumn marks a result produced at a leaf.
	NoColumn = -1
)

// Result is the outcome of one Search call.
type Result struct {
	Column  int
	Score   int64
	Nodes   int
	Cutoffs int
}

func (r Result) HasColumn() bool {
	return r.Column != NoColumn
}

// TieBreaker picks the column a node starts from before any child is
// searched. It is only replaced by a strictly better child.
type TieBreaker interface {
	Pick(columns []int) int
}

// RandomTieBreaker picks uniformly with its own generator.
type RandomTieBreaker struct {
	rng *rand.Rand
}

func NewRandomTieBreaker(rng *rand.Rand) *RandomTieBreaker {
	return &RandomTieBreaker{rng: rng}
}

func (t *RandomTieBreaker) Pick(columns []int) int {
	return columns[t.rng.Intn(len(columns))]
}

// FirstColumnTieBreaker always starts from the lowest legal column.
type FirstColumnTieBreaker struct{}

func (FirstColumnTieBreaker) Pick(columns []int) int {
	return columns[0]
}

// Engine runs minimax with alpha-beta pruning. It keeps no state between
// calls apart from its tie breaker, which is not safe for concurrent use.
type Engine struct {
	TieBreaker     TieBreaker
	DisablePruning bool
}

func NewEngine(tieBreaker TieBreaker) *Engine {
	if tieBreaker == nil {
		tieBreaker = FirstColumnTieBreaker{}
	}
	return &Engine{TieBreaker: tieBreaker}
}

// Search evaluates board to the given depth. The board is copied; the
// caller's value is never touched.
func (e *Engine) Search(board domain.Board, depth int, alpha, beta int64, maximizing bool) Result {
	var res Result
	res.Column, res.Score = e.minimax(&board, depth, alpha, beta, maximizing, &res)
	return res
}

// ChooseMove returns the column the engine plays for piece from board.
func (e *Engine) ChooseMove(board domain.Board, depth int, piece domain.Piece) (int, error) {
	if depth < 1 {
		return NoColumn, errors.Wrapf(domain.ErrInvalidDepth, "got %d", depth)
	}
	res := e.Search(board, depth, NegInf, PosInf, piece == domain.AIPiece)
	if !res.HasColumn() {
		return NoColumn, errors.Wrapf(domain.ErrNoLegalMove, "board is already %s", domain.OutcomeOf(&board))
	}
	return res.Column, nil
}

// minimax applies and undoes moves on the single board it is given.
func (e *Engine) minimax(board *domain.Board, depth int, alpha, beta int64, maximizing bool, res *Result) (int, int64) {
	res.Nodes++

	validColumns := board.LegalColumns()
	aiWon := domain.HasFourInRow(board, domain.AIPiece)
	playerWon := !aiWon && domain.HasFourInRow(board, domain.PlayerPiece)
	terminal := aiWon || playerWon || len(validColumns) == 0

	if depth == 0 || terminal {
		switch {
		case aiWon:
			return NoColumn, MINIMAX_WIN
		case playerWon:
			return NoColumn, MINIMAX_LOSS
		case terminal:
			return NoColumn, MINIMAX_DRAW
		}
		return NoColumn, int64(ScorePosition(board, domain.AIPiece))
	}

	piece := domain.PlayerPiece
	value := PosInf
	if maximizing {
		piece = domain.AIPiece
		value = NegInf
	}
	column := e.TieBreaker.Pick(validColumns)

	for _, col := range validColumns {
		row, _ := board.NextOpenRow(col)
		board.Drop(row, col, piece)
		_, score := e.minimax(board, depth-1, alpha, beta, !maximizing, res)
		board.Clear(row, col)

		if maximizing {
			if score > value {
				value = score
				column = col
			}
			alpha = max(alpha, value)
		} else {
			if score < value {
				value = score
				column = col
			}
			beta = min(beta, value)
		}

		if alpha >= beta && !e.DisablePruning {
			res.Cutoffs++
			break
		}
	}
	return column, value
}
