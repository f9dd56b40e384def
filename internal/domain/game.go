package domain

import "github.com/pkg/errors"

// Game is the authoritative state a driver holds for one game. The outcome
// is never cached; it is read off the board.
type Game struct {
	Board       Board
	CurrentTurn Piece
	Moves       []Move
}

func NewGame(first Piece) *Game {
	if first != AIPiece {
		first = PlayerPiece
	}
	return &Game{
		Board:       NewBoard(),
		CurrentTurn: first,
		Moves:       make([]Move, 0, Rows*Columns),
	}
}

func (g *Game) MakeMove(piece Piece, column int) (Move, error) {
	if g.Outcome().IsFinished() {
		return Move{}, ErrGameOver
	}
	if piece != g.CurrentTurn {
		return Move{}, errors.Wrapf(ErrNotYourTurn, "%s moved on %s's turn", piece, g.CurrentTurn)
	}

	row, err := g.Board.NextOpenRow(column)
	if err != nil {
		return Move{}, err
	}
	g.Board.Drop(row, column, piece)

	move := Move{Column: column, Row: row, Piece: piece}
	g.Moves = append(g.Moves, move)

	if !g.Outcome().IsFinished() {
		g.CurrentTurn = Opponent(piece)
	}
	return move, nil
}

func (g *Game) Outcome() GameOutcome {
	return OutcomeOf(&g.Board)
}

func (g *Game) MoveCount() int {
	return len(g.Moves)
}

// LastMove returns the most recent move, if any.
func (g *Game) LastMove() (Move, bool) {
	if len(g.Moves) == 0 {
		return Move{}, false
	}
	return g.Moves[len(g.Moves)-1], true
}
