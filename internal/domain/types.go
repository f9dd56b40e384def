package domain

// Piece is the content of a single board cell.
type Piece int

const (
	Empty       Piece = 0
	PlayerPiece Piece = 1
	AIPiece     Piece = 2
)

const (
	Rows    = 6
	Columns = 7
	ToWin   = 4

	CenterColumn = Columns / 2
)

// Opponent returns the piece playing against p. Empty has no opponent.
func Opponent(p Piece) Piece {
	switch p {
	case PlayerPiece:
		return AIPiece
	case AIPiece:
		return PlayerPiece
	}
	return Empty
}

func (p Piece) String() string {
	switch p {
	case PlayerPiece:
		return "player"
	case AIPiece:
		return "ai"
	}
	return "empty"
}

// GameOutcome is the state of a game. It is always derived from the board.
type GameOutcome string

const (
	InProgress GameOutcome = "in_progress"
	PlayerWin  GameOutcome = "player_win"
	AIWin      GameOutcome = "ai_win"
	Draw       GameOutcome = "draw"
)

// IsFinished reports whether no further moves can be played.
func (o GameOutcome) IsFinished() bool {
	return o != InProgress
}

// Move is a column drop resolved to the row it landed on.
type Move struct {
	Column int   `json:"column"`
	Row    int   `json:"row"`
	Piece  Piece `json:"piece"`
}

// Error is a sentinel error kind; callers match it with errors.Is.
type Error string

func (e Error) Error() string {
	return string(e)
}

const (
	ErrInvalidMove  Error = "invalid move"
	ErrNoLegalMove  Error = "no legal move"
	ErrInvalidDepth Error = "search depth must be at least 1"
	ErrGameOver     Error = "game is over"
	ErrNotYourTurn  Error = "not your turn"
	ErrInvalidBoard Error = "invalid board"
)
