package bot

import (
	"math/rand"
	"testing"

	"github.com/iamasit07/4-in-a-row/minimax/internal/domain"
)

var (
	O = domain.AIPiece
	X = domain.PlayerPiece
	E = domain.Empty
)

func TestScoreWindowExamples(t *testing.T) {
	tests := []struct {
		window [4]domain.Piece
		want   int
	}{
		{[4]domain.Piece{O, O, O, O}, 100},
		{[4]domain.Piece{O, O, O, E}, 5},
		{[4]domain.Piece{E, O, O, O}, 5},
		{[4]domain.Piece{O, E, O, E}, 2},
		{[4]domain.Piece{X, X, X, E}, -4},
		{[4]domain.Piece{X, E, X, X}, -4},
		{[4]domain.Piece{O, X, E, E}, 0},
		{[4]domain.Piece{X, X, X, X}, 0},
		{[4]domain.Piece{O, O, O, X}, 0},
		{[4]domain.Piece{E, E, E, E}, 0},
		{[4]domain.Piece{O, E, E, E}, 0},
	}
	for _, tc := range tests {
		if got := ScoreWindow(tc.window, O); got != tc.want {
			t.Errorf("ScoreWindow(%v) = %d, want %d", tc.window, got, tc.want)
		}
	}
}

// Every one of the 3^4 windows, from both sides.
func TestScoreWindowAllPatterns(t *testing.T) {
	cells := []domain.Piece{domain.Empty, domain.PlayerPiece, domain.AIPiece}
	checked := 0

	for _, piece := range []domain.Piece{domain.AIPiece, domain.PlayerPiece} {
		for i := 0; i < 81; i++ {
			var w [4]domain.Piece
			own, opp, empty := 0, 0, 0
			n := i
			for k := 0; k < 4; k++ {
				w[k] = cells[n%3]
				n /= 3
				switch w[k] {
				case piece:
					own++
				case domain.Empty:
					empty++
				default:
					opp++
				}
			}

			want := 0
			switch {
			case own == 4:
				want = 100
			case own == 3 && empty == 1:
				want = 5
			case own == 2 && empty == 2:
				want = 2
			case opp == 3 && empty == 1:
				want = -4
			}

			if got := ScoreWindow(w, piece); got != want {
				t.Errorf("ScoreWindow(%v, %s) = %d, want %d", w, piece, got, want)
			}
			checked++
		}
	}
	if checked != 162 {
		t.Fatalf("expected 162 windows checked, got %d", checked)
	}
}

func TestScorePositionEmptyBoard(t *testing.T) {
	b := domain.NewBoard()
	if got := ScorePosition(&b, domain.AIPiece); got != 0 {
		t.Fatalf("empty board should score 0, got %d", got)
	}
}

func TestScorePositionCenterBonus(t *testing.T) {
	for col := 0; col < domain.Columns; col++ {
		b, _, _ := domain.ApplyMove(domain.NewBoard(), col, domain.AIPiece)
		want := 0
		if col == domain.CenterColumn {
			want = SCORE_CENTER
		}
		if got := ScorePosition(&b, domain.AIPiece); got != want {
			t.Errorf("single disc in column %d: expected %d, got %d", col, want, got)
		}
	}
}

func TestScorePositionCountsEveryOrientation(t *testing.T) {
	b, err := domain.ParseBoard(`
		.......
		.......
		.......
		.......
		.......
		OOO....`)
	if err != nil {
		t.Fatalf("bad fixture: %v", err)
	}
	// windows c0..3 (three + empty) and c1..4 (two + two empty)
	if got := ScorePosition(&b, domain.AIPiece); got != 5+2 {
		t.Fatalf("expected 7, got %d", got)
	}
	// the same three discs seen by the other side
	if got := ScorePosition(&b, domain.PlayerPiece); got != -4 {
		t.Fatalf("expected -4, got %d", got)
	}
}

func TestScorePositionIdempotent(t *testing.T) {
	b, err := domain.ParseMoves("4433256", domain.PlayerPiece)
	if err != nil {
		t.Fatalf("setup: %v", err)
	}
	before := b
	first := ScorePosition(&b, domain.AIPiece)
	second := ScorePosition(&b, domain.AIPiece)
	if first != second {
		t.Fatalf("score changed between calls: %d vs %d", first, second)
	}
	if b != before {
		t.Fatalf("ScorePosition modified the board")
	}
}

func TestScorePositionBelowSentinels(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	limit := int64(10000000000000)

	for game := 0; game < 300; game++ {
		b := domain.NewBoard()
		piece := domain.PlayerPiece
		for !domain.IsTerminal(&b) {
			for _, p := range []domain.Piece{domain.AIPiece, domain.PlayerPiece} {
				score := int64(ScorePosition(&b, p))
				if score >= limit || -score >= limit {
					t.Fatalf("heuristic %d reaches sentinel range:\n%s", score, b)
				}
			}
			legal := b.LegalColumns()
			b, _, _ = domain.ApplyMove(b, legal[rng.Intn(len(legal))], piece)
			piece = domain.Opponent(piece)
		}
	}
}
