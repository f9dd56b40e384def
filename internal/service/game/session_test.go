package game

import (
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/iamasit07/4-in-a-row/minimax/internal/domain"
	"github.com/iamasit07/4-in-a-row/minimax/internal/service/bot"
)

type chanNotifier chan Message

func (c chanNotifier) Send(msg Message) {
	c <- msg
}

type columnPolicy struct {
	column int
}

func (p columnPolicy) Name() string { return "fixed" }

func (p columnPolicy) ChooseColumn(board domain.Board, _ domain.Piece) (int, error) {
	return p.column, nil
}

func newTestSession(t *testing.T, ai bot.Policy, first string, delay time.Duration) (*Session, chanNotifier) {
	t.Helper()
	n := make(chanNotifier, 64)
	s, err := NewSession(ai, first, delay, rand.New(rand.NewSource(1)), n)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return s, n
}

func waitFor(t *testing.T, n chanNotifier, msgType string, piece domain.Piece) Message {
	t.Helper()
	timeout := time.After(5 * time.Second)
	for {
		select {
		case msg := <-n:
			if msg.Type == msgType && (piece == domain.Empty || msg.Move.Piece == piece) {
				return msg
			}
		case <-timeout:
			t.Fatalf("timed out waiting for %s", msgType)
		}
	}
}

func TestSessionEngineReplies(t *testing.T) {
	engine := bot.NewMinimaxPolicy(bot.NewEngine(bot.FirstColumnTieBreaker{}), bot.DefaultDepth)
	s, n := newTestSession(t, engine, FirstPlayer, 0)
	s.Start()
	waitFor(t, n, "game_start", domain.Empty)

	if err := s.HandleMove(3); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	reply := waitFor(t, n, "move_made", domain.AIPiece)
	if reply.NextTurn != domain.PlayerPiece {
		t.Fatalf("expected the turn to return to the player, got %s", reply.NextTurn)
	}

	snap := s.Snapshot()
	if snap.MoveCount != 2 || snap.CurrentTurn != domain.PlayerPiece {
		t.Fatalf("unexpected snapshot %+v", snap)
	}
	if snap.LastMove == nil || snap.LastMove.Piece != domain.AIPiece {
		t.Fatalf("last move should be the engine's, got %+v", snap.LastMove)
	}
	if snap.SessionID == "" || snap.Outcome != domain.InProgress {
		t.Fatalf("unexpected snapshot header %+v", snap)
	}
}

func TestSessionRejectsOutOfTurnAndInvalidMoves(t *testing.T) {
	s, _ := newTestSession(t, columnPolicy{column: 6}, FirstPlayer, time.Hour)

	if err := s.HandleMove(9); !errors.Is(err, domain.ErrInvalidMove) {
		t.Fatalf("expected ErrInvalidMove, got %v", err)
	}
	if err := s.HandleMove(0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := s.HandleMove(1); !errors.Is(err, domain.ErrNotYourTurn) {
		t.Fatalf("expected ErrNotYourTurn while the engine thinks, got %v", err)
	}
}

func TestSessionEngineOpens(t *testing.T) {
	s, n := newTestSession(t, columnPolicy{column: 2}, FirstAI, 0)
	s.Start()

	msg := waitFor(t, n, "move_made", domain.AIPiece)
	if msg.Move.Column != 2 || msg.Move.Row != 0 {
		t.Fatalf("unexpected opening move %+v", msg.Move)
	}
	if s.Snapshot().CurrentTurn != domain.PlayerPiece {
		t.Fatalf("player should move after the opening")
	}
}

func TestSessionRestartDropsPendingReply(t *testing.T) {
	s, _ := newTestSession(t, columnPolicy{column: 6}, FirstPlayer, 50*time.Millisecond)
	if err := s.HandleMove(0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s.Restart()
	time.Sleep(200 * time.Millisecond)

	snap := s.Snapshot()
	if snap.MoveCount != 0 {
		t.Fatalf("a reply for the old game leaked into the new one: %d moves", snap.MoveCount)
	}
}

func TestSessionGameOver(t *testing.T) {
	s, n := newTestSession(t, columnPolicy{column: 6}, FirstPlayer, 0)
	for i := 0; i < 3; i++ {
		if err := s.HandleMove(0); err != nil {
			t.Fatalf("move %d: %v", i, err)
		}
		waitFor(t, n, "move_made", domain.AIPiece)
	}
	if err := s.HandleMove(0); err != nil {
		t.Fatalf("winning move: %v", err)
	}

	over := waitFor(t, n, "game_over", domain.Empty)
	if over.Outcome != domain.PlayerWin {
		t.Fatalf("expected player win, got %s", over.Outcome)
	}

	snap := s.Snapshot()
	if snap.WinningLine == nil || snap.WinningLine.Orientation != domain.Vertical {
		t.Fatalf("expected a vertical winning line, got %+v", snap.WinningLine)
	}
	if err := s.HandleMove(1); !errors.Is(err, domain.ErrGameOver) {
		t.Fatalf("expected ErrGameOver, got %v", err)
	}
	if err := s.HandleBotMove(); err != nil {
		t.Fatalf("engine should ignore a finished game, got %v", err)
	}
}

func TestNewSessionDefaultsToRandomFirstMover(t *testing.T) {
	s, _ := newTestSession(t, columnPolicy{column: 0}, "whoever", time.Hour)
	if s.first != FirstRandom {
		t.Fatalf("unknown first mover should fall back to random, got %q", s.first)
	}
}
