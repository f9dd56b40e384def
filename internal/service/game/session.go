package game

import (
	"log"
	"math/rand"
	"sync"
	"time"

	"github.com/iamasit07/4-in-a-row/minimax/internal/domain"
	"github.com/iamasit07/4-in-a-row/minimax/internal/service/bot"
	"github.com/iamasit07/4-in-a-row/minimax/pkg/uid"
)

const (
	FirstRandom = "random"
	FirstPlayer = "player"
	FirstAI     = "ai"
)

// Message tells the front end that the game changed.
type Message struct {
	Type     string // "game_start", "move_made" or "game_over"
	Move     domain.Move
	Outcome  domain.GameOutcome
	NextTurn domain.Piece
}

type Notifier interface {
	Send(msg Message)
}

// Snapshot is a consistent copy of the session state for rendering.
type Snapshot struct {
	SessionID   string
	Board       domain.Board
	CurrentTurn domain.Piece
	Outcome     domain.GameOutcome
	MoveCount   int
	LastMove    *domain.Move
	WinningLine *domain.Line
}

// Session is one human (player piece) versus engine (ai piece) game. The
// engine replies from a goroutine after ThinkDelay.
type Session struct {
	ID         string
	Game       *domain.Game
	ThinkDelay time.Duration
	CreatedAt  time.Time

	ai         bot.Policy
	first      string
	rng        *rand.Rand
	notifier   Notifier
	generation int
	mu         sync.Mutex
}

func NewSession(ai bot.Policy, first string, thinkDelay time.Duration, rng *rand.Rand, notifier Notifier) (*Session, error) {
	id, err := uid.GenerateSessionID()
	if err != nil {
		return nil, err
	}
	switch first {
	case FirstPlayer, FirstAI:
	default:
		first = FirstRandom
	}

	s := &Session{
		ID:         id,
		ThinkDelay: thinkDelay,
		ai:         ai,
		first:      first,
		rng:        rng,
		notifier:   notifier,
	}
	s.reset()
	return s, nil
}

// Start announces the game and lets the engine open if it moves first.
func (s *Session) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.announceStart()
}

// Restart discards the current game. A pending engine reply for the old
// game is dropped.
func (s *Session) Restart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reset()
	s.announceStart()
	log.Printf("[SESSION] Restarted %s, %s moves first", s.ID, s.Game.CurrentTurn)
}

func (s *Session) reset() {
	first := domain.PlayerPiece
	switch s.first {
	case FirstAI:
		first = domain.AIPiece
	case FirstRandom:
		if s.rng.Intn(2) == 1 {
			first = domain.AIPiece
		}
	}
	s.generation++
	s.Game = domain.NewGame(first)
	s.CreatedAt = time.Now()
}

func (s *Session) announceStart() {
	s.send(Message{Type: "game_start", Outcome: domain.InProgress, NextTurn: s.Game.CurrentTurn})
	if s.Game.CurrentTurn == domain.AIPiece {
		s.scheduleBotMove()
	}
}

// HandleMove plays the human's column.
func (s *Session) HandleMove(column int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	move, err := s.Game.MakeMove(domain.PlayerPiece, column)
	if err != nil {
		return err
	}
	s.afterMove(move)
	return nil
}

// HandleBotMove plays the engine's reply if it is still the engine's turn.
func (s *Session) HandleBotMove() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.playBot(s.generation)
}

func (s *Session) playBot(generation int) error {
	// the game may have moved on while the goroutine slept
	if generation != s.generation || s.Game.CurrentTurn != domain.AIPiece || s.Game.Outcome().IsFinished() {
		return nil
	}

	column, err := s.ai.ChooseColumn(s.Game.Board, domain.AIPiece)
	if err != nil {
		return err
	}
	move, err := s.Game.MakeMove(domain.AIPiece, column)
	if err != nil {
		return err
	}
	s.afterMove(move)
	return nil
}

func (s *Session) afterMove(move domain.Move) {
	outcome := s.Game.Outcome()
	s.send(Message{Type: "move_made", Move: move, Outcome: outcome, NextTurn: s.Game.CurrentTurn})

	if outcome.IsFinished() {
		log.Printf("[SESSION] Game %s finished: %s after %d moves", s.ID, outcome, s.Game.MoveCount())
		s.send(Message{Type: "game_over", Move: move, Outcome: outcome})
		return
	}
	if s.Game.CurrentTurn == domain.AIPiece {
		s.scheduleBotMove()
	}
}

func (s *Session) scheduleBotMove() {
	generation := s.generation
	go func() {
		time.Sleep(s.ThinkDelay)
		s.mu.Lock()
		defer s.mu.Unlock()
		if err := s.playBot(generation); err != nil {
			log.Printf("[BOT] Error handling bot move: %v", err)
		}
	}()
}

func (s *Session) send(msg Message) {
	if s.notifier != nil {
		s.notifier.Send(msg)
	}
}

func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{
		SessionID:   s.ID,
		Board:       s.Game.Board,
		CurrentTurn: s.Game.CurrentTurn,
		Outcome:     s.Game.Outcome(),
		MoveCount:   s.Game.MoveCount(),
	}
	if last, ok := s.Game.LastMove(); ok {
		snap.LastMove = &last
	}
	if l, ok := domain.WinningLine(&snap.Board, domain.AIPiece); ok {
		snap.WinningLine = &l
	} else if l, ok := domain.WinningLine(&snap.Board, domain.PlayerPiece); ok {
		snap.WinningLine = &l
	}
	return snap
}
