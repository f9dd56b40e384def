package tournament

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"sync"
	"time"

	"github.com/iamasit07/4-in-a-row/minimax/internal/domain"
	"github.com/iamasit07/4-in-a-row/minimax/internal/service/bot"
	"github.com/iamasit07/4-in-a-row/minimax/pkg/uid"
)

// Settings controls how the main engine plays and how games are scheduled.
type Settings struct {
	Depth           int
	PositionalDepth int
	Seed            int64
	Workers         int
	TieBreak        string // "random" or "first"
	AlphaBeta       bool
}

// Summary aggregates the results of one opponent's games.
type Summary struct {
	RunID        string        `json:"run_id"`
	Opponent     string        `json:"opponent"`
	Strategy     string        `json:"strategy"`
	Games        int           `json:"games"`
	AIWins       int           `json:"ai_wins"`
	OpponentWins int           `json:"opponent_wins"`
	Draws        int           `json:"draws"`
	Depth        int           `json:"depth"`
	Seed         int64         `json:"seed"`
	StartedAt    time.Time     `json:"started_at"`
	Duration     time.Duration `json:"duration_ns"`
}

func (s Summary) WinRate() float64 {
	if s.Games == 0 {
		return 0
	}
	return float64(s.AIWins) / float64(s.Games) * 100
}

type Runner struct {
	settings  Settings
	publisher Publisher
	runID     string
}

func NewRunner(settings Settings, publisher Publisher) *Runner {
	if settings.Depth < 1 {
		settings.Depth = bot.DefaultDepth
	}
	if settings.Workers < 1 {
		settings.Workers = 1
	}
	return &Runner{
		settings:  settings,
		publisher: publisher,
		runID:     uid.GenerateRunID(),
	}
}

func (r *Runner) RunID() string {
	return r.runID
}

type gameResult struct {
	outcome domain.GameOutcome
	err     error
}

// Run plays games between the main engine and the named opponent. Game i is
// seeded with Seed+i, so the summary depends only on the seed.
func (r *Runner) Run(ctx context.Context, opponent string, games int) (Summary, error) {
	name, err := bot.PolicyName(opponent, r.settings.PositionalDepth)
	if err != nil {
		return Summary{}, err
	}

	summary := Summary{
		RunID:     r.runID,
		Opponent:  name,
		Strategy:  opponent,
		Depth:     r.settings.Depth,
		Seed:      r.settings.Seed,
		StartedAt: time.Now(),
	}
	log.Printf("[TOURNAMENT] Starting tournament against %s (%d games, %d workers)", summary.Opponent, games, r.settings.Workers)
	if a, ok := r.publisher.(Announcer); ok {
		if err := a.Announce(summary.Opponent, games); err != nil {
			log.Printf("[TOURNAMENT] Failed to announce %s: %v", summary.Opponent, err)
		}
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	jobs := make(chan int)
	results := make(chan gameResult)

	var wg sync.WaitGroup
	for w := 0; w < r.settings.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				outcome, err := r.playGame(opponent, r.settings.Seed+int64(i))
				select {
				case results <- gameResult{outcome: outcome, err: err}:
				case <-ctx.Done():
					return
				}
			}
		}()
	}

	go func() {
		defer close(jobs)
		for i := 0; i < games; i++ {
			select {
			case jobs <- i:
			case <-ctx.Done():
				return
			}
		}
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	var runErr error
	for res := range results {
		if res.err != nil {
			if runErr == nil {
				runErr = res.err
				cancel()
			}
			continue
		}
		summary.Games++
		switch res.outcome {
		case domain.AIWin:
			summary.AIWins++
		case domain.PlayerWin:
			summary.OpponentWins++
		case domain.Draw:
			summary.Draws++
		}
	}
	summary.Duration = time.Since(summary.StartedAt)

	if runErr != nil {
		return summary, runErr
	}
	if err := ctx.Err(); err != nil || summary.Games < games {
		if err == nil {
			err = context.Canceled
		}
		return summary, fmt.Errorf("tournament against %s stopped after %d of %d games: %w", summary.Opponent, summary.Games, games, err)
	}

	if r.publisher != nil {
		if err := r.publisher.Publish(ctx, summary); err != nil {
			log.Printf("[TOURNAMENT] Failed to publish summary for %s: %v", summary.Opponent, err)
		}
	}
	return summary, nil
}

func (r *Runner) newEngine(rng *rand.Rand) *bot.Engine {
	var tb bot.TieBreaker = bot.NewRandomTieBreaker(rng)
	if r.settings.TieBreak == "first" {
		tb = bot.FirstColumnTieBreaker{}
	}
	engine := bot.NewEngine(tb)
	engine.DisablePruning = !r.settings.AlphaBeta
	return engine
}

// playGame plays one game to the end. The opponent always holds the player
// piece and the main engine the ai piece.
func (r *Runner) playGame(opponent string, seed int64) (domain.GameOutcome, error) {
	rng := rand.New(rand.NewSource(seed))

	first := domain.PlayerPiece
	if rng.Intn(2) == 1 {
		first = domain.AIPiece
	}

	policy, err := bot.NewPolicyWithDepth(opponent, rng, r.settings.PositionalDepth)
	if err != nil {
		return domain.InProgress, err
	}
	engine := r.newEngine(rng)
	game := domain.NewGame(first)

	for !game.Outcome().IsFinished() {
		var col int
		if game.CurrentTurn == domain.PlayerPiece {
			col, err = policy.ChooseColumn(game.Board, domain.PlayerPiece)
		} else {
			col, err = engine.ChooseMove(game.Board, r.settings.Depth, domain.AIPiece)
		}
		if err != nil {
			return domain.InProgress, fmt.Errorf("seed %d, move %d: %w", seed, game.MoveCount()+1, err)
		}
		if _, err := game.MakeMove(game.CurrentTurn, col); err != nil {
			return domain.InProgress, fmt.Errorf("seed %d, move %d: %w", seed, game.MoveCount()+1, err)
		}
	}
	return game.Outcome(), nil
}
