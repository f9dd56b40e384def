package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"

	"github.com/iamasit07/4-in-a-row/minimax/internal/config"
	"github.com/iamasit07/4-in-a-row/minimax/internal/repository/kafka"
	"github.com/iamasit07/4-in-a-row/minimax/internal/repository/redis"
	"github.com/iamasit07/4-in-a-row/minimax/internal/service/tournament"
)

func main() {
	config.LoadEnv()
	cfg := config.LoadConfig()

	if err := run(cfg); err != nil {
		log.Fatalf("[TOURNAMENT] %v", err)
	}
	log.Println("[TOURNAMENT] All tournaments finished")
}

func run(cfg *config.Config) error {
	publishers := tournament.MultiPublisher{tournament.NewLogPublisher(os.Stdout)}

	if err := redis.InitRedis(cfg.RedisURL, cfg.RedisPassword); err != nil {
		log.Printf("[REDIS] Failed to initialize Redis: %v", err)
	}
	defer redis.CloseRedis()
	if redis.IsRedisEnabled() && redis.RedisClient != nil {
		publishers = append(publishers, redis.NewSummaryStore(redis.NewRedisCache(redis.RedisClient), cfg.RedisResultTTL))
	}

	if len(cfg.KafkaBrokers) > 0 {
		producer := kafka.NewPublisher(cfg.KafkaBrokers, cfg.KafkaTopic)
		defer func() {
			if err := producer.Close(); err != nil {
				log.Printf("[KAFKA] Failed to close writer: %v", err)
			}
		}()
		publishers = append(publishers, producer)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runner := tournament.NewRunner(tournament.Settings{
		Depth:           cfg.AIDepth,
		PositionalDepth: cfg.PositionalDepth,
		Seed:            cfg.Seed,
		Workers:         cfg.TournamentWorkers,
		TieBreak:        cfg.TieBreak,
		AlphaBeta:       cfg.AlphaBeta,
	}, publishers)
	log.Printf("[TOURNAMENT] Run %s: depth %d, seed %d, %d games per opponent",
		runner.RunID(), cfg.AIDepth, cfg.Seed, cfg.TournamentGames)

	var failed []string
	for _, opponent := range cfg.TournamentOpponents {
		if _, err := runner.Run(ctx, opponent, cfg.TournamentGames); err != nil {
			if ctx.Err() != nil {
				return err
			}
			log.Printf("[TOURNAMENT] %v", err)
			failed = append(failed, opponent)
		}
	}
	if len(failed) > 0 {
		return errors.Errorf("%d of %d tournaments failed: %v", len(failed), len(cfg.TournamentOpponents), failed)
	}
	return nil
}
