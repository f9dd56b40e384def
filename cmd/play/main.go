package main

import (
	"io"
	"log"
	"math/rand"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/iamasit07/4-in-a-row/minimax/internal/config"
	"github.com/iamasit07/4-in-a-row/minimax/internal/service/bot"
	"github.com/iamasit07/4-in-a-row/minimax/internal/service/game"
	"github.com/iamasit07/4-in-a-row/minimax/internal/transport/terminal"
)

func main() {
	config.LoadEnv()
	cfg := config.LoadConfig()

	// the screen owns stdout, so log lines go to a file or nowhere
	log.SetOutput(io.Discard)
	if cfg.PlayLogFile != "" {
		f, err := os.OpenFile(cfg.PlayLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.SetOutput(os.Stderr)
			log.Fatalf("[PLAY] Failed to open log file: %v", err)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.SetOutput(os.Stderr)
		log.Fatalf("[PLAY] Failed to create screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.SetOutput(os.Stderr)
		log.Fatalf("[PLAY] Failed to initialize screen: %v", err)
	}
	defer screen.Fini()

	rng := rand.New(rand.NewSource(cfg.Seed))
	var tb bot.TieBreaker = bot.NewRandomTieBreaker(rng)
	if cfg.TieBreak == "first" {
		tb = bot.FirstColumnTieBreaker{}
	}
	engine := bot.NewEngine(tb)
	engine.DisablePruning = !cfg.AlphaBeta
	ai := bot.NewMinimaxPolicy(engine, cfg.AIDepth)

	ui := terminal.NewUI(screen)
	session, err := game.NewSession(ai, cfg.FirstPlayer, cfg.ThinkDelay, rng, ui)
	if err != nil {
		screen.Fini()
		log.SetOutput(os.Stderr)
		log.Fatalf("[PLAY] Failed to create session: %v", err)
	}
	log.Printf("[PLAY] Session %s against %s", session.ID, ai.Name())

	if err := ui.Run(session); err != nil {
		log.Printf("[PLAY] %v", err)
	}
}
