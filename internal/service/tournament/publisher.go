package tournament

import (
	"context"
	"fmt"
	"io"
	"strings"
)

// Publisher receives the summary of every finished tournament.
type Publisher interface {
	Publish(ctx context.Context, summary Summary) error
}

// Announcer is implemented by publishers that also report the start of a
// tournament.
type Announcer interface {
	Announce(opponent string, games int) error
}

// LogPublisher prints the console report.
type LogPublisher struct {
	out io.Writer
}

func NewLogPublisher(out io.Writer) *LogPublisher {
	return &LogPublisher{out: out}
}

func (p *LogPublisher) Announce(opponent string, games int) error {
	_, err := fmt.Fprintf(p.out, "\nStarting tournament against %s (%d games)...\n", opponent, games)
	return err
}

func (p *LogPublisher) Publish(_ context.Context, s Summary) error {
	_, err := fmt.Fprintf(p.out,
		"--- Results vs %s ---\nYour AI Wins: %d\nOpponent Wins: %d\nDraws: %d\nWin Rate: %.1f%%\nTotal Time: %.2fs\n%s\n",
		s.Opponent, s.AIWins, s.OpponentWins, s.Draws, s.WinRate(), s.Duration.Seconds(), strings.Repeat("-", 30))
	return err
}

// MultiPublisher hands the summary to every publisher and reports the
// first failure after all of them ran.
type MultiPublisher []Publisher

func (m MultiPublisher) Publish(ctx context.Context, s Summary) error {
	var firstErr error
	for _, p := range m {
		if err := p.Publish(ctx, s); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// Announce forwards to every member that is an Announcer.
func (m MultiPublisher) Announce(opponent string, games int) error {
	var firstErr error
	for _, p := range m {
		a, ok := p.(Announcer)
		if !ok {
			continue
		}
		if err := a.Announce(opponent, games); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
