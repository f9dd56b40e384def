package bot

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/iamasit07/4-in-a-row/minimax/internal/domain"
)

func TestRandomPolicyPlaysLegalColumns(t *testing.T) {
	b := mustBoard(t, `
		XOXOXO.
		OXOXOX.
		XOXOXO.
		XOXOXO.
		OXOXOX.
		XOXOXO.`)
	p := NewRandomPolicy(rand.New(rand.NewSource(2)))
	for i := 0; i < 20; i++ {
		col, err := p.ChooseColumn(b, domain.PlayerPiece)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if col != 6 {
			t.Fatalf("only column 6 is legal, got %d", col)
		}
	}
}

func TestRandomPolicyCoversAllColumns(t *testing.T) {
	p := NewRandomPolicy(rand.New(rand.NewSource(4)))
	seen := map[int]bool{}
	for i := 0; i < 500; i++ {
		col, err := p.ChooseColumn(domain.NewBoard(), domain.PlayerPiece)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		seen[col] = true
	}
	if len(seen) != domain.Columns {
		t.Fatalf("expected all %d columns to be chosen, saw %v", domain.Columns, seen)
	}
}

func TestGreedyPolicyPrefersWinOverBlock(t *testing.T) {
	b := mustBoard(t, `
		.......
		.......
		.......
		X.....O
		X.....O
		X.....O`)
	p := NewGreedyPolicy(rand.New(rand.NewSource(1)))

	col, err := p.ChooseColumn(b, domain.PlayerPiece)
	if err != nil || col != 0 {
		t.Fatalf("player should win in column 0, got %d (%v)", col, err)
	}
	col, err = p.ChooseColumn(b, domain.AIPiece)
	if err != nil || col != 6 {
		t.Fatalf("ai should win in column 6, got %d (%v)", col, err)
	}
}

func TestGreedyPolicyBlocks(t *testing.T) {
	b := mustBoard(t, `
		.......
		.......
		.......
		......X
		......X
		.O.O.OX`)
	p := NewGreedyPolicy(rand.New(rand.NewSource(1)))
	for i := 0; i < 10; i++ {
		col, err := p.ChooseColumn(b, domain.AIPiece)
		if err != nil || col != 6 {
			t.Fatalf("expected block in column 6, got %d (%v)", col, err)
		}
	}
}

func TestPoliciesReportNoLegalMove(t *testing.T) {
	full := mustBoard(t, `
		XXOXXOX
		OOXOOXO
		XXOXXOX
		OOXOOXO
		XXOXXOX
		OOXOOXO`)
	rng := rand.New(rand.NewSource(1))
	for _, name := range []string{"easy", "medium", "hard", "expert"} {
		p, err := NewPolicy(name, rng)
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if _, err := p.ChooseColumn(full, domain.PlayerPiece); !errors.Is(err, domain.ErrNoLegalMove) {
			t.Errorf("%s: expected ErrNoLegalMove, got %v", name, err)
		}
	}
}

func TestNewPolicyNames(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	tests := []struct {
		name string
		want string
	}{
		{"random", "Random Agent"},
		{"Medium", "Greedy Agent"},
		{" positional ", "Positional Agent (Depth 2)"},
		{"expert", "Minimax Agent (Depth 4)"},
	}
	for _, tc := range tests {
		p, err := NewPolicy(tc.name, rng)
		if err != nil {
			t.Fatalf("%q: %v", tc.name, err)
		}
		if p.Name() != tc.want {
			t.Errorf("%q: expected %q, got %q", tc.name, tc.want, p.Name())
		}
	}

	if _, err := NewPolicy("grandmaster", rng); !errors.Is(err, ErrUnknownPolicy) {
		t.Fatalf("expected ErrUnknownPolicy, got %v", err)
	}
	if len(PolicyNames()) != 8 {
		t.Fatalf("expected 8 policy names, got %v", PolicyNames())
	}
}

func TestPositionalPolicyBlocks(t *testing.T) {
	b := mustBoard(t, `
		.......
		.......
		.......
		......O
		......O
		XX....O`)
	p := NewPositionalPolicy(NewEngine(NewRandomTieBreaker(rand.New(rand.NewSource(9)))), PositionalDepth)
	col, err := p.ChooseColumn(b, domain.PlayerPiece)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if col != 6 {
		t.Fatalf("expected block in column 6, got %d", col)
	}
	if p.Depth() != PositionalDepth {
		t.Fatalf("expected depth %d, got %d", PositionalDepth, p.Depth())
	}
}

func TestNewPolicyWithDepth(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	p, err := NewPolicyWithDepth("hard", rng, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Name() != "Positional Agent (Depth 3)" {
		t.Fatalf("unexpected name %q", p.Name())
	}

	p, err = NewPolicyWithDepth("positional", rng, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.(*MinimaxPolicy).Depth() != PositionalDepth {
		t.Fatalf("depth below 1 should fall back to %d", PositionalDepth)
	}
}

func TestPolicyNameMatchesBuiltPolicy(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for _, name := range PolicyNames() {
		for _, depth := range []int{0, 3} {
			p, err := NewPolicyWithDepth(name, rng, depth)
			if err != nil {
				t.Fatalf("%s: %v", name, err)
			}
			got, err := PolicyName(name, depth)
			if err != nil {
				t.Fatalf("%s: %v", name, err)
			}
			if got != p.Name() {
				t.Errorf("PolicyName(%q, %d) = %q, built policy is %q", name, depth, got, p.Name())
			}
		}
	}

	if _, err := PolicyName("grandmaster", 2); !errors.Is(err, ErrUnknownPolicy) {
		t.Fatalf("expected ErrUnknownPolicy, got %v", err)
	}
}
