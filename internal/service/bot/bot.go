package bot

import (
	"math/rand"
	"sort"
	"strings"

	"github.com/iamasit07/4-in-a-row/minimax/internal/domain"
	"github.com/pkg/errors"
)

// Policy picks a column for piece. Implementations never modify board.
type Policy interface {
	Name() string
	ChooseColumn(board domain.Board, piece domain.Piece) (int, error)
}

const ErrUnknownPolicy domain.Error = "unknown policy"

var policyAliases = map[string]string{
	"easy":       "random",
	"medium":     "greedy",
	"hard":       "positional",
	"expert":     "minimax",
	"random":     "random",
	"greedy":     "greedy",
	"positional": "positional",
	"minimax":    "minimax",
}

// NewPolicy selects a policy by difficulty or strategy name. Every policy
// draws its randomness from rng.
func NewPolicy(name string, rng *rand.Rand) (Policy, error) {
	return NewPolicyWithDepth(name, rng, PositionalDepth)
}

// NewPolicyWithDepth is NewPolicy with the positional agent searching
// positionalDepth plies instead of the default.
func NewPolicyWithDepth(name string, rng *rand.Rand, positionalDepth int) (Policy, error) {
	if positionalDepth < 1 {
		positionalDepth = PositionalDepth
	}
	switch canonicalName(name) {
	case "random":
		return NewRandomPolicy(rng), nil
	case "greedy":
		return NewGreedyPolicy(rng), nil
	case "positional":
		return NewPositionalPolicy(NewEngine(NewRandomTieBreaker(rng)), positionalDepth), nil
	case "minimax":
		return NewMinimaxPolicy(NewEngine(NewRandomTieBreaker(rng)), DefaultDepth), nil
	}
	return nil, unknownPolicy(name)
}

// PolicyName returns the display name of the policy NewPolicyWithDepth
// would build for name.
func PolicyName(name string, positionalDepth int) (string, error) {
	if positionalDepth < 1 {
		positionalDepth = PositionalDepth
	}
	switch canonicalName(name) {
	case "random":
		return randomAgentName, nil
	case "greedy":
		return greedyAgentName, nil
	case "positional":
		return positionalAgentName(positionalDepth), nil
	case "minimax":
		return minimaxAgentName(DefaultDepth), nil
	}
	return "", unknownPolicy(name)
}

func canonicalName(name string) string {
	return policyAliases[strings.ToLower(strings.TrimSpace(name))]
}

func unknownPolicy(name string) error {
	return errors.Wrapf(ErrUnknownPolicy, "%q (known: %s)", name, strings.Join(PolicyNames(), ", "))
}

// PolicyNames lists every accepted name.
func PolicyNames() []string {
	names := make([]string, 0, len(policyAliases))
	for name := range policyAliases {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func randomColumn(board *domain.Board, rng *rand.Rand) (int, error) {
	validColumns := board.LegalColumns()
	if len(validColumns) == 0 {
		return NoColumn, domain.ErrNoLegalMove
	}
	return validColumns[rng.Intn(len(validColumns))], nil
}
