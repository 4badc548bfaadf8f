package bot

import (
	"context"
	"fmt"
	"strings"

	"hokm/internal/domain"
)

// Brain is the interface that all bot strategies must implement.
// ChooseCard only reads the round; committing the card is the caller's job.
type Brain interface {
	ChooseCard(ctx context.Context, round *domain.Round, playerID int) (domain.Card, error)
}

// BotLevel selects a strategy.
type BotLevel int

const (
	BotLevelRandom BotLevel = iota
	BotLevelHeuristic
	BotLevelMonteCarlo
)

func (l BotLevel) String() string {
	switch l {
	case BotLevelRandom:
		return "random"
	case BotLevelHeuristic:
		return "heuristic"
	case BotLevelMonteCarlo:
		return "montecarlo"
	}
	return fmt.Sprintf("BotLevel(%d)", int(l))
}

// ParseBotLevel accepts the names printed by BotLevel.String.
func ParseBotLevel(s string) (BotLevel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "random":
		return BotLevelRandom, nil
	case "heuristic":
		return BotLevelHeuristic, nil
	case "montecarlo", "monte-carlo", "mc":
		return BotLevelMonteCarlo, nil
	}
	return BotLevelRandom, fmt.Errorf("unknown bot level: %q", s)
}
