package bot

import (
	"context"
	"fmt"

	"github.com/heroiclabs/nakama-common/runtime"

	"hokm/internal/bot/brain"
	botinternal "hokm/internal/bot/internal"
	"hokm/internal/domain"
	"hokm/internal/logging"
)

// HeuristicBot runs an ordered rule pipeline over the candidate cards.
type HeuristicBot struct {
	Rules  []SelectionRule
	Logger runtime.Logger
}

// NewHeuristicBot uses DefaultPipeline.
func NewHeuristicBot(logger runtime.Logger) *HeuristicBot {
	if logger == nil {
		logger = logging.Nop()
	}
	return &HeuristicBot{Rules: DefaultPipeline, Logger: logger}
}

func (b *HeuristicBot) ChooseCard(_ context.Context, round *domain.Round, playerID int) (domain.Card, error) {
	cands, err := botinternal.Candidates(round, playerID)
	if err != nil {
		return domain.Card{}, err
	}
	if len(cands) == 1 {
		return cands[0], nil
	}
	return b.choose(round, playerID, cands)
}

func (b *HeuristicBot) choose(round *domain.Round, playerID int, cands []domain.Card) (domain.Card, error) {
	p, err := round.Player(playerID)
	if err != nil {
		return domain.Card{}, err
	}
	ctx := &DecisionContext{
		Round:      round,
		PlayerID:   playerID,
		Hand:       p.Hand,
		Candidates: cands,
		Memory:     brain.Observe(round, playerID),
		Trick:      botinternal.AnalyzeTrick(round, playerID),
	}
	rules := b.Rules
	if len(rules) == 0 {
		rules = DefaultPipeline
	}
	card, rule, ok := RunPipeline(rules, ctx)
	if !ok {
		return domain.Card{}, fmt.Errorf("%w: no rule chose a card for player %d", domain.ErrInvalidState, playerID)
	}
	if b.Logger != nil {
		b.Logger.Debug("HeuristicBot: player %d plays %s via %s", playerID, card, rule)
	}
	return card, nil
}
