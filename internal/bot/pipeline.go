package bot

import (
	"hokm/internal/bot/brain"
	botinternal "hokm/internal/bot/internal"
	"hokm/internal/domain"
)

// DecisionContext holds what the selection rules see for one decision.
type DecisionContext struct {
	Round      *domain.Round
	PlayerID   int
	Hand       []domain.Card
	Candidates []domain.Card
	Memory     *brain.GameMemory
	Trick      botinternal.TrickStats
}

// SelectionRule is one step of the heuristic pipeline. A rule that does not
// apply returns ok=false and the next rule is tried.
type SelectionRule interface {
	Name() string
	Apply(ctx *DecisionContext) (domain.Card, bool)
}

// DefaultPipeline is the rule order used by HeuristicBot.
var DefaultPipeline = []SelectionRule{
	&FollowSuitRule{},
	&TrumpRule{},
	&DiscardRule{},
}

// FollowSuitRule plays when the bot can follow the led suit.
type FollowSuitRule struct{}

func (r *FollowSuitRule) Name() string { return "follow-suit" }

func (r *FollowSuitRule) Apply(ctx *DecisionContext) (domain.Card, bool) {
	if ctx.Trick.Leading {
		return domain.Card{}, false
	}
	same := domain.FilterSuit(ctx.Candidates, ctx.Trick.LedSuit)
	if len(same) == 0 {
		return domain.Card{}, false
	}
	if !ctx.Trick.PartnerLikelyWinner {
		var winners []domain.Card
		for _, c := range same {
			if ctx.Memory.AllHigherPlayed(c) {
				winners = append(winners, c)
			}
		}
		if card, ok := domain.MinByValue(winners); ok {
			return card, true
		}
	}
	return domain.MinByValue(same)
}

// TrumpRule plays when the bot holds trump anywhere in its hand.
type TrumpRule struct{}

func (r *TrumpRule) Name() string { return "trump" }

func (r *TrumpRule) Apply(ctx *DecisionContext) (domain.Card, bool) {
	if ctx.Round.Hokm == nil || !domain.HasSuit(ctx.Hand, *ctx.Round.Hokm) {
		return domain.Card{}, false
	}
	if ctx.Trick.PartnerLikelyWinner {
		return domain.MinByValue(ctx.Candidates)
	}
	trumps := domain.FilterSuit(ctx.Candidates, *ctx.Round.Hokm)
	if ctx.Trick.HasTrumpInTrick {
		var over []domain.Card
		for _, c := range trumps {
			if c.Value() > ctx.Trick.HighestTrump.Value() {
				over = append(over, c)
			}
		}
		if card, ok := domain.MinByValue(over); ok {
			return card, true
		}
	}
	if card, ok := domain.MinByValue(trumps); ok {
		return card, true
	}
	return domain.MinByValue(ctx.Candidates)
}

// DiscardRule throws the cheapest candidate.
type DiscardRule struct{}

func (r *DiscardRule) Name() string { return "discard" }

func (r *DiscardRule) Apply(ctx *DecisionContext) (domain.Card, bool) {
	return domain.MinByValue(ctx.Candidates)
}

// RunPipeline returns the first card a rule settles on, with that rule's name.
func RunPipeline(rules []SelectionRule, ctx *DecisionContext) (domain.Card, string, bool) {
	for _, rule := range rules {
		if card, ok := rule.Apply(ctx); ok {
			return card, rule.Name(), true
		}
	}
	return domain.Card{}, "", false
}
