package bot

import (
	"context"
	"fmt"

	"hokm/internal/app"
	"hokm/internal/domain"
)

// Agent represents an autonomous player at one seat.
type Agent struct {
	ID       int
	Name     string
	Strategy Brain
}

// Play asks the strategy for a card and commits it through the service, which
// takes it out of the agent's hand.
func (a *Agent) Play(ctx context.Context, svc *app.Service, round *domain.Round) (domain.Card, []app.Event, error) {
	card, err := a.Strategy.ChooseCard(ctx, round, a.ID)
	if err != nil {
		return domain.Card{}, nil, fmt.Errorf("agent %d: %w", a.ID, err)
	}
	events, err := svc.PlayCard(round, a.ID, card)
	if err != nil {
		return domain.Card{}, nil, fmt.Errorf("agent %d: %w", a.ID, err)
	}
	return card, events, nil
}
