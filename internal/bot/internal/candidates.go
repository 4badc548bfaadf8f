package internal

import (
	"fmt"

	"hokm/internal/domain"
)

// Candidates returns the cards playerID chooses among: the whole hand when
// leading, otherwise the cards of the led suit, falling back to the whole hand.
func Candidates(r *domain.Round, playerID int) ([]domain.Card, error) {
	cards, err := r.LegalPlays(playerID)
	if err != nil {
		return nil, err
	}
	if len(cards) == 0 {
		return nil, fmt.Errorf("%w: player %d has no cards", domain.ErrInvalidState, playerID)
	}
	return cards, nil
}
