package internal

import (
	"hokm/internal/domain"
)

// TrickStats summarises the trick in progress from one player's seat.
type TrickStats struct {
	Leading bool
	LedSuit domain.Suit
	// PartnerLikelyWinner is set when the partner trumped this trick or
	// currently takes it.
	PartnerLikelyWinner bool
	HighestTrump        domain.Card
	HasTrumpInTrick     bool
}

// AnalyzeTrick inspects the current trick for playerID.
func AnalyzeTrick(r *domain.Round, playerID int) TrickStats {
	stats := TrickStats{}
	led, ok := r.LedSuit()
	if !ok {
		stats.Leading = true
		return stats
	}
	stats.LedSuit = led

	partner := domain.PartnerID(playerID)
	for _, p := range r.Trick {
		if !r.IsTrump(p.Card) {
			continue
		}
		if p.PlayerID == partner {
			stats.PartnerLikelyWinner = true
		}
		if !stats.HasTrumpInTrick || p.Card.Value() > stats.HighestTrump.Value() {
			stats.HighestTrump = p.Card
			stats.HasTrumpInTrick = true
		}
	}
	if !stats.PartnerLikelyWinner {
		if winner, err := r.TrickWinnerPreview(); err == nil && winner == partner {
			stats.PartnerLikelyWinner = true
		}
	}
	return stats
}
