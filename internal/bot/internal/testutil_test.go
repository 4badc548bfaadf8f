package internal

import (
	"math/rand"

	"hokm/internal/domain"
)

func c(r domain.Rank, s domain.Suit) domain.Card {
	return domain.Card{Rank: r, Suit: s}
}

// dealtRound returns a round with all 52 cards dealt and trump set.
func dealtRound(seed int64, hokm domain.Suit) *domain.Round {
	rng := rand.New(rand.NewSource(seed))
	r := domain.NewRound(-1)
	r.Reset(domain.ShuffleDeck(rng, domain.NewDeck()), 1)
	_ = r.Deal(domain.HandSize)
	_ = r.SetHokm(hokm)
	return r
}
