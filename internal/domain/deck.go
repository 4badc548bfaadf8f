package domain

import (
	"math/rand"
	"sort"
)

// NewDeck returns the ordered 52-card deck, suit by suit, Two to Ace.
func NewDeck() []Card {
	deck := make([]Card, 0, DeckSize)
	for _, s := range AllSuits {
		for r := Two; r <= Ace; r++ {
			deck = append(deck, Card{Rank: r, Suit: s})
		}
	}
	return deck
}

// ShuffleDeck returns a shuffled copy of the given deck.
func ShuffleDeck(rng *rand.Rand, deck []Card) []Card {
	out := make([]Card, len(deck))
	copy(out, deck)
	rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

// SortHand orders a hand trump first, then by descending value.
// The ordering is for display only and carries no rule meaning.
func SortHand(cards []Card, hokm *Suit) {
	isTrump := func(c Card) bool { return hokm != nil && c.Suit == *hokm }
	sort.SliceStable(cards, func(i, j int) bool {
		ti, tj := isTrump(cards[i]), isTrump(cards[j])
		if ti != tj {
			return ti
		}
		return cards[i].Value() > cards[j].Value()
	})
}
