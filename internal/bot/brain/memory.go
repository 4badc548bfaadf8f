package brain

import (
	"hokm/internal/domain"
)

// CardStatus represents what the bot knows about a specific card.
type CardStatus int

const (
	StatusUnknown CardStatus = iota // We don't know who has it
	StatusMine                      // In the bot's hand
	StatusPlayed                    // Resolved out of an earlier trick
	StatusOnTable                   // Face up in the trick in progress
)

const ranksPerSuit = int(domain.Ace-domain.Two) + 1

// GameMemory stores the bot's private "view" of the round.
type GameMemory struct {
	// DeckStatus tracks all 52 cards. Index = Suit*13 + (Rank-2).
	DeckStatus [domain.DeckSize]CardStatus
}

// NewMemory initializes a fresh memory state.
func NewMemory() *GameMemory {
	return &GameMemory{}
}

// Observe builds the memory of playerID from the public round state plus its own hand.
func Observe(r *domain.Round, playerID int) *GameMemory {
	m := NewMemory()
	m.MarkPlayed(r.Played)
	for _, p := range r.Trick {
		m.DeckStatus[cardToIndex(p.Card)] = StatusOnTable
	}
	if p, err := r.Player(playerID); err == nil {
		m.MarkMine(p.Hand)
	}
	return m
}

// Reset clears the memory for a new round.
func (m *GameMemory) Reset() {
	for i := range m.DeckStatus {
		m.DeckStatus[i] = StatusUnknown
	}
}

// MarkMine records the cards currently in the bot's hand.
func (m *GameMemory) MarkMine(cards []domain.Card) {
	for _, c := range cards {
		m.DeckStatus[cardToIndex(c)] = StatusMine
	}
}

// MarkPlayed records cards resolved out of finished tricks.
func (m *GameMemory) MarkPlayed(cards []domain.Card) {
	for _, c := range cards {
		m.DeckStatus[cardToIndex(c)] = StatusPlayed
	}
}

// IsPlayed returns true if the card is already out of the round.
func (m *GameMemory) IsPlayed(c domain.Card) bool {
	return m.DeckStatus[cardToIndex(c)] == StatusPlayed
}

// AllHigherPlayed reports whether every strictly higher rank of c's suit has
// already been resolved out of an earlier trick. Such a card cannot be beaten
// within its own suit. Higher cards held by the bot or still on the table do
// not count as played.
func (m *GameMemory) AllHigherPlayed(c domain.Card) bool {
	for r := c.Rank + 1; r <= domain.Ace; r++ {
		if !m.IsPlayed(domain.Card{Rank: r, Suit: c.Suit}) {
			return false
		}
	}
	return true
}

// UnseenCount returns how many cards of suit s are neither held by the bot nor
// visible in the played history or on the table.
func (m *GameMemory) UnseenCount(s domain.Suit) int {
	n := 0
	for r := domain.Two; r <= domain.Ace; r++ {
		if m.DeckStatus[cardToIndex(domain.Card{Rank: r, Suit: s})] == StatusUnknown {
			n++
		}
	}
	return n
}

// cardToIndex converts domain.Card to a 0-51 index.
func cardToIndex(c domain.Card) int {
	return int(c.Suit)*ranksPerSuit + int(c.Rank-domain.Two)
}
