package domain

const (
	// NumSeats is the fixed table size: two teams of two.
	NumSeats = 4
	// DeckSize is the number of cards in a full deck.
	DeckSize = 52
	// InitialDealSize is how many cards each player receives before trump is chosen.
	InitialDealSize = 5
	// RemainingDealSize is how many cards each player receives after trump is chosen.
	RemainingDealSize = 8
	// HandSize is the number of cards each player holds once dealing is done.
	HandSize = InitialDealSize + RemainingDealSize
	// TotalTricks is the number of tricks available in a round.
	TotalTricks = HandSize
	// DefaultTargetTricks is the trick count that wins a round.
	DefaultTargetTricks = 7
)
