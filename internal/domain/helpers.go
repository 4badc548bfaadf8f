package domain

// IndexOfCard returns the position of target in cards.
func IndexOfCard(cards []Card, target Card) (int, bool) {
	for i, c := range cards {
		if c == target {
			return i, true
		}
	}
	return -1, false
}

// ContainsCard reports whether target is in cards.
func ContainsCard(cards []Card, target Card) bool {
	_, ok := IndexOfCard(cards, target)
	return ok
}

// RemoveCard removes the first occurrence of card from hand and returns the updated hand.
// The backing array is reused.
func RemoveCard(hand []Card, card Card) ([]Card, bool) {
	idx, ok := IndexOfCard(hand, card)
	if !ok {
		return hand, false
	}
	return append(hand[:idx], hand[idx+1:]...), true
}

// HasSuit reports whether any card in hand is of suit s.
func HasSuit(hand []Card, s Suit) bool {
	for _, c := range hand {
		if c.Suit == s {
			return true
		}
	}
	return false
}

// FilterSuit returns the cards of suit s, preserving order.
func FilterSuit(cards []Card, s Suit) []Card {
	var out []Card
	for _, c := range cards {
		if c.Suit == s {
			out = append(out, c)
		}
	}
	return out
}

// MinByValue returns the lowest-valued card. The first one wins on ties.
func MinByValue(cards []Card) (Card, bool) {
	if len(cards) == 0 {
		return Card{}, false
	}
	best := cards[0]
	for _, c := range cards[1:] {
		if c.Value() < best.Value() {
			best = c
		}
	}
	return best, true
}

// MaxByValue returns the highest-valued card. The first one wins on ties.
func MaxByValue(cards []Card) (Card, bool) {
	if len(cards) == 0 {
		return Card{}, false
	}
	best := cards[0]
	for _, c := range cards[1:] {
		if c.Value() > best.Value() {
			best = c
		}
	}
	return best, true
}
