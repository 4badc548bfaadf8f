package domain

import "fmt"

// LedSuit returns the suit of the first card of the trick, if any.
func LedSuit(trick []Play) (Suit, bool) {
	if len(trick) == 0 {
		return 0, false
	}
	return trick[0].Card.Suit, true
}

// LegalPlays returns the cards a player may play into the trick.
// The led suit must be followed when held; otherwise any card is legal.
// The same rule applies whether or not trump was led.
func LegalPlays(hand []Card, trick []Play) []Card {
	led, ok := LedSuit(trick)
	if ok {
		if same := FilterSuit(hand, led); len(same) > 0 {
			return same
		}
	}
	return append([]Card(nil), hand...)
}

// CheckPlay validates a play of card from hand into trick.
func CheckPlay(hand []Card, trick []Play, card Card) error {
	if !ContainsCard(hand, card) {
		return fmt.Errorf("%w: %s not in hand", ErrIllegalPlay, card)
	}
	led, ok := LedSuit(trick)
	if ok && card.Suit != led && HasSuit(hand, led) {
		return fmt.Errorf("%w: must follow %s", ErrIllegalPlay, led)
	}
	return nil
}

// TrickWinner determines who takes the (possibly partial) trick.
// With any trump present the highest trump wins; otherwise the highest card of the led suit.
func TrickWinner(trick []Play, hokm *Suit) (int, error) {
	if len(trick) == 0 {
		return 0, fmt.Errorf("%w: no cards in trick", ErrInvalidState)
	}
	if hokm != nil {
		best := -1
		for i, p := range trick {
			if p.Card.Suit != *hokm {
				continue
			}
			if best < 0 || p.Card.Value() > trick[best].Card.Value() {
				best = i
			}
		}
		if best >= 0 {
			return trick[best].PlayerID, nil
		}
	}
	led := trick[0].Card.Suit
	best := 0
	for i, p := range trick {
		if p.Card.Suit == led && p.Card.Value() > trick[best].Card.Value() {
			best = i
		}
	}
	return trick[best].PlayerID, nil
}

// PickTrumpFromFive chooses trump from the dealer's opening cards: the suit with the
// largest sum of card values. Ties go to the suit listed first in AllSuits.
func PickTrumpFromFive(cards []Card) Suit {
	var sums [len(AllSuits)]float64
	for _, c := range cards {
		sums[c.Suit] += c.Value()
	}
	best := AllSuits[0]
	for _, s := range AllSuits[1:] {
		if sums[s] > sums[best] {
			best = s
		}
	}
	return best
}
