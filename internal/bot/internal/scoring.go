package internal

import "hokm/internal/domain"

// Estimate is the Monte-Carlo result for one candidate card.
type Estimate struct {
	Card     domain.Card
	Wins     int
	Playouts int
}

// WinRate is the share of playouts the candidate's team won, in [0,1].
func (e Estimate) WinRate() float64 {
	if e.Playouts == 0 {
		return 0
	}
	return float64(e.Wins) / float64(e.Playouts)
}

// Best returns the estimate with the highest win rate. The earliest one wins ties.
func Best(estimates []Estimate) (Estimate, bool) {
	if len(estimates) == 0 {
		return Estimate{}, false
	}
	best := estimates[0]
	for _, e := range estimates[1:] {
		if e.WinRate() > best.WinRate() {
			best = e
		}
	}
	return best, true
}
