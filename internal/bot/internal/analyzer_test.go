package internal

import (
	"testing"

	"hokm/internal/domain"
)

func TestAnalyzeTrick(t *testing.T) {
	tests := []struct {
		name        string
		trick       []domain.Play
		player      int
		wantLead    bool
		wantPartner bool
		wantTrump   bool
		wantHighest domain.Card
	}{
		{
			name:     "empty trick",
			player:   1,
			wantLead: true,
		},
		{
			name: "partner holds the trick",
			trick: []domain.Play{
				{PlayerID: 1, Card: c(domain.Ace, domain.Heart)},
				{PlayerID: 2, Card: c(domain.Two, domain.Heart)},
			},
			player:      3,
			wantPartner: true,
		},
		{
			name: "partner trumped but was overtrumped",
			trick: []domain.Play{
				{PlayerID: 2, Card: c(domain.Ace, domain.Heart)},
				{PlayerID: 3, Card: c(domain.Two, domain.Spade)},
				{PlayerID: 4, Card: c(domain.Five, domain.Spade)},
			},
			player:      1,
			wantPartner: true,
			wantTrump:   true,
			wantHighest: c(domain.Five, domain.Spade),
		},
		{
			name: "opponent winning",
			trick: []domain.Play{
				{PlayerID: 1, Card: c(domain.Ten, domain.Heart)},
				{PlayerID: 2, Card: c(domain.King, domain.Heart)},
			},
			player: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := domain.NewRound(-1)
			_ = r.SetHokm(domain.Spade)
			r.Trick = tt.trick
			got := AnalyzeTrick(r, tt.player)
			if got.Leading != tt.wantLead || got.PartnerLikelyWinner != tt.wantPartner || got.HasTrumpInTrick != tt.wantTrump {
				t.Fatalf("AnalyzeTrick = %+v", got)
			}
			if tt.wantTrump && got.HighestTrump != tt.wantHighest {
				t.Fatalf("highest trump = %s, want %s", got.HighestTrump, tt.wantHighest)
			}
		})
	}
}
