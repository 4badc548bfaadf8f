package app

import (
	"errors"
	"math/rand"
	"testing"

	"hokm/internal/domain"
	"hokm/internal/logging"
)

func newTestService(seed int64) *Service {
	return NewService(rand.New(rand.NewSource(seed)), logging.Nop())
}

func countKind(evs []Event, kind EventKind) int {
	n := 0
	for _, ev := range evs {
		if ev.Kind == kind {
			n++
		}
	}
	return n
}

func TestResetForRound(t *testing.T) {
	svc := newTestService(1)
	r := svc.NewRound(0, 7)
	r.Tricks = [2]int{3, 2}
	r.Played = append(r.Played, domain.Card{Rank: domain.Ace, Suit: domain.Heart})

	evs := svc.ResetForRound(r)
	if len(evs) != 1 || evs[0].Kind != EventRoundReset {
		t.Fatalf("events = %+v", evs)
	}
	if r.ID == "" || evs[0].RoundID != r.ID {
		t.Fatalf("round id not assigned: %q", r.ID)
	}
	if r.DealerID < 1 || r.DealerID > 4 {
		t.Fatalf("dealer = %d", r.DealerID)
	}
	if r.Hokm != nil || r.Tricks != [2]int{} || len(r.Played) != 0 || len(r.Deck) != domain.DeckSize {
		t.Fatalf("round not cleared: %+v", r)
	}
}

func TestDealInitialBotDealerPicksHokm(t *testing.T) {
	svc := newTestService(42)
	r := svc.NewRound(0, 7)
	svc.ResetForRound(r)
	r.DealerID = 2

	evs, err := svc.DealInitial(r)
	if err != nil {
		t.Fatalf("deal initial: %v", err)
	}
	if got := countKind(evs, EventHandDealt); got != 4 {
		t.Fatalf("hand events = %d, want 4", got)
	}
	if len(r.Deck) != 32 {
		t.Fatalf("deck = %d cards, want 32", len(r.Deck))
	}
	for _, p := range r.Players {
		if len(p.Hand) != domain.InitialDealSize {
			t.Fatalf("player %d holds %d cards", p.ID, len(p.Hand))
		}
	}
	if r.Hokm == nil {
		t.Fatalf("bot dealer did not choose hokm")
	}
	if want := domain.PickTrumpFromFive(r.Players[1].Hand); *r.Hokm != want {
		t.Fatalf("hokm = %s, want %s", *r.Hokm, want)
	}
	if countKind(evs, EventHokmSelected) != 1 {
		t.Fatalf("missing hokm event")
	}
}

func TestHumanDealerMustChooseHokm(t *testing.T) {
	svc := newTestService(7)
	r := svc.NewRound(0, 7)
	svc.ResetForRound(r)
	r.DealerID = 1

	if _, err := svc.DealInitial(r); err != nil {
		t.Fatalf("deal initial: %v", err)
	}
	if r.Hokm != nil {
		t.Fatalf("engine chose hokm for a human dealer")
	}
	_, err := svc.DealRemaining(r)
	if !errors.Is(err, ErrHokmPending) || !errors.Is(err, domain.ErrInvalidState) {
		t.Fatalf("deal remaining without hokm: %v", err)
	}

	if _, err := svc.SetHokm(r, domain.Diamond); err != nil {
		t.Fatalf("set hokm: %v", err)
	}
	if _, err := svc.SetHokm(r, domain.Club); !errors.Is(err, domain.ErrInvalidState) {
		t.Fatalf("hokm changed twice: %v", err)
	}
	if _, err := svc.DealRemaining(r); err != nil {
		t.Fatalf("deal remaining: %v", err)
	}
	if len(r.Deck) != 0 {
		t.Fatalf("deck not exhausted: %d", len(r.Deck))
	}

	hand := r.Players[0].Hand
	for i := 1; i < len(hand); i++ {
		prevTrump, curTrump := hand[i-1].Suit == domain.Diamond, hand[i].Suit == domain.Diamond
		if !prevTrump && curTrump {
			t.Fatalf("human hand not trump-first: %v", hand)
		}
		if prevTrump == curTrump && hand[i-1].Value() < hand[i].Value() {
			t.Fatalf("human hand not value-descending: %v", hand)
		}
	}
}

func TestPlayAndResolveTrick(t *testing.T) {
	svc := newTestService(3)
	r := svc.NewRound(-1, 7)
	svc.ResetForRound(r)
	if _, err := svc.DealInitial(r); err != nil {
		t.Fatalf("deal initial: %v", err)
	}
	if _, err := svc.DealRemaining(r); err != nil {
		t.Fatalf("deal remaining: %v", err)
	}

	id := r.DealerID
	for i := 0; i < domain.NumSeats; i++ {
		legal, err := r.LegalPlays(id)
		if err != nil {
			t.Fatalf("legal plays: %v", err)
		}
		evs, err := svc.PlayCard(r, id, legal[0])
		if err != nil {
			t.Fatalf("play: %v", err)
		}
		if len(evs) != 1 || evs[0].Kind != EventCardPlayed {
			t.Fatalf("events = %+v", evs)
		}
		id = domain.NextID(id)
	}

	winner, evs, err := svc.ResolveTrick(r)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if winner < 1 || winner > 4 {
		t.Fatalf("winner = %d", winner)
	}
	payload := evs[0].Payload.(TrickResolvedPayload)
	if payload.WinnerID != winner || len(payload.Cards) != 4 {
		t.Fatalf("payload = %+v", payload)
	}
	if r.TricksPlayed() != 1 {
		t.Fatalf("tricks played = %d", r.TricksPlayed())
	}
}

func TestPlayCardRejectsIllegalPlay(t *testing.T) {
	svc := newTestService(5)
	r := svc.NewRound(-1, 7)
	_ = r.SetHokm(domain.Spade)
	r.Players[0].Hand = []domain.Card{{Rank: domain.Two, Suit: domain.Heart}}
	r.Players[1].Hand = []domain.Card{{Rank: domain.Ace, Suit: domain.Heart}, {Rank: domain.Ace, Suit: domain.Spade}}

	if _, err := svc.PlayCard(r, 1, domain.Card{Rank: domain.Two, Suit: domain.Heart}); err != nil {
		t.Fatalf("lead: %v", err)
	}
	if _, err := svc.PlayCard(r, 2, domain.Card{Rank: domain.Ace, Suit: domain.Spade}); !errors.Is(err, domain.ErrIllegalPlay) {
		t.Fatalf("expected illegal play, got %v", err)
	}
}

func TestPlayCardAfterRoundOver(t *testing.T) {
	svc := newTestService(5)
	r := svc.NewRound(-1, 7)
	_ = r.SetHokm(domain.Spade)
	r.Tricks[domain.TeamA] = 7
	r.Players[0].Hand = []domain.Card{{Rank: domain.Two, Suit: domain.Heart}}

	if _, err := svc.PlayCard(r, 1, r.Players[0].Hand[0]); !errors.Is(err, ErrRoundOver) {
		t.Fatalf("expected ErrRoundOver, got %v", err)
	}
}

func TestResolveTrickEndsRound(t *testing.T) {
	svc := newTestService(9)
	r := svc.NewRound(-1, 7)
	_ = r.SetHokm(domain.Club)
	r.Tricks = [2]int{6, 5}
	plays := []domain.Play{
		{PlayerID: 1, Card: domain.Card{Rank: domain.Ace, Suit: domain.Club}},
		{PlayerID: 2, Card: domain.Card{Rank: domain.Two, Suit: domain.Club}},
		{PlayerID: 3, Card: domain.Card{Rank: domain.Three, Suit: domain.Club}},
		{PlayerID: 4, Card: domain.Card{Rank: domain.Four, Suit: domain.Club}},
	}
	for _, p := range plays {
		r.Players[p.PlayerID-1].Hand = []domain.Card{p.Card}
		if _, err := svc.PlayCard(r, p.PlayerID, p.Card); err != nil {
			t.Fatalf("play: %v", err)
		}
	}

	winner, evs, err := svc.ResolveTrick(r)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if winner != 1 {
		t.Fatalf("winner = %d, want 1", winner)
	}
	if countKind(evs, EventRoundEnded) != 1 {
		t.Fatalf("round end not reported: %+v", evs)
	}
	if team, ok := r.Winner(); !ok || team != domain.TeamA {
		t.Fatalf("Winner() = %s, %v", team, ok)
	}
}

func TestTrickWinnerPreviewAndTally(t *testing.T) {
	svc := newTestService(11)
	r := svc.NewRound(-1, 7)
	_ = r.SetHokm(domain.Spade)

	if _, err := svc.EvaluateTrickWinnerPreview(r); !errors.Is(err, domain.ErrInvalidState) {
		t.Fatalf("empty trick preview should fail, got %v", err)
	}

	r.Trick = []domain.Play{
		{PlayerID: 1, Card: domain.Card{Rank: domain.Ten, Suit: domain.Heart}},
		{PlayerID: 2, Card: domain.Card{Rank: domain.King, Suit: domain.Heart}},
		{PlayerID: 3, Card: domain.Card{Rank: domain.Ace, Suit: domain.Spade}},
	}
	before := len(r.Trick)
	got, err := svc.EvaluateTrickWinnerPreview(r)
	if err != nil || got != 3 {
		t.Fatalf("preview = %d, %v; want 3", got, err)
	}
	if len(r.Trick) != before {
		t.Fatalf("preview mutated the trick")
	}

	r.Tricks = [2]int{4, 2}
	if svc.Tally(r) != [2]int{4, 2} {
		t.Fatalf("tally = %v", svc.Tally(r))
	}
	if _, ok := svc.Winner(r); ok {
		t.Fatalf("no team has reached the target yet")
	}
}
