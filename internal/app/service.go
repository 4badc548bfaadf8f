package app

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"hokm/internal/domain"

	"github.com/google/uuid"
	"github.com/heroiclabs/nakama-common/runtime"
)

// Service contains the round use-cases operating on domain state: resetting,
// dealing, trump selection, plays and trick resolution.
type Service struct {
	rng    *rand.Rand
	logger runtime.Logger
}

// NewService constructs a Service with provided rng or a time-seeded default.
func NewService(rng *rand.Rand, logger runtime.Logger) *Service {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Service{rng: rng, logger: logger}
}

var (
	ErrRoundOver   = errors.New("round already decided")
	ErrHokmMissing = errors.New("hokm not chosen")
	ErrHokmPending = errors.New("human dealer must choose hokm")
)

// Rand exposes the service's randomness source so callers stay reproducible
// under a single seed.
func (s *Service) Rand() *rand.Rand {
	return s.rng
}

// NewRound creates a round with the given human seat (-1 for none) and trick target.
func (s *Service) NewRound(humanSeat, target int) *domain.Round {
	r := domain.NewRound(humanSeat)
	if target > 0 {
		r.Target = target
	}
	return r
}

// ResetForRound clears trick and history state, reshuffles, empties hands,
// picks a new dealer, clears trump and zeroes the tallies.
func (s *Service) ResetForRound(r *domain.Round) []Event {
	dealer := s.rng.Intn(domain.NumSeats) + 1
	r.Reset(domain.ShuffleDeck(s.rng, domain.NewDeck()), dealer)
	r.ID = uuid.NewString()

	s.logger.WithField("round", r.ID).Debug("ResetForRound: dealer is player %d", dealer)
	return []Event{{
		Kind:    EventRoundReset,
		RoundID: r.ID,
		Payload: RoundResetPayload{DealerID: dealer},
	}}
}

// DealInitial deals five cards to each player from a freshly shuffled deck.
// A bot dealer names trump from those five cards straight away; a human
// dealer's choice must arrive through SetHokm.
func (s *Service) DealInitial(r *domain.Round) ([]Event, error) {
	r.Reset(domain.ShuffleDeck(s.rng, domain.NewDeck()), r.DealerID)
	if err := r.Deal(domain.InitialDealSize); err != nil {
		return nil, fmt.Errorf("deal initial: %w", err)
	}

	events := s.handEvents(r)
	dealer := r.Dealer()
	if !dealer.IsHuman {
		suit := domain.PickTrumpFromFive(dealer.Hand)
		ev, err := s.SetHokm(r, suit)
		if err != nil {
			return nil, err
		}
		events = append(events, ev...)
	}
	return events, nil
}

// SetHokm fixes trump for the round. It is how a human dealer's choice enters the engine.
func (s *Service) SetHokm(r *domain.Round, suit domain.Suit) ([]Event, error) {
	if err := r.SetHokm(suit); err != nil {
		return nil, err
	}
	s.logger.WithField("round", r.ID).Debug("SetHokm: dealer %d named %s", r.DealerID, suit.Name())
	return []Event{{
		Kind:    EventHokmSelected,
		RoundID: r.ID,
		Payload: HokmSelectedPayload{DealerID: r.DealerID, Suit: suit},
	}}, nil
}

// DealRemaining deals the last eight cards to each player and sorts the
// human's hand for display.
func (s *Service) DealRemaining(r *domain.Round) ([]Event, error) {
	if r.Hokm == nil {
		if r.Dealer().IsHuman {
			return nil, fmt.Errorf("deal remaining: %w: %w", domain.ErrInvalidState, ErrHokmPending)
		}
		return nil, fmt.Errorf("deal remaining: %w: %w", domain.ErrInvalidState, ErrHokmMissing)
	}
	if err := r.Deal(domain.RemainingDealSize); err != nil {
		return nil, fmt.Errorf("deal remaining: %w", err)
	}
	if human, ok := r.Human(); ok {
		domain.SortHand(human.Hand, r.Hokm)
	}
	return s.handEvents(r), nil
}

// PlayCard commits a play. Illegal plays are rejected and leave the round untouched.
func (s *Service) PlayCard(r *domain.Round, playerID int, card domain.Card) ([]Event, error) {
	if r.Done() {
		return nil, fmt.Errorf("play card: %w: %w", domain.ErrInvalidState, ErrRoundOver)
	}
	if r.Hokm == nil {
		return nil, fmt.Errorf("play card: %w: %w", domain.ErrInvalidState, ErrHokmMissing)
	}
	if err := r.PlayCard(playerID, card); err != nil {
		s.logger.WithField("round", r.ID).Warn("PlayCard: rejected %s from player %d: %v", card, playerID, err)
		return nil, err
	}
	return []Event{{
		Kind:    EventCardPlayed,
		RoundID: r.ID,
		Payload: CardPlayedPayload{PlayerID: playerID, Card: card},
	}}, nil
}

// ResolveTrick awards the current trick and reports the winner. When the trick
// decides the round, a round-ended event follows.
func (s *Service) ResolveTrick(r *domain.Round) (int, []Event, error) {
	cards := append([]domain.Play(nil), r.Trick...)
	winner, err := r.ResolveTrick()
	if err != nil {
		return 0, nil, fmt.Errorf("resolve trick: %w", err)
	}

	logger := s.logger.WithField("round", r.ID)
	logger.Debug("ResolveTrick: player %d takes trick %d (A=%d B=%d)", winner, r.TricksPlayed(), r.Tricks[domain.TeamA], r.Tricks[domain.TeamB])

	events := []Event{{
		Kind:    EventTrickResolved,
		RoundID: r.ID,
		Payload: TrickResolvedPayload{WinnerID: winner, Cards: cards, Tricks: r.Tricks},
	}}
	if team, ok := r.Winner(); ok {
		logger.Info("ResolveTrick: team %s wins the round %d-%d", team, r.Tricks[team], r.Tricks[team.Other()])
		events = append(events, Event{
			Kind:    EventRoundEnded,
			RoundID: r.ID,
			Payload: RoundEndedPayload{Winner: team, Tricks: r.Tricks},
		})
	}
	return winner, events, nil
}

// EvaluateTrickWinnerPreview names who currently takes the trick in progress.
func (s *Service) EvaluateTrickWinnerPreview(r *domain.Round) (int, error) {
	return r.TrickWinnerPreview()
}

// Tally returns the tricks won so far per team.
func (s *Service) Tally(r *domain.Round) [2]int {
	return r.Tricks
}

// Winner reports the team that reached the target, once one has.
func (s *Service) Winner(r *domain.Round) (domain.Team, bool) {
	return r.Winner()
}

func (s *Service) handEvents(r *domain.Round) []Event {
	events := make([]Event, 0, domain.NumSeats)
	for i := range r.Players {
		p := &r.Players[i]
		events = append(events, Event{
			Kind:       EventHandDealt,
			RoundID:    r.ID,
			Payload:    HandDealtPayload{PlayerID: p.ID, Hand: append([]domain.Card(nil), p.Hand...)},
			Recipients: []int{p.ID},
		})
	}
	return events
}
