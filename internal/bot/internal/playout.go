package internal

import (
	"fmt"
	"math/rand"
	"sync"

	"hokm/internal/domain"
)

// LeaderMode decides who leads each trick of a random continuation.
type LeaderMode int

const (
	// LeaderFixed starts every continuation trick at seat 0.
	LeaderFixed LeaderMode = iota
	// LeaderWinner lets the winner of the previous trick lead.
	LeaderWinner
)

func (m LeaderMode) String() string {
	if m == LeaderWinner {
		return "winner"
	}
	return "fixed"
}

// ParseLeaderMode maps a configuration value to a LeaderMode.
func ParseLeaderMode(s string) (LeaderMode, error) {
	switch s {
	case "", "fixed":
		return LeaderFixed, nil
	case "winner":
		return LeaderWinner, nil
	}
	return LeaderFixed, fmt.Errorf("unknown playout leader %q", s)
}

var clonePool = sync.Pool{
	New: func() any { return &domain.Round{} },
}

// AcquireClone returns a pooled deep copy of src. Hand it back with ReleaseClone.
func AcquireClone(src *domain.Round) *domain.Round {
	dst := clonePool.Get().(*domain.Round)
	CloneInto(dst, src)
	return dst
}

// ReleaseClone returns a clone to the pool.
func ReleaseClone(r *domain.Round) {
	if r != nil {
		clonePool.Put(r)
	}
}

// CloneInto overwrites dst with src, reusing dst's buffers.
func CloneInto(dst, src *domain.Round) {
	src.CopyInto(dst)
}

// RandomLegalPlay commits a uniformly random candidate card for playerID.
func RandomLegalPlay(rng *rand.Rand, r *domain.Round, playerID int) (domain.Card, error) {
	cards, err := Candidates(r, playerID)
	if err != nil {
		return domain.Card{}, err
	}
	card := cards[rng.Intn(len(cards))]
	if err := r.PlayCard(playerID, card); err != nil {
		return domain.Card{}, err
	}
	return card, nil
}

// CompleteTrickRandomly fills the remaining seats of the trick in seat order
// after the last player to act, then resolves it and returns the winner.
func CompleteTrickRandomly(rng *rand.Rand, r *domain.Round) (int, error) {
	if len(r.Trick) == 0 {
		return 0, fmt.Errorf("%w: no trick in progress", domain.ErrInvalidState)
	}
	for len(r.Trick) < domain.NumSeats {
		next, _ := r.NextToAct()
		if _, err := RandomLegalPlay(rng, r, next); err != nil {
			return 0, err
		}
	}
	return r.ResolveTrick()
}

// SimulateRandomPlayout plays random tricks until a team reaches the target or
// the hands run out, and returns the winning team. leader is the first trick's
// leader under LeaderWinner and is ignored under LeaderFixed. Tricks already
// won in r count towards the result.
func SimulateRandomPlayout(rng *rand.Rand, r *domain.Round, mode LeaderMode, leader int) (domain.Team, error) {
	if mode == LeaderFixed || leader < 1 || leader > domain.NumSeats {
		leader = 1
	}
	for !r.Done() && len(r.Players[0].Hand) > 0 {
		id := leader
		for i := 0; i < domain.NumSeats; i++ {
			if _, err := RandomLegalPlay(rng, r, id); err != nil {
				return domain.TeamB, err
			}
			id = domain.NextID(id)
		}
		winner, err := r.ResolveTrick()
		if err != nil {
			return domain.TeamB, err
		}
		if mode == LeaderWinner {
			leader = winner
		}
	}
	if team, ok := r.Winner(); ok {
		return team, nil
	}
	if r.Tricks[domain.TeamA] > r.Tricks[domain.TeamB] {
		return domain.TeamA, nil
	}
	return domain.TeamB, nil
}
