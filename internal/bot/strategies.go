package bot

import (
	"context"
	"math/rand"
	"sync"
	"time"

	botinternal "hokm/internal/bot/internal"
	"hokm/internal/domain"
)

// RandomBot plays a uniformly random legal card. The simulation driver seats
// it in place of the human.
type RandomBot struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandomBot creates a RandomBot; a nil rng is seeded from the clock.
func NewRandomBot(rng *rand.Rand) *RandomBot {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &RandomBot{rng: rng}
}

func (b *RandomBot) ChooseCard(_ context.Context, round *domain.Round, playerID int) (domain.Card, error) {
	cards, err := botinternal.Candidates(round, playerID)
	if err != nil {
		return domain.Card{}, err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	return cards[b.rng.Intn(len(cards))], nil
}

// ChooseSuit names a random trump suit, standing in for a human dealer.
func (b *RandomBot) ChooseSuit() domain.Suit {
	b.mu.Lock()
	defer b.mu.Unlock()
	return domain.AllSuits[b.rng.Intn(len(domain.AllSuits))]
}
