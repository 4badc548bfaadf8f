package bot

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"time"

	"github.com/heroiclabs/nakama-common/runtime"

	botinternal "hokm/internal/bot/internal"
	"hokm/internal/domain"
	"hokm/internal/logging"
)

// MonteCarloBot picks the candidate with the best win rate over random
// playouts, and falls back to the heuristic pipeline when there is nothing to
// compare or the search is cut short.
type MonteCarloBot struct {
	Tuning    MonteCarloTuning
	Heuristic *HeuristicBot
	Logger    runtime.Logger

	mu  sync.Mutex
	rng *rand.Rand
}

// NewMonteCarloBot seeds playouts from rng; a nil rng is seeded from the clock.
func NewMonteCarloBot(tuning MonteCarloTuning, rng *rand.Rand, logger runtime.Logger) *MonteCarloBot {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if logger == nil {
		logger = logging.Nop()
	}
	return &MonteCarloBot{
		Tuning:    tuning,
		Heuristic: NewHeuristicBot(logger),
		Logger:    logger,
		rng:       rng,
	}
}

func (b *MonteCarloBot) ChooseCard(ctx context.Context, round *domain.Round, playerID int) (domain.Card, error) {
	cands, err := botinternal.Candidates(round, playerID)
	if err != nil {
		return domain.Card{}, err
	}
	if len(cands) == 1 {
		return cands[0], nil
	}
	if b.Tuning.Simulations <= 0 {
		return b.Heuristic.choose(round, playerID, cands)
	}

	if b.Tuning.DecisionTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, b.Tuning.DecisionTimeout)
		defer cancel()
	}

	cfg := botinternal.EstimatorConfig{
		Simulations: b.Tuning.Simulations,
		Workers:     b.Tuning.Workers,
		MaxClones:   b.Tuning.MaxClonesPerDecision,
		Leader:      b.Tuning.Leader,
		Seed:        b.nextSeed(),
	}
	start := time.Now()
	estimates, err := botinternal.EstimateWinRates(ctx, round, playerID, cands, cfg)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			b.Logger.Warn("MonteCarloBot: player %d search stopped, using heuristic: %v", playerID, err)
			return b.Heuristic.choose(round, playerID, cands)
		}
		return domain.Card{}, err
	}

	best, _ := botinternal.Best(estimates)
	b.Logger.WithFields(map[string]interface{}{
		"candidates": len(cands),
		"playouts":   cfg.Budget(len(cands)),
		"elapsed":    time.Since(start).String(),
	}).Debug("MonteCarloBot: player %d plays %s (win rate %.2f)", playerID, best.Card, best.WinRate())
	return best.Card, nil
}

func (b *MonteCarloBot) nextSeed() int64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.rng.Int63()
}
