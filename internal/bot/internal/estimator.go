package internal

import (
	"context"
	"math/rand"

	"golang.org/x/sync/errgroup"

	"hokm/internal/domain"
)

// EstimatorConfig bounds the Monte-Carlo work for one decision.
type EstimatorConfig struct {
	// Simulations is the playout budget per candidate.
	Simulations int
	Workers     int
	// MaxClones caps candidates x simulations. Zero disables the cap.
	MaxClones int
	Leader    LeaderMode
	Seed      int64
}

// Budget returns the per-candidate playout count after applying the clone cap.
func (c EstimatorConfig) Budget(candidates int) int {
	per := c.Simulations
	if candidates > 0 && c.MaxClones > 0 && per*candidates > c.MaxClones {
		per = c.MaxClones / candidates
		if per < 1 {
			per = 1
		}
	}
	return per
}

type job struct {
	candidate int
	playouts  int
	seed      int64
}

// EstimateWinRates runs independent random playouts for every candidate card
// of playerID and reports how often playerID's team won. r is only read.
// Every job owns its clone and rng, so results do not depend on scheduling.
func EstimateWinRates(ctx context.Context, r *domain.Round, playerID int, candidates []domain.Card, cfg EstimatorConfig) ([]Estimate, error) {
	p, err := r.Player(playerID)
	if err != nil {
		return nil, err
	}
	team := p.Team
	per := cfg.Budget(len(candidates))
	workers := cfg.Workers
	if workers < 1 {
		workers = 1
	}

	chunk := (per + workers - 1) / workers
	if chunk < 1 {
		chunk = 1
	}
	var jobs []job
	for i := range candidates {
		for done := 0; done < per; done += chunk {
			n := chunk
			if per-done < n {
				n = per - done
			}
			jobs = append(jobs, job{candidate: i, playouts: n, seed: cfg.Seed + int64(len(jobs))})
		}
	}

	wins := make([]int, len(jobs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, j := range jobs {
		i, j := i, j
		g.Go(func() error {
			n, err := runJob(gctx, r, playerID, team, candidates[j.candidate], j, cfg.Leader)
			wins[i] = n
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make([]Estimate, len(candidates))
	for i, c := range candidates {
		out[i] = Estimate{Card: c}
	}
	for i, j := range jobs {
		out[j.candidate].Wins += wins[i]
		out[j.candidate].Playouts += j.playouts
	}
	return out, nil
}

func runJob(ctx context.Context, r *domain.Round, playerID int, team domain.Team, card domain.Card, j job, mode LeaderMode) (int, error) {
	rng := rand.New(rand.NewSource(j.seed))
	clone := AcquireClone(r)
	defer ReleaseClone(clone)

	wins := 0
	for k := 0; k < j.playouts; k++ {
		if err := ctx.Err(); err != nil {
			return wins, err
		}
		if k > 0 {
			CloneInto(clone, r)
		}
		if err := clone.PlayCard(playerID, card); err != nil {
			return wins, err
		}
		leader, err := CompleteTrickRandomly(rng, clone)
		if err != nil {
			return wins, err
		}
		won, err := SimulateRandomPlayout(rng, clone, mode, leader)
		if err != nil {
			return wins, err
		}
		if won == team {
			wins++
		}
	}
	return wins, nil
}
