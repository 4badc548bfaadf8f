package sim

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/heroiclabs/nakama-common/runtime"

	"hokm/internal/app"
	"hokm/internal/bot"
	"hokm/internal/config"
	"hokm/internal/domain"
	"hokm/internal/logging"
)

// RoundResult describes one finished round.
type RoundResult struct {
	ID           string
	Winner       domain.Team
	Tricks       [2]int
	TricksPlayed int
	Hokm         domain.Suit
	DealerID     int
}

// Runner plays whole rounds with an agent at every seat. The human seat, if
// any, is driven by a random bot that also names trump when it deals.
type Runner struct {
	svc    *app.Service
	round  *domain.Round
	agents [domain.NumSeats]*bot.Agent
	human  *bot.RandomBot
	logger runtime.Logger

	// OnEvent, when set, receives every event the engine emits.
	OnEvent func(app.Event)
}

// NewRunner builds the service, round and agents described by cfg.
func NewRunner(cfg config.GameConfig, logger runtime.Logger) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = logging.Nop()
	}
	level, err := bot.ParseBotLevel(cfg.BotLevel)
	if err != nil {
		return nil, err
	}
	tuning, err := bot.TuningFromConfig(cfg)
	if err != nil {
		return nil, err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	svc := app.NewService(rand.New(rand.NewSource(seed)), logger)
	r := svc.NewRound(cfg.HumanSeat, cfg.TargetTricks)

	run := &Runner{svc: svc, round: r, logger: logger}
	for i := range r.Players {
		p := &r.Players[i]
		rng := rand.New(rand.NewSource(seed + int64(p.ID)))
		var strategy bot.Brain
		if p.IsHuman {
			run.human = bot.NewRandomBot(rng)
			strategy = run.human
		} else {
			strategy, err = bot.NewBrain(level, tuning, rng, logger.WithField("player", p.ID))
			if err != nil {
				return nil, err
			}
		}
		run.agents[i] = &bot.Agent{ID: p.ID, Name: p.Name, Strategy: strategy}
	}

	logger.Info("NewRunner: seed %d, level %s, human seat %d, %d playouts per candidate", seed, level, cfg.HumanSeat, tuning.Simulations)
	return run, nil
}

// Round exposes the round the runner plays on.
func (run *Runner) Round() *domain.Round {
	return run.round
}

// PlayRound deals and plays one round to completion. The dealer leads the first
// trick and each trick's winner leads the next.
func (run *Runner) PlayRound(ctx context.Context) (RoundResult, error) {
	r := run.round
	run.emit(run.svc.ResetForRound(r))

	evs, err := run.svc.DealInitial(r)
	if err != nil {
		return RoundResult{}, err
	}
	run.emit(evs)
	if r.Hokm == nil {
		suit := domain.AllSuits[0]
		if run.human != nil {
			suit = run.human.ChooseSuit()
		}
		evs, err := run.svc.SetHokm(r, suit)
		if err != nil {
			return RoundResult{}, err
		}
		run.emit(evs)
	}
	evs, err = run.svc.DealRemaining(r)
	if err != nil {
		return RoundResult{}, err
	}
	run.emit(evs)

	leader := r.DealerID
	for !r.Done() {
		if r.TricksPlayed() >= domain.TotalTricks {
			return RoundResult{}, fmt.Errorf("%w: no winner after %d tricks", domain.ErrInvalidState, r.TricksPlayed())
		}
		id := leader
		for i := 0; i < domain.NumSeats; i++ {
			_, evs, err := run.agents[id-1].Play(ctx, run.svc, r)
			if err != nil {
				return RoundResult{}, err
			}
			run.emit(evs)
			id = domain.NextID(id)
		}
		winner, evs, err := run.svc.ResolveTrick(r)
		if err != nil {
			return RoundResult{}, err
		}
		run.emit(evs)
		leader = winner
	}

	team, _ := run.svc.Winner(r)
	return RoundResult{
		ID:           r.ID,
		Winner:       team,
		Tricks:       run.svc.Tally(r),
		TricksPlayed: r.TricksPlayed(),
		Hokm:         *r.Hokm,
		DealerID:     r.DealerID,
	}, nil
}

// Run plays n rounds and tallies the winners. Cancellation is checked between
// rounds; the rounds finished so far are returned with the context error.
func (run *Runner) Run(ctx context.Context, n int) (Result, error) {
	var res Result
	start := time.Now()
	for i := 0; i < n; i++ {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		rr, err := run.PlayRound(ctx)
		if err != nil {
			return res, fmt.Errorf("round %d: %w", i+1, err)
		}
		res.add(rr)
		run.logger.WithField("round", rr.ID).Info("Run: round %d won by team %s %d-%d (hokm %s, dealer %d)",
			i+1, rr.Winner, rr.Tricks[rr.Winner], rr.Tricks[rr.Winner.Other()], rr.Hokm.Name(), rr.DealerID)
	}
	res.Elapsed = time.Since(start)
	return res, nil
}

func (run *Runner) emit(evs []app.Event) {
	if run.OnEvent == nil {
		return
	}
	for _, ev := range evs {
		run.OnEvent(ev)
	}
}
