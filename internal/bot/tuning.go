package bot

import (
	"time"

	botinternal "hokm/internal/bot/internal"
	"hokm/internal/config"
)

// MonteCarloTuning bounds the lookahead of a MonteCarloBot.
type MonteCarloTuning struct {
	Simulations          int
	Workers              int
	MaxClonesPerDecision int
	DecisionTimeout      time.Duration
	Leader               botinternal.LeaderMode
}

// DefaultTuning runs 50 playouts per candidate on a single worker.
var DefaultTuning = MonteCarloTuning{
	Simulations:          50,
	Workers:              1,
	MaxClonesPerDecision: 20000,
	Leader:               botinternal.LeaderFixed,
}

// TuningFromConfig reads the Monte-Carlo settings out of the game config.
func TuningFromConfig(c config.GameConfig) (MonteCarloTuning, error) {
	leader, err := botinternal.ParseLeaderMode(c.PlayoutLeader)
	if err != nil {
		return MonteCarloTuning{}, err
	}
	return MonteCarloTuning{
		Simulations:          c.Simulations,
		Workers:              c.Workers,
		MaxClonesPerDecision: c.MaxClonesPerDecision,
		DecisionTimeout:      c.DecisionTimeout(),
		Leader:               leader,
	}, nil
}
