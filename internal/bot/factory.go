package bot

import (
	"fmt"
	"math/rand"

	"github.com/heroiclabs/nakama-common/runtime"
)

// NewBrain creates a new AI brain based on the specified level.
func NewBrain(level BotLevel, tuning MonteCarloTuning, rng *rand.Rand, logger runtime.Logger) (Brain, error) {
	switch level {
	case BotLevelRandom:
		return NewRandomBot(rng), nil
	case BotLevelHeuristic:
		return NewHeuristicBot(logger), nil
	case BotLevelMonteCarlo:
		return NewMonteCarloBot(tuning, rng, logger), nil
	default:
		return nil, fmt.Errorf("unknown bot level: %d", level)
	}
}
