package sim

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"hokm/internal/app"
	"hokm/internal/config"
	"hokm/internal/domain"
	"hokm/internal/logging"
)

func testConfig(level string) config.GameConfig {
	cfg := config.Default()
	cfg.BotLevel = level
	cfg.Simulations = 3
	cfg.Workers = 2
	cfg.Seed = 17
	return cfg
}

func TestPlayRound(t *testing.T) {
	for _, level := range []string{"random", "heuristic", "montecarlo"} {
		t.Run(level, func(t *testing.T) {
			run, err := NewRunner(testConfig(level), logging.Nop())
			require.NoError(t, err)

			counts := map[app.EventKind]int{}
			run.OnEvent = func(ev app.Event) { counts[ev.Kind]++ }

			for i := 0; i < 3; i++ {
				rr, err := run.PlayRound(context.Background())
				require.NoError(t, err)

				require.Equal(t, domain.DefaultTargetTricks, rr.Tricks[rr.Winner])
				require.LessOrEqual(t, rr.Tricks[rr.Winner.Other()], domain.DefaultTargetTricks-1)
				require.LessOrEqual(t, rr.TricksPlayed, domain.TotalTricks)
				require.Equal(t, rr.Tricks[0]+rr.Tricks[1], rr.TricksPlayed)
				require.Len(t, run.Round().Cards(), domain.DeckSize)
				require.NotEmpty(t, rr.ID)
			}
			require.Equal(t, 3, counts[app.EventRoundEnded])
			require.Equal(t, 3, counts[app.EventHokmSelected])
		})
	}
}

func TestHumanDealerGetsRandomSuit(t *testing.T) {
	cfg := testConfig("heuristic")
	run, err := NewRunner(cfg, logging.Nop())
	require.NoError(t, err)

	humanDealt := false
	for i := 0; i < 40; i++ {
		rr, err := run.PlayRound(context.Background())
		require.NoError(t, err)
		if rr.DealerID == cfg.HumanSeat+1 {
			humanDealt = true
		}
	}
	require.True(t, humanDealt, "seed should let the human deal at least once")
}

func TestRunTalliesRounds(t *testing.T) {
	run, err := NewRunner(testConfig("heuristic"), logging.Nop())
	require.NoError(t, err)

	res, err := run.Run(context.Background(), 10)
	require.NoError(t, err)
	require.Equal(t, 10, res.Rounds)
	require.Equal(t, res.Rounds, res.TeamAWins+res.TeamBWins)
	require.GreaterOrEqual(t, res.Tricks, 10*domain.DefaultTargetTricks)

	out, err := res.JSON()
	require.NoError(t, err)
	var decoded map[string]float64
	require.NoError(t, json.Unmarshal(out, &decoded))
	require.Equal(t, float64(res.TeamAWins), decoded["team_a_wins"])
	require.Equal(t, float64(10), decoded["rounds"])
}

func TestRunIsReproducible(t *testing.T) {
	a, err := NewRunner(testConfig("montecarlo"), logging.Nop())
	require.NoError(t, err)
	b, err := NewRunner(testConfig("montecarlo"), logging.Nop())
	require.NoError(t, err)

	ra, err := a.Run(context.Background(), 3)
	require.NoError(t, err)
	rb, err := b.Run(context.Background(), 3)
	require.NoError(t, err)
	require.Equal(t, ra.TeamAWins, rb.TeamAWins)
	require.Equal(t, ra.Tricks, rb.Tricks)
}

func TestRunStopsWhenCancelled(t *testing.T) {
	run, err := NewRunner(testConfig("random"), logging.Nop())
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := run.Run(ctx, 5)
	require.ErrorIs(t, err, context.Canceled)
	require.Zero(t, res.Rounds)
}

func TestNewRunnerRejectsBadConfig(t *testing.T) {
	cfg := testConfig("grandmaster")
	_, err := NewRunner(cfg, nil)
	require.Error(t, err)

	cfg = testConfig("random")
	cfg.PlayoutLeader = "dealer"
	_, err = NewRunner(cfg, nil)
	require.Error(t, err)
}
