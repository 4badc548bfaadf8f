package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"hokm/internal/config"
	"hokm/internal/logging"
	"hokm/internal/sim"
)

const (
	flagConfig   = "config"
	flagRounds   = "rounds"
	flagSims     = "sims"
	flagSeed     = "seed"
	flagWorkers  = "workers"
	flagLevel    = "level"
	flagJSON     = "json"
	flagLogLevel = "log-level"
)

// NewRunCmd plays a batch of rounds and prints the tally.
func NewRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Play N rounds and report how often each team won",
		Args:  cobra.NoArgs,
		RunE:  runSimulation,
	}
	f := cmd.Flags()
	f.String(flagConfig, "", "path to a JSON game config")
	f.Int(flagRounds, 0, "number of rounds to play")
	f.Int(flagSims, 0, "Monte-Carlo playouts per candidate card")
	f.Int64(flagSeed, 0, "random seed, 0 seeds from the clock")
	f.Int(flagWorkers, 0, "parallel playout workers")
	f.String(flagLevel, "", "bot level: random, heuristic or montecarlo")
	f.Bool(flagJSON, false, "print the result as JSON")
	f.String(flagLogLevel, "", "log level: debug, info, warn or error")
	return cmd
}

func runSimulation(cmd *cobra.Command, _ []string) error {
	f := cmd.Flags()
	path, _ := f.GetString(flagConfig)
	if err := config.LoadGameConfig(path); err != nil {
		return err
	}
	cfg := config.GetGameConfig()

	if f.Changed(flagRounds) {
		cfg.Rounds, _ = f.GetInt(flagRounds)
	}
	if f.Changed(flagSims) {
		cfg.Simulations, _ = f.GetInt(flagSims)
	}
	if f.Changed(flagSeed) {
		cfg.Seed, _ = f.GetInt64(flagSeed)
	}
	if f.Changed(flagWorkers) {
		cfg.Workers, _ = f.GetInt(flagWorkers)
	}
	if f.Changed(flagLevel) {
		cfg.BotLevel, _ = f.GetString(flagLevel)
	}
	if f.Changed(flagLogLevel) {
		cfg.LogLevel, _ = f.GetString(flagLogLevel)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := logging.New(cfg.LogLevel, cmd.ErrOrStderr())
	runner, err := sim.NewRunner(cfg, logger)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	res, runErr := runner.Run(ctx, cfg.Rounds)
	if runErr != nil {
		logger.Warn("run: stopped after %d rounds: %v", res.Rounds, runErr)
	}

	asJSON, _ := f.GetBool(flagJSON)
	if asJSON {
		out, err := res.JSON()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
	} else {
		fmt.Fprintln(cmd.OutOrStdout(), res.String())
	}
	return runErr
}
