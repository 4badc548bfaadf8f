package sim

import (
	"fmt"
	"time"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"hokm/internal/domain"
)

// Result is the tally of a simulation run.
type Result struct {
	TeamAWins int
	TeamBWins int
	Rounds    int
	Tricks    int
	Elapsed   time.Duration
}

func (r *Result) add(rr RoundResult) {
	r.Rounds++
	r.Tricks += rr.TricksPlayed
	if rr.Winner == domain.TeamA {
		r.TeamAWins++
	} else {
		r.TeamBWins++
	}
}

// WinRate returns team A's share of the rounds played.
func (r Result) WinRate() float64 {
	if r.Rounds == 0 {
		return 0
	}
	return float64(r.TeamAWins) / float64(r.Rounds)
}

func (r Result) String() string {
	return fmt.Sprintf("Team A: %d wins, Team B: %d wins over %d rounds", r.TeamAWins, r.TeamBWins, r.Rounds)
}

// JSON renders the result as a protobuf Struct in its canonical JSON form.
func (r Result) JSON() ([]byte, error) {
	s, err := structpb.NewStruct(map[string]interface{}{
		"team_a_wins":     r.TeamAWins,
		"team_b_wins":     r.TeamBWins,
		"rounds":          r.Rounds,
		"tricks":          r.Tricks,
		"team_a_win_rate": r.WinRate(),
		"elapsed_ms":      r.Elapsed.Milliseconds(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build report: %w", err)
	}
	return (&protojson.MarshalOptions{EmitUnpopulated: true, Multiline: true}).Marshal(s)
}
