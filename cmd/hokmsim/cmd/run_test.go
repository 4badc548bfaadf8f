package cmd

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRunCommandJSON(t *testing.T) {
	root := NewRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs([]string{"run", "--rounds", "4", "--level", "heuristic", "--seed", "3", "--json", "--log-level", "error"})

	require.NoError(t, root.Execute())

	var report map[string]float64
	require.NoError(t, json.Unmarshal(out.Bytes(), &report))
	require.Equal(t, float64(4), report["rounds"])
	require.Equal(t, float64(4), report["team_a_wins"]+report["team_b_wins"])
}

func TestRunCommandRejectsUnknownLevel(t *testing.T) {
	root := NewRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"run", "--rounds", "1", "--level", "grandmaster"})

	require.Error(t, root.Execute())
}
