package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tifye/simlab/sim"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCommand(log.New(io.Discard))
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestDiceJSON(t *testing.T) {
	out, err := execute(t, "dice", "--epoch", "123456789", "--runs", "3", "--format", "json")
	require.NoError(t, err)

	var body struct {
		Epoch uint32 `json:"epoch"`
		Runs  []struct {
			Summary struct {
				NetGain   float64 `json:"netGain"`
				HouseWins int     `json:"houseWins"`
			} `json:"summary"`
		} `json:"runs"`
		Aggregate sim.Aggregate `json:"aggregate"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &body))
	assert.Equal(t, uint32(123456789), body.Epoch)
	require.Len(t, body.Runs, 3)
	assert.Equal(t, 90.0, body.Runs[0].Summary.NetGain)
	assert.Equal(t, 89, body.Runs[1].Summary.HouseWins)
	assert.Equal(t, 3, body.Aggregate.Runs)
}

func TestShopCSV(t *testing.T) {
	out, err := execute(t, "shop", "--epoch", "123456789", "--runs", "2", "--run", "1", "--hours", "1", "--format", "csv")
	require.NoError(t, err)
	assert.Equal(t, "hour,customers,items,revenue,cost,profit\n1,2,4,300,200,100\n", out)
}

func TestEnvironmentOverridesDefault(t *testing.T) {
	t.Setenv("SIMLAB_EGG_PRICE", "2")
	t.Setenv("SIMLAB_EPOCH", "123456789")
	out, err := execute(t, "farm", "--runs", "1", "--days", "1", "--format", "csv")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	// Day one of run 0 sells one egg and one chick.
	assert.Equal(t, "1,3,1,1,1,0,7,7", lines[1])
}

func TestEnvironmentEpochMustParse(t *testing.T) {
	for _, raw := range []string{"abc", "-1", "4294967296"} {
		t.Run(raw, func(t *testing.T) {
			t.Setenv("SIMLAB_EPOCH", raw)
			_, err := execute(t, "dice", "--runs", "1")
			var verr *sim.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, "epoch", verr.Param)
		})
	}
}

func TestTableOutput(t *testing.T) {
	out, err := execute(t, "deposit", "fixed", "--lang", "en")
	require.NoError(t, err)
	assert.Contains(t, out, "deposit-fixed")
	assert.Contains(t, out, "finalCapital")
	assert.Contains(t, out, "final capital: Bs 19,053.56")
}

func TestGeneratorTable(t *testing.T) {
	out, err := execute(t, "lcg", "--seed", "0", "--k", "0", "--c", "1", "--power", "4", "--count", "3", "--period", "100")
	require.NoError(t, err)
	assert.Contains(t, out, "a = 1, c = 1, m = 16")
	assert.Contains(t, out, "Hull–Dobell OK")
	assert.Contains(t, out, "0.2000")
	assert.Contains(t, out, "period: 16")
}

func TestInvalidArguments(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		param string
	}{
		{"zero games", []string{"dice", "--epoch", "1", "--games", "0"}, "games"},
		{"too many runs", []string{"inventory", "--epoch", "1", "--runs", "31"}, "runs"},
		{"run out of range", []string{"farm", "--epoch", "1", "--runs", "2", "--run", "2"}, "run"},
		{"bad format", []string{"shop", "--epoch", "1", "--format", "xml"}, "format"},
		{"bad seed", []string{"mcg", "--seed", "five"}, "seed"},
		{"negative c", []string{"lcg", "--c", "-1"}, "c"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			var verr *sim.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.param, verr.Param)
		})
	}
}
