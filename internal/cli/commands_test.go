package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/uncross/cross"
	"github.com/katalvlaran/uncross/geom"
	"github.com/katalvlaran/uncross/tour"
	"github.com/katalvlaran/uncross/tourio"
)

const (
	bowtiePoints    = "0 0\n2 2\n2 0\n0 2\n"
	stuckPoints     = "0 0\n1 0\n1 0\n2 0\n"
	pentagramPoints = "0 10\n6 -8\n-10 3\n10 3\n-6 -8\n"
)

type result struct {
	stdout string
	stderr string
	err    error
}

// execute runs the command tree in isolation from any .env or UNCROSS_*
// variables of the host.
func execute(t *testing.T, stdin string, args ...string) result {
	t.Helper()
	for _, k := range []string{"UNCROSS_SEED", "UNCROSS_LOG_LEVEL", "UNCROSS_STRATEGY", "UNCROSS_ACCEPT"} {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}

	cmd := NewRootCommand()
	var out, errb bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errb)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(append([]string{"--env-file", filepath.Join(t.TempDir(), "none.env")}, args...))

	err := cmd.Execute()
	return result{stdout: out.String(), stderr: errb.String(), err: err}
}

func pointFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "points.txt")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func golden(t *testing.T) *goldie.Goldie {
	return goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
}

// decode parses a JSON envelope and returns its data as a map.
func decode(t *testing.T, stdout string) (Response, map[string]interface{}) {
	t.Helper()
	var resp Response
	require.NoError(t, json.Unmarshal([]byte(stdout), &resp), stdout)
	data, _ := resp.Data.(map[string]interface{})
	return resp, data
}

func TestClimb_TextGolden(t *testing.T) {
	r := execute(t, "", "climb", "--points", pointFile(t, bowtiePoints), "--strategy", "best")
	require.NoError(t, r.err)
	golden(t).Assert(t, "climb_bowtie", []byte(r.stdout))
}

func TestNeighbors_TextGolden(t *testing.T) {
	r := execute(t, "", "neighbors", "--points", pointFile(t, bowtiePoints))
	require.NoError(t, r.err)
	golden(t).Assert(t, "neighbors_bowtie", []byte(r.stdout))
}

func TestClimb_JSON(t *testing.T) {
	r := execute(t, "", "--format", "json", "climb", "-p", pointFile(t, pentagramPoints), "-s", "least")
	require.NoError(t, r.err)

	resp, data := decode(t, r.stdout)
	assert.Equal(t, "ok", resp.Status)
	id, err := uuid.Parse(resp.RunID)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), id.Version())

	assert.Equal(t, "climb/least", data["engine"])
	assert.Contains(t, []interface{}{"simple", "local-optimum"}, data["stop"])
	assert.Len(t, data["tour"], 5)

	// JSON logs on stderr carry the same run ID.
	assert.Contains(t, r.stderr, resp.RunID)
	assert.Contains(t, r.stderr, `"msg":"hill climbing started"`)
}

func TestClimb_Stdin(t *testing.T) {
	r := execute(t, bowtiePoints, "climb", "--points", "-", "--strategy", "4")
	require.NoError(t, r.err)
	assert.Contains(t, r.stdout, "Result: [ (0,0), (2,0), (2,2), (0,2), ]")
	assert.Contains(t, r.stdout, "stop: simple")
}

func TestClimb_StallIsNotAFailure(t *testing.T) {
	r := execute(t, "", "climb", "-p", pointFile(t, stuckPoints), "-s", "best")
	require.NoError(t, r.err)
	assert.Contains(t, r.stdout, "stop: stalled")
	assert.Contains(t, r.stderr, "stopped before the tour became simple")
}

func TestClimb_LocalOptimumIsLogged(t *testing.T) {
	r := execute(t, "", "climb", "-p", pointFile(t, stuckPoints), "-s", "least")
	require.NoError(t, r.err)
	assert.Contains(t, r.stdout, "stop: local-optimum")
	assert.Contains(t, r.stderr, "converged on a local optimum")
}

func TestClimb_MaxRounds(t *testing.T) {
	r := execute(t, "", "climb", "-p", pointFile(t, stuckPoints), "-s", "first", "--max-rounds", "3")
	require.NoError(t, r.err)
	assert.Contains(t, r.stdout, "rounds: 3\n")
	assert.Contains(t, r.stdout, "stop: max-rounds")
}

func TestClimb_ConfigFileStrategy(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "uncross.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("search:\n  strategy: first\n"), 0o644))

	r := execute(t, "", "--config", cfg, "climb", "-p", pointFile(t, bowtiePoints))
	require.NoError(t, r.err)
	assert.Contains(t, r.stdout, "Engine: climb/first")

	// The flag wins over the file.
	r = execute(t, "", "--config", cfg, "climb", "-p", pointFile(t, bowtiePoints), "-s", "random")
	require.NoError(t, r.err)
	assert.Contains(t, r.stdout, "Engine: climb/random")
}

func TestClimb_TraceAndSave(t *testing.T) {
	dir := t.TempDir()
	trace := filepath.Join(dir, "trace.jsonl")
	out := filepath.Join(dir, "tour.txt")

	r := execute(t, "", "--format", "json", "--trace", trace, "--out", out,
		"climb", "-p", pointFile(t, pentagramPoints), "-s", "first")
	require.NoError(t, r.err)
	resp, data := decode(t, r.stdout)
	assert.Equal(t, out, data["saved"])

	f, err := os.Open(trace)
	require.NoError(t, err)
	defer f.Close()
	entries, err := tourio.ReadTrace(f)
	require.NoError(t, err)
	require.NotEmpty(t, entries)
	assert.Equal(t, float64(len(entries)), data["rounds"])
	for i, e := range entries {
		assert.Equal(t, resp.RunID, e.RunID)
		assert.Equal(t, "climb/first", e.Engine)
		assert.Equal(t, i+1, e.Round)
	}
	assert.Equal(t, 0, entries[len(entries)-1].Crossings)

	saved, err := tourio.Load(out)
	require.NoError(t, err)
	tr, err := tour.New(saved)
	require.NoError(t, err)
	assert.True(t, cross.IsSimple(tr))
}

func TestAnneal_Always(t *testing.T) {
	r := execute(t, "", "anneal", "-p", pointFile(t, bowtiePoints), "--accept", "always")
	require.NoError(t, r.err)
	assert.Contains(t, r.stdout, "Engine: anneal/always")
	assert.Contains(t, r.stdout, "steps: 1\n")
	assert.Contains(t, r.stdout, "stop: simple")
}

func TestAnneal_Cools(t *testing.T) {
	r := execute(t, "", "--format", "json", "anneal", "-p", pointFile(t, stuckPoints),
		"--steps", "1", "--initial-temp", "10", "--cooling", "0.5", "--min-temp", "1")
	require.NoError(t, r.err)
	_, data := decode(t, r.stdout)
	// 10 → 5 → 2.5 → 1.25 → 0.625
	assert.Equal(t, float64(4), data["rounds"])
	assert.Equal(t, "cooled", data["stop"])
	assert.Equal(t, 0.625, data["final_temperature"])
}

func TestAnneal_BadSchedule(t *testing.T) {
	r := execute(t, "", "anneal", "-p", pointFile(t, bowtiePoints), "--cooling", "1.2")
	require.Error(t, r.err)
	assert.Equal(t, ExitFailure, ExitCode(r.err))
	assert.Contains(t, r.stdout, "Error [E002]")
}

func TestNearest(t *testing.T) {
	r := execute(t, "", "--format", "json", "nearest", "-p", pointFile(t, bowtiePoints), "--start", "0")
	require.NoError(t, r.err)
	_, data := decode(t, r.stdout)
	assert.Equal(t, true, data["simple"])
	assert.Equal(t, 8.0, data["perimeter"])

	r = execute(t, "", "nearest", "-p", pointFile(t, bowtiePoints), "--start", "9")
	require.Error(t, r.err)
	assert.Contains(t, r.stdout, "Error [E003]")
}

func TestNearest_RandomStart(t *testing.T) {
	r := execute(t, "", "nearest", "-n", "12", "-m", "20", "--seed", "5")
	require.NoError(t, r.err)
	assert.Contains(t, r.stdout, "Result: [ ")
}

func TestShuffle_Deterministic(t *testing.T) {
	path := pointFile(t, pentagramPoints)
	a := execute(t, "", "--seed", "9", "shuffle", "-p", path)
	b := execute(t, "", "--seed", "9", "shuffle", "-p", path)
	require.NoError(t, a.err)
	require.NoError(t, b.err)
	assert.Equal(t, a.stdout, b.stdout)
	assert.Contains(t, a.stdout, "Initial: [ (0,10), (6,-8), (-10,3), (10,3), (-6,-8), ]")
}

func TestGenerate_RoundTrip(t *testing.T) {
	out := filepath.Join(t.TempDir(), "gen.txt")
	r := execute(t, "", "--seed", "3", "-n", "10", "-m", "5", "-o", out, "generate")
	require.NoError(t, r.err)

	printed, err := tourio.Read(strings.NewReader(r.stdout))
	require.NoError(t, err)
	require.Len(t, printed, 10)
	assert.NoError(t, tourio.CheckBounds(printed, 5))

	saved, err := tourio.Load(out)
	require.NoError(t, err)
	assert.Equal(t, printed, saved)
}

func TestGenerate_InvalidCombination(t *testing.T) {
	r := execute(t, "", "-n", "9", "-m", "1", "generate")
	require.Error(t, r.err)
	assert.Equal(t, ExitFailure, ExitCode(r.err))
	assert.Contains(t, r.stdout, "Error [E001]")
}

func TestInputErrors(t *testing.T) {
	cases := []struct {
		name string
		args []string
	}{
		{"no source", []string{"climb"}},
		{"too few points", []string{"climb", "-p", pointFile(t, "0 0\n1 1\n")}},
		{"malformed", []string{"climb", "-p", pointFile(t, "0 0\n1\n2 2\n")}},
		{"out of bound", []string{"-m", "1", "climb", "-p", pointFile(t, bowtiePoints)}},
		{"zero bound", []string{"--bound", "0", "climb", "-p", pointFile(t, bowtiePoints)}},
		{"beyond MaxCoord", []string{"climb", "-p", pointFile(t, "0 0\n3000000000 0\n0 1\n")}},
		{"missing file", []string{"climb", "-p", filepath.Join(t.TempDir(), "nope")}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := execute(t, "", tc.args...)
			require.Error(t, r.err)
			assert.Equal(t, ExitFailure, ExitCode(r.err))
			assert.Contains(t, r.stdout, "Error [E001]")
			assert.True(t, Reported(r.err))
		})
	}
}

// TestBound_OnlyWhenGiven: without --bound manual points are not range checked
// beyond the coordinate limit.
func TestBound_OnlyWhenGiven(t *testing.T) {
	r := execute(t, "", "climb", "-p", pointFile(t, "0 0\n900 900\n900 0\n0 900\n"))
	require.NoError(t, r.err)

	r = execute(t, "", "-m", "900", "climb", "-p", pointFile(t, "0 0\n900 900\n900 0\n0 900\n"))
	require.NoError(t, r.err)
}

func TestInputErrors_JSON(t *testing.T) {
	r := execute(t, "", "--format", "json", "climb")
	require.Error(t, r.err)
	resp, _ := decode(t, r.stdout)
	assert.Equal(t, "error", resp.Status)
	require.NotNil(t, resp.Error)
	assert.Equal(t, ErrCodeInput, resp.Error.Code)
}

func TestGlobalErrors(t *testing.T) {
	r := execute(t, "", "--format", "yaml", "climb")
	require.Error(t, r.err)
	assert.Equal(t, ExitFailure, ExitCode(r.err))

	r = execute(t, "", "--log-level", "loud", "climb")
	require.Error(t, r.err)

	r = execute(t, "", "climb", "-s", "sideways", "-p", pointFile(t, bowtiePoints))
	require.Error(t, r.err)
	assert.Contains(t, r.stdout, "Error [E002]")
}

func TestReportStrings(t *testing.T) {
	pr := &PointsReport{Points: []geom.Point{{X: 1, Y: 2}, {X: -3, Y: 4}}}
	assert.Equal(t, "1 2\n-3 4", pr.String())
}
