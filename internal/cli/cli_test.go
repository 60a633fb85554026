package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"posfit/internal/domain"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(append([]string{"--dir", t.TempDir()}, args...))
	err := root.Execute()
	return out.String(), err
}

func TestFeaturesCommand(t *testing.T) {
	out, err := run(t, "features")
	require.NoError(t, err)
	assert.Contains(t, out, "offline")
	assert.Contains(t, out, "Loyalty program")
}

func TestSystemsMatrix(t *testing.T) {
	out, err := run(t, "systems", "--matrix")
	require.NoError(t, err)
	assert.Contains(t, out, "Feature support by system")
	assert.Contains(t, out, "ULTRA Company")
}

func TestMatchCommand(t *testing.T) {
	out, err := run(t, "match", "-f", "offline", "--venue", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "Venue type: Cafe")
	assert.Contains(t, out, "* Cashalot")
	assert.Contains(t, out, "* ULTRA Company")
	assert.NotContains(t, out, "Poster")
}

func TestMatchCommandJSON(t *testing.T) {
	out, err := run(t, "match", "-f", "loyalty,payment", "--json")
	require.NoError(t, err)

	var results []domain.MatchResult
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	require.Len(t, results, 3)
	assert.Equal(t, "Poster", results[0].System)
}

func TestMatchCommandErrors(t *testing.T) {
	_, err := run(t, "match")
	assert.ErrorIs(t, err, domain.ErrNoSelection)

	_, err = run(t, "match", "-f", "loyalty", "-f", "offline")
	assert.ErrorIs(t, err, domain.ErrNoMatch)

	_, err = run(t, "match", "-f", "delivery")
	var uf *domain.UnknownFeatureError
	assert.ErrorAs(t, err, &uf)

	_, err = run(t, "match", "-f", "pos", "--venue", "9")
	var uv *domain.UnknownVenueError
	assert.ErrorAs(t, err, &uv)
}

func TestScoreCommandJSON(t *testing.T) {
	out, err := run(t, "score", "-s", "1", "--json")
	require.NoError(t, err)

	var r domain.Ranking
	require.NoError(t, json.Unmarshal([]byte(out), &r))
	assert.Equal(t, 1, r.Scenario.ID)
	require.Len(t, r.Scores, 5)
	assert.Equal(t, "Poster", r.Scores[0].System)
	assert.Equal(t, 95, r.Scores[0].Score)
}

func TestScoreCommandAll(t *testing.T) {
	out, err := run(t, "score", "--all")
	require.NoError(t, err)
	assert.Contains(t, out, "scenario 1")
	assert.Contains(t, out, "scenario 2")
	assert.Contains(t, out, "scenario 3")
}

func TestScoreCommandErrors(t *testing.T) {
	_, err := run(t, "score", "-s", "99")
	var us *domain.UnknownScenarioError
	assert.ErrorAs(t, err, &us)

	_, err = run(t, "score", "--weight", "pos=50,offline=50")
	var mw *domain.MissingWeightError
	assert.ErrorAs(t, err, &mw)
}

func TestStressCommandJSON(t *testing.T) {
	out, err := run(t, "stress", "-n", "200", "--seed", "5", "--json")
	require.NoError(t, err)

	var r stressResult
	require.NoError(t, json.Unmarshal([]byte(out), &r))
	assert.Len(t, r.Scores, 200)
	assert.Equal(t, 200, r.Summary.N)
	assert.Equal(t, 1, r.Scenario)
	for _, s := range r.Scores {
		assert.GreaterOrEqual(t, s, 0)
		assert.LessOrEqual(t, s, 100)
	}

	again, err := run(t, "stress", "-n", "200", "--seed", "5", "--json")
	require.NoError(t, err)
	assert.JSONEq(t, out, again)
}

func TestReportCommand(t *testing.T) {
	out, err := run(t, "report", "--seed", "3", "-n", "50")
	require.NoError(t, err)
	assert.Contains(t, out, "Effectiveness index (scenario 3")
	assert.Contains(t, out, "Stress test: effectiveness of 50 random systems")
	assert.Contains(t, out, "Feature support by system")
}

func TestCatalogFlag(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	content := `
features:
  - {key: pos, name: POS module}
  - {key: kds, name: Kitchen display}
systems:
  - {name: Alpha, vector: [1, 1]}
  - {name: Beta, vector: [1, 0]}
scenarios:
  - {id: 1, name: Kitchen, weights: {pos: 50, kds: 50}}
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	out, err := run(t, "--catalog", path, "match", "-f", "kds")
	require.NoError(t, err)
	assert.Contains(t, out, "* Alpha")
	assert.NotContains(t, out, "Beta")
}
