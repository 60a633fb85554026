package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"posfit/internal/catalog"
	"posfit/internal/domain"
)

func TestBin(t *testing.T) {
	buckets := Bin([]int{0, 10, 20, 30, 40, 50, 100}, 10)
	require.Len(t, buckets, 10)

	total := 0
	for _, b := range buckets {
		total += b.Count
	}
	assert.Equal(t, 7, total)
	assert.Equal(t, 0.0, buckets[0].Lo)
	assert.Equal(t, 100.0, buckets[9].Hi)
	assert.Equal(t, 1, buckets[9].Count, "maximum lands in the last bucket")
}

func TestBinDegenerate(t *testing.T) {
	assert.Nil(t, Bin(nil, 15))
	assert.Nil(t, Bin([]int{1, 2}, 0))

	buckets := Bin([]int{5, 5, 5}, 15)
	require.Len(t, buckets, 1)
	assert.Equal(t, 3, buckets[0].Count)
}

func TestSummarize(t *testing.T) {
	s := Summarize([]int{2, 4, 4, 4, 5, 5, 7, 9})
	assert.Equal(t, 8, s.N)
	assert.Equal(t, 2, s.Min)
	assert.Equal(t, 9, s.Max)
	assert.InDelta(t, 5.0, s.Mean, 1e-9)
	assert.InDelta(t, 2.0, s.StdDev, 1e-9)

	assert.Equal(t, Summary{}, Summarize(nil))
}

func TestRankingChart(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf, 20)

	r.Ranking(domain.Ranking{
		Scenario: domain.WeightSet{ID: 1, Name: "Core operations", Weights: map[string]int{"a": 100}},
		Scores: []domain.SystemScore{
			{System: "Poster", Score: 100, Percent: 100},
			{System: "Cashalot", Score: 50, Percent: 50},
		},
	})

	out := buf.String()
	assert.Contains(t, out, "scenario 1: Core operations")
	assert.Contains(t, out, strings.Repeat(barRune, 20)+" 100")
	assert.Contains(t, out, strings.Repeat(barRune, 10)+" 50")
}

func TestHeatmap(t *testing.T) {
	var buf bytes.Buffer
	c := catalog.Default()
	NewRenderer(&buf, 0).Heatmap(c.Features(), c.Systems())

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2+len(c.Systems()))
	assert.Contains(t, lines[1], "offline")
	assert.True(t, strings.HasPrefix(strings.TrimSpace(lines[2]), "Poster"))
}

func TestMatchReport(t *testing.T) {
	var buf bytes.Buffer
	venue := domain.Venue{ID: 3, Name: "Restaurant"}
	required := []domain.Feature{{Key: "offline", Name: "Offline mode"}}

	NewRenderer(&buf, 0).MatchReport(&venue, required, []domain.MatchResult{
		{
			System:      "Cashalot",
			Description: "Affordable POS",
			Extras:      []domain.Feature{{Key: "pos", Name: "POS module"}},
		},
	})

	out := buf.String()
	assert.Contains(t, out, "Venue type: Restaurant")
	assert.Contains(t, out, "* Cashalot")
	assert.Contains(t, out, "includes: Offline mode")
	assert.Contains(t, out, "also supports: POS module")
}

func TestHistogramOutput(t *testing.T) {
	var buf bytes.Buffer
	NewRenderer(&buf, 10).Histogram("Stress test", []int{10, 20, 20, 30}, 3)

	out := buf.String()
	assert.Contains(t, out, "Stress test")
	assert.Contains(t, out, "n=4 min=10 max=30 mean=20.00")
}
