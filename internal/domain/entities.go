package domain

// Feature is a functional capability a POS system may support.
type Feature struct {
	Key  string `json:"key" yaml:"key"`
	Name string `json:"name" yaml:"name"`
}

// System is a candidate POS product. Support is indexed by the catalog's
// feature order and always has one entry per feature.
type System struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Support     []bool `json:"support"`
}

// Supports reports whether the feature at index i is supported.
func (s System) Supports(i int) bool {
	return i >= 0 && i < len(s.Support) && s.Support[i]
}

// WeightSet is a named scenario weighting keyed by feature key.
type WeightSet struct {
	ID      int            `json:"id"`
	Name    string         `json:"name"`
	Weights map[string]int `json:"weights"`
}

// Total returns the sum of all weights.
func (w WeightSet) Total() int {
	total := 0
	for _, v := range w.Weights {
		total += v
	}
	return total
}

type SystemScore struct {
	System  string  `json:"system"`
	Score   int     `json:"score"`
	Percent float64 `json:"percent"`
}

type MatchResult struct {
	System      string    `json:"system"`
	Description string    `json:"description,omitempty"`
	Supported   []Feature `json:"supported"`
	Extras      []Feature `json:"extras,omitempty"`
}

type Venue struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type Ranking struct {
	Scenario WeightSet     `json:"scenario"`
	Scores   []SystemScore `json:"scores"`
}
