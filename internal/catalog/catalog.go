package catalog

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"posfit/internal/domain"
	"posfit/internal/port"
)

var _ port.Catalog = (*Catalog)(nil)

// Catalog holds the feature matrix, the scenario registry and the venue
// types. It is immutable after New returns and safe for concurrent use;
// every accessor returns a copy.
type Catalog struct {
	features  []domain.Feature
	index     map[string]int
	systems   []domain.System
	scenarios []domain.WeightSet
	venues    []domain.Venue
}

// New validates the tables and builds a Catalog from copies of them.
func New(features []domain.Feature, systems []domain.System, scenarios []domain.WeightSet, venues []domain.Venue) (*Catalog, error) {
	if len(features) == 0 {
		return nil, &domain.CatalogError{Reason: "no features"}
	}
	if len(systems) == 0 {
		return nil, &domain.CatalogError{Reason: "no systems"}
	}

	index := make(map[string]int, len(features))
	for i, f := range features {
		if f.Key == "" {
			return nil, &domain.CatalogError{Reason: fmt.Sprintf("feature %d has an empty key", i)}
		}
		if _, dup := index[f.Key]; dup {
			return nil, &domain.CatalogError{Reason: fmt.Sprintf("duplicate feature key %q", f.Key)}
		}
		index[f.Key] = i
	}

	seen := make(map[string]bool, len(systems))
	for _, s := range systems {
		if s.Name == "" {
			return nil, &domain.CatalogError{Reason: "system with empty name"}
		}
		if seen[s.Name] {
			return nil, &domain.CatalogError{Reason: fmt.Sprintf("duplicate system %q", s.Name)}
		}
		seen[s.Name] = true
		if len(s.Support) != len(features) {
			return nil, &domain.CatalogError{
				Reason: fmt.Sprintf("system %q has %d support entries, want %d", s.Name, len(s.Support), len(features)),
			}
		}
	}

	ids := make(map[int]bool, len(scenarios))
	for _, w := range scenarios {
		if ids[w.ID] {
			return nil, &domain.CatalogError{Reason: fmt.Sprintf("duplicate scenario %d", w.ID)}
		}
		ids[w.ID] = true
		if err := checkWeights(w, features); err != nil {
			return nil, err
		}
	}

	venueIDs := make(map[int]bool, len(venues))
	for _, v := range venues {
		if venueIDs[v.ID] {
			return nil, &domain.CatalogError{Reason: fmt.Sprintf("duplicate venue %d", v.ID)}
		}
		venueIDs[v.ID] = true
	}

	c := &Catalog{
		features:  append([]domain.Feature(nil), features...),
		index:     index,
		systems:   cloneSystems(systems),
		scenarios: cloneScenarios(scenarios),
		venues:    append([]domain.Venue(nil), venues...),
	}
	sort.SliceStable(c.scenarios, func(i, j int) bool { return c.scenarios[i].ID < c.scenarios[j].ID })
	sort.SliceStable(c.venues, func(i, j int) bool { return c.venues[i].ID < c.venues[j].ID })
	return c, nil
}

// checkWeights enforces that a weight set is total over the features, has
// no negative entries and names no feature outside the catalog.
func checkWeights(w domain.WeightSet, features []domain.Feature) error {
	known := make(map[string]bool, len(features))
	for _, f := range features {
		known[f.Key] = true
		v, ok := w.Weights[f.Key]
		if !ok {
			return &domain.MissingWeightError{Scenario: w.ID, Feature: f.Key}
		}
		if v < 0 {
			return &domain.NegativeWeightError{Scenario: w.ID, Feature: f.Key, Weight: v}
		}
	}
	var extra []string
	for k := range w.Weights {
		if !known[k] {
			extra = append(extra, k)
		}
	}
	if len(extra) > 0 {
		sort.Strings(extra)
		return &domain.CatalogError{
			Reason: fmt.Sprintf("scenario %d weights unknown features: %s", w.ID, strings.Join(extra, ", ")),
		}
	}
	return nil
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default returns the built-in catalog. It is constructed once per process.
func Default() *Catalog {
	defaultOnce.Do(func() {
		c, err := New(builtinFeatures, builtinSystems, builtinScenarios, builtinVenues)
		if err != nil {
			panic(fmt.Sprintf("built-in catalog: %v", err))
		}
		defaultCatalog = c
	})
	return defaultCatalog
}

func (c *Catalog) Features() []domain.Feature {
	return append([]domain.Feature(nil), c.features...)
}

func (c *Catalog) FeatureIndex(key string) (int, bool) {
	i, ok := c.index[key]
	return i, ok
}

func (c *Catalog) Systems() []domain.System {
	return cloneSystems(c.systems)
}

func (c *Catalog) Scenarios() []domain.WeightSet {
	return cloneScenarios(c.scenarios)
}

func (c *Catalog) Weights(id int) (domain.WeightSet, error) {
	for _, w := range c.scenarios {
		if w.ID == id {
			return cloneScenarios([]domain.WeightSet{w})[0], nil
		}
	}
	return domain.WeightSet{}, &domain.UnknownScenarioError{ID: id}
}

func (c *Catalog) Venues() []domain.Venue {
	return append([]domain.Venue(nil), c.venues...)
}

func (c *Catalog) Venue(id int) (domain.Venue, error) {
	for _, v := range c.venues {
		if v.ID == id {
			return v, nil
		}
	}
	return domain.Venue{}, &domain.UnknownVenueError{ID: id}
}

func cloneSystems(in []domain.System) []domain.System {
	out := make([]domain.System, len(in))
	for i, s := range in {
		s.Support = append([]bool(nil), s.Support...)
		out[i] = s
	}
	return out
}

func cloneScenarios(in []domain.WeightSet) []domain.WeightSet {
	out := make([]domain.WeightSet, len(in))
	for i, w := range in {
		weights := make(map[string]int, len(w.Weights))
		for k, v := range w.Weights {
			weights[k] = v
		}
		w.Weights = weights
		out[i] = w
	}
	return out
}
