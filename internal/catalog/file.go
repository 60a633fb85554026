package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
	"posfit/internal/domain"
)

// fileCatalog is the YAML layout of a catalog file.
type fileCatalog struct {
	Features  []domain.Feature `yaml:"features"`
	Systems   []fileSystem     `yaml:"systems"`
	Scenarios []fileScenario   `yaml:"scenarios"`
	Venues    []fileVenue      `yaml:"venues"`
}

type fileSystem struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Vector      []int  `yaml:"vector"`
}

type fileScenario struct {
	ID      int            `yaml:"id"`
	Name    string         `yaml:"name"`
	Weights map[string]int `yaml:"weights"`
}

type fileVenue struct {
	ID   int    `yaml:"id"`
	Name string `yaml:"name"`
}

// LoadFile reads a catalog from a YAML file. Omitted scenarios or venues
// fall back to the built-in tables; the result is validated like any other
// catalog.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}
	return Parse(data)
}

// Parse decodes a YAML catalog document.
func Parse(data []byte) (*Catalog, error) {
	var fc fileCatalog
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}

	systems := make([]domain.System, 0, len(fc.Systems))
	for _, fs := range fc.Systems {
		support := make([]bool, len(fs.Vector))
		for i, v := range fs.Vector {
			switch v {
			case 0:
			case 1:
				support[i] = true
			default:
				return nil, &domain.CatalogError{
					Reason: fmt.Sprintf("system %q: vector entry %d is %d, want 0 or 1", fs.Name, i, v),
				}
			}
		}
		systems = append(systems, domain.System{
			Name:        fs.Name,
			Description: fs.Description,
			Support:     support,
		})
	}

	scenarios := builtinScenarios
	if len(fc.Scenarios) > 0 {
		scenarios = make([]domain.WeightSet, 0, len(fc.Scenarios))
		for _, s := range fc.Scenarios {
			scenarios = append(scenarios, domain.WeightSet{ID: s.ID, Name: s.Name, Weights: s.Weights})
		}
	}

	venues := builtinVenues
	if len(fc.Venues) > 0 {
		venues = make([]domain.Venue, 0, len(fc.Venues))
		for _, v := range fc.Venues {
			venues = append(venues, domain.Venue{ID: v.ID, Name: v.Name})
		}
	}

	return New(fc.Features, systems, scenarios, venues)
}
