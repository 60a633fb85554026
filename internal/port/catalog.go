package port

import "posfit/internal/domain"

// Catalog exposes the read-only feature matrix and scenario registry.
type Catalog interface {
	Features() []domain.Feature

	// FeatureIndex returns the position of a feature key in the feature order.
	FeatureIndex(key string) (int, bool)

	Systems() []domain.System

	Scenarios() []domain.WeightSet

	// Weights returns the scenario with the given id.
	Weights(id int) (domain.WeightSet, error)

	Venues() []domain.Venue

	Venue(id int) (domain.Venue, error)
}
