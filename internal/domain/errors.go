package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNoSelection is returned when a match request names no features.
	ErrNoSelection = errors.New("select at least one feature")

	// ErrNoMatch is returned by front ends when a valid request matched no system.
	ErrNoMatch = errors.New("no system satisfies all requirements")
)

type MissingWeightError struct {
	Scenario int
	Feature  string
}

func (e *MissingWeightError) Error() string {
	return fmt.Sprintf("scenario %d has no weight for feature %q", e.Scenario, e.Feature)
}

type UnknownScenarioError struct {
	ID int
}

func (e *UnknownScenarioError) Error() string {
	return fmt.Sprintf("unknown scenario: %d", e.ID)
}

type UnknownFeatureError struct {
	Key string
}

func (e *UnknownFeatureError) Error() string {
	return fmt.Sprintf("unknown feature: %q", e.Key)
}

type UnknownVenueError struct {
	ID int
}

func (e *UnknownVenueError) Error() string {
	return fmt.Sprintf("unknown venue type: %d", e.ID)
}

type NegativeWeightError struct {
	Scenario int
	Feature  string
	Weight   int
}

func (e *NegativeWeightError) Error() string {
	return fmt.Sprintf("scenario %d: negative weight %d for feature %q", e.Scenario, e.Weight, e.Feature)
}

type InvalidSampleSizeError struct {
	N int
}

func (e *InvalidSampleSizeError) Error() string {
	return fmt.Sprintf("sample size must not be negative, got %d", e.N)
}

// CatalogError reports a catalog that violates a construction invariant.
type CatalogError struct {
	Reason string
}

func (e *CatalogError) Error() string {
	return "invalid catalog: " + e.Reason
}
