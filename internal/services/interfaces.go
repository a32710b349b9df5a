package services

import (
	"time"

	"github.com/mrlokans/birdr/internal/entities"
)

// SpeciesLookup resolves species name prefixes. The transaction handle
// implements it so input sources can offer completions from the catalog while
// a transaction is open.
type SpeciesLookup interface {
	LookupMatchingSpecies(prefix string) ([]entities.Species, error)
}

// Observation is one sighting waiting to be recorded.
type Observation struct {
	Date     time.Time
	Location string
	Species  string
	Notes    string
}

// ObservationSource produces observations until it returns io.EOF.
type ObservationSource interface {
	NextObservation(lookup SpeciesLookup) (Observation, error)
}

// SpeciesSource produces species names until it returns io.EOF.
type SpeciesSource interface {
	NextSpecies(lookup SpeciesLookup) (string, error)
}

// ChecklistResult contains the outcome of creating a checklist.
type ChecklistResult struct {
	Added        []string
	Unrecognized []string
}
