package interfaces

// This file contains compile-time interface implementation checks.
// These ensure that concrete types satisfy their interfaces at compile time,
// catching missing methods before runtime.
//
// To verify all checks pass: go build ./internal/interfaces/...

import (
	"github.com/mrlokans/birdr/internal/cli"
	"github.com/mrlokans/birdr/internal/database"
	"github.com/mrlokans/birdr/internal/importers"
	"github.com/mrlokans/birdr/internal/services"
)

// =============================================================================
// Data Access Layer
// =============================================================================

// CatalogStore implementations
var _ importers.CatalogStore = (*database.Transaction)(nil)

// SpeciesLookup implementations
var _ services.SpeciesLookup = (*database.Transaction)(nil)

// =============================================================================
// Input Sources
// =============================================================================

// ObservationSource implementations
var _ services.ObservationSource = (*cli.InteractiveObservations)(nil)

// SpeciesSource implementations
var _ services.SpeciesSource = (*cli.InteractiveSpecies)(nil)

// NotesCapturer implementations
var _ cli.NotesCapturer = (*cli.NoteEditor)(nil)
