// Package interfaces documents the core abstractions used throughout birdr.
//
// # Interface Categories
//
// ## Data Access Interfaces
//
//   - CatalogStore: category and species creation used by the eBird importer
//     (internal/importers/catalog.go)
//   - SpeciesLookup: prefix lookup of catalog species, used for completion
//     (internal/services/interfaces.go)
//
// ## Input Sources
//
//   - ObservationSource: produces sightings to record (internal/services/interfaces.go)
//   - SpeciesSource: produces species names for a new checklist (internal/services/interfaces.go)
//   - Prompter: line input with completion (internal/cli/prompt.go)
//   - NotesCapturer: free-form notes for a sighting (internal/cli/sources.go)
//
// # Adding a New Catalog Format
//
// To import species from a source other than the eBird taxonomy CSV:
//
//  1. Add a reader in internal/importers/ that yields TaxonRecord values.
//
//  2. Feed the records to a CatalogImporter so categories are resolved once
//     and species are created through the CatalogStore:
//
//     importer := importers.NewCatalogImporter(store)
//
//  3. Expose it on the transaction handle next to LoadEBirdList.
//
// # Adding a New Table
//
//  1. Add the model to internal/entities/ and to entities.All().
//
//  2. Create sub-package: internal/database/<table>/
//
//     type Repository struct { db *gorm.DB }
//
//     func NewRepository(db *gorm.DB) *Repository
//
//  3. Wire the repository into the Transaction handle in
//     internal/database/transaction.go.
//
// # Compile-Time Interface Checks
//
// Implementations carry compile-time checks so missing methods fail the build:
//
//	var _ SomeInterface = (*MyImplementation)(nil)
//
// See checks.go for the cross-package ones.
package interfaces
