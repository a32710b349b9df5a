// Package importers loads the species catalog from external taxonomy files.
//
// The flow is:
//
//	eBird CSV → EBirdReader → TaxonRecord → CatalogImporter → CatalogStore
//
// EBirdReader yields one TaxonRecord per "species" row of the eBird taxonomy
// CSV and counts the rows it skips (the header, hybrids, slashes, spuhs and
// the like). CatalogImporter resolves each record's category through an
// in-memory map, creating missing categories once, and creates the species
// through a CatalogStore. The transaction handle in internal/database is the
// production CatalogStore, so an import commits or rolls back as a whole.
//
// # Example Usage
//
//	err := db.Transaction(func(tx *database.Transaction) error {
//		result, err := tx.LoadEBirdList(f)
//		...
//	})
package importers
