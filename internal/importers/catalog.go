package importers

import (
	"fmt"
	"io"

	"github.com/mrlokans/birdr/internal/entities"
)

// ImportResult summarizes a catalog import.
type ImportResult struct {
	SpeciesCreated    int
	CategoriesCreated int
	RowsSkipped       int
}

// CatalogStore persists catalog rows. The database transaction handle
// implements it, so every write lands in the caller's transaction.
type CatalogStore interface {
	GetOrCreateCategory(name string) (*entities.Category, bool, error)
	CreateSpecies(name string, category *entities.Category) (*entities.Species, error)
}

// CatalogImporter loads an eBird taxonomy into a CatalogStore.
//
// Categories are resolved once per name for the lifetime of the importer, so
// a category shared by many species is looked up (or created) only once.
type CatalogImporter struct {
	store      CatalogStore
	categories map[string]*entities.Category
}

// NewCatalogImporter creates an importer writing to store.
func NewCatalogImporter(store CatalogStore) *CatalogImporter {
	return &CatalogImporter{
		store:      store,
		categories: make(map[string]*entities.Category),
	}
}

// Import reads the taxonomy from r and creates one species per species row.
// It stops at the first error; the caller's transaction is expected to
// discard whatever was written before it.
func (i *CatalogImporter) Import(r io.Reader) (ImportResult, error) {
	var result ImportResult
	reader := NewEBirdReader(r)

	for {
		record, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			result.RowsSkipped = reader.Skipped()
			return result, err
		}

		category, created, err := i.resolveCategory(record.Category)
		if err != nil {
			return result, fmt.Errorf("line %d: %w", record.Line, err)
		}
		if created {
			result.CategoriesCreated++
		}

		if _, err := i.store.CreateSpecies(record.CommonName, category); err != nil {
			return result, fmt.Errorf("line %d: %w", record.Line, err)
		}
		result.SpeciesCreated++
	}

	result.RowsSkipped = reader.Skipped()
	return result, nil
}

func (i *CatalogImporter) resolveCategory(name string) (*entities.Category, bool, error) {
	if category, ok := i.categories[name]; ok {
		return category, false, nil
	}
	category, created, err := i.store.GetOrCreateCategory(name)
	if err != nil {
		return nil, false, err
	}
	i.categories[name] = category
	return category, created, nil
}
