package database

import (
	"errors"
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/mrlokans/birdr/internal/database/checklists"
	"github.com/mrlokans/birdr/internal/database/sightings"
	"github.com/mrlokans/birdr/internal/database/species"
	"github.com/mrlokans/birdr/internal/entities"
	"github.com/mrlokans/birdr/internal/importers"
)

// ChecklistEntry is one species of a checklist as seen by the progress report.
type ChecklistEntry = checklists.Entry

// Transaction is the handle passed to Database.Transaction callbacks. All of
// its operations share one underlying database transaction.
type Transaction struct {
	species    *species.Repository
	checklists *checklists.Repository
	sightings  *sightings.Repository
	logger     *zap.Logger
}

func newTransaction(db *gorm.DB, logger *zap.Logger) *Transaction {
	return &Transaction{
		species:    species.NewRepository(db),
		checklists: checklists.NewRepository(db),
		sightings:  sightings.NewRepository(db),
		logger:     logger,
	}
}

// LookupMatchingSpecies returns species whose name starts with prefix, in
// alphabetical order.
func (t *Transaction) LookupMatchingSpecies(prefix string) ([]entities.Species, error) {
	return t.species.FindByPrefix(prefix)
}

// LookupChecklistNames returns the names of all checklists.
func (t *Transaction) LookupChecklistNames() ([]string, error) {
	return t.checklists.Names()
}

// LookupChecklist returns every species on the named checklist with its
// category and whether it has been seen. Returns ErrChecklistNotFound when no
// checklist has that name.
func (t *Transaction) LookupChecklist(name string) ([]ChecklistEntry, error) {
	checklist, err := t.findChecklist(name)
	if err != nil {
		return nil, err
	}
	return t.checklists.Entries(checklist.ID)
}

// AddSighting records an observation of the named species. The species must
// already be in the catalog; otherwise an *UnrecognizedSpeciesError is
// returned and nothing is written. Empty notes are stored as NULL.
func (t *Transaction) AddSighting(date time.Time, speciesName, location, notes string) error {
	sp, err := t.findSpecies(speciesName)
	if err != nil {
		return err
	}

	sighting := &entities.Sighting{
		Year:      date.Year(),
		Month:     int(date.Month()),
		Day:       date.Day(),
		Location:  location,
		SpeciesID: sp.ID,
	}
	if notes != "" {
		sighting.Notes = &notes
	}
	if err := t.sightings.Create(sighting); err != nil {
		return fmt.Errorf("failed to add sighting of %q: %w", speciesName, err)
	}

	t.logger.Debug("sighting added",
		zap.String("species", speciesName),
		zap.String("location", location),
		zap.Time("date", date))
	return nil
}

// AddChecklist creates an empty checklist. A duplicate name yields
// ErrAlreadyExists.
func (t *Transaction) AddChecklist(name string) error {
	if _, err := t.checklists.Create(name); err != nil {
		return translateUnique(err, fmt.Sprintf("checklist %q", name))
	}
	return nil
}

// AddSpeciesToChecklist links an existing species to an existing checklist.
// When either is missing it returns ErrChecklistNotFound or an
// *UnrecognizedSpeciesError without writing anything, so callers may treat
// those as soft failures and carry on within the same transaction.
func (t *Transaction) AddSpeciesToChecklist(checklistName, speciesName string) error {
	checklist, err := t.findChecklist(checklistName)
	if err != nil {
		return err
	}
	sp, err := t.findSpecies(speciesName)
	if err != nil {
		return err
	}
	return t.checklists.AddSpecies(checklist.ID, sp.ID)
}

// AddSpecies adds a species to the catalog outside of a bulk import, creating
// its category if needed. An empty category leaves the species uncategorized.
func (t *Transaction) AddSpecies(name, category string) (*entities.Species, error) {
	var cat *entities.Category
	if category != "" {
		var err error
		cat, _, err = t.GetOrCreateCategory(category)
		if err != nil {
			return nil, err
		}
	}
	return t.CreateSpecies(name, cat)
}

// LoadEBirdList imports the eBird taxonomy CSV read from r into the catalog.
func (t *Transaction) LoadEBirdList(r io.Reader) (importers.ImportResult, error) {
	result, err := importers.NewCatalogImporter(t).Import(r)
	if err != nil {
		return result, fmt.Errorf("failed to load eBird list: %w", err)
	}
	t.logger.Info("catalog imported",
		zap.Int("species", result.SpeciesCreated),
		zap.Int("categories", result.CategoriesCreated),
		zap.Int("skipped", result.RowsSkipped))
	return result, nil
}

// GetOrCreateCategory implements importers.CatalogStore.
func (t *Transaction) GetOrCreateCategory(name string) (*entities.Category, bool, error) {
	category, created, err := t.species.GetOrCreateCategory(name)
	if err != nil {
		return nil, false, translateUnique(err, fmt.Sprintf("category %q", name))
	}
	return category, created, nil
}

// CreateSpecies implements importers.CatalogStore.
func (t *Transaction) CreateSpecies(name string, category *entities.Category) (*entities.Species, error) {
	sp, err := t.species.Create(name, category)
	if err != nil {
		return nil, translateUnique(err, fmt.Sprintf("species %q", name))
	}
	return sp, nil
}

// CountSpecies returns the size of the catalog.
func (t *Transaction) CountSpecies() (int64, error) {
	return t.species.Count()
}

// CountSightings returns the total number of recorded sightings.
func (t *Transaction) CountSightings() (int64, error) {
	return t.sightings.Count()
}

// SightingsForSpecies returns every sighting of the named species, oldest first.
func (t *Transaction) SightingsForSpecies(name string) ([]entities.Sighting, error) {
	sp, err := t.findSpecies(name)
	if err != nil {
		return nil, err
	}
	return t.sightings.ForSpecies(sp.ID)
}

func (t *Transaction) findSpecies(name string) (*entities.Species, error) {
	sp, err := t.species.FindByName(name)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &UnrecognizedSpeciesError{Name: name}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up species %q: %w", name, err)
	}
	return sp, nil
}

func (t *Transaction) findChecklist(name string) (*entities.Checklist, error) {
	checklist, err := t.checklists.FindByName(name)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, checklistNotFound(name)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up checklist %q: %w", name, err)
	}
	return checklist, nil
}

var _ importers.CatalogStore = (*Transaction)(nil)
