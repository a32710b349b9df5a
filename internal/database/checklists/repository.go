// Package checklists provides database operations for checklists and their
// species membership.
//
// # Usage
//
//	repo := checklists.NewRepository(tx)
//	checklist, err := repo.Create("County list")
//	err = repo.AddSpecies(checklist.ID, species.ID)
//	entries, err := repo.Entries(checklist.ID)
package checklists

import (
	"gorm.io/gorm"

	"github.com/mrlokans/birdr/internal/entities"
)

// Entry is one species on a checklist together with its category and whether
// it has ever been sighted.
type Entry struct {
	Species  string
	Category string
	Seen     bool
}

// Repository handles checklist database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new checklists repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new checklist.
func (r *Repository) Create(name string) (*entities.Checklist, error) {
	checklist := &entities.Checklist{Name: name}
	if err := r.db.Create(checklist).Error; err != nil {
		return nil, err
	}
	return checklist, nil
}

// FindByName retrieves a checklist by exact name.
func (r *Repository) FindByName(name string) (*entities.Checklist, error) {
	var checklist entities.Checklist
	err := r.db.Where("name = ?", name).First(&checklist).Error
	if err != nil {
		return nil, err
	}
	return &checklist, nil
}

// Names returns the names of all checklists in insertion order.
func (r *Repository) Names() ([]string, error) {
	var names []string
	err := r.db.Model(&entities.Checklist{}).Order("id ASC").Pluck("name", &names).Error
	return names, err
}

// HasSpecies reports whether the species is already on the checklist.
func (r *Repository) HasSpecies(checklistID, speciesID uint) (bool, error) {
	var count int64
	err := r.db.Model(&entities.SpeciesChecklist{}).
		Where("checklist_id = ? AND species_id = ?", checklistID, speciesID).
		Count(&count).Error
	return count > 0, err
}

// AddSpecies links a species to a checklist. Adding a species that is already
// on the checklist is a no-op.
func (r *Repository) AddSpecies(checklistID, speciesID uint) error {
	exists, err := r.HasSpecies(checklistID, speciesID)
	if err != nil || exists {
		return err
	}
	link := &entities.SpeciesChecklist{
		SpeciesID:   speciesID,
		ChecklistID: checklistID,
	}
	return r.db.Create(link).Error
}

// entryRow is the raw shape of the Entries query.
type entryRow struct {
	Species   string
	Category  string
	Sightings int64
}

// Entries returns every species on the checklist in the order they were added.
func (r *Repository) Entries(checklistID uint) ([]Entry, error) {
	var rows []entryRow
	err := r.db.Table("species_checklist").
		Select(`species.name AS species,
			COALESCE(category.name, '') AS category,
			(SELECT COUNT(*) FROM sightings WHERE sightings.species_id = species.id) AS sightings`).
		Joins("JOIN species ON species.id = species_checklist.species_id").
		Joins("LEFT JOIN category ON category.id = species.category_id").
		Where("species_checklist.checklist_id = ?", checklistID).
		Order("species_checklist.id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, Entry{
			Species:  row.Species,
			Category: row.Category,
			Seen:     row.Sightings > 0,
		})
	}
	return entries, nil
}
