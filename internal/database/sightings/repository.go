// Package sightings provides database operations for recorded observations.
// Sightings are append-only: the repository has no update or delete.
package sightings

import (
	"gorm.io/gorm"

	"github.com/mrlokans/birdr/internal/entities"
)

// Repository handles sighting database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new sightings repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new sighting.
func (r *Repository) Create(sighting *entities.Sighting) error {
	return r.db.Omit("Species").Create(sighting).Error
}

// Count returns the total number of sightings.
func (r *Repository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&entities.Sighting{}).Count(&count).Error
	return count, err
}

// ForSpecies returns every sighting of a species, oldest first.
func (r *Repository) ForSpecies(speciesID uint) ([]entities.Sighting, error) {
	var result []entities.Sighting
	err := r.db.Where("species_id = ?", speciesID).
		Order("year ASC, month ASC, day ASC, id ASC").
		Find(&result).Error
	return result, err
}
