// Package species provides database operations for the species catalog and
// its categories.
//
// # Usage
//
//	repo := species.NewRepository(tx)
//	matches, err := repo.FindByPrefix("Ra")
package species

import (
	"errors"
	"unicode/utf8"

	"gorm.io/gorm"

	"github.com/mrlokans/birdr/internal/entities"
)

// Repository handles species and category database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new species repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// FindByName retrieves a species by its exact (case-sensitive) name.
func (r *Repository) FindByName(name string) (*entities.Species, error) {
	var sp entities.Species
	err := r.db.Preload("Category").Where("name = ?", name).First(&sp).Error
	if err != nil {
		return nil, err
	}
	return &sp, nil
}

// FindByPrefix returns every species whose name starts with prefix, ordered by
// name. The prefix is compared literally and case-sensitively; an empty prefix
// matches everything.
func (r *Repository) FindByPrefix(prefix string) ([]entities.Species, error) {
	var result []entities.Species
	query := r.db.Order("name ASC")
	if prefix != "" {
		// substr counts characters, not bytes, for TEXT values.
		query = query.Where("substr(name, 1, ?) = ?", utf8.RuneCountInString(prefix), prefix)
	}
	err := query.Find(&result).Error
	return result, err
}

// Create inserts a new species bound to the given category (which may be nil).
func (r *Repository) Create(name string, category *entities.Category) (*entities.Species, error) {
	sp := &entities.Species{Name: name}
	if category != nil {
		sp.CategoryID = &category.ID
	}
	if err := r.db.Omit("Category").Create(sp).Error; err != nil {
		return nil, err
	}
	sp.Category = category
	return sp, nil
}

// Count returns the number of species in the catalog.
func (r *Repository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&entities.Species{}).Count(&count).Error
	return count, err
}

// FindCategoryByName retrieves a category by exact name.
func (r *Repository) FindCategoryByName(name string) (*entities.Category, error) {
	var category entities.Category
	err := r.db.Where("name = ?", name).First(&category).Error
	if err != nil {
		return nil, err
	}
	return &category, nil
}

// CreateCategory inserts a new category.
func (r *Repository) CreateCategory(name string) (*entities.Category, error) {
	category := &entities.Category{Name: name}
	if err := r.db.Create(category).Error; err != nil {
		return nil, err
	}
	return category, nil
}

// GetOrCreateCategory retrieves a category by name, creating it if missing.
// The boolean reports whether a new row was inserted.
func (r *Repository) GetOrCreateCategory(name string) (*entities.Category, bool, error) {
	category, err := r.FindCategoryByName(name)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		category, err = r.CreateCategory(name)
		if err != nil {
			return nil, false, err
		}
		return category, true, nil
	}
	if err != nil {
		return nil, false, err
	}
	return category, false, nil
}
