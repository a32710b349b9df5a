package entities

// Species is one recognized bird species from the catalog.
type Species struct {
	ID         uint       `gorm:"primaryKey" json:"id"`
	Name       string     `gorm:"uniqueIndex;not null" json:"name"`
	CategoryID *uint      `gorm:"index" json:"category_id,omitempty"`
	Category   *Category  `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Sightings  []Sighting `gorm:"foreignKey:SpeciesID" json:"sightings,omitempty"`
}

func (Species) TableName() string {
	return "species"
}

// Category is a coarse grouping of species (e.g. "Ducks, Geese, and Waterfowl")
// used when reporting checklist progress.
type Category struct {
	ID      uint      `gorm:"primaryKey" json:"id"`
	Name    string    `gorm:"uniqueIndex;not null" json:"name"`
	Species []Species `gorm:"foreignKey:CategoryID" json:"species,omitempty"`
}

func (Category) TableName() string {
	return "category"
}

// Sighting is a single observation. Sightings are append-only. Notes is nil
// when the observation has no notes.
type Sighting struct {
	ID        uint     `gorm:"primaryKey" json:"id"`
	Year      int      `gorm:"not null" json:"year"`
	Month     int      `gorm:"not null" json:"month"`
	Day       int      `gorm:"not null" json:"day"`
	Location  string   `gorm:"not null" json:"location"`
	SpeciesID uint     `gorm:"index" json:"species_id"`
	Species   *Species `gorm:"foreignKey:SpeciesID" json:"species,omitempty"`
	Notes     *string  `gorm:"type:text" json:"notes,omitempty"`
}

func (Sighting) TableName() string {
	return "sightings"
}

// Checklist is a named target set of species.
type Checklist struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"uniqueIndex;not null" json:"name"`
}

func (Checklist) TableName() string {
	return "checklist"
}

// SpeciesChecklist bridges species and checklists. It carries no data of its own.
type SpeciesChecklist struct {
	ID          uint `gorm:"primaryKey" json:"id"`
	SpeciesID   uint `gorm:"index" json:"species_id"`
	ChecklistID uint `gorm:"index" json:"checklist_id"`
}

func (SpeciesChecklist) TableName() string {
	return "species_checklist"
}

// All returns every model that makes up the schema, in dependency order.
func All() []interface{} {
	return []interface{}{
		&Category{},
		&Species{},
		&Sighting{},
		&Checklist{},
		&SpeciesChecklist{},
	}
}
