package checklists

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mrlokans/birdr/internal/entities"
)

func setupTestDB(t *testing.T) (*Repository, *gorm.DB) {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "checklists.db")

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(entities.All()...))

	t.Cleanup(func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
	})
	return NewRepository(db), db
}

func createSpecies(t *testing.T, db *gorm.DB, name, category string) *entities.Species {
	t.Helper()
	sp := &entities.Species{Name: name}
	if category != "" {
		cat := &entities.Category{Name: category}
		require.NoError(t, db.FirstOrCreate(cat, entities.Category{Name: category}).Error)
		sp.CategoryID = &cat.ID
	}
	require.NoError(t, db.Create(sp).Error)
	return sp
}

func TestRepository_CreateAndFindByName(t *testing.T) {
	repo, _ := setupTestDB(t)

	created, err := repo.Create("Backyard")
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	found, err := repo.FindByName("Backyard")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)

	_, err = repo.FindByName("Front yard")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestRepository_Names(t *testing.T) {
	repo, _ := setupTestDB(t)

	names, err := repo.Names()
	require.NoError(t, err)
	assert.Empty(t, names)

	for _, name := range []string{"Yard", "County"} {
		_, err := repo.Create(name)
		require.NoError(t, err)
	}

	names, err = repo.Names()
	require.NoError(t, err)
	assert.Equal(t, []string{"Yard", "County"}, names)
}

func TestRepository_AddSpecies(t *testing.T) {
	repo, db := setupTestDB(t)
	checklist, err := repo.Create("Pond")
	require.NoError(t, err)
	mallard := createSpecies(t, db, "Mallard", "Ducks")

	has, err := repo.HasSpecies(checklist.ID, mallard.ID)
	require.NoError(t, err)
	assert.False(t, has)

	require.NoError(t, repo.AddSpecies(checklist.ID, mallard.ID))
	require.NoError(t, repo.AddSpecies(checklist.ID, mallard.ID))

	has, err = repo.HasSpecies(checklist.ID, mallard.ID)
	require.NoError(t, err)
	assert.True(t, has)

	var links int64
	require.NoError(t, db.Model(&entities.SpeciesChecklist{}).Count(&links).Error)
	assert.Equal(t, int64(1), links)
}

func TestRepository_Entries(t *testing.T) {
	repo, db := setupTestDB(t)
	pond, err := repo.Create("Pond")
	require.NoError(t, err)
	other, err := repo.Create("Other")
	require.NoError(t, err)

	mallard := createSpecies(t, db, "Mallard", "Ducks")
	woodDuck := createSpecies(t, db, "Wood Duck", "Ducks")
	heron := createSpecies(t, db, "Great Blue Heron", "Herons")

	for _, sp := range []*entities.Species{woodDuck, mallard, heron} {
		require.NoError(t, repo.AddSpecies(pond.ID, sp.ID))
	}
	require.NoError(t, repo.AddSpecies(other.ID, mallard.ID))

	// Two sightings of the same species still make it simply "seen".
	for i := 0; i < 2; i++ {
		require.NoError(t, db.Create(&entities.Sighting{
			Year: 2023, Month: 6, Day: 1 + i, Location: "Marsh", SpeciesID: heron.ID,
		}).Error)
	}

	entries, err := repo.Entries(pond.ID)
	require.NoError(t, err)
	assert.Equal(t, []Entry{
		{Species: "Wood Duck", Category: "Ducks", Seen: false},
		{Species: "Mallard", Category: "Ducks", Seen: false},
		{Species: "Great Blue Heron", Category: "Herons", Seen: true},
	}, entries)

	entries, err = repo.Entries(other.ID)
	require.NoError(t, err)
	assert.Equal(t, []Entry{{Species: "Mallard", Category: "Ducks", Seen: false}}, entries)
}
