package species

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

func setupTestDB(t *testing.T) *Repository {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "species.db")

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(entities.All()...))

	t.Cleanup(func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
	})
	return NewRepository(db)
}

func TestRepository_CreateAndFindByName(t *testing.T) {
	repo := setupTestDB(t)

	category, err := repo.CreateCategory("Thrushes")
	require.NoError(t, err)

	created, err := repo.Create("American Robin", category)
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	require.NotNil(t, created.CategoryID)
	assert.Equal(t, category.ID, *created.CategoryID)

	found, err := repo.FindByName("American Robin")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)
	require.NotNil(t, found.Category)
	assert.Equal(t, "Thrushes", found.Category.Name)
}

func TestRepository_FindByName_NotFound(t *testing.T) {
	repo := setupTestDB(t)

	_, err := repo.FindByName("Dodo")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestRepository_Create_WithoutCategory(t *testing.T) {
	repo := setupTestDB(t)

	created, err := repo.Create("Mystery Bird", nil)
	require.NoError(t, err)
	assert.Nil(t, created.CategoryID)

	count, err := repo.Count()
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestRepository_FindByPrefix(t *testing.T) {
	repo := setupTestDB(t)
	for _, name := range []string{"Robin", "Raven", "Rail", "Ruddy Duck", "Rüppell's Vulture"} {
		_, err := repo.Create(name, nil)
		require.NoError(t, err)
	}

	matches, err := repo.FindByPrefix("Ra")
	require.NoError(t, err)
	require.Len(t, matches, 2)
	assert.Equal(t, "Rail", matches[0].Name)
	assert.Equal(t, "Raven", matches[1].Name)

	// Multi-byte prefixes are compared by character.
	matches, err = repo.FindByPrefix("Rü")
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "Rüppell's Vulture", matches[0].Name)

	all, err := repo.FindByPrefix("")
	require.NoError(t, err)
	assert.Len(t, all, 5)
}

func TestRepository_GetOrCreateCategory(t *testing.T) {
	repo := setupTestDB(t)

	first, created, err := repo.GetOrCreateCategory("Ducks")
	require.NoError(t, err)
	assert.True(t, created)

	second, created, err := repo.GetOrCreateCategory("Ducks")
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.ID, second.ID)

	hawks, created, err := repo.GetOrCreateCategory("Hawks")
	require.NoError(t, err)
	assert.True(t, created)
	assert.NotEqual(t, first.ID, hawks.ID)
}

func TestRepository_CreateCategory_Duplicate(t *testing.T) {
	repo := setupTestDB(t)

	_, err := repo.CreateCategory("Ducks")
	require.NoError(t, err)

	_, err = repo.CreateCategory("Ducks")
	assert.Error(t, err)
}
