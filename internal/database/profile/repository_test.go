package profile

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/sebastiansb/reading-log/internal/apperrors"
	"github.com/sebastiansb/reading-log/internal/entities"
)

func setupTestDB(t *testing.T) (*Repository, func()) {
	dbPath := "./test_profile_" + t.Name() + ".db"

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(&entities.Profile{})
	require.NoError(t, err)

	repo := NewRepository(db)

	cleanup := func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
		os.Remove(dbPath)
	}

	return repo, cleanup
}

func TestRepository_Get_Empty(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	_, err := repo.Get()
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestRepository_GetAndUpdate(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	seeded := entities.Profile{Name: "Reader", Email: "reader@example.com"}
	require.NoError(t, repo.db.Create(&seeded).Error)

	got, err := repo.Get()
	require.NoError(t, err)
	assert.Equal(t, "Reader", got.Name)

	got.Name = "Sebastian"
	got.Email = "seb@example.com"
	require.NoError(t, repo.Update(got))

	updated, err := repo.Get()
	require.NoError(t, err)
	assert.Equal(t, "Sebastian", updated.Name)
	assert.Equal(t, "seb@example.com", updated.Email)
}

func TestRepository_Update_NotFound(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	err := repo.Update(&entities.Profile{ID: 42, Name: "Ghost"})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
