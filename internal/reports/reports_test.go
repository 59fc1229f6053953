package reports

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/sebastiansb/reading-log/internal/apperrors"
	"github.com/sebastiansb/reading-log/internal/database/entries"
	"github.com/sebastiansb/reading-log/internal/entities"
)

func setupTestEngine(t *testing.T) (*Engine, *entries.Repository, func()) {
	t.Helper()
	dbPath := "./test_reports_" + t.Name() + ".db"

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(&entities.ReadingEntry{})
	require.NoError(t, err)

	cleanup := func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
		os.Remove(dbPath)
	}

	return NewEngine(db), entries.NewRepository(db), cleanup
}

func seedEntry(t *testing.T, repo *entries.Repository, title, genre string, year int, rating float64) {
	t.Helper()
	entry := &entities.ReadingEntry{
		Title:  title,
		Genre:  genre,
		Year:   year,
		Rating: rating,
		ReadAt: time.Date(year, 6, 1, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, repo.Create(entry))
}

func TestEngine_AverageRating(t *testing.T) {
	engine, repo, cleanup := setupTestEngine(t)
	defer cleanup()

	seedEntry(t, repo, "Three", "Novel", 2024, 3)
	seedEntry(t, repo, "Four", "Novel", 2024, 4)
	seedEntry(t, repo, "Five", "Essay", 2023, 5)

	avg, err := engine.AverageRating(entries.Filter{})
	require.NoError(t, err)
	assert.Equal(t, 4.0, avg)
}

func TestEngine_AverageRating_Filtered(t *testing.T) {
	engine, repo, cleanup := setupTestEngine(t)
	defer cleanup()

	seedEntry(t, repo, "Three", "Novel", 2024, 3)
	seedEntry(t, repo, "Four", "Novel", 2024, 4)
	seedEntry(t, repo, "Ten", "Essay", 2023, 10)

	avg, err := engine.AverageRating(entries.Filter{Genre: "Novel"})
	require.NoError(t, err)
	assert.Equal(t, 3.5, avg)
}

func TestEngine_AverageRating_Empty(t *testing.T) {
	engine, _, cleanup := setupTestEngine(t)
	defer cleanup()

	_, err := engine.AverageRating(entries.Filter{})
	assert.ErrorIs(t, err, apperrors.ErrEmptyResult)
}

func TestEngine_CountByGenre(t *testing.T) {
	engine, repo, cleanup := setupTestEngine(t)
	defer cleanup()

	seedEntry(t, repo, "One", "Novel", 2024, 7)
	seedEntry(t, repo, "Two", "Novel", 2024, 8)
	seedEntry(t, repo, "Three", "Essay", 2023, 6)

	counts, err := engine.CountByGenre()
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{"Novel": 2, "Essay": 1}, counts)
}

func TestEngine_CountByYear(t *testing.T) {
	engine, repo, cleanup := setupTestEngine(t)
	defer cleanup()

	seedEntry(t, repo, "One", "Novel", 2023, 7)
	seedEntry(t, repo, "Two", "Novel", 2024, 8)
	seedEntry(t, repo, "Three", "Essay", 2024, 6)

	counts, err := engine.CountByYear()
	require.NoError(t, err)
	assert.Equal(t, map[int]int64{2023: 1, 2024: 2}, counts)
}

func TestEngine_TopGenres(t *testing.T) {
	engine, repo, cleanup := setupTestEngine(t)
	defer cleanup()

	seedEntry(t, repo, "One", "Novel", 2024, 7)
	seedEntry(t, repo, "Two", "Novel", 2024, 8)
	seedEntry(t, repo, "Three", "Novel", 2023, 6)
	seedEntry(t, repo, "Four", "Essay", 2023, 6)
	seedEntry(t, repo, "Five", "Essay", 2023, 6)
	seedEntry(t, repo, "Six", "Poetry", 2023, 9)

	top, err := engine.TopGenres(2)
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, GenreCount{Genre: "Novel", Count: 3}, top[0])
	assert.Equal(t, GenreCount{Genre: "Essay", Count: 2}, top[1])
}

func TestEngine_TotalCount(t *testing.T) {
	engine, repo, cleanup := setupTestEngine(t)
	defer cleanup()

	seedEntry(t, repo, "One", "Novel", 2024, 7)
	seedEntry(t, repo, "Two", "Essay", 2023, 8)

	total, err := engine.TotalCount(entries.Filter{})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)

	year := 2023
	total, err = engine.TotalCount(entries.Filter{Year: &year})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
}

func TestEngine_Summary(t *testing.T) {
	engine, repo, cleanup := setupTestEngine(t)
	defer cleanup()

	seedEntry(t, repo, "One", "Novel", 2024, 6)
	seedEntry(t, repo, "Two", "Novel", 2024, 8)
	seedEntry(t, repo, "Three", "Essay", 2023, 10)

	summary, err := engine.Summary(entries.Filter{})
	require.NoError(t, err)
	assert.Equal(t, int64(3), summary.TotalCount)
	assert.True(t, summary.HasRatings)
	assert.Equal(t, 8.0, summary.AverageRating)
	assert.Equal(t, []YearCount{{Year: 2024, Count: 2}, {Year: 2023, Count: 1}}, summary.ByYear)
	require.NotEmpty(t, summary.TopGenres)
	assert.Equal(t, GenreCount{Genre: "Novel", Count: 2}, summary.TopGenres[0])
}

func TestEngine_Summary_EmptyStore(t *testing.T) {
	engine, _, cleanup := setupTestEngine(t)
	defer cleanup()

	summary, err := engine.Summary(entries.Filter{})
	require.NoError(t, err)
	assert.Equal(t, int64(0), summary.TotalCount)
	assert.False(t, summary.HasRatings)
	assert.Zero(t, summary.AverageRating)
}

func TestEngine_EntryReport(t *testing.T) {
	engine, repo, cleanup := setupTestEngine(t)
	defer cleanup()

	entry := &entities.ReadingEntry{Title: "Reported", Genre: "Novel", Year: 2024, Rating: 6, ReadAt: time.Now()}
	require.NoError(t, repo.Create(entry))
	seedEntry(t, repo, "Other", "Essay", 2023, 10)

	report, err := engine.EntryReport(entry.ID)
	require.NoError(t, err)
	assert.Equal(t, "Reported", report.Entry.Title)
	assert.Equal(t, int64(2), report.TotalEntries)
	assert.Equal(t, 8.0, report.GlobalAverageRating)
}

func TestEngine_EntryReport_NotFound(t *testing.T) {
	engine, _, cleanup := setupTestEngine(t)
	defer cleanup()

	_, err := engine.EntryReport(404)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
