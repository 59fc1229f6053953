package controller

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sebastiansb/reading-log/internal/apperrors"
	"github.com/sebastiansb/reading-log/internal/database"
	"github.com/sebastiansb/reading-log/internal/database/entries"
)

func setupController(t *testing.T) (*Controller, func()) {
	t.Helper()
	dbPath := "./test_controller_" + strings.ReplaceAll(t.Name(), "/", "_") + ".db"

	db, err := database.NewDatabase(dbPath)
	require.NoError(t, err)

	cleanup := func() {
		db.Close()
		os.Remove(dbPath)
	}

	return NewFromDatabase(db), cleanup
}

func strPtr(s string) *string { return &s }

func intPtr(i int) *int { return &i }

func floatPtr(f float64) *float64 { return &f }

func validInput(title string) EntryInput {
	return EntryInput{
		Title:  strPtr(title),
		Author: strPtr("Borges"),
		Genre:  strPtr("Short Stories"),
		Year:   intPtr(2024),
		Rating: floatPtr(9),
	}
}

func TestController_AddEntry_RoundTrip(t *testing.T) {
	app, cleanup := setupController(t)
	defer cleanup()

	created, err := app.AddEntry(validInput("Ficciones"))
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	got, err := app.GetEntry(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ficciones", got.Title)
	assert.Equal(t, "Borges", got.Author)
	assert.Equal(t, "Short Stories", got.Genre)
	assert.Equal(t, 2024, got.Year)
	assert.Equal(t, 9.0, got.Rating)
}

func TestController_AddEntry_EmptyTitle(t *testing.T) {
	app, cleanup := setupController(t)
	defer cleanup()

	tests := []struct {
		name  string
		input EntryInput
	}{
		{"missing title", EntryInput{Author: strPtr("Nobody")}},
		{"blank title", EntryInput{Title: strPtr("   ")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := app.AddEntry(tt.input)
			require.Error(t, err)
			assert.True(t, apperrors.IsValidation(err))
		})
	}

	// The store must be untouched by the rejected adds
	result, err := app.ListEntries(entries.Filter{})
	require.NoError(t, err)
	assert.Empty(t, result)
}

func TestController_AddEntry_RatingOutOfBounds(t *testing.T) {
	app, cleanup := setupController(t)
	defer cleanup()

	input := validInput("Overrated")
	input.Rating = floatPtr(11)

	_, err := app.AddEntry(input)
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))

	input.Rating = floatPtr(-1)
	_, err = app.AddEntry(input)
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}

func TestController_AddEntry_ImplausibleYear(t *testing.T) {
	app, cleanup := setupController(t)
	defer cleanup()

	input := validInput("Time Traveller")
	input.Year = intPtr(999)
	_, err := app.AddEntry(input)
	assert.True(t, apperrors.IsValidation(err))

	input.Year = intPtr(time.Now().Year() + 5)
	_, err = app.AddEntry(input)
	assert.True(t, apperrors.IsValidation(err))
}

func TestController_AddEntry_Defaults(t *testing.T) {
	app, cleanup := setupController(t)
	defer cleanup()

	created, err := app.AddEntry(EntryInput{Title: strPtr("Minimal")})
	require.NoError(t, err)
	assert.Equal(t, time.Now().Year(), created.Year)
	assert.False(t, created.ReadAt.IsZero())
}

func TestController_UpdateEntry_PartialFields(t *testing.T) {
	app, cleanup := setupController(t)
	defer cleanup()

	created, err := app.AddEntry(validInput("Mutable"))
	require.NoError(t, err)

	updated, err := app.UpdateEntry(created.ID, EntryInput{Rating: floatPtr(4)})
	require.NoError(t, err)
	assert.Equal(t, 4.0, updated.Rating)
	assert.Equal(t, "Mutable", updated.Title)
	assert.Equal(t, "Borges", updated.Author)
	assert.Equal(t, 2024, updated.Year)
}

func TestController_UpdateEntry_Validation(t *testing.T) {
	app, cleanup := setupController(t)
	defer cleanup()

	created, err := app.AddEntry(validInput("Guarded"))
	require.NoError(t, err)

	_, err = app.UpdateEntry(created.ID, EntryInput{Title: strPtr("")})
	assert.True(t, apperrors.IsValidation(err))

	_, err = app.UpdateEntry(created.ID, EntryInput{Rating: floatPtr(42)})
	assert.True(t, apperrors.IsValidation(err))
}

func TestController_UpdateEntry_NotFound(t *testing.T) {
	app, cleanup := setupController(t)
	defer cleanup()

	_, err := app.UpdateEntry(404, EntryInput{Rating: floatPtr(4)})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestController_DeleteEntry(t *testing.T) {
	app, cleanup := setupController(t)
	defer cleanup()

	created, err := app.AddEntry(validInput("Doomed"))
	require.NoError(t, err)

	require.NoError(t, app.DeleteEntry(created.ID))

	_, err = app.GetEntry(created.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	assert.ErrorIs(t, app.DeleteEntry(created.ID), apperrors.ErrNotFound)
}

func TestController_FilterOptions(t *testing.T) {
	app, cleanup := setupController(t)
	defer cleanup()

	input := validInput("One")
	_, err := app.AddEntry(input)
	require.NoError(t, err)

	other := validInput("Two")
	other.Genre = strPtr("Essay")
	other.Year = intPtr(2022)
	_, err = app.AddEntry(other)
	require.NoError(t, err)

	options, err := app.FilterOptions()
	require.NoError(t, err)
	assert.Equal(t, []int{2024, 2022}, options.Years)
	assert.Equal(t, []string{"Essay", "Short Stories"}, options.Genres)
}

func TestController_ExportToCSV(t *testing.T) {
	app, cleanup := setupController(t)
	defer cleanup()

	_, err := app.AddEntry(validInput("Exported One"))
	require.NoError(t, err)
	_, err = app.AddEntry(validInput("Exported Two"))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "out.csv")
	count, err := app.ExportToCSV(path, entries.Filter{})
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	assert.Len(t, lines, 3) // header + 2 rows
}

func TestController_ExportToCSV_BadPath(t *testing.T) {
	app, cleanup := setupController(t)
	defer cleanup()

	_, err := app.ExportToCSV("/nonexistent-dir/nope/out.csv", entries.Filter{})
	require.Error(t, err)
	assert.True(t, apperrors.IsIO(err))
}

func TestController_ImportCSV(t *testing.T) {
	app, cleanup := setupController(t)
	defer cleanup()

	csvData := strings.Join([]string{
		"id,title,author,genre,year,rating",
		"99,Imported,Calvino,Novel,2023,8",
		",Missing Rating Bound,Nobody,Novel,2023,15",
		",,Untitled,Novel,2023,5",
	}, "\n") + "\n"

	result, err := app.ImportCSV(strings.NewReader(csvData))
	require.NoError(t, err)
	assert.Equal(t, 3, result.TotalRows)
	assert.Equal(t, 1, result.Imported)
	assert.Len(t, result.Skipped, 2)

	stored, err := app.ListEntries(entries.Filter{})
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, "Imported", stored[0].Title)
	// The file's id is ignored; the store assigns its own
	assert.NotEqual(t, uint(99), stored[0].ID)
}

func TestController_Profile(t *testing.T) {
	app, cleanup := setupController(t)
	defer cleanup()

	profile, err := app.GetProfile()
	require.NoError(t, err)
	assert.Equal(t, "Reader", profile.Name)

	updated, err := app.UpdateProfile(ProfileInput{Name: strPtr("Sebastian")})
	require.NoError(t, err)
	assert.Equal(t, "Sebastian", updated.Name)
	// Untouched fields keep their seeded values
	assert.Equal(t, profile.Email, updated.Email)

	_, err = app.UpdateProfile(ProfileInput{Name: strPtr("  ")})
	assert.True(t, apperrors.IsValidation(err))
}

func TestController_Settings(t *testing.T) {
	app, cleanup := setupController(t)
	defer cleanup()

	require.NoError(t, app.SetSetting("theme", "dark"))

	value, err := app.GetSetting("theme")
	require.NoError(t, err)
	assert.Equal(t, "dark", value)

	_, err = app.GetSetting("missing")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	err = app.SetSetting("  ", "x")
	assert.True(t, apperrors.IsValidation(err))
}
