// Package controller wires user intents to the record store, the
// statistics engine, and the export service. It owns input validation
// and nothing else: no business logic lives here beyond field checks,
// and every call is a single synchronous request/response round trip.
package controller

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/sebastiansb/reading-log/internal/apperrors"
	"github.com/sebastiansb/reading-log/internal/database"
	"github.com/sebastiansb/reading-log/internal/database/entries"
	"github.com/sebastiansb/reading-log/internal/database/profile"
	"github.com/sebastiansb/reading-log/internal/database/settings"
	"github.com/sebastiansb/reading-log/internal/entities"
	"github.com/sebastiansb/reading-log/internal/exporters"
	"github.com/sebastiansb/reading-log/internal/reports"
)

// Years before this are rejected as implausible reading years.
const minPlausibleYear = 1000

// EntryStore defines the record store operations the controller needs.
type EntryStore interface {
	Create(entry *entities.ReadingEntry) error
	GetByID(id uint) (*entities.ReadingEntry, error)
	Update(id uint, fields map[string]any) error
	Delete(id uint) error
	List(filter entries.Filter) ([]entities.ReadingEntry, error)
	Years() ([]int, error)
	Genres() ([]string, error)
}

// ProfileStore defines the profile operations the controller needs.
type ProfileStore interface {
	Get() (*entities.Profile, error)
	Update(profile *entities.Profile) error
}

// SettingsStore defines the preference operations the controller needs.
type SettingsStore interface {
	GetSetting(key string) (*entities.Setting, error)
	SetSetting(key, value string) error
}

// StatsEngine defines the read-side aggregation the controller needs.
type StatsEngine interface {
	Summary(filter entries.Filter) (*reports.Summary, error)
	EntryReport(id uint) (*reports.EntryReport, error)
	AverageRating(filter entries.Filter) (float64, error)
	TotalCount(filter entries.Filter) (int64, error)
}

// EntryInput carries entry fields from the view. Nil fields are "not
// provided": on add they take defaults, on update they are left
// unchanged.
type EntryInput struct {
	Title     *string    `json:"title,omitempty"`
	Author    *string    `json:"author,omitempty"`
	Genre     *string    `json:"genre,omitempty"`
	Subgenre  *string    `json:"subgenre,omitempty"`
	Year      *int       `json:"year,omitempty"`
	ReadAt    *time.Time `json:"read_at,omitempty"`
	Rating    *float64   `json:"rating,omitempty"`
	Pages     *int       `json:"pages,omitempty"`
	Publisher *string    `json:"publisher,omitempty"`
	Notes     *string    `json:"notes,omitempty"`
}

// ProfileInput carries profile fields from the view.
type ProfileInput struct {
	Name   *string `json:"name,omitempty"`
	Email  *string `json:"email,omitempty"`
	Avatar *string `json:"avatar,omitempty"`
}

// FilterOptions lists the distinct values the view offers in its
// filter dropdowns.
type FilterOptions struct {
	Years  []int    `json:"years"`
	Genres []string `json:"genres"`
}

// ImportResult reports the outcome of a CSV import.
type ImportResult struct {
	TotalRows int      `json:"total_rows"`
	Imported  int      `json:"imported"`
	Skipped   []string `json:"skipped,omitempty"`
}

// Controller orchestrates the stores, the statistics engine, and the
// export service for the presentation layer.
type Controller struct {
	entries  EntryStore
	profile  ProfileStore
	settings SettingsStore
	stats    StatsEngine
	now      func() time.Time
}

// New creates a controller over explicit stores, enabling test
// doubles.
func New(entryStore EntryStore, profileStore ProfileStore, settingsStore SettingsStore, stats StatsEngine) *Controller {
	return &Controller{
		entries:  entryStore,
		profile:  profileStore,
		settings: settingsStore,
		stats:    stats,
		now:      time.Now,
	}
}

// NewFromDatabase creates a controller with the standard repositories
// over the given database.
func NewFromDatabase(db *database.Database) *Controller {
	return New(
		entries.NewRepository(db.DB),
		profile.NewRepository(db.DB),
		settings.NewRepository(db.DB),
		reports.NewEngine(db.DB),
	)
}

// AddEntry validates the input, fills defaults the way the entry form
// does (current year, today's date), and persists a new entry.
func (c *Controller) AddEntry(input EntryInput) (*entities.ReadingEntry, error) {
	entry := entities.ReadingEntry{}
	applyInput(&entry, input)
	entry.Title = strings.TrimSpace(entry.Title)

	if entry.Title == "" {
		return nil, apperrors.NewValidation("title", "must not be empty")
	}
	if err := c.validateBounds(input); err != nil {
		return nil, err
	}

	if entry.Year == 0 {
		entry.Year = c.now().Year()
	}
	if entry.ReadAt.IsZero() {
		entry.ReadAt = c.now()
	}

	if err := c.entries.Create(&entry); err != nil {
		return nil, fmt.Errorf("failed to create entry: %w", err)
	}
	return &entry, nil
}

// GetEntry returns a single entry by id.
func (c *Controller) GetEntry(id uint) (*entities.ReadingEntry, error) {
	return c.entries.GetByID(id)
}

// UpdateEntry applies the provided fields to an existing entry and
// returns the updated row. Absent fields are left unchanged.
func (c *Controller) UpdateEntry(id uint, input EntryInput) (*entities.ReadingEntry, error) {
	if input.Title != nil && strings.TrimSpace(*input.Title) == "" {
		return nil, apperrors.NewValidation("title", "must not be empty")
	}
	if err := c.validateBounds(input); err != nil {
		return nil, err
	}

	fields := updateFields(input)
	if len(fields) == 0 {
		return c.entries.GetByID(id)
	}

	if err := c.entries.Update(id, fields); err != nil {
		return nil, err
	}
	return c.entries.GetByID(id)
}

// DeleteEntry removes an entry by id.
func (c *Controller) DeleteEntry(id uint) error {
	return c.entries.Delete(id)
}

// ListEntries returns the entries matching filter.
func (c *Controller) ListEntries(filter entries.Filter) ([]entities.ReadingEntry, error) {
	return c.entries.List(filter)
}

// FilterOptions returns the distinct years and genres currently in the
// store, for the view's filter dropdowns.
func (c *Controller) FilterOptions() (*FilterOptions, error) {
	years, err := c.entries.Years()
	if err != nil {
		return nil, err
	}
	genres, err := c.entries.Genres()
	if err != nil {
		return nil, err
	}
	return &FilterOptions{Years: years, Genres: genres}, nil
}

// GetStatistics returns the aggregate summary for the given filter.
func (c *Controller) GetStatistics(filter entries.Filter) (*reports.Summary, error) {
	return c.stats.Summary(filter)
}

// EntryReport returns the detailed report for a single entry.
func (c *Controller) EntryReport(id uint) (*reports.EntryReport, error) {
	return c.stats.EntryReport(id)
}

// WriteCSV streams the entries matching filter as CSV to w and
// returns how many entries were written.
func (c *Controller) WriteCSV(w io.Writer, filter entries.Filter) (int, error) {
	matching, err := c.entries.List(filter)
	if err != nil {
		return 0, err
	}
	if err := exporters.WriteCSV(w, matching); err != nil {
		return 0, err
	}
	return len(matching), nil
}

// ExportToCSV writes the entries matching filter to a CSV file at
// path and returns how many entries were written.
func (c *Controller) ExportToCSV(path string, filter entries.Filter) (int, error) {
	matching, err := c.entries.List(filter)
	if err != nil {
		return 0, err
	}
	if err := exporters.ExportToFile(path, matching); err != nil {
		return 0, err
	}
	return len(matching), nil
}

// ImportCSV reads entries from a CSV stream and persists each valid
// row as a new entry. IDs in the file are ignored; the store assigns
// fresh ones. Rows failing validation are skipped and reported.
func (c *Controller) ImportCSV(r io.Reader) (*ImportResult, error) {
	parsed, skipped, err := exporters.ParseCSV(r)
	if err != nil {
		return nil, err
	}

	result := &ImportResult{
		TotalRows: len(parsed) + len(skipped),
		Skipped:   skipped,
	}

	for _, entry := range parsed {
		if entry.Rating < entities.RatingMin || entry.Rating > entities.RatingMax {
			result.Skipped = append(result.Skipped,
				fmt.Sprintf("%q: rating %v out of range", entry.Title, entry.Rating))
			continue
		}

		entry.ID = 0
		if entry.Year == 0 {
			entry.Year = c.now().Year()
		}
		if entry.ReadAt.IsZero() {
			entry.ReadAt = c.now()
		}

		if err := c.entries.Create(&entry); err != nil {
			return result, fmt.Errorf("failed to import entry %q: %w", entry.Title, err)
		}
		result.Imported++
	}

	return result, nil
}

// GetProfile returns the user profile.
func (c *Controller) GetProfile() (*entities.Profile, error) {
	return c.profile.Get()
}

// UpdateProfile merges the provided fields into the current profile,
// requiring a non-empty name, and returns the updated profile.
func (c *Controller) UpdateProfile(input ProfileInput) (*entities.Profile, error) {
	current, err := c.profile.Get()
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		current.Name = strings.TrimSpace(*input.Name)
	}
	if input.Email != nil {
		current.Email = *input.Email
	}
	if input.Avatar != nil {
		current.Avatar = *input.Avatar
	}

	if current.Name == "" {
		return nil, apperrors.NewValidation("name", "must not be empty")
	}

	if err := c.profile.Update(current); err != nil {
		return nil, err
	}
	return current, nil
}

// GetSetting returns a stored preference value.
func (c *Controller) GetSetting(key string) (string, error) {
	setting, err := c.settings.GetSetting(key)
	if err != nil {
		return "", err
	}
	return setting.Value, nil
}

// SetSetting stores a preference value.
func (c *Controller) SetSetting(key, value string) error {
	if strings.TrimSpace(key) == "" {
		return apperrors.NewValidation("key", "must not be empty")
	}
	return c.settings.SetSetting(key, value)
}

func (c *Controller) validateBounds(input EntryInput) error {
	if input.Rating != nil && (*input.Rating < entities.RatingMin || *input.Rating > entities.RatingMax) {
		return apperrors.NewValidation("rating",
			fmt.Sprintf("must be between %g and %g", entities.RatingMin, entities.RatingMax))
	}
	if input.Year != nil && *input.Year != 0 {
		if *input.Year < minPlausibleYear || *input.Year > c.now().Year()+1 {
			return apperrors.NewValidation("year", "is not a plausible reading year")
		}
	}
	if input.Pages != nil && *input.Pages < 0 {
		return apperrors.NewValidation("pages", "must not be negative")
	}
	return nil
}

func applyInput(entry *entities.ReadingEntry, input EntryInput) {
	if input.Title != nil {
		entry.Title = *input.Title
	}
	if input.Author != nil {
		entry.Author = *input.Author
	}
	if input.Genre != nil {
		entry.Genre = *input.Genre
	}
	if input.Subgenre != nil {
		entry.Subgenre = *input.Subgenre
	}
	if input.Year != nil {
		entry.Year = *input.Year
	}
	if input.ReadAt != nil {
		entry.ReadAt = *input.ReadAt
	}
	if input.Rating != nil {
		entry.Rating = *input.Rating
	}
	if input.Pages != nil {
		entry.Pages = *input.Pages
	}
	if input.Publisher != nil {
		entry.Publisher = *input.Publisher
	}
	if input.Notes != nil {
		entry.Notes = *input.Notes
	}
}

// updateFields maps provided input fields to their column names for a
// partial gorm update.
func updateFields(input EntryInput) map[string]any {
	fields := make(map[string]any)
	if input.Title != nil {
		fields["title"] = strings.TrimSpace(*input.Title)
	}
	if input.Author != nil {
		fields["author"] = *input.Author
	}
	if input.Genre != nil {
		fields["genre"] = *input.Genre
	}
	if input.Subgenre != nil {
		fields["subgenre"] = *input.Subgenre
	}
	if input.Year != nil {
		fields["year"] = *input.Year
	}
	if input.ReadAt != nil {
		fields["read_at"] = *input.ReadAt
	}
	if input.Rating != nil {
		fields["rating"] = *input.Rating
	}
	if input.Pages != nil {
		fields["pages"] = *input.Pages
	}
	if input.Publisher != nil {
		fields["publisher"] = *input.Publisher
	}
	if input.Notes != nil {
		fields["notes"] = *input.Notes
	}
	return fields
}
