// Package reports computes read-only aggregate views over the reading
// entries. Nothing in this package mutates the store.
package reports

import (
	"errors"

	"gorm.io/gorm"

	"github.com/sebastiansb/reading-log/internal/apperrors"
	"github.com/sebastiansb/reading-log/internal/database/entries"
	"github.com/sebastiansb/reading-log/internal/entities"
)

// DefaultTopGenres is how many genres Summary reports, matching the
// genre ranking shown in the stats dialog.
const DefaultTopGenres = 5

// GenreCount is one row of a per-genre breakdown.
type GenreCount struct {
	Genre string `json:"genre"`
	Count int64  `json:"count"`
}

// YearCount is one row of a per-year breakdown.
type YearCount struct {
	Year  int   `json:"year"`
	Count int64 `json:"count"`
}

// Summary aggregates the store contents for the statistics view.
type Summary struct {
	TotalCount    int64        `json:"total_count"`
	AverageRating float64      `json:"average_rating"`
	HasRatings    bool         `json:"has_ratings"`
	ByYear        []YearCount  `json:"by_year"`
	TopGenres     []GenreCount `json:"top_genres"`
}

// EntryReport is the detailed per-entry report: the entry itself plus
// collection-wide context figures.
type EntryReport struct {
	Entry               entities.ReadingEntry `json:"entry"`
	TotalEntries        int64                 `json:"total_entries"`
	GlobalAverageRating float64               `json:"global_average_rating"`
}

// Engine computes statistics from the current store snapshot.
type Engine struct {
	db      *gorm.DB
	entries *entries.Repository
}

// NewEngine creates a statistics engine over the given database.
func NewEngine(db *gorm.DB) *Engine {
	return &Engine{db: db, entries: entries.NewRepository(db)}
}

// TotalCount returns the number of entries matching filter.
func (e *Engine) TotalCount(filter entries.Filter) (int64, error) {
	return e.entries.Count(filter)
}

// AverageRating returns the arithmetic mean rating over the entries
// matching filter. Returns apperrors.ErrEmptyResult when no entries
// match.
func (e *Engine) AverageRating(filter entries.Filter) (float64, error) {
	matching, err := e.entries.List(filter)
	if err != nil {
		return 0, err
	}
	if len(matching) == 0 {
		return 0, apperrors.ErrEmptyResult
	}

	var sum float64
	for _, entry := range matching {
		sum += entry.Rating
	}
	return sum / float64(len(matching)), nil
}

// CountByGenre returns entry counts grouped by genre.
func (e *Engine) CountByGenre() (map[string]int64, error) {
	var rows []GenreCount
	err := e.db.Model(&entities.ReadingEntry{}).
		Select("genre, COUNT(*) as count").
		Group("genre").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	result := make(map[string]int64, len(rows))
	for _, row := range rows {
		result[row.Genre] = row.Count
	}
	return result, nil
}

// CountByYear returns entry counts grouped by reading year.
func (e *Engine) CountByYear() (map[int]int64, error) {
	rows, err := e.countByYearRows()
	if err != nil {
		return nil, err
	}

	result := make(map[int]int64, len(rows))
	for _, row := range rows {
		result[row.Year] = row.Count
	}
	return result, nil
}

// TopGenres returns the most-read genres, highest count first.
func (e *Engine) TopGenres(limit int) ([]GenreCount, error) {
	var rows []GenreCount
	err := e.db.Model(&entities.ReadingEntry{}).
		Select("genre, COUNT(*) as count").
		Group("genre").
		Order("count DESC, genre ASC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}

// Summary computes the statistics payload for the stats view. Unlike
// AverageRating, an empty result set is not an error here: the summary
// of an empty collection is a legitimate report, flagged through
// HasRatings.
func (e *Engine) Summary(filter entries.Filter) (*Summary, error) {
	total, err := e.entries.Count(filter)
	if err != nil {
		return nil, err
	}

	summary := &Summary{TotalCount: total}

	avg, err := e.AverageRating(filter)
	if err != nil && !errors.Is(err, apperrors.ErrEmptyResult) {
		return nil, err
	}
	if err == nil {
		summary.AverageRating = avg
		summary.HasRatings = true
	}

	if summary.ByYear, err = e.countByYearRows(); err != nil {
		return nil, err
	}
	if summary.TopGenres, err = e.TopGenres(DefaultTopGenres); err != nil {
		return nil, err
	}

	return summary, nil
}

// EntryReport builds the detailed report for one entry: its fields
// plus the collection totals it is viewed against.
func (e *Engine) EntryReport(id uint) (*EntryReport, error) {
	entry, err := e.entries.GetByID(id)
	if err != nil {
		return nil, err
	}

	total, err := e.entries.Count(entries.Filter{})
	if err != nil {
		return nil, err
	}

	report := &EntryReport{Entry: *entry, TotalEntries: total}

	avg, err := e.AverageRating(entries.Filter{})
	if err != nil && !errors.Is(err, apperrors.ErrEmptyResult) {
		return nil, err
	}
	if err == nil {
		report.GlobalAverageRating = avg
	}

	return report, nil
}

func (e *Engine) countByYearRows() ([]YearCount, error) {
	var rows []YearCount
	err := e.db.Model(&entities.ReadingEntry{}).
		Select("year, COUNT(*) as count").
		Group("year").
		Order("year DESC").
		Scan(&rows).Error
	return rows, err
}
