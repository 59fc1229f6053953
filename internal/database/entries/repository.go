// Package entries provides database operations for reading entries.
//
// # Usage
//
//	repo := entries.NewRepository(db)
//	entry, err := repo.GetByID(123)
package entries

import (
	"errors"

	"gorm.io/gorm"

	"github.com/sebastiansb/reading-log/internal/apperrors"
	"github.com/sebastiansb/reading-log/internal/entities"
)

// Filter restricts which entries a query considers. Zero-valued
// fields are ignored.
type Filter struct {
	Year      *int
	Genre     string
	MinRating *float64
	MaxRating *float64
	Search    string // matches title or author, case-insensitive
	SortBy    string // one of the keys in sortColumns; empty = read date
}

// sortColumns maps caller-facing sort keys to ORDER BY clauses. Only
// listed keys are accepted so callers can never inject SQL.
var sortColumns = map[string]string{
	"read_at": "read_at DESC, id DESC",
	"title":   "title ASC, id ASC",
	"author":  "author ASC, id ASC",
	"year":    "year DESC, id DESC",
	"rating":  "rating DESC, id DESC",
	"id":      "id ASC",
}

// Repository handles all reading entry database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new entries repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create persists a new entry and fills in its assigned ID.
func (r *Repository) Create(entry *entities.ReadingEntry) error {
	return r.db.Create(entry).Error
}

// GetByID retrieves a single entry by its ID.
func (r *Repository) GetByID(id uint) (*entities.ReadingEntry, error) {
	var entry entities.ReadingEntry
	err := r.db.First(&entry, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// Update applies a partial field update to the entry matching id.
// Fields not present in the map are left unchanged.
func (r *Repository) Update(id uint, fields map[string]any) error {
	result := r.db.Model(&entities.ReadingEntry{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// Delete removes the entry matching id.
func (r *Repository) Delete(id uint) error {
	result := r.db.Delete(&entities.ReadingEntry{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// List returns the entries matching every predicate in filter, most
// recently read first unless filter.SortBy says otherwise.
func (r *Repository) List(filter Filter) ([]entities.ReadingEntry, error) {
	order, ok := sortColumns[filter.SortBy]
	if !ok {
		order = sortColumns["read_at"]
	}

	var result []entities.ReadingEntry
	err := applyFilter(r.db, filter).Order(order).Find(&result).Error
	return result, err
}

// Count returns the number of entries matching filter.
func (r *Repository) Count(filter Filter) (int64, error) {
	var count int64
	err := applyFilter(r.db.Model(&entities.ReadingEntry{}), filter).Count(&count).Error
	return count, err
}

// Years returns the distinct reading years present in the store,
// newest first. Used to populate the view's year filter.
func (r *Repository) Years() ([]int, error) {
	var years []int
	err := r.db.Model(&entities.ReadingEntry{}).
		Distinct("year").Where("year != 0").Order("year DESC").
		Pluck("year", &years).Error
	return years, err
}

// Genres returns the distinct genres present in the store, sorted
// alphabetically. Used to populate the view's genre filter.
func (r *Repository) Genres() ([]string, error) {
	var genres []string
	err := r.db.Model(&entities.ReadingEntry{}).
		Distinct("genre").Where("genre != ''").Order("genre ASC").
		Pluck("genre", &genres).Error
	return genres, err
}

func applyFilter(db *gorm.DB, filter Filter) *gorm.DB {
	if filter.Year != nil {
		db = db.Where("year = ?", *filter.Year)
	}
	if filter.Genre != "" {
		db = db.Where("genre = ?", filter.Genre)
	}
	if filter.MinRating != nil {
		db = db.Where("rating >= ?", *filter.MinRating)
	}
	if filter.MaxRating != nil {
		db = db.Where("rating <= ?", *filter.MaxRating)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		db = db.Where("LOWER(title) LIKE LOWER(?) OR LOWER(author) LIKE LOWER(?)", pattern, pattern)
	}
	return db
}
