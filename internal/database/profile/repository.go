// Package profile provides database operations for the single user
// profile row.
package profile

import (
	"errors"

	"gorm.io/gorm"

	"github.com/sebastiansb/reading-log/internal/apperrors"
	"github.com/sebastiansb/reading-log/internal/entities"
)

// Repository handles all profile database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new profile repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Get retrieves the profile row. The row is seeded at database
// initialization, so a missing row means the database was created
// outside the application.
func (r *Repository) Get() (*entities.Profile, error) {
	var profile entities.Profile
	err := r.db.Order("id ASC").First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// Update saves changes to the profile row.
func (r *Repository) Update(profile *entities.Profile) error {
	result := r.db.Model(&entities.Profile{}).Where("id = ?", profile.ID).
		Updates(map[string]any{
			"name":   profile.Name,
			"email":  profile.Email,
			"avatar": profile.Avatar,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
