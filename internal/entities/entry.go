package entities

import (
	"time"
)

// Rating bounds for a reading entry. Ratings are validated at the
// controller; the store accepts whatever it is given.
const (
	RatingMin = 0.0
	RatingMax = 10.0
)

// ReadingEntry is one recorded book with its reading metadata.
type ReadingEntry struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"index;size:512" json:"title"`
	Author    string    `gorm:"index;size:256" json:"author"`
	Genre     string    `gorm:"index;size:100" json:"genre"`
	Subgenre  string    `gorm:"size:100" json:"subgenre,omitempty"`
	Year      int       `gorm:"index" json:"year"` // year the book was read
	ReadAt    time.Time `json:"read_at"`           // date the book was finished
	Rating    float64   `json:"rating"`
	Pages     int       `json:"pages,omitempty"`
	Publisher string    `gorm:"size:256" json:"publisher,omitempty"`
	Notes     string    `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (ReadingEntry) TableName() string {
	return "reading_entries"
}

// Profile holds the single user profile row. The application is
// single-user; Get always returns the seeded row.
type Profile struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:100" json:"name"`
	Email     string    `gorm:"size:255" json:"email,omitempty"`
	Avatar    string    `gorm:"size:255" json:"avatar,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Profile) TableName() string {
	return "profile"
}

type Setting struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Key       string    `gorm:"uniqueIndex;size:100" json:"key"`
	Value     string    `gorm:"type:text" json:"value"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Setting) TableName() string {
	return "settings"
}

// Known setting keys
const (
	SettingKeyTheme         = "theme"
	SettingKeyDefaultExport = "default_export_dir"
	SettingKeyLastFilter    = "last_filter"
)
