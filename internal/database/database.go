package database

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/sebastiansb/reading-log/internal/entities"
)

// defaultProfile is seeded on first start so the application always
// has a profile row to show and edit.
var defaultProfile = entities.Profile{
	Name:   "Reader",
	Email:  "reader@example.com",
	Avatar: "default_avatar.png",
}

type Database struct {
	DB *gorm.DB
}

func NewDatabase(dbPath string) (*Database, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create database directory %s: %w", dir, err)
		}
	}

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	err = db.AutoMigrate(
		&entities.ReadingEntry{},
		&entities.Profile{},
		&entities.Setting{},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	database := &Database{DB: db}

	if err := database.seedProfile(); err != nil {
		return nil, fmt.Errorf("failed to seed profile: %w", err)
	}

	log.Printf("Database initialized successfully at %s", dbPath)

	return database, nil
}

func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (d *Database) seedProfile() error {
	var count int64
	if err := d.DB.Model(&entities.Profile{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	profile := defaultProfile
	if err := d.DB.Create(&profile).Error; err != nil {
		return fmt.Errorf("failed to create default profile: %w", err)
	}
	log.Printf("Created default profile: %s", profile.Name)
	return nil
}
