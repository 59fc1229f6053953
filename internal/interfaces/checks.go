package interfaces

// This file contains compile-time interface implementation checks.
// These ensure that concrete types satisfy their interfaces at compile time,
// catching missing methods before runtime.
//
// To verify all checks pass: go build ./internal/interfaces/...

import (
	"github.com/sebastiansb/reading-log/internal/controller"
	"github.com/sebastiansb/reading-log/internal/database/entries"
	"github.com/sebastiansb/reading-log/internal/database/profile"
	"github.com/sebastiansb/reading-log/internal/database/settings"
	"github.com/sebastiansb/reading-log/internal/reports"
)

// EntryStore implementations
var _ controller.EntryStore = (*entries.Repository)(nil)

// ProfileStore implementations
var _ controller.ProfileStore = (*profile.Repository)(nil)

// SettingsStore implementations
var _ controller.SettingsStore = (*settings.Repository)(nil)

// StatsEngine implementations
var _ controller.StatsEngine = (*reports.Engine)(nil)
