package config

// Default paths
const (
	// DefaultDatabasePath is the default path for the application
	// database, relative to the working directory the app is
	// launched from.
	DefaultDatabasePath = "./db/readings.db"
)
