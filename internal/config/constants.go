package config

// Default file locations
const (
	// DefaultDatabasePath is the default path for the catalog database
	DefaultDatabasePath = "./library.db"

	// DefaultExportPath is the default target for JSON export/import
	DefaultExportPath = "./library_export.json"
)
