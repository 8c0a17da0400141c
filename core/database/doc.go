// Package database handles database connections and schema inspection.
//
// It wraps GORM so that the listing store can run on MySQL in production and
// on SQLite for local runs and tests, selected by Config.Driver.
//
// # Connect
//
// Connect opens the configured dialect, applies pool settings and pings the
// database within the configured timeout.
//
// # Schema Inspection
//
// GetTableColumns reads the live column definitions of a table (SHOW COLUMNS
// on MySQL, PRAGMA table_info on SQLite). The schema integrity check compares
// them with the GORM models of the listing store.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//
//	columns, err := database.GetTableColumns(db, "products")
package database
