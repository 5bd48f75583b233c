// Package database handles database connections and schema inspection.
//
// It wraps GORM to configure MySQL (production) and SQLite (local development and tests)
// connections from the application's configuration.
//
// # Connect
//
// Connect opens the driver named in the configuration. Both drivers enable GORM error
// translation so that the store can map uniqueness and foreign key rejections onto the
// Conflict error kind. SQLite connections are limited to a single pooled connection with
// foreign key enforcement switched on, which keeps ":memory:" databases alive for the
// lifetime of the *gorm.DB.
//
// # Schema Inspection
//
// GetTableColumns lists the columns of a table (SHOW COLUMNS on MySQL, PRAGMA table_info on
// SQLite). The integrity feature compares this against the catalog row models.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//
//	columns, err := database.GetTableColumns(db, "menu")
package database
