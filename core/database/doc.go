// Package database handles database connections and schema inspection.
//
// It wraps GORM to open MySQL, PostgreSQL or SQLite connections from the
// application's configuration. MySQL is the production default; SQLite backs
// the test suites and single-node deployments.
//
// # Connect
//
// Connect opens the dialector for the configured driver, tunes the connection
// pool and verifies the connection with a bounded ping.
//
// # Schema Inspection
//
// GetTableColumns returns the live column list of a table. The integrity
// feature compares it against the gateway models to spot tables that were
// never migrated or drifted.
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
