// Package database handles the optional emulator database connection.
//
// The clothing registry reads the emulator's catalog_clothing table to learn which
// furnidata classnames unlock which figure sets. The connection is never written to.
//
// # Connect
//
// Connect opens a MySQL connection through GORM with timeouts encoded in the DSN.
// It returns ErrDisabled when database.enabled is false so callers can treat the
// registry as absent.
//
// # Schema Inspection
//
// GetTableColumns runs SHOW COLUMNS so the integrity feature can compare the live
// table against the model the registry expects.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    logger.Warn("Registry disabled", zap.Error(err))
//	}
package database
