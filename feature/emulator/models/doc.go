// Package models contains the catalog_clothing schemas of the supported emulators.
//
// The clothing registry reads these rows to learn which furni classnames unlock a
// figure set, and the integrity checks reflect on the gorm tags to verify the live
// schema. The emulator database is never written to.
//
// # Supported Emulators
//
//   - Arcturus: catalog_clothing(id, name, setid)
//   - Comet: catalog_clothing(id, name, setid)
//   - Plus: catalog_clothing(id, clothing_name, clothing_parts)
package models
