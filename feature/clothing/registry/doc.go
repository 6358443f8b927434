// Package registry reads the emulator's clothing catalogue.
//
// Hotels running an emulator keep a catalog_clothing table linking clothing furni
// classnames to the figure sets they unlock. When a database is configured, those
// classnames are probed before the naming conventions during metadata lookup.
package registry
