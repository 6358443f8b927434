// Package catalog joins parsed feed records into immutable catalog items.
//
// Lookups holds the palette, cross-reference, metadata and registry indices for one
// refresh. Builder walks every (set, part) pair once, resolves colors and metadata
// through Lookups, detects duotone sets and classifies each item.
package catalog
