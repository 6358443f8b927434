// Package models defines the clothing domain types shared by the parsers, the
// catalog builder, the classifier and the HTTP layer.
//
// Feed records (Palette, ClothingSet, SetPart) live for one refresh. CatalogItem
// and Catalog are immutable once built; accessors hand out copies.
package models
