// Package colors models the color slots of clothing items.
//
// DetectDuotone decides from the raw color slots whether an item takes one or two
// colors. ResolveColors validates a requested color against the item's palette and
// falls back to the first available one, reporting ErrColorNotAvailable without
// failing.
package colors
