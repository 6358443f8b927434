// Package imaging builds avatar renderer URLs for clothing previews.
//
// The builders are pure: identical inputs always yield byte-identical URLs, with
// query parameters emitted in a fixed order (figure, gender, size, direction,
// head_direction, action, gesture, headonly).
package imaging
