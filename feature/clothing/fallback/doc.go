// Package fallback serves a small built-in catalog when the live feeds cannot be
// fetched or parsed.
//
// The dataset under data/ is embedded into the binary and goes through the same
// parsers and builder as live data. It has at least one item per clothing category
// and per tier, so consumers always receive a complete, well-formed catalog marked
// with source "fallback".
package fallback
