// Package parser turns the raw feed documents into typed records.
//
//   - ParseFigureData reads palettes and clothing sets from figuredata.xml.
//   - ParseFigureMap reads the library code of every part from figuremap.xml.
//   - ParseMetadata reads classname, furniline and description from furnidata JSON.
//
// Missing or invalid attributes fall back to documented defaults (club off,
// selectable on, unisex gender). Only a document without a usable root returns
// ErrMalformedFeed.
package parser
