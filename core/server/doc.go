// Package server holds the HTTP server configuration and constants.
//
// The Config struct defines the HTTP port, the API key, the regional hotel whose
// public feeds are read, and the emulator whose clothing registry may be consulted.
//
// # Usage
//
// This package is embedded by core/config and used by the clothing feature to
// derive the upstream origin (Origin) and by the registry to pick a table model.
package server
