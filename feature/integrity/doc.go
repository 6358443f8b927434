// Package integrity provides health checks for the catalog's data sources.
//
// # Checks Provided
//
//   - Structure: the mirror bucket and its feed folder exist (supports ?fix=true).
//   - Mirror: figuredata.xml, figuremap.xml and furnidata.json are present in the
//     mirror (?fix=true copies them from the live feeds).
//   - Upstream: the feed base location resolves and every document fetches and parses.
//   - Registry: the emulator's catalog_clothing table matches the expected columns.
//
// # HTTP Endpoints
//
//   - GET /integrity : Runs all checks.
//   - GET /integrity/structure
//   - GET /integrity/mirror
//   - GET /integrity/upstream
//   - GET /integrity/registry
package integrity
