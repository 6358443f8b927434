// Package clothing serves the normalised clothing catalog.
//
// The Service resolves the feed base location, fetches the figure data, figure map
// and furni metadata documents concurrently through the shared cache, parses them
// and builds an immutable catalog. Every catalog carries its source:
//
//   - live: built from the feeds by this call
//   - cache: a previously built catalog that has not expired
//   - fallback: the built-in catalog, served when the feeds cannot be fetched or
//     parsed, with a diagnostic explaining why
//
// # Routes
//
//	GET    /clothing
//	POST   /clothing/refresh
//	GET    /clothing/items?category=&gender=&tier=
//	GET    /clothing/items/:category/:figureId
//	GET    /clothing/items/:category/:figureId/avatar?color=&color2=&gender=&size=&direction=
//	GET    /clothing/cache
//	DELETE /clothing/cache
package clothing
