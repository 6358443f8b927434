package reconcile

import "context"

// Adapter defines the model-specific side of a reconciliation: how each source is
// loaded and how records sharing a key are compared. Adapters carry their own
// connections; the engine only sees indexed records.
type Adapter interface {
	// Name returns the unique name of this adapter (e.g., "clothing").
	Name() string

	// LoadDBIndex loads every database record indexed by key.
	LoadDBIndex(ctx context.Context) (map[string]Item, error)

	// LoadGamedataIndex loads every gamedata record indexed by key.
	LoadGamedataIndex(ctx context.Context) (map[string]Item, error)

	// LoadFeedIndex loads the keys reachable from the parsed feeds.
	LoadFeedIndex(ctx context.Context) (map[string]Item, error)

	// ResolveName returns the display name for a key. Any record may be nil.
	ResolveName(db, gd, feed Item) string

	// Compare describes disagreements between the records of one key.
	// Any record may be nil.
	Compare(db, gd, feed Item) []string

	// Metadata returns adapter-specific details for the result. Any record may be nil.
	Metadata(db, gd, feed Item) map[string]string
}
