// Package reconcile compares three sources of truth that share a key: a database,
// a gamedata document and the parsed feeds.
//
// An Adapter loads each source into an in-memory index. Run builds the three
// indices concurrently, takes the union of their keys and reports, per key, which
// sources hold it and where the records disagree.
//
//	report, err := reconcile.Run(ctx, adapter)
//	for _, r := range report.Issues() {
//	    ...
//	}
//
// The engine is read-only; fixing a reported gap is left to the caller.
package reconcile
