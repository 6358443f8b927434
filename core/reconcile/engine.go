package reconcile

import (
	"context"
	"fmt"
	"sort"

	"golang.org/x/sync/errgroup"
)

// Run loads the three indices concurrently and reconciles the union of their keys.
// Results are sorted by key.
func Run(ctx context.Context, adapter Adapter) (*Report, error) {
	var dbIndex, gdIndex, feedIndex map[string]Item

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		dbIndex, err = adapter.LoadDBIndex(gctx)
		if err != nil {
			return fmt.Errorf("%s: load database index: %w", adapter.Name(), err)
		}
		return nil
	})
	g.Go(func() (err error) {
		gdIndex, err = adapter.LoadGamedataIndex(gctx)
		if err != nil {
			return fmt.Errorf("%s: load gamedata index: %w", adapter.Name(), err)
		}
		return nil
	})
	g.Go(func() (err error) {
		feedIndex, err = adapter.LoadFeedIndex(gctx)
		if err != nil {
			return fmt.Errorf("%s: load feed index: %w", adapter.Name(), err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return Reconcile(adapter, dbIndex, gdIndex, feedIndex), nil
}

// Reconcile builds a report from already loaded indices. Nil indices are empty.
func Reconcile(adapter Adapter, dbIndex, gdIndex, feedIndex map[string]Item) *Report {
	union := make(map[string]struct{}, len(dbIndex)+len(gdIndex))
	for _, index := range []map[string]Item{dbIndex, gdIndex, feedIndex} {
		for key := range index {
			union[key] = struct{}{}
		}
	}

	report := &Report{
		Adapter: adapter.Name(),
		Results: make([]Result, 0, len(union)),
	}
	for key := range union {
		res := buildResult(key, adapter, dbIndex, gdIndex, feedIndex)
		report.Results = append(report.Results, res)

		if !res.DBPresent {
			report.Summary.MissingDB++
		}
		if !res.GamedataPresent {
			report.Summary.MissingGamedata++
		}
		if !res.FeedPresent {
			report.Summary.MissingFeed++
		}
		if len(res.Mismatch) > 0 {
			report.Summary.Mismatches++
		}
	}
	report.Summary.Total = len(report.Results)

	sort.Slice(report.Results, func(i, j int) bool {
		return report.Results[i].ID < report.Results[j].ID
	})
	return report
}

func buildResult(key string, adapter Adapter, dbIndex, gdIndex, feedIndex map[string]Item) Result {
	db, dbPresent := dbIndex[key]
	gd, gdPresent := gdIndex[key]
	feed, feedPresent := feedIndex[key]

	mismatch := adapter.Compare(db, gd, feed)
	if mismatch == nil {
		mismatch = []string{}
	}

	return Result{
		ID:              key,
		Name:            adapter.ResolveName(db, gd, feed),
		DBPresent:       dbPresent,
		GamedataPresent: gdPresent,
		FeedPresent:     feedPresent,
		Mismatch:        mismatch,
		Metadata:        adapter.Metadata(db, gd, feed),
	}
}
