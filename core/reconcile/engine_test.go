package reconcile

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockAdapter is a simple test adapter keyed by strings.
type mockAdapter struct {
	dbIndex    map[string]Item
	gdIndex    map[string]Item
	feedIndex  map[string]Item
	mismatches map[string][]string
	dbErr      error
	gdErr      error
	feedErr    error
	loads      atomic.Int32
}

func (m *mockAdapter) Name() string {
	return "mock"
}

func (m *mockAdapter) LoadDBIndex(ctx context.Context) (map[string]Item, error) {
	m.loads.Add(1)
	return m.dbIndex, m.dbErr
}

func (m *mockAdapter) LoadGamedataIndex(ctx context.Context) (map[string]Item, error) {
	m.loads.Add(1)
	return m.gdIndex, m.gdErr
}

func (m *mockAdapter) LoadFeedIndex(ctx context.Context) (map[string]Item, error) {
	m.loads.Add(1)
	return m.feedIndex, m.feedErr
}

func (m *mockAdapter) ResolveName(db, gd, feed Item) string {
	if db != nil {
		return "db-name"
	}
	if gd != nil {
		return "gd-name"
	}
	return ""
}

func (m *mockAdapter) Compare(db, gd, feed Item) []string {
	for _, item := range []Item{db, gd, feed} {
		if key, ok := item.(string); ok {
			return m.mismatches[key]
		}
	}
	return nil
}

func (m *mockAdapter) Metadata(db, gd, feed Item) map[string]string {
	return nil
}

func TestRun_UnionKeys(t *testing.T) {
	adapter := &mockAdapter{
		dbIndex:   map[string]Item{"A": "A", "B": "B"},
		gdIndex:   map[string]Item{"B": "B", "C": "C"},
		feedIndex: map[string]Item{"C": "C", "D": "D"},
	}

	report, err := Run(context.Background(), adapter)
	require.NoError(t, err)
	assert.Equal(t, int32(3), adapter.loads.Load())
	assert.Equal(t, "mock", report.Adapter)

	ids := make([]string, 0, len(report.Results))
	for _, r := range report.Results {
		ids = append(ids, r.ID)
	}
	assert.Equal(t, []string{"A", "B", "C", "D"}, ids)

	a, b, c, d := report.Results[0], report.Results[1], report.Results[2], report.Results[3]
	assert.True(t, a.DBPresent)
	assert.False(t, a.GamedataPresent)
	assert.Equal(t, "db-name", a.Name)

	assert.True(t, b.DBPresent)
	assert.True(t, b.GamedataPresent)
	assert.False(t, b.FeedPresent)

	assert.False(t, c.DBPresent)
	assert.True(t, c.FeedPresent)
	assert.Equal(t, "gd-name", c.Name)

	assert.False(t, d.DBPresent)
	assert.False(t, d.GamedataPresent)
	assert.True(t, d.FeedPresent)
	assert.Equal(t, "", d.Name)

	assert.Equal(t, Summary{Total: 4, MissingDB: 2, MissingGamedata: 2, MissingFeed: 2}, report.Summary)
}

func TestRun_Mismatches(t *testing.T) {
	adapter := &mockAdapter{
		dbIndex:    map[string]Item{"A": "A", "B": "B"},
		gdIndex:    map[string]Item{"A": "A", "B": "B"},
		feedIndex:  map[string]Item{"A": "A", "B": "B"},
		mismatches: map[string][]string{"B": {"set 1201: not in figuredata"}},
	}

	report, err := Run(context.Background(), adapter)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Summary.Mismatches)
	assert.Empty(t, report.Results[0].Mismatch)
	assert.NotNil(t, report.Results[0].Mismatch, "mismatch list is never nil")
	assert.Equal(t, []string{"set 1201: not in figuredata"}, report.Results[1].Mismatch)

	issues := report.Issues()
	require.Len(t, issues, 1)
	assert.Equal(t, "B", issues[0].ID)
}

func TestRun_LoadErrors(t *testing.T) {
	tests := []struct {
		name      string
		adapter   *mockAdapter
		expectErr string
	}{
		{"DB load error", &mockAdapter{dbErr: errors.New("db error")}, "load database index: db error"},
		{"Gamedata load error", &mockAdapter{gdErr: errors.New("gamedata error")}, "load gamedata index: gamedata error"},
		{"Feed load error", &mockAdapter{feedErr: errors.New("feed error")}, "load feed index: feed error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Run(context.Background(), tt.adapter)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.expectErr)
			assert.Contains(t, err.Error(), "mock:")
		})
	}
}

func TestReconcile_NilIndices(t *testing.T) {
	report := Reconcile(&mockAdapter{}, nil, map[string]Item{"A": "A"}, nil)
	require.Len(t, report.Results, 1)
	assert.Equal(t, Summary{Total: 1, MissingDB: 1, MissingFeed: 1}, report.Summary)

	empty := Reconcile(&mockAdapter{}, nil, nil, nil)
	assert.Empty(t, empty.Results)
	assert.Empty(t, empty.Issues())
}
