package reconcile

// Item is a source-specific record. Adapters define the concrete type.
type Item any

// Result is the reconciliation output for a single key.
type Result struct {
	// ID is the key shared by the three sources.
	ID string `json:"id"`

	// Name is the display name of the entity, if any source provides one.
	Name string `json:"name,omitempty"`

	// DBPresent indicates whether the key exists in the database.
	DBPresent bool `json:"db_present"`

	// GamedataPresent indicates whether the key exists in the gamedata document.
	GamedataPresent bool `json:"gamedata_present"`

	// FeedPresent indicates whether the key is reachable from the parsed feeds.
	FeedPresent bool `json:"feed_present"`

	// Mismatch describes disagreements between the sources, e.g. "set 1201: not in figuredata".
	Mismatch []string `json:"mismatch"`

	// Metadata holds adapter-specific details.
	Metadata map[string]string `json:"metadata,omitempty"`
}

// Summary provides aggregate counts over a report.
type Summary struct {
	Total           int `json:"total"`
	MissingDB       int `json:"missing_db"`
	MissingGamedata int `json:"missing_gamedata"`
	MissingFeed     int `json:"missing_feed"`
	Mismatches      int `json:"mismatches"`
}

// Report is the full output of a reconciliation.
type Report struct {
	Adapter string   `json:"adapter"`
	Summary Summary  `json:"summary"`
	Results []Result `json:"results"`
}

// Issues returns the results with at least one missing source or a mismatch.
func (r *Report) Issues() []Result {
	var out []Result
	for _, res := range r.Results {
		if !res.DBPresent || !res.GamedataPresent || !res.FeedPresent || len(res.Mismatch) > 0 {
			out = append(out, res)
		}
	}
	return out
}
