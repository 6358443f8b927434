package checks

import (
	"context"

	"wardrobe/feature/clothing/feeds"
	"wardrobe/feature/clothing/parser"
)

// DocumentReport is the outcome of fetching and parsing one feed document.
type DocumentReport struct {
	Bytes  int    `json:"bytes"`
	Status string `json:"status"` // "ok", "error"
	Error  string `json:"error,omitempty"`
}

// UpstreamReport describes whether the feeds can be resolved and parsed.
type UpstreamReport struct {
	Source    string                    `json:"source"`
	Base      string                    `json:"base,omitempty"`
	Status    string                    `json:"status"` // "ok", "error"
	Error     string                    `json:"error,omitempty"`
	Documents map[string]DocumentReport `json:"documents"`
}

var validators = map[feeds.Document]func([]byte) error{
	feeds.FigureData: func(b []byte) error { _, err := parser.ParseFigureData(b); return err },
	feeds.FigureMap:  func(b []byte) error { _, err := parser.ParseFigureMap(b); return err },
	feeds.FurniData:  func(b []byte) error { _, err := parser.ParseMetadata(b); return err },
}

// CheckUpstream resolves the feed base location and fetches and parses every document.
// Failures are reported, not returned.
func CheckUpstream(ctx context.Context, src feeds.Source) *UpstreamReport {
	report := &UpstreamReport{
		Source:    src.Name(),
		Status:    "ok",
		Documents: make(map[string]DocumentReport),
	}

	base, err := src.ResolveBase(ctx)
	if err != nil {
		report.Status = "error"
		report.Error = err.Error()
		return report
	}
	report.Base = base

	for _, doc := range feeds.Documents {
		dr := DocumentReport{Status: "ok"}
		data, err := src.Fetch(ctx, base, doc)
		if err == nil {
			dr.Bytes = len(data)
			err = validators[doc](data)
		}
		if err != nil {
			dr.Status = "error"
			dr.Error = err.Error()
			report.Status = "error"
		}
		report.Documents[string(doc)] = dr
	}
	return report
}
