package feeds

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"wardrobe/core/storage"

	"go.uber.org/zap"
)

var (
	// ErrUpstreamUnavailable is returned for non-2xx responses, missing documents
	// and a variable listing without the base location key.
	ErrUpstreamUnavailable = errors.New("upstream unavailable")
	// ErrUpstreamTimeout is returned when a call exceeds its deadline.
	ErrUpstreamTimeout = errors.New("upstream timeout")
)

// Document names one of the three feed documents.
type Document string

const (
	FigureData Document = "figuredata"
	FigureMap  Document = "figuremap"
	FurniData  Document = "furnidata"
)

// Documents lists every feed document.
var Documents = []Document{FigureData, FigureMap, FurniData}

// Source retrieves raw feed documents. Implementations do not retry.
type Source interface {
	// Name identifies the source in logs.
	Name() string
	// ResolveBase returns the location the documents are resolved against.
	ResolveBase(ctx context.Context) (string, error)
	// Fetch returns the raw bytes of doc.
	Fetch(ctx context.Context, base string, doc Document) ([]byte, error)
}

const (
	SourceHTTP   = "http"
	SourceMirror = "mirror"
)

// Config holds the feed locations and limits.
type Config struct {
	// Source selects where documents are read from (http, mirror).
	Source string `mapstructure:"source" default:"http"`
	// VariablesURL is the external variables listing. Empty uses the hotel origin.
	VariablesURL string `mapstructure:"variables_url" default:""`
	// BaseKey is the variable holding the asset base location.
	BaseKey string `mapstructure:"base_key" default:"flash.client.url"`
	// FigureDataPath is resolved against the base unless absolute.
	FigureDataPath string `mapstructure:"figuredata_path" default:"figuredata.xml"`
	// FigureMapPath is resolved against the base unless absolute.
	FigureMapPath string `mapstructure:"figuremap_path" default:"figuremap.xml"`
	// FurniDataURL is the furnidata JSON document. Empty uses the hotel origin.
	FurniDataURL string `mapstructure:"furnidata_url" default:""`
	// TimeoutSeconds bounds every upstream call.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"8"`
	// RatePerSecond limits upstream calls; zero disables the limit.
	RatePerSecond float64 `mapstructure:"rate_per_second" default:"4"`
	// UserAgent is sent with every request.
	UserAgent string `mapstructure:"user_agent" default:"wardrobe/1.0"`
	// MirrorPrefix is the object prefix of the mirrored documents.
	MirrorPrefix string `mapstructure:"mirror_prefix" default:"gamedata/"`
}

// NewSource builds the source selected by cfg.Source.
func NewSource(cfg Config, origin string, client storage.Client, bucket string, logger *zap.Logger) (Source, error) {
	switch strings.ToLower(cfg.Source) {
	case "", SourceHTTP:
		return NewHTTPSource(cfg, origin, logger), nil
	case SourceMirror:
		if client == nil {
			return nil, fmt.Errorf("feed source %q requires a storage client", cfg.Source)
		}
		return NewMirrorSource(client, bucket, cfg.MirrorPrefix, logger), nil
	default:
		return nil, fmt.Errorf("unknown feed source %q", cfg.Source)
	}
}

// ParseBase extracts key from a plaintext key=value listing and normalises it into an
// absolute location ending in a slash.
func ParseBase(listing []byte, key string) (string, error) {
	if key == "" {
		key = "flash.client.url"
	}
	re := regexp.MustCompile(`(?m)^[ \t]*` + regexp.QuoteMeta(key) + `[ \t]*=[ \t]*(\S+)`)
	m := re.FindSubmatch(listing)
	if m == nil {
		return "", fmt.Errorf("%w: %s not found in variables", ErrUpstreamUnavailable, key)
	}
	base := string(m[1])
	if strings.HasPrefix(base, "//") {
		base = "https:" + base
	}
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}
	return base, nil
}

// Resolve joins path onto base; absolute paths are returned unchanged.
func Resolve(base, path string) string {
	if strings.Contains(path, "://") {
		return path
	}
	if strings.HasPrefix(path, "//") {
		return "https:" + path
	}
	if base != "" && !strings.HasSuffix(base, "/") {
		base += "/"
	}
	return base + strings.TrimPrefix(path, "/")
}
