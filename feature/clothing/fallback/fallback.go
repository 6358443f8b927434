package fallback

import (
	"embed"
	"fmt"
	"time"

	"wardrobe/feature/clothing/catalog"
	"wardrobe/feature/clothing/models"
	"wardrobe/feature/clothing/parser"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

//go:embed data/*
var data embed.FS

// DefaultDiagnostic is attached when the caller gives no reason.
const DefaultDiagnostic = "live feeds unavailable, serving built-in catalog"

// Provider builds the synthetic catalog served while the live feeds are down.
type Provider struct {
	builder *catalog.Builder
	figure  *parser.FigureData
	lookups *catalog.Lookups
	logger  *zap.Logger
}

// New parses the embedded dataset through the regular parsers.
func New(builder *catalog.Builder, logger *zap.Logger) (*Provider, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if builder == nil {
		builder = catalog.NewBuilder(nil, logger)
	}

	fd, err := parser.ParseFigureData(mustRead("figuredata.xml"))
	if err != nil {
		return nil, fmt.Errorf("fallback figuredata: %w", err)
	}
	xref, err := parser.ParseFigureMap(mustRead("figuremap.xml"))
	if err != nil {
		return nil, fmt.Errorf("fallback figuremap: %w", err)
	}
	meta, err := parser.ParseMetadata(mustRead("furnidata.json"))
	if err != nil {
		return nil, fmt.Errorf("fallback furnidata: %w", err)
	}
	var registry map[string][]string
	if err := json.Unmarshal(mustRead("registry.json"), &registry); err != nil {
		return nil, fmt.Errorf("fallback registry: %w", err)
	}

	return &Provider{
		builder: builder,
		figure:  fd,
		lookups: catalog.NewLookups(fd, xref, meta, registry),
		logger:  logger,
	}, nil
}

// Catalog returns a freshly built fallback catalog stamped with builtAt.
func (p *Provider) Catalog(builtAt time.Time, diagnostic string) *models.Catalog {
	if diagnostic == "" {
		diagnostic = DefaultDiagnostic
	}
	cat, stats := p.builder.Build(p.figure, p.lookups, models.SourceFallback, builtAt, diagnostic)
	p.logger.Warn("Serving fallback catalog",
		zap.String("diagnostic", diagnostic),
		zap.Int("items", stats.Items))
	return cat
}

// Document returns the raw embedded document with the given file name.
func Document(name string) ([]byte, error) {
	return data.ReadFile("data/" + name)
}

func mustRead(name string) []byte {
	b, err := Document(name)
	if err != nil {
		panic(err)
	}
	return b
}
