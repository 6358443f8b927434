package clothing

import (
	"context"
	"errors"
	"fmt"

	"wardrobe/core/cache"
	"wardrobe/feature/clothing/catalog"
	"wardrobe/feature/clothing/colors"
	"wardrobe/feature/clothing/fallback"
	"wardrobe/feature/clothing/feeds"
	"wardrobe/feature/clothing/imaging"
	"wardrobe/feature/clothing/models"
	"wardrobe/feature/clothing/parser"
	"wardrobe/feature/clothing/registry"

	"github.com/benbjohnson/clock"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Cache keys used by the service.
const (
	CatalogKey   = "catalog"
	BaseKey      = "feed:base"
	DocKeyPrefix = "doc:"
)

// ErrItemNotFound is returned when no item has the requested key.
var ErrItemNotFound = errors.New("clothing item not found")

// Service builds and serves the clothing catalog.
type Service struct {
	source   feeds.Source
	cache    *cache.Cache
	registry *registry.Registry
	fallback *fallback.Provider
	builder  *catalog.Builder
	host     string
	clock    clock.Clock
	logger   *zap.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithClock sets the clock used to stamp built catalogs.
func WithClock(clk clock.Clock) Option {
	return func(s *Service) { s.clock = clk }
}

// WithRegistry enables the emulator registry metadata probe.
func WithRegistry(r *registry.Registry) Option {
	return func(s *Service) { s.registry = r }
}

// NewService creates the clothing service. host is the hotel origin used in
// rendering URLs.
func NewService(source feeds.Source, c *cache.Cache, host string, logger *zap.Logger, opts ...Option) (*Service, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	builder := catalog.NewBuilder(nil, logger)
	fb, err := fallback.New(builder, logger)
	if err != nil {
		return nil, err
	}

	s := &Service{
		source:   source,
		cache:    c,
		fallback: fb,
		builder:  builder,
		host:     host,
		clock:    clock.New(),
		logger:   logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Catalog returns the current catalog. A cached catalog is labelled "cache"; when
// the live feeds cannot be fetched or parsed the fallback catalog is returned with
// a diagnostic. Catalog never fails.
func (s *Service) Catalog(ctx context.Context) *models.Catalog {
	if v, ok := s.cache.Lookup(CatalogKey); ok {
		if cat, ok := v.(*models.Catalog); ok {
			return cat.WithSource(models.SourceCache, cat.Diagnostic)
		}
	}

	cat, err := cache.Compute(ctx, s.cache, CatalogKey, cache.ClassCatalog, s.build)
	if err != nil {
		s.logger.Warn("Live catalog unavailable, serving fallback", zap.Error(err))
		// Not cached: the next call tries the live feeds again.
		return s.fallback.Catalog(s.clock.Now(), err.Error())
	}
	return cat
}

// Refresh drops the cached catalog, documents and base location and rebuilds.
func (s *Service) Refresh(ctx context.Context) *models.Catalog {
	s.cache.Purge(CatalogKey)
	s.cache.Purge(BaseKey)
	for _, doc := range feeds.Documents {
		s.cache.Purge(DocKeyPrefix + string(doc))
	}
	s.logger.Info("Catalog refresh requested")
	return s.Catalog(ctx)
}

// Items returns the items matching f and the source they came from.
func (s *Service) Items(ctx context.Context, f models.Filter) ([]models.CatalogItem, models.Source) {
	cat := s.Catalog(ctx)
	return cat.Filter(f), cat.Source
}

// Item returns a single item.
func (s *Service) Item(ctx context.Context, key models.Key) (models.CatalogItem, models.Source, error) {
	cat := s.Catalog(ctx)
	item, ok := cat.Item(key)
	if !ok {
		return models.CatalogItem{}, cat.Source, fmt.Errorf("%w: %s", ErrItemNotFound, key)
	}
	return item, cat.Source, nil
}

// PreviewRequest selects colors, gender and pose for a rendering.
type PreviewRequest struct {
	Color  string
	Color2 string
	Gender models.Gender
	Pose   imaging.Pose
}

// Preview holds the rendering URLs of an item.
type Preview struct {
	Item         models.CatalogItem `json:"item"`
	Source       models.Source      `json:"source"`
	Colors       colors.Resolved    `json:"colors"`
	AvatarURL    string             `json:"avatar_url"`
	ThumbnailURL string             `json:"thumbnail_url"`
	Warning      string             `json:"warning,omitempty"`
}

// Preview resolves colors for the item and builds its rendering URLs. An
// unavailable color is replaced and reported in Warning.
func (s *Service) Preview(ctx context.Context, key models.Key, req PreviewRequest) (*Preview, error) {
	item, source, err := s.Item(ctx, key)
	if err != nil {
		return nil, err
	}
	return s.preview(item, source, req), nil
}

func (s *Service) preview(item models.CatalogItem, source models.Source, req PreviewRequest) *Preview {
	var secondary []string
	if req.Color2 != "" {
		secondary = append(secondary, req.Color2)
	}
	resolved, err := colors.ResolveColors(item, req.Color, secondary...)

	p := &Preview{Item: item, Source: source, Colors: resolved}
	if err != nil {
		s.logger.Warn("Requested color not available",
			zap.String("item", item.Key().String()),
			zap.String("color", req.Color),
			zap.String("color2", req.Color2),
			zap.Error(err))
		p.Warning = err.Error()
	}

	figure := imaging.FigureOf(item, resolved, req.Gender)
	p.AvatarURL = imaging.BuildAvatarURL(s.host, figure, req.Pose)
	p.ThumbnailURL = imaging.BuildIsolatedThumbnailURL(s.host, figure, req.Pose)
	return p
}

// CacheStats returns the cache counters.
func (s *Service) CacheStats() cache.Stats {
	return s.cache.Stats()
}

// PurgeCache drops every cached value.
func (s *Service) PurgeCache() {
	s.cache.PurgeAll()
}

// build fetches the three documents concurrently and joins them.
func (s *Service) build(ctx context.Context) (*models.Catalog, error) {
	base, err := cache.Get(ctx, s.cache, BaseKey, cache.ClassVolatile, s.source.ResolveBase)
	if err != nil {
		return nil, fmt.Errorf("resolve feed base: %w", err)
	}

	var (
		fd   *parser.FigureData
		xref *parser.CrossRefMap
		meta parser.MetadataIndex
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		fd, err = document(gctx, s, base, feeds.FigureData, parseFigureData)
		return err
	})
	g.Go(func() (err error) {
		xref, err = document(gctx, s, base, feeds.FigureMap, parser.ParseFigureMap)
		return err
	})
	g.Go(func() (err error) {
		meta, err = document(gctx, s, base, feeds.FurniData, parser.ParseMetadata)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	reg, err := s.registry.Load(ctx)
	if err != nil {
		// The registry only refines metadata; build without it.
		s.logger.Warn("Clothing registry unavailable", zap.Error(err))
		reg = nil
	}

	cat, stats := s.builder.Build(fd, catalog.NewLookups(fd, xref, meta, reg), models.SourceLive, s.clock.Now(), "")
	if stats.Items == 0 {
		// Keep the documents from pinning an empty catalog until they expire.
		s.cache.Purge(DocKeyPrefix + string(feeds.FigureData))
		return nil, fmt.Errorf("%w: no wearable items in %d sets", parser.ErrMalformedFeed, len(fd.Sets))
	}
	s.logger.Info("Catalog built from live feeds",
		zap.String("source", s.source.Name()),
		zap.String("base", base),
		zap.Int("items", stats.Items),
		zap.Int("foreign_parts", stats.ForeignParts),
		zap.Int("duplicates", stats.Duplicates),
		zap.Int("metadata_hits", stats.MetadataHits),
		zap.Int("cross_ref_hits", stats.CrossRefHits))
	return cat, nil
}

// parseFigureData rejects a figuredata document without sets.
func parseFigureData(raw []byte) (*parser.FigureData, error) {
	fd, err := parser.ParseFigureData(raw)
	if err != nil {
		return nil, err
	}
	if len(fd.Sets) == 0 {
		return nil, fmt.Errorf("%w: figuredata has no sets", parser.ErrMalformedFeed)
	}
	return fd, nil
}

// document fetches and parses one feed document through the cache. Parse failures
// are not retried.
func document[T any](ctx context.Context, s *Service, base string, doc feeds.Document, parse func([]byte) (T, error)) (T, error) {
	return cache.Get(ctx, s.cache, DocKeyPrefix+string(doc), cache.ClassCatalog, func(ctx context.Context) (T, error) {
		var zero T
		raw, err := s.source.Fetch(ctx, base, doc)
		if err != nil {
			return zero, err
		}
		v, err := parse(raw)
		if err != nil {
			return zero, cache.Permanent(err)
		}
		return v, nil
	})
}
