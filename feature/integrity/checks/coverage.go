package checks

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"wardrobe/core/reconcile"
	"wardrobe/feature/clothing/catalog"
	"wardrobe/feature/clothing/feeds"
	"wardrobe/feature/clothing/models"
	"wardrobe/feature/clothing/parser"
	"wardrobe/feature/clothing/registry"

	"go.uber.org/zap"
)

// ClothingPrefix marks furnidata records that unlock clothing.
const ClothingPrefix = "clothing_"

// Coverage reconciles clothing classnames across the emulator registry, the
// furnidata document and the catalog built from the live feeds. Keys are
// lowercase classnames.
type Coverage struct {
	source   feeds.Source
	registry *registry.Registry
	builder  *catalog.Builder
	logger   *zap.Logger
}

// registryEntry is the database record: the figure sets a classname unlocks.
type registryEntry struct {
	Sets []string
}

// linkEntry is the feed record: the catalog items the classname was attached to.
type linkEntry struct {
	Items []models.Key
	Sets  []string
}

// NewCoverage creates the clothing coverage adapter. A nil registry reads as empty.
func NewCoverage(src feeds.Source, reg *registry.Registry, logger *zap.Logger) *Coverage {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Coverage{
		source:   src,
		registry: reg,
		builder:  catalog.NewBuilder(nil, logger),
		logger:   logger,
	}
}

// Name implements reconcile.Adapter.
func (c *Coverage) Name() string { return "clothing" }

// LoadDBIndex inverts the registry into classname -> set ids.
func (c *Coverage) LoadDBIndex(ctx context.Context) (map[string]reconcile.Item, error) {
	sets, err := c.registry.Load(ctx)
	if err != nil {
		return nil, err
	}
	byClass := make(map[string]*registryEntry)
	for setID, classnames := range sets {
		for _, name := range classnames {
			key := strings.ToLower(name)
			entry, ok := byClass[key]
			if !ok {
				entry = &registryEntry{}
				byClass[key] = entry
			}
			entry.Sets = append(entry.Sets, setID)
		}
	}

	index := make(map[string]reconcile.Item, len(byClass))
	for key, entry := range byClass {
		sort.Strings(entry.Sets)
		index[key] = *entry
	}
	return index, nil
}

// LoadGamedataIndex returns the furnidata records carrying the clothing prefix.
func (c *Coverage) LoadGamedataIndex(ctx context.Context) (map[string]reconcile.Item, error) {
	meta, err := fetch(ctx, c.source, feeds.FurniData, parser.ParseMetadata)
	if err != nil {
		return nil, err
	}
	index := make(map[string]reconcile.Item)
	for key, rec := range meta {
		if strings.HasPrefix(key, ClothingPrefix) {
			index[key] = rec
		}
	}
	return index, nil
}

// LoadFeedIndex builds the catalog and indexes the classnames it attached to items.
func (c *Coverage) LoadFeedIndex(ctx context.Context) (map[string]reconcile.Item, error) {
	fd, err := fetch(ctx, c.source, feeds.FigureData, parser.ParseFigureData)
	if err != nil {
		return nil, err
	}
	xref, err := fetch(ctx, c.source, feeds.FigureMap, parser.ParseFigureMap)
	if err != nil {
		return nil, err
	}
	meta, err := fetch(ctx, c.source, feeds.FurniData, parser.ParseMetadata)
	if err != nil {
		return nil, err
	}
	reg, err := c.registry.Load(ctx)
	if err != nil {
		c.logger.Warn("Clothing registry unavailable", zap.Error(err))
		reg = nil
	}

	cat, _ := c.builder.Build(fd, catalog.NewLookups(fd, xref, meta, reg), models.SourceLive, time.Now(), "")

	links := make(map[string]*linkEntry)
	for _, item := range cat.Items() {
		present, ok := models.MetadataOf(item.Metadata)
		if !ok {
			continue
		}
		key := strings.ToLower(present.Classname)
		entry, ok := links[key]
		if !ok {
			entry = &linkEntry{}
			links[key] = entry
		}
		entry.Items = append(entry.Items, item.Key())
		if !contains(entry.Sets, item.SetID) {
			entry.Sets = append(entry.Sets, item.SetID)
		}
	}

	index := make(map[string]reconcile.Item, len(links))
	for key, entry := range links {
		sort.Strings(entry.Sets)
		index[key] = *entry
	}
	return index, nil
}

// ResolveName implements reconcile.Adapter with the furnidata description.
func (c *Coverage) ResolveName(db, gd, feed reconcile.Item) string {
	if rec, ok := gd.(models.Present); ok {
		return rec.Description
	}
	return ""
}

// Compare reports registry sets the catalog never linked to the classname.
func (c *Coverage) Compare(db, gd, feed reconcile.Item) []string {
	reg, ok := db.(registryEntry)
	if !ok {
		return nil
	}
	link, _ := feed.(linkEntry)

	var out []string
	for _, set := range reg.Sets {
		if !contains(link.Sets, set) {
			out = append(out, fmt.Sprintf("set %s: not linked in catalog", set))
		}
	}
	return out
}

// Metadata implements reconcile.Adapter.
func (c *Coverage) Metadata(db, gd, feed reconcile.Item) map[string]string {
	out := make(map[string]string)
	if reg, ok := db.(registryEntry); ok {
		out["registry_sets"] = strings.Join(reg.Sets, ",")
	}
	if rec, ok := gd.(models.Present); ok && rec.Furniline != "" {
		out["furniline"] = rec.Furniline
	}
	if link, ok := feed.(linkEntry); ok {
		keys := make([]string, len(link.Items))
		for i, k := range link.Items {
			keys[i] = k.String()
		}
		out["items"] = strings.Join(keys, ",")
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// fetch resolves the base and fetches and parses one document.
func fetch[T any](ctx context.Context, src feeds.Source, doc feeds.Document, parse func([]byte) (T, error)) (T, error) {
	var zero T
	base, err := src.ResolveBase(ctx)
	if err != nil {
		return zero, err
	}
	raw, err := src.Fetch(ctx, base, doc)
	if err != nil {
		return zero, err
	}
	return parse(raw)
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
