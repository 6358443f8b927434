package catalog

import (
	"time"

	"wardrobe/feature/clothing/classify"
	"wardrobe/feature/clothing/colors"
	"wardrobe/feature/clothing/models"
	"wardrobe/feature/clothing/parser"

	"go.uber.org/zap"
)

// Stats describes one build.
type Stats struct {
	Sets          int `json:"sets"`
	Parts         int `json:"parts"`
	Items         int `json:"items"`
	ForeignParts  int `json:"foreign_parts"`
	Duplicates    int `json:"duplicates"`
	MetadataHits  int `json:"metadata_hits"`
	CrossRefHits  int `json:"cross_ref_hits"`
	GenericColors int `json:"generic_colors"`
}

// Builder joins parsed feed records into catalog items.
type Builder struct {
	classifier *classify.Classifier
	logger     *zap.Logger
}

// NewBuilder creates a builder. A nil classifier uses the default rule table.
func NewBuilder(classifier *classify.Classifier, logger *zap.Logger) *Builder {
	if classifier == nil {
		classifier = classify.New(classify.DefaultOptions())
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Builder{classifier: classifier, logger: logger}
}

// Build creates one item per (set, part) whose part type is a clothing category.
// When two parts share a key the first one in document order wins.
func (b *Builder) Build(fd *parser.FigureData, lk *Lookups, source models.Source, builtAt time.Time, diagnostic string) (*models.Catalog, Stats) {
	var stats Stats
	var items []models.CatalogItem
	seen := make(map[models.Key]struct{})

	for _, set := range fd.Sets {
		stats.Sets++
		duo := colors.DetectDuotone(set.Parts)

		for _, part := range set.Parts {
			stats.Parts++
			category, ok := models.ParseCategory(part.Type)
			if !ok {
				// Body, hand and sleeve parts ride along with their set.
				stats.ForeignParts++
				continue
			}
			key := models.Key{Category: category, FigureID: part.ID}
			if _, dup := seen[key]; dup {
				stats.Duplicates++
				continue
			}
			seen[key] = struct{}{}

			item := models.CatalogItem{
				Category:   category,
				FigureID:   part.ID,
				SetID:      set.ID,
				Gender:     set.Gender,
				Club:       set.Club,
				Sellable:   set.Sellable,
				Selectable: set.Selectable,
				Colorable:  set.Colorable || part.Colorable,
				Metadata:   lk.Metadata(key, set.ID),
			}

			palette, found := lk.Palette(category, set.PaletteID)
			if !found {
				stats.GenericColors++
			}
			item.Colors = colors.Available(palette)

			if duo.Enabled {
				item.Duotone = true
				item.PrimarySlot = duo.Primary
				item.SecondarySlot = duo.Secondary
			}
			if lib, ok := lk.CrossRef(key); ok {
				item.CrossRef = lib.Code
				item.CrossRefRevision = lib.Revision
				stats.CrossRefHits++
			}
			if _, ok := item.Metadata.(models.Present); ok {
				stats.MetadataHits++
			}

			item.Tier = b.classifier.Classify(item)
			items = append(items, item)
		}
	}

	stats.Items = len(items)
	b.logger.Debug("Catalog built",
		zap.String("source", string(source)),
		zap.Int("sets", stats.Sets),
		zap.Int("items", stats.Items),
		zap.Int("metadata_hits", stats.MetadataHits),
		zap.Int("cross_ref_hits", stats.CrossRefHits))

	return models.NewCatalog(items, source, builtAt, diagnostic), stats
}
