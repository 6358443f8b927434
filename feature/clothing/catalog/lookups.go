package catalog

import (
	"wardrobe/feature/clothing/models"
	"wardrobe/feature/clothing/parser"
)

// Lookups are the read-only indices the builder joins against. They are built once
// per refresh and passed explicitly.
type Lookups struct {
	palettes         map[string]models.Palette
	categoryPalettes map[models.Category]string
	crossRefs        *parser.CrossRefMap
	metadata         parser.MetadataIndex
	registry         map[string][]string
}

// NewLookups indexes the parsed documents. Any argument may be nil; registry maps a
// set id to classnames known to unlock it.
func NewLookups(fd *parser.FigureData, crossRefs *parser.CrossRefMap, metadata parser.MetadataIndex, registry map[string][]string) *Lookups {
	lk := &Lookups{
		palettes:         make(map[string]models.Palette),
		categoryPalettes: make(map[models.Category]string),
		crossRefs:        crossRefs,
		metadata:         metadata,
		registry:         registry,
	}
	if fd != nil {
		for id, p := range fd.Palettes {
			lk.palettes[id] = p
		}
		for c, id := range fd.CategoryPalettes {
			lk.categoryPalettes[c] = id
		}
	}
	return lk
}

// Palette returns the palette used by category. The settype declaration wins over
// the set's own palette id, which wins over the conventional mapping.
func (lk *Lookups) Palette(category models.Category, setPaletteID string) (*models.Palette, bool) {
	id, ok := lk.categoryPalettes[category]
	if !ok {
		id = setPaletteID
	}
	if id == "" {
		id = category.DefaultPaletteID()
	}
	p, ok := lk.palettes[id]
	if !ok {
		return nil, false
	}
	return &p, true
}

// Metadata returns the first record matching a candidate classname of key.
func (lk *Lookups) Metadata(key models.Key, setID string) models.Metadata {
	if lk.metadata == nil {
		return models.Absent{}
	}
	for _, name := range Candidates(key, lk.registry[setID]) {
		if p, ok := lk.metadata.Lookup(name); ok {
			return p
		}
	}
	return models.Absent{}
}

// CrossRef returns the library a part is packaged in.
func (lk *Lookups) CrossRef(key models.Key) (parser.Library, bool) {
	return lk.crossRefs.Library(key)
}

// Candidates lists the classnames probed for key, most specific first. Registry
// classnames (from the emulator catalog) precede the naming conventions.
func Candidates(key models.Key, registry []string) []string {
	base := string(key.Category) + "_" + key.FigureID
	out := make([]string, 0, len(registry)+5)
	out = append(out, registry...)
	return append(out,
		base,
		"clothing_"+base,
		"clothing_"+base+"_special",
		"clothing_"+base+"_hc",
		"clothing_"+base+"_rare",
	)
}
