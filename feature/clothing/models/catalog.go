package models

import (
	"sort"
	"strconv"
	"time"
)

// Tier is the rarity/availability bucket of a catalog item.
type Tier string

const (
	TierNormal      Tier = "normal"
	TierClub        Tier = "club"
	TierSellable    Tier = "sellable"
	TierRare        Tier = "rare"
	TierLimited     Tier = "limited"
	TierCollectible Tier = "collectible"
)

// Tiers lists every tier.
var Tiers = []Tier{TierNormal, TierClub, TierSellable, TierRare, TierLimited, TierCollectible}

// ParseTier returns the tier named s.
func ParseTier(s string) (Tier, bool) {
	for _, t := range Tiers {
		if string(t) == s {
			return t, true
		}
	}
	return "", false
}

// Source tells where a catalog came from.
type Source string

const (
	SourceLive     Source = "live"
	SourceCache    Source = "cache"
	SourceFallback Source = "fallback"
)

// Key identifies a catalog item.
type Key struct {
	Category Category
	FigureID string
}

func (k Key) String() string {
	return string(k.Category) + "-" + k.FigureID
}

// ColorOption is a color an item may be rendered with.
type ColorOption struct {
	ID   string `json:"id"`
	Hex  string `json:"hex,omitempty"`
	Club bool   `json:"club"`
}

// CatalogItem is a normalised clothing item. It is never modified after the build.
type CatalogItem struct {
	Category         Category      `json:"category"`
	FigureID         string        `json:"figure_id"`
	SetID            string        `json:"set_id"`
	Gender           Gender        `json:"gender"`
	Club             ClubLevel     `json:"club"`
	Sellable         bool          `json:"sellable"`
	Selectable       bool          `json:"selectable"`
	Colorable        bool          `json:"colorable"`
	Tier             Tier          `json:"tier"`
	Colors           []ColorOption `json:"colors"`
	Duotone          bool          `json:"duotone"`
	PrimarySlot      string        `json:"primary_slot,omitempty"`
	SecondarySlot    string        `json:"secondary_slot,omitempty"`
	CrossRef         string        `json:"cross_ref,omitempty"`
	CrossRefRevision string        `json:"cross_ref_revision,omitempty"`
	Metadata         Metadata      `json:"metadata"`
}

// Key returns the item's catalog key.
func (i CatalogItem) Key() Key {
	return Key{Category: i.Category, FigureID: i.FigureID}
}

// ColorIDs returns the available color ids in order.
func (i CatalogItem) ColorIDs() []string {
	ids := make([]string, len(i.Colors))
	for n, c := range i.Colors {
		ids[n] = c.ID
	}
	return ids
}

// HasColor reports whether id is one of the item's available colors.
func (i CatalogItem) HasColor(id string) bool {
	for _, c := range i.Colors {
		if c.ID == id {
			return true
		}
	}
	return false
}

func (i CatalogItem) clone() CatalogItem {
	i.Colors = append([]ColorOption(nil), i.Colors...)
	return i
}

// Filter narrows an item listing. Zero fields match everything.
type Filter struct {
	Category Category
	Gender   Gender
	Tier     Tier
}

func (f Filter) match(i CatalogItem) bool {
	if f.Category != "" && i.Category != f.Category {
		return false
	}
	// Unisex items fit either gender.
	if f.Gender != "" && i.Gender != f.Gender && i.Gender != GenderUnisex {
		return false
	}
	if f.Tier != "" && i.Tier != f.Tier {
		return false
	}
	return true
}

// Catalog is an immutable snapshot of every clothing item from one refresh.
type Catalog struct {
	items      []CatalogItem
	index      map[Key]int
	counts     map[Category]int
	tierCounts map[Tier]int

	Source     Source
	BuiltAt    time.Time
	Diagnostic string
}

// NewCatalog sorts items by category order and numeric figure id and indexes them.
// The catalog takes ownership of items.
func NewCatalog(items []CatalogItem, source Source, builtAt time.Time, diagnostic string) *Catalog {
	sort.SliceStable(items, func(a, b int) bool {
		if oa, ob := items[a].Category.Order(), items[b].Category.Order(); oa != ob {
			return oa < ob
		}
		na, errA := strconv.Atoi(items[a].FigureID)
		nb, errB := strconv.Atoi(items[b].FigureID)
		if errA == nil && errB == nil {
			return na < nb
		}
		return items[a].FigureID < items[b].FigureID
	})

	c := &Catalog{
		items:      items,
		index:      make(map[Key]int, len(items)),
		counts:     make(map[Category]int),
		tierCounts: make(map[Tier]int),
		Source:     source,
		BuiltAt:    builtAt,
		Diagnostic: diagnostic,
	}
	for n, it := range items {
		c.index[it.Key()] = n
		c.counts[it.Category]++
		c.tierCounts[it.Tier]++
	}
	return c
}

// WithSource returns a copy of the catalog labelled with another source.
// Items are shared; they are never mutated.
func (c *Catalog) WithSource(source Source, diagnostic string) *Catalog {
	cp := *c
	cp.Source = source
	cp.Diagnostic = diagnostic
	return &cp
}

// Len returns the number of items.
func (c *Catalog) Len() int {
	return len(c.items)
}

// Items returns a copy of every item.
func (c *Catalog) Items() []CatalogItem {
	return c.Filter(Filter{})
}

// Filter returns copies of the items matching f.
func (c *Catalog) Filter(f Filter) []CatalogItem {
	out := make([]CatalogItem, 0, len(c.items))
	for _, it := range c.items {
		if f.match(it) {
			out = append(out, it.clone())
		}
	}
	return out
}

// Item looks up a single item.
func (c *Catalog) Item(key Key) (CatalogItem, bool) {
	n, ok := c.index[key]
	if !ok {
		return CatalogItem{}, false
	}
	return c.items[n].clone(), true
}

// Counts returns the number of items per category.
func (c *Catalog) Counts() map[Category]int {
	out := make(map[Category]int, len(c.counts))
	for k, v := range c.counts {
		out[k] = v
	}
	return out
}

// TierCounts returns the number of items per tier.
func (c *Catalog) TierCounts() map[Tier]int {
	out := make(map[Tier]int, len(c.tierCounts))
	for k, v := range c.tierCounts {
		out[k] = v
	}
	return out
}

// Summary is the JSON shape of a catalog without its items.
type Summary struct {
	Source     Source           `json:"source"`
	BuiltAt    time.Time        `json:"built_at"`
	Diagnostic string           `json:"diagnostic,omitempty"`
	Total      int              `json:"total"`
	Categories map[Category]int `json:"categories"`
	Tiers      map[Tier]int     `json:"tiers"`
}

// Summary returns counts and provenance of the catalog.
func (c *Catalog) Summary() Summary {
	return Summary{
		Source:     c.Source,
		BuiltAt:    c.BuiltAt,
		Diagnostic: c.Diagnostic,
		Total:      len(c.items),
		Categories: c.Counts(),
		Tiers:      c.TierCounts(),
	}
}
