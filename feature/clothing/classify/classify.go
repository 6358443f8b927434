package classify

import (
	"strings"

	"wardrobe/feature/clothing/models"
)

// Condition is the kind of test a Rule performs.
type Condition int

const (
	// PremiumClub matches items whose set requires the premium club.
	PremiumClub Condition = iota
	// Sellable matches items flagged sellable by the feed.
	Sellable
	// CollectionIn matches metadata whose furniline is one of Values.
	CollectionIn
	// ClassnamePrefix matches metadata whose classname starts with one of Values.
	ClassnamePrefix
)

func (c Condition) String() string {
	switch c {
	case PremiumClub:
		return "premium_club"
	case Sellable:
		return "sellable"
	case CollectionIn:
		return "collection_in"
	case ClassnamePrefix:
		return "classname_prefix"
	default:
		return "unknown"
	}
}

// MarshalText renders the condition by name.
func (c Condition) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// Rule assigns Tier to items satisfying Condition.
type Rule struct {
	Condition Condition   `json:"condition"`
	Values    []string    `json:"values,omitempty"`
	Tier      models.Tier `json:"tier"`
}

func (r Rule) matches(item models.CatalogItem) bool {
	switch r.Condition {
	case PremiumClub:
		return item.Club == models.ClubPremium
	case Sellable:
		return item.Sellable
	case CollectionIn:
		meta, ok := models.MetadataOf(item.Metadata)
		if !ok {
			return false
		}
		line := strings.ToLower(meta.Furniline)
		for _, v := range r.Values {
			if line == v {
				return true
			}
		}
		return false
	case ClassnamePrefix:
		meta, ok := models.MetadataOf(item.Metadata)
		if !ok {
			return false
		}
		name := strings.ToLower(meta.Classname)
		for _, v := range r.Values {
			if strings.HasPrefix(name, v) {
				return true
			}
		}
		return false
	default:
		return false
	}
}

// Options parameterise the metadata heuristics. Feed flags always take precedence.
type Options struct {
	Collections   []string
	RarePrefix    string
	LimitedPrefix string
}

// DefaultOptions are the naming conventions observed in the public furnidata.
func DefaultOptions() Options {
	return Options{
		Collections:   []string{"nft2025", "nft2024", "nft2023", "nft", "nftmint", "testing"},
		RarePrefix:    "clothing_r",
		LimitedPrefix: "clothing_ltd",
	}
}

// Classifier evaluates an ordered rule table; the first matching rule wins.
type Classifier struct {
	rules []Rule
}

// New builds the rule table from opts.
func New(opts Options) *Classifier {
	lower := func(in []string) []string {
		out := make([]string, 0, len(in))
		for _, v := range in {
			if v = strings.ToLower(strings.TrimSpace(v)); v != "" {
				out = append(out, v)
			}
		}
		return out
	}
	return &Classifier{rules: []Rule{
		{Condition: PremiumClub, Tier: models.TierClub},
		{Condition: Sellable, Tier: models.TierSellable},
		{Condition: CollectionIn, Values: lower(opts.Collections), Tier: models.TierCollectible},
		{Condition: ClassnamePrefix, Values: lower([]string{opts.RarePrefix}), Tier: models.TierRare},
		{Condition: ClassnamePrefix, Values: lower([]string{opts.LimitedPrefix}), Tier: models.TierLimited},
	}}
}

// Classify returns the tier of the first matching rule, or TierNormal.
func (c *Classifier) Classify(item models.CatalogItem) models.Tier {
	for _, r := range c.rules {
		if r.matches(item) {
			return r.Tier
		}
	}
	return models.TierNormal
}

// Rules returns a copy of the rule table in evaluation order.
func (c *Classifier) Rules() []Rule {
	out := make([]Rule, len(c.rules))
	for i, r := range c.rules {
		r.Values = append([]string(nil), r.Values...)
		out[i] = r
	}
	return out
}

var defaultClassifier = New(DefaultOptions())

// Classify uses the default rule table.
func Classify(item models.CatalogItem) models.Tier {
	return defaultClassifier.Classify(item)
}
