package fallback_test

import (
	"testing"
	"time"

	"wardrobe/feature/clothing/fallback"
	"wardrobe/feature/clothing/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestCatalog_CoversEveryCategoryAndTier(t *testing.T) {
	p, err := fallback.New(nil, zap.NewNop())
	require.NoError(t, err)

	cat := p.Catalog(time.Unix(1700000000, 0), "fetch exhausted: doc:figuredata after 3 attempts")

	assert.Equal(t, models.SourceFallback, cat.Source)
	assert.Equal(t, "fetch exhausted: doc:figuredata after 3 attempts", cat.Diagnostic)
	assert.Equal(t, 17, cat.Len())

	counts := cat.Counts()
	for _, c := range models.Categories {
		assert.GreaterOrEqual(t, counts[c], 1, "category %s", c)
	}
	tiers := cat.TierCounts()
	for _, tier := range models.Tiers {
		assert.GreaterOrEqual(t, tiers[tier], 1, "tier %s", tier)
	}
}

func TestCatalog_Items(t *testing.T) {
	p, err := fallback.New(nil, nil)
	require.NoError(t, err)
	cat := p.Catalog(time.Time{}, "")

	assert.Equal(t, fallback.DefaultDiagnostic, cat.Diagnostic)

	tests := []struct {
		key  models.Key
		tier models.Tier
	}{
		{models.Key{Category: models.CategoryHead, FigureID: "180"}, models.TierNormal},
		{models.Key{Category: models.CategoryHair, FigureID: "831"}, models.TierClub},
		{models.Key{Category: models.CategoryChest, FigureID: "3000"}, models.TierSellable},
		{models.Key{Category: models.CategoryHat, FigureID: "1001"}, models.TierCollectible},
		{models.Key{Category: models.CategoryFaceAcc, FigureID: "1201"}, models.TierRare},
		{models.Key{Category: models.CategoryChestAcc, FigureID: "1801"}, models.TierLimited},
	}
	for _, tt := range tests {
		item, ok := cat.Item(tt.key)
		require.True(t, ok, tt.key.String())
		assert.Equal(t, tt.tier, item.Tier, tt.key.String())
	}

	shirt, _ := cat.Item(models.Key{Category: models.CategoryChest, FigureID: "3000"})
	assert.True(t, shirt.Duotone)
	assert.Equal(t, "hh_human_shirt", shirt.CrossRef)
	assert.NotContains(t, shirt.ColorIDs(), "1415", "unselectable colors are hidden")
}

func TestCatalog_Deterministic(t *testing.T) {
	p, err := fallback.New(nil, nil)
	require.NoError(t, err)

	at := time.Unix(0, 0)
	assert.Equal(t, p.Catalog(at, "x").Items(), p.Catalog(at, "x").Items())
}

func TestDocument(t *testing.T) {
	b, err := fallback.Document("figuredata.xml")
	require.NoError(t, err)
	assert.Contains(t, string(b), "<figuredata>")

	_, err = fallback.Document("missing.xml")
	assert.Error(t, err)
}
