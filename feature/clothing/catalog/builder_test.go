package catalog_test

import (
	"testing"
	"time"

	"wardrobe/feature/clothing/catalog"
	"wardrobe/feature/clothing/models"
	"wardrobe/feature/clothing/parser"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const figureData = `<figuredata>
  <colors>
    <palette id="3">
      <color id="66" index="1" club="0" selectable="1">96743D</color>
      <color id="1408" index="2" club="0" selectable="1">EEEEEE</color>
      <color id="92" index="3" club="0" selectable="0">000000</color>
    </palette>
  </colors>
  <sets>
    <settype type="ch" paletteid="3">
      <set id="3000" gender="M" club="2" sellable="0" colorable="1">
        <part id="3000" type="ch" colorable="1" colorindex="1"/>
        <part id="3000" type="ls" colorable="1" colorindex="1"/>
      </set>
      <set id="4000" gender="F" club="0" sellable="1" colorable="1">
        <part id="4000" type="ch" colorable="1" colorindex="1"/>
        <part id="4001" type="ch" colorable="1" colorindex="2"/>
      </set>
      <set id="5000" gender="U" club="0" sellable="0">
        <part id="3000" type="ch"/>
      </set>
    </settype>
    <settype type="ha" paletteid="9">
      <set id="1001" gender="U" club="0" sellable="0" colorable="1">
        <part id="1001" type="ha" colorindex="1"/>
      </set>
      <set id="1002" gender="U" club="0" sellable="0">
        <part id="1002" type="ha"/>
      </set>
      <set id="1003" gender="U" club="1" sellable="0">
        <part id="1003" type="ha"/>
      </set>
    </settype>
  </sets>
</figuredata>`

const figureMap = `<map><lib id="hh_human_shirt" revision="61856"><part id="3000" type="ch"/></lib></map>`

const furniData = `[
  {"classname":"clothing_ha_1001","furniline":"nft2025"},
  {"classname":"ha_1002"},
  {"classname":"clothing_ha_1002_rare"},
  {"classname":"clothing_ha_1003_hc","furniline":"hc"},
  {"classname":"clothing_r_crown","furniline":"rares"}
]`

func build(t *testing.T, registry map[string][]string) (*models.Catalog, catalog.Stats) {
	t.Helper()
	fd, err := parser.ParseFigureData([]byte(figureData))
	require.NoError(t, err)
	xref, err := parser.ParseFigureMap([]byte(figureMap))
	require.NoError(t, err)
	meta, err := parser.ParseMetadata([]byte(furniData))
	require.NoError(t, err)

	b := catalog.NewBuilder(nil, zap.NewNop())
	return b.Build(fd, catalog.NewLookups(fd, xref, meta, registry), models.SourceLive, time.Unix(0, 0), "")
}

func key(c models.Category, id string) models.Key {
	return models.Key{Category: c, FigureID: id}
}

func TestBuild(t *testing.T) {
	cat, stats := build(t, nil)

	assert.Equal(t, 6, stats.Sets)
	assert.Equal(t, 8, stats.Parts)
	assert.Equal(t, 1, stats.ForeignParts, "ls part is not a clothing category")
	assert.Equal(t, 1, stats.Duplicates, "ch-3000 from set 5000 loses to set 3000")
	assert.Equal(t, 6, stats.Items)
	assert.Equal(t, cat.Len(), stats.Items)

	t.Run("PremiumClubScenario", func(t *testing.T) {
		it, ok := cat.Item(key(models.CategoryChest, "3000"))
		require.True(t, ok)
		assert.Equal(t, models.TierClub, it.Tier)
		assert.Equal(t, "3000", it.SetID)
		assert.Equal(t, models.GenderMale, it.Gender)
		assert.Equal(t, "hh_human_shirt", it.CrossRef)
		assert.Equal(t, "61856", it.CrossRefRevision)
		assert.Equal(t, []string{"66", "1408"}, it.ColorIDs(), "non-selectable colors are dropped")
		assert.False(t, it.Duotone)
	})

	t.Run("SellableScenario", func(t *testing.T) {
		it, ok := cat.Item(key(models.CategoryChest, "4000"))
		require.True(t, ok)
		assert.Equal(t, models.TierSellable, it.Tier)
		assert.True(t, it.Duotone)
		assert.Equal(t, "1", it.PrimarySlot)
		assert.Equal(t, "2", it.SecondarySlot)
		assert.Empty(t, it.CrossRef)

		second, ok := cat.Item(key(models.CategoryChest, "4001"))
		require.True(t, ok)
		assert.Equal(t, "4000", second.SetID)
	})

	t.Run("MetadataProbing", func(t *testing.T) {
		nft, _ := cat.Item(key(models.CategoryHat, "1001"))
		assert.Equal(t, models.TierCollectible, nft.Tier)

		plain, _ := cat.Item(key(models.CategoryHat, "1002"))
		meta, ok := models.MetadataOf(plain.Metadata)
		require.True(t, ok)
		assert.Equal(t, "ha_1002", meta.Classname, "plain pattern is probed first")

		hc, _ := cat.Item(key(models.CategoryHat, "1003"))
		meta, ok = models.MetadataOf(hc.Metadata)
		require.True(t, ok)
		assert.Equal(t, "clothing_ha_1003_hc", meta.Classname)
		assert.Equal(t, models.TierNormal, hc.Tier, "club member sets stay normal")

		shirt, _ := cat.Item(key(models.CategoryChest, "3000"))
		assert.Equal(t, models.Absent{}, shirt.Metadata, "no match is not an error")
	})

	t.Run("GenericColors", func(t *testing.T) {
		hat, _ := cat.Item(key(models.CategoryHat, "1001"))
		assert.Len(t, hat.Colors, 10, "palette 9 is not registered")
		assert.Equal(t, 3, stats.GenericColors)
	})

	t.Run("Ordering", func(t *testing.T) {
		items := cat.Items()
		assert.Equal(t, models.CategoryHat, items[0].Category, "ha sorts before ch")
		assert.Equal(t, "1001", items[0].FigureID)
	})
}

func TestBuild_RegistryCandidatesWin(t *testing.T) {
	cat, _ := build(t, map[string][]string{"1002": {"clothing_r_crown"}})

	it, ok := cat.Item(key(models.CategoryHat, "1002"))
	require.True(t, ok)
	assert.Equal(t, models.TierRare, it.Tier)
}

func TestCandidates(t *testing.T) {
	got := catalog.Candidates(key(models.CategoryChest, "3000"), []string{"clothing_vip_shirt"})
	assert.Equal(t, []string{
		"clothing_vip_shirt",
		"ch_3000",
		"clothing_ch_3000",
		"clothing_ch_3000_special",
		"clothing_ch_3000_hc",
		"clothing_ch_3000_rare",
	}, got)
}

func TestLookups_NilInputs(t *testing.T) {
	lk := catalog.NewLookups(nil, nil, nil, nil)

	_, ok := lk.Palette(models.CategoryHead, "")
	assert.False(t, ok)
	assert.Equal(t, models.Absent{}, lk.Metadata(key(models.CategoryHead, "180"), "180"))
	_, ok = lk.CrossRef(key(models.CategoryHead, "180"))
	assert.False(t, ok)
}
