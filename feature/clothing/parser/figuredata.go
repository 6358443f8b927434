package parser

import (
	"strings"

	"wardrobe/feature/clothing/models"

	"github.com/antchfx/xmlquery"
)

// FigureData is the parsed palette and set definition document.
type FigureData struct {
	// Palettes by palette id.
	Palettes map[string]models.Palette
	// CategoryPalettes maps a set type to the palette its settype declares.
	CategoryPalettes map[models.Category]string
	// Sets in document order.
	Sets []models.ClothingSet
	// Skipped counts records dropped for lacking an id.
	Skipped int
}

// ParseFigureData parses a figuredata.xml document.
func ParseFigureData(data []byte) (*FigureData, error) {
	root, err := parseRoot(data, "figuredata", "figuredata")
	if err != nil {
		return nil, err
	}

	fd := &FigureData{
		Palettes:         make(map[string]models.Palette),
		CategoryPalettes: make(map[models.Category]string),
	}

	for _, p := range xmlquery.Find(root, "colors/palette") {
		id := attr(p, "id")
		if id == "" {
			fd.Skipped++
			continue
		}
		if _, dup := fd.Palettes[id]; dup {
			continue
		}
		fd.Palettes[id] = parsePalette(id, p, &fd.Skipped)
	}

	for _, st := range xmlquery.Find(root, "sets/settype") {
		category := models.Category(strings.ToLower(attr(st, "type")))
		if category == "" {
			fd.Skipped++
			continue
		}
		if pid := attr(st, "paletteid"); pid != "" {
			fd.CategoryPalettes[category] = pid
		}
		for _, s := range xmlquery.Find(st, "set") {
			set, ok := parseSet(category, attr(st, "paletteid"), s, &fd.Skipped)
			if !ok {
				continue
			}
			fd.Sets = append(fd.Sets, set)
		}
	}

	return fd, nil
}

func parsePalette(id string, p *xmlquery.Node, skipped *int) models.Palette {
	palette := models.Palette{ID: id}
	for _, c := range xmlquery.Find(p, "color") {
		cid := attr(c, "id")
		if cid == "" {
			*skipped++
			continue
		}
		palette.Colors = append(palette.Colors, models.PaletteColor{
			ID:    cid,
			Index: attrInt(c, "index", len(palette.Colors)),
			// Any non-zero club level restricts the color.
			Club:       attr(c, "club") != "" && attr(c, "club") != "0",
			Selectable: attrBool(c, "selectable", true),
			Hex:        strings.TrimPrefix(strings.TrimSpace(c.InnerText()), "#"),
		})
	}
	return palette
}

func parseSet(category models.Category, paletteID string, s *xmlquery.Node, skipped *int) (models.ClothingSet, bool) {
	id := attr(s, "id")
	if id == "" {
		*skipped++
		return models.ClothingSet{}, false
	}

	set := models.ClothingSet{
		ID:            id,
		Category:      category,
		PaletteID:     paletteID,
		Gender:        models.ParseGender(attr(s, "gender")),
		Club:          models.ParseClubLevel(attr(s, "club")),
		Colorable:     attrBool(s, "colorable", false),
		Selectable:    attrBool(s, "selectable", true),
		Preselectable: attrBool(s, "preselectable", false),
		Sellable:      attrBool(s, "sellable", false),
	}

	for _, p := range xmlquery.Find(s, "part") {
		pid := attr(p, "id")
		if pid == "" {
			*skipped++
			continue
		}
		ptype := strings.ToLower(attr(p, "type"))
		if ptype == "" {
			ptype = string(category)
		}
		set.Parts = append(set.Parts, models.SetPart{
			ID:         pid,
			Type:       ptype,
			Colorable:  attrBool(p, "colorable", set.Colorable),
			Index:      attrInt(p, "index", 0),
			ColorIndex: attrInt(p, "colorindex", 0),
		})
	}
	return set, true
}
