package colors

import (
	"errors"
	"fmt"

	"wardrobe/feature/clothing/models"
)

// ErrColorNotAvailable is returned alongside a usable result when the requested
// color is not offered by the item. It never blocks rendering.
var ErrColorNotAvailable = errors.New("color not available")

const (
	PrimarySlot   = "1"
	SecondarySlot = "2"
)

// GenericColors is used for categories without a registered palette.
var GenericColors = []models.ColorOption{
	{ID: "1"}, {ID: "2"}, {ID: "3"}, {ID: "4"}, {ID: "5"},
	{ID: "6"}, {ID: "7"}, {ID: "8"}, {ID: "9"}, {ID: "10"},
}

// Duotone is the slot layout of a part group.
type Duotone struct {
	Enabled   bool
	Primary   string
	Secondary string
}

// DetectDuotone inspects the raw color slots of parts. Only a group naming both
// slot 1 and slot 2 is duotone.
func DetectDuotone(parts []models.SetPart) Duotone {
	var primary, secondary bool
	for _, p := range parts {
		switch p.ColorIndex {
		case 1:
			primary = true
		case 2:
			secondary = true
		}
	}
	if primary && secondary {
		return Duotone{Enabled: true, Primary: PrimarySlot, Secondary: SecondarySlot}
	}
	return Duotone{}
}

// Available returns the selectable colors of palette, or GenericColors when the
// palette is missing or offers nothing selectable.
func Available(palette *models.Palette) []models.ColorOption {
	if palette != nil {
		out := make([]models.ColorOption, 0, len(palette.Colors))
		for _, c := range palette.Colors {
			if !c.Selectable {
				continue
			}
			out = append(out, models.ColorOption{ID: c.ID, Hex: c.Hex, Club: c.Club})
		}
		if len(out) > 0 {
			return out
		}
	}
	return append([]models.ColorOption(nil), GenericColors...)
}

// Resolved is the color assignment used for rendering.
type Resolved struct {
	Primary   string `json:"primary"`
	Secondary string `json:"secondary,omitempty"`
}

// Colors returns the resolved ids in slot order.
func (r Resolved) Colors() []string {
	if r.Secondary == "" {
		return []string{r.Primary}
	}
	return []string{r.Primary, r.Secondary}
}

// ResolveColors picks the colors to render item with. The optional second argument
// requests a secondary color for duotone items. Unavailable requests fall back (the
// primary to the first available color, the secondary to the color after the primary)
// and ErrColorNotAvailable is returned together with the valid result.
func ResolveColors(item models.CatalogItem, requested string, secondary ...string) (Resolved, error) {
	ids := item.ColorIDs()
	if len(ids) == 0 {
		ids = []string{GenericColors[0].ID}
	}

	var errs []error
	res := Resolved{Primary: ids[0]}
	if requested != "" {
		if item.HasColor(requested) {
			res.Primary = requested
		} else {
			errs = append(errs, fmt.Errorf("%w: %s has no color %s", ErrColorNotAvailable, item.Key(), requested))
		}
	}

	if !item.Duotone {
		return res, errors.Join(errs...)
	}

	res.Secondary = next(ids, res.Primary)
	if len(secondary) > 0 && secondary[0] != "" {
		if item.HasColor(secondary[0]) {
			res.Secondary = secondary[0]
		} else {
			errs = append(errs, fmt.Errorf("%w: %s has no secondary color %s", ErrColorNotAvailable, item.Key(), secondary[0]))
		}
	}
	return res, errors.Join(errs...)
}

// next returns the color after id, wrapping around.
func next(ids []string, id string) string {
	for i, v := range ids {
		if v == id {
			return ids[(i+1)%len(ids)]
		}
	}
	return ids[0]
}
