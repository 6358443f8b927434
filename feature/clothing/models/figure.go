package models

// PaletteColor is one entry of a figure data palette.
type PaletteColor struct {
	ID         string
	Index      int
	Club       bool
	Selectable bool
	Hex        string
}

// Palette is an ordered color list shared by one or more categories.
type Palette struct {
	ID     string
	Colors []PaletteColor
}

// SetPart is one renderable part of a clothing set.
type SetPart struct {
	ID        string
	Type      string
	Colorable bool
	Index     int
	// ColorIndex is the raw color slot: 0 none, 1 primary, 2 secondary.
	ColorIndex int
}

// ClothingSet is a wearable set as published in figure data.
type ClothingSet struct {
	ID            string
	Category      Category
	PaletteID     string
	Gender        Gender
	Club          ClubLevel
	Colorable     bool
	Selectable    bool
	Preselectable bool
	Sellable      bool
	Parts         []SetPart
}

// Metadata is either Absent or Present. Callers type-switch on it.
type Metadata interface {
	isMetadata()
}

// Absent marks an item for which no furnidata record matched.
type Absent struct{}

// Present is a matched furnidata record.
type Present struct {
	Classname   string `json:"classname"`
	Furniline   string `json:"furniline"`
	Description string `json:"description"`
}

func (Absent) isMetadata()  {}
func (Present) isMetadata() {}

// MetadataOf unwraps m, reporting false for Absent or nil.
func MetadataOf(m Metadata) (Present, bool) {
	p, ok := m.(Present)
	return p, ok
}
