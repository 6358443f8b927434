package parser

import (
	"strings"

	"wardrobe/feature/clothing/models"

	"github.com/antchfx/xmlquery"
)

// Library is the asset library a part is packaged in.
type Library struct {
	Code     string
	Revision string
}

// CrossRefMap links figure parts to their library codes in both directions.
type CrossRefMap struct {
	byKey  map[models.Key]Library
	byCode map[string][]models.Key
}

// ParseFigureMap parses a figuremap.xml document.
func ParseFigureMap(data []byte) (*CrossRefMap, error) {
	root, err := parseRoot(data, "figuremap", "map")
	if err != nil {
		return nil, err
	}

	m := &CrossRefMap{
		byKey:  make(map[models.Key]Library),
		byCode: make(map[string][]models.Key),
	}
	for _, lib := range xmlquery.Find(root, "lib") {
		code := attr(lib, "id")
		if code == "" {
			continue
		}
		l := Library{Code: code, Revision: attr(lib, "revision")}
		for _, p := range xmlquery.Find(lib, "part") {
			id, ptype := attr(p, "id"), strings.ToLower(attr(p, "type"))
			if id == "" || ptype == "" {
				continue
			}
			key := models.Key{Category: models.Category(ptype), FigureID: id}
			// The first library listing a part owns it.
			if _, seen := m.byKey[key]; !seen {
				m.byKey[key] = l
			}
			m.byCode[code] = append(m.byCode[code], key)
		}
	}
	return m, nil
}

// Library returns the library a part belongs to.
func (m *CrossRefMap) Library(key models.Key) (Library, bool) {
	if m == nil {
		return Library{}, false
	}
	l, ok := m.byKey[key]
	return l, ok
}

// Parts returns the parts packaged in the library with the given code.
func (m *CrossRefMap) Parts(code string) []models.Key {
	if m == nil {
		return nil
	}
	return append([]models.Key(nil), m.byCode[code]...)
}

// Len returns the number of mapped parts.
func (m *CrossRefMap) Len() int {
	if m == nil {
		return 0
	}
	return len(m.byKey)
}
