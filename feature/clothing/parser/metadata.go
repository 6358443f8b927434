package parser

import (
	"fmt"
	"strings"

	"wardrobe/core/utils"
	"wardrobe/feature/clothing/models"

	"github.com/goccy/go-json"
)

// MetadataIndex holds furnidata records keyed by lowercased classname.
type MetadataIndex map[string]models.Present

// Lookup finds a record by classname, ignoring case.
func (idx MetadataIndex) Lookup(classname string) (models.Present, bool) {
	p, ok := idx[strings.ToLower(classname)]
	return p, ok
}

// ParseMetadata parses furnidata JSON. Both a bare array of records and the
// hotel's {"roomitemtypes":{"furnitype":[...]},"wallitemtypes":{...}} shape are accepted.
func ParseMetadata(data []byte) (MetadataIndex, error) {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: furnidata: %v", ErrMalformedFeed, err)
	}

	var records []any
	switch v := raw.(type) {
	case []any:
		records = v
	case map[string]any:
		for _, section := range []string{"roomitemtypes", "wallitemtypes"} {
			records = append(records, furnitypes(v[section])...)
		}
	default:
		return nil, fmt.Errorf("%w: furnidata is neither an array nor an object", ErrMalformedFeed)
	}

	idx := make(MetadataIndex, len(records))
	for _, r := range records {
		rec, ok := r.(map[string]any)
		if !ok {
			continue
		}
		classname := strings.TrimSpace(utils.ToString(rec["classname"]))
		if classname == "" {
			continue
		}
		key := strings.ToLower(classname)
		if _, dup := idx[key]; dup {
			continue
		}
		idx[key] = models.Present{
			Classname:   classname,
			Furniline:   strings.TrimSpace(utils.ToString(rec["furniline"])),
			Description: strings.TrimSpace(utils.ToString(rec["description"])),
		}
	}
	return idx, nil
}

func furnitypes(section any) []any {
	m, ok := section.(map[string]any)
	if !ok {
		return nil
	}
	list, _ := m["furnitype"].([]any)
	return list
}
