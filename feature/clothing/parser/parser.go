package parser

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/antchfx/xmlquery"
)

// ErrMalformedFeed is returned when a document cannot be parsed at all.
// Defects inside individual records fall back to defaults instead.
var ErrMalformedFeed = errors.New("malformed feed")

func parseRoot(data []byte, doc, root string) (*xmlquery.Node, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("%w: %s is empty", ErrMalformedFeed, doc)
	}
	tree, err := xmlquery.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMalformedFeed, doc, err)
	}
	node := xmlquery.FindOne(tree, "/"+root)
	if node == nil {
		return nil, fmt.Errorf("%w: %s has no <%s> root", ErrMalformedFeed, doc, root)
	}
	return node, nil
}

func attr(n *xmlquery.Node, name string) string {
	return strings.TrimSpace(n.SelectAttr(name))
}

// attrBool reads "0"/"1"/"true"/"false"; anything else yields def.
func attrBool(n *xmlquery.Node, name string, def bool) bool {
	switch strings.ToLower(attr(n, name)) {
	case "1", "true":
		return true
	case "0", "false":
		return false
	default:
		return def
	}
}

func attrInt(n *xmlquery.Node, name string, def int) int {
	v, err := strconv.Atoi(attr(n, name))
	if err != nil {
		return def
	}
	return v
}
