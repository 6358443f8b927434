package utils

import (
	"fmt"
	"strconv"
)

// ToString converts various types to string. Nil becomes the empty string.
func ToString(val any) string {
	switch v := val.(type) {
	case nil:
		return ""
	case string:
		return v
	case []byte:
		return string(v)
	case float64:
		// JSON numbers decode as float64; keep integral ids free of exponents.
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", v)
	}
}
