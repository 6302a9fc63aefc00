package runtime

import (
	"strconv"
	"strings"
)

// Attribute parsing helpers. Malformed values never propagate: each helper
// answers with the supplied default instead.

// FloatAttr parses a float attribute, falling back on parse failure.
func FloatAttr(value string, def float64) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return def
	}
	return f
}

// IntAttr parses an integer attribute, falling back on parse failure.
func IntAttr(value string, def int) int {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return def
	}
	return n
}

// BoolAttr parses a boolean attribute: the literal "true" is true, the
// literal "false" is false, anything else answers the default.
func BoolAttr(value string, def bool) bool {
	switch strings.TrimSpace(value) {
	case "true":
		return true
	case "false":
		return false
	}
	return def
}
