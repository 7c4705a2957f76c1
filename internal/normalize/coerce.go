package normalize

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/hazemq/souschef/internal/domain"
)

var leadingNumber = regexp.MustCompile(`-?\d+(\.\d+)?`)

// coerceNumber turns a decoded JSON value into a float, leniently.
// Structurally wrong values (objects, arrays) fail with a ValidationError
// naming the field; implausible scalars fall back to nil without error.
// Strings are parsed by extracting the first number ("about 45 min" -> 45).
func coerceNumber(field string, v any) (*float64, error) {
	switch val := v.(type) {
	case nil:
		return nil, nil
	case float64:
		return &val, nil
	case string:
		if n, err := strconv.ParseFloat(strings.TrimSpace(val), 64); err == nil {
			return &n, nil
		}
		if m := leadingNumber.FindString(val); m != "" {
			if n, err := strconv.ParseFloat(m, 64); err == nil {
				return &n, nil
			}
		}
		return nil, nil
	case bool:
		return nil, nil
	default:
		// map[string]any or []any: the field exists but has the wrong shape.
		return nil, &domain.ValidationError{Field: field, Reason: "expected a number, got a structured value"}
	}
}

// coerceString returns the value as a trimmed string, or "" when the value
// is absent or not a string.
func coerceString(v any) string {
	s, _ := v.(string)
	return strings.TrimSpace(s)
}

// coerceStrings flattens a decoded JSON array into its string elements,
// dropping blanks and non-strings.
func coerceStrings(v any) []string {
	items, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, it := range items {
		if s := coerceString(it); s != "" {
			out = append(out, s)
		}
	}
	return out
}
