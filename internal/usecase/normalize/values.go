package normalize

import (
	"math"
	"strings"

	"github.com/go-viper/mapstructure/v2"
)

// lookup resolves a dotted path such as "geometry.location.lat" inside a decoded JSON object.
func lookup(raw map[string]any, path string) (any, bool) {
	var current any = raw

	for _, segment := range strings.Split(path, ".") {
		object, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}

		current, ok = object[segment]
		if !ok {
			return nil, false
		}
	}

	return current, true
}

// firstString returns the first non-empty scalar found under paths. Numbers are formatted,
// objects and arrays are skipped.
func firstString(raw map[string]any, paths ...string) string {
	for _, path := range paths {
		value, ok := lookup(raw, path)
		if !ok || value == nil || isComposite(value) {
			continue
		}

		var s string
		if err := mapstructure.WeakDecode(value, &s); err != nil {
			continue
		}

		if s = strings.TrimSpace(s); s != "" {
			return s
		}
	}

	return ""
}

// firstFloat returns the first value under paths that decodes as a number.
func firstFloat(raw map[string]any, paths ...string) (*float64, bool) {
	for _, path := range paths {
		value, ok := lookup(raw, path)
		if !ok || value == nil {
			continue
		}

		f, ok := toFloat(value)
		if !ok {
			return nil, false
		}

		return &f, true
	}

	return nil, true
}

// firstInt is firstFloat restricted to whole numbers that fit an integer column.
func firstInt(raw map[string]any, paths ...string) (*int, bool) {
	f, ok := firstFloat(raw, paths...)
	if !ok || f == nil {
		return nil, ok
	}

	if *f != math.Trunc(*f) || *f < math.MinInt32 || *f > math.MaxInt32 {
		return nil, false
	}

	n := int(*f)

	return &n, true
}

func toFloat(value any) (float64, bool) {
	if isComposite(value) {
		return 0, false
	}

	if s, ok := value.(string); ok && strings.TrimSpace(s) == "" {
		return 0, false
	}

	var f float64
	if err := mapstructure.WeakDecode(value, &f); err != nil {
		return 0, false
	}

	return f, true
}

// firstStrings returns the first array of strings found under paths. Non-string entries are dropped.
func firstStrings(raw map[string]any, paths ...string) []string {
	for _, path := range paths {
		value, ok := lookup(raw, path)
		if !ok {
			continue
		}

		items, ok := value.([]any)
		if !ok {
			continue
		}

		result := make([]string, 0, len(items))
		for _, item := range items {
			if s, ok := item.(string); ok && strings.TrimSpace(s) != "" {
				result = append(result, strings.TrimSpace(s))
			}
		}

		return result
	}

	return nil
}

func isComposite(value any) bool {
	switch value.(type) {
	case map[string]any, []any:
		return true
	default:
		return false
	}
}
