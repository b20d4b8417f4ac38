package settings

import (
	"encoding/json"
	"errors"
	"strings"
)

// Section navigates a merged configuration by a colon- or dot-delimited
// path. Object keys match case-insensitively. The second return value
// reports whether every segment resolved.
func Section(merged any, path string) (any, bool) {
	current := merged
	for _, segment := range splitPath(path) {
		m, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}
		key, ok := findKey(m, segment)
		if !ok {
			return nil, false
		}
		current = m[key]
	}
	return current, true
}

// Bind navigates the merged configuration to the given section and decodes
// it onto dst, which must be a non-nil pointer. An unresolvable path leaves
// dst untouched and returns nil, so missing configuration falls back to the
// destination's defaults. A section that cannot be decoded onto dst returns
// an error joined with ErrBind.
func Bind(merged any, path string, dst any) error {
	if dst == nil {
		return ErrNilDestination
	}

	section, ok := Section(merged, path)
	if !ok {
		return nil
	}

	raw, err := json.Marshal(section)
	if err != nil {
		return errors.Join(ErrBind, err)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return errors.Join(ErrBind, err)
	}
	return nil
}

func splitPath(path string) []string {
	if path == "" {
		return nil
	}
	return strings.FieldsFunc(path, func(r rune) bool {
		return r == ':' || r == '.'
	})
}
