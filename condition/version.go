package condition

import "strings"

// NormalizeVersion rewrites a dotted version string into a padded form whose
// plain string order matches version order. The scheme is fixed by the
// external bucketing ecosystem and must not change:
//
//   - the version splits on '.' and '-';
//   - every all-numeric segment is left-padded with spaces to width 5;
//   - segments are rejoined with '-';
//   - a version with fewer than three numeric segments and no pre-release
//     tag is extended with padded zero segments;
//   - a version with exactly three numeric segments and no pre-release tag
//     gets a trailing '~', which sorts above '-' and therefore above every
//     pre-release of the same numbers.
//
// For example "1.10.0" becomes "    1-   10-    0~" and "1.10.0-beta"
// becomes "    1-   10-    0-beta".
func NormalizeVersion(v string) string {
	segments := strings.FieldsFunc(v, func(r rune) bool {
		return r == '.' || r == '-'
	})

	numeric := 0
	preRelease := false
	padded := make([]string, 0, len(segments)+2)
	for _, seg := range segments {
		if isDigits(seg) {
			numeric++
			padded = append(padded, padSegment(seg))
		} else {
			preRelease = true
			padded = append(padded, seg)
		}
	}

	for !preRelease && numeric < 3 {
		padded = append(padded, padSegment("0"))
		numeric++
	}

	out := strings.Join(padded, "-")
	if numeric == 3 && !preRelease {
		out += "~"
	}
	return out
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func padSegment(s string) string {
	if len(s) >= 5 {
		return s
	}
	return strings.Repeat(" ", 5-len(s)) + s
}
