package provider

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/experiments/condition"
	"github.com/dmitrymomot/experiments/feature"
	"github.com/dmitrymomot/experiments/interval"
	"github.com/dmitrymomot/experiments/targeting"
)

// Definition is the textual form of one feature, decoded from YAML or JSON.
// Field keys are lowercase; filter and settings keys keep their casing
// (lookups against them are case-insensitive anyway).
type Definition struct {
	// Enabled defaults to true when omitted.
	Enabled        *bool                        `yaml:"enabled" json:"enabled"`
	Salt           string                       `yaml:"salt" json:"salt"`
	AllocationUnit string                       `yaml:"allocationUnit" json:"allocationUnit"`
	Filters        map[string]any               `yaml:"filters" json:"filters"`
	Variants       map[string]VariantDefinition `yaml:"variants" json:"variants"`
}

// VariantDefinition is the textual form of one variant.
type VariantDefinition struct {
	// Allocation is either a percentage ("25%") or a range over the unit
	// interval ("[0;0.25)"). Omitted means the full [0,1) space.
	Allocation string         `yaml:"allocation" json:"allocation"`
	Filters    map[string]any `yaml:"filters" json:"filters"`
	Settings   any            `yaml:"settings" json:"settings"`
	Priority   *int           `yaml:"priority" json:"priority"`
}

// ParseDefinitions decodes a feature-name -> definition document. YAML and
// JSON inputs both work, JSON being a YAML subset.
func ParseDefinitions(data []byte) (map[string]Definition, error) {
	var defs map[string]Definition
	if err := yaml.Unmarshal(data, &defs); err != nil {
		return nil, errors.Join(ErrParseDefinitions, err)
	}
	return defs, nil
}

// DecodeFeatures turns parsed definitions into the immutable feature model,
// stamped with the provider name. Features come out sorted by name so the
// evaluation (and merge) order of a definition set is deterministic.
// Variants with malformed allocations are skipped, never fatal.
func DecodeFeatures(providerName string, defs map[string]Definition, log *slog.Logger) []feature.Feature {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	names := make([]string, 0, len(defs))
	for name := range defs {
		names = append(names, name)
	}
	sort.Strings(names)

	features := make([]feature.Feature, 0, len(defs))
	for _, name := range names {
		features = append(features, decodeFeature(providerName, name, defs[name], log))
	}
	return features
}

func decodeFeature(providerName, name string, def Definition, log *slog.Logger) feature.Feature {
	f := feature.Feature{
		Name:           name,
		ProviderName:   providerName,
		Enabled:        def.Enabled == nil || *def.Enabled,
		Salt:           def.Salt,
		AllocationUnit: def.AllocationUnit,
		Filters:        decodeFilters(def.Filters),
	}
	if f.Salt == "" {
		f.Salt = name
	}

	ids := make([]string, 0, len(def.Variants))
	for id := range def.Variants {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		vd := def.Variants[id]
		alloc, err := ParseAllocation(vd.Allocation)
		if err != nil {
			log.Warn("skipping variant with malformed allocation",
				slog.String("feature", name),
				slog.String("variant", id),
				slog.Any("error", err))
			continue
		}
		f.Variants = append(f.Variants, feature.Variant{
			ID:         id,
			Allocation: alloc,
			Filters:    decodeFilters(vd.Filters),
			Priority:   vd.Priority,
			Settings:   vd.Settings,
		})
	}
	return f
}

func decodeFilters(raw map[string]any) []feature.PropertyFilter {
	if len(raw) == 0 {
		return nil
	}
	props := make([]string, 0, len(raw))
	for prop := range raw {
		props = append(props, prop)
	}
	sort.Strings(props)

	filters := make([]feature.PropertyFilter, 0, len(raw))
	for _, prop := range props {
		filters = append(filters, feature.PropertyFilter{
			Property:  prop,
			Condition: FilterCondition(raw[prop]),
		})
	}
	return filters
}

// ParseAllocation parses the allocation grammar: "NN%" builds a percentage
// bucket, "[a;b)" (any bracket combination) a range over the unit interval,
// and the empty string the full space.
func ParseAllocation(s string) (interval.Allocation, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return interval.Full(), nil
	}

	if strings.HasSuffix(s, "%") {
		p, err := strconv.ParseFloat(strings.TrimSpace(strings.TrimSuffix(s, "%")), 64)
		if err != nil {
			return interval.Allocation{}, errors.Join(ErrMalformedAllocation, err)
		}
		if p < 0 || p > 100 {
			return interval.Allocation{}, errors.Join(ErrMalformedAllocation, errors.New("percentage outside [0,100]"))
		}
		return interval.Percentage(p), nil
	}

	bounds, minIncl, maxIncl, ok := splitRangeString(s)
	if !ok {
		return interval.Allocation{}, ErrMalformedAllocation
	}
	min, errMin := strconv.ParseFloat(bounds[0], 64)
	max, errMax := strconv.ParseFloat(bounds[1], 64)
	if errMin != nil || errMax != nil {
		return interval.Allocation{}, ErrMalformedAllocation
	}
	if min < 0 || max > 1 || min > max {
		return interval.Allocation{}, errors.Join(ErrMalformedAllocation, errors.New("bounds outside the unit interval"))
	}
	return interval.Allocation{Min: min, Max: max, MinInclusive: minIncl, MaxInclusive: maxIncl}, nil
}

// FilterCondition turns one filter value of the text grammar into a
// condition. A string is a literal, wildcard pattern, anchored regular
// expression, or range-string; an array is a set of alternatives; a nested
// document uses the JSON condition grammar. Anything unrecognized fails
// closed.
func FilterCondition(v any) condition.Condition {
	switch val := v.(type) {
	case string:
		return stringCondition(val)
	case bool:
		return condition.Equals(targeting.Bool(val))
	case int:
		return condition.Numeric(condition.OpEQ, float64(val))
	case int64:
		return condition.Numeric(condition.OpEQ, float64(val))
	case float64:
		return condition.Numeric(condition.OpEQ, val)
	case []any:
		if len(val) == 0 {
			return condition.Never()
		}
		alts := make([]condition.Condition, len(val))
		for i, elem := range val {
			alts[i] = FilterCondition(elem)
		}
		return condition.Or(alts...)
	case map[string]any:
		raw, err := json.Marshal(val)
		if err != nil {
			return condition.Never()
		}
		return condition.Parse(string(raw))
	default:
		return condition.Never()
	}
}

func stringCondition(s string) condition.Condition {
	if bounds, minIncl, maxIncl, ok := splitRangeString(s); ok {
		return rangeCondition(bounds[0], bounds[1], minIncl, maxIncl)
	}
	if strings.HasPrefix(s, "^") || strings.HasSuffix(s, "$") {
		return condition.Regex(s)
	}
	if strings.ContainsAny(s, "*?") {
		return condition.Regex(wildcardPattern(s))
	}
	// Numeric-looking literals match either representation, the same
	// typing rule range-string bounds follow.
	if num, err := strconv.ParseFloat(s, 64); err == nil {
		return condition.Or(
			condition.StringEquals(s),
			condition.Numeric(condition.OpEQ, num),
		)
	}
	return condition.StringEquals(s)
}

// wildcardPattern compiles a glob-style pattern ("U*") into an anchored,
// case-insensitive regular expression.
func wildcardPattern(s string) string {
	quoted := regexp.QuoteMeta(s)
	quoted = strings.ReplaceAll(quoted, `\*`, ".*")
	quoted = strings.ReplaceAll(quoted, `\?`, ".")
	return "(?i)^" + quoted + "$"
}

// splitRangeString recognizes "[a;b)", "(a;b]" and friends, returning the
// two trimmed bound literals and the boundary inclusivity.
func splitRangeString(s string) (bounds [2]string, minIncl, maxIncl, ok bool) {
	if len(s) < 4 {
		return bounds, false, false, false
	}
	switch s[0] {
	case '[':
		minIncl = true
	case '(':
	default:
		return bounds, false, false, false
	}
	switch s[len(s)-1] {
	case ']':
		maxIncl = true
	case ')':
	default:
		return bounds, false, false, false
	}
	inner := s[1 : len(s)-1]
	parts := strings.Split(inner, ";")
	if len(parts) != 2 {
		return bounds, false, false, false
	}
	bounds[0] = strings.TrimSpace(parts[0])
	bounds[1] = strings.TrimSpace(parts[1])
	return bounds, minIncl, maxIncl, true
}

// rangeCondition types the bounds in grammar order: double, ISO date, GUID,
// dotted version; anything else compares lexically.
func rangeCondition(lo, hi string, minIncl, maxIncl bool) condition.Condition {
	lowOp, highOp := condition.OpGT, condition.OpLT
	if minIncl {
		lowOp = condition.OpGTE
	}
	if maxIncl {
		highOp = condition.OpLTE
	}

	if loNum, err := strconv.ParseFloat(lo, 64); err == nil {
		if hiNum, err := strconv.ParseFloat(hi, 64); err == nil {
			return condition.And(
				condition.Numeric(lowOp, loNum),
				condition.Numeric(highOp, hiNum),
			)
		}
	}

	if loTime, ok := parseISODate(lo); ok {
		if hiTime, ok := parseISODate(hi); ok {
			return condition.And(
				condition.Text(lowOp, loTime),
				condition.Text(highOp, hiTime),
			)
		}
	}

	if loID, err := uuid.Parse(lo); err == nil {
		if hiID, err := uuid.Parse(hi); err == nil {
			return condition.And(
				condition.Text(lowOp, loID.String()),
				condition.Text(highOp, hiID.String()),
			)
		}
	}

	if isDottedVersion(lo) && isDottedVersion(hi) {
		return condition.And(
			condition.Version(lowOp, lo),
			condition.Version(highOp, hi),
		)
	}

	return condition.And(
		condition.Text(lowOp, lo),
		condition.Text(highOp, hi),
	)
}

// parseISODate normalizes an ISO timestamp or date to its RFC 3339 UTC
// rendering, the same form targeting.Time produces, so string comparison
// orders correctly.
func parseISODate(s string) (string, bool) {
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC().Format(time.RFC3339Nano), true
		}
	}
	return "", false
}

func isDottedVersion(s string) bool {
	if !strings.Contains(s, ".") {
		return false
	}
	head, _, _ := strings.Cut(s, ".")
	for _, r := range head {
		if r < '0' || r > '9' {
			return false
		}
	}
	return head != ""
}
