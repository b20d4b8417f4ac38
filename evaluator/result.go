package evaluator

import (
	"github.com/dmitrymomot/experiments/feature"
	"github.com/dmitrymomot/experiments/settings"
)

// Result holds the outcome of one evaluation call: the selected variants in
// provider-then-feature order, the optional audit metadata, and the ordered
// configuration payloads behind Settings and Bind. Results are created
// fresh per call and are not shared.
type Result struct {
	// Variants are the selected variants in selection order.
	Variants []feature.Variant
	// Metadata is the per-feature audit trail; nil when the evaluator was
	// built with WithoutMetadata.
	Metadata []feature.Metadata

	configs []any
}

// Settings merges the selected variants' configuration payloads in
// selection order and returns the combined value.
func (r *Result) Settings() any {
	return settings.Merge(r.configs...)
}

// Bind merges the selected configurations and decodes the named section
// onto dst. An unresolvable section leaves dst at its defaults.
func (r *Result) Bind(section string, dst any) error {
	return settings.Bind(r.Settings(), section, dst)
}
