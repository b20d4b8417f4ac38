// Package settings folds the configuration payloads of selected variants
// into one JSON-shaped value and binds sections of it onto destination
// structs.
//
// # Merge rules
//
// Configurations merge left to right, in selection order:
//
//   - two objects deep-merge recursively, key comparison is case-insensitive;
//   - two arrays concatenate in order, without deduplication;
//   - anything else (scalars or a type mismatch) is replaced outright by
//     the later value.
//
// Later features therefore override earlier ones on overlapping keys, which
// is the intended layering behavior, not an accident of iteration order.
// Merging never mutates its inputs and identical input lists always produce
// structurally identical output.
//
// # Binding
//
//	merged := settings.Merge(a, b, c)
//	var opts CheckoutOptions
//	err := settings.Bind(merged, "Checkout:Redesign", &opts)
//
// Section paths are colon- or dot-delimited and navigate object keys
// case-insensitively. An unresolvable path leaves the destination untouched
// and returns no error, so absent configuration degrades to the
// destination's zero values.
package settings
