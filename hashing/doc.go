// Package hashing provides the deterministic salt+identifier to [0,1)
// mappings that drive traffic allocation.
//
// All functions are pure: the same salt and identifier always produce the
// same spot, in-process and across process restarts, so bucketing decisions
// are reproducible everywhere the same inputs are seen.
//
// Three functions are provided for compatibility with existing bucketing
// ecosystems:
//
//   - SpotV1 - 32-bit FNV-1a over identifier+salt with 1/1000 granularity.
//   - SpotV2 - double FNV-1a digest chain with 1/10000 granularity.
//   - SpotXX - 64-bit xxHash over "salt_identifier", full float64 precision;
//     the recommended default for percentage-based allocation.
//
// # Usage
//
//	spot := hashing.SpotXX("checkout-redesign", "user-42")
//	if interval.Percentage(25).Contains(spot) {
//		// user-42 is in the 25% bucket for this feature
//	}
//
// Distinct salts decorrelate bucketing across features that share an
// identifier: a user inside the 10% bucket of one feature has an independent
// chance of landing inside the 10% bucket of another.
package hashing
