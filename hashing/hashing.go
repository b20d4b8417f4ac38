package hashing

import (
	"hash/fnv"
	"strconv"

	"github.com/cespare/xxhash/v2"
)

// Function maps a per-feature salt and a caller identifier onto a spot in
// [0,1). Implementations must be pure: no hidden state, identical output for
// identical inputs across processes. Empty salt and/or identifier are valid
// inputs and yield a stable value like any other.
type Function func(salt, identifier string) float64

// SpotV1 hashes identifier+salt with 32-bit FNV-1a and reduces it to one of
// 1000 evenly spaced spots.
func SpotV1(salt, identifier string) float64 {
	return float64(fnv1a(identifier+salt)%1000) / 1000.0
}

// SpotV2 chains two 32-bit FNV-1a digests: the first over salt+identifier,
// the second over the decimal rendering of the first, reduced to one of
// 10000 evenly spaced spots.
//
// The implementation this stays wire-compatible with performed the final
// division in integer arithmetic, collapsing every spot to 0. That is a
// defect, not a contract: the digest chain is reproduced exactly and the
// division is done in floating point.
func SpotV2(salt, identifier string) float64 {
	first := fnv1a(salt + identifier)
	second := fnv1a(strconv.FormatUint(uint64(first), 10))
	return float64(second%10000) / 10000.0
}

// SpotXX hashes "salt_identifier" with 64-bit xxHash and scales it onto
// [0,1) at full float64 precision. Use it for percentage buckets where
// 1/1000 granularity is too coarse.
func SpotXX(salt, identifier string) float64 {
	h := xxhash.Sum64String(salt + "_" + identifier)
	// Keep the top 53 bits so the result stays strictly below 1 after the
	// float64 conversion.
	return float64(h>>11) / (1 << 53)
}

func fnv1a(s string) uint32 {
	h := fnv.New32a()
	_, _ = h.Write([]byte(s))
	return h.Sum32()
}
