// Package provider supplies concrete feature sources for the evaluation
// engine: static in-memory snapshots, YAML/JSON definition files, a
// Redis-backed store, a refreshing cache wrapper, and a pinning override
// provider.
//
// All providers publish immutable snapshots and replace them atomically, so
// evaluations running concurrently with a refresh observe either the old or
// the new feature set in full.
//
// # Definition grammar
//
// File and Redis providers decode a common textual grammar, one definition
// per feature:
//
//	checkout-redesign:
//	  enabled: true
//	  salt: abcdef
//	  allocationUnit: TenantId
//	  filters:
//	    Market: ["U*", "PL", "^C.+$"]
//	    AgeGroup: ["1", "[2;3)"]
//	  variants:
//	    on:
//	      allocation: 25%
//	      priority: 1
//	      settings:
//	        Checkout:
//	          Redesign: true
//	    off:
//	      allocation: "[0.25;1)"
//
// Filter values are literals, glob-style wildcards ("U*"), anchored regular
// expressions ("^C.+$"), range-strings ("[2;3)" over doubles, ISO dates,
// GUIDs or dotted versions), arrays of alternatives, or nested documents in
// the JSON condition grammar. A variant with a malformed allocation is
// skipped and logged; it never fails the definition set.
//
// # Refreshing
//
//	inner := provider.NewFile("flags", "/etc/experiments/features.yaml")
//	cached := provider.NewCached(inner)
//	if err := cached.Start(ctx); err != nil {
//		// no initial snapshot could be fetched
//	}
//	defer cached.Close()
//
// Cached keeps serving the previous snapshot when a refresh fails, retrying
// with constant backoff per attempt.
package provider
