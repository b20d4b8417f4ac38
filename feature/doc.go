// Package feature defines the immutable feature/variant data model shared
// by providers and the evaluation engine.
//
// A Feature names a capability and carries one or more Variants, each gated
// by a traffic Allocation and a set of attribute filters. Providers publish
// ordered feature snapshots; the engine only ever reads them. On refresh a
// provider swaps in a whole new snapshot instead of mutating published
// values, so arbitrary evaluations can run concurrently without locking.
//
// # Code-first definition
//
// Features can be built fluently:
//
//	f, err := feature.New("checkout-redesign",
//		feature.WithSalt("abcdef"),
//		feature.WithFilter("Market", condition.StringEquals("US")),
//		feature.WithVariant("on",
//			feature.VariantPercentage(25),
//			feature.VariantSettings(map[string]any{"Checkout": map[string]any{"Redesign": true}}),
//		),
//	)
//
// # Providers
//
// The Provider interface supplies snapshots and the OverrideProvider
// interface pins variants out-of-band (kill switches, QA forcing). Concrete
// implementations live in the provider package.
package feature
