// Package evaluator implements the variant-selection engine: per evaluation
// call it resolves, for every enabled feature of every registered provider,
// the variant the caller's context lands on.
//
// # Selection algorithm
//
// For each feature whose feature-level filters the context satisfies:
//
//  1. Override providers are asked in registration order; the first
//     non-nil override wins. If it names an existing variant, that variant
//     is selected and allocation is never consulted; an unknown variant id
//     is ignored and selection proceeds normally.
//  2. Otherwise the context's bucketing identifier is hashed with the
//     feature's salt onto a spot in [0,1).
//  3. Variants whose allocation contains the spot and whose filters the
//     context satisfies become candidates.
//  4. Ties break by priority ascending with nil last, then by filter count
//     descending; the first candidate is selected.
//
// Selected variants accumulate in provider-then-feature order, which is
// also the configuration merge order: later features override earlier ones
// on overlapping keys.
//
// # Usage
//
//	eval := evaluator.New(
//		evaluator.WithProviders(staticProvider),
//	)
//
//	res, err := eval.Evaluate(ctx, targeting.Fields{
//		{Name: "UserId", Value: targeting.String("user-42")},
//		{Name: "Market", Value: targeting.String("US")},
//	})
//	if err != nil {
//		// only fails on context cancellation
//	}
//
//	var opts CheckoutOptions
//	_ = res.Bind("Checkout", &opts)
//
// Evaluation itself performs no I/O and holds no shared mutable state; any
// number of calls may run concurrently. Provider fetch failures are
// isolated: features from healthy providers still evaluate.
package evaluator
