// Package targeting adapts caller-supplied evaluation contexts into the
// name->value lookup consumed by filter evaluation and allocation hashing.
//
// A Context pushes its named attributes into a Receiver exactly once per
// evaluation. Each attribute is stored as a tagged Value, so later filter
// dispatch switches on a small kind enum instead of inspecting runtime types
// on the hot path.
//
// # Usage
//
// Implement Context on your own type:
//
//	type userContext struct {
//		UserID string
//		Market string
//		Age    int
//	}
//
//	func (c userContext) Populate(r *targeting.Receiver) {
//		r.Set("UserId", targeting.String(c.UserID))
//		r.Set("Market", targeting.String(c.Market))
//		r.Set("Age", targeting.Number(float64(c.Age)))
//	}
//
// or use the ordered Fields helper for ad-hoc contexts:
//
//	tc := targeting.Fields{
//		{Name: "Identifier", Value: targeting.String("user-42")},
//		{Name: "Market", Value: targeting.String("US")},
//	}
//
// # Identifier resolution
//
// The bucketing identifier is the first pushed attribute whose name is
// exactly "Identifier" or ends in "Id" (case-insensitive). Features may
// override this by naming an explicit allocation-unit attribute. Push order
// is therefore significant; Fields preserves it, the unordered Map helper
// sorts names for determinism instead.
package targeting
