// Package condition implements the filter-condition predicate tree that
// gates features and variants, plus the MongoDB-inspired JSON grammar it is
// parsed from.
//
// A Condition answers IsSatisfiedBy-style questions against a single
// attribute value resolved through a targeting.Receiver. Leaves cover
// existence, string equality, regular expressions, numeric and version
// comparison, and sequence operators; combinators compose them with boolean
// logic.
//
// # Fail-closed semantics
//
// The package never silently grants access: malformed regular expressions,
// unknown operators, and unparsable documents all produce a condition that
// is never satisfied. Combinators constructed with no children are likewise
// never satisfied. A missing attribute satisfies no leaf; Not inverts, so a
// missing attribute passes only through negations: Not(Exists(true)) and the
// parser's $ne, $nin, and $nor documents.
//
// # JSON grammar
//
// Parse builds a condition from a JSON document:
//
//	cond := condition.Parse(`{"$gte": 21, "$lt": 65}`)
//
// Supported operators: $exists, $not, $and, $or, $nor, $in, $nin, $all,
// $elemMatch, $size, $gt, $gte, $lt, $lte, $eq, $ne, $regex, $type and the
// version-comparison family $vgt, $vgte, $vlt, $vlte, $veq, $vne. A bare
// scalar means equality, a bare array is an OR over its elements parsed as
// conditions, and an object with several operator keys is an implicit AND.
//
// # Version comparison
//
// Version operators normalize both sides with a padded-string scheme (see
// NormalizeVersion) under which plain string comparison orders dotted
// versions numerically and places every pre-release below its release.
package condition
