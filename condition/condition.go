package condition

import (
	"regexp"
	"strings"

	"github.com/dmitrymomot/experiments/targeting"
)

// Condition is a predicate over one attribute value. Implementations are
// immutable and safe for concurrent use.
type Condition interface {
	// Match reports whether the value satisfies the condition. The value
	// may be missing; no leaf matches a missing value except Exists(false).
	Match(v targeting.Value) bool
}

// Op is a comparison operator for ordered leaves.
type Op uint8

const (
	OpEQ Op = iota
	OpNE
	OpGT
	OpGTE
	OpLT
	OpLTE
)

// compare applies the operator to a three-way comparison result.
func (op Op) compare(c int) bool {
	switch op {
	case OpEQ:
		return c == 0
	case OpNE:
		return c != 0
	case OpGT:
		return c > 0
	case OpGTE:
		return c >= 0
	case OpLT:
		return c < 0
	case OpLTE:
		return c <= 0
	default:
		return false
	}
}

type never struct{}

func (never) Match(targeting.Value) bool { return false }

// Never returns the condition that no value satisfies. It is the fail-closed
// result for malformed patterns and documents.
func Never() Condition { return never{} }

type exists struct{ want bool }

func (c exists) Match(v targeting.Value) bool { return !v.IsMissing() == c.want }

// Exists returns a condition on attribute presence: Exists(true) requires
// the attribute, Exists(false) requires its absence.
func Exists(want bool) Condition { return exists{want: want} }

type stringEquals struct{ operand string }

func (c stringEquals) Match(v targeting.Value) bool {
	return v.Kind() == targeting.KindString && strings.EqualFold(v.Str(), c.operand)
}

// StringEquals returns a case-insensitive exact string match.
func StringEquals(operand string) Condition { return stringEquals{operand: operand} }

type equals struct{ operand targeting.Value }

func (c equals) Match(v targeting.Value) bool {
	return !v.IsMissing() && v.Equal(c.operand)
}

// Equals returns semantic equality against a fixed value.
func Equals(operand targeting.Value) Condition { return equals{operand: operand} }

type regex struct{ re *regexp.Regexp }

func (c regex) Match(v targeting.Value) bool {
	return v.Kind() == targeting.KindString && c.re.MatchString(v.Str())
}

// Regex returns a compiled regular-expression match on string values. A
// malformed pattern fails closed: the returned condition is never satisfied.
func Regex(pattern string) Condition {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return Never()
	}
	return regex{re: re}
}

type numeric struct {
	op      Op
	operand float64
}

func (c numeric) Match(v targeting.Value) bool {
	if v.Kind() != targeting.KindNumber {
		return false
	}
	switch {
	case v.Num() < c.operand:
		return c.op.compare(-1)
	case v.Num() > c.operand:
		return c.op.compare(1)
	default:
		return c.op.compare(0)
	}
}

// Numeric returns an ordered comparison on numeric values.
func Numeric(op Op, operand float64) Condition { return numeric{op: op, operand: operand} }

type text struct {
	op      Op
	operand string
}

func (c text) Match(v targeting.Value) bool {
	if v.Kind() != targeting.KindString {
		return false
	}
	return c.op.compare(strings.Compare(strings.ToLower(v.Str()), strings.ToLower(c.operand)))
}

// Text returns a case-insensitive lexical comparison on string values. It
// backs range filters over lexically ordered attributes such as RFC 3339
// timestamps and canonical GUIDs.
func Text(op Op, operand string) Condition { return text{op: op, operand: operand} }

type version struct {
	op      Op
	operand string // normalized
}

func (c version) Match(v targeting.Value) bool {
	if v.Kind() != targeting.KindString {
		return false
	}
	return c.op.compare(strings.Compare(NormalizeVersion(v.Str()), c.operand))
}

// Version returns an ordered comparison on dotted version strings, using
// padded normalization so that string order matches version order.
func Version(op Op, operand string) Condition {
	return version{op: op, operand: NormalizeVersion(operand)}
}

type in struct{ set []targeting.Value }

func (c in) Match(v targeting.Value) bool {
	if v.Kind() != targeting.KindSequence {
		return false
	}
	for _, elem := range v.Seq() {
		for _, member := range c.set {
			if elem.Equal(member) {
				return true
			}
		}
	}
	return false
}

// In returns a condition satisfied when any element of a sequence value is
// a member of the given set. Non-sequence values never satisfy it.
func In(set ...targeting.Value) Condition { return in{set: set} }

type size struct{ n int }

func (c size) Match(v targeting.Value) bool {
	return v.Kind() == targeting.KindSequence && len(v.Seq()) == c.n
}

// Size returns a condition on the length of a sequence value.
func Size(n int) Condition { return size{n: n} }

type typeOf struct{ kind string }

func (c typeOf) Match(v targeting.Value) bool {
	if v.Kind() != targeting.KindSequence {
		return false
	}
	for _, elem := range v.Seq() {
		if elem.Kind().String() != c.kind {
			return false
		}
	}
	return len(v.Seq()) > 0
}

// TypeOf returns a condition satisfied when every element of a non-empty
// sequence value has the named kind ("string", "number", "bool", "array").
func TypeOf(kind string) Condition { return typeOf{kind: strings.ToLower(kind)} }

type elemMatch struct{ child Condition }

func (c elemMatch) Match(v targeting.Value) bool {
	if v.Kind() != targeting.KindSequence {
		return false
	}
	for _, elem := range v.Seq() {
		if c.child.Match(elem) {
			return true
		}
	}
	return false
}

// ElemMatch returns a condition satisfied when at least one element of a
// sequence value satisfies the child condition.
func ElemMatch(child Condition) Condition { return elemMatch{child: child} }

type all struct{ child Condition }

func (c all) Match(v targeting.Value) bool {
	if v.Kind() != targeting.KindSequence || len(v.Seq()) == 0 {
		return false
	}
	for _, elem := range v.Seq() {
		if !c.child.Match(elem) {
			return false
		}
	}
	return true
}

// All returns a condition satisfied when every element of a non-empty
// sequence value satisfies the child condition.
func All(child Condition) Condition { return all{child: child} }

type and struct{ children []Condition }

func (c and) Match(v targeting.Value) bool {
	if len(c.children) == 0 {
		return false
	}
	for _, child := range c.children {
		if !child.Match(v) {
			return false
		}
	}
	return true
}

// And returns the conjunction of the children. With no children the
// condition is never satisfied.
func And(children ...Condition) Condition {
	if len(children) == 1 {
		return children[0]
	}
	return and{children: children}
}

type or struct{ children []Condition }

func (c or) Match(v targeting.Value) bool {
	for _, child := range c.children {
		if child.Match(v) {
			return true
		}
	}
	return false
}

// Or returns the disjunction of the children. With no children the
// condition is never satisfied.
func Or(children ...Condition) Condition {
	if len(children) == 1 {
		return children[0]
	}
	return or{children: children}
}

type not struct{ child Condition }

func (c not) Match(v targeting.Value) bool { return !c.child.Match(v) }

// Not returns the negation of the child. Because leaves never match a
// missing value, Not(Exists(true)) is satisfied by absence.
func Not(child Condition) Condition { return not{child: child} }
