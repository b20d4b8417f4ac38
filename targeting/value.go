package targeting

import (
	"strconv"
	"strings"
	"time"
)

// Kind discriminates the concrete type stored in a Value.
type Kind uint8

const (
	KindMissing Kind = iota
	KindString
	KindNumber
	KindBool
	KindSequence
)

// String returns the grammar name of the kind, as matched by $type filters.
func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBool:
		return "bool"
	case KindSequence:
		return "array"
	default:
		return "missing"
	}
}

// Value is a tagged union over the attribute types the engine understands.
// The zero Value is the missing attribute.
type Value struct {
	kind Kind
	str  string
	num  float64
	b    bool
	seq  []Value
}

// Missing returns the absent-attribute value.
func Missing() Value { return Value{} }

// String wraps a string attribute.
func String(s string) Value { return Value{kind: KindString, str: s} }

// Number wraps a numeric attribute.
func Number(f float64) Value { return Value{kind: KindNumber, num: f} }

// Bool wraps a boolean attribute.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Time wraps a timestamp as its RFC 3339 UTC rendering, which orders
// lexically and therefore works with range filters.
func Time(t time.Time) Value {
	return String(t.UTC().Format(time.RFC3339Nano))
}

// Sequence wraps an ordered collection of values.
func Sequence(vs ...Value) Value { return Value{kind: KindSequence, seq: vs} }

// Strings wraps a slice of strings as a sequence value.
func Strings(ss []string) Value {
	vs := make([]Value, len(ss))
	for i, s := range ss {
		vs[i] = String(s)
	}
	return Sequence(vs...)
}

// Kind returns the stored kind.
func (v Value) Kind() Kind { return v.kind }

// IsMissing reports whether the value represents an absent attribute.
func (v Value) IsMissing() bool { return v.kind == KindMissing }

// Str returns the stored string; empty unless Kind is KindString.
func (v Value) Str() string { return v.str }

// Num returns the stored number; zero unless Kind is KindNumber.
func (v Value) Num() float64 { return v.num }

// Bool returns the stored boolean; false unless Kind is KindBool.
func (v Value) Bool() bool { return v.b }

// Seq returns the stored sequence; nil unless Kind is KindSequence.
func (v Value) Seq() []Value { return v.seq }

// Equal reports semantic equality between two values. String comparison is
// case-insensitive, matching filter semantics; sequences compare element by
// element.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindString:
		return strings.EqualFold(v.str, other.str)
	case KindNumber:
		return v.num == other.num
	case KindBool:
		return v.b == other.b
	case KindSequence:
		if len(v.seq) != len(other.seq) {
			return false
		}
		for i := range v.seq {
			if !v.seq[i].Equal(other.seq[i]) {
				return false
			}
		}
		return true
	default:
		return true
	}
}

// Text renders the value as the string fed into allocation hashing: strings
// verbatim, numbers in their shortest decimal form, booleans as
// "true"/"false". Missing attributes and sequences render empty.
func (v Value) Text() string {
	switch v.kind {
	case KindString:
		return v.str
	case KindNumber:
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	case KindBool:
		return strconv.FormatBool(v.b)
	default:
		return ""
	}
}
