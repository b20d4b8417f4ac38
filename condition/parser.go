package condition

import (
	"github.com/tidwall/gjson"

	"github.com/dmitrymomot/experiments/targeting"
)

// Parse builds a condition from a MongoDB-inspired JSON document. It never
// fails: malformed documents, unknown operators and ill-typed operands all
// yield a condition that is never satisfied.
//
// Grammar:
//
//   - a bare scalar is an equality test;
//   - a bare array is an OR over its elements, each parsed as a condition;
//   - an object holds $-operators; several keys form an implicit AND;
//   - $all accepts either an array (the sequence must contain every listed
//     value) or a sub-document (every element must satisfy it).
func Parse(doc string) Condition {
	if !gjson.Valid(doc) {
		return Never()
	}
	return fromResult(gjson.Parse(doc))
}

func fromResult(res gjson.Result) Condition {
	switch {
	case res.IsArray():
		return alternatives(res.Array())
	case res.IsObject():
		return fromDocument(res)
	case res.Type == gjson.String:
		return StringEquals(res.String())
	case res.Type == gjson.Number:
		return Numeric(OpEQ, res.Float())
	case res.Type == gjson.True, res.Type == gjson.False:
		return Equals(targeting.Bool(res.Bool()))
	default:
		// null and anything unrecognized fail closed
		return Never()
	}
}

func alternatives(elems []gjson.Result) Condition {
	if len(elems) == 0 {
		return Never()
	}
	children := make([]Condition, len(elems))
	for i, elem := range elems {
		children[i] = fromResult(elem)
	}
	return Or(children...)
}

func fromDocument(res gjson.Result) Condition {
	var children []Condition
	malformed := false

	res.ForEach(func(key, value gjson.Result) bool {
		cond := operator(key.String(), value)
		if cond == nil {
			malformed = true
			return false
		}
		children = append(children, cond)
		return true
	})

	if malformed || len(children) == 0 {
		return Never()
	}
	return And(children...)
}

// operator builds the condition for one $-operator; nil means the document
// is malformed and must fail closed as a whole.
func operator(op string, value gjson.Result) Condition {
	switch op {
	case "$exists":
		if !value.IsBool() {
			return nil
		}
		return Exists(value.Bool())
	case "$not":
		return Not(fromResult(value))
	case "$and":
		return combine(value, And)
	case "$or":
		return combine(value, Or)
	case "$nor":
		c := combine(value, Or)
		if c == nil {
			return nil
		}
		return Not(c)
	case "$in":
		set, ok := literalSet(value)
		if !ok {
			return nil
		}
		return In(set...)
	case "$nin":
		set, ok := literalSet(value)
		if !ok {
			return nil
		}
		return Not(In(set...))
	case "$all":
		return allOperator(value)
	case "$elemMatch":
		return ElemMatch(fromResult(value))
	case "$size":
		if value.Type != gjson.Number {
			return nil
		}
		return Size(int(value.Int()))
	case "$gt", "$gte", "$lt", "$lte", "$eq", "$ne":
		return orderedOperator(op[1:], value)
	case "$regex":
		if value.Type != gjson.String {
			return nil
		}
		return Regex(value.String())
	case "$type":
		if value.Type != gjson.String {
			return nil
		}
		return TypeOf(value.String())
	case "$vgt", "$vgte", "$vlt", "$vlte", "$veq", "$vne":
		if value.Type != gjson.String {
			return nil
		}
		o, ok := parseOp(op[2:])
		if !ok {
			return nil
		}
		if o == OpNE {
			return Not(Version(OpEQ, value.String()))
		}
		return Version(o, value.String())
	default:
		return nil
	}
}

func combine(value gjson.Result, merge func(...Condition) Condition) Condition {
	if !value.IsArray() {
		return nil
	}
	elems := value.Array()
	if len(elems) == 0 {
		return Never()
	}
	children := make([]Condition, len(elems))
	for i, elem := range elems {
		children[i] = fromResult(elem)
	}
	return merge(children...)
}

func allOperator(value gjson.Result) Condition {
	if value.IsObject() {
		return All(fromResult(value))
	}
	if !value.IsArray() {
		return nil
	}
	elems := value.Array()
	if len(elems) == 0 {
		return Never()
	}
	// Array form: the sequence must contain every listed value.
	children := make([]Condition, len(elems))
	for i, elem := range elems {
		lit, ok := literal(elem)
		if !ok {
			return nil
		}
		children[i] = ElemMatch(Equals(lit))
	}
	return And(children...)
}

func orderedOperator(name string, value gjson.Result) Condition {
	op, ok := parseOp(name)
	if !ok {
		return nil
	}
	switch value.Type {
	case gjson.Number:
		// Negation goes through Not so a missing or cross-typed value
		// passes, same as the string and bool arms.
		if op == OpNE {
			return Not(Numeric(OpEQ, value.Float()))
		}
		return Numeric(op, value.Float())
	case gjson.String:
		if op == OpEQ {
			return StringEquals(value.String())
		}
		if op == OpNE {
			return Not(StringEquals(value.String()))
		}
		return Text(op, value.String())
	case gjson.True, gjson.False:
		switch op {
		case OpEQ:
			return Equals(targeting.Bool(value.Bool()))
		case OpNE:
			return Not(Equals(targeting.Bool(value.Bool())))
		}
		return nil
	default:
		return nil
	}
}

func parseOp(name string) (Op, bool) {
	switch name {
	case "eq":
		return OpEQ, true
	case "ne":
		return OpNE, true
	case "gt":
		return OpGT, true
	case "gte":
		return OpGTE, true
	case "lt":
		return OpLT, true
	case "lte":
		return OpLTE, true
	default:
		return 0, false
	}
}

func literalSet(value gjson.Result) ([]targeting.Value, bool) {
	if !value.IsArray() {
		return nil, false
	}
	elems := value.Array()
	set := make([]targeting.Value, 0, len(elems))
	for _, elem := range elems {
		lit, ok := literal(elem)
		if !ok {
			return nil, false
		}
		set = append(set, lit)
	}
	return set, true
}

func literal(res gjson.Result) (targeting.Value, bool) {
	switch res.Type {
	case gjson.String:
		return targeting.String(res.String()), true
	case gjson.Number:
		return targeting.Number(res.Float()), true
	case gjson.True, gjson.False:
		return targeting.Bool(res.Bool()), true
	default:
		return targeting.Value{}, false
	}
}
