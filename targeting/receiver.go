package targeting

import (
	"sort"
	"strings"
)

// Context is the caller-facing contract: push each declared named attribute
// and its value into the receiver, once, in declared field order.
type Context interface {
	Populate(r *Receiver)
}

// Receiver collects the attributes pushed by a Context and answers the two
// questions evaluation asks: the value of a named attribute, and the
// bucketing identifier. Lookups are case-insensitive. A Receiver is built
// fresh per evaluation call and is not safe for concurrent mutation.
type Receiver struct {
	names  []string         // push order, original casing
	values map[string]Value // keyed by lower-cased name
}

// NewReceiver returns an empty receiver.
func NewReceiver() *Receiver {
	return &Receiver{values: make(map[string]Value)}
}

// Set stores an attribute. Setting the same name twice (in any casing)
// overwrites the value but keeps the original push position.
func (r *Receiver) Set(name string, v Value) {
	key := strings.ToLower(name)
	if _, exists := r.values[key]; !exists {
		r.names = append(r.names, name)
	}
	r.values[key] = v
}

// Get returns the attribute by name, case-insensitive. Absent attributes
// yield the missing value.
func (r *Receiver) Get(name string) Value {
	return r.values[strings.ToLower(name)]
}

// Names returns the attribute names in push order.
func (r *Receiver) Names() []string {
	return r.names
}

// Identifier resolves the default bucketing identifier: the first pushed
// attribute named exactly "Identifier" or ending in "Id", case-insensitive.
// Without such an attribute the identifier is empty.
func (r *Receiver) Identifier() string {
	for _, name := range r.names {
		lower := strings.ToLower(name)
		if lower == "identifier" || strings.HasSuffix(lower, "id") {
			return r.values[lower].Text()
		}
	}
	return ""
}

// IdentifierFor resolves the bucketing identifier for a feature. A non-empty
// allocationUnit names the attribute to use directly (missing attribute
// yields the empty identifier), bypassing the default rule.
func (r *Receiver) IdentifierFor(allocationUnit string) string {
	if allocationUnit != "" {
		return r.Get(allocationUnit).Text()
	}
	return r.Identifier()
}

// Fields is an ordered ad-hoc Context. Attributes are pushed in slice
// order, which makes identifier resolution predictable.
type Fields []Field

// Field is one named attribute of a Fields context.
type Field struct {
	Name  string
	Value Value
}

// Populate pushes the fields in order.
func (f Fields) Populate(r *Receiver) {
	for _, field := range f {
		r.Set(field.Name, field.Value)
	}
}

// Map is an unordered ad-hoc Context. Attributes are pushed in sorted name
// order so identifier resolution stays deterministic across runs.
type Map map[string]Value

// Populate pushes the attributes in sorted name order.
func (m Map) Populate(r *Receiver) {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		r.Set(name, m[name])
	}
}
