package validation

import "sort"

// Values holds the current value of every field in a form, keyed by field name.
type Values map[string]string

// Clone returns a shallow copy of v. A nil map clones to an empty one.
func (v Values) Clone() Values {
	out := make(Values, len(v))
	for k, val := range v {
		out[k] = val
	}
	return out
}

// Predicate reports whether value is valid. values is the full form context
// and may be nil.
type Predicate func(value string, values Values) bool

// Rule is a single validation step for a field.
type Rule struct {
	Check   Predicate
	Message string
}

// NewRule creates a rule from a predicate and the message reported when the
// predicate returns false.
// Panics on a nil predicate or an empty message: an empty message would be
// indistinguishable from "no error".
func NewRule(check Predicate, message string) Rule {
	if check == nil {
		panic("validation: nil predicate")
	}
	if message == "" {
		panic("validation: empty rule message")
	}
	return Rule{Check: check, Message: message}
}

// RuleSet maps each field name to its ordered rules.
type RuleSet map[string][]Rule

// Fields returns the field names of the rule set in sorted order.
func (rs RuleSet) Fields() []string {
	fields := make([]string, 0, len(rs))
	for name := range rs {
		fields = append(fields, name)
	}
	sort.Strings(fields)
	return fields
}
