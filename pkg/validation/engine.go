package validation

// ValidateField returns the message of the first rule whose predicate fails
// for value, or an empty string when every rule passes.
func ValidateField(value string, rules []Rule, values Values) string {
	for _, rule := range rules {
		if !rule.Check(value, values) {
			return rule.Message
		}
	}
	return ""
}

// ValidateForm validates every field named in rules against values.
// Fields missing from values are validated as empty strings. Fields present in
// values but absent from rules are not validated and get no entry.
func ValidateForm(values Values, rules RuleSet) Errors {
	errs := make(Errors, len(rules))
	for field, fieldRules := range rules {
		errs[field] = ValidateField(values[field], fieldRules, values)
	}
	return errs
}

// HasErrors reports whether any field in errs carries a message.
func HasErrors(errs Errors) bool {
	for _, msg := range errs {
		if msg != "" {
			return true
		}
	}
	return false
}
