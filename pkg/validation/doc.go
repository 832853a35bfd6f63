// Package validation evaluates form field values against ordered lists of
// predicate rules.
//
// A Rule pairs a Predicate with the static message shown when the predicate
// reports false. Rules for a field are evaluated in order and the first
// failing rule wins. A RuleSet maps field names to their rules.
//
// The package is stateless and has no side effects. Predicates receive the
// field value together with the full set of current form values, so
// cross-field rules such as password confirmation are expressed the same way
// as single-field rules:
//
//	rules := validation.RuleSet{
//	    "password": {
//	        validation.Require("Password is required"),
//	        validation.MinLen(8, "Password must be at least 8 characters"),
//	    },
//	    "confirmPassword": {
//	        validation.Require("Please confirm your password"),
//	        validation.MatchField("password", "Passwords do not match"),
//	    },
//	}
//
//	errs := validation.ValidateForm(values, rules)
//	if validation.HasErrors(errs) {
//	    msg := errs.Get("password")
//	    // ...
//	}
//
// # Errors
//
// A validation failure is not a Go error: it is the rule's message stored in
// Errors, where the empty string means the field is valid. When a failure has
// to cross an API boundary, Errors.Err converts it into ValidationErrors,
// which implements error and can be detected with errors.As.
//
// Predicates must be pure. A panicking predicate is a rule-set bug and is
// never recovered here.
package validation
