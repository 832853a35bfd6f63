package validation

import "regexp"

// Require fails when the value is blank.
func Require(message string) Rule {
	return NewRule(func(value string, _ Values) bool {
		return Required(value)
	}, message)
}

// ValidEmail fails when the value is not an email address.
func ValidEmail(message string) Rule {
	return NewRule(func(value string, _ Values) bool {
		return Email(value)
	}, message)
}

func MinLen(n int, message string) Rule {
	return NewRule(func(value string, _ Values) bool {
		return MinLength(value, n)
	}, message)
}

func MaxLen(n int, message string) Rule {
	return NewRule(func(value string, _ Values) bool {
		return MaxLength(value, n)
	}, message)
}

// MatchField fails unless the value equals the current value of field.
func MatchField(field, message string) Rule {
	return NewRule(func(value string, values Values) bool {
		return Matches(value, field, values)
	}, message)
}

// MatchPattern fails unless re matches the value.
func MatchPattern(re *regexp.Regexp, message string) Rule {
	if re == nil {
		panic("validation: nil pattern")
	}
	return NewRule(func(value string, _ Values) bool {
		return re.MatchString(value)
	}, message)
}

func ContainsUppercase(message string) Rule {
	return NewRule(func(value string, _ Values) bool {
		return HasUppercase(value)
	}, message)
}

func ContainsDigit(message string) Rule {
	return NewRule(func(value string, _ Values) bool {
		return HasDigit(value)
	}, message)
}

// Custom wraps an arbitrary predicate. It is an alias for NewRule that reads
// better inside rule lists.
func Custom(check Predicate, message string) Rule {
	return NewRule(check, message)
}
