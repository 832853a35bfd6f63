package validation_test

import (
	"errors"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/smartform/pkg/validation"
)

func emailRules() validation.RuleSet {
	return validation.RuleSet{
		"email": {
			validation.Require("Email is required"),
			validation.ValidEmail("Please enter a valid email address"),
		},
	}
}

func passwordRules() validation.RuleSet {
	return validation.RuleSet{
		"password": {
			validation.Require("Password is required"),
			validation.MinLen(8, "Password must be at least 8 characters"),
			validation.ContainsUppercase("Password must contain at least one uppercase letter"),
			validation.ContainsDigit("Password must contain at least one number"),
		},
		"confirmPassword": {
			validation.Require("Please confirm your password"),
			validation.MatchField("password", "Passwords do not match"),
		},
	}
}

func TestValidateField(t *testing.T) {
	t.Parallel()

	alwaysFalse := func(string, validation.Values) bool { return false }
	alwaysTrue := func(string, validation.Values) bool { return true }

	t.Run("first failing rule wins", func(t *testing.T) {
		t.Parallel()
		rules := []validation.Rule{
			validation.NewRule(alwaysTrue, "first"),
			validation.NewRule(alwaysFalse, "second"),
			validation.NewRule(alwaysFalse, "third"),
		}
		assert.Equal(t, "second", validation.ValidateField("v", rules, nil))
	})

	t.Run("all passing rules yield no error", func(t *testing.T) {
		t.Parallel()
		rules := []validation.Rule{
			validation.NewRule(alwaysTrue, "first"),
			validation.NewRule(alwaysTrue, "second"),
		}
		assert.Empty(t, validation.ValidateField("v", rules, nil))
	})

	t.Run("no rules yield no error", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, validation.ValidateField("v", nil, nil))
	})

	t.Run("stops at first failure", func(t *testing.T) {
		t.Parallel()
		calls := 0
		counting := func(string, validation.Values) bool {
			calls++
			return true
		}
		rules := []validation.Rule{
			validation.NewRule(alwaysFalse, "stop"),
			validation.NewRule(counting, "never"),
		}
		validation.ValidateField("v", rules, nil)
		assert.Zero(t, calls)
	})

	t.Run("predicate receives value and context", func(t *testing.T) {
		t.Parallel()
		ctx := validation.Values{"other": "x"}
		var gotValue string
		var gotCtx validation.Values
		rule := validation.NewRule(func(value string, values validation.Values) bool {
			gotValue, gotCtx = value, values
			return true
		}, "unused")
		validation.ValidateField("abc", []validation.Rule{rule}, ctx)
		assert.Equal(t, "abc", gotValue)
		assert.Equal(t, ctx, gotCtx)
	})

	t.Run("predicate panics propagate", func(t *testing.T) {
		t.Parallel()
		rule := validation.NewRule(func(string, validation.Values) bool {
			panic("broken rule")
		}, "unused")
		assert.PanicsWithValue(t, "broken rule", func() {
			validation.ValidateField("v", []validation.Rule{rule}, nil)
		})
	})
}

func TestNewRule_Panics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { validation.NewRule(nil, "msg") })
	assert.Panics(t, func() {
		validation.NewRule(func(string, validation.Values) bool { return true }, "")
	})
	assert.Panics(t, func() { validation.MatchPattern(nil, "msg") })
}

func TestValidateForm_EmailScenario(t *testing.T) {
	t.Parallel()

	rules := emailRules()

	errs := validation.ValidateForm(validation.Values{"email": ""}, rules)
	assert.Equal(t, "Email is required", errs.Get("email"))

	errs = validation.ValidateForm(validation.Values{"email": "bad"}, rules)
	assert.Equal(t, "Please enter a valid email address", errs.Get("email"))

	errs = validation.ValidateForm(validation.Values{"email": "a@b.co"}, rules)
	assert.Empty(t, errs.Get("email"))
	assert.False(t, validation.HasErrors(errs))
}

func TestValidateForm_PasswordConfirmation(t *testing.T) {
	t.Parallel()

	rules := passwordRules()

	errs := validation.ValidateForm(validation.Values{
		"password":        "Abcdef12",
		"confirmPassword": "Abcdef12",
	}, rules)
	assert.False(t, validation.HasErrors(errs))

	errs = validation.ValidateForm(validation.Values{
		"password":        "abcdef12",
		"confirmPassword": "abcdef12",
	}, rules)
	assert.Equal(t, "Password must contain at least one uppercase letter", errs.Get("password"))
	assert.Empty(t, errs.Get("confirmPassword"))

	errs = validation.ValidateForm(validation.Values{
		"password":        "Abcdef12",
		"confirmPassword": "Abcdef13",
	}, rules)
	assert.Equal(t, "Passwords do not match", errs.Get("confirmPassword"))
}

func TestValidateForm_FieldCoverage(t *testing.T) {
	t.Parallel()

	t.Run("missing values validate as empty", func(t *testing.T) {
		t.Parallel()
		errs := validation.ValidateForm(validation.Values{}, emailRules())
		require.Contains(t, errs, "email")
		assert.Equal(t, "Email is required", errs["email"])
	})

	t.Run("nil values validate as empty", func(t *testing.T) {
		t.Parallel()
		errs := validation.ValidateForm(nil, emailRules())
		assert.Equal(t, "Email is required", errs["email"])
	})

	t.Run("fields outside the rule set get no entry", func(t *testing.T) {
		t.Parallel()
		errs := validation.ValidateForm(validation.Values{
			"email":    "a@b.co",
			"nickname": "",
		}, emailRules())
		assert.NotContains(t, errs, "nickname")
		require.Contains(t, errs, "email")
		assert.Len(t, errs, 1)
	})

	t.Run("idempotent", func(t *testing.T) {
		t.Parallel()
		values := validation.Values{"password": "abc", "confirmPassword": "abd"}
		first := validation.ValidateForm(values, passwordRules())
		second := validation.ValidateForm(values, passwordRules())
		assert.Equal(t, first, second)
	})
}

func TestValidateForm_PatternRule(t *testing.T) {
	t.Parallel()

	rules := validation.RuleSet{
		"username": {
			validation.Require("Username is required"),
			validation.MinLen(3, "Username must be at least 3 characters"),
			validation.MatchPattern(regexp.MustCompile(`^[a-zA-Z0-9_]+$`), "Username can only contain letters, numbers and underscore"),
		},
	}

	errs := validation.ValidateForm(validation.Values{"username": "ab"}, rules)
	assert.Equal(t, "Username must be at least 3 characters", errs.Get("username"))

	errs = validation.ValidateForm(validation.Values{"username": "john doe"}, rules)
	assert.Equal(t, "Username can only contain letters, numbers and underscore", errs.Get("username"))

	errs = validation.ValidateForm(validation.Values{"username": "john_doe"}, rules)
	assert.False(t, errs.Has("username"))
}

func TestHasErrors(t *testing.T) {
	t.Parallel()

	assert.False(t, validation.HasErrors(nil))
	assert.False(t, validation.HasErrors(validation.Errors{}))
	assert.False(t, validation.HasErrors(validation.Errors{"a": "", "b": ""}))
	assert.True(t, validation.HasErrors(validation.Errors{"a": "", "b": "bad"}))
}

func TestErrors_Err(t *testing.T) {
	t.Parallel()

	t.Run("nil when valid", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, validation.Errors{"a": ""}.Err())
	})

	t.Run("sorted validation errors when invalid", func(t *testing.T) {
		t.Parallel()
		errs := validation.Errors{"b": "second", "a": "first", "c": ""}
		err := errs.Err()
		require.Error(t, err)
		assert.True(t, errors.Is(err, validation.ErrValidationFailed))

		verrs := validation.ExtractValidationErrors(err)
		require.Len(t, verrs, 2)
		assert.Equal(t, "a", verrs[0].Field)
		assert.Equal(t, "b", verrs[1].Field)
		assert.Equal(t, "validation failed: a: first; b: second", err.Error())
		assert.Equal(t, map[string][]string{"a": {"first"}, "b": {"second"}}, verrs.Map())
	})

	t.Run("extract from wrapped error", func(t *testing.T) {
		t.Parallel()
		err := errors.Join(errors.New("submit blocked"), validation.Errors{"a": "x"}.Err())
		verrs := validation.ExtractValidationErrors(err)
		require.Len(t, verrs, 1)
		assert.Nil(t, validation.ExtractValidationErrors(errors.New("other")))
	})
}

func TestErrors_Fields(t *testing.T) {
	t.Parallel()

	errs := validation.Errors{"z": "bad", "a": "bad", "m": ""}
	assert.Equal(t, []string{"a", "z"}, errs.Fields())
	assert.True(t, errs.Has("a"))
	assert.False(t, errs.Has("m"))
	assert.False(t, errs.Has("missing"))
}

func TestRuleSet_Fields(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"confirmPassword", "password"}, passwordRules().Fields())
	assert.Empty(t, validation.RuleSet(nil).Fields())
}

func TestValues_Clone(t *testing.T) {
	t.Parallel()

	orig := validation.Values{"a": "1"}
	clone := orig.Clone()
	clone["a"] = "2"
	assert.Equal(t, "1", orig["a"])
	assert.NotNil(t, validation.Values(nil).Clone())
}
