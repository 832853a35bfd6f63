package showcase

import (
	"context"
	"errors"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/dmitrymomot/smartform/pkg/form"
	"github.com/dmitrymomot/smartform/pkg/logger"
	"github.com/dmitrymomot/smartform/pkg/password"
	"github.com/dmitrymomot/smartform/pkg/slug"
	"github.com/dmitrymomot/smartform/pkg/validation"
)

// ErrUsernameTaken is returned by the registration submit for reserved names.
var ErrUsernameTaken = errors.New("username is already taken")

var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)

var reservedUsernames = map[string]bool{"admin": true, "root": true, "smartform": true}

// Example is one demo form: its fields, rules and simulated backend.
type Example struct {
	Key            string // signal namespace and DOM id prefix
	Slug           string
	Title          string
	Description    string
	Fields         []form.Field
	Rules          validation.RuleSet
	SubmitLabel    string
	SuccessMessage string
	Submit         form.SubmitFunc
}

// NewForm creates a fresh form controller for the example.
func (e *Example) NewForm(opts ...form.Option) *form.Form {
	opts = append([]form.Option{form.WithName(e.Key)}, opts...)
	return form.New(form.InitialValues(e.Fields), e.Rules, e.Submit, opts...)
}

// HasField reports whether name is one of the example's fields.
func (e *Example) HasField(name string) bool {
	for _, f := range e.Fields {
		if f.Name == name {
			return true
		}
	}
	return false
}

func (e *Example) FormID() string                 { return e.Key }
func (e *Example) InputID(field string) string    { return e.Key + "-" + field }
func (e *Example) FeedbackID(field string) string { return e.Key + "-" + field + "-feedback" }
func (e *Example) SubmitAreaID() string           { return e.Key + "-submit" }

func (e *Example) PageURL() string                { return "/examples/" + e.Slug }
func (e *Example) ValidateURL() string            { return e.PageURL() + "/validate" }
func (e *Example) BlurURL(field string) string    { return e.PageURL() + "/blur/" + field }
func (e *Example) SubmitURL() string              { return e.PageURL() + "/submit" }
func (e *Example) APIValidateURL() string         { return "/api/examples/" + e.Slug + "/validate" }
func (e *Example) DownloadURL(kind string) string { return e.PageURL() + "/snippets/" + kind + "/download" }

// Examples is the ordered set of demo forms.
type Examples struct {
	list   []*Example
	bySlug map[string]*Example
}

// NewExamples indexes the given examples by slug.
func NewExamples(list ...*Example) *Examples {
	ex := &Examples{list: list, bySlug: make(map[string]*Example, len(list))}
	for _, e := range list {
		ex.bySlug[e.Slug] = e
	}
	return ex
}

// All returns the examples in display order.
func (ex *Examples) All() []*Example {
	return ex.list
}

// Get looks up an example by slug.
func (ex *Examples) Get(slug string) (*Example, bool) {
	e, ok := ex.bySlug[slug]
	return e, ok
}

// DefaultExamples builds the email, password and registration demos.
// Submissions wait for cfg.SubmitDelay to mimic a network round trip.
func DefaultExamples(cfg Config, hasher *password.Hasher, log *slog.Logger) *Examples {
	return NewExamples(
		EmailExample(cfg.SubmitDelay, log),
		PasswordExample(cfg.SubmitDelay, hasher, log),
		RegistrationExample(cfg.SubmitDelay, hasher, log),
	)
}

func emailRules() []validation.Rule {
	return []validation.Rule{
		validation.Require("Email is required"),
		validation.ValidEmail("Please enter a valid email address"),
	}
}

func passwordRules() []validation.Rule {
	return []validation.Rule{
		validation.Require("Password is required"),
		validation.MinLen(8, "Password must be at least 8 characters"),
		validation.ContainsUppercase("Password must contain at least one uppercase letter"),
		validation.ContainsDigit("Password must contain at least one number"),
	}
}

func confirmPasswordRules() []validation.Rule {
	return []validation.Rule{
		validation.Require("Please confirm your password"),
		validation.MatchField("password", "Passwords do not match"),
	}
}

func EmailExample(delay time.Duration, log *slog.Logger) *Example {
	title := "Email Validation"
	return &Example{
		Key:         "emailForm",
		Slug:        slug.Make(title),
		Title:       title,
		Description: "A form component that validates email addresses with real-time feedback as you type.",
		Fields: []form.Field{
			{Name: "email", Label: "Email Address", Kind: form.KindEmail, Placeholder: "Enter your email"},
		},
		Rules:          validation.RuleSet{"email": emailRules()},
		SubmitLabel:    "Validate Email",
		SuccessMessage: "Email validated successfully!",
		Submit: func(ctx context.Context, values validation.Values) error {
			if err := wait(ctx, delay); err != nil {
				return err
			}
			log.InfoContext(ctx, "email accepted", logger.Form("emailForm"), slog.String("domain", domain(values["email"])))
			return nil
		},
	}
}

func PasswordExample(delay time.Duration, hasher *password.Hasher, log *slog.Logger) *Example {
	title := "Password Validation"
	return &Example{
		Key:         "passwordForm",
		Slug:        slug.Make(title),
		Title:       title,
		Description: "A secure password validation form that checks for length, special characters, and confirms matching passwords.",
		Fields: []form.Field{
			{Name: "password", Label: "Password", Kind: form.KindPassword, Placeholder: "Create a password"},
			{Name: "confirmPassword", Label: "Confirm Password", Kind: form.KindPassword, Placeholder: "Confirm your password"},
		},
		Rules: validation.RuleSet{
			"password":        passwordRules(),
			"confirmPassword": confirmPasswordRules(),
		},
		SubmitLabel:    "Set Password",
		SuccessMessage: "Password set successfully!",
		Submit: func(ctx context.Context, values validation.Values) error {
			if _, err := hasher.Hash(values["password"]); err != nil {
				return err
			}
			if err := wait(ctx, delay); err != nil {
				return err
			}
			log.InfoContext(ctx, "password set", logger.Form("passwordForm"))
			return nil
		},
	}
}

func RegistrationExample(delay time.Duration, hasher *password.Hasher, log *slog.Logger) *Example {
	title := "Complete Registration Form"
	return &Example{
		Key:         "registrationForm",
		Slug:        slug.Make(title),
		Title:       title,
		Description: "A full registration form with username, email, and password validation all in one component.",
		Fields: []form.Field{
			{Name: "username", Label: "Username", Kind: form.KindText, Placeholder: "Enter your username"},
			{Name: "email", Label: "Email", Kind: form.KindEmail, Placeholder: "Enter your email"},
			{Name: "password", Label: "Password", Kind: form.KindPassword, Placeholder: "Create a password"},
			{Name: "confirmPassword", Label: "Confirm Password", Kind: form.KindPassword, Placeholder: "Confirm your password"},
		},
		Rules: validation.RuleSet{
			"username": {
				validation.Require("Username is required"),
				validation.MinLen(3, "Username must be at least 3 characters"),
				validation.MatchPattern(usernamePattern, "Username can only contain letters, numbers and underscore"),
			},
			"email":           emailRules(),
			"password":        passwordRules(),
			"confirmPassword": confirmPasswordRules(),
		},
		SubmitLabel:    "Create Account",
		SuccessMessage: "Your account has been created successfully!",
		Submit: func(ctx context.Context, values validation.Values) error {
			if reservedUsernames[strings.ToLower(values["username"])] {
				return ErrUsernameTaken
			}
			if _, err := hasher.Hash(values["password"]); err != nil {
				return err
			}
			if err := wait(ctx, delay); err != nil {
				return err
			}
			log.InfoContext(ctx, "account registered",
				logger.Form("registrationForm"),
				slog.String("username", values["username"]),
			)
			return nil
		},
	}
}

func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func domain(email string) string {
	if i := strings.LastIndexByte(email, '@'); i >= 0 {
		return email[i+1:]
	}
	return ""
}
