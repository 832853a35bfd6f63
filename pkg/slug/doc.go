// Package slug turns titles into URL path segments and HTML anchor ids.
//
//	slug.Make("Password Validation") // "password-validation"
//	slug.Make("Sign up & Log in", slug.Separator("_")) // "sign_up_log_in"
package slug
