package views

import (
	"github.com/dmitrymomot/smartform/handler"
	"github.com/dmitrymomot/smartform/modules/showcase"
)

// Default returns the showcase views.
func Default() showcase.Views {
	return showcase.Views{
		Home:          Home,
		ExamplePage:   ExamplePage,
		FieldFeedback: FieldFeedback,
		SubmitArea:    SubmitArea,
		Toast:         Toast,
	}
}

// ErrorHandlerConfig wires the error page and toast into handler.NewErrorHandler.
func ErrorHandlerConfig(appName string) handler.ErrorHandlerConfig {
	return handler.ErrorHandlerConfig{
		ErrorPage:  ErrorPage(appName),
		ErrorToast: ErrorToast,
	}
}
