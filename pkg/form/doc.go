// Package form manages the state of one interactive form instance on top of
// the validation package.
//
// A Form owns field values, the touched set and the submission lifecycle. The
// error map is recomputed for the whole form after every value change, so a
// Snapshot never carries stale errors, including for cross-field rules such as
// password confirmation.
//
//	f := form.New(
//	    form.InitialValues(fields),
//	    rules,
//	    func(ctx context.Context, values validation.Values) error {
//	        return accounts.Create(ctx, values["email"], values["password"])
//	    },
//	    form.WithName("registration"),
//	    form.WithLogger(log),
//	)
//
//	f.SetValue("email", "a@b.co")
//	f.MarkTouched("email")
//	if err := f.Submit(ctx); errors.Is(err, form.ErrInvalid) {
//	    // every field is now touched; render f.Snapshot()
//	}
//
// # Submission
//
// Submit marks every field of the rule set as touched, revalidates and, when
// the form is valid, calls the submit function with a copy of the values.
// While the submit function runs IsSubmitting is true and the form stays
// usable: SetValue and MarkTouched apply normally. A second Submit during
// that window is ignored and returns ErrSubmitInProgress.
//
// A failing submit function does not make Submit fail. The error is logged and
// passed to the reporter configured with WithErrorReporter; IsSubmitted stays
// false and the values are kept so the user can retry.
//
// # Observing state
//
// Snapshot returns a deep copy of the current state. Subscribe registers a
// callback invoked with a fresh Snapshot after every state change, which is
// how a renderer learns that IsSubmitting flipped while a submission is in
// flight.
package form
