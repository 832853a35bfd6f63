package form

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/dmitrymomot/smartform/pkg/logger"
	"github.com/dmitrymomot/smartform/pkg/validation"
)

// SubmitFunc receives a copy of the form values once the whole form is valid.
// A returned error marks the submission as failed.
type SubmitFunc func(ctx context.Context, values validation.Values) error

type observer struct {
	id uint64
	fn func(Snapshot)
}

// Form is the state controller of a single form instance.
// It is safe for concurrent use.
type Form struct {
	name          string
	rules         validation.RuleSet
	initial       validation.Values
	onSubmit      SubmitFunc
	resetOnSubmit bool
	logger        *slog.Logger
	reportError   func(context.Context, error)

	mu         sync.Mutex
	values     validation.Values
	errors     validation.Errors
	touched    map[string]bool
	submitting bool
	submitted  bool
	observers  []observer
	nextID     uint64
}

// New creates a form with the given initial values and rule set.
// Every field of rules missing from initial starts as an empty string.
// Panics if onSubmit is nil.
func New(initial validation.Values, rules validation.RuleSet, onSubmit SubmitFunc, opts ...Option) *Form {
	if onSubmit == nil {
		panic("form: nil submit function")
	}

	f := &Form{
		rules:         rules,
		onSubmit:      onSubmit,
		resetOnSubmit: true,
		logger:        slog.Default(),
		touched:       make(map[string]bool),
	}
	for _, opt := range opts {
		opt(f)
	}

	f.initial = initial.Clone()
	for field := range rules {
		if _, ok := f.initial[field]; !ok {
			f.initial[field] = ""
		}
	}
	f.values = f.initial.Clone()
	f.revalidate()

	return f
}

// Name returns the name set with WithName.
func (f *Form) Name() string {
	return f.name
}

// SetValue overwrites the value of a field and revalidates the whole form.
func (f *Form) SetValue(name, value string) {
	f.mu.Lock()
	f.values[name] = value
	f.revalidate()
	f.unlockAndNotify()
}

// MarkTouched adds name to the touched set. It does not affect errors.
func (f *Form) MarkTouched(name string) {
	f.mu.Lock()
	if f.touched[name] {
		f.mu.Unlock()
		return
	}
	f.touched[name] = true
	f.unlockAndNotify()
}

// Restore applies values and touched flags held outside the form, for example
// by a browser between requests, and revalidates once.
// False touched entries are ignored: touched is only cleared by Reset.
func (f *Form) Restore(values validation.Values, touched map[string]bool) {
	f.mu.Lock()
	for name, value := range values {
		f.values[name] = value
	}
	for name, t := range touched {
		if t {
			f.touched[name] = true
		}
	}
	f.revalidate()
	f.unlockAndNotify()
}

// Submit validates the form and, when it is valid, calls the submit function.
//
// It returns an error wrapping ErrInvalid and validation.ValidationErrors when
// the form is invalid, and ErrSubmitInProgress when another submission is
// pending. A failure of the submit function is reported through the logger and
// the error reporter instead of being returned.
func (f *Form) Submit(ctx context.Context) error {
	f.mu.Lock()
	if f.submitting {
		f.mu.Unlock()
		return ErrSubmitInProgress
	}

	for field := range f.rules {
		f.touched[field] = true
	}
	f.revalidate()

	if validation.HasErrors(f.errors) {
		verr := f.errors.Err()
		f.unlockAndNotify()
		return errors.Join(ErrInvalid, verr)
	}

	f.submitting = true
	values := f.values.Clone()
	f.unlockAndNotify()

	start := time.Now()
	err := f.call(ctx, values)

	f.mu.Lock()
	f.submitting = false
	if err != nil {
		f.unlockAndNotify()
		f.report(ctx, err, time.Since(start))
		return nil
	}

	f.submitted = true
	if f.resetOnSubmit {
		f.resetLocked()
	}
	f.unlockAndNotify()

	f.logger.DebugContext(ctx, "form submitted",
		logger.Component("form"),
		logger.Form(f.name),
		logger.Duration(time.Since(start)),
	)
	return nil
}

// call runs the submit function. If it panics, the submitting flag is cleared
// before the panic continues.
func (f *Form) call(ctx context.Context, values validation.Values) error {
	completed := false
	defer func() {
		if !completed {
			f.mu.Lock()
			f.submitting = false
			f.mu.Unlock()
		}
	}()
	err := f.onSubmit(ctx, values)
	completed = true
	return err
}

func (f *Form) report(ctx context.Context, err error, elapsed time.Duration) {
	f.logger.ErrorContext(ctx, "form submission failed",
		logger.Component("form"),
		logger.Form(f.name),
		logger.Error(err),
		logger.Duration(elapsed),
	)
	if f.reportError != nil {
		f.reportError(ctx, err)
	}
}

// Reset restores the initial values, clears the touched set and the submitted
// flag. It does not affect IsSubmitting.
func (f *Form) Reset() {
	f.mu.Lock()
	f.resetLocked()
	f.submitted = false
	f.unlockAndNotify()
}

func (f *Form) resetLocked() {
	f.values = f.initial.Clone()
	f.touched = make(map[string]bool)
	f.revalidate()
}

// Snapshot returns a copy of the current state.
func (f *Form) Snapshot() Snapshot {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.snapshotLocked()
}

// Subscribe registers fn to be called with a fresh Snapshot after every state
// change. Callbacks run synchronously on the goroutine that changed the state,
// outside the form's lock. The returned function removes the subscription.
func (f *Form) Subscribe(fn func(Snapshot)) (unsubscribe func()) {
	if fn == nil {
		return func() {}
	}
	f.mu.Lock()
	f.nextID++
	id := f.nextID
	f.observers = append(f.observers, observer{id: id, fn: fn})
	f.mu.Unlock()

	return func() {
		f.mu.Lock()
		defer f.mu.Unlock()
		for i, o := range f.observers {
			if o.id == id {
				f.observers = append(f.observers[:i:i], f.observers[i+1:]...)
				return
			}
		}
	}
}

// revalidate recomputes the whole error map. Must be called with mu held.
// Every field is revalidated because any rule may read any other field.
func (f *Form) revalidate() {
	f.errors = validation.ValidateForm(f.values, f.rules)
}

func (f *Form) snapshotLocked() Snapshot {
	touched := make(map[string]bool, len(f.touched))
	for k, v := range f.touched {
		touched[k] = v
	}
	return Snapshot{
		Values:       f.values.Clone(),
		Errors:       f.errors.Clone(),
		Touched:      touched,
		IsSubmitting: f.submitting,
		IsSubmitted:  f.submitted,
	}
}

// unlockAndNotify releases mu and delivers the resulting state to observers.
func (f *Form) unlockAndNotify() {
	if len(f.observers) == 0 {
		f.mu.Unlock()
		return
	}
	snap := f.snapshotLocked()
	observers := make([]observer, len(f.observers))
	copy(observers, f.observers)
	f.mu.Unlock()

	for _, o := range observers {
		o.fn(snap)
	}
}
