package showcase

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/smartform/handler"
	"github.com/dmitrymomot/smartform/pkg/form"
	"github.com/dmitrymomot/smartform/pkg/logger"
	"github.com/dmitrymomot/smartform/pkg/snippet"
	"github.com/dmitrymomot/smartform/pkg/validation"
)

// Service serves the example pages, live validation and snippet downloads.
// It keeps no state between requests: every request rebuilds its form from
// the submitted values.
type Service struct {
	cfg          Config
	examples     *Examples
	snippets     *snippet.Catalog
	views        Views
	log          *slog.Logger
	errorHandler handler.ErrorHandler[handler.Context]
}

func NewService(
	cfg Config,
	examples *Examples,
	snippets *snippet.Catalog,
	views Views,
	log *slog.Logger,
	errorHandler handler.ErrorHandler[handler.Context],
) *Service {
	if log == nil {
		log = logger.Discard()
	}
	return &Service{
		cfg:          cfg,
		examples:     examples,
		snippets:     snippets,
		views:        views,
		log:          log.With(logger.Component("showcase")),
		errorHandler: errorHandler,
	}
}

// Handle returns the showcase router.
func (s *Service) Handle() http.Handler {
	r := chi.NewRouter()

	r.Get("/", wrap[struct{}](s, s.home))
	r.Route("/examples/{slug}", func(r chi.Router) {
		r.Get("/", wrap[formRequest](s, s.page, handler.BindPath()))
		r.Post("/validate", wrap[formRequest](s, s.validate, handler.BindPath(), handler.BindSignals()))
		r.Post("/blur/{field}", wrap[formRequest](s, s.blur, handler.BindPath(), handler.BindSignals()))
		r.Post("/submit", wrap[formRequest](s, s.submit, handler.BindPath(), handler.BindSignals(), handler.BindForm()))
		r.Get("/snippets/{kind}/download", wrap[downloadRequest](s, s.download, handler.BindPath()))
	})
	r.Post("/api/examples/{slug}/validate", handler.Wrap(s.apiValidate,
		handler.WithBinders[handler.Context, apiRequest](handler.BindPath(), handler.BindJSON()),
		handler.WithErrorHandler[handler.Context, apiRequest](s.jsonErrorHandler),
	))

	return r
}

func wrap[R any](s *Service, h handler.HandlerFunc[handler.Context, R], binders ...handler.Bind) http.HandlerFunc {
	return handler.Wrap(h,
		handler.WithBinders[handler.Context, R](binders...),
		handler.WithErrorHandler[handler.Context, R](s.errorHandler),
	)
}

func (s *Service) lookup(slug string) (*Example, error) {
	e, ok := s.examples.Get(slug)
	if !ok {
		return nil, handler.ErrNotFound
	}
	return e, nil
}

func (s *Service) newForm(e *Example, report func(context.Context, error)) *form.Form {
	return e.NewForm(
		form.WithLogger(s.log),
		form.WithResetOnSubmit(s.cfg.ResetOnSubmit),
		form.WithErrorReporter(report),
	)
}

func (s *Service) section(e *Example, snap form.Snapshot, failure string) SectionParams {
	return SectionParams{
		Example:  e,
		Form:     snap,
		Snippets: s.snippets.ForExample(e.Slug),
		Failure:  failure,
	}
}

func (s *Service) home(_ handler.Context, _ struct{}) handler.Response {
	sections := make([]SectionParams, 0, len(s.examples.All()))
	for _, e := range s.examples.All() {
		sections = append(sections, s.section(e, s.newForm(e, nil).Snapshot(), ""))
	}
	return handler.Templ(s.views.Home(HomeParams{AppName: s.cfg.AppName, Sections: sections}))
}

func (s *Service) page(_ handler.Context, req formRequest) handler.Response {
	e, err := s.lookup(req.Slug)
	if err != nil {
		return handler.Error(err)
	}
	return handler.Templ(s.views.ExamplePage(ExamplePageParams{
		AppName: s.cfg.AppName,
		Section: s.section(e, s.newForm(e, nil).Snapshot(), ""),
	}))
}

// restore rebuilds the form of e from the request state.
func (s *Service) restore(e *Example, req *formRequest, report func(context.Context, error)) (*form.Form, error) {
	values, touched, err := req.state(e)
	if err != nil {
		return nil, errors.Join(handler.ErrBadRequest, err)
	}
	f := s.newForm(e, report)
	f.Restore(values, touched)
	return f, nil
}

func (s *Service) feedback(e *Example, snap form.Snapshot, fields ...form.Field) []handler.TemplPatch {
	if len(fields) == 0 {
		fields = e.Fields
	}
	patches := make([]handler.TemplPatch, 0, len(fields))
	for _, f := range fields {
		patches = append(patches, handler.Patch(s.views.FieldFeedback(FieldParams{
			Example: e,
			Field:   f,
			State:   snap.Field(f.Name),
		})))
	}
	return patches
}

// validate answers the debounced input event of a field.
func (s *Service) validate(_ handler.Context, req formRequest) handler.Response {
	e, err := s.lookup(req.Slug)
	if err != nil {
		return handler.Error(err)
	}
	f, err := s.restore(e, &req, nil)
	if err != nil {
		return handler.Error(err)
	}
	snap := f.Snapshot()

	return handler.SSE(func(stream handler.StreamContext) error {
		if err := stream.SendMultiple(s.feedback(e, snap)...); err != nil {
			return err
		}
		return stream.SendSignals(SignalsFor(e, snap).Flags(e))
	})
}

// blur marks a field touched, which reveals its error.
func (s *Service) blur(_ handler.Context, req formRequest) handler.Response {
	e, err := s.lookup(req.Slug)
	if err != nil {
		return handler.Error(err)
	}
	var field form.Field
	for _, fd := range e.Fields {
		if fd.Name == req.Field {
			field = fd
		}
	}
	if field.Name == "" {
		return handler.Error(handler.ErrNotFound)
	}

	f, err := s.restore(e, &req, nil)
	if err != nil {
		return handler.Error(err)
	}
	f.MarkTouched(field.Name)
	snap := f.Snapshot()

	return handler.SSE(func(stream handler.StreamContext) error {
		if err := stream.SendMultiple(s.feedback(e, snap, field)...); err != nil {
			return err
		}
		return stream.SendSignals(SignalsFor(e, snap).Flags(e))
	})
}

func (s *Service) submit(ctx handler.Context, req formRequest) handler.Response {
	e, err := s.lookup(req.Slug)
	if err != nil {
		return handler.Error(err)
	}
	if !handler.IsDataStar(ctx.Request()) {
		return s.submitPlain(ctx, e, &req)
	}

	return handler.SSE(func(stream handler.StreamContext) error {
		var failure error
		f, err := s.restore(e, &req, func(_ context.Context, err error) { failure = err })
		if err != nil {
			return err
		}

		// Button and status follow every state change: busy while the
		// callback runs, then success or idle.
		var sendErr error
		unsubscribe := f.Subscribe(func(snap form.Snapshot) {
			if sendErr == nil {
				sendErr = stream.SendComponent(s.views.SubmitArea(SubmitParams{Example: e, Form: snap}))
			}
		})
		err = f.Submit(stream)
		unsubscribe()
		if sendErr != nil {
			return sendErr
		}

		snap := f.Snapshot()
		if errors.Is(err, form.ErrInvalid) {
			s.log.DebugContext(stream, "submit rejected", logger.Form(e.Key), logger.Error(err))
		}
		if err := stream.SendMultiple(s.feedback(e, snap)...); err != nil {
			return err
		}
		if err := stream.SendSignals(SignalsFor(e, snap).Patch(e)); err != nil {
			return err
		}
		if failure == nil {
			return nil
		}
		msg := failureMessage(failure)
		return stream.SendMultiple(
			handler.Patch(s.views.SubmitArea(SubmitParams{Example: e, Form: snap, Failure: msg})),
			handler.Patch(s.views.Toast(ToastParams{Message: msg, Type: "error"}),
				handler.WithTarget("#toast-container"),
				handler.WithPatchMode(handler.PatchPrepend),
			),
		)
	})
}

// submitPlain handles a form posted without JavaScript and renders the whole
// page with the outcome.
func (s *Service) submitPlain(ctx handler.Context, e *Example, req *formRequest) handler.Response {
	var failure error
	f, err := s.restore(e, req, func(_ context.Context, err error) { failure = err })
	if err != nil {
		return handler.Error(err)
	}

	status := http.StatusOK
	if err := f.Submit(ctx); errors.Is(err, form.ErrInvalid) {
		status = http.StatusUnprocessableEntity
	}
	msg := ""
	if failure != nil {
		msg = failureMessage(failure)
		status = http.StatusServiceUnavailable
		if errors.Is(failure, ErrUsernameTaken) {
			status = http.StatusConflict
		}
	}

	return handler.TemplStatus(status, s.views.ExamplePage(ExamplePageParams{
		AppName: s.cfg.AppName,
		Section: s.section(e, f.Snapshot(), msg),
	}))
}

func failureMessage(err error) string {
	switch {
	case errors.Is(err, ErrUsernameTaken):
		return "This username is already taken. Please choose another one."
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "The submission was interrupted. Please try again."
	default:
		return "Something went wrong. Please try again."
	}
}

// apiValidate validates a flat JSON object of field values against the
// example rules.
func (s *Service) apiValidate(_ handler.Context, req apiRequest) handler.Response {
	e, err := s.lookup(req.Slug)
	if err != nil {
		return handler.JSONError(err)
	}
	if req.Values == nil {
		return handler.JSONError(handler.ErrUnsupportedMediaType)
	}
	if err := validation.ValidateForm(req.Values, e.Rules).Err(); err != nil {
		return handler.JSONError(err)
	}
	return handler.JSON(map[string]bool{"valid": true})
}

func (s *Service) jsonErrorHandler(ctx handler.Context, err error) {
	info := handler.ClassifyError(err)
	s.log.LogAttrs(ctx, info.LogLevel, "api request error",
		logger.Error(err),
		slog.Int("status_code", info.StatusCode),
		slog.String("path", ctx.Request().URL.Path),
	)
	if rerr := handler.JSONError(err).Render(ctx.ResponseWriter(), ctx.Request()); rerr != nil {
		s.log.ErrorContext(ctx, "failed to render api error", logger.Error(rerr))
	}
}

func (s *Service) download(ctx handler.Context, req downloadRequest) handler.Response {
	e, err := s.lookup(req.Slug)
	if err != nil {
		return handler.Error(err)
	}
	sn, err := s.snippets.Get(e.Slug, req.Kind)
	if errors.Is(err, snippet.ErrNotFound) {
		return handler.Error(handler.ErrNotFound)
	}
	if err != nil {
		return handler.Error(err)
	}
	s.log.InfoContext(ctx, "snippet downloaded",
		logger.Form(e.Key),
		slog.String("kind", sn.Kind),
		slog.String("file_name", sn.FileName),
	)
	return handler.Attachment(sn.FileName, snippet.ContentType, []byte(sn.Code))
}
