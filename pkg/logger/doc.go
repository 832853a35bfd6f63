// Package logger builds *slog.Logger instances for smartform services and
// keeps attribute naming consistent across packages.
//
// New creates a logger from functional options: output format (text or json),
// minimum level, static attributes, and ContextExtractor callbacks that pull
// request-scoped values such as the request id out of context.Context on
// every log call.
//
//	log := logger.New(
//	    logger.WithEnvironment(cfg.Env, "smartform"),
//	    logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	logger.SetAsDefault(log)
//
//	log.ErrorContext(ctx, "form submission failed",
//	    logger.Component("form"),
//	    logger.Form("registration"),
//	    logger.Error(err),
//	)
//
// Attribute helpers that take an error or an optional value return an empty
// slog.Attr for nil input, which slog drops, so callers need no nil checks.
package logger
