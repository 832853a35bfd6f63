package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/smartform/handler"
	"github.com/dmitrymomot/smartform/modules/showcase"
	"github.com/dmitrymomot/smartform/modules/showcase/views"
	"github.com/dmitrymomot/smartform/pkg/config"
	"github.com/dmitrymomot/smartform/pkg/httpserver"
	"github.com/dmitrymomot/smartform/pkg/logger"
	"github.com/dmitrymomot/smartform/pkg/password"
	"github.com/dmitrymomot/smartform/pkg/requestid"
)

type appConfig struct {
	Env      string `env:"APP_ENV" envDefault:"development"`
	LogLevel string `env:"LOG_LEVEL"`
}

func main() {
	if err := run(); err != nil {
		slog.Error("smartform stopped", logger.Error(err))
		os.Exit(1)
	}
}

func run() error {
	var (
		app     appConfig
		srvCfg  httpserver.Config
		demoCfg showcase.Config
	)
	config.MustLoad(&app)
	config.MustLoad(&srvCfg)
	config.MustLoad(&demoCfg)

	opts := []logger.Option{
		logger.WithEnvironment(app.Env, "smartform"),
		logger.WithContextExtractors(requestid.LoggerExtractor()),
	}
	if app.LogLevel != "" {
		level, err := logger.ParseLevel(app.LogLevel)
		if err != nil {
			return fmt.Errorf("log level: %w", err)
		}
		opts = append(opts, logger.WithLevel(level))
	}
	log := logger.New(opts...)
	logger.SetAsDefault(log)

	hasher, err := password.NewHasher(demoCfg.BcryptCost)
	if err != nil {
		return fmt.Errorf("password hasher: %w", err)
	}
	snippets, err := showcase.LoadSnippets()
	if err != nil {
		return fmt.Errorf("load snippets: %w", err)
	}

	svc := showcase.NewService(
		demoCfg,
		showcase.DefaultExamples(demoCfg, hasher, log),
		snippets,
		views.Default(),
		log,
		handler.NewErrorHandler(log, views.ErrorHandlerConfig(demoCfg.AppName)),
	)

	r := chi.NewRouter()
	r.Use(requestid.Middleware())
	r.Get("/health", httpserver.HealthCheckHandler(log))
	r.Get("/ready", httpserver.HealthCheckHandler(log, httpserver.Check{
		Name: "snippets",
		Fn: func(context.Context) error {
			if snippets.Len() == 0 {
				return errors.New("snippet catalog is empty")
			}
			return nil
		},
	}))
	r.Mount("/", svc.Handle())

	// Run returns after SIGINT or SIGTERM once in-flight requests finish.
	return httpserver.NewFromConfig(srvCfg, httpserver.WithLogger(log)).Run(context.Background(), r)
}
