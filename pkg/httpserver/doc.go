// Package httpserver runs an http.Server with graceful shutdown, timeouts
// taken from the environment, and a health check handler.
//
// Run blocks until the context is cancelled or SIGINT/SIGTERM arrives, then
// calls http.Server.Shutdown bounded by the shutdown timeout:
//
//	var cfg httpserver.Config
//	config.MustLoad(&cfg)
//
//	srv := httpserver.NewFromConfig(cfg, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//		log.Error("server stopped", logger.Error(err))
//	}
//
// Errors from listening are wrapped with ErrStart and errors from shutdown
// with ErrShutdown.
package httpserver
