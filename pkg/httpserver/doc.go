// Package httpserver wraps net/http.Server with graceful shutdown, signal
// handling and structured logging hooks.
//
// Run blocks until the context is cancelled, SIGINT/SIGTERM is received, or
// the listener fails. In-flight requests are given ShutdownTimeout to finish
// before the process exits.
//
//	srv := httpserver.NewFromConfig(cfg, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//		log.Error("server stopped", logger.Error(err))
//	}
package httpserver
