// Package logger builds configured slog.Logger instances for the service.
//
// Defaults are production-safe (JSON handler, INFO level, stdout). Options
// switch format and level, attach static attributes, or apply development
// defaults in one call:
//
//	log := logger.New(logger.WithDevelopment("mailform"))
//	log.Info("listening", slog.String("addr", ":8080"))
//
// Attribute helpers (Error, Component, Event) keep log keys consistent
// across the codebase.
package logger
