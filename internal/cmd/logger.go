package cmd

import (
	"context"
	"log/slog"
	"os"

	"sixfactors/internal/transport/rest/middleware"
)

// ContextHandler is a slog.Handler that enriches log records with
// application attributes and the per-request id from the context.
type ContextHandler struct {
	slog.Handler
	ver string
	app string
}

// Handle adds the request id (when present), app name and version to the
// record before delegating to the embedded handler.
func (h ContextHandler) Handle(ctx context.Context, r slog.Record) error {
	if requestID := middleware.GetRequestID(ctx); requestID != "" {
		r.AddAttrs(slog.String("req_id", requestID))
	}

	r.AddAttrs(slog.String("app", h.app), slog.String("ver", h.ver))

	return h.Handler.Handle(ctx, r)
}

// initLogger configures the process-wide slog default logger.
func initLogger(arg *args) error {
	var logLevel slog.Level
	if err := logLevel.UnmarshalText([]byte(arg.LogLevel)); err != nil {
		return err
	}

	options := &slog.HandlerOptions{
		Level: logLevel,
	}

	var logHandler slog.Handler
	if arg.TextFormat {
		logHandler = slog.NewTextHandler(os.Stdout, options)
	} else {
		logHandler = slog.NewJSONHandler(os.Stdout, options)
	}

	ctxHandler := &ContextHandler{
		Handler: logHandler,
		ver:     arg.version,
		app:     "sixfactors",
	}

	slog.SetDefault(slog.New(ctxHandler))

	return nil
}
