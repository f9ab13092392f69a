// Package server exposes the parsing pipeline over HTTP.
package server

import (
	"context"
	"log/slog"

	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/parsecv/parsecv/internal/entity"
	"github.com/parsecv/parsecv/internal/extract"
	"github.com/parsecv/parsecv/internal/server/middleware"
)

// ResumeParser is the part of the pipeline the HTTP layer depends on.
type ResumeParser interface {
	ParseDocument(ctx context.Context, doc extract.Document) (entity.FinalRecord, error)
}

// Options configures the HTTP server.
type Options struct {
	Logger      *slog.Logger
	Registry    *prometheus.Registry // nil disables /metrics and request counting
	BodyLimitMB int
}

// New builds the Fiber app with all middleware and routes attached.
func New(parser ResumeParser, opts Options) (*fiber.App, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	bodyLimit := opts.BodyLimitMB
	if bodyLimit <= 0 {
		bodyLimit = 10
	}

	app := fiber.New(fiber.Config{
		ErrorHandler:          errorHandler(),
		BodyLimit:             bodyLimit * 1024 * 1024,
		DisableStartupMessage: true,
	})

	app.Use(middleware.RequestID())
	app.Use(middleware.Logger(logger))

	if opts.Registry != nil {
		prom, err := middleware.NewPrometheusMiddleware(opts.Registry)
		if err != nil {
			return nil, err
		}
		app.Use(prom.Handler())
		app.Get("/metrics", adaptor.HTTPHandler(
			promhttp.HandlerFor(opts.Registry, promhttp.HandlerOpts{}),
		))
	}

	registerRoutes(app, parser)

	return app, nil
}
