package application

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"

	"numroute/internal/config"
	"numroute/internal/domain/service/routing"
	"numroute/internal/infrastructure/lastgood"
	"numroute/internal/infrastructure/upstream"
	"numroute/internal/metrics"
	"numroute/internal/server"
	"numroute/pkg/application/modules"
	"numroute/pkg/contextx"
	"numroute/pkg/httpx"
	"numroute/pkg/logx"
	"numroute/pkg/middlewarex"
)

const httpServerReadHeaderTimeout = 5 * time.Second

func Run(ctx context.Context, log *slog.Logger, cfg config.Config) error {
	ctx = contextx.WithLogger(ctx, log)

	// 1. Routing tree
	upstreams, err := cfg.Routing.Load()
	if err != nil {
		return fmt.Errorf("cfg.Routing.Load: %w", err)
	}

	log.Info("routing loaded", slog.Int("upstreams", len(upstreams)), slog.String("file", cfg.Routing.File))

	// 2. Metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	recorder, err := metrics.NewRecorder(registry)
	if err != nil {
		return fmt.Errorf("metrics.NewRecorder: %w", err)
	}

	// 3. Upstream client
	httpClient := &http.Client{
		Transport: httpx.NewHeaderRoundTripper(
			httpx.NewLoggingRoundTripper(
				http.DefaultTransport,
				httpx.WithLogFieldMaxLen(cfg.Log.FieldMaxLen),
				httpx.WithSensitiveDataMasker(logx.NewSensitiveDataMasker()),
			),
			httpx.NoStoreHeaders(),
		),
	}

	client := upstream.NewClient(
		upstream.NewFetcher(httpClient, cfg.Resolver.UpstreamTimeout),
		cfg.Resolver.MaxRetries,
	).WithObserver(recorder)

	// 4. Resolver
	resolver := routing.NewResolver(upstreams, client).
		WithPolicy(cfg.Resolver.Policy())

	fallbackNumber := ""
	if cfg.Fallback.Active() {
		fallbackNumber = cfg.Fallback.Number
	}

	srv := server.NewServer(
		server.NewPhoneServer(resolver, lastgood.NewStore(), fallbackNumber).WithRecorder(recorder),
		server.NewRoutingServer(upstreams, cfg.Resolver.Policy()),
	)

	// 5. Servers
	g, ctx := errgroup.WithContext(ctx)

	modules.HTTPServer{ShutdownTimeout: cfg.HTTP.ShutdownTimeout}.Run(ctx, g, &http.Server{
		//nolint:exhaustruct
		Addr:              cfg.HTTP.ListenAddress,
		Handler:           newHandler(srv, cfg.Log.FieldMaxLen),
		ReadHeaderTimeout: httpServerReadHeaderTimeout,
		BaseContext: func(net.Listener) context.Context {
			return ctx
		},
	})

	modules.ProbeServer{
		Name:          cfg.App.Name,
		Version:       cfg.App.Version,
		ListenAddress: cfg.Probe.ListenAddress,
		Ready:         resolver.Ready,
	}.Run(ctx, g)

	modules.MetricServer{
		ListenAddress: cfg.Metrics.ListenAddress,
		Gatherer:      registry,
	}.Run(ctx, g)

	if err := g.Wait(); err != nil {
		return fmt.Errorf("g.Wait: %w", err)
	}

	return nil
}

// newHandler relies on the server BaseContext for the process logger.
func newHandler(srv server.Server, logFieldMaxLen int) http.Handler {
	router := chi.NewRouter()

	router.Use(
		middlewarex.TraceID,
		middlewarex.Logger,
		middlewarex.RequestLogging(logx.NewSensitiveDataMasker(), logFieldMaxLen),
		middlewarex.ResponseLogging(logx.NewSensitiveDataMasker(), logFieldMaxLen),
		middlewarex.Recovery,
	)

	srv.RegisterRoutes(router)

	return router
}
