package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"photoframe/internal/handlers"
	"photoframe/internal/index"
	"photoframe/internal/logging"
	"photoframe/internal/metadata"
	"photoframe/internal/metrics"
	"photoframe/internal/middleware"
	"photoframe/internal/screen"
	"photoframe/internal/startup"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
)

func main() {
	cfg, err := startup.FromEnv()
	if err != nil {
		logging.Fatal("configuration error: %v", err)
	}

	root := &cobra.Command{
		Use:          "photoframe [directory]",
		Short:        "Rotating slideshow HTTP server",
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, args []string) error {
			return run(cfg, args)
		},
	}

	flags := root.Flags()
	flags.StringVar(&cfg.Host, "host", cfg.Host, "host to bind")
	flags.IntVar(&cfg.Port, "port", cfg.Port, "port to bind")
	flags.IntVar(&cfg.IntervalMS, "interval-ms", cfg.IntervalMS, "client refresh interval in milliseconds")
	flags.BoolVar(&cfg.AllFiles, "all-files", cfg.AllFiles, "index all files, not just images")
	flags.StringVar(&cfg.StatusFile, "status-file", cfg.StatusFile, "screen status file written by the motion daemon")
	flags.StringVar(&cfg.OverrideMarker, "override-marker", cfg.OverrideMarker, "path substring forcing the override date classification")
	flags.IntVar(&cfg.CacheSize, "cache-size", cfg.CacheSize, "maximum metadata cache entries")
	flags.BoolVar(&cfg.MetricsEnabled, "metrics", cfg.MetricsEnabled, "expose Prometheus metrics on /metrics")

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cfg *startup.Config, args []string) error {
	startTime := time.Now()

	if err := cfg.Finalize(args); err != nil {
		return err
	}
	cfg.LogSummary()

	// The index is built exactly once; a bad media root refuses to start
	// rather than serving an empty or wrong index.
	ix, err := index.Build(cfg.MediaDir, cfg.AllFiles)
	if err != nil {
		return err
	}
	metrics.IndexSize.Set(float64(ix.Len()))

	if ix.Len() == 0 {
		logging.Warn("no files found to index; the page will show 'no files'")
	} else {
		first, _ := ix.Get(0)
		logging.Info("Indexed %d file(s). Example: /file/0 -> %s", ix.Len(), first)
	}

	resolver := metadata.NewResolver(cfg.OverrideMarker)
	cache, err := metadata.NewCache(resolver, cfg.CacheSize)
	if err != nil {
		return err
	}
	state := screen.NewStateFile(cfg.StatusFile)

	h := handlers.New(ix, cache, state, cfg.IntervalMS)
	router := setupRouter(h, cfg.MetricsEnabled)

	loggingConfig := middleware.DefaultLoggingConfig()
	loggingConfig.LogHealthChecks = cfg.LogHealthChecks
	handler := middleware.Logger(loggingConfig)(router)

	if cfg.MetricsEnabled {
		metrics.InitializeMetrics()
		handler = middleware.Metrics(middleware.DefaultMetricsConfig())(handler)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if cfg.WatchDrift {
		if watcher, err := index.NewWatcher(cfg.MediaDir); err != nil {
			logging.Warn("drift watcher unavailable: %v", err)
		} else {
			go watcher.Run(ctx)
		}
	}

	if cfg.WarmCache {
		go metadata.Warm(ctx, ix, cache)
	}

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 0,
		IdleTimeout:  60 * time.Second,
	}

	go handleShutdown(srv, cancel)

	logging.Info("Listening on http://%s (started in %v)", cfg.Addr(), time.Since(startTime).Round(time.Millisecond))
	if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func setupRouter(h *handlers.Handlers, metricsEnabled bool) *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/healthz", h.HealthCheck).Methods("GET")
	r.HandleFunc("/count", h.GetCount).Methods("GET")
	r.HandleFunc("/file/{index}", h.GetFile).Methods("GET")
	r.HandleFunc("/meta/{index}", h.GetMeta).Methods("GET")
	r.HandleFunc("/should_load_next", h.ShouldLoadNext).Methods("GET")
	if metricsEnabled {
		r.Handle("/metrics", promhttp.Handler()).Methods("GET")
	}
	r.HandleFunc("/", h.IndexPage).Methods("GET")

	return r
}

func handleShutdown(srv *http.Server, cancel context.CancelFunc) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan

	logging.Info("received %s, shutting down", sig)
	cancel()

	ctx, cancelTimeout := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancelTimeout()

	if err := srv.Shutdown(ctx); err != nil {
		logging.Warn("server shutdown error: %v", err)
	}
}
