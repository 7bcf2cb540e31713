package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/moradabadnews/web/internal/assets"
	"github.com/moradabadnews/web/internal/content"
	"github.com/moradabadnews/web/internal/handlers"
	"github.com/moradabadnews/web/internal/platform/config"
	fsplatform "github.com/moradabadnews/web/internal/platform/firestore"
	"github.com/moradabadnews/web/internal/platform/observability"
	"github.com/moradabadnews/web/internal/search"
	"github.com/moradabadnews/web/internal/site"
)

func main() {
	logger, err := observability.NewLogger()
	if err != nil {
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	if err := run(logger); err != nil {
		logger.Fatal("server exited", zap.Error(err))
	}
}

func run(logger *zap.Logger) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	siteCfg, err := site.Load(cfg.SiteFile)
	if err != nil {
		return err
	}

	provider := fsplatform.NewProvider(fsplatform.Settings{
		ProjectID:    cfg.Firestore.ProjectID,
		EmulatorHost: cfg.Firestore.EmulatorHost,
	})
	defer func() { _ = provider.Close() }()

	store := content.NewFirestoreStore(provider, cfg.Content.ArticlesCollection, cfg.Content.CategoriesCollection)

	index := search.New(store, logger)
	refreshCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := index.Refresh(refreshCtx); err != nil {
		// The site renders without search results; the index retries below.
		logger.Warn("initial search index refresh failed", zap.Error(err))
	}
	cancel()
	if interval := cfg.Search.RefreshInterval; interval > 0 {
		go refreshLoop(index, interval, logger)
	}

	assetTags := assets.Discover(cfg.Assets.DistDir, logger)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(observability.RequestLogger(logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))
	r.Use(middleware.Timeout(30 * time.Second))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())
	r.Get("/robots.txt", handlers.RobotsTxt(siteCfg))
	r.Method(http.MethodGet, "/sitemap.xml", &handlers.Sitemap{
		Site:    siteCfg,
		Store:   store,
		Timeout: cfg.Content.FetchTimeout,
		Logger:  logger,
	})
	r.Method(http.MethodGet, "/api/search", &handlers.SearchAPI{
		Index:      index,
		MaxResults: cfg.Search.MaxResults,
	})
	r.Handle("/assets/*", http.StripPrefix("/assets", handlers.AssetsWithCache(cfg.Assets.PublicDir)))

	ssr := &handlers.SSR{
		Site:         siteCfg,
		Store:        store,
		Assets:       assetTags,
		FetchTimeout: cfg.Content.FetchTimeout,
		Logger:       logger,
	}
	r.Get("/*", ssr.ServeHTTP)

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("web listening", zap.String("addr", srv.Addr))
		errCh <- srv.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case sig := <-stop:
		logger.Info("shutting down", zap.String("signal", sig.String()))
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		return srv.Shutdown(ctx)
	}
}

func refreshLoop(index *search.Index, interval time.Duration, logger *zap.Logger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for range ticker.C {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		if err := index.Refresh(ctx); err != nil {
			logger.Warn("search index refresh failed", zap.Error(err))
		}
		cancel()
	}
}
