// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// careerbase is a multi-tenant careers page builder. Companies sign up,
// brand their public jobs page, manage postings and publish.
package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/alexedwards/scs/v2"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"

	"github.com/olegiv/careerbase/internal/cache"
	"github.com/olegiv/careerbase/internal/config"
	"github.com/olegiv/careerbase/internal/handler/api"
	"github.com/olegiv/careerbase/internal/logging"
	"github.com/olegiv/careerbase/internal/middleware"
	"github.com/olegiv/careerbase/internal/scheduler"
	"github.com/olegiv/careerbase/internal/service"
	"github.com/olegiv/careerbase/internal/session"
	"github.com/olegiv/careerbase/internal/store"
)

func main() {
	showHelp := flag.Bool("help", false, "Show help information")
	flag.BoolVar(showHelp, "h", false, "Show help information (shorthand)")

	flag.Usage = func() {
		_, _ = fmt.Fprintf(os.Stderr, "careerbase - careers page builder\n\n")
		_, _ = fmt.Fprintf(os.Stderr, "Usage: %s [options]\n\n", os.Args[0])
		_, _ = fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		_, _ = fmt.Fprintf(os.Stderr, "\nEnvironment Variables:\n")
		_, _ = fmt.Fprintf(os.Stderr, "  CAREERBASE_SESSION_SECRET   Session encryption key (required, min 32 bytes)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  CAREERBASE_DB_PATH          SQLite database path (default: ./data/careerbase.db)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  CAREERBASE_SERVER_PORT      Server port (default: 8080)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  CAREERBASE_ENV              Environment: development|production (default: development)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  CAREERBASE_PUBLIC_BASE_URL  Base URL for upload and canonical links\n")
		_, _ = fmt.Fprintf(os.Stderr, "  CAREERBASE_REDIS_URL        Redis URL for the public page cache (optional)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  CAREERBASE_DO_SEED          Seed a demo tenant on startup (default: false)\n")
	}
	flag.Parse()

	if *showHelp {
		flag.Usage()
		os.Exit(0)
	}

	if err := run(); err != nil {
		slog.Error("fatal error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	logLevel := slog.LevelInfo
	switch cfg.LogLevel {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	if err := os.MkdirAll(filepath.Dir(cfg.DBPath), 0755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	slog.Info("initializing database", "path", cfg.DBPath)
	db, err := store.NewDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("initializing database: %w", err)
	}
	defer func(db *sql.DB) {
		if err := db.Close(); err != nil {
			slog.Error("error closing database connection", "error", err)
		}
	}(db)

	slog.Info("running database migrations")
	if err := store.Migrate(db); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}
	slog.Info("database ready")

	// WARN and ERROR records also land in the events table.
	textHandler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel})
	logger = slog.New(logging.NewEventLogHandler(textHandler, db))
	slog.SetDefault(logger)

	ctx := context.Background()
	if err := store.Seed(ctx, db, cfg.DoSeed); err != nil {
		return fmt.Errorf("seeding database: %w", err)
	}

	sessionManager := session.New(db, cfg.IsDevelopment())
	slog.Info("session manager initialized")

	pageBackend, err := cache.New(cache.Config{
		RedisURL:   cfg.RedisURL,
		Prefix:     cfg.CachePrefix,
		DefaultTTL: time.Duration(cfg.CacheTTL) * time.Second,
		MaxSize:    cfg.CacheMaxSize,
	})
	if err != nil {
		return fmt.Errorf("initializing page cache: %w", err)
	}
	defer func() {
		if err := pageBackend.Close(); err != nil {
			slog.Error("error closing page cache", "error", err)
		}
	}()
	pageCache := cache.NewPageCache(pageBackend, time.Duration(cfg.CacheTTL)*time.Second)
	slog.Info("page cache initialized", "backend", cacheBackendName(cfg.UseRedisCache()))

	if err := os.MkdirAll(cfg.UploadsDir, 0755); err != nil {
		return fmt.Errorf("creating uploads directory: %w", err)
	}

	loginProtection := middleware.NewLoginProtection(middleware.DefaultLoginProtectionConfig())

	apiHandler := api.NewHandler(db, sessionManager, logger, cfg.PublicBaseURL)
	apiHandler.SetLoginProtection(loginProtection)
	apiHandler.SetPageCache(pageCache)
	apiHandler.SetUploadService(service.NewUploadService(cfg.UploadsDir, cfg.PublicBaseURL+"/uploads"))

	jobScheduler := scheduler.New(db, logger)
	jobScheduler.SetPageCache(pageCache)
	if err := jobScheduler.Start(); err != nil {
		return fmt.Errorf("starting scheduler: %w", err)
	}
	defer jobScheduler.Stop()

	r := buildRouter(cfg, db, apiHandler, sessionManager, loginProtection)

	srv := &http.Server{
		Addr:              cfg.ServerAddr(),
		Handler:           r,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      60 * time.Second, // Large video uploads need room
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	go func() {
		slog.Info("starting server", "addr", cfg.ServerAddr(), "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	slog.Info("server stopped")
	return nil
}

func cacheBackendName(redis bool) string {
	if redis {
		return "redis"
	}
	return "memory"
}

func buildRouter(cfg *config.Config, db *sql.DB, apiHandler *api.Handler, sessionManager *scs.SessionManager, loginProtection *middleware.LoginProtection) chi.Router {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Compress(5))
	r.Use(chimw.GetHead)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(middleware.SecurityHeaders(middleware.DefaultSecurityHeadersConfig(cfg.IsDevelopment())))
	r.Use(sessionManager.LoadAndSave)

	csrfMiddleware := middleware.CSRF(middleware.DefaultCSRFConfig([]byte(cfg.SessionSecret), cfg.IsDevelopment()))
	publicRateLimiter := middleware.NewGlobalRateLimiter(10.0, 20)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/status", apiHandler.Status)

		// Public surface, rate limited, no session required.
		r.Group(func(r chi.Router) {
			r.Use(publicRateLimiter.Middleware())
			r.Get("/public/{slug}", apiHandler.PublicPage)
			r.Get("/public/{slug}/jobs", apiHandler.PublicJobs)
			r.Get("/public/{slug}/jobs/{id}", apiHandler.PublicJob)
			r.Get("/auth/check-slug", apiHandler.CheckSlug)
		})

		// Session establishment.
		r.Group(func(r chi.Router) {
			r.Use(csrfMiddleware)
			r.With(loginProtection.Middleware()).Post("/auth/signup", apiHandler.Signup)
			r.With(loginProtection.Middleware()).Post("/auth/login", apiHandler.Login)
			r.Post("/auth/logout", apiHandler.Logout)
		})

		// Dashboard, owner session required.
		r.Group(func(r chi.Router) {
			r.Use(csrfMiddleware)
			r.Use(middleware.Auth(sessionManager))
			r.Use(middleware.LoadAccount(sessionManager, db))

			r.Get("/auth/me", apiHandler.Me)
			r.Get("/preview/{slug}", apiHandler.Preview)

			r.Route("/companies/{id}", func(r chi.Router) {
				r.Get("/", apiHandler.GetCompany)
				r.Patch("/", apiHandler.UpdateCompany)
				r.Delete("/", apiHandler.DeleteCompany)
				r.Get("/jobs", apiHandler.ListJobs)
				r.Post("/jobs", apiHandler.CreateJob)
				r.Get("/sections", apiHandler.ListSections)
				r.Post("/sections", apiHandler.CreateSection)
			})

			r.Route("/jobs/{id}", func(r chi.Router) {
				r.Get("/", apiHandler.GetJob)
				r.Patch("/", apiHandler.UpdateJob)
				r.Delete("/", apiHandler.DeleteJob)
			})

			r.Patch("/sections/reorder", apiHandler.ReorderSections)
			r.Route("/sections/{id}", func(r chi.Router) {
				r.Get("/", apiHandler.GetSection)
				r.Patch("/", apiHandler.UpdateSection)
				r.Delete("/", apiHandler.DeleteSection)
				r.Post("/toggle", apiHandler.ToggleSectionVisibility)
			})

			r.Post("/upload", apiHandler.Upload)
		})
	})

	// Serve uploaded files. The upload service confines writes to the
	// uploads directory; the file server path-checks reads.
	uploadsDir, err := filepath.Abs(cfg.UploadsDir)
	if err == nil {
		fileServer := http.StripPrefix("/uploads/", http.FileServer(http.Dir(uploadsDir)))
		r.Get("/uploads/*", func(w http.ResponseWriter, req *http.Request) {
			if strings.Contains(req.URL.Path, "..") {
				http.NotFound(w, req)
				return
			}
			fileServer.ServeHTTP(w, req)
		})
	}

	return r
}
