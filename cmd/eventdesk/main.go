// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

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
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"

	"github.com/olegiv/eventdesk/internal/auth"
	"github.com/olegiv/eventdesk/internal/config"
	"github.com/olegiv/eventdesk/internal/handler"
	"github.com/olegiv/eventdesk/internal/logging"
	"github.com/olegiv/eventdesk/internal/metrics"
	"github.com/olegiv/eventdesk/internal/middleware"
	"github.com/olegiv/eventdesk/internal/notify"
	"github.com/olegiv/eventdesk/internal/render"
	"github.com/olegiv/eventdesk/internal/scheduler"
	"github.com/olegiv/eventdesk/internal/service"
	"github.com/olegiv/eventdesk/internal/session"
	"github.com/olegiv/eventdesk/internal/store"
	"github.com/olegiv/eventdesk/internal/version"
	"github.com/olegiv/eventdesk/web"
)

func main() {
	// Parse CLI flags
	showVersion := flag.Bool("version", false, "Show version information")
	flag.BoolVar(showVersion, "v", false, "Show version information (shorthand)")
	showHelp := flag.Bool("help", false, "Show help information")
	flag.BoolVar(showHelp, "h", false, "Show help information (shorthand)")
	hashPassword := flag.String("hash-password", "", "Print an argon2id hash of the given password and exit")

	flag.Usage = func() {
		_, _ = fmt.Fprintf(os.Stderr, "EventDesk - event booking service\n\n")
		_, _ = fmt.Fprintf(os.Stderr, "Usage: %s [options]\n\n", os.Args[0])
		_, _ = fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		_, _ = fmt.Fprintf(os.Stderr, "\nEnvironment Variables:\n")
		_, _ = fmt.Fprintf(os.Stderr, "  EVENTDESK_SESSION_SECRET   Session encryption key (required, min 32 bytes)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  EVENTDESK_ADMIN_PASSWORD   Admin password or argon2id hash (required)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  EVENTDESK_ADMIN_USERNAME   Admin username (default: admin)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  EVENTDESK_DB_PATH          SQLite database path (default: ./data/eventdesk.db)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  EVENTDESK_SERVER_PORT      Server port (default: 8080)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  EVENTDESK_ENV              Environment: development|production (default: development)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  EVENTDESK_SMTP_HOST        Mail relay host (empty: confirmations are only logged)\n")
	}

	flag.Parse()

	// Handle -h/-help flag
	if *showHelp {
		flag.Usage()
		os.Exit(0)
	}

	// Handle -v/-version flag
	if *showVersion {
		_, _ = fmt.Println(version.Get().String())
		os.Exit(0)
	}

	if *hashPassword != "" {
		hash, err := auth.HashPassword(*hashPassword)
		if err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "hashing password: %v\n", err)
			os.Exit(1)
		}
		_, _ = fmt.Println(hash)
		os.Exit(0)
	}

	if err := run(); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	// Load .env file if present (development)
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	}))
	slog.SetDefault(logger)

	// Ensure data directory exists
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

	// Upgrade logger to also write WARN and ERROR logs to the event log
	textHandler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.SlogLevel()})
	logger = slog.New(logging.NewEventLogHandler(textHandler, db))
	slog.SetDefault(logger)
	slog.Info("event log integration enabled", "min_level", "warn")

	ctx := context.Background()
	if err := store.Seed(ctx, db, cfg.DoSeed); err != nil {
		return fmt.Errorf("seeding database: %w", err)
	}

	sessionManager := session.New(db, session.Options{
		Lifetime:    cfg.SessionLifetime,
		IdleTimeout: cfg.SessionIdleTimeout,
		IsDev:       cfg.IsDevelopment(),
	})

	verifier, err := auth.NewStaticVerifier(cfg.AdminUsername, cfg.AdminPassword)
	if err != nil {
		return fmt.Errorf("configuring admin credentials: %w", err)
	}
	if !auth.IsArgon2Hash(cfg.AdminPassword) && !cfg.IsDevelopment() {
		slog.Warn("admin password is stored in plain text; use -hash-password to generate a hash")
	}
	gate := session.NewAdminGate(sessionManager, verifier)

	renderer, err := render.New(render.Config{
		TemplatesFS:    web.Templates(),
		SessionManager: sessionManager,
		IsDev:          cfg.IsDevelopment(),
	})
	if err != nil {
		return fmt.Errorf("initializing renderer: %w", err)
	}

	validator, err := service.NewBookingValidator(cfg.PhoneRegion)
	if err != nil {
		return fmt.Errorf("initializing booking validator: %w", err)
	}

	sender, err := newSender(cfg, logger)
	if err != nil {
		return fmt.Errorf("initializing mail sender: %w", err)
	}

	eventService := service.NewEventService(db)
	bookingService := service.NewBookingService(db, notify.NewDispatcher(sender), eventService, logger)

	if cfg.MetricsEnabled {
		metrics.Register()
	}

	sched := scheduler.New(eventService, cfg.EventRetentionDays, logger)
	if err := sched.Start(); err != nil {
		return fmt.Errorf("starting scheduler: %w", err)
	}
	defer sched.Stop()

	limiter := middleware.NewSubmissionLimiter(cfg.BookingRateLimit, cfg.BookingRateBurst, func(*http.Request) {
		metrics.IncBookingRejected(metrics.ReasonRateLimit)
	})

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.GetHead)
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(middleware.SecurityHeaders(middleware.DefaultSecurityHeadersConfig(cfg.IsDevelopment())))
	r.Use(middleware.CSRF(middleware.DefaultCSRFConfig([]byte(cfg.SessionSecret), cfg.IsDevelopment(), cfg.ServerAddr())))
	if cfg.MetricsEnabled {
		r.Use(metrics.Middleware)
	}
	r.Use(sessionManager.LoadAndSave)

	handler.RegisterRoutes(r, handler.Dependencies{
		DB:        db,
		Renderer:  renderer,
		Gate:      gate,
		Validator: validator,
		Bookings:  bookingService,
		Events:    eventService,
		Limiter:   limiter,
		StaticFS:  web.Static(),
		Metrics:   cfg.MetricsEnabled,

		DisallowCrawlers: cfg.IsDevelopment(),
	})

	srv := &http.Server{
		Addr:              cfg.ServerAddr(),
		Handler:           r,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	go func() {
		slog.Info("starting server", "addr", cfg.ServerAddr(), "env", cfg.Env, "version", version.Get().Version)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
		}
	}()

	// Wait for interrupt signal
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

// newSender returns an SMTP sender when a relay is configured and a
// logging sender otherwise.
func newSender(cfg *config.Config, logger *slog.Logger) (notify.Sender, error) {
	if !cfg.SMTPEnabled() {
		slog.Info("no SMTP host configured, confirmations will be logged only")
		return notify.NewLogSender(logger), nil
	}

	sender, err := notify.NewSMTPSender(notify.SMTPConfig{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: cfg.SMTPUsername,
		Password: cfg.SMTPPassword,
		TLS:      cfg.SMTPTLS,
		From:     cfg.MailFrom,
	})
	if err != nil {
		return nil, err
	}
	slog.Info("SMTP sender configured", "host", cfg.SMTPHost, "port", cfg.SMTPPort, "tls", cfg.SMTPTLS)
	return sender, nil
}
